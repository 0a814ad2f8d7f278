package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"assembly-server/internal/discovery"
	"assembly-server/internal/domain"
)

func TestSpawnerWithoutConnectionIsSilent(t *testing.T) {
	s, clk := newTestService(t)
	placeSpawner(t, s, "Water", 0, 0)

	step(s, clk, 10*time.Second, 50*time.Millisecond)

	require.Empty(t, s.Registry.Items())
	require.Zero(t, s.Ledger.Total)
}

func TestSpawnerEmitsAtMostOncePerInterval(t *testing.T) {
	s, clk := newTestService(t)
	sp := placeSpawner(t, s, "Water", 0, 0)
	connect(t, s, sp.ID, domain.EndpointSpawner, domain.NilEntityID, domain.EndpointSell)

	// Интервал Water - 3 секунды; путь до зоны продажи длинный,
	// за время теста ничего не успеет продаться
	step(s, clk, 3100*time.Millisecond, 50*time.Millisecond)
	require.Len(t, s.Registry.Items(), 1)

	step(s, clk, 3*time.Second, 50*time.Millisecond)
	require.Len(t, s.Registry.Items(), 2)
}

func TestItemTravelsAndSells(t *testing.T) {
	s, clk := newTestService(t)
	sp := placeSpawner(t, s, "Water", 0, 0)
	conn := connect(t, s, sp.ID, domain.EndpointSpawner, domain.NilEntityID, domain.EndpointSell)

	// Эмиссия на 3-й секунде, дальше путь length/80 секунд
	travel := time.Duration(conn.Length() / domain.DefaultTravelSpeed * float64(time.Second))
	step(s, clk, 3*time.Second+travel+200*time.Millisecond, 50*time.Millisecond)

	require.Equal(t, 0.5, s.Ledger.Total)
}

func TestItemProgressMonotonic(t *testing.T) {
	s, clk := newTestService(t)
	sp := placeSpawner(t, s, "Water", 0, 0)
	connect(t, s, sp.ID, domain.EndpointSpawner, domain.NilEntityID, domain.EndpointSell)

	step(s, clk, 3*time.Second, 50*time.Millisecond)
	items := s.Registry.Items()
	require.Len(t, items, 1)

	prev := items[0].Progress
	for i := 0; i < 40; i++ {
		clk.Advance(50 * time.Millisecond)
		s.Advance(clk.now)
		require.GreaterOrEqual(t, items[0].Progress, prev)
		require.LessOrEqual(t, items[0].Progress, 1.0)
		prev = items[0].Progress
	}
}

// Сценарий полной цепочки: Water(3000ms) -> Heat(2000ms) -> продажа.
func TestFullChainScenario(t *testing.T) {
	s, clk := newTestService(t)

	sp := placeSpawner(t, s, "Water", 0, 0)
	m := placeModifier(t, s, "Heat", 296, 0)
	connect(t, s, sp.ID, domain.EndpointSpawner, m.ID, domain.EndpointModifier)
	out := connect(t, s, m.ID, domain.EndpointModifier, domain.NilEntityID, domain.EndpointSell)

	// Эмиссия на 3-й секунде
	step(s, clk, 3050*time.Millisecond, 50*time.Millisecond)
	require.Len(t, s.Registry.Items(), 1)

	// Дальше следим за единственным предметом
	sp.SpawnInterval = time.Hour

	// Путь 200px за 2.5 секунды
	step(s, clk, 2500*time.Millisecond, 50*time.Millisecond)
	require.Len(t, m.Pending, 1)
	require.Empty(t, s.Registry.Items(), "the input left the traveling collection")

	// Через 2 секунды после прибытия срабатывает цикл обработки
	step(s, clk, 2*time.Second, 50*time.Millisecond)
	require.True(t, m.Resolving)
	require.Empty(t, m.Pending, "inputs are consumed optimistically")

	var ev domain.ResolutionEvent
	select {
	case ev = <-s.resolvedChan:
	case <-time.After(2 * time.Second):
		t.Fatal("resolution event never arrived")
	}
	require.Equal(t, m.ID, ev.ModifierID)
	require.True(t, ev.NewDiscovery)

	s.applyResolution(ev)
	require.False(t, m.Resolving)

	// Выходной предмет стоит в начале исходящего соединения
	items := s.Registry.Items()
	require.Len(t, items, 1)
	require.Equal(t, out.ID, items[0].ConnectionID)
	require.Zero(t, items[0].Progress)

	// Ожидаемый результат детерминирован (оффлайн-генератор)
	var g discovery.FallbackGenerator
	want := g.Generate(discovery.CombinationKey([]string{"Water"}, "Heat"), []string{"Water"})
	require.Equal(t, want.Name, items[0].Name)

	// Довозим до продажи
	travel := time.Duration(out.Length() / domain.DefaultTravelSpeed * float64(time.Second))
	step(s, clk, travel+200*time.Millisecond, 50*time.Millisecond)
	require.Equal(t, want.CashPerItem, s.Ledger.Total)
}

func TestModifierCapacityParksItem(t *testing.T) {
	s, clk := newTestService(t)

	sp := placeSpawner(t, s, "Water", 0, 0)
	m := placeModifier(t, s, "Mix", 300, 0)
	conn := connect(t, s, sp.ID, domain.EndpointSpawner, m.ID, domain.EndpointModifier)

	// Блокируем цикл обработки и наполняем буфер до лимита
	m.Resolving = true
	for i := 0; i < domain.MaxPendingInputs; i++ {
		held := &domain.Item{ID: domain.NewEntityID(), Name: "Water"}
		s.Registry.AddItem(held)
		s.Registry.HoldItem(held.ID)
		m.Pending = append(m.Pending, held.ID)
	}

	arriving := &domain.Item{
		ID:           domain.NewEntityID(),
		Name:         "Water",
		Progress:     0.99,
		ConnectionID: conn.ID,
	}
	s.Registry.AddItem(arriving)

	// Предмет доезжает до конца и стоит: буфер полон
	step(s, clk, time.Second, 50*time.Millisecond)
	require.NotNil(t, s.Registry.Item(arriving.ID))
	require.Equal(t, 1.0, arriving.Progress)
	require.Len(t, m.Pending, domain.MaxPendingInputs)

	// Слот освободился - предмет входит на следующем тике
	m.Pending = m.Pending[:domain.MaxPendingInputs-1]
	step(s, clk, 50*time.Millisecond, 50*time.Millisecond)
	require.Nil(t, s.Registry.Item(arriving.ID))
	require.Len(t, m.Pending, domain.MaxPendingInputs)
}

func TestResolutionWithoutOutboundDropsOutput(t *testing.T) {
	s, clk := newTestService(t)

	m := placeModifier(t, s, "Heat", 300, 0)
	held := &domain.Item{ID: domain.NewEntityID(), Name: "Fire"}
	s.Registry.AddItem(held)
	s.Registry.HoldItem(held.ID)
	m.Pending = append(m.Pending, held.ID)
	m.LastProcess = clk.now.Add(-time.Minute)

	step(s, clk, 50*time.Millisecond, 50*time.Millisecond)
	require.True(t, m.Resolving)

	var ev domain.ResolutionEvent
	select {
	case ev = <-s.resolvedChan:
	case <-time.After(2 * time.Second):
		t.Fatal("resolution event never arrived")
	}

	s.applyResolution(ev)
	require.False(t, m.Resolving)
	require.Empty(t, s.Registry.Items(), "output has nowhere to go")

	// Открытие при этом сохраняется в журнале
	require.True(t, ev.NewDiscovery)
	state := s.BuildState("UPDATE")
	require.Len(t, state.Discoveries, 1)
}

func TestLedgerSampledOncePerSecond(t *testing.T) {
	s, clk := newTestService(t)

	step(s, clk, 5*time.Second, 100*time.Millisecond)
	require.Len(t, s.Ledger.Samples, 5)
}
