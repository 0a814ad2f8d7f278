package engine

import (
	"context"
	"fmt"
	"time"

	"assembly-server/internal/domain"
	"assembly-server/pkg/logger"
)

// Advance прокручивает симуляцию на один тик. Физика считается
// по измеренной дельте от прошлого тика: если процесс замерз на секунду,
// предметы за следующий тик пройдут секунду пути, а не один кадр.
//
// Порядок фаз фиксирован: геометрия -> эмиссия -> движение/прибытие ->
// обработка модификаторов -> выборка кассы.
func (s *GameService) Advance(now time.Time) {
	dt := now.Sub(s.lastTickAt)
	if dt < 0 {
		dt = 0
	}
	s.lastTickAt = now
	s.tick++

	s.refreshRoutes()
	s.emitSpawners(now)
	s.advanceItems(now, dt)
	s.processModifiers(now)

	if now.Sub(s.lastSampleAt) >= s.cfg.SampleInterval {
		s.Ledger.Sample(now)
		s.lastSampleAt = now
	}
}

// emitSpawners выпускает по предмету из каждого созревшего спавнера.
// Спавнер без исходящего соединения молча копит время: после подключения
// выйдет максимум один предмет, а не вся накопленная очередь.
func (s *GameService) emitSpawners(now time.Time) {
	for _, sp := range s.Registry.Spawners() {
		out := s.Registry.Outbound(sp.ID)
		if out == nil {
			continue
		}
		if now.Sub(sp.LastSpawn) < sp.SpawnInterval {
			continue
		}

		res, ok := s.catalog.Resource(sp.Resource)
		if !ok {
			// Каталог перезагрузили без этого ресурса
			logger.Log.WithField("resource", sp.Resource).Warn("Spawner resource missing from catalog")
			sp.LastSpawn = now
			continue
		}

		s.Registry.AddItem(&domain.Item{
			ID:           domain.NewEntityID(),
			Name:         res.Name,
			Emoji:        res.Emoji,
			CashValue:    res.CashPerItem,
			Type:         domain.ItemTypeIngredient,
			Pos:          out.From,
			Progress:     0,
			ConnectionID: out.ID,
		})
		sp.LastSpawn = now
	}
}

// advanceItems двигает предметы вдоль соединений и обрабатывает прибытия.
func (s *GameService) advanceItems(now time.Time, dt time.Duration) {
	for _, it := range s.Registry.Items() {
		conn := s.Registry.Connection(it.ConnectionID)
		if conn == nil {
			// Висячая ссылка - предмет некуда везти
			logger.Log.WithField("item_id", it.ID).Warn("Item lost its connection, dropping")
			s.Registry.RemoveItem(it.ID)
			continue
		}

		length := conn.Length()
		if length > 0 {
			it.Progress += conn.Speed * dt.Seconds() / length
		} else {
			// Вырожденное соединение: мгновенная доставка
			it.Progress = 1
		}
		if it.Progress > 1 {
			it.Progress = 1
		}
		it.Pos = conn.From.Lerp(conn.To, it.Progress)

		if it.Progress >= 1 {
			s.arrive(now, it, conn)
		}
	}
}

// arrive обрабатывает предмет, достигший конца соединения.
// У модификатора с полным буфером предмет остается стоять на конце
// (progress=1) и пробует войти на каждом следующем тике.
func (s *GameService) arrive(now time.Time, it *domain.Item, conn *domain.Connection) {
	switch conn.DestKind {
	case domain.EndpointSell:
		s.Ledger.Credit(it.CashValue)
		s.AddLog(fmt.Sprintf("Sold %s %s for $%.2f", it.Name, it.Emoji, it.CashValue), "SELL")
		s.Registry.RemoveItem(it.ID)

	case domain.EndpointModifier:
		m := s.Registry.Modifier(conn.DestID)
		if m == nil {
			logger.Log.WithField("dest_id", conn.DestID).Warn("Connection leads to missing modifier, dropping item")
			s.Registry.RemoveItem(it.ID)
			return
		}
		if len(m.Pending) >= domain.MaxPendingInputs {
			// Буфер полон, предмет ждет на конце соединения
			return
		}
		if len(m.Pending) == 0 {
			// Первый вход запускает отсчет цикла обработки
			m.LastProcess = now
		}
		s.Registry.HoldItem(it.ID)
		m.Pending = append(m.Pending, it.ID)
	}
}

// processModifiers запускает циклы обработки созревших модификаторов.
// Входы потребляются оптимистично до разрешения комбинации: результат
// придет событием в resolvedChan, повторная обработка тех же входов
// исключена.
func (s *GameService) processModifiers(now time.Time) {
	for _, m := range s.Registry.Modifiers() {
		if m.Resolving || len(m.Pending) == 0 {
			continue
		}
		if now.Sub(m.LastProcess) < m.ProcessInterval {
			continue
		}

		inputs := make([]string, 0, len(m.Pending))
		for _, id := range m.Pending {
			if it := s.Registry.TakeHeld(id); it != nil {
				inputs = append(inputs, it.Name)
			}
		}
		m.Pending = m.Pending[:0]
		m.LastProcess = now

		if len(inputs) == 0 {
			continue
		}

		m.Resolving = true
		go s.resolveCombination(m.ID, inputs, m.Name)
	}
}

// resolveCombination - единственная операция, которой разрешено висеть
// на сети. Живет в своей горутине, результат всегда доставляется:
// fallback-путь резолвера синхронно доступен и не умеет падать.
func (s *GameService) resolveCombination(modifierID domain.EntityID, inputs []string, modifier string) {
	tpl, fresh := s.resolver.Resolve(context.Background(), inputs, modifier)
	s.resolvedChan <- domain.ResolutionEvent{
		ModifierID:   modifierID,
		Template:     tpl,
		NewDiscovery: fresh,
	}
}

// applyResolution принимает результат разрешения в тиковом цикле
// и выпускает выходной предмет на исходящее соединение модификатора.
func (s *GameService) applyResolution(ev domain.ResolutionEvent) {
	m := s.Registry.Modifier(ev.ModifierID)
	if m == nil {
		logger.Log.WithField("modifier_id", ev.ModifierID).Warn("Resolution arrived for missing modifier")
		return
	}
	m.Resolving = false

	if ev.NewDiscovery {
		s.AddLog(fmt.Sprintf("New discovery: %s %s", ev.Template.Name, ev.Template.Emoji), "DISCOVERY")
	}

	out := s.Registry.Outbound(m.ID)
	if out == nil {
		// Выход некуда выпустить - результат пропадает, открытие остается
		logger.Log.WithField("modifier_id", m.ID).Debug("No outbound connection, output dropped")
		return
	}

	s.Registry.AddItem(&domain.Item{
		ID:           domain.NewEntityID(),
		Name:         ev.Template.Name,
		Emoji:        ev.Template.Emoji,
		CashValue:    ev.Template.CashPerItem,
		Type:         ev.Template.Type,
		Pos:          out.From,
		Progress:     0,
		ConnectionID: out.ID,
	})
}
