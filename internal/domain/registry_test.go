package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry()

	a := &Spawner{ID: NewEntityID(), Resource: "Water"}
	b := &Spawner{ID: NewEntityID(), Resource: "Fire"}
	r.AddSpawner(a)
	r.AddSpawner(b)

	spawners := r.Spawners()
	require.Len(t, spawners, 2)
	require.Same(t, a, spawners[0])
	require.Same(t, b, spawners[1])
	require.Same(t, a, r.Spawner(a.ID))
	require.Nil(t, r.Spawner(NewEntityID()))
}

func TestRegistryOutbound(t *testing.T) {
	r := NewRegistry()
	sp := &Spawner{ID: NewEntityID()}
	r.AddSpawner(sp)

	require.Nil(t, r.Outbound(sp.ID))

	conn := &Connection{ID: NewEntityID(), SourceID: sp.ID, SourceKind: EndpointSpawner, DestKind: EndpointSell}
	r.AddConnection(conn)
	require.Same(t, conn, r.Outbound(sp.ID))
	require.Nil(t, r.Outbound(NewEntityID()))
}

func TestRegistryHoldAndTake(t *testing.T) {
	r := NewRegistry()

	it := &Item{ID: NewEntityID(), Name: "Water"}
	r.AddItem(it)
	require.Len(t, r.Items(), 1)

	r.HoldItem(it.ID)
	require.Empty(t, r.Items(), "held items leave the traveling collection")
	require.Nil(t, r.Item(it.ID))
	require.Equal(t, 1, r.HeldCount())

	got := r.TakeHeld(it.ID)
	require.Same(t, it, got)
	require.Zero(t, r.HeldCount())

	// Повторное потребление возвращает nil
	require.Nil(t, r.TakeHeld(it.ID))
}

func TestRegistryRemoveItemKeepsOrder(t *testing.T) {
	r := NewRegistry()

	a := &Item{ID: NewEntityID()}
	b := &Item{ID: NewEntityID()}
	c := &Item{ID: NewEntityID()}
	r.AddItem(a)
	r.AddItem(b)
	r.AddItem(c)

	r.RemoveItem(b.ID)

	items := r.Items()
	require.Len(t, items, 2)
	require.Same(t, a, items[0])
	require.Same(t, c, items[1])
}

func TestRegistryDraft(t *testing.T) {
	r := NewRegistry()
	require.Nil(t, r.Draft())

	d := &DraftConnection{SourceID: NewEntityID(), SourceKind: EndpointSpawner}
	r.SetDraft(d)
	require.Same(t, d, r.Draft())

	r.ClearDraft()
	require.Nil(t, r.Draft())
}
