package network

import (
	"testing"

	"github.com/stretchr/testify/require"

	"assembly-server/pkg/api"
)

func TestBroadcast(t *testing.T) {
	b := NewBroadcaster()

	ch1 := b.Register("session-1")
	ch2 := b.Register("session-2")
	require.Equal(t, 2, b.SubscriberCount())

	b.Broadcast(api.ServerResponse{Type: "UPDATE", Tick: 7})

	msg := <-ch1
	require.Equal(t, uint64(7), msg.Tick)
	msg = <-ch2
	require.Equal(t, uint64(7), msg.Tick)
}

func TestSendTo(t *testing.T) {
	b := NewBroadcaster()

	ch1 := b.Register("session-1")
	b.Register("session-2")

	b.SendTo("session-1", api.ServerResponse{Type: "INIT"})
	require.Equal(t, "INIT", (<-ch1).Type)

	// Неизвестная сессия - no-op
	b.SendTo("ghost", api.ServerResponse{})
}

func TestUnregisterClosesChannel(t *testing.T) {
	b := NewBroadcaster()

	ch := b.Register("session-1")
	b.Unregister("session-1")

	_, open := <-ch
	require.False(t, open)
	require.False(t, b.HasSubscriber("session-1"))
}

func TestSlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroadcaster()
	b.Register("slow")

	// Канал на 100 сообщений; лишние кадры молча отбрасываются
	for i := 0; i < 500; i++ {
		b.Broadcast(api.ServerResponse{Tick: uint64(i)})
	}
}

func TestReregisterReplacesChannel(t *testing.T) {
	b := NewBroadcaster()

	old := b.Register("session-1")
	fresh := b.Register("session-1")

	_, open := <-old
	require.False(t, open)

	b.SendTo("session-1", api.ServerResponse{Type: "INIT"})
	require.Equal(t, "INIT", (<-fresh).Type)
	require.Equal(t, 1, b.SubscriberCount())
}
