package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met")
}

func TestHub_SendToUserOnlyReachesOwner(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	alice := uuid.New()
	bob := uuid.New()
	a := &Client{hub: hub, userID: alice, send: make(chan []byte, 4)}
	b := &Client{hub: hub, userID: bob, send: make(chan []byte, 4)}
	hub.Register(a)
	hub.Register(b)
	waitFor(t, func() bool { return hub.ClientCount() == 2 })

	n := NewNotifier(hub)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	n.MatchesGenerated(alice, 7, at)

	select {
	case msg := <-a.send:
		var evt MatchesGeneratedEvent
		require.NoError(t, json.Unmarshal(msg, &evt))
		assert.Equal(t, EventMatchesGenerated, evt.Type)
		assert.Equal(t, 7, evt.TotalMatches)
		assert.Equal(t, "2026-01-02T03:04:05Z", evt.Timestamp)
	case <-time.After(time.Second):
		t.Fatal("owner did not receive event")
	}

	select {
	case <-b.send:
		t.Fatal("other user received event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	c := &Client{hub: hub, userID: uuid.New(), send: make(chan []byte, 1)}
	hub.Register(c)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.Unregister(c)
	waitFor(t, func() bool { return hub.ClientCount() == 0 })

	_, ok := <-c.send
	assert.False(t, ok)
}

func TestNotifier_NilSafe(t *testing.T) {
	var n *Notifier
	n.MatchesGenerated(uuid.New(), 1, time.Now())
	NewNotifier(nil).MatchesGenerated(uuid.New(), 1, time.Now())
}
