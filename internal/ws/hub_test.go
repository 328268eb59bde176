package ws

import (
	"strings"
	"testing"
)

func TestNotifyChangedReachesAllUserConnections(t *testing.T) {
	hub := NewHub()

	tab1 := hub.Subscribe("u1")
	tab2 := hub.Subscribe("u1")
	other := hub.Subscribe("u2")

	hub.NotifyChanged("u1", ScopeTasks)

	for i, ch := range []chan []byte{tab1, tab2} {
		select {
		case msg := <-ch:
			if !strings.Contains(string(msg), `"scope":"tasks"`) {
				t.Fatalf("tab %d: unexpected payload %s", i+1, msg)
			}
		default:
			t.Fatalf("tab %d: expected an event", i+1)
		}
	}

	select {
	case msg := <-other:
		t.Fatalf("other user must not receive events, got %s", msg)
	default:
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub()

	ch := hub.Subscribe("u1")
	hub.Unsubscribe("u1", ch)
	hub.NotifyChanged("u1", ScopeSnapshot)

	select {
	case msg := <-ch:
		t.Fatalf("unsubscribed channel must not receive events, got %s", msg)
	default:
	}
}

func TestNotifyChangedSkipsFullChannels(t *testing.T) {
	hub := NewHub()

	ch := hub.Subscribe("u1")
	for i := 0; i < cap(ch)+5; i++ {
		hub.NotifyChanged("u1", ScopeTasks)
	}
	// delivery must never block; draining yields at most cap(ch) events
	drained := 0
	for {
		select {
		case <-ch:
			drained++
			continue
		default:
		}
		break
	}
	if drained != cap(ch) {
		t.Fatalf("expected %d buffered events, got %d", cap(ch), drained)
	}
}
