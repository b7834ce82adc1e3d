package relay

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/nearcast/relay/internal/identity"
)

func TestRoutePongUpdatesLastBeat(t *testing.T) {
	c := NewCoordinator(NewRegistry())
	s := newTestSession("A", "room1")
	s.lastBeat.Store(0)

	c.route(s, []byte(`{"type":"pong"}`))

	if s.beatAge() > time.Second {
		t.Fatal("expected lastBeat to be refreshed")
	}
}

func TestRouteDisconnectRunsOnDisconnectOnce(t *testing.T) {
	c := NewCoordinator(NewRegistry())
	s := newTestSession("A", "room1")
	calls := 0
	s.onDisconnect = func(reason string) { calls++ }

	c.route(s, []byte(`{"type":"disconnect"}`))
	c.route(s, []byte(`{"type":"disconnect"}`))

	if calls != 1 {
		t.Fatalf("expected exactly one disconnect run, got %d", calls)
	}
}

func TestRouteMalformedFrameDropped(t *testing.T) {
	c := NewCoordinator(NewRegistry())
	s := newTestSession("A", "room1")

	c.route(s, []byte(`not json`))
	c.route(s, []byte(`{"to":"B"}`)) // missing type

	select {
	case <-s.sendCh:
		t.Fatal("expected no frame to be queued")
	default:
	}
}

func TestRouteRelayInjectsSenderAndStripsTo(t *testing.T) {
	r := NewRegistry()
	c := NewCoordinator(r)

	a := newTestSession("A", "room1")
	b := newTestSession("B", "room1")
	r.Join(a)
	r.Join(b)

	frame := `{"type":"signal","to":"B","sender":"spoof","sdp":"xyz"}`
	c.route(a, []byte(frame))

	select {
	case raw := <-b.sendCh:
		var got map[string]any
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("bad json relayed: %v", err)
		}
		if got["to"] != nil {
			t.Fatalf("expected 'to' stripped, got %v", got["to"])
		}
		if got["sender"] != "A" {
			t.Fatalf("expected sender overwritten to A, got %v", got["sender"])
		}
		if got["sdp"] != "xyz" {
			t.Fatalf("expected sdp preserved, got %v", got["sdp"])
		}
	default:
		t.Fatal("expected relayed frame in B's send queue")
	}
}

func TestRouteUnknownRecipientDropped(t *testing.T) {
	r := NewRegistry()
	c := NewCoordinator(r)
	a := newTestSession("A", "room1")
	r.Join(a)

	c.route(a, []byte(`{"type":"signal","to":"ZZZ"}`))

	select {
	case <-a.sendCh:
		t.Fatal("expected nothing queued for unknown recipient")
	default:
	}
}

func TestRouteRelayNotAllowedAcrossRooms(t *testing.T) {
	r := NewRegistry()
	c := NewCoordinator(r)
	a := newTestSession("A", "room1")
	b := newTestSession(identity.PeerId("B"), "room2")
	r.Join(a)
	r.Join(b)

	c.route(a, []byte(`{"type":"signal","to":"B"}`))

	select {
	case <-b.sendCh:
		t.Fatal("expected no cross-room delivery")
	default:
	}
}
