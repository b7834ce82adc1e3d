package relay

import (
	"context"
	"time"
)

// PingInterval and the eviction window are fixed by spec.md §4.6: a ping
// every 30s, eviction once 2x that interval passes without a pong.
const (
	PingInterval   = 30 * time.Second
	evictionWindow = 2 * PingInterval
)

// armKeepalive starts the per-session keepalive loop on the session's own
// ctx, the same teardown signal drainLoop selects on, so a single
// s.cancel() call from the lifecycle coordinator stops both.
func armKeepalive(s *PeerSession) {
	go keepaliveLoop(s.ctx, s, PingInterval, evictionWindow)
}

// keepaliveLoop takes interval/window as parameters (rather than reading the
// package constants directly) so tests can drive the same decision logic on
// a much shorter clock.
func keepaliveLoop(ctx context.Context, s *PeerSession, interval, window time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.beatAge() > window {
				s.disconnect("keepalive eviction")
				return
			}
			s.send(pingFrame{Type: TypePing})
		}
	}
}
