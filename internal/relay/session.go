package relay

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nearcast/relay/internal/identity"
)

const (
	sendQueueSize = 32
	writeTimeout  = 5 * time.Second
	maxFrameBytes = 64 * 1024
)

// processStart anchors lastBeat's readings to a monotonic clock: storing
// time.Since(processStart) rather than a wall-clock Unix timestamp keeps the
// keepalive eviction check immune to clock adjustments, per spec.md §3's
// "lastBeat: monotonic timestamp" field.
var processStart = time.Now()

// PeerSession owns one live connection. Name and ID are immutable after
// construction; lastBeat is advanced by the router when a pong arrives
// (touch) and read by the keepalive scheduler's eviction check. The send path
// is serialized through sendCh + drainLoop so concurrent announcements never
// interleave bytes on one socket. ctx/cancel are the session's teardown
// signal: drainLoop and the keepalive loop both select on ctx.Done() and
// exit on it, so disconnect never has to close sendCh out from under a
// concurrent send.
type PeerSession struct {
	ID           identity.PeerId
	Name         identity.DisplayIdentity
	RTCSupported bool
	RoomKey      RoomKey

	conn   *websocket.Conn
	sendCh chan []byte

	lastBeat atomic.Int64 // nanoseconds since processStart (monotonic)

	// onDisconnect is armed by the lifecycle coordinator right after
	// construction. disconnectOnce makes every teardown path (socket
	// close, socket error, explicit "disconnect" frame, keepalive
	// eviction) collapse onto a single run, per the spec's idempotent
	// leave requirement.
	onDisconnect   func(reason string)
	disconnectOnce sync.Once

	ctx    context.Context
	cancel context.CancelFunc
}

func newPeerSession(conn *websocket.Conn, id identity.PeerId, name identity.DisplayIdentity, rtcSupported bool, roomKey RoomKey) *PeerSession {
	ctx, cancel := context.WithCancel(context.Background())
	s := &PeerSession{
		ID:           id,
		Name:         name,
		RTCSupported: rtcSupported,
		RoomKey:      roomKey,
		conn:         conn,
		sendCh:       make(chan []byte, sendQueueSize),
		ctx:          ctx,
		cancel:       cancel,
	}
	s.lastBeat.Store(int64(time.Since(processStart)))
	conn.SetReadLimit(maxFrameBytes)
	return s
}

// send serializes v and enqueues it for delivery. Never blocks and never
// reports failure to the caller: a full queue or a dead socket just drops
// the frame, matching the "send failures are silently dropped" rule.
func (s *PeerSession) send(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("RELAY: failed to marshal frame for %s: %v", s.ID, err)
		return
	}
	select {
	case <-s.ctx.Done():
		log.Printf("RELAY: dropping frame for %s, session already torn down", s.ID)
	case s.sendCh <- b:
	default:
		log.Printf("RELAY: send buffer full for %s, dropping frame", s.ID)
	}
}

func (s *PeerSession) touch() {
	s.lastBeat.Store(int64(time.Since(processStart)))
}

// beatAge reports how long it has been since the last pong, using the same
// monotonic clock throughout so it cannot be fooled by a wall-clock jump.
func (s *PeerSession) beatAge() time.Duration {
	return time.Since(processStart) - time.Duration(s.lastBeat.Load())
}

// drainLoop writes queued frames to the socket until ctx is cancelled or a
// write fails. A write failure is a transport error and triggers the
// session's disconnect path. sendCh is never closed by the producer side
// (see send): exit is driven entirely by ctx, matching
// internal/group/manager.go's memberConn.drainLoop.
func (s *PeerSession) drainLoop() {
	for {
		select {
		case <-s.ctx.Done():
			return
		case b := <-s.sendCh:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := s.conn.WriteMessage(websocket.TextMessage, b); err != nil {
				s.disconnect("write error")
				return
			}
		}
	}
}

// disconnect runs the armed onDisconnect callback exactly once, regardless
// of how many teardown paths race to call it.
func (s *PeerSession) disconnect(reason string) {
	s.disconnectOnce.Do(func() {
		if s.onDisconnect != nil {
			s.onDisconnect(reason)
		}
	})
}
