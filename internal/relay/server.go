package relay

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/nearcast/relay/internal/identity"
)

// Endpoint is the Connection Endpoint of spec.md §4.2: it accepts
// bidirectional frame streams at two path suffixes that differ only in the
// rtcSupported bit they attach to the resulting session. Grounded in
// internal/viewer/routes/call.go's wsUpgrader — the teacher's one
// browser-facing (not libp2p) WebSocket endpoint.
type Endpoint struct {
	coordinator *Coordinator
	upgrader    websocket.Upgrader
}

func NewEndpoint(coordinator *Coordinator) *Endpoint {
	return &Endpoint{
		coordinator: coordinator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Peers on the same LAN reach this over plain HTTP from
			// whatever origin the browser's address bar shows;
			// there is no cross-origin trust boundary to enforce here.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Register wires both upgrade paths onto mux.
func (e *Endpoint) Register(mux *http.ServeMux) {
	mux.HandleFunc("/server/webrtc", e.handle(true))
	mux.HandleFunc("/server/fallback", e.handle(false))
}

func (e *Endpoint) handle(rtcSupported bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, isNew := peerIdFromCookie(r)
		roomKey := resolveRoomKey(r)
		name := identity.New(id, r.Header.Get("User-Agent"))

		var respHeader http.Header
		if isNew {
			respHeader = http.Header{}
			respHeader.Add("Set-Cookie", (&http.Cookie{
				Name:     "peerid",
				Value:    string(id),
				SameSite: http.SameSiteStrictMode,
				Secure:   true,
			}).String())
		}

		conn, err := e.upgrader.Upgrade(w, r, respHeader)
		if err != nil {
			log.Printf("RELAY: upgrade failed: %v", err)
			return
		}

		session := newPeerSession(conn, id, name, rtcSupported, roomKey)
		go session.drainLoop()

		e.coordinator.Connect(session)
		e.coordinator.readLoop(session)
	}
}

// peerIdFromCookie implements spec.md §4.2 step 1: adopt the cookie's
// PeerId if present, otherwise mint a fresh one and report that the caller
// must set it on the upgrade response.
func peerIdFromCookie(r *http.Request) (identity.PeerId, bool) {
	c, err := r.Cookie("peerid")
	if err != nil || c.Value == "" {
		return identity.MintPeerId(), true
	}
	return identity.PeerId(c.Value), false
}
