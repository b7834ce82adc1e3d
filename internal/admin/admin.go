// Package admin exposes a small operator-facing surface: liveness, room/peer
// counts, and a rendered protocol doc. None of it is reachable from, or
// alters, the peer-facing relay paths. Grounded in
// internal/rendezvous/server.go's admin routes and embedded Markdown docs
// page, trimmed down to what a stateless relay needs.
package admin

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/nearcast/relay/internal/relay"
	"github.com/yuin/goldmark"
)

//go:embed docs.md
var docsMarkdown []byte

// registry is what /stats reads: room/peer counts only; no peer identifiers
// are exposed.
type registry interface {
	RoomCount() int
	PeerCount() int
}

// Register wires the admin routes onto mux. reg is typically a
// *relay.Registry; accepted as an interface here so tests can stub it.
func Register(mux *http.ServeMux, reg registry) {
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]int{
			"rooms": reg.RoomCount(),
			"peers": reg.PeerCount(),
		})
	})

	mux.HandleFunc("/docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := goldmark.Convert(docsMarkdown, w); err != nil {
			http.Error(w, "failed to render docs", http.StatusInternalServerError)
		}
	})
}

var _ registry = (*relay.Registry)(nil)
