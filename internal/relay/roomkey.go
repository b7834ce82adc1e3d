package relay

import (
	"net"
	"net/http"
	"strings"
)

// resolveRoomKey implements spec.md §4.2 step 2: prefer the first
// comma-separated element of a forwarding header, trimmed, else fall back
// to the transport-level remote address, with loopback normalization.
func resolveRoomKey(r *http.Request) RoomKey {
	addr := remoteAddr(r)
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.SplitN(fwd, ",", 2)[0])
		if first != "" {
			addr = first
		}
	}
	return RoomKey(normalizeLoopback(addr))
}

func remoteAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func normalizeLoopback(addr string) string {
	switch addr {
	case "::1", "::ffff:127.0.0.1":
		return "127.0.0.1"
	default:
		return addr
	}
}
