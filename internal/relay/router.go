package relay

import (
	"encoding/json"

	"github.com/nearcast/relay/internal/identity"
)

// route implements spec.md §4.5: parse, dispatch on the discriminator
// field, and for anything else treat it as an addressed relay frame.
// Malformed frames and frames missing a usable "type" are dropped silently;
// the session stays open.
func (c *Coordinator) route(s *PeerSession, raw []byte) {
	var frame map[string]any
	if err := json.Unmarshal(raw, &frame); err != nil {
		return
	}

	typ, ok := frame["type"].(string)
	if !ok || typ == "" {
		return
	}

	switch typ {
	case TypeDisconnect:
		s.disconnect("client requested disconnect")
	case TypePong:
		s.touch()
	default:
		c.relay(s, typ, frame)
	}
}

// relay rewrites and forwards an addressed frame unconditionally, per
// spec.md §4.5 — this path also carries the fallback channel's file-payload
// chunks, so nothing here may throttle or drop a well-formed addressed
// frame. The server never trusts a client-supplied "sender" field: it is
// always overwritten with the verified identifier of the session the frame
// arrived on.
func (c *Coordinator) relay(s *PeerSession, typ string, frame map[string]any) {
	toRaw, ok := frame["to"]
	if !ok {
		return
	}
	to, ok := toRaw.(string)
	if !ok || to == "" {
		return
	}

	target, ok := c.registry.Lookup(s.RoomKey, identity.PeerId(to))
	if !ok {
		return
	}

	delete(frame, "to")
	frame["type"] = typ
	frame["sender"] = string(s.ID)
	target.send(frame)
}
