// Package relay implements the signaling and room server: connection
// endpoint, peer sessions, room registry, message router, keepalive
// scheduler, and the lifecycle coordinator that ties them together.
package relay

import "github.com/nearcast/relay/internal/identity"

// Well-known inbound type values the router recognizes by name. Everything
// else is treated as an addressed relay frame.
const (
	TypeDisconnect = "disconnect"
	TypePong       = "pong"
)

// Well-known outbound type values the server itself emits.
const (
	TypeDisplayName = "display-name"
	TypePeers       = "peers"
	TypePeerJoined  = "peer-joined"
	TypePeerLeft    = "peer-left"
	TypePing        = "ping"
)

// publicInfo is the shape of a peer as advertised to other peers in its
// room: never includes roomKey, lastBeat, or the send sink.
type publicInfo struct {
	ID           string                  `json:"id"`
	Name         identity.DisplayIdentity `json:"name"`
	RTCSupported bool                    `json:"rtcSupported"`
}

func newPublicInfo(s *PeerSession) publicInfo {
	return publicInfo{
		ID:           string(s.ID),
		Name:         s.Name,
		RTCSupported: s.RTCSupported,
	}
}

// displayNamePayload is the exact wire shape required by spec: field name
// "message", not "payload".
type displayNamePayload struct {
	DisplayName string `json:"displayName"`
	DeviceName  string `json:"deviceName"`
}

type peersFrame struct {
	Type  string       `json:"type"`
	Peers []publicInfo `json:"peers"`
}

type peerJoinedFrame struct {
	Type string     `json:"type"`
	Peer publicInfo `json:"peer"`
}

type peerLeftFrame struct {
	Type   string `json:"type"`
	PeerId string `json:"peerId"`
}

type pingFrame struct {
	Type string `json:"type"`
}

type displayNameFrame struct {
	Type    string              `json:"type"`
	Message displayNamePayload `json:"message"`
}
