package relay

import "log"

// Coordinator ties the registry, router, and keepalive scheduler together:
// on connect it joins the room and announces the newcomer; on disconnect it
// leaves the room and announces the departure. Mirrors the join/notify
// sequencing in internal/group/manager.go's handleIncomingStream and
// cleanup-on-disconnect paths.
type Coordinator struct {
	registry *Registry
}

func NewCoordinator(registry *Registry) *Coordinator {
	return &Coordinator{registry: registry}
}

// Connect runs the full connect sequence from spec.md §4.7, steps 1-5,
// synchronously: join, announce to existing members, roster + display-name
// to the newcomer, then arm keepalive. Steps 2-4 must complete before any
// other inbound work for this room can observe state, which is satisfied
// here because Join's snapshot and these sends all happen before Connect
// returns and the caller starts reading frames.
func (c *Coordinator) Connect(s *PeerSession) {
	others := c.registry.Join(s)

	joined := peerJoinedFrame{Type: TypePeerJoined, Peer: newPublicInfo(s)}
	for _, p := range others {
		p.send(joined)
	}

	peerInfos := make([]publicInfo, 0, len(others))
	for _, p := range others {
		peerInfos = append(peerInfos, newPublicInfo(p))
	}
	s.send(peersFrame{Type: TypePeers, Peers: peerInfos})

	s.send(displayNameFrame{
		Type: TypeDisplayName,
		Message: displayNamePayload{
			DisplayName: s.Name.DisplayName,
			DeviceName:  s.Name.DeviceName,
		},
	})

	s.onDisconnect = func(reason string) {
		c.disconnect(s, reason)
	}
	armKeepalive(s)

	log.Printf("RELAY: %s joined room %s (%d other peer(s))", s.ID, s.RoomKey, len(others))
}

// disconnect runs the teardown sequence from spec.md §4.7: idempotence is
// already guaranteed by PeerSession.disconnect's sync.Once, so this body
// runs at most once per session regardless of which path (socket close,
// socket error, client "disconnect" frame, keepalive eviction) triggered it.
func (c *Coordinator) disconnect(s *PeerSession, reason string) {
	if s.cancel != nil {
		s.cancel()
	}

	survivors := c.registry.Leave(s)

	if s.conn != nil {
		_ = s.conn.Close()
	}

	left := peerLeftFrame{Type: TypePeerLeft, PeerId: string(s.ID)}
	for _, p := range survivors {
		p.send(left)
	}

	log.Printf("RELAY: %s left room %s (%s)", s.ID, s.RoomKey, reason)
}

// readLoop owns the session's read side: it runs until the socket closes or
// errors, dispatching every frame to the router. A read error or close is a
// transport error and is treated as a disconnect.
func (c *Coordinator) readLoop(s *PeerSession) {
	defer s.disconnect("read loop exit")

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		c.route(s, data)
	}
}
