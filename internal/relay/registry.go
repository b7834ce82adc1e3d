package relay

import (
	"sync"

	"github.com/nearcast/relay/internal/identity"
)

// RoomKey is the canonical network-address string rooms are indexed by.
type RoomKey string

// Registry is the process-wide mapping RoomKey -> PeerId -> PeerSession.
// All mutation is funneled through Join/Leave/Lookup/Others so the
// invariants in spec.md §3/§4.4 hold after every call: every reachable
// session has a live send sink, PeerIds are unique within a room, empty
// rooms are never retained, and a session belongs to at most one room.
//
// Mirrors internal/group/manager.go's hostedGroup: a mutex-guarded map plus
// snapshot-then-I/O-outside-lock broadcasts.
type Registry struct {
	mu    sync.Mutex
	rooms map[RoomKey]map[identity.PeerId]*PeerSession
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[RoomKey]map[identity.PeerId]*PeerSession)}
}

// Join inserts session into its room and returns the sessions that were
// already present (for announcement). The returned slice is a snapshot
// taken under the lock; callers do I/O on it after the lock is released.
func (r *Registry) Join(s *PeerSession) []*PeerSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[s.RoomKey]
	if !ok {
		room = make(map[identity.PeerId]*PeerSession)
		r.rooms[s.RoomKey] = room
	}

	others := snapshot(room)
	room[s.ID] = s
	return others
}

// Leave removes session from its room if present and returns the
// surviving sessions. Safe to call on a session that already left: it is a
// no-op and returns nil, so there is no one to announce the departure to.
func (r *Registry) Leave(s *PeerSession) []*PeerSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[s.RoomKey]
	if !ok {
		return nil
	}
	if _, present := room[s.ID]; !present {
		return nil
	}

	delete(room, s.ID)
	if len(room) == 0 {
		delete(r.rooms, s.RoomKey)
		return nil
	}
	return snapshot(room)
}

// Lookup returns the session for peerId within roomKey, if present.
func (r *Registry) Lookup(roomKey RoomKey, peerId identity.PeerId) (*PeerSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomKey]
	if !ok {
		return nil, false
	}
	s, ok := room[peerId]
	return s, ok
}

// Others returns every session in roomKey except exceptPeerId.
func (r *Registry) Others(roomKey RoomKey, exceptPeerId identity.PeerId) []*PeerSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomKey]
	if !ok {
		return nil
	}
	out := make([]*PeerSession, 0, len(room))
	for id, s := range room {
		if id == exceptPeerId {
			continue
		}
		out = append(out, s)
	}
	return out
}

// RoomCount and PeerCount back the admin /stats endpoint; no peer
// identifiers are exposed, only counts.
func (r *Registry) RoomCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rooms)
}

func (r *Registry) PeerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, room := range r.rooms {
		n += len(room)
	}
	return n
}

func snapshot(room map[identity.PeerId]*PeerSession) []*PeerSession {
	out := make([]*PeerSession, 0, len(room))
	for _, s := range room {
		out = append(out, s)
	}
	return out
}
