package runtime

import (
	"sync"

	"mentor-chat/contract"
	"mentor-chat/domain"

	"github.com/google/uuid"
)

// Registry tracks live subscriptions per room. One member can hold several
// open connections; each connection is its own subscription.
type Registry struct {
	mu        sync.RWMutex
	sessions  map[contract.SubscriptionID]contract.EventSink
	roomSubs  map[domain.RoomID]map[contract.SubscriptionID]struct{}
	subMember map[contract.SubscriptionID]int64
}

func NewRegistry() *Registry {
	return &Registry{
		sessions:  make(map[contract.SubscriptionID]contract.EventSink),
		roomSubs:  make(map[domain.RoomID]map[contract.SubscriptionID]struct{}),
		subMember: make(map[contract.SubscriptionID]int64),
	}
}

// SinksForRoom resolves the currently active sinks of a room. Two-step
// lookup: subscription ids from the room set, then sinks from the session
// directory. Returns nil for an unknown or empty room.
func (r *Registry) SinksForRoom(roomID domain.RoomID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs, ok := r.roomSubs[roomID]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for id := range subs {
		if sink, exists := r.sessions[id]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

// Subscribe registers a connection's sink under a fresh subscription id and
// assigns it to the room. The room set is initialized on the fly.
func (r *Registry) Subscribe(memberID int64, roomID domain.RoomID, sink contract.EventSink) contract.SubscriptionID {
	id := uuid.New()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[id] = sink
	r.subMember[id] = memberID
	if _, ok := r.roomSubs[roomID]; !ok {
		r.roomSubs[roomID] = make(map[contract.SubscriptionID]struct{})
	}
	r.roomSubs[roomID][id] = struct{}{}
	return id
}

// Unsubscribe removes a connection from the registry and its room.
// Empty room sets are dropped so the map does not grow forever.
func (r *Registry) Unsubscribe(id contract.SubscriptionID, roomID domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	delete(r.subMember, id)

	if subs, ok := r.roomSubs[roomID]; ok {
		delete(subs, id)
		if len(subs) == 0 {
			delete(r.roomSubs, roomID)
		}
	}
}

// MemberOf reports which member holds a subscription, for logging.
func (r *Registry) MemberOf(id contract.SubscriptionID) (int64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	memberID, ok := r.subMember[id]
	return memberID, ok
}
