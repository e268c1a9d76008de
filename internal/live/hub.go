// Package live fans out change notifications for owner-scoped collections.
// Services publish a notification after every mutation; each subscriber is
// then handed the full current result set by its feed handler (snapshot
// delivery, not diffs). Subscriptions coalesce bursts and are released on
// every exit path.
package live

import (
	"sync"

	"github.com/google/uuid"
)

// Collections that can be subscribed to
const (
	CollectionSales    = "sales"
	CollectionExpenses = "expenses"
	CollectionDebts    = "debts"
	CollectionWorkers  = "workers"
	CollectionTasks    = "tasks"
	CollectionTopics   = "topics"
)

// KnownCollection reports whether name is a subscribable collection
func KnownCollection(name string) bool {
	switch name {
	case CollectionSales, CollectionExpenses, CollectionDebts, CollectionWorkers, CollectionTasks, CollectionTopics:
		return true
	}
	return false
}

type topicKey struct {
	ownerID    uuid.UUID
	collection string
}

// Hub is the in-process change-notification fan-out
type Hub struct {
	mu   sync.RWMutex
	subs map[topicKey]map[chan struct{}]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{subs: make(map[topicKey]map[chan struct{}]struct{})}
}

// Subscribe registers for change notifications on one owner's collection.
// The returned channel carries one tick per batch of changes; ticks
// coalesce while the subscriber is busy. The cancel func must be called on
// teardown and is safe to call more than once.
func (h *Hub) Subscribe(ownerID uuid.UUID, collection string) (<-chan struct{}, func()) {
	key := topicKey{ownerID: ownerID, collection: collection}
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	if h.subs[key] == nil {
		h.subs[key] = make(map[chan struct{}]struct{})
	}
	h.subs[key][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			if set, ok := h.subs[key]; ok {
				delete(set, ch)
				if len(set) == 0 {
					delete(h.subs, key)
				}
			}
			h.mu.Unlock()
		})
	}
	return ch, cancel
}

// Notify wakes all subscribers of one owner's collection. Non-blocking: a
// subscriber that already has a pending tick is skipped.
func (h *Hub) Notify(ownerID uuid.UUID, collection string) {
	key := topicKey{ownerID: ownerID, collection: collection}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[key] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribers returns the number of active subscriptions on one owner's
// collection
func (h *Hub) Subscribers(ownerID uuid.UUID, collection string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[topicKey{ownerID: ownerID, collection: collection}])
}
