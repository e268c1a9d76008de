package live

import (
	"testing"

	"github.com/google/uuid"
)

func TestKnownCollection(t *testing.T) {
	for _, name := range []string{CollectionSales, CollectionExpenses, CollectionDebts, CollectionWorkers, CollectionTasks, CollectionTopics} {
		if !KnownCollection(name) {
			t.Errorf("KnownCollection(%q) = false", name)
		}
	}
	if KnownCollection("orders") {
		t.Error("unknown name accepted as a live collection")
	}
	if KnownCollection("") {
		t.Error("empty name is not a live collection")
	}
}

func TestSubscribeAndNotify(t *testing.T) {
	hub := NewHub()
	owner := uuid.New()

	ticks, cancel := hub.Subscribe(owner, CollectionSales)
	defer cancel()

	hub.Notify(owner, CollectionSales)

	select {
	case <-ticks:
	default:
		t.Fatal("expected a pending tick after Notify")
	}
}

func TestNotifyScopedToOwnerAndCollection(t *testing.T) {
	hub := NewHub()
	owner := uuid.New()
	other := uuid.New()

	ticks, cancel := hub.Subscribe(owner, CollectionSales)
	defer cancel()

	hub.Notify(other, CollectionSales)
	hub.Notify(owner, CollectionTasks)

	select {
	case <-ticks:
		t.Fatal("received a tick for another owner or collection")
	default:
	}
}

func TestNotifyCoalesces(t *testing.T) {
	hub := NewHub()
	owner := uuid.New()

	ticks, cancel := hub.Subscribe(owner, CollectionDebts)
	defer cancel()

	// A burst of changes while the subscriber is busy collapses to one tick
	for i := 0; i < 5; i++ {
		hub.Notify(owner, CollectionDebts)
	}

	<-ticks
	select {
	case <-ticks:
		t.Fatal("burst should coalesce into a single tick")
	default:
	}
}

func TestCancelReleasesSubscription(t *testing.T) {
	hub := NewHub()
	owner := uuid.New()

	_, cancel := hub.Subscribe(owner, CollectionWorkers)
	if got := hub.Subscribers(owner, CollectionWorkers); got != 1 {
		t.Fatalf("Subscribers() = %d, want 1", got)
	}

	cancel()
	if got := hub.Subscribers(owner, CollectionWorkers); got != 0 {
		t.Fatalf("Subscribers() after cancel = %d, want 0", got)
	}

	// Cancel is safe to call again
	cancel()
}

func TestNotifyWithoutSubscribers(t *testing.T) {
	hub := NewHub()
	// Must not panic or block
	hub.Notify(uuid.New(), CollectionSales)
}
