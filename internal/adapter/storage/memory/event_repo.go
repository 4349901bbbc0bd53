package memory

import (
	"context"
	"sync"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"
)

// EventRepo keeps events in insertion order.
type EventRepo struct {
	mu     sync.RWMutex
	events []domain.Event
}

func NewEventRepo() *EventRepo {
	return &EventRepo{}
}

func (r *EventRepo) Create(_ context.Context, evt *domain.Event) error {
	r.mu.Lock()
	r.events = append(r.events, *evt)
	r.mu.Unlock()
	return nil
}

// ListRecent returns up to limit events, newest first.
func (r *EventRepo) ListRecent(_ context.Context, limit int) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.events)
	if limit > n {
		limit = n
	}
	out := make([]domain.Event, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, r.events[i])
	}
	return out, nil
}
