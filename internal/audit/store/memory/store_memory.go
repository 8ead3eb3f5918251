package memory

import (
	"context"
	"sync"

	"riskdesk/internal/audit"
	id "riskdesk/pkg/domain"
)

// InMemoryStore keeps the full audit trail in process. The single mutex-guarded
// append is the only mutation point in the whole service.
type InMemoryStore struct {
	mu     sync.RWMutex
	events []audit.Event
	byUser map[id.CustomerID][]int
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{byUser: make(map[id.CustomerID][]int)}
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	s.byUser[event.CustomerID] = append(s.byUser[event.CustomerID], len(s.events)-1)
	return nil
}

func (s *InMemoryStore) ListByCustomer(_ context.Context, customerID id.CustomerID) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	indexes := s.byUser[customerID]
	out := make([]audit.Event, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, s.events[i])
	}
	return out, nil
}

// ListRecent returns the last limit events in append order. A non-positive
// limit selects nothing.
func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]audit.Event, error) {
	if limit <= 0 {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	start := len(s.events) - limit
	if start < 0 {
		start = 0
	}
	return append([]audit.Event(nil), s.events[start:]...), nil
}

// Len reports the number of recorded events; test helper.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
