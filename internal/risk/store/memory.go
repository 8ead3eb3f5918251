package store

import (
	"context"
	"errors"
	"sync"

	"riskdesk/internal/risk/models"
	id "riskdesk/pkg/domain"
	"riskdesk/pkg/platform/sentinel"
)

// In-memory stores keep the fixture snapshot lightweight and testable. They
// intentionally favor clarity over performance.
type InMemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[id.CustomerID]models.UserProfile
}

func NewInMemoryProfileStore() *InMemoryProfileStore {
	return &InMemoryProfileStore{profiles: make(map[id.CustomerID]models.UserProfile)}
}

func (s *InMemoryProfileStore) Save(_ context.Context, profile models.UserProfile) error {
	if profile.CustomerID.IsZero() {
		return errors.Join(sentinel.ErrInvalidState, errors.New("profile requires a customer id"))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.CustomerID] = profile
	return nil
}

func (s *InMemoryProfileStore) FindByCustomer(_ context.Context, customerID id.CustomerID) (models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if profile, ok := s.profiles[customerID]; ok {
		return profile, nil
	}
	return models.UserProfile{}, sentinel.ErrNotFound
}

// AppendTransaction adds a history entry; history is append-only.
func (s *InMemoryProfileStore) AppendTransaction(_ context.Context, customerID id.CustomerID, tx models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[customerID]
	if !ok {
		return sentinel.ErrNotFound
	}
	profile.History = append(profile.History, tx)
	s.profiles[customerID] = profile
	return nil
}

type InMemoryCounterpartyStore struct {
	mu      sync.RWMutex
	parties map[id.SwiftCode]models.Counterparty
}

func NewInMemoryCounterpartyStore() *InMemoryCounterpartyStore {
	return &InMemoryCounterpartyStore{parties: make(map[id.SwiftCode]models.Counterparty)}
}

func (s *InMemoryCounterpartyStore) Save(_ context.Context, party models.Counterparty) error {
	party.RiskLevel = models.ClampRiskLevel(party.RiskLevel)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parties[party.SwiftCode] = party
	return nil
}

func (s *InMemoryCounterpartyStore) FindBySwift(_ context.Context, code id.SwiftCode) (models.Counterparty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if party, ok := s.parties[code]; ok {
		return party, nil
	}
	return models.Counterparty{}, sentinel.ErrNotFound
}

func (s *InMemoryCounterpartyStore) Exists(_ context.Context, code id.SwiftCode) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.parties[code]
	return ok, nil
}
