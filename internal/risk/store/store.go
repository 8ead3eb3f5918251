package store

//go:generate mockgen -source=store.go -destination=mocks/mocks.go -package=mocks ProfileStore,CounterpartyStore

import (
	"context"

	"riskdesk/internal/risk/models"
	id "riskdesk/pkg/domain"
)

// Stores are interface-driven to keep the rules engine testable and to allow
// swapping in-memory, cached, or external persistence without rewiring
// business code. Both stores are read-mostly after seeding; the service layer
// treats them as immutable snapshots.
type ProfileStore interface {
	FindByCustomer(ctx context.Context, customerID id.CustomerID) (models.UserProfile, error)
}

// CounterpartyStore is the directory of receiving institutions. Lookups for
// unlisted codes return sentinel.ErrNotFound; callers decide whether absence
// is an error or a risk signal.
type CounterpartyStore interface {
	FindBySwift(ctx context.Context, code id.SwiftCode) (models.Counterparty, error)
	Exists(ctx context.Context, code id.SwiftCode) (bool, error)
}
