package audit

import (
	"context"
	"time"

	id "riskdesk/pkg/domain"
)

// EventType tags what kind of analysis produced an audit entry.
type EventType string

const (
	// EventTransactionValidation covers full risk analysis of a proposed
	// transfer, including the embedded SWIFT gate.
	EventTransactionValidation EventType = "transaction_validation"

	// EventCounterpartyVerification covers directory lookups exposed to
	// callers.
	EventCounterpartyVerification EventType = "counterparty_verification"

	// EventErrorDetection covers anomaly/input-mistake checks.
	EventErrorDetection EventType = "error_detection"

	// EventHistoryReview covers trailing-window history summaries.
	EventHistoryReview EventType = "history_review"
)

// Event is emitted from domain logic to capture each analysis performed. Keep
// it transport-agnostic so stores and sinks can fan out. Events are immutable
// once recorded; there is no update or delete path anywhere in this package.
type Event struct {
	ID         string
	Timestamp  time.Time
	Type       EventType
	CustomerID id.CustomerID
	// Details is a free-form summary of inputs and outcome. Values must be
	// JSON-marshalable; stores persist them verbatim.
	Details map[string]any
	// RequestID correlates the entry with HTTP logs.
	RequestID string
}

// Store persists audit events. Append-only by contract: implementations must
// not expose mutation or removal.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByCustomer(ctx context.Context, customerID id.CustomerID) ([]Event, error)
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}
