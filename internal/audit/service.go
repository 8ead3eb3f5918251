package audit

import (
	"context"

	"github.com/google/uuid"

	id "riskdesk/pkg/domain"
	"riskdesk/pkg/requestcontext"
)

// Service captures structured audit events. It is append-only and uses the
// store for persistence so tests can swap sinks easily. An optional outbox
// channel feeds the publisher worker; emission to the channel never blocks:
// the store is the source of truth, fan-out is best effort.
type Service struct {
	store  Store
	outbox chan<- Event
}

// Option configures the Service.
type Option func(*Service)

// WithOutbox attaches a channel consumed by a publisher worker.
func WithOutbox(outbox chan<- Event) Option {
	return func(s *Service) { s.outbox = outbox }
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record appends an immutable entry with a generated ID and timestamp. The
// timestamp comes from the request-scoped clock so one request's entries and
// risk windows agree.
func (s *Service) Record(ctx context.Context, eventType EventType, customerID id.CustomerID, details map[string]any) error {
	event := Event{
		ID:         uuid.NewString(),
		Timestamp:  requestcontext.Now(ctx),
		Type:       eventType,
		CustomerID: customerID,
		Details:    details,
		RequestID:  requestcontext.RequestID(ctx),
	}

	if err := s.store.Append(ctx, event); err != nil {
		return err
	}

	if s.outbox != nil {
		select {
		case s.outbox <- event:
		default:
			// Full outbox drops fan-out, never the store write.
		}
	}
	return nil
}

// ListByCustomer returns the entries recorded for one customer, oldest first.
func (s *Service) ListByCustomer(ctx context.Context, customerID id.CustomerID) ([]Event, error) {
	return s.store.ListByCustomer(ctx, customerID)
}

// ListRecent returns the most recent entries across all customers.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]Event, error) {
	return s.store.ListRecent(ctx, limit)
}
