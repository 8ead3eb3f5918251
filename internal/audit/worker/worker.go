// Package worker drains the audit outbox channel into a publisher. It keeps
// background fan-out testable without wiring queue implementations into the
// service.
package worker

import (
	"context"
	"log/slog"

	"riskdesk/internal/audit"
)

// Publisher delivers one event to an external sink.
type Publisher interface {
	Publish(ctx context.Context, event audit.Event) error
}

// Worker consumes audit events from a channel and publishes them. Publish
// failures are logged and dropped; the in-process store already holds the
// event, so losing fan-out is acceptable and never stops the loop.
type Worker struct {
	publisher Publisher
	inbox     <-chan audit.Event
	logger    *slog.Logger
}

func New(publisher Publisher, inbox <-chan audit.Event, logger *slog.Logger) *Worker {
	return &Worker{publisher: publisher, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.publisher.Publish(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "audit publish failed",
					"event_id", event.ID,
					"event_type", event.Type,
					"error", err,
				)
			}
		}
	}
}
