package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"riskdesk/internal/audit"
	id "riskdesk/pkg/domain"
)

// Store implements audit.Store on a Postgres table. Rows are insert-only; no
// update or delete statement exists in this package, which is what makes the
// log append-only in practice.
type Store struct {
	db *sql.DB
}

// New creates a PostgreSQL audit store. The caller owns the pool.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the audit table when missing. Kept here rather than in
// a migration tool because this is the only table the service owns.
func (s *Store) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS audit_events (
    id          UUID PRIMARY KEY,
    occurred_at TIMESTAMPTZ NOT NULL,
    event_type  TEXT        NOT NULL,
    customer_id BIGINT      NOT NULL,
    request_id  TEXT        NOT NULL DEFAULT '',
    details     JSONB       NOT NULL DEFAULT '{}'::jsonb
);
CREATE INDEX IF NOT EXISTS audit_events_customer_idx ON audit_events (customer_id, occurred_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure audit schema: %w", err)
	}
	return nil
}

func (s *Store) Append(ctx context.Context, event audit.Event) error {
	details, err := json.Marshal(event.Details)
	if err != nil {
		return fmt.Errorf("marshal audit details: %w", err)
	}

	const q = `
INSERT INTO audit_events (id, occurred_at, event_type, customer_id, request_id, details)
VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := s.db.ExecContext(ctx, q,
		event.ID,
		event.Timestamp,
		string(event.Type),
		int64(event.CustomerID),
		event.RequestID,
		details,
	); err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func (s *Store) ListByCustomer(ctx context.Context, customerID id.CustomerID) ([]audit.Event, error) {
	const q = `
SELECT id, occurred_at, event_type, customer_id, request_id, details
FROM audit_events
WHERE customer_id = $1
ORDER BY occurred_at`
	rows, err := s.db.QueryContext(ctx, q, int64(customerID))
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (s *Store) ListRecent(ctx context.Context, limit int) ([]audit.Event, error) {
	const q = `
SELECT id, occurred_at, event_type, customer_id, request_id, details
FROM audit_events
ORDER BY occurred_at DESC
LIMIT $1`
	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent audit events: %w", err)
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		return nil, err
	}
	// Rows come back newest first; present append order like the other stores.
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	return events, nil
}

func scanEvents(rows *sql.Rows) ([]audit.Event, error) {
	var events []audit.Event
	for rows.Next() {
		var (
			event      audit.Event
			occurredAt time.Time
			eventType  string
			customerID int64
			details    []byte
		)
		if err := rows.Scan(&event.ID, &occurredAt, &eventType, &customerID, &event.RequestID, &details); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		event.Timestamp = occurredAt
		event.Type = audit.EventType(eventType)
		event.CustomerID = id.CustomerID(customerID)
		if len(details) > 0 {
			if err := json.Unmarshal(details, &event.Details); err != nil {
				return nil, fmt.Errorf("unmarshal audit details: %w", err)
			}
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
