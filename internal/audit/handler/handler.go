package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"riskdesk/internal/audit"
	id "riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
	"riskdesk/pkg/platform/httputil"
	"riskdesk/pkg/requestcontext"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 500
)

// Service exposes the audit trail for read access.
type Service interface {
	ListByCustomer(ctx context.Context, customerID id.CustomerID) ([]audit.Event, error)
}

// Handler serves the audit trail endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an audit handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts audit endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/audit/events", h.HandleListEvents)
}

// EventResponse is the wire form of a single audit entry.
type EventResponse struct {
	ID         string         `json:"id"`
	Timestamp  string         `json:"timestamp"`
	EventType  string         `json:"event_type"`
	CustomerID int64          `json:"customer_id"`
	Details    map[string]any `json:"details"`
	RequestID  string         `json:"request_id,omitempty"`
}

// ListEventsResponse is the body for GET /v1/audit/events.
type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
	Count  int             `json:"count"`
}

// HandleListEvents handles GET /v1/audit/events requests. Events belong to
// the authenticated customer; the newest entries come last, matching append
// order.
func (h *Handler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	customerID := requestcontext.CustomerID(ctx)
	if customerID.IsZero() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	limit := defaultEventLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxEventLimit {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "limit must be between 1 and 500"))
			return
		}
		limit = parsed
	}

	events, err := h.service.ListByCustomer(ctx, customerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "audit listing failed",
			"request_id", requestID,
			"customer_id", customerID,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInternal, "audit listing failed", err))
		return
	}

	if len(events) > limit {
		events = events[len(events)-limit:]
	}

	out := make([]EventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, EventResponse{
			ID:         event.ID,
			Timestamp:  event.Timestamp.UTC().Format(time.RFC3339),
			EventType:  string(event.Type),
			CustomerID: int64(event.CustomerID),
			Details:    event.Details,
			RequestID:  event.RequestID,
		})
	}

	httputil.WriteJSON(w, http.StatusOK, &ListEventsResponse{Events: out, Count: len(out)})
}
