package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"riskdesk/internal/risk"
	id "riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
	"riskdesk/pkg/platform/httputil"
	"riskdesk/pkg/requestcontext"
)

const (
	defaultHistoryDays = 30
	maxHistoryDays     = 365
)

// Service defines the interface for risk operations.
type Service interface {
	ValidateSwift(ctx context.Context, code string) bool
	Analyze(ctx context.Context, customerID id.CustomerID, input risk.AnalyzeInput) risk.Assessment
	DetectErrors(ctx context.Context, customerID id.CustomerID, amount decimal.Decimal, description string) []string
	VerifyCounterparty(ctx context.Context, customerID id.CustomerID, code id.SwiftCode) risk.CounterpartyReport
	ReviewHistory(ctx context.Context, customerID id.CustomerID, days int) (risk.HistoryReport, error)
}

// Handler wires risk endpoints to the risk service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a risk handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts risk endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/risk/swift/validate", h.HandleValidateSwift)
	r.Post("/risk/analyze", h.HandleAnalyze)
	r.Post("/risk/errors/detect", h.HandleDetectErrors)
	r.Get("/risk/counterparty/{swift}", h.HandleVerifyCounterparty)
	r.Get("/risk/history", h.HandleHistory)
}

// HandleValidateSwift handles POST /v1/risk/swift/validate requests.
func (h *Handler) HandleValidateSwift(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	if _, ok := h.requireCustomer(ctx, w); !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[ValidateSwiftRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	valid := h.service.ValidateSwift(ctx, req.SwiftCode)
	httputil.WriteJSON(w, http.StatusOK, &ValidateSwiftResponse{
		SwiftCode: req.SwiftCode,
		Valid:     valid,
	})
}

// HandleAnalyze handles POST /v1/risk/analyze requests.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	customerID, ok := h.requireCustomer(ctx, w)
	if !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[AnalyzeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	assessment := h.service.Analyze(ctx, customerID, risk.AnalyzeInput{
		SwiftCode:   req.SwiftCode,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
	})

	h.logger.InfoContext(ctx, "transaction analyzed",
		"request_id", requestID,
		"customer_id", customerID,
		"swift_code", req.SwiftCode,
		"risk_score", assessment.Score,
		"approved", assessment.Approved,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromAssessment(assessment))
}

// HandleDetectErrors handles POST /v1/risk/errors/detect requests.
func (h *Handler) HandleDetectErrors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	customerID, ok := h.requireCustomer(ctx, w)
	if !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[DetectErrorsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	issues := h.service.DetectErrors(ctx, customerID, req.Amount, req.Description)
	if issues == nil {
		issues = []string{}
	}
	httputil.WriteJSON(w, http.StatusOK, &DetectErrorsResponse{Issues: issues})
}

// HandleVerifyCounterparty handles GET /v1/risk/counterparty/{swift} requests.
func (h *Handler) HandleVerifyCounterparty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customerID, ok := h.requireCustomer(ctx, w)
	if !ok {
		return
	}

	code, err := parseCounterpartyCode(chi.URLParam(r, "swift"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	report := h.service.VerifyCounterparty(ctx, customerID, code)
	httputil.WriteJSON(w, http.StatusOK, FromCounterpartyReport(report))
}

// HandleHistory handles GET /v1/risk/history requests.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	customerID, ok := h.requireCustomer(ctx, w)
	if !ok {
		return
	}

	days := defaultHistoryDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxHistoryDays {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "days must be between 1 and 365"))
			return
		}
		days = parsed
	}

	report, err := h.service.ReviewHistory(ctx, customerID, days)
	if err != nil {
		h.logger.WarnContext(ctx, "history review failed",
			"request_id", requestID,
			"customer_id", customerID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromHistoryReport(report))
}

// requireCustomer resolves the authenticated customer or writes a 401.
func (h *Handler) requireCustomer(ctx context.Context, w http.ResponseWriter) (id.CustomerID, bool) {
	customerID := requestcontext.CustomerID(ctx)
	if customerID.IsZero() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return 0, false
	}
	return customerID, true
}
