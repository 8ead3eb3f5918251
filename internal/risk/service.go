package risk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"riskdesk/internal/audit"
	"riskdesk/internal/risk/metrics"
	"riskdesk/internal/risk/models"
	"riskdesk/internal/risk/store"
	id "riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
	"riskdesk/pkg/platform/sentinel"
	"riskdesk/pkg/requestcontext"
)

// Auditor records one entry per exposed analysis. Satisfied by audit.Service.
type Auditor interface {
	Record(ctx context.Context, eventType audit.EventType, customerID id.CustomerID, details map[string]any) error
}

// Service orchestrates the rules engine over the stores and emits audit
// entries. Every operation degrades to a conservative high-risk result rather
// than failing: the consuming layer must always have a score to act on.
type Service struct {
	profiles store.ProfileStore
	parties  store.CounterpartyStore
	auditor  Auditor
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewService(profiles store.ProfileStore, parties store.CounterpartyStore, auditor Auditor, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		profiles: profiles,
		parties:  parties,
		auditor:  auditor,
		logger:   logger,
		metrics:  m,
	}
}

// ValidateSwift checks both structure and directory existence. A structurally
// valid but unlisted code is rejected here; Analyze still scores unknown codes
// through its own lookup path. No side effects beyond metrics.
func (s *Service) ValidateSwift(ctx context.Context, code string) bool {
	if !id.IsStructurallyValid(code) {
		s.metrics.IncSwiftValidation("invalid_format")
		return false
	}
	exists, err := s.parties.Exists(ctx, id.SwiftCode(code))
	if err != nil {
		// Directory unavailable reads as unlisted: conservative rejection.
		s.logger.WarnContext(ctx, "counterparty existence check failed",
			"request_id", requestcontext.RequestID(ctx),
			"swift_code", code,
			"error", err,
		)
		s.metrics.IncSwiftValidation("unlisted")
		return false
	}
	if !exists {
		s.metrics.IncSwiftValidation("unlisted")
		return false
	}
	s.metrics.IncSwiftValidation("valid")
	return true
}

// AnalyzeInput carries the caller-supplied transaction parameters.
type AnalyzeInput struct {
	SwiftCode   string
	Amount      decimal.Decimal
	Currency    string
	Description string
}

// Analyze scores a proposed transaction against the customer's profile and
// the counterparty directory. Unknown customers short-circuit to the maximal
// score; unknown counterparties are scored, not rejected.
func (s *Service) Analyze(ctx context.Context, customerID id.CustomerID, input AnalyzeInput) Assessment {
	start := time.Now()
	now := requestcontext.Now(ctx)

	tx := models.Transaction{
		ID:          "TXN-" + uuid.NewString(),
		FromAccount: fmt.Sprintf("US%09d", int64(customerID)),
		ToAccount:   "PENDING",
		Amount:      input.Amount,
		Currency:    input.Currency,
		SwiftCode:   id.SwiftCode(input.SwiftCode),
		Timestamp:   now,
		Description: input.Description,
		Status:      models.TransactionPending,
	}

	profile, err := s.profiles.FindByCustomer(ctx, customerID)
	if err != nil {
		assessment := UnknownCustomerAssessment(tx.ID)
		s.recordAssessment(ctx, customerID, tx, assessment)
		s.metrics.IncAssessment("unknown_customer")
		s.metrics.ObserveAnalyzeLatency(time.Since(start))
		return assessment
	}

	// Separate lookup path from ValidateSwift: absence is a signal here.
	var counterparty *models.Counterparty
	if party, err := s.parties.FindBySwift(ctx, tx.SwiftCode); err == nil {
		counterparty = &party
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		s.logger.WarnContext(ctx, "counterparty lookup failed, scoring as unknown",
			"request_id", requestcontext.RequestID(ctx),
			"swift_code", tx.SwiftCode,
			"error", err,
		)
	}

	assessment := ScoreTransaction(profile, counterparty, tx, now)
	s.recordAssessment(ctx, customerID, tx, assessment)

	outcome := "review"
	if assessment.Approved {
		outcome = "approved"
	}
	s.metrics.IncAssessment(outcome)
	s.metrics.ObserveAnalyzeLatency(time.Since(start))

	return assessment
}

func (s *Service) recordAssessment(ctx context.Context, customerID id.CustomerID, tx models.Transaction, assessment Assessment) {
	s.recordAudit(ctx, audit.EventTransactionValidation, customerID, map[string]any{
		"transaction_id": tx.ID,
		"swift_code":     tx.SwiftCode.String(),
		"amount":         tx.Amount.String(),
		"currency":       tx.Currency,
		"risk_score":     assessment.Score,
		"approved":       assessment.Approved,
	})
}

// DetectErrors runs the input-mistake heuristics. Unknown customers yield a
// single advisory issue rather than an error.
func (s *Service) DetectErrors(ctx context.Context, customerID id.CustomerID, amount decimal.Decimal, description string) []string {
	profile, err := s.profiles.FindByCustomer(ctx, customerID)
	if err != nil {
		issues := []string{"Customer profile not found - cannot analyze"}
		s.recordDetection(ctx, customerID, amount, description, issues)
		return issues
	}

	issues := DetectAnomalies(profile, amount, description)
	s.recordDetection(ctx, customerID, amount, description, issues)
	s.metrics.ObserveAnomalyIssues(len(issues))
	return issues
}

func (s *Service) recordDetection(ctx context.Context, customerID id.CustomerID, amount decimal.Decimal, description string, issues []string) {
	s.recordAudit(ctx, audit.EventErrorDetection, customerID, map[string]any{
		"amount":       amount.String(),
		"description":  description,
		"errors_found": len(issues),
	})
}

// CounterpartyReport is the outcome of a directory verification.
type CounterpartyReport struct {
	SwiftCode     id.SwiftCode
	Found         bool
	BankName      string
	Country       string
	Verified      bool
	RiskLevel     int
	RiskLabel     string
	SafeToProceed bool
}

// VerifyCounterparty looks up a counterparty and renders its risk posture.
// Absence degrades to a maximal-risk report, not an error.
func (s *Service) VerifyCounterparty(ctx context.Context, customerID id.CustomerID, code id.SwiftCode) CounterpartyReport {
	party, err := s.parties.FindBySwift(ctx, code)
	if err != nil {
		s.recordAudit(ctx, audit.EventCounterpartyVerification, customerID, map[string]any{
			"swift_code": code.String(),
			"result":     "NOT_FOUND",
		})
		return CounterpartyReport{
			SwiftCode: code,
			RiskLevel: MaxScore,
			RiskLabel: RiskLabel(MaxScore),
		}
	}

	s.recordAudit(ctx, audit.EventCounterpartyVerification, customerID, map[string]any{
		"swift_code": code.String(),
		"verified":   party.Verified,
		"risk_level": party.RiskLevel,
	})

	return CounterpartyReport{
		SwiftCode:     party.SwiftCode,
		Found:         true,
		BankName:      party.BankName,
		Country:       party.Country,
		Verified:      party.Verified,
		RiskLevel:     party.RiskLevel,
		RiskLabel:     RiskLabel(party.RiskLevel),
		SafeToProceed: party.Verified && party.RiskLevel <= 3,
	}
}

// ReviewHistory summarizes the customer's trailing window. This is the one
// operation where an unknown customer is a real NotFound: there is nothing
// conservative to report about a customer that does not exist.
func (s *Service) ReviewHistory(ctx context.Context, customerID id.CustomerID, days int) (HistoryReport, error) {
	profile, err := s.profiles.FindByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return HistoryReport{}, dErrors.New(dErrors.CodeNotFound, "customer profile not found")
		}
		return HistoryReport{}, dErrors.Wrap(dErrors.CodeInternal, "profile lookup failed", err)
	}

	report := ReviewWindow(profile, days, requestcontext.Now(ctx))

	s.recordAudit(ctx, audit.EventHistoryReview, customerID, map[string]any{
		"days_reviewed":     report.Days,
		"transaction_count": report.Count,
		"total_amount":      report.Total.String(),
		"anomalies_found":   len(report.Anomalies),
	})

	return report, nil
}

// recordAudit is fail-open: an audit append failure is logged, never
// propagated, so the caller always gets its result.
func (s *Service) recordAudit(ctx context.Context, eventType audit.EventType, customerID id.CustomerID, details map[string]any) {
	if err := s.auditor.Record(ctx, eventType, customerID, details); err != nil {
		s.logger.ErrorContext(ctx, "audit record failed",
			"request_id", requestcontext.RequestID(ctx),
			"event_type", eventType,
			"customer_id", customerID,
			"error", err,
		)
	}
}
