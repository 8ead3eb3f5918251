package risk

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"riskdesk/internal/audit"
	"riskdesk/internal/risk/models"
	"riskdesk/internal/risk/store"
	"riskdesk/internal/risk/store/mocks"
	id "riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
	"riskdesk/pkg/platform/sentinel"
	"riskdesk/pkg/requestcontext"
)

type recordedEvent struct {
	Type       audit.EventType
	CustomerID id.CustomerID
	Details    map[string]any
}

// recordingAuditor captures emitted entries for assertions.
type recordingAuditor struct {
	events []recordedEvent
	err    error
}

func (a *recordingAuditor) Record(_ context.Context, eventType audit.EventType, customerID id.CustomerID, details map[string]any) error {
	if a.err != nil {
		return a.err
	}
	a.events = append(a.events, recordedEvent{Type: eventType, CustomerID: customerID, Details: details})
	return nil
}

type ServiceSuite struct {
	suite.Suite
	ctx      context.Context
	service  *Service
	profiles *store.InMemoryProfileStore
	parties  *store.InMemoryCounterpartyStore
	auditor  *recordingAuditor
	now      time.Time
}

func (s *ServiceSuite) SetupTest() {
	// Fixtures anchor their history to the wall clock, so the analysis
	// time is pinned to the wall clock too rather than to a fixed date.
	s.now = time.Now()
	s.ctx = requestcontext.WithTime(context.Background(), s.now)

	s.profiles = store.NewInMemoryProfileStore()
	s.parties = store.NewInMemoryCounterpartyStore()
	s.Require().NoError(store.SeedDemoFixtures(context.Background(), s.profiles, s.parties))

	s.auditor = &recordingAuditor{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewService(s.profiles, s.parties, s.auditor, logger, nil)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestValidateSwift() {
	s.Run("listed code with valid structure passes", func() {
		s.True(s.service.ValidateSwift(s.ctx, "CHASUS33"))
	})

	s.Run("malformed code fails without a directory lookup", func() {
		s.False(s.service.ValidateSwift(s.ctx, "chas33"))
	})

	s.Run("well-formed but unlisted code fails", func() {
		s.False(s.service.ValidateSwift(s.ctx, "AAAABB11"))
	})

	s.Run("eleven character branch code is accepted when listed", func() {
		s.Require().NoError(s.parties.Save(s.ctx, models.Counterparty{
			SwiftCode: "DEUTDEFF500",
			BankName:  "Deutsche Bank AG Branch",
			Country:   "DE",
			Verified:  true,
			RiskLevel: 2,
		}))
		s.True(s.service.ValidateSwift(s.ctx, "DEUTDEFF500"))
	})

	s.Run("validation leaves no audit trace", func() {
		before := len(s.auditor.events)
		s.service.ValidateSwift(s.ctx, "CHASUS33")
		s.Equal(before, len(s.auditor.events))
	})
}

func (s *ServiceSuite) TestAnalyze() {
	s.Run("typical transfer to a frequent verified counterparty is approved", func() {
		got := s.service.Analyze(s.ctx, 123, AnalyzeInput{
			SwiftCode: "DEUTDEFF",
			Amount:    decimal.NewFromInt(450),
			Currency:  "USD",
		})

		s.Equal(2, got.Score)
		s.Empty(got.Reasons)
		s.True(got.CounterpartyVerified)
		s.True(got.Approved)
		s.NotEmpty(got.TransactionID)
	})

	s.Run("unknown customer short-circuits to the maximal score", func() {
		got := s.service.Analyze(s.ctx, 999, AnalyzeInput{
			SwiftCode: "DEUTDEFF",
			Amount:    decimal.NewFromInt(100),
			Currency:  "USD",
		})

		s.Equal(MaxScore, got.Score)
		s.Equal([]string{ReasonUnknownCustomer}, got.Reasons)
		s.False(got.Approved)
	})

	s.Run("unlisted counterparty is scored, not rejected", func() {
		got := s.service.Analyze(s.ctx, 123, AnalyzeInput{
			SwiftCode: "ZZZZZZ99",
			Amount:    decimal.NewFromInt(450),
			Currency:  "USD",
		})

		s.Contains(got.Reasons, ReasonUnknownParty)
		s.Contains(got.Reasons, ReasonNewRecipient)
		s.Equal(6, got.Score)
		s.True(got.Approved)
	})

	s.Run("every analysis leaves exactly one audit entry", func() {
		before := len(s.auditor.events)
		got := s.service.Analyze(s.ctx, 123, AnalyzeInput{
			SwiftCode: "DEUTDEFF",
			Amount:    decimal.NewFromInt(450),
			Currency:  "USD",
		})

		s.Require().Len(s.auditor.events, before+1)
		entry := s.auditor.events[len(s.auditor.events)-1]
		s.Equal(audit.EventTransactionValidation, entry.Type)
		s.Equal(id.CustomerID(123), entry.CustomerID)
		s.Equal(got.TransactionID, entry.Details["transaction_id"])
		s.Equal(got.Score, entry.Details["risk_score"])
		s.Equal(got.Approved, entry.Details["approved"])
	})

	s.Run("audit failure does not block the assessment", func() {
		s.auditor.err = dErrors.New(dErrors.CodeInternal, "audit store down")

		got := s.service.Analyze(s.ctx, 123, AnalyzeInput{
			SwiftCode: "DEUTDEFF",
			Amount:    decimal.NewFromInt(450),
			Currency:  "USD",
		})

		s.Equal(2, got.Score)
		s.True(got.Approved)
	})
}

func (s *ServiceSuite) TestDetectErrors() {
	s.Run("clean input produces no issues", func() {
		got := s.service.DetectErrors(s.ctx, 123, decimal.NewFromInt(450), "rent payment")
		s.Empty(got)
	})

	s.Run("suspicious input collects every applicable issue", func() {
		got := s.service.DetectErrors(s.ctx, 123, decimal.NewFromInt(10000), "coffee with friend")
		s.Len(got, 4)
	})

	s.Run("unknown customer yields a single advisory issue", func() {
		got := s.service.DetectErrors(s.ctx, 999, decimal.NewFromInt(100), "transfer")
		s.Equal([]string{"Customer profile not found - cannot analyze"}, got)
	})

	s.Run("detection is audited with the issue count", func() {
		before := len(s.auditor.events)
		s.service.DetectErrors(s.ctx, 123, decimal.NewFromInt(10000), "coffee with friend")

		s.Require().Len(s.auditor.events, before+1)
		entry := s.auditor.events[len(s.auditor.events)-1]
		s.Equal(audit.EventErrorDetection, entry.Type)
		s.Equal(4, entry.Details["errors_found"])
	})
}

func (s *ServiceSuite) TestVerifyCounterparty() {
	s.Run("listed counterparty reports its directory entry", func() {
		got := s.service.VerifyCounterparty(s.ctx, 123, "DEUTDEFF")

		s.True(got.Found)
		s.Equal("Deutsche Bank AG", got.BankName)
		s.Equal("DE", got.Country)
		s.True(got.Verified)
		s.Equal(2, got.RiskLevel)
		s.Equal("Low Risk", got.RiskLabel)
		s.True(got.SafeToProceed)
	})

	s.Run("unverified high-risk counterparty is unsafe", func() {
		got := s.service.VerifyCounterparty(s.ctx, 123, "UNKNOWN1")

		s.True(got.Found)
		s.False(got.Verified)
		s.Equal(9, got.RiskLevel)
		s.False(got.SafeToProceed)
	})

	s.Run("absent counterparty degrades to a maximal-risk report", func() {
		got := s.service.VerifyCounterparty(s.ctx, 123, "NOPENO99")

		s.False(got.Found)
		s.Equal(MaxScore, got.RiskLevel)
		s.Equal("Critical Risk", got.RiskLabel)
		s.False(got.SafeToProceed)
	})

	s.Run("lookups are audited either way", func() {
		before := len(s.auditor.events)
		s.service.VerifyCounterparty(s.ctx, 123, "DEUTDEFF")
		s.service.VerifyCounterparty(s.ctx, 123, "NOPENO99")

		s.Require().Len(s.auditor.events, before+2)
		s.Equal("NOT_FOUND", s.auditor.events[len(s.auditor.events)-1].Details["result"])
	})
}

func (s *ServiceSuite) TestReviewHistory() {
	s.Run("summarizes the seeded window", func() {
		got, err := s.service.ReviewHistory(s.ctx, 123, 30)
		s.Require().NoError(err)

		s.Equal(30, got.Days)
		s.Equal(2, got.Count)
		s.True(got.Total.Equal(decimal.NewFromInt(1650)), "total %s", got.Total)
		s.Equal(2, got.UniqueRecipients)
	})

	s.Run("unknown customer is a not-found error", func() {
		_, err := s.service.ReviewHistory(s.ctx, 999, 30)
		s.Require().Error(err)
		s.Equal(dErrors.CodeNotFound, dErrors.CodeOf(err))
	})

	s.Run("review is audited with the window summary", func() {
		before := len(s.auditor.events)
		_, err := s.service.ReviewHistory(s.ctx, 123, 30)
		s.Require().NoError(err)

		s.Require().Len(s.auditor.events, before+1)
		entry := s.auditor.events[len(s.auditor.events)-1]
		s.Equal(audit.EventHistoryReview, entry.Type)
		s.Equal(30, entry.Details["days_reviewed"])
		s.Equal(2, entry.Details["transaction_count"])
	})
}

// ServiceFailureSuite drives the service against failing stores. The seeded
// in-memory stores cannot produce infra errors, so these paths use mocks.
type ServiceFailureSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	profiles *mocks.MockProfileStore
	parties  *mocks.MockCounterpartyStore
	auditor  *recordingAuditor
	service  *Service
}

func (s *ServiceFailureSuite) SetupTest() {
	s.ctx = requestcontext.WithTime(context.Background(), time.Now())
	s.ctrl = gomock.NewController(s.T())
	s.profiles = mocks.NewMockProfileStore(s.ctrl)
	s.parties = mocks.NewMockCounterpartyStore(s.ctrl)
	s.auditor = &recordingAuditor{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewService(s.profiles, s.parties, s.auditor, logger, nil)
}

func TestServiceFailureSuite(t *testing.T) {
	suite.Run(t, new(ServiceFailureSuite))
}

func (s *ServiceFailureSuite) TestValidateSwiftDirectoryFailure() {
	s.parties.EXPECT().
		Exists(gomock.Any(), id.SwiftCode("CHASUS33")).
		Return(false, sentinel.ErrUnavailable)

	s.False(s.service.ValidateSwift(s.ctx, "CHASUS33"))
}

func (s *ServiceFailureSuite) TestAnalyzeCounterpartyLookupFailure() {
	profile := models.UserProfile{
		CustomerID:    123,
		Name:          "John Smith",
		TypicalAmount: decimal.NewFromInt(500),
	}
	s.profiles.EXPECT().
		FindByCustomer(gomock.Any(), id.CustomerID(123)).
		Return(profile, nil)
	s.parties.EXPECT().
		FindBySwift(gomock.Any(), id.SwiftCode("DEUTDEFF")).
		Return(models.Counterparty{}, sentinel.ErrUnavailable)

	got := s.service.Analyze(s.ctx, 123, AnalyzeInput{
		SwiftCode: "DEUTDEFF",
		Amount:    decimal.NewFromInt(450),
		Currency:  "USD",
	})

	s.Contains(got.Reasons, ReasonUnknownParty)
	s.False(got.CounterpartyVerified)
	s.Require().Len(s.auditor.events, 1)
}

func (s *ServiceFailureSuite) TestReviewHistoryLookupFailure() {
	s.profiles.EXPECT().
		FindByCustomer(gomock.Any(), id.CustomerID(123)).
		Return(models.UserProfile{}, sentinel.ErrUnavailable)

	_, err := s.service.ReviewHistory(s.ctx, 123, 30)
	s.Require().Error(err)
	s.Equal(dErrors.CodeInternal, dErrors.CodeOf(err))
}
