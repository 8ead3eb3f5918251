package risk

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"riskdesk/internal/risk/models"
	id "riskdesk/pkg/domain"
)

type RulesSuite struct {
	suite.Suite
	now time.Time
}

func (s *RulesSuite) SetupTest() {
	s.now = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
}

func TestRulesSuite(t *testing.T) {
	suite.Run(t, new(RulesSuite))
}

func (s *RulesSuite) baseProfile() models.UserProfile {
	return models.UserProfile{
		CustomerID:         123,
		Name:               "John Smith",
		TypicalAmount:      decimal.NewFromInt(500),
		FrequentRecipients: []id.SwiftCode{"CHASUS33", "DEUTDEFF"},
	}
}

func (s *RulesSuite) newTx(amount int64, swift id.SwiftCode) models.Transaction {
	return models.Transaction{
		ID:        "TXN-test",
		Amount:    decimal.NewFromInt(amount),
		Currency:  "USD",
		SwiftCode: swift,
		Timestamp: s.now,
		Status:    models.TransactionPending,
	}
}

func (s *RulesSuite) TestScoreTransaction() {
	s.Run("frequent verified low-risk counterparty scores its risk level only", func() {
		party := &models.Counterparty{SwiftCode: "DEUTDEFF", Verified: true, RiskLevel: 2}

		got := ScoreTransaction(s.baseProfile(), party, s.newTx(450, "DEUTDEFF"), s.now)

		s.Equal(2, got.Score)
		s.Empty(got.Reasons)
		s.True(got.CounterpartyVerified)
		s.True(got.Approved)
	})

	s.Run("high amount to unknown new counterparty accumulates three reasons", func() {
		got := ScoreTransaction(s.baseProfile(), nil, s.newTx(10000, "XXXXXX99"), s.now)

		s.Equal(9, got.Score)
		s.Equal([]string{ReasonHighAmount, ReasonUnknownParty, ReasonNewRecipient}, got.Reasons)
		s.False(got.CounterpartyVerified)
		s.False(got.Approved)
	})

	s.Run("accumulated score clamps to the ceiling", func() {
		// 3 (amount) + 4 (unverified) + 9 (risk level) + 1 (new) = 17.
		party := &models.Counterparty{SwiftCode: "UNKNOWN1", Verified: false, RiskLevel: 9}

		got := ScoreTransaction(s.baseProfile(), party, s.newTx(10000, "UNKNOWN1"), s.now)

		s.Equal(MaxScore, got.Score)
		s.Equal([]string{ReasonHighAmount, ReasonUnverifiedParty, ReasonNewRecipient}, got.Reasons)
		s.False(got.Approved)
	})

	s.Run("amount at exactly five times typical is not flagged", func() {
		party := &models.Counterparty{SwiftCode: "DEUTDEFF", Verified: true, RiskLevel: 2}

		got := ScoreTransaction(s.baseProfile(), party, s.newTx(2500, "DEUTDEFF"), s.now)

		s.NotContains(got.Reasons, ReasonHighAmount)
		s.Equal(2, got.Score)
	})

	s.Run("more than ten transactions in the window adds velocity points", func() {
		profile := s.baseProfile()
		for i := 0; i < 11; i++ {
			profile.History = append(profile.History, models.Transaction{
				ID:        "TXN-hist",
				Amount:    decimal.NewFromInt(100),
				SwiftCode: "DEUTDEFF",
				Timestamp: s.now.Add(-time.Duration(i+1) * time.Hour),
			})
		}
		party := &models.Counterparty{SwiftCode: "DEUTDEFF", Verified: true, RiskLevel: 2}

		got := ScoreTransaction(profile, party, s.newTx(450, "DEUTDEFF"), s.now)

		s.Contains(got.Reasons, ReasonHighFrequency)
		s.Equal(4, got.Score)
	})

	s.Run("old history does not count toward velocity", func() {
		profile := s.baseProfile()
		for i := 0; i < 11; i++ {
			profile.History = append(profile.History, models.Transaction{
				ID:        "TXN-hist",
				Amount:    decimal.NewFromInt(100),
				SwiftCode: "DEUTDEFF",
				Timestamp: s.now.AddDate(0, 0, -8),
			})
		}
		party := &models.Counterparty{SwiftCode: "DEUTDEFF", Verified: true, RiskLevel: 2}

		got := ScoreTransaction(profile, party, s.newTx(450, "DEUTDEFF"), s.now)

		s.NotContains(got.Reasons, ReasonHighFrequency)
	})

	s.Run("score at the approval threshold is approved", func() {
		// 4 (unverified) + 2 (risk level) = 6, exactly at the threshold.
		party := &models.Counterparty{SwiftCode: "DEUTDEFF", Verified: false, RiskLevel: 2}

		got := ScoreTransaction(s.baseProfile(), party, s.newTx(450, "DEUTDEFF"), s.now)

		s.Equal(ApproveThreshold, got.Score)
		s.True(got.Approved)
	})

	s.Run("scoring is deterministic for identical inputs", func() {
		party := &models.Counterparty{SwiftCode: "UNKNOWN1", Verified: false, RiskLevel: 9}
		tx := s.newTx(10000, "UNKNOWN1")

		first := ScoreTransaction(s.baseProfile(), party, tx, s.now)
		second := ScoreTransaction(s.baseProfile(), party, tx, s.now)

		s.Equal(first, second)
	})
}

func (s *RulesSuite) TestUnknownCustomerAssessment() {
	got := UnknownCustomerAssessment("TXN-x")

	s.Equal(MaxScore, got.Score)
	s.Equal([]string{ReasonUnknownCustomer}, got.Reasons)
	s.False(got.Approved)
	s.False(got.CounterpartyVerified)
}

func (s *RulesSuite) TestDetectAnomalies() {
	s.Run("large round coffee amount trips every heuristic", func() {
		got := DetectAnomalies(s.baseProfile(), decimal.NewFromInt(10000), "coffee with friend")

		s.Equal([]string{
			"Amount 10000.00 is 20.0x your typical transaction",
			"Round thousand amount - verify this is intentional",
			"Description suggests small purchase but amount is large",
			"Multiple zeros detected - verify amount is correct",
		}, got)
	})

	s.Run("typical amount with plain description is clean", func() {
		got := DetectAnomalies(s.baseProfile(), decimal.NewFromInt(450), "rent payment")
		s.Empty(got)
	})

	s.Run("round thousand below magnitude threshold flags round rule only", func() {
		got := DetectAnomalies(s.baseProfile(), decimal.NewFromInt(3000), "invoice")

		s.Equal([]string{
			"Round thousand amount - verify this is intentional",
			"Multiple zeros detected - verify amount is correct",
		}, got)
	})

	s.Run("keyword match below the purchase ceiling is not flagged", func() {
		got := DetectAnomalies(s.baseProfile(), decimal.NewFromInt(12), "lunch with team")
		s.Empty(got)
	})

	s.Run("keyword match is case-insensitive", func() {
		got := DetectAnomalies(s.baseProfile(), decimal.NewFromInt(75), "COFFEE beans wholesale")
		s.Equal([]string{"Description suggests small purchase but amount is large"}, got)
	})

	s.Run("zero typical amount skips the magnitude rule", func() {
		profile := s.baseProfile()
		profile.TypicalAmount = decimal.Zero

		got := DetectAnomalies(profile, decimal.NewFromInt(777), "transfer")
		s.Empty(got)
	})

	s.Run("trailing fractional zeros do not count toward the zero rule", func() {
		// "1005.00" trims to "1005": one zero, below the threshold.
		got := DetectAnomalies(s.baseProfile(), decimal.RequireFromString("1005.00"), "invoice")
		s.Empty(got)
	})
}

func (s *RulesSuite) TestRiskLabel() {
	tests := []struct {
		level int
		want  string
	}{
		{0, "Very Low Risk"},
		{1, "Very Low Risk"},
		{2, "Low Risk"},
		{3, "Medium Risk"},
		{4, "Medium-High Risk"},
		{5, "High Risk"},
		{6, "Critical Risk"},
		{10, "Critical Risk"},
		{-1, "Critical Risk"},
		{42, "Critical Risk"},
	}
	for _, tt := range tests {
		s.Equal(tt.want, RiskLabel(tt.level), "level %d", tt.level)
	}
}
