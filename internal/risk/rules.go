package risk

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"riskdesk/internal/risk/models"
)

// Rule weights and thresholds. Deliberately uncapped per factor: simultaneous
// signals compound toward the ceiling and only the final score is clamped.
// A production system would tune these against labeled fraud data; here they
// are fixed constants.
const (
	MaxScore = 10

	amountPoints       = 3
	unverifiedPoints   = 4
	unknownPartyPoints = 5
	newRecipientPoints = 1
	velocityPoints     = 2

	amountMultiple       = 5
	highFrequencyWindow  = 7 * 24 * time.Hour
	highFrequencyCount   = 10
	errorAmountMultiple  = 10
	smallPurchaseCeiling = 50
	roundThousand        = 1000
	repeatedZeroCount    = 3

	// ApproveThreshold splits assessments into approved and requires-review.
	ApproveThreshold = 6
)

// Reason strings surface to callers in evaluation order; treat them as API.
const (
	ReasonUnknownCustomer = "Unknown customer"
	ReasonHighAmount      = "Transaction amount significantly higher than typical"
	ReasonUnverifiedParty = "Unverified counterparty"
	ReasonUnknownParty    = "Unknown counterparty"
	ReasonNewRecipient    = "New recipient"
	ReasonHighFrequency   = "High transaction frequency"
)

// smallPurchaseKeywords mark descriptions that suggest an everyday purchase.
var smallPurchaseKeywords = []string{"coffee", "lunch", "snack"}

// Assessment is the outcome of scoring one proposed transaction.
type Assessment struct {
	TransactionID        string
	Score                int
	Reasons              []string
	CounterpartyVerified bool
	Approved             bool
}

// UnknownCustomerAssessment is the conservative result returned when no
// profile exists: maximal score, single reason, nothing else evaluated.
func UnknownCustomerAssessment(transactionID string) Assessment {
	return Assessment{
		TransactionID: transactionID,
		Score:         MaxScore,
		Reasons:       []string{ReasonUnknownCustomer},
	}
}

// ScoreTransaction applies the additive rule chain to a proposed transaction.
// Evaluation order is fixed so scores and reason ordering are reproducible:
// amount, counterparty, recipient frequency, recent velocity. The accumulated
// total is clamped to MaxScore at the end only.
//
// This is pure domain logic - no I/O, no side effects. counterparty is nil
// when the SWIFT code is not in the directory; absence itself is a signal.
func ScoreTransaction(profile models.UserProfile, counterparty *models.Counterparty, tx models.Transaction, now time.Time) Assessment {
	score := 0
	var reasons []string

	// Rule 1: amount vs the customer's typical transaction.
	if tx.Amount.GreaterThan(profile.TypicalAmount.Mul(decimal.NewFromInt(amountMultiple))) {
		reasons = append(reasons, ReasonHighAmount)
		score += amountPoints
	}

	// Rule 2: counterparty reputation. A listed counterparty always
	// contributes its own risk level, verified or not.
	verified := false
	if counterparty != nil {
		verified = counterparty.Verified
		if !counterparty.Verified {
			reasons = append(reasons, ReasonUnverifiedParty)
			score += unverifiedPoints
		}
		score += counterparty.RiskLevel
	} else {
		reasons = append(reasons, ReasonUnknownParty)
		score += unknownPartyPoints
	}

	// Rule 3: recipient familiarity.
	if !profile.IsFrequentRecipient(tx.SwiftCode) {
		reasons = append(reasons, ReasonNewRecipient)
		score += newRecipientPoints
	}

	// Rule 4: recent velocity over the trailing window.
	recent := profile.TransactionsSince(now.Add(-highFrequencyWindow))
	if len(recent) > highFrequencyCount {
		reasons = append(reasons, ReasonHighFrequency)
		score += velocityPoints
	}

	if score > MaxScore {
		score = MaxScore
	}

	return Assessment{
		TransactionID:        tx.ID,
		Score:                score,
		Reasons:              reasons,
		CounterpartyVerified: verified,
		Approved:             score <= ApproveThreshold,
	}
}

// DetectAnomalies runs the input-mistake heuristics over a proposed amount and
// description. All rules are evaluated; every applicable issue is collected in
// order. This is a best-effort advisory layer - it prompts double-checking,
// it does not block.
func DetectAnomalies(profile models.UserProfile, amount decimal.Decimal, description string) []string {
	var issues []string

	// Magnitude: likely decimal-point slip.
	if !profile.TypicalAmount.IsZero() {
		threshold := profile.TypicalAmount.Mul(decimal.NewFromInt(errorAmountMultiple))
		if amount.GreaterThan(threshold) {
			multiple := amount.Div(profile.TypicalAmount)
			issues = append(issues, fmt.Sprintf(
				"Amount %s is %sx your typical transaction", amount.StringFixed(2), multiple.StringFixed(1)))
		}
	}

	// Round thousands often indicate a mistyped magnitude.
	if amount.GreaterThanOrEqual(decimal.NewFromInt(roundThousand)) &&
		amount.Mod(decimal.NewFromInt(roundThousand)).IsZero() {
		issues = append(issues, "Round thousand amount - verify this is intentional")
	}

	// Description/amount mismatch.
	lowered := strings.ToLower(description)
	for _, keyword := range smallPurchaseKeywords {
		if strings.Contains(lowered, keyword) {
			if amount.GreaterThan(decimal.NewFromInt(smallPurchaseCeiling)) {
				issues = append(issues, "Description suggests small purchase but amount is large")
			}
			break
		}
	}

	// Repeated zeros in the canonical decimal form. Trailing fractional
	// zeros are wire noise ("1005.00" is not a zero-heavy amount) and are
	// trimmed before counting.
	if strings.Count(canonicalAmount(amount), "0") >= repeatedZeroCount {
		issues = append(issues, "Multiple zeros detected - verify amount is correct")
	}

	return issues
}

func canonicalAmount(amount decimal.Decimal) string {
	s := amount.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// RiskLabel renders a directory risk level as a human-readable label. The
// switch covers the closed [0,10] range; anything outside it reads as
// critical rather than failing.
func RiskLabel(level int) string {
	switch level {
	case 0, 1:
		return "Very Low Risk"
	case 2:
		return "Low Risk"
	case 3:
		return "Medium Risk"
	case 4:
		return "Medium-High Risk"
	case 5:
		return "High Risk"
	case 6, 7, 8, 9, 10:
		return "Critical Risk"
	default:
		return "Critical Risk"
	}
}
