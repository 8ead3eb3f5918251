package risk

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"riskdesk/internal/risk/models"
	id "riskdesk/pkg/domain"
)

const (
	// historyAnomalyMultiple flags window transactions well above the
	// window's own average.
	historyAnomalyMultiple = 3

	// recentSampleSize bounds the transaction sample echoed in reports.
	recentSampleSize = 5
)

// HistoryReport summarizes a customer's transactions over a trailing window.
type HistoryReport struct {
	Days             int
	Count            int
	Total            decimal.Decimal
	Average          decimal.Decimal
	UniqueRecipients int
	Recent           []models.Transaction
	Anomalies        []string
}

// ReviewWindow computes the trailing-window summary and flags transactions
// whose amount exceeds historyAnomalyMultiple times the window average.
// Pure function: the window is anchored at the supplied now.
func ReviewWindow(profile models.UserProfile, days int, now time.Time) HistoryReport {
	report := HistoryReport{
		Days:    days,
		Total:   decimal.Zero,
		Average: decimal.Zero,
	}

	window := profile.TransactionsSince(now.AddDate(0, 0, -days))
	report.Count = len(window)
	if len(window) == 0 {
		return report
	}

	recipients := make(map[id.SwiftCode]struct{}, len(window))
	for _, tx := range window {
		report.Total = report.Total.Add(tx.Amount)
		recipients[tx.SwiftCode] = struct{}{}
	}
	report.Average = report.Total.Div(decimal.NewFromInt(int64(len(window))))
	report.UniqueRecipients = len(recipients)

	threshold := report.Average.Mul(decimal.NewFromInt(historyAnomalyMultiple))
	for _, tx := range window {
		if tx.Amount.GreaterThan(threshold) {
			report.Anomalies = append(report.Anomalies, fmt.Sprintf(
				"High amount: %s on %s", tx.Amount.StringFixed(2), tx.Timestamp.Format(time.DateOnly)))
		}
	}

	start := len(window) - recentSampleSize
	if start < 0 {
		start = 0
	}
	report.Recent = append([]models.Transaction(nil), window[start:]...)

	return report
}
