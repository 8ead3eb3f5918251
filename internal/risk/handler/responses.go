package handler

import (
	"time"

	"riskdesk/internal/risk"
)

// ValidateSwiftResponse is the HTTP response for POST /v1/risk/swift/validate.
type ValidateSwiftResponse struct {
	SwiftCode string `json:"swift_code"`
	Valid     bool   `json:"valid"`
}

// AnalyzeResponse is the HTTP response for POST /v1/risk/analyze.
type AnalyzeResponse struct {
	TransactionID        string   `json:"transaction_id"`
	RiskScore            int      `json:"risk_score"`
	Reasons              []string `json:"reasons"`
	CounterpartyVerified bool     `json:"counterparty_verified"`
	Approved             bool     `json:"approved"`
}

// FromAssessment converts a domain Assessment to an HTTP response.
func FromAssessment(a risk.Assessment) *AnalyzeResponse {
	reasons := a.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	return &AnalyzeResponse{
		TransactionID:        a.TransactionID,
		RiskScore:            a.Score,
		Reasons:              reasons,
		CounterpartyVerified: a.CounterpartyVerified,
		Approved:             a.Approved,
	}
}

// DetectErrorsResponse is the HTTP response for POST /v1/risk/errors/detect.
type DetectErrorsResponse struct {
	Issues []string `json:"issues"`
}

// CounterpartyResponse is the HTTP response for GET /v1/risk/counterparty/{swift}.
type CounterpartyResponse struct {
	SwiftCode     string `json:"swift_code"`
	Found         bool   `json:"found"`
	BankName      string `json:"bank_name,omitempty"`
	Country       string `json:"country,omitempty"`
	Verified      bool   `json:"verified"`
	RiskLevel     int    `json:"risk_level"`
	RiskLabel     string `json:"risk_label"`
	SafeToProceed bool   `json:"safe_to_proceed"`
}

// FromCounterpartyReport converts a domain report to an HTTP response.
func FromCounterpartyReport(r risk.CounterpartyReport) *CounterpartyResponse {
	return &CounterpartyResponse{
		SwiftCode:     r.SwiftCode.String(),
		Found:         r.Found,
		BankName:      r.BankName,
		Country:       r.Country,
		Verified:      r.Verified,
		RiskLevel:     r.RiskLevel,
		RiskLabel:     r.RiskLabel,
		SafeToProceed: r.SafeToProceed,
	}
}

// HistoryResponse is the HTTP response for GET /v1/risk/history.
type HistoryResponse struct {
	Days             int                  `json:"days"`
	TransactionCount int                  `json:"transaction_count"`
	TotalAmount      string               `json:"total_amount"`
	AverageAmount    string               `json:"average_amount"`
	UniqueRecipients int                  `json:"unique_recipients"`
	Recent           []HistoryTransaction `json:"recent"`
	Anomalies        []string             `json:"anomalies"`
}

// HistoryTransaction is one echoed history entry.
type HistoryTransaction struct {
	ID          string    `json:"id"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	SwiftCode   string    `json:"swift_code"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

// FromHistoryReport converts a domain report to an HTTP response.
func FromHistoryReport(r risk.HistoryReport) *HistoryResponse {
	resp := &HistoryResponse{
		Days:             r.Days,
		TransactionCount: r.Count,
		TotalAmount:      r.Total.StringFixed(2),
		AverageAmount:    r.Average.StringFixed(2),
		UniqueRecipients: r.UniqueRecipients,
		Recent:           []HistoryTransaction{},
		Anomalies:        r.Anomalies,
	}
	if resp.Anomalies == nil {
		resp.Anomalies = []string{}
	}
	for _, tx := range r.Recent {
		resp.Recent = append(resp.Recent, HistoryTransaction{
			ID:          tx.ID,
			Amount:      tx.Amount.StringFixed(2),
			Currency:    tx.Currency,
			SwiftCode:   tx.SwiftCode.String(),
			Timestamp:   tx.Timestamp,
			Description: tx.Description,
		})
	}
	return resp
}
