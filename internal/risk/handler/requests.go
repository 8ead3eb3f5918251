package handler

import (
	"strings"

	"github.com/shopspring/decimal"

	id "riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
)

const (
	maxSwiftLength       = 11
	maxDescriptionLength = 500
)

// ValidateSwiftRequest is the HTTP request body for POST /v1/risk/swift/validate.
type ValidateSwiftRequest struct {
	SwiftCode string `json:"swift_code"`
}

// Validate validates the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ValidateSwiftRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.SwiftCode = strings.TrimSpace(r.SwiftCode)
	if r.SwiftCode == "" {
		return dErrors.New(dErrors.CodeValidation, "swift_code is required")
	}
	// Deliberately no structural parse here: malformed codes are a valid
	// input to the validator and come back as valid=false, not as a 400.
	return nil
}

// AnalyzeRequest is the HTTP request body for POST /v1/risk/analyze.
type AnalyzeRequest struct {
	SwiftCode   string          `json:"swift_code"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
}

// Validate validates and normalizes the request.
func (r *AnalyzeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.SwiftCode = strings.TrimSpace(r.SwiftCode)
	if r.SwiftCode == "" {
		return dErrors.New(dErrors.CodeValidation, "swift_code is required")
	}
	if len(r.SwiftCode) > maxSwiftLength {
		return dErrors.New(dErrors.CodeValidation, "swift_code must be at most 11 characters")
	}

	if !r.Amount.IsPositive() {
		return dErrors.New(dErrors.CodeValidation, "amount must be positive")
	}

	// Defaults match the original support-desk tool contract.
	r.Currency = strings.TrimSpace(r.Currency)
	if r.Currency == "" {
		r.Currency = "USD"
	}
	r.Description = strings.TrimSpace(r.Description)
	if r.Description == "" {
		r.Description = "Transfer"
	}
	if len(r.Description) > maxDescriptionLength {
		return dErrors.New(dErrors.CodeValidation, "description must be at most 500 characters")
	}

	return nil
}

// DetectErrorsRequest is the HTTP request body for POST /v1/risk/errors/detect.
type DetectErrorsRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Validate validates the request.
func (r *DetectErrorsRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if !r.Amount.IsPositive() {
		return dErrors.New(dErrors.CodeValidation, "amount must be positive")
	}
	if len(r.Description) > maxDescriptionLength {
		return dErrors.New(dErrors.CodeValidation, "description must be at most 500 characters")
	}
	return nil
}

// parseCounterpartyCode parses the path segment of GET /v1/risk/counterparty/{swift}.
// Unlike the analyze body, the path variant requires structural validity: a
// malformed code can never be a directory member, so it is a 400 here.
func parseCounterpartyCode(raw string) (id.SwiftCode, error) {
	return id.ParseSwiftCode(strings.TrimSpace(raw))
}
