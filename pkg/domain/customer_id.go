package domain

import (
	"strconv"

	dErrors "riskdesk/pkg/domain-errors"
)

// CustomerID identifies a customer across stores, audit entries, and the API.
//
// Usage: construct via ParseCustomerID at trust boundaries; direct casting
// bypasses validation.
type CustomerID int64

// ParseCustomerID constructs a CustomerID from external input.
//
// Errors: returns CodeValidation when the value is empty, non-numeric, or not
// positive; no other errors are expected.
func ParseCustomerID(s string) (CustomerID, error) {
	if s == "" {
		return 0, dErrors.New(dErrors.CodeValidation, "customer id cannot be empty")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, dErrors.New(dErrors.CodeValidation, "customer id must be a positive integer")
	}
	return CustomerID(n), nil
}

// IsZero reports whether the ID is unset.
func (c CustomerID) IsZero() bool { return c == 0 }

func (c CustomerID) String() string {
	return strconv.FormatInt(int64(c), 10)
}
