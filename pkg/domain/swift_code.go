package domain

import (
	"regexp"
	"strings"

	dErrors "riskdesk/pkg/domain-errors"
)

// SwiftCode is a bank identifier code: 4 letters bank code, 2 letters country
// code, 2 alphanumerics location code, optional 3 alphanumerics branch code.
// Exactly 8 or 11 characters total.
//
// Invariant: a SwiftCode built through ParseSwiftCode is structurally valid.
// Structural validity says nothing about the code being listed in the
// counterparty directory; existence is a directory concern.
type SwiftCode string

var swiftPattern = regexp.MustCompile(`^[A-Z]{4}[A-Z]{2}[A-Z0-9]{2}([A-Z0-9]{3})?$`)

// ParseSwiftCode constructs a SwiftCode from external input.
//
// Usage: call from handlers when parsing requests. The input is not upcased
// or trimmed; lowercase codes are rejected, matching wire-format strictness.
//
// Errors: returns CodeValidation when the value is empty or does not match
// the structural pattern; no other errors are expected.
func ParseSwiftCode(s string) (SwiftCode, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeValidation, "swift code cannot be empty")
	}
	if !swiftPattern.MatchString(s) {
		return "", dErrors.New(dErrors.CodeValidation, "swift code must be 8 or 11 characters: bank(4)+country(2)+location(2)[+branch(3)]")
	}
	return SwiftCode(s), nil
}

// IsStructurallyValid checks the 8/11-character pattern without constructing.
func IsStructurallyValid(s string) bool {
	return swiftPattern.MatchString(s)
}

// Bank returns the 4-letter bank code.
func (c SwiftCode) Bank() string { return cut(string(c), 0, 4) }

// Country returns the ISO country code portion.
func (c SwiftCode) Country() string { return cut(string(c), 4, 6) }

// Location returns the 2-character location code.
func (c SwiftCode) Location() string { return cut(string(c), 6, 8) }

// Branch returns the optional branch code, empty for 8-character codes.
func (c SwiftCode) Branch() string {
	if len(c) < 11 {
		return ""
	}
	return cut(string(c), 8, 11)
}

func (c SwiftCode) String() string { return string(c) }

// Equal compares codes case-sensitively; SWIFT codes are upper-case on the
// wire so no folding is required, but EqualFold guards seeded fixture typos.
func (c SwiftCode) EqualFold(other SwiftCode) bool {
	return strings.EqualFold(string(c), string(other))
}

func cut(s string, from, to int) string {
	if len(s) < to {
		return ""
	}
	return s[from:to]
}
