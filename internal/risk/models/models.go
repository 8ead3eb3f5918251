// Package models holds the entities the risk engine evaluates. Stores own
// the data; rules receive copies and never mutate them.
package models

import (
	"time"

	"github.com/shopspring/decimal"

	id "riskdesk/pkg/domain"
)

// TransactionStatus tracks the lifecycle of a transfer.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
)

// Transaction is an immutable transfer record. Created by the caller per
// request; history entries are owned by the profile store.
type Transaction struct {
	ID          string
	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal
	Currency    string
	SwiftCode   id.SwiftCode
	Timestamp   time.Time
	Description string
	Status      TransactionStatus
}

// UserProfile captures a customer's behavioral baseline. TypicalAmount is the
// anchor for the magnitude heuristics; History is append-only.
type UserProfile struct {
	CustomerID         id.CustomerID
	Name               string
	TypicalAmount      decimal.Decimal
	FrequentRecipients []id.SwiftCode
	RiskTolerance      string
	LastLogin          time.Time
	History            []Transaction
}

// IsFrequentRecipient reports whether the customer regularly sends to the
// given counterparty.
func (p UserProfile) IsFrequentRecipient(code id.SwiftCode) bool {
	for _, r := range p.FrequentRecipients {
		if r == code {
			return true
		}
	}
	return false
}

// TransactionsSince returns history entries with a timestamp after the cutoff,
// preserving order.
func (p UserProfile) TransactionsSince(cutoff time.Time) []Transaction {
	var out []Transaction
	for _, tx := range p.History {
		if tx.Timestamp.After(cutoff) {
			out = append(out, tx)
		}
	}
	return out
}

// Counterparty is a directory entry for a receiving institution.
//
// Invariant: RiskLevel is clamped to [0,10] at construction.
type Counterparty struct {
	SwiftCode id.SwiftCode
	BankName  string
	Country   string
	Verified  bool
	RiskLevel int
}

// ClampRiskLevel bounds a raw level into the [0,10] directory range.
func ClampRiskLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 10 {
		return 10
	}
	return level
}
