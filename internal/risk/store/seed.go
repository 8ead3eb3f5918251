package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"riskdesk/internal/risk/models"
	id "riskdesk/pkg/domain"
)

// SeedDemoFixtures loads the demo customers and counterparty directory used
// by local runs and the support-desk walkthrough. Timestamps are anchored to
// now so the velocity and history windows behave as expected on any day.
func SeedDemoFixtures(ctx context.Context, profiles *InMemoryProfileStore, parties *InMemoryCounterpartyStore) error {
	now := time.Now()

	seedProfiles := []models.UserProfile{
		{
			CustomerID:         123,
			Name:               "John Smith",
			TypicalAmount:      decimal.NewFromInt(500),
			FrequentRecipients: []id.SwiftCode{"CHASUS33", "DEUTDEFF"},
			RiskTolerance:      "medium",
			LastLogin:          now.Add(-2 * time.Hour),
			History: []models.Transaction{
				{
					ID:          "TXN001",
					FromAccount: "US123456789",
					ToAccount:   "DE987654321",
					Amount:      decimal.NewFromInt(450),
					Currency:    "USD",
					SwiftCode:   "DEUTDEFF",
					Timestamp:   now.AddDate(0, 0, -1),
					Description: "Monthly rent payment",
					Status:      models.TransactionCompleted,
				},
				{
					ID:          "TXN002",
					FromAccount: "US123456789",
					ToAccount:   "GB555666777",
					Amount:      decimal.NewFromInt(1200),
					Currency:    "USD",
					SwiftCode:   "BARCGB22",
					Timestamp:   now.AddDate(0, 0, -3),
					Description: "Business payment",
					Status:      models.TransactionCompleted,
				},
			},
		},
		{
			CustomerID:         456,
			Name:               "Alice Johnson",
			TypicalAmount:      decimal.NewFromInt(2000),
			FrequentRecipients: []id.SwiftCode{"BARCGB22", "BNPAFRPP"},
			RiskTolerance:      "low",
			LastLogin:          now.Add(-30 * time.Minute),
		},
	}

	seedParties := []models.Counterparty{
		{SwiftCode: "CHASUS33", BankName: "JPMorgan Chase Bank", Country: "US", Verified: true, RiskLevel: 1},
		{SwiftCode: "DEUTDEFF", BankName: "Deutsche Bank AG", Country: "DE", Verified: true, RiskLevel: 2},
		{SwiftCode: "BARCGB22", BankName: "Barclays Bank PLC", Country: "GB", Verified: true, RiskLevel: 1},
		{SwiftCode: "UNKNOWN1", BankName: "Unknown Bank", Country: "XX", Verified: false, RiskLevel: 9},
	}

	for _, profile := range seedProfiles {
		if err := profiles.Save(ctx, profile); err != nil {
			return err
		}
	}
	for _, party := range seedParties {
		if err := parties.Save(ctx, party); err != nil {
			return err
		}
	}
	return nil
}
