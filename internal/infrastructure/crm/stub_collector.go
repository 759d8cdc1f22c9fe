package crm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/suretrust/underwriting-service/internal/domain/model"
	"github.com/suretrust/underwriting-service/internal/domain/port"
)

// StubCollector implements port.Collector as a deterministic stub for
// development. In production this adapter is replaced by the document
// acquisition and OCR pipeline.
type StubCollector struct {
	logger *slog.Logger
}

// NewStubCollector creates a new stub collector.
func NewStubCollector(logger *slog.Logger) *StubCollector {
	return &StubCollector{logger: logger}
}

// Collect returns a synthetic but well-formed record for the customer.
// Customer IDs ending in "999" produce a suspicious profile (abnormally high
// coverage, no prior history) so the fraud path can be exercised end to end.
func (c *StubCollector) Collect(ctx context.Context, customerID string) (model.CustomerRecord, error) {
	if customerID == "" {
		return model.CustomerRecord{}, &port.CollectionError{
			CustomerID: customerID,
			Err:        fmt.Errorf("empty customer identifier"),
		}
	}

	c.logger.Debug("collecting customer record", slog.String("customer_id", customerID))

	record := model.CustomerRecord{
		CustomerID: customerID,
		IdentityDocument: model.IdentityDocument{
			FrontImage: fmt.Sprintf("id_card_front_%s.jpg", customerID),
			BackImage:  fmt.Sprintf("id_card_back_%s.jpg", customerID),
			HolderName: "Customer " + customerID,
		},
		IncomeProof: model.IncomeProof{
			Documents: []string{
				fmt.Sprintf("income_proof_%s_1.pdf", customerID),
				fmt.Sprintf("income_proof_%s_2.jpg", customerID),
			},
			MonthlyIncome:      decimal.NewFromInt(15000),
			VerificationStatus: model.VerificationVerified,
			SourceReliability:  model.ReliabilityHigh,
		},
		PhoneVerification: model.PhoneVerification{
			Number:         "138****" + suffix(customerID, 4),
			RegisteredName: "Customer " + customerID,
			Carrier:        "China Mobile",
			Verified:       true,
		},
		HistoryRecords: []model.PolicyRecord{
			{PolicyID: fmt.Sprintf("POL%s001", customerID), Status: "active"},
			{
				PolicyID: fmt.Sprintf("POL%s002", customerID),
				Status:   "closed",
				Claims: []model.ClaimRecord{
					{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(5000)},
				},
			},
		},
		ApplicationForm: model.ApplicationForm{
			ProductType:     "health insurance",
			CoverageAmount:  decimal.NewFromInt(100_000),
			ApplicationDate: time.Now().UTC(),
		},
	}

	if strings.HasSuffix(customerID, "999") {
		record.HistoryRecords = nil
		record.ApplicationForm.CoverageAmount = decimal.NewFromInt(2_000_000)
	}

	return record, nil
}

func suffix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
