package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suretrust/underwriting-service/internal/domain/event"
	"github.com/suretrust/underwriting-service/internal/domain/valueobject"
)

func validRecord() CustomerRecord {
	return CustomerRecord{
		CustomerID: "CUST001",
		IdentityDocument: IdentityDocument{
			FrontImage: "front.jpg",
			BackImage:  "back.jpg",
			HolderName: "Customer CUST001",
		},
		IncomeProof: IncomeProof{
			Documents:          []string{"income.pdf"},
			MonthlyIncome:      decimal.NewFromInt(15000),
			VerificationStatus: VerificationVerified,
			SourceReliability:  ReliabilityHigh,
		},
		PhoneVerification: PhoneVerification{
			Number:         "138****0001",
			RegisteredName: "Customer CUST001",
			Verified:       true,
		},
		HistoryRecords: []PolicyRecord{{PolicyID: "POL001", Status: "active"}},
		ApplicationForm: ApplicationForm{
			ProductType:    "health insurance",
			CoverageAmount: decimal.NewFromInt(100_000),
		},
	}
}

func TestNewApplication(t *testing.T) {
	app, err := NewApplication(validRecord())
	require.NoError(t, err)

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", app.ID().String())
	assert.Equal(t, "CUST001", app.CustomerID())
	assert.False(t, app.Decided())
	assert.Equal(t, 1, app.Version())
	assert.Empty(t, app.Events())
}

func TestNewApplicationRejectsMissingCustomerID(t *testing.T) {
	record := validRecord()
	record.CustomerID = ""

	_, err := NewApplication(record)
	assert.ErrorIs(t, err, ErrMissingCustomerID)
}

func TestApplyDecision(t *testing.T) {
	app, err := NewApplication(validRecord())
	require.NoError(t, err)

	err = app.ApplyDecision(valueobject.DecisionApprove, "low risk", 10, false, nil, 0)
	require.NoError(t, err)

	assert.True(t, app.Decided())
	assert.True(t, app.Decision().IsApprove())
	assert.Equal(t, "low risk", app.Reason())
	assert.Equal(t, 10, app.RiskScore())
	assert.False(t, app.FraudDetected())
	assert.Equal(t, 2, app.Version())
	assert.False(t, app.DecidedAt().IsZero())

	evts := app.Events()
	require.Len(t, evts, 1)
	assert.Equal(t, event.EventTypeApplicationDecided, evts[0].EventType())
	assert.Equal(t, app.ID(), evts[0].AggregateID())
}

func TestApplyDecisionWithFraudRecordsBothEvents(t *testing.T) {
	app, err := NewApplication(validRecord())
	require.NoError(t, err)

	indicators := []string{"coverage amount abnormally high", "no prior policy history"}
	err = app.ApplyDecision(valueobject.DecisionReject, "fraud indicators detected", 40, true, indicators, 0.2)
	require.NoError(t, err)

	evts := app.Events()
	require.Len(t, evts, 2)
	assert.Equal(t, event.EventTypeApplicationDecided, evts[0].EventType())
	assert.Equal(t, event.EventTypeFraudDetected, evts[1].EventType())

	app.ClearEvents()
	assert.Empty(t, app.Events())
}

func TestApplyDecisionIsSingleTransition(t *testing.T) {
	app, err := NewApplication(validRecord())
	require.NoError(t, err)

	require.NoError(t, app.ApplyDecision(valueobject.DecisionApprove, "low risk", 10, false, nil, 0))

	err = app.ApplyDecision(valueobject.DecisionReject, "changed my mind", 90, false, nil, 0)
	assert.Error(t, err)
	assert.True(t, app.Decision().IsApprove())
	assert.Equal(t, 10, app.RiskScore())
}

func TestApplyDecisionRejectsZeroDecision(t *testing.T) {
	app, err := NewApplication(validRecord())
	require.NoError(t, err)

	err = app.ApplyDecision(valueobject.Decision{}, "", 0, false, nil, 0)
	assert.Error(t, err)
	assert.False(t, app.Decided())
}

func TestApplyDecisionRejectsOutOfRangeScore(t *testing.T) {
	for _, score := range []int{-1, 101} {
		app, err := NewApplication(validRecord())
		require.NoError(t, err)

		err = app.ApplyDecision(valueobject.DecisionReview, "reason", score, false, nil, 0)
		assert.Error(t, err, "score %d must be rejected", score)
		assert.False(t, app.Decided())
	}
}

func TestExecutionResultNotificationFailed(t *testing.T) {
	result := ExecutionResult{Status: valueobject.StatusApproved}
	assert.False(t, result.NotificationFailed())

	result.NotificationError = "gateway returned 503"
	assert.True(t, result.NotificationFailed())
}

func TestNewFeedbackEntry(t *testing.T) {
	result := ExecutionResult{Status: valueobject.StatusRejected}
	entry := NewFeedbackEntry("CUST001", valueobject.DecisionReject, result)

	assert.Equal(t, "CUST001", entry.CustomerID)
	assert.True(t, entry.Decision.IsReject())
	assert.False(t, entry.RecordedAt.IsZero())
	assert.NotEmpty(t, entry.ID)
}
