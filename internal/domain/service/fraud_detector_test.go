package service

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/suretrust/underwriting-service/internal/domain/model"
)

func TestDetectCleanRecord(t *testing.T) {
	detector := NewFraudDetector(testLogger())

	assessment := detector.Detect(cleanRecord())

	assert.False(t, assessment.IsFraud)
	assert.Empty(t, assessment.Indicators)
	assert.Equal(t, 0.0, assessment.Confidence)
}

func TestDetectHighCoverage(t *testing.T) {
	detector := NewFraudDetector(testLogger())
	record := cleanRecord()
	record.ApplicationForm.CoverageAmount = decimal.NewFromInt(2_000_000)

	assessment := detector.Detect(record)

	assert.True(t, assessment.IsFraud)
	assert.Equal(t, []string{IndicatorCoverageAbnormallyHigh}, assessment.Indicators)
	assert.InDelta(t, 0.1, assessment.Confidence, 1e-9)
}

func TestDetectCoverageAtBoundaryIsNotFlagged(t *testing.T) {
	detector := NewFraudDetector(testLogger())
	record := cleanRecord()
	record.ApplicationForm.CoverageAmount = decimal.NewFromInt(1_000_000)

	assessment := detector.Detect(record)
	assert.False(t, assessment.IsFraud)
}

func TestDetectNoPriorHistory(t *testing.T) {
	detector := NewFraudDetector(testLogger())
	record := cleanRecord()
	record.HistoryRecords = nil

	assessment := detector.Detect(record)

	assert.True(t, assessment.IsFraud)
	assert.Equal(t, []string{IndicatorNoPriorHistory}, assessment.Indicators)
}

func TestDetectPreservesRuleOrder(t *testing.T) {
	detector := NewFraudDetector(testLogger())
	record := cleanRecord()
	record.ApplicationForm.CoverageAmount = decimal.NewFromInt(2_000_000)
	record.HistoryRecords = nil

	assessment := detector.Detect(record)

	assert.Equal(t, []string{IndicatorCoverageAbnormallyHigh, IndicatorNoPriorHistory}, assessment.Indicators)
	assert.InDelta(t, 0.2, assessment.Confidence, 1e-9)
}

func TestDetectIdentityAndPhoneRules(t *testing.T) {
	detector := NewFraudDetector(testLogger())
	record := cleanRecord()
	record.IdentityDocument.BackImage = ""
	record.PhoneVerification.Verified = false

	assessment := detector.Detect(record)

	assert.Equal(t, []string{IndicatorIdentityMissing, IndicatorPhoneUnverified}, assessment.Indicators)
}

func TestConfidenceSaturatesAtOne(t *testing.T) {
	rules := make([]FraudRule, 0, 12)
	for i := 0; i < 12; i++ {
		rules = append(rules, FraudRule{
			Label: fmt.Sprintf("signature %d", i),
			Match: func(model.CustomerRecord) bool { return true },
		})
	}
	detector := NewFraudDetectorWithRules(rules, testLogger())

	assessment := detector.Detect(cleanRecord())

	assert.True(t, assessment.IsFraud)
	assert.Len(t, assessment.Indicators, 12)
	assert.Equal(t, 1.0, assessment.Confidence)
}

func TestDetectIsIdempotent(t *testing.T) {
	detector := NewFraudDetector(testLogger())
	record := cleanRecord()
	record.HistoryRecords = nil

	first := detector.Detect(record)
	second := detector.Detect(record)

	assert.Equal(t, first, second)
}
