package service

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/suretrust/underwriting-service/internal/domain/model"
)

// Fraud indicator labels produced by the default rule set.
const (
	IndicatorCoverageAbnormallyHigh = "coverage amount abnormally high"
	IndicatorNoPriorHistory         = "no prior policy history"
	IndicatorIdentityMissing        = "identity document missing"
	IndicatorPhoneUnverified        = "phone identity unverified"
)

// highValueCoverage is the coverage amount above which an application is
// flagged as abnormally high.
var highValueCoverage = decimal.NewFromInt(1_000_000)

// FraudRule is a single named fraud signature. Rules are evaluated
// independently; a match contributes exactly one indicator label.
type FraudRule struct {
	Label string
	Match func(record model.CustomerRecord) bool
}

// FraudAssessment is the outcome of running the rule set against a record.
// Indicators preserve rule evaluation order. Confidence grows with the number
// of matched rules and saturates at 1.0.
type FraudAssessment struct {
	IsFraud    bool
	Indicators []string
	Confidence float64
}

// FraudDetector inspects customer records for known fraud signatures.
type FraudDetector struct {
	rules  []FraudRule
	logger *slog.Logger
}

// NewFraudDetector creates a detector with the default rule set.
func NewFraudDetector(logger *slog.Logger) *FraudDetector {
	return NewFraudDetectorWithRules(defaultRules(), logger)
}

// NewFraudDetectorWithRules creates a detector with a custom rule set,
// evaluated in the given order.
func NewFraudDetectorWithRules(rules []FraudRule, logger *slog.Logger) *FraudDetector {
	return &FraudDetector{rules: rules, logger: logger}
}

// Detect evaluates every rule against the record. The record is never
// mutated, so repeated detection on the same record yields identical results.
func (d *FraudDetector) Detect(record model.CustomerRecord) FraudAssessment {
	indicators := make([]string, 0)
	for _, rule := range d.rules {
		if rule.Match(record) {
			indicators = append(indicators, rule.Label)
		}
	}

	assessment := FraudAssessment{
		IsFraud:    len(indicators) > 0,
		Indicators: indicators,
		Confidence: confidenceFor(len(indicators)),
	}

	if assessment.IsFraud {
		d.logger.Info("fraud indicators detected",
			slog.String("customer_id", record.CustomerID),
			slog.Any("indicators", indicators),
			slog.Float64("confidence", assessment.Confidence),
		)
	}

	return assessment
}

// confidenceFor maps an indicator count to a confidence in [0,1]. The ratio
// saturates: more than ten indicators still yield 1.0.
func confidenceFor(count int) float64 {
	if count <= 0 {
		return 0
	}
	confidence := float64(count) / 10.0
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

func defaultRules() []FraudRule {
	return []FraudRule{
		{
			Label: IndicatorCoverageAbnormallyHigh,
			Match: func(r model.CustomerRecord) bool {
				return r.ApplicationForm.CoverageAmount.GreaterThan(highValueCoverage)
			},
		},
		{
			Label: IndicatorNoPriorHistory,
			Match: func(r model.CustomerRecord) bool {
				return len(r.HistoryRecords) == 0
			},
		},
		{
			Label: IndicatorIdentityMissing,
			Match: func(r model.CustomerRecord) bool {
				return r.IdentityDocument.FrontImage == "" || r.IdentityDocument.BackImage == ""
			},
		},
		{
			Label: IndicatorPhoneUnverified,
			Match: func(r model.CustomerRecord) bool {
				return !r.PhoneVerification.Verified
			},
		},
	}
}
