package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/suretrust/underwriting-service/internal/domain/valueobject"
)

// DecisionResult carries the decision together with the inputs that produced
// it, for audit and report generation.
type DecisionResult struct {
	Outcome         valueobject.Decision
	Reason          string
	RiskScore       int
	FraudDetected   bool
	FraudIndicators []string
	Confidence      float64
}

// RiskReport is an immutable snapshot composing a decision with its full
// analysis, suitable for export and audit trails. Generating a report has no
// effect on control flow.
type RiskReport struct {
	CustomerID       string
	RiskScore        int
	Decision         string
	Reason           string
	Advice           string
	DetailedAnalysis AnalysisResult
	FraudIndicators  []string
	GeneratedAt      time.Time
}

// DecisionEngine combines the analysis score and the fraud assessment with
// the configured thresholds into a decision.
type DecisionEngine struct {
	thresholds valueobject.RiskThresholds
	logger     *slog.Logger
}

// NewDecisionEngine creates a decision engine with validated thresholds.
func NewDecisionEngine(thresholds valueobject.RiskThresholds, logger *slog.Logger) *DecisionEngine {
	return &DecisionEngine{thresholds: thresholds, logger: logger}
}

// Decide is a deterministic pure function of its inputs and the configured
// thresholds. Precedence is strict and first-match-wins: a fraud flag always
// rejects regardless of score, then the high threshold rejects, then the
// medium threshold routes to review, and everything else is approved.
func (e *DecisionEngine) Decide(analysis AnalysisResult, fraud FraudAssessment) DecisionResult {
	score := analysis.OverallRiskScore

	var outcome valueobject.Decision
	var reason string

	switch {
	case fraud.IsFraud:
		outcome = valueobject.DecisionReject
		reason = fmt.Sprintf("fraud indicators detected: %s", strings.Join(fraud.Indicators, ", "))
	case score >= e.thresholds.High():
		outcome = valueobject.DecisionReject
		reason = fmt.Sprintf("risk score %d exceeds high threshold %d", score, e.thresholds.High())
	case score >= e.thresholds.Medium():
		outcome = valueobject.DecisionReview
		reason = fmt.Sprintf("medium risk score %d, requires manual review", score)
	default:
		outcome = valueobject.DecisionApprove
		reason = fmt.Sprintf("risk score %d below medium threshold %d", score, e.thresholds.Medium())
	}

	e.logger.Info("decision made",
		slog.String("decision", outcome.String()),
		slog.Int("risk_score", score),
		slog.Bool("fraud", fraud.IsFraud),
	)

	return DecisionResult{
		Outcome:         outcome,
		Reason:          reason,
		RiskScore:       score,
		FraudDetected:   fraud.IsFraud,
		FraudIndicators: fraud.Indicators,
		Confidence:      fraud.Confidence,
	}
}

// GenerateRiskReport composes a decision with the originating analysis into a
// timestamped snapshot for the audit trail.
func (e *DecisionEngine) GenerateRiskReport(customerID string, analysis AnalysisResult, decision DecisionResult) RiskReport {
	return RiskReport{
		CustomerID:       customerID,
		RiskScore:        decision.RiskScore,
		Decision:         decision.Outcome.String(),
		Reason:           decision.Reason,
		Advice:           e.adviceFor(analysis, decision),
		DetailedAnalysis: analysis,
		FraudIndicators:  decision.FraudIndicators,
		GeneratedAt:      time.Now().UTC(),
	}
}

// adviceFor builds the human-readable recommendation attached to a report.
func (e *DecisionEngine) adviceFor(analysis AnalysisResult, decision DecisionResult) string {
	var summary string
	switch {
	case decision.FraudDetected:
		summary = "fraud indicators present, recommend rejection and investigation"
	case decision.RiskScore >= e.thresholds.High():
		summary = "high risk, recommend rejection"
	case decision.RiskScore >= e.thresholds.Medium():
		summary = "medium risk, recommend manual review before deciding"
	default:
		summary = "low risk, recommend approval"
	}

	details := []string{
		"identity: " + analysis.Identity.Notes,
		"income: " + analysis.Income.Notes,
		"form: " + analysis.Form.Notes,
	}

	return summary + " (" + strings.Join(details, "; ") + ")"
}
