package service

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/suretrust/underwriting-service/internal/domain/model"
)

// Penalty points contributed by each failed sub-check. Penalties are additive
// and the total is clamped to [0,100].
const (
	penaltyIdentityInvalid   = 30
	penaltyNameMismatch      = 20
	penaltyLowReliability    = 25
	penaltyIncomeUnverified  = 15
	penaltyCoverageExcessive = 20
)

// maxReasonableCoverage is the ceiling above which a requested coverage
// amount is penalized as unreasonable for any product.
var maxReasonableCoverage = decimal.NewFromInt(5_000_000)

// IdentityAnalysis is the identity sub-check outcome.
type IdentityAnalysis struct {
	Valid     bool
	NameMatch bool
	Notes     string
}

// IncomeAnalysis is the income sub-check outcome.
type IncomeAnalysis struct {
	MonthlyIncome     decimal.Decimal
	Verified          bool
	SourceReliability string
	Notes             string
}

// FormAnalysis is the application-form sub-check outcome.
type FormAnalysis struct {
	ProductType        string
	CoverageReasonable bool
	Notes              string
}

// AnalysisResult aggregates the three sub-analyses and the overall risk score
// derived from them. It is created once per record and never mutated.
type AnalysisResult struct {
	Identity         IdentityAnalysis
	Income           IncomeAnalysis
	Form             FormAnalysis
	OverallRiskScore int
}

// Analyzer derives a risk score from an applicant's collected materials. It
// is total over any well-formed record: missing optional sections score as
// worst case rather than erroring, and the input is never mutated.
type Analyzer struct {
	logger *slog.Logger
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Analyze runs the three sub-checks and sums their penalties into an overall
// risk score in [0,100], lower is better.
func (a *Analyzer) Analyze(record model.CustomerRecord) AnalysisResult {
	identity := a.analyzeIdentity(record)
	income := a.analyzeIncome(record)
	form := a.analyzeForm(record)

	score := 0
	if !identity.Valid {
		score += penaltyIdentityInvalid
	}
	if !identity.NameMatch {
		score += penaltyNameMismatch
	}
	if income.SourceReliability != model.ReliabilityHigh && income.SourceReliability != model.ReliabilityMedium {
		score += penaltyLowReliability
	}
	if !income.Verified {
		score += penaltyIncomeUnverified
	}
	if !form.CoverageReasonable {
		score += penaltyCoverageExcessive
	}
	if score > 100 {
		score = 100
	}

	a.logger.Debug("analysis complete",
		slog.String("customer_id", record.CustomerID),
		slog.Int("risk_score", score),
	)

	return AnalysisResult{
		Identity:         identity,
		Income:           income,
		Form:             form,
		OverallRiskScore: score,
	}
}

func (a *Analyzer) analyzeIdentity(record model.CustomerRecord) IdentityAnalysis {
	doc := record.IdentityDocument
	phone := record.PhoneVerification

	valid := doc.FrontImage != "" && doc.BackImage != ""
	nameMatch := doc.HolderName != "" && phone.Verified && doc.HolderName == phone.RegisteredName

	notes := "identity document complete and name matches carrier registration"
	switch {
	case !valid:
		notes = "identity document images incomplete"
	case !nameMatch:
		notes = "document holder name does not match carrier registration"
	}

	return IdentityAnalysis{Valid: valid, NameMatch: nameMatch, Notes: notes}
}

func (a *Analyzer) analyzeIncome(record model.CustomerRecord) IncomeAnalysis {
	proof := record.IncomeProof

	verified := len(proof.Documents) > 0 && proof.VerificationStatus == model.VerificationVerified

	notes := "income proof verified"
	if !verified {
		notes = "income proof missing or unverified"
	}

	return IncomeAnalysis{
		MonthlyIncome:     proof.MonthlyIncome,
		Verified:          verified,
		SourceReliability: proof.SourceReliability,
		Notes:             notes,
	}
}

func (a *Analyzer) analyzeForm(record model.CustomerRecord) FormAnalysis {
	form := record.ApplicationForm

	reasonable := form.CoverageAmount.IsPositive() &&
		form.CoverageAmount.LessThanOrEqual(maxReasonableCoverage)

	notes := "requested coverage within reasonable bounds"
	if !reasonable {
		notes = "requested coverage outside reasonable bounds"
	}

	return FormAnalysis{
		ProductType:        form.ProductType,
		CoverageReasonable: reasonable,
		Notes:              notes,
	}
}
