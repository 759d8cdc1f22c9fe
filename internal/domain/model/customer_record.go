package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrMissingCustomerID is returned when a collected record carries no
// customer identifier. Records without an identifier cannot enter the
// pipeline; missing optional sections merely score as worst case.
var ErrMissingCustomerID = errors.New("customer record missing customer identifier")

// Income verification statuses reported by the upstream document pipeline.
const (
	VerificationVerified = "verified"
	VerificationPending  = "pending"
	VerificationFailed   = "failed"
)

// Income source reliability grades.
const (
	ReliabilityHigh   = "high"
	ReliabilityMedium = "medium"
	ReliabilityLow    = "low"
)

// IdentityDocument references the captured identity document images and the
// name printed on them.
type IdentityDocument struct {
	FrontImage string
	BackImage  string
	HolderName string
}

// PhoneVerification holds carrier real-name verification details.
type PhoneVerification struct {
	Number         string
	RegisteredName string
	Carrier        string
	Verified       bool
}

// IncomeProof bundles the income documents with their verification outcome.
type IncomeProof struct {
	Documents          []string
	MonthlyIncome      decimal.Decimal
	VerificationStatus string
	SourceReliability  string
}

// ClaimRecord is a single historical claim on a prior policy.
type ClaimRecord struct {
	Date   time.Time
	Amount decimal.Decimal
}

// PolicyRecord is one prior-policy history entry.
type PolicyRecord struct {
	PolicyID string
	Status   string
	Claims   []ClaimRecord
}

// HealthQuestionnaire carries the applicant's self-reported health answers.
type HealthQuestionnaire struct {
	HasChronicDisease bool
	HasSurgeryHistory bool
}

// ApplicationForm holds the fields of the submitted application.
type ApplicationForm struct {
	ProductType         string
	CoverageAmount      decimal.Decimal
	ApplicationDate     time.Time
	HealthQuestionnaire HealthQuestionnaire
}

// CustomerRecord is the immutable bundle of materials collected for one
// applicant. It is created once by the collector and handed through the
// pipeline by value; no stage mutates it.
type CustomerRecord struct {
	CustomerID        string
	IdentityDocument  IdentityDocument
	IncomeProof       IncomeProof
	PhoneVerification PhoneVerification
	HistoryRecords    []PolicyRecord
	ApplicationForm   ApplicationForm
}

// Validate checks the structural invariants a record must satisfy before it
// can enter the pipeline.
func (r CustomerRecord) Validate() error {
	if r.CustomerID == "" {
		return ErrMissingCustomerID
	}
	return nil
}
