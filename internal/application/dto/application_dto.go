package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/suretrust/underwriting-service/internal/domain/model"
	"github.com/suretrust/underwriting-service/internal/domain/service"
)

// ProcessApplicationRequest is the input DTO for the ProcessApplication use case.
type ProcessApplicationRequest struct {
	CustomerID string `json:"customer_id"`
}

// ExecutionResultDTO mirrors the executor outcome for transport.
type ExecutionResultDTO struct {
	Status            string   `json:"status"`
	Actions           []string `json:"actions"`
	FraudActions      []string `json:"fraud_actions,omitempty"`
	NotificationKind  string   `json:"notification_kind,omitempty"`
	NotificationSent  bool     `json:"notification_sent"`
	NotificationError string   `json:"notification_error,omitempty"`
}

// RiskReportDTO is the audit snapshot for one processed application.
type RiskReportDTO struct {
	CustomerID      string    `json:"customer_id"`
	RiskScore       int       `json:"risk_score"`
	Decision        string    `json:"decision"`
	Reason          string    `json:"reason"`
	Advice          string    `json:"advice"`
	FraudIndicators []string  `json:"fraud_indicators,omitempty"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// ProcessApplicationResponse is the output DTO after the pipeline completes.
type ProcessApplicationResponse struct {
	ApplicationID   uuid.UUID          `json:"application_id"`
	CustomerID      string             `json:"customer_id"`
	Decision        string             `json:"decision"`
	Reason          string             `json:"reason"`
	RiskScore       int                `json:"risk_score"`
	FraudDetected   bool               `json:"fraud_detected"`
	FraudIndicators []string           `json:"fraud_indicators,omitempty"`
	Confidence      float64            `json:"confidence"`
	Execution       ExecutionResultDTO `json:"execution"`
	Report          RiskReportDTO      `json:"report"`
	DecidedAt       time.Time          `json:"decided_at"`
}

// BatchItem is the per-customer outcome of a batch run. Exactly one of
// Response or Error is meaningful.
type BatchItem struct {
	CustomerID string                      `json:"customer_id"`
	Response   *ProcessApplicationResponse `json:"response,omitempty"`
	Error      string                      `json:"error,omitempty"`
}

// MetricsResponse summarizes recorded outcomes from the feedback log.
type MetricsResponse struct {
	TotalProcessed int     `json:"total_processed"`
	Approved       int     `json:"approved"`
	Rejected       int     `json:"rejected"`
	UnderReview    int     `json:"under_review"`
	ApprovalRate   float64 `json:"approval_rate"`
	RejectionRate  float64 `json:"rejection_rate"`
}

// FromExecutionResult maps the executor outcome to its DTO.
func FromExecutionResult(r model.ExecutionResult) ExecutionResultDTO {
	return ExecutionResultDTO{
		Status:            r.Status.String(),
		Actions:           r.Actions,
		FraudActions:      r.FraudActions,
		NotificationKind:  r.Notification.Kind.String(),
		NotificationSent:  r.Notification.Sent,
		NotificationError: r.NotificationError,
	}
}

// FromRiskReport maps a report snapshot to its DTO.
func FromRiskReport(r service.RiskReport) RiskReportDTO {
	return RiskReportDTO{
		CustomerID:      r.CustomerID,
		RiskScore:       r.RiskScore,
		Decision:        r.Decision,
		Reason:          r.Reason,
		Advice:          r.Advice,
		FraudIndicators: r.FraudIndicators,
		GeneratedAt:     r.GeneratedAt,
	}
}
