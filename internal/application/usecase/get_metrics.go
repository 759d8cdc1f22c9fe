package usecase

import (
	"context"
	"fmt"

	"github.com/suretrust/underwriting-service/internal/application/dto"
	"github.com/suretrust/underwriting-service/internal/domain/port"
	"github.com/suretrust/underwriting-service/internal/domain/valueobject"
)

// GetMetrics summarizes recorded outcomes from the feedback log.
type GetMetrics struct {
	feedback port.FeedbackRepository
}

// NewGetMetrics creates the metrics use case.
func NewGetMetrics(feedback port.FeedbackRepository) *GetMetrics {
	return &GetMetrics{feedback: feedback}
}

// Execute reads decision counts from the feedback log and derives rates.
func (uc *GetMetrics) Execute(ctx context.Context) (dto.MetricsResponse, error) {
	counts, err := uc.feedback.CountByDecision(ctx)
	if err != nil {
		return dto.MetricsResponse{}, fmt.Errorf("failed to count feedback entries: %w", err)
	}

	approved := counts[valueobject.DecisionApprove.String()]
	rejected := counts[valueobject.DecisionReject.String()]
	review := counts[valueobject.DecisionReview.String()]
	total := approved + rejected + review

	resp := dto.MetricsResponse{
		TotalProcessed: total,
		Approved:       approved,
		Rejected:       rejected,
		UnderReview:    review,
	}
	if total > 0 {
		resp.ApprovalRate = float64(approved) / float64(total)
		resp.RejectionRate = float64(rejected) / float64(total)
	}

	return resp, nil
}
