package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/suretrust/underwriting-service/internal/application/dto"
	"github.com/suretrust/underwriting-service/internal/application/usecase"
	"github.com/suretrust/underwriting-service/internal/domain/model"
	"github.com/suretrust/underwriting-service/internal/domain/port"
	"github.com/suretrust/underwriting-service/pkg/auth"
)

// requireRole checks that the caller has at least one of the given roles.
func requireRole(ctx context.Context, roles ...string) error {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "authentication required")
	}
	for _, role := range roles {
		if claims.HasRole(role) {
			return nil
		}
	}
	return status.Error(codes.PermissionDenied, "insufficient permissions")
}

// Compile-time assertion that UnderwritingHandler implements UnderwritingServiceServer.
var _ UnderwritingServiceServer = (*UnderwritingHandler)(nil)

// UnderwritingHandler implements the gRPC UnderwritingServiceServer interface.
type UnderwritingHandler struct {
	UnimplementedUnderwritingServiceServer
	processApplication *usecase.ProcessApplication
	processBatch       *usecase.ProcessBatch
	getMetrics         *usecase.GetMetrics
	logger             *slog.Logger
}

// NewUnderwritingHandler creates a new gRPC handler.
func NewUnderwritingHandler(
	processApplication *usecase.ProcessApplication,
	processBatch *usecase.ProcessBatch,
	getMetrics *usecase.GetMetrics,
	logger *slog.Logger,
) *UnderwritingHandler {
	return &UnderwritingHandler{
		processApplication: processApplication,
		processBatch:       processBatch,
		getMetrics:         getMetrics,
		logger:             logger,
	}
}

// Proto-aligned request/response message types.

// ProcessApplicationRequest represents the proto ProcessApplicationRequest message.
type ProcessApplicationRequest struct {
	CustomerID string `json:"customer_id"`
}

// ApplicationDecisionMsg represents the proto ApplicationDecision message.
type ApplicationDecisionMsg struct {
	ApplicationID   string   `json:"application_id"`
	CustomerID      string   `json:"customer_id"`
	Decision        string   `json:"decision"`
	Reason          string   `json:"reason"`
	RiskScore       int32    `json:"risk_score"`
	FraudDetected   bool     `json:"fraud_detected"`
	FraudIndicators []string `json:"fraud_indicators"`
	Confidence      float64  `json:"confidence"`
	ExecutionStatus string   `json:"execution_status"`
	Actions         []string `json:"actions"`
	FraudActions    []string `json:"fraud_actions"`
	Advice          string   `json:"advice"`
}

// ProcessApplicationResponse represents the proto ProcessApplicationResponse message.
type ProcessApplicationResponse struct {
	Result *ApplicationDecisionMsg `json:"result"`
}

// ProcessBatchRequest represents the proto ProcessBatchRequest message.
type ProcessBatchRequest struct {
	CustomerIDs []string `json:"customer_ids"`
}

// BatchItemMsg represents the proto BatchItem message.
type BatchItemMsg struct {
	CustomerID string                  `json:"customer_id"`
	Result     *ApplicationDecisionMsg `json:"result,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

// ProcessBatchResponse represents the proto ProcessBatchResponse message.
type ProcessBatchResponse struct {
	Items []*BatchItemMsg `json:"items"`
}

// GetMetricsRequest represents the proto GetMetricsRequest message.
type GetMetricsRequest struct{}

// GetMetricsResponse represents the proto GetMetricsResponse message.
type GetMetricsResponse struct {
	TotalProcessed int32   `json:"total_processed"`
	Approved       int32   `json:"approved"`
	Rejected       int32   `json:"rejected"`
	UnderReview    int32   `json:"under_review"`
	ApprovalRate   float64 `json:"approval_rate"`
	RejectionRate  float64 `json:"rejection_rate"`
}

// ProcessApplication handles a single-application pipeline request.
func (h *UnderwritingHandler) ProcessApplication(ctx context.Context, req *ProcessApplicationRequest) (*ProcessApplicationResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleUnderwriter, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil || req.CustomerID == "" {
		return nil, status.Error(codes.InvalidArgument, "customer_id is required")
	}

	h.logger.Info("processing application", slog.String("customer_id", req.CustomerID))

	result, err := h.processApplication.Execute(ctx, dto.ProcessApplicationRequest{CustomerID: req.CustomerID})
	if err != nil {
		return nil, h.mapError(req.CustomerID, err)
	}

	return &ProcessApplicationResponse{Result: decisionMsgFrom(result)}, nil
}

// ProcessBatch handles a batch pipeline request.
func (h *UnderwritingHandler) ProcessBatch(ctx context.Context, req *ProcessBatchRequest) (*ProcessBatchResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleUnderwriter, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil || len(req.CustomerIDs) == 0 {
		return nil, status.Error(codes.InvalidArgument, "customer_ids are required")
	}

	items := h.processBatch.Execute(ctx, req.CustomerIDs)

	msgs := make([]*BatchItemMsg, 0, len(items))
	for _, item := range items {
		msg := &BatchItemMsg{CustomerID: item.CustomerID, Error: item.Error}
		if item.Response != nil {
			msg.Result = decisionMsgFrom(*item.Response)
		}
		msgs = append(msgs, msg)
	}

	return &ProcessBatchResponse{Items: msgs}, nil
}

// GetMetrics handles a metrics summary request.
func (h *UnderwritingHandler) GetMetrics(ctx context.Context, _ *GetMetricsRequest) (*GetMetricsResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleUnderwriter, auth.RoleAuditor); err != nil {
		return nil, err
	}

	summary, err := h.getMetrics.Execute(ctx)
	if err != nil {
		h.logger.Error("failed to load metrics", slog.String("error", err.Error()))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &GetMetricsResponse{
		TotalProcessed: int32(summary.TotalProcessed),
		Approved:       int32(summary.Approved),
		Rejected:       int32(summary.Rejected),
		UnderReview:    int32(summary.UnderReview),
		ApprovalRate:   summary.ApprovalRate,
		RejectionRate:  summary.RejectionRate,
	}, nil
}

// mapError translates pipeline errors into gRPC status codes.
func (h *UnderwritingHandler) mapError(customerID string, err error) error {
	h.logger.Error("failed to process application",
		slog.String("customer_id", customerID),
		slog.String("error", err.Error()),
	)

	var collectionErr *port.CollectionError
	switch {
	case errors.As(err, &collectionErr):
		return status.Errorf(codes.Unavailable, "record collection failed for %s", customerID)
	case errors.Is(err, model.ErrMissingCustomerID):
		return status.Error(codes.InvalidArgument, "collected record is missing its customer identifier")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func decisionMsgFrom(r dto.ProcessApplicationResponse) *ApplicationDecisionMsg {
	return &ApplicationDecisionMsg{
		ApplicationID:   r.ApplicationID.String(),
		CustomerID:      r.CustomerID,
		Decision:        r.Decision,
		Reason:          r.Reason,
		RiskScore:       int32(r.RiskScore),
		FraudDetected:   r.FraudDetected,
		FraudIndicators: r.FraudIndicators,
		Confidence:      r.Confidence,
		ExecutionStatus: r.Execution.Status,
		Actions:         r.Execution.Actions,
		FraudActions:    r.Execution.FraudActions,
		Advice:          r.Report.Advice,
	}
}
