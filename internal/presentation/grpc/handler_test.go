package grpc

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/suretrust/underwriting-service/internal/application/usecase"
	"github.com/suretrust/underwriting-service/internal/domain/model"
	"github.com/suretrust/underwriting-service/internal/domain/service"
	"github.com/suretrust/underwriting-service/internal/domain/valueobject"
	"github.com/suretrust/underwriting-service/internal/infrastructure/crm"
	"github.com/suretrust/underwriting-service/internal/metrics"
	"github.com/suretrust/underwriting-service/pkg/auth"
)

type memoryFeedback struct {
	entries []model.FeedbackEntry
}

func (m *memoryFeedback) Append(_ context.Context, entry model.FeedbackEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memoryFeedback) CountByDecision(context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, e := range m.entries {
		counts[e.Decision.String()]++
	}
	return counts, nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ...interface{}) error { return nil }

type ackNotifier struct{}

func (ackNotifier) Send(_ context.Context, _, _ string, kind valueobject.NotificationKind) (model.Acknowledgment, error) {
	return model.Acknowledgment{Sent: true, Kind: kind, DeliveredAt: time.Now().UTC()}, nil
}

func newTestHandler(t *testing.T) *UnderwritingHandler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New(prometheus.NewRegistry())
	thresholds, err := valueobject.NewRiskThresholds(20, 50, 80)
	require.NoError(t, err)

	processApplication := usecase.NewProcessApplication(
		crm.NewStubCollector(logger),
		service.NewAnalyzer(logger),
		service.NewFraudDetector(logger),
		service.NewDecisionEngine(thresholds, logger),
		usecase.NewProcessExecutor(ackNotifier{}, m, logger),
		&memoryFeedback{},
		noopPublisher{},
		m,
		logger,
	)
	processBatch := usecase.NewProcessBatch(processApplication, 2, logger)
	getMetrics := usecase.NewGetMetrics(&memoryFeedback{})

	return NewUnderwritingHandler(processApplication, processBatch, getMetrics, logger)
}

func authedContext(roles ...string) context.Context {
	return auth.ContextWithClaims(context.Background(), &auth.Claims{
		UserID: uuid.New(),
		Roles:  roles,
	})
}

func TestProcessApplicationRequiresAuthentication(t *testing.T) {
	handler := newTestHandler(t)

	_, err := handler.ProcessApplication(context.Background(), &ProcessApplicationRequest{CustomerID: "CUST001"})

	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestProcessApplicationRequiresRole(t *testing.T) {
	handler := newTestHandler(t)

	_, err := handler.ProcessApplication(authedContext(auth.RoleAuditor), &ProcessApplicationRequest{CustomerID: "CUST001"})

	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestProcessApplicationValidatesInput(t *testing.T) {
	handler := newTestHandler(t)

	_, err := handler.ProcessApplication(authedContext(auth.RoleUnderwriter), &ProcessApplicationRequest{})

	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestProcessApplicationHappyPath(t *testing.T) {
	handler := newTestHandler(t)

	resp, err := handler.ProcessApplication(authedContext(auth.RoleUnderwriter), &ProcessApplicationRequest{CustomerID: "CUST001"})
	require.NoError(t, err)
	require.NotNil(t, resp.Result)

	assert.Equal(t, "CUST001", resp.Result.CustomerID)
	assert.Equal(t, "APPROVE", resp.Result.Decision)
	assert.Equal(t, "SUCCESS", resp.Result.ExecutionStatus)
	assert.NotEmpty(t, resp.Result.ApplicationID)
	assert.NotEmpty(t, resp.Result.Advice)
}

func TestProcessApplicationFraudPath(t *testing.T) {
	handler := newTestHandler(t)

	resp, err := handler.ProcessApplication(authedContext(auth.RoleAdmin), &ProcessApplicationRequest{CustomerID: "CUST999"})
	require.NoError(t, err)
	require.NotNil(t, resp.Result)

	assert.Equal(t, "REJECT", resp.Result.Decision)
	assert.True(t, resp.Result.FraudDetected)
	assert.Equal(t, []string{
		"coverage amount abnormally high",
		"no prior policy history",
	}, resp.Result.FraudIndicators)
	assert.Len(t, resp.Result.FraudActions, 3)
}

func TestProcessApplicationCollectionFailure(t *testing.T) {
	handler := newTestHandler(t)

	// The stub collector rejects empty IDs, but the handler guards first;
	// exercise the pipeline error path via the batch endpoint instead.
	resp, err := handler.ProcessBatch(authedContext(auth.RoleUnderwriter), &ProcessBatchRequest{CustomerIDs: []string{""}})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Nil(t, resp.Items[0].Result)
	assert.NotEmpty(t, resp.Items[0].Error)
}

func TestProcessBatch(t *testing.T) {
	handler := newTestHandler(t)

	resp, err := handler.ProcessBatch(authedContext(auth.RoleAPIClient), &ProcessBatchRequest{
		CustomerIDs: []string{"CUST001", "CUST999"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)

	require.NotNil(t, resp.Items[0].Result)
	assert.Equal(t, "APPROVE", resp.Items[0].Result.Decision)
	require.NotNil(t, resp.Items[1].Result)
	assert.Equal(t, "REJECT", resp.Items[1].Result.Decision)
}

func TestProcessBatchValidatesInput(t *testing.T) {
	handler := newTestHandler(t)

	_, err := handler.ProcessBatch(authedContext(auth.RoleUnderwriter), &ProcessBatchRequest{})

	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetMetricsAllowsAuditor(t *testing.T) {
	handler := newTestHandler(t)

	resp, err := handler.GetMetrics(authedContext(auth.RoleAuditor), &GetMetricsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(0), resp.TotalProcessed)
}

func TestGetMetricsDeniesAPIClient(t *testing.T) {
	handler := newTestHandler(t)

	_, err := handler.GetMetrics(authedContext(auth.RoleAPIClient), &GetMetricsRequest{})

	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}
