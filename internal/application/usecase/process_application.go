package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/suretrust/underwriting-service/internal/application/dto"
	"github.com/suretrust/underwriting-service/internal/domain/model"
	"github.com/suretrust/underwriting-service/internal/domain/port"
	"github.com/suretrust/underwriting-service/internal/domain/service"
	"github.com/suretrust/underwriting-service/internal/metrics"
)

// ProcessApplication drives the full pipeline for one customer: collect the
// record, analyze and detect fraud against the same immutable record in
// parallel, decide, execute the decision, and append the outcome to the
// feedback log.
type ProcessApplication struct {
	collector port.Collector
	analyzer  *service.Analyzer
	detector  *service.FraudDetector
	engine    *service.DecisionEngine
	executor  *ProcessExecutor
	feedback  port.FeedbackRepository
	publisher port.EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewProcessApplication creates the pipeline use case.
func NewProcessApplication(
	collector port.Collector,
	analyzer *service.Analyzer,
	detector *service.FraudDetector,
	engine *service.DecisionEngine,
	executor *ProcessExecutor,
	feedback port.FeedbackRepository,
	publisher port.EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) *ProcessApplication {
	return &ProcessApplication{
		collector: collector,
		analyzer:  analyzer,
		detector:  detector,
		engine:    engine,
		executor:  executor,
		feedback:  feedback,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// Execute runs the pipeline for one customer. Collection and validation
// failures abort before any side effect occurs; from execution onward the
// decision's side effects run to completion.
func (uc *ProcessApplication) Execute(ctx context.Context, req dto.ProcessApplicationRequest) (dto.ProcessApplicationResponse, error) {
	// 1. Collect the applicant's materials. Failure here terminates this
	// customer's pipeline with no side effects.
	record, err := uc.collector.Collect(ctx, req.CustomerID)
	if err != nil {
		uc.metrics.IncrementCollectionFailures()
		return dto.ProcessApplicationResponse{}, fmt.Errorf("failed to collect customer record: %w", err)
	}

	app, err := model.NewApplication(record)
	if err != nil {
		return dto.ProcessApplicationResponse{}, fmt.Errorf("failed to open application: %w", err)
	}

	// 2. Analysis and fraud detection are independent reads of the same
	// immutable record; run them concurrently and join before deciding.
	var (
		analysis service.AnalysisResult
		fraud    service.FraudAssessment
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		analysis = uc.analyzer.Analyze(record)
		return nil
	})
	g.Go(func() error {
		fraud = uc.detector.Detect(record)
		return nil
	})
	if err := g.Wait(); err != nil {
		return dto.ProcessApplicationResponse{}, err
	}

	// 3. Decide and transition the aggregate.
	decision := uc.engine.Decide(analysis, fraud)
	if err := app.ApplyDecision(
		decision.Outcome,
		decision.Reason,
		decision.RiskScore,
		decision.FraudDetected,
		decision.FraudIndicators,
		decision.Confidence,
	); err != nil {
		return dto.ProcessApplicationResponse{}, fmt.Errorf("failed to apply decision: %w", err)
	}

	// 4. Execute the decision's action sequence.
	execution := uc.executor.Execute(ctx, decision, record)

	// 5. Durably append the outcome to the feedback log.
	entry := model.NewFeedbackEntry(record.CustomerID, decision.Outcome, execution)
	if err := uc.feedback.Append(ctx, entry); err != nil {
		return dto.ProcessApplicationResponse{}, fmt.Errorf("failed to append feedback entry: %w", err)
	}

	// 6. Publish domain events. The decision is already durable; delivery
	// problems are reported, not escalated.
	if evts := app.ClearEvents(); len(evts) > 0 {
		publishable := make([]interface{}, len(evts))
		for i, e := range evts {
			publishable[i] = e
		}
		if err := uc.publisher.Publish(ctx, publishable...); err != nil {
			uc.logger.Warn("failed to publish domain events",
				slog.String("customer_id", record.CustomerID),
				slog.String("error", err.Error()),
			)
		}
	}

	uc.metrics.ObserveDecision(decision.Outcome.String())
	if decision.FraudDetected {
		uc.metrics.IncrementFraudDetected()
	}

	report := uc.engine.GenerateRiskReport(record.CustomerID, analysis, decision)

	uc.logger.Info("application processed",
		slog.String("customer_id", record.CustomerID),
		slog.String("decision", decision.Outcome.String()),
		slog.Int("risk_score", decision.RiskScore),
	)

	return dto.ProcessApplicationResponse{
		ApplicationID:   app.ID(),
		CustomerID:      record.CustomerID,
		Decision:        decision.Outcome.String(),
		Reason:          decision.Reason,
		RiskScore:       decision.RiskScore,
		FraudDetected:   decision.FraudDetected,
		FraudIndicators: decision.FraudIndicators,
		Confidence:      decision.Confidence,
		Execution:       dto.FromExecutionResult(execution),
		Report:          dto.FromRiskReport(report),
		DecidedAt:       app.DecidedAt(),
	}, nil
}
