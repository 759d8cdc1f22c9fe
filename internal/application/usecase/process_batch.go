package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/suretrust/underwriting-service/internal/application/dto"
)

// defaultBatchConcurrency bounds the number of pipelines in flight per batch.
const defaultBatchConcurrency = 8

// ProcessBatch runs the pipeline for a set of customers. Pipelines are
// independent: one customer's failure is recorded on their batch item and
// never blocks or invalidates the others.
type ProcessBatch struct {
	processor   *ProcessApplication
	concurrency int
	logger      *slog.Logger
}

// NewProcessBatch creates the batch use case. A non-positive concurrency
// selects the default.
func NewProcessBatch(processor *ProcessApplication, concurrency int, logger *slog.Logger) *ProcessBatch {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}
	return &ProcessBatch{processor: processor, concurrency: concurrency, logger: logger}
}

// Execute processes every customer and returns one item per customer in
// input order.
func (uc *ProcessBatch) Execute(ctx context.Context, customerIDs []string) []dto.BatchItem {
	items := make([]dto.BatchItem, len(customerIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)

	for i, customerID := range customerIDs {
		i, customerID := i, customerID
		g.Go(func() error {
			resp, err := uc.processor.Execute(gctx, dto.ProcessApplicationRequest{CustomerID: customerID})
			if err != nil {
				uc.logger.Error("batch item failed",
					slog.String("customer_id", customerID),
					slog.String("error", err.Error()),
				)
				items[i] = dto.BatchItem{CustomerID: customerID, Error: err.Error()}
				return nil
			}
			items[i] = dto.BatchItem{CustomerID: customerID, Response: &resp}
			return nil
		})
	}

	// Goroutines never return errors; failures are isolated per item.
	_ = g.Wait()

	return items
}
