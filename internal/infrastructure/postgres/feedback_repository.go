package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suretrust/underwriting-service/internal/domain/model"
)

// FeedbackRepository implements port.FeedbackRepository using PostgreSQL.
// The table is append-only: this adapter issues INSERTs and reads, never
// UPDATE or DELETE, so recorded entries are immutable.
type FeedbackRepository struct {
	pool *pgxpool.Pool
}

// NewFeedbackRepository creates a new PostgreSQL-backed feedback repository.
func NewFeedbackRepository(pool *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{pool: pool}
}

// Append durably records one feedback entry.
func (r *FeedbackRepository) Append(ctx context.Context, entry model.FeedbackEntry) error {
	actions, err := json.Marshal(entry.Result.Actions)
	if err != nil {
		return fmt.Errorf("failed to marshal actions: %w", err)
	}
	fraudActions, err := json.Marshal(entry.Result.FraudActions)
	if err != nil {
		return fmt.Errorf("failed to marshal fraud actions: %w", err)
	}

	query := `
		INSERT INTO feedback_entries (
			id, customer_id, decision, status,
			actions, fraud_actions,
			notification_kind, notification_sent, notification_error,
			executed_at, recorded_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = r.pool.Exec(ctx, query,
		entry.ID,
		entry.CustomerID,
		entry.Decision.String(),
		entry.Result.Status.String(),
		actions,
		fraudActions,
		entry.Result.Notification.Kind.String(),
		entry.Result.Notification.Sent,
		entry.Result.NotificationError,
		entry.Result.ExecutedAt,
		entry.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append feedback entry: %w", err)
	}

	return nil
}

// CountByDecision returns the number of recorded entries per decision value.
func (r *FeedbackRepository) CountByDecision(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT decision, COUNT(*) FROM feedback_entries GROUP BY decision`)
	if err != nil {
		return nil, fmt.Errorf("failed to count feedback entries: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var decision string
		var count int
		if err := rows.Scan(&decision, &count); err != nil {
			return nil, fmt.Errorf("failed to scan feedback count: %w", err)
		}
		counts[decision] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feedback counts: %w", err)
	}

	return counts, nil
}
