package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/suretrust/underwriting-service/internal/domain/model"
	"github.com/suretrust/underwriting-service/internal/domain/port"
	"github.com/suretrust/underwriting-service/internal/domain/valueobject"
)

// defaultMaxRetries bounds the backoff retry loop per notification.
const defaultMaxRetries = 3

// HTTPNotifier implements port.Notifier by posting to a notification gateway.
// Transient transport failures are retried with bounded exponential backoff;
// once retries are exhausted a *port.NotificationError is returned.
type HTTPNotifier struct {
	endpoint   string
	client     *http.Client
	maxRetries uint64
	logger     *slog.Logger
}

// NewHTTPNotifier creates a notifier for the given gateway endpoint.
func NewHTTPNotifier(endpoint string, logger *slog.Logger) *HTTPNotifier {
	return &HTTPNotifier{
		endpoint:   endpoint,
		client:     &http.Client{Timeout: 10 * time.Second},
		maxRetries: defaultMaxRetries,
		logger:     logger,
	}
}

type notificationPayload struct {
	CustomerID string `json:"customer_id"`
	Message    string `json:"message"`
	Kind       string `json:"kind"`
}

// Send delivers one notification.
func (n *HTTPNotifier) Send(ctx context.Context, customerID, message string, kind valueobject.NotificationKind) (model.Acknowledgment, error) {
	body, err := json.Marshal(notificationPayload{
		CustomerID: customerID,
		Message:    message,
		Kind:       kind.String(),
	})
	if err != nil {
		return model.Acknowledgment{}, &port.NotificationError{CustomerID: customerID, Kind: kind.String(), Err: err}
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("gateway returned %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("gateway rejected notification: %d", resp.StatusCode))
		}
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), n.maxRetries), ctx)
	if err := backoff.Retry(operation, bo); err != nil {
		return model.Acknowledgment{}, &port.NotificationError{CustomerID: customerID, Kind: kind.String(), Err: err}
	}

	n.logger.Info("notification sent",
		slog.String("customer_id", customerID),
		slog.String("kind", kind.String()),
	)

	return model.Acknowledgment{Sent: true, Kind: kind, DeliveredAt: time.Now().UTC()}, nil
}

// LogNotifier implements port.Notifier by logging only. Used in development
// when no gateway endpoint is configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a log-only notifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Send logs the notification and always acknowledges.
func (n *LogNotifier) Send(_ context.Context, customerID, message string, kind valueobject.NotificationKind) (model.Acknowledgment, error) {
	n.logger.Info("notification (log only)",
		slog.String("customer_id", customerID),
		slog.String("kind", kind.String()),
		slog.String("message", message),
	)
	return model.Acknowledgment{Sent: true, Kind: kind, DeliveredAt: time.Now().UTC()}, nil
}
