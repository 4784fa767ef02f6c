package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"kensetsu_match/internal/domain/entities"
	"kensetsu_match/internal/usecase/interfaces"
	"kensetsu_match/pkg/logger"
)

const notifyTimeout = 10 * time.Second

// HTTPNotifier posts signature completion events to a downstream endpoint
// (e.g. the matching service that owns contract workflow emails).
//
// Env vars:
//   - NOTIFY_WEBHOOK_URL (empty disables notifications; sends become no-ops)
type HTTPNotifier struct {
	endpoint   string
	httpClient *http.Client
}

var _ interfaces.INotifier = (*HTTPNotifier)(nil)

func NewHTTPNotifier() *HTTPNotifier {
	endpoint := os.Getenv("NOTIFY_WEBHOOK_URL")
	if endpoint == "" {
		logger.L().Infow("notifier disabled, NOTIFY_WEBHOOK_URL not set")
	}
	return &HTTPNotifier{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: notifyTimeout},
	}
}

type signatureFinishedEvent struct {
	Event              string `json:"event"`
	ContractID         string `json:"contract_id"`
	SignatureRequestID string `json:"signature_request_id"`
	Status             string `json:"status"`
	OccurredAt         string `json:"occurred_at"`
}

func (n *HTTPNotifier) SignatureFinished(ctx context.Context, contractID, signatureRequestID string, status entities.SignatureRequestStatus) error {
	if n.endpoint == "" {
		return nil
	}

	ev := signatureFinishedEvent{
		Event:              "signature.finished",
		ContractID:         contractID,
		SignatureRequestID: signatureRequestID,
		Status:             string(status),
		OccurredAt:         time.Now().UTC().Format(time.RFC3339Nano),
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification endpoint returned %d", resp.StatusCode)
	}
	logger.L().Infow("signature notification sent",
		"contract_id", contractID,
		"signature_request_id", signatureRequestID,
		"status", status,
	)
	return nil
}
