package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/a2sh3r/familyledger/internal/hash"
	"github.com/a2sh3r/familyledger/internal/logger"
	"go.uber.org/zap"
)

const (
	HeaderSignature = "HashSHA256"
	HeaderEventType = "X-Ledger-Event"
)

// WebhookPublisher POSTs every event to a single URL. When a key is set the body
// is signed with HMAC-SHA256 in the HashSHA256 header.
type WebhookPublisher struct {
	url        string
	key        string
	httpClient *http.Client
}

func NewWebhookPublisher(url, key string) *WebhookPublisher {
	return &WebhookPublisher{
		url:        url,
		key:        key,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (w *WebhookPublisher) Publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderEventType, event.Type)
	if sig := hash.CalculateHash(string(body), w.key); sig != "" {
		req.Header.Set(HeaderSignature, sig)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logger.Log.Error("failed to close webhook response body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func (w *WebhookPublisher) Close() error {
	w.httpClient.CloseIdleConnections()
	return nil
}
