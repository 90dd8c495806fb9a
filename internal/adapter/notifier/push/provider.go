// Package push delivers alerts to guardian devices through the push
// gateway's HTTP API.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/carewatch/carewatch-backend/internal/adapter/notifier"
	"github.com/carewatch/carewatch-backend/internal/config"
)

// Provider sends push notifications via the configured gateway.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a push Provider from configuration. The HTTP client
// timeout bounds every call so a hung gateway cannot stall a fan-out.
func NewProvider(cfg config.PushConfig, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "push"),
	}
}

type message struct {
	Token    string `json:"token"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Priority string `json:"priority"`
}

// Send pushes a notification to the device identified by token.
func (p *Provider) Send(ctx context.Context, token, title, body string) error {
	if token == "" {
		return fmt.Errorf("push: empty device token: %w", notifier.ErrInvalidTarget)
	}

	payload, err := json.Marshal(message{
		Token:    token,
		Title:    title,
		Body:     body,
		Priority: "high",
	})
	if err != nil {
		return fmt.Errorf("push: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("push: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		p.log.DebugContext(ctx, "push delivered", slog.Int("status", resp.StatusCode))
		return nil
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		// Stale or unregistered device token.
		return fmt.Errorf("push: status %d: %w", resp.StatusCode, notifier.ErrInvalidTarget)
	default:
		return fmt.Errorf("push: status %d: %w", resp.StatusCode, notifier.ErrRejected)
	}
}
