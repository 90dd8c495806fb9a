// Package email delivers alerts through the transactional mail API.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/carewatch/carewatch-backend/internal/adapter/notifier"
	"github.com/carewatch/carewatch-backend/internal/config"
)

// Provider sends email via the configured transport.
type Provider struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates an email Provider from configuration.
func NewProvider(cfg config.EmailConfig, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		from:       cfg.From,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "email"),
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// Send mails the message to the given address.
func (p *Provider) Send(ctx context.Context, address, subject, body string) error {
	if address == "" || !strings.Contains(address, "@") {
		return fmt.Errorf("email: bad address %q: %w", address, notifier.ErrInvalidTarget)
	}

	payload, err := json.Marshal(sendRequest{
		From:    p.from,
		To:      address,
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("email: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/send", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("email: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		p.log.DebugContext(ctx, "email accepted", slog.Int("status", resp.StatusCode))
		return nil
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("email: status %d: %w", resp.StatusCode, notifier.ErrInvalidTarget)
	default:
		return fmt.Errorf("email: status %d: %w", resp.StatusCode, notifier.ErrRejected)
	}
}
