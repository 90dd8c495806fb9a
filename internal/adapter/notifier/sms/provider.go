// Package sms delivers alerts as text messages through the SMS gateway's
// HTTP API.
package sms

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/carewatch/carewatch-backend/internal/adapter/notifier"
	"github.com/carewatch/carewatch-backend/internal/config"
)

// Provider sends SMS messages via the configured gateway.
type Provider struct {
	baseURL    string
	accountID  string
	authToken  string
	from       string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates an SMS Provider from configuration.
func NewProvider(cfg config.SMSConfig, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		accountID:  cfg.AccountID,
		authToken:  cfg.AuthToken,
		from:       cfg.From,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "sms"),
	}
}

// Send texts the message to the given E.164 phone number. The subject is
// folded into the message body since SMS has no subject line.
func (p *Provider) Send(ctx context.Context, phone, subject, body string) error {
	if phone == "" {
		return fmt.Errorf("sms: empty phone number: %w", notifier.ErrInvalidTarget)
	}

	form := url.Values{}
	form.Set("To", phone)
	form.Set("From", p.from)
	form.Set("Body", subject+"\n"+body)

	endpoint := fmt.Sprintf("%s/accounts/%s/messages", p.baseURL, url.PathEscape(p.accountID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("sms: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(p.accountID, p.authToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sms: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		p.log.DebugContext(ctx, "sms accepted", slog.Int("status", resp.StatusCode))
		return nil
	case resp.StatusCode == http.StatusBadRequest:
		// The gateway reports unroutable numbers as 400.
		return fmt.Errorf("sms: status %d: %w", resp.StatusCode, notifier.ErrInvalidTarget)
	default:
		return fmt.Errorf("sms: status %d: %w", resp.StatusCode, notifier.ErrRejected)
	}
}
