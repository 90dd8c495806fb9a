// Package fanout delivers emergency alerts to guardians over every
// channel they expose. Delivery failures are data, never errors: each
// attempt produces an outcome and a failing channel cannot affect any
// other attempt.
package fanout

import (
	"context"
	"log/slog"
	"time"

	"github.com/carewatch/carewatch-backend/internal/domain"
)

type pushSender interface {
	Send(ctx context.Context, token, title, body string) error
}

type smsSender interface {
	Send(ctx context.Context, phone, subject, body string) error
}

type emailSender interface {
	Send(ctx context.Context, address, subject, body string) error
}

// dispatcher binds a channel kind to the provider call that serves it.
type dispatcher struct {
	channel domain.Channel
	send    func(ctx context.Context, target, subject, body string) error
}

// Service fans an alert out to guardians concurrently.
type Service struct {
	dispatchers []dispatcher
	timeout     time.Duration
	log         *slog.Logger
}

// NewService creates a new notification fan-out service. The timeout
// bounds every individual provider call.
func NewService(logger *slog.Logger, push pushSender, sms smsSender, email emailSender, timeout time.Duration) *Service {
	return &Service{
		dispatchers: []dispatcher{
			{channel: domain.ChannelPush, send: push.Send},
			{channel: domain.ChannelSMS, send: sms.Send},
			{channel: domain.ChannelEmail, send: email.Send},
		},
		timeout: timeout,
		log:     logger.With("service", "fanout"),
	}
}

// eligibleChannels returns the channels an alert of the given severity
// may use. High and critical alerts use every channel the guardian
// exposes; lower severities stay on push to avoid paging people for
// routine events.
func eligibleChannels(severity domain.Severity) []domain.Channel {
	if severity.Rank() >= domain.SeverityHigh.Rank() {
		return []domain.Channel{domain.ChannelPush, domain.ChannelSMS, domain.ChannelEmail}
	}
	return []domain.Channel{domain.ChannelPush}
}
