package fanout

import (
	"context"
	"log/slog"
	"sync"

	"github.com/carewatch/carewatch-backend/internal/adapter/notifier"
	"github.com/carewatch/carewatch-backend/internal/domain"
)

// Dispatch sends the alert to every recipient over every eligible
// channel they expose. It never returns an error: each attempt is
// recorded as a DispatchOutcome and failures stay isolated per channel.
//
// Delivery is detached from the caller's cancellation so that an aborted
// HTTP request cannot cut an alert short; only the per-call timeout
// bounds each provider.
func (s *Service) Dispatch(ctx context.Context, e *domain.Emergency, recipients []domain.GuardianRecipient) Report {
	ctx = context.WithoutCancel(ctx)

	subject := buildSubject(e)
	body := buildBody(e)
	channels := eligibleChannels(e.Severity)

	perGuardian := make([]GuardianReport, len(recipients))

	var wg sync.WaitGroup
	for i, r := range recipients {
		wg.Add(1)
		go func() {
			defer wg.Done()
			perGuardian[i] = s.dispatchToGuardian(ctx, e, r, channels, subject, body)
		}()
	}
	wg.Wait()

	report := Report{PerGuardian: perGuardian}
	for _, g := range perGuardian {
		if len(g.Outcomes) > 0 {
			report.GuardiansAttempted++
		}
		if g.Reached {
			report.GuardiansReached++
		}
	}

	s.log.InfoContext(ctx, "fan-out complete",
		slog.String("emergency_id", e.ID.String()),
		slog.String("severity", e.Severity.String()),
		slog.Int("recipients", len(recipients)),
		slog.Int("attempted", report.GuardiansAttempted),
		slog.Int("reached", report.GuardiansReached),
	)

	return report
}

// dispatchToGuardian fires every eligible channel the guardian exposes
// concurrently and collects the outcomes. A guardian with no usable
// contact fields yields zero outcomes.
func (s *Service) dispatchToGuardian(ctx context.Context, e *domain.Emergency, r domain.GuardianRecipient, channels []domain.Channel, subject, body string) GuardianReport {
	type attempt struct {
		dispatcher dispatcher
		target     string
	}

	var attempts []attempt
	for _, d := range s.dispatchers {
		if !channelEligible(d.channel, channels) {
			continue
		}
		target := r.Channels.Target(d.channel)
		if target == "" {
			continue
		}
		attempts = append(attempts, attempt{dispatcher: d, target: target})
	}

	outcomes := make([]domain.DispatchOutcome, len(attempts))

	var wg sync.WaitGroup
	for i, a := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[i] = s.sendOne(ctx, e, r, a.dispatcher, a.target, subject, body)
		}()
	}
	wg.Wait()

	report := GuardianReport{
		GuardianID:  r.GuardianID,
		DisplayName: r.DisplayName,
		Outcomes:    outcomes,
	}
	for _, o := range outcomes {
		if o.Success {
			report.Reached = true
			break
		}
	}
	return report
}

func (s *Service) sendOne(ctx context.Context, e *domain.Emergency, r domain.GuardianRecipient, d dispatcher, target, subject, body string) domain.DispatchOutcome {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := d.send(ctx, target, subject, body)
	if err == nil {
		return domain.DispatchOutcome{
			GuardianID: r.GuardianID,
			Channel:    d.channel,
			Success:    true,
		}
	}

	kind := notifier.ClassifyError(err)
	s.log.WarnContext(ctx, "channel send failed",
		slog.String("emergency_id", e.ID.String()),
		slog.String("guardian_id", r.GuardianID.String()),
		slog.String("channel", d.channel.String()),
		slog.String("error_kind", kind.String()),
		slog.String("error", err.Error()),
	)
	return domain.DispatchOutcome{
		GuardianID: r.GuardianID,
		Channel:    d.channel,
		Success:    false,
		ErrorKind:  kind,
	}
}

func channelEligible(c domain.Channel, eligible []domain.Channel) bool {
	for _, e := range eligible {
		if c == e {
			return true
		}
	}
	return false
}
