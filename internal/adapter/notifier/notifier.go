// Package notifier holds the shared error vocabulary of the delivery
// provider adapters (push, sms, email). Each adapter performs its own I/O
// against an external provider and reports failures as wrapped sentinel
// errors; ClassifyError folds any of them into a DispatchErrorKind for the
// fan-out report.
package notifier

import (
	"context"
	"errors"
	"net"

	"github.com/carewatch/carewatch-backend/internal/domain"
)

var (
	// ErrRejected means the provider answered with a non-success status.
	ErrRejected = errors.New("provider rejected message")
	// ErrInvalidTarget means the provider considers the recipient address,
	// phone number or device token unusable.
	ErrInvalidTarget = errors.New("invalid delivery target")
)

// ClassifyError maps a provider error to its dispatch error kind.
func ClassifyError(err error) domain.DispatchErrorKind {
	switch {
	case errors.Is(err, ErrInvalidTarget):
		return domain.DispatchErrorInvalidTarget
	case errors.Is(err, ErrRejected):
		return domain.DispatchErrorRejected
	case errors.Is(err, context.DeadlineExceeded):
		return domain.DispatchErrorTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.DispatchErrorTimeout
	}

	return domain.DispatchErrorUnreachable
}
