package middleware

import (
	"context"

	"github.com/carewatch/carewatch-backend/internal/auth"
	"github.com/carewatch/carewatch-backend/internal/domain"
	"github.com/carewatch/carewatch-backend/pkg/ctxutil"
)

// RequireGuardian returns domain.ErrUnauthorized unless the context
// caller is an authenticated guardian. Use in handlers that close
// emergencies, not as HTTP middleware.
func RequireGuardian(ctx context.Context) error {
	if ctxutil.CallerRoleFromCtx(ctx) != auth.RoleGuardian {
		return domain.ErrUnauthorized
	}
	return nil
}
