// Command sweeper reports emergencies stuck in the ACTIVE state past the
// configured age. These are records whose fan-out never confirmed a
// single guardian; an operator has to follow up on each one. It is
// intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success (even with stale records found), 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/carewatch/carewatch-backend/internal/adapter/postgres"
	emergencyrepo "github.com/carewatch/carewatch-backend/internal/adapter/postgres/emergency"
	"github.com/carewatch/carewatch-backend/internal/app"
	"github.com/carewatch/carewatch-backend/internal/config"
	"github.com/carewatch/carewatch-backend/internal/service/lifecycle"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	lifecycleSvc := lifecycle.NewService(logger, emergencyrepo.New(pool), postgres.NewTxManager(pool))

	stale, err := lifecycleSvc.ListStaleActive(ctx, cfg.Escalation.StaleActiveAge)
	if err != nil {
		logger.Error("list stale emergencies failed",
			slog.String("error", err.Error()),
			slog.Duration("max_age", cfg.Escalation.StaleActiveAge),
		)
		os.Exit(1)
	}

	for _, e := range stale {
		logger.Warn("stale active emergency",
			slog.String("emergency_id", e.ID.String()),
			slog.String("protected_user_id", e.ProtectedUserID.String()),
			slog.String("kind", e.Kind.String()),
			slog.String("severity", e.Severity.String()),
			slog.Time("created_at", e.CreatedAt),
		)
	}

	logger.Info("sweep completed",
		slog.Int("stale", len(stale)),
		slog.Duration("max_age", cfg.Escalation.StaleActiveAge),
	)
}
