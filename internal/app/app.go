package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/carewatch/carewatch-backend/internal/auth"
	"github.com/carewatch/carewatch-backend/internal/config"

	"github.com/carewatch/carewatch-backend/internal/adapter/notifier/email"
	"github.com/carewatch/carewatch-backend/internal/adapter/notifier/push"
	"github.com/carewatch/carewatch-backend/internal/adapter/notifier/sms"
	"github.com/carewatch/carewatch-backend/internal/adapter/postgres"
	emergencyrepo "github.com/carewatch/carewatch-backend/internal/adapter/postgres/emergency"
	guardianrepo "github.com/carewatch/carewatch-backend/internal/adapter/postgres/guardian"
	"github.com/carewatch/carewatch-backend/internal/service/escalation"
	"github.com/carewatch/carewatch-backend/internal/service/escalation/severity"
	"github.com/carewatch/carewatch-backend/internal/service/fanout"
	"github.com/carewatch/carewatch-backend/internal/service/guardians"
	"github.com/carewatch/carewatch-backend/internal/service/lifecycle"
	"github.com/carewatch/carewatch-backend/internal/transport/middleware"
	"github.com/carewatch/carewatch-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// services to their adapters, and serves HTTP until the context is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	// Adapters.
	emergencies := emergencyrepo.New(pool)
	guardianLinks := guardianrepo.New(pool)
	pushProvider := push.NewProvider(cfg.Notify.Push, cfg.Notify.DispatchTimeout, logger)
	smsProvider := sms.NewProvider(cfg.Notify.SMS, cfg.Notify.DispatchTimeout, logger)
	emailProvider := email.NewProvider(cfg.Notify.Email, cfg.Notify.DispatchTimeout, logger)

	// Services.
	lifecycleSvc := lifecycle.NewService(logger, emergencies, postgres.NewTxManager(pool))
	resolverSvc := guardians.NewService(logger, guardianLinks)
	fanoutSvc := fanout.NewService(logger, pushProvider, smsProvider, emailProvider, cfg.Notify.DispatchTimeout)
	escalationSvc := escalation.NewService(
		logger,
		lifecycleSvc,
		resolverSvc,
		fanoutSvc,
		severity.Thresholds{
			Critical: cfg.Escalation.FallCriticalThreshold,
			Medium:   cfg.Escalation.FallMediumThreshold,
		},
		cfg.Escalation.HistoryMaxLimit,
	)

	// Transport.
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	emergencyHandler := rest.NewEmergencyHandler(escalationSvc, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	router := rest.NewRouter(emergencyHandler, healthHandler)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		limiter.Limit(240),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
