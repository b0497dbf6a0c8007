package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tidesight2026/tidesight/internal/api"
	"github.com/tidesight2026/tidesight/internal/core/domain"
	"github.com/tidesight2026/tidesight/internal/core/service"
	"github.com/tidesight2026/tidesight/internal/infrastructure/config"
	infraredis "github.com/tidesight2026/tidesight/internal/infrastructure/db/redis"
	"github.com/tidesight2026/tidesight/internal/infrastructure/upstream"
	"github.com/tidesight2026/tidesight/pkg/clock"
	"github.com/tidesight2026/tidesight/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.Session.Secret == "" {
		log.Fatal().Msg("SESSION_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := infraredis.Connect(ctx, infraredis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	clk := clock.Real()
	repo := infraredis.NewSessionRepository(rdb, cfg.Session.TTL)
	feedback := service.NewFeedbackService(clk)

	// The upstream client and the session service reference each
	// other: the client's 401 hooks clear sessions, the service calls
	// the client for login and refresh. The hooks close over the
	// variable and fire only once the server is running.
	var sessions *service.SessionService

	client, err := upstream.New(upstream.Config{
		BaseURL:       cfg.Upstream.BaseURL,
		Log:           log,
		Clock:         clk,
		RedirectDelay: cfg.Upstream.RedirectDelay,
		OnUnauthorized: func(ctx context.Context, failedToken string) {
			s := domain.SessionFrom(ctx)
			if s == nil {
				return
			}
			if err := sessions.Invalidate(ctx, s.ID, failedToken); err != nil {
				log.Warn().Err(err).Str("session_id", s.ID).Msg("session invalidation failed")
			}
		},
		Navigate: func(ctx context.Context, path string) {
			if s := domain.SessionFrom(ctx); s != nil {
				feedback.RedirectTo(s.ID, path)
			}
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("upstream client setup failed")
	}

	sessions = service.NewSessionService(
		repo,
		client,
		cfg.Session.Secret,
		cfg.Session.TTL,
		cfg.Session.RefreshLeeway,
		clk,
		log,
	)

	e := api.NewRouter(api.Dependencies{
		Sessions:   sessions,
		Feedback:   feedback,
		Upstream:   client,
		Redis:      rdb,
		CookieName: cfg.Session.CookieName,
		CookieTTL:  cfg.Session.TTL,
		Log:        log,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(":" + cfg.Port)
	}()
	log.Info().Str("port", cfg.Port).Str("upstream", cfg.Upstream.BaseURL).Msg("gateway started")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}
}
