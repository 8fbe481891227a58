package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"famcal/assistant"
	"famcal/config"
	"famcal/handlers"
	"famcal/utils"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	utils.SetupLogger(cfg.LogLevel, cfg.IsProduction())
	log.Info().Str("environment", cfg.AppEnv).Msg("starting famcal")

	ctx := context.Background()
	app := &handlers.App{PingMessage: cfg.PingMessage, TrustedProxyHops: cfg.Server.TrustedProxyHops}

	// Initialize the database connection pool
	if cfg.DatabaseURL != "" {
		dbPool, err := utils.OpenDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer dbPool.Close()
		app.Store = utils.NewPGStore(dbPool)
	} else {
		log.Warn().Msg("DATABASE_URL not set, data routes disabled")
	}

	if cfg.RedisURL != "" {
		redisPool, err := utils.OpenRedisPool(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, running without cache and rate limits")
		} else {
			defer redisPool.Close()
			app.Cache = utils.NewCache(redisPool, cfg.CacheTTL)
			app.Limiter = utils.NewLimiter(redisPool, cfg.RateLimit, time.Minute)
			app.CacheCheck = func(ctx context.Context) error { return redisPool.Ping(ctx).Err() }
		}
	}

	if cfg.Mail.SendGridKey != "" {
		app.Notifier = utils.NewMailer(cfg.Mail.SendGridKey, cfg.Mail.From, cfg.Mail.FeedbackTo)
	}

	if cfg.OpenAI.APIKey != "" {
		app.Assistant = assistant.New(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)
	} else {
		log.Info().Msg("OPENAI_API_KEY not set, chat uses canned replies")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handlers.NewRouter(app, cfg.Server.AllowedOrigins),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
}
