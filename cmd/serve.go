package main

import (
	"context"
	"errors"
	"landregistry/internal/api"
	"landregistry/internal/api/handler/v1handler"
	"landregistry/internal/auth"
	"landregistry/internal/config"
	"landregistry/internal/registry"
	"landregistry/internal/worker"
	"landregistry/pkg/logger"
	"landregistry/pkg/mail"
	"landregistry/pkg/redisstore"
	"landregistry/pkg/storage/postgres"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// newMailer delivers through SMTP when a relay is configured and logs
// messages otherwise.
func newMailer(ctx context.Context, cfg *config.Config) mail.Mailer {
	if cfg.Mail.SMTPHost == "" {
		logger.Warn(ctx, "no smtp host configured, mails are written to the log")

		return mail.LogMailer{}
	}

	return mail.NewSMTPMailer(mail.SMTPOptions{
		Host:     cfg.Mail.SMTPHost,
		Port:     cfg.Mail.SMTPPort,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	})
}

func setupWorkers(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) func(ctx context.Context) {
	riverClient, err := worker.Start(ctx, strg.Pool, worker.Options{
		Mailer:        newMailer(ctx, cfg),
		Limiter:       rate.NewLimiter(rate.Limit(cfg.Mail.RatePerSecond), cfg.Mail.Burst),
		Documents:     strg,
		MaxWorkers:    cfg.Worker.MaxWorkers,
		MailWorkers:   cfg.Worker.MailWorkers,
		SweepInterval: cfg.Worker.ExpirySweepInterval,
	})
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			redisClient, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()

			tokens, err := auth.NewTokens(auth.NewTokenOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not load jwt keys", zap.Error(err))
			}

			stopWorkers := setupWorkers(ctx, cfg, strg)

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Auth:     auth.New(strg, redisstore.New(redisClient), tokens, auth.NewOptions(cfg)),
					Registry: registry.New(strg),
				},
				HealthChecks: map[string]api.HealthCheck{
					"postgres": strg.Ping,
					"redis": func(ctx context.Context) error {
						return redisPing(ctx, redisClient)
					},
				},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
		},
	}

	return cmd
}

func redisPing(ctx context.Context, client redis.Cmdable) error {
	return client.Ping(ctx).Err() //nolint: wrapcheck
}
