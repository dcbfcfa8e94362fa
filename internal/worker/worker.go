// Package worker runs the background jobs of the registry on river: mail
// delivery and the periodic archiving of expired documents.
package worker

import (
	"context"
	"fmt"
	"landregistry/pkg/logger"
	"landregistry/pkg/mail"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"golang.org/x/time/rate"
)

// Options wires the dependencies and concurrency of the job runner.
type Options struct {
	Mailer    mail.Mailer
	Limiter   *rate.Limiter
	Documents DocumentArchiver

	MaxWorkers    int
	MailWorkers   int
	SweepInterval time.Duration
}

func Start(ctx context.Context, dbPool *pgxpool.Pool, opts Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewMailWorker(opts.Mailer, opts.Limiter))
	river.AddWorker(workers, NewExpiryWorker(opts.Documents))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: opts.MaxWorkers},
			mail.Queue:         {MaxWorkers: opts.MailWorkers},
		},
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(opts.SweepInterval),
				func() (river.JobArgs, *river.InsertOpts) { return ExpirySweepArgs{}, nil },
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
