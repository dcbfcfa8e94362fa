package worker

import (
	"context"
	"errors"
	"fmt"
	"landregistry/pkg/logger"
	"landregistry/pkg/mail"
	"landregistry/pkg/metrics"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// MailWorker delivers queued messages through a mail.Mailer. All of its
// concurrent jobs share one token bucket so the relay is never flooded.
type MailWorker struct {
	river.WorkerDefaults[mail.JobArgs]

	mailer  mail.Mailer
	limiter *rate.Limiter
}

// NewMailWorker returns a worker sending through mailer. A nil limiter disables throttling.
func NewMailWorker(mailer mail.Mailer, limiter *rate.Limiter) *MailWorker {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}

	return &MailWorker{
		mailer:  mailer,
		limiter: limiter,
	}
}

// Work sends one message. Permanent failures cancel the job, anything else is
// returned so river retries with backoff.
func (w *MailWorker) Work(ctx context.Context, job *river.Job[mail.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("to", job.Args.Message.To))

	if err := w.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("could not wait for mail rate limit: %w", err)
	}

	if err := w.mailer.Send(ctx, job.Args.Message); err != nil {
		if errors.Is(err, mail.ErrPermanent) {
			logger.Warn(ctx, "mail permanently rejected", zap.Error(err))
			metrics.MailJobs.WithLabelValues("cancelled").Inc()

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in sending mail", zap.Error(err))
		metrics.MailJobs.WithLabelValues("retry").Inc()

		return fmt.Errorf("could not send mail: %w", err)
	}

	metrics.MailJobs.WithLabelValues("sent").Inc()
	logger.Info(ctx, "mail sent", zap.String("subject", job.Args.Message.Subject))

	return nil
}
