package worker

import (
	"context"
	"fmt"
	"landregistry/pkg/logger"
	"landregistry/pkg/metrics"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// DocumentArchiver is the part of the storage the expiry sweep needs.
type DocumentArchiver interface {
	ArchiveExpiredDocuments(ctx context.Context, now time.Time) (int64, error)
}

// ExpirySweepArgs schedules one pass of the document expiry sweep.
type ExpirySweepArgs struct{}

func (ExpirySweepArgs) Kind() string { return "DocumentExpirySweep" }

// InsertOpts keeps at most one sweep waiting at a time.
func (ExpirySweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// ExpiryWorker archives ACTIVE documents whose expiry date has passed.
type ExpiryWorker struct {
	river.WorkerDefaults[ExpirySweepArgs]

	documents DocumentArchiver
	now       func() time.Time
}

func NewExpiryWorker(documents DocumentArchiver) *ExpiryWorker {
	return &ExpiryWorker{
		documents: documents,
		now:       time.Now,
	}
}

func (w *ExpiryWorker) Work(ctx context.Context, job *river.Job[ExpirySweepArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	archived, err := w.documents.ArchiveExpiredDocuments(ctx, w.now().UTC())
	if err != nil {
		logger.Error(ctx, "error in archiving expired documents", zap.Error(err))

		return fmt.Errorf("could not archive expired documents: %w", err)
	}

	metrics.DocumentsArchived.Add(float64(archived))
	if archived > 0 {
		logger.Info(ctx, "expired documents archived", zap.Int64("count", archived))
	}

	return nil
}
