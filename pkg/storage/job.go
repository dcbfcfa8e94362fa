package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend; when
// called on a TxStorage the job only becomes visible once the transaction
// commits, so a notification is never sent for a change that was rolled back.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It reports false when
	// the queue skipped the insert as a duplicate of a unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
