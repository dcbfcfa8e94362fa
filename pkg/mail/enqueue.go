package mail

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
)

// JobInserter is satisfied by the storage handles able to enqueue jobs.
type JobInserter interface {
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

// Enqueue schedules msg for delivery by the mail worker. When jobs is bound
// to a transaction the message is only sent if that transaction commits.
func Enqueue(ctx context.Context, jobs JobInserter, msg Message) error {
	if _, err := jobs.AddJob(ctx, JobArgs{Message: msg}, nil); err != nil {
		return fmt.Errorf("could not enqueue mail to %s: %w", msg.To, err)
	}

	return nil
}
