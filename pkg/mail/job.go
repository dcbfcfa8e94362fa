package mail

import "github.com/riverqueue/river"

// JobArgs is the queue payload of a message waiting to be delivered.
type JobArgs struct {
	Message Message `json:"message"`
}

func (JobArgs) Kind() string { return "SendMail" }

// InsertOpts routes mail jobs to their own queue so bursts of notifications
// do not starve the periodic jobs.
func (JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{Queue: Queue, MaxAttempts: 10}
}

// Queue is the name of the river queue carrying mail jobs.
const Queue = "mail"
