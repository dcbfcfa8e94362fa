package registry

import (
	"landregistry/pkg/storage"
	"time"
)

// NewWithClock returns a Registry whose notion of the current time is now.
func NewWithClock(st storage.Storage, now func() time.Time) Registry {
	return &registry{storage: st, now: now}
}
