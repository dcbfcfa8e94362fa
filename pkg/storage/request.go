package storage

import (
	"context"
	"landregistry/pkg/domain"
)

// RequestFilter narrows request listings. Zero-valued fields are ignored.
type RequestFilter struct {
	// Search matches request number or description.
	Search            string
	Status            domain.RequestStatus
	Type              domain.RequestType
	Priority          domain.Priority
	RequesterID       *domain.UserID
	AssignedOfficerID *domain.UserID
	ParcelID          *domain.ParcelID
	// ByPriority orders by priority (URGENT first) and then submission date
	// ascending, overriding the sort of the page request.
	ByPriority bool
}

type RequestStorage interface {
	// CreateRequest inserts r. A duplicate request number returns ErrUniqueViolation.
	CreateRequest(ctx context.Context, r domain.Request) (*domain.Request, error)
	UpdateRequest(ctx context.Context, r domain.Request) (*domain.Request, error)
	DeleteRequest(ctx context.Context, id domain.RequestID) (bool, error)
	RequestByID(ctx context.Context, id domain.RequestID) (*domain.Request, error)
	// LockRequest fetches the request and holds a row lock on it until the
	// surrounding transaction ends.
	LockRequest(ctx context.Context, id domain.RequestID) (*domain.Request, error)
	ListRequests(ctx context.Context, filter RequestFilter, page domain.PageRequest) ([]domain.Request, int64, error)
	// NextRequestSequence returns the next value of the request number sequence.
	NextRequestSequence(ctx context.Context) (int64, error)
	RequestStats(ctx context.Context) (domain.RequestStats, error)
}
