package storage

import (
	"context"
	"landregistry/pkg/domain"
	"time"
)

// DocumentFilter narrows document listings. Zero-valued fields are ignored.
type DocumentFilter struct {
	// Search matches document name or description.
	Search     string
	Type       domain.DocumentType
	Status     domain.DocumentStatus
	Verified   *bool
	ParcelID   *domain.ParcelID
	RequestID  *domain.RequestID
	UploadedBy *domain.UserID
}

type DocumentStorage interface {
	CreateDocument(ctx context.Context, d domain.Document) (*domain.Document, error)
	UpdateDocument(ctx context.Context, d domain.Document) (*domain.Document, error)
	DeleteDocument(ctx context.Context, id domain.DocumentID) (bool, error)
	DocumentByID(ctx context.Context, id domain.DocumentID) (*domain.Document, error)
	ListDocuments(ctx context.Context,
		filter DocumentFilter,
		page domain.PageRequest) ([]domain.Document, int64, error)
	// MaxDocumentVersion returns the highest version stored for a document name
	// on a parcel (or on no parcel when parcelID is nil), 0 when none exists.
	MaxDocumentVersion(ctx context.Context, name string, parcelID *domain.ParcelID) (int, error)
	// ArchiveExpiredDocuments moves ACTIVE documents whose expiry date is
	// before now to ARCHIVED and returns how many were changed.
	ArchiveExpiredDocuments(ctx context.Context, now time.Time) (int64, error)
	DocumentStats(ctx context.Context) (domain.DocumentStats, error)
}
