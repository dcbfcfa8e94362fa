package registry

import (
	"context"
	"fmt"
	"landregistry/pkg/domain"
	"landregistry/pkg/logger"
	"landregistry/pkg/metrics"
	"landregistry/pkg/serrors"
	"landregistry/pkg/storage"
	"strings"
	"time"

	"go.uber.org/zap"
)

var documentConstraints = map[string]string{ //nolint: gochecknoglobals
	"documents_land_parcel_id_fkey": "land parcel does not exist",
	"documents_request_id_fkey":     "request does not exist",
	"documents_uploaded_by_fkey":    "uploader does not exist",
}

// CreateDocument stores the metadata of an uploaded file on behalf of the
// actor. A document reusing the name of an existing one on the same parcel
// becomes its next version.
func (r *registry) CreateDocument(ctx context.Context, actor domain.Actor, d domain.Document) (*domain.Document, error) {
	d.ID = domain.DocumentID{}
	d.DocumentName = strings.TrimSpace(d.DocumentName)
	d.UploadedBy = actor.UserID
	d.IsVerified = false
	d.VerifiedBy = nil
	d.VerificationDate = time.Time{}
	if d.Status == "" || !actor.IsStaff() {
		d.Status = domain.DocumentStatusPendingVerification
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if d.ParcelID != nil {
		if err := parcelExists(ctx, r.storage, *d.ParcelID); err != nil {
			return nil, err
		}
	}
	if d.RequestID != nil {
		req, err := r.storage.RequestByID(ctx, *d.RequestID)
		if err != nil {
			return nil, fmt.Errorf("could not get request: %w", err)
		}
		if req == nil {
			return nil, serrors.Invalid("requestId", "does not exist")
		}
		if !actor.IsStaff() && !actor.Is(req.RequesterID) {
			return nil, serrors.With(serrors.ErrForbidden, "you can only attach documents to your own requests")
		}
	}

	var created *domain.Document
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if d.ParcelID != nil {
			if err := lockParcel(ctx, tx, *d.ParcelID); err != nil {
				return err
			}
		}

		latest, err := tx.MaxDocumentVersion(ctx, d.DocumentName, d.ParcelID)
		if err != nil {
			return fmt.Errorf("could not get document version: %w", err)
		}
		d.Version = latest + 1

		created, err = tx.CreateDocument(ctx, d)
		if err != nil {
			return storage.Translate(fmt.Errorf("could not create document: %w", err), documentConstraints)
		}

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	logger.Info(ctx, "document uploaded",
		zap.Stringer("documentID", created.ID),
		zap.String("name", created.DocumentName),
		zap.Int("version", created.Version))

	return created, nil
}

// Document returns the document id. Citizens may only read their own uploads.
func (r *registry) Document(ctx context.Context, actor domain.Actor, id domain.DocumentID) (*domain.Document, error) {
	d, err := r.document(ctx, r.storage, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff() && !actor.Is(d.UploadedBy) {
		return nil, serrors.With(serrors.ErrForbidden, "you can only view your own documents")
	}

	return d, nil
}

func (r *registry) document(ctx context.Context, st storage.AllStorage, id domain.DocumentID) (*domain.Document, error) {
	d, err := st.DocumentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get document: %w", err)
	}
	if d == nil {
		return nil, notFound("document")
	}

	return d, nil
}

// UpdateDocument edits document metadata. Uploaders may edit until the
// document is verified; staff may always edit.
func (r *registry) UpdateDocument(ctx context.Context,
	actor domain.Actor,
	id domain.DocumentID,
	patch DocumentPatch) (*domain.Document, error) {
	return r.modifyDocument(ctx, id, func(d *domain.Document) error {
		if !actor.IsStaff() {
			if !actor.Is(d.UploadedBy) {
				return serrors.With(serrors.ErrForbidden, "you can only modify your own documents")
			}
			if d.IsVerified {
				return serrors.With(serrors.ErrConflict, "verified documents can only be changed by land officers")
			}
		}

		if patch.DocumentName != nil {
			d.DocumentName = strings.TrimSpace(*patch.DocumentName)
		}
		if patch.Description != nil {
			d.Description = *patch.Description
		}
		if patch.FilePath != nil {
			d.FilePath = *patch.FilePath
		}
		if patch.FileSize != nil {
			d.FileSize = *patch.FileSize
		}
		if patch.MimeType != nil {
			d.MimeType = *patch.MimeType
		}
		if patch.ExpiryDate != nil {
			d.ExpiryDate = *patch.ExpiryDate
		}

		return d.Validate()
	})
}

func (r *registry) modifyDocument(ctx context.Context,
	id domain.DocumentID,
	change func(d *domain.Document) error) (*domain.Document, error) {
	d, err := r.document(ctx, r.storage, id)
	if err != nil {
		return nil, err
	}
	if err := change(d); err != nil {
		return nil, err
	}

	updated, err := r.storage.UpdateDocument(ctx, *d)
	if err != nil {
		return nil, storage.Translate(fmt.Errorf("could not update document: %w", err), documentConstraints)
	}
	if updated == nil {
		return nil, notFound("document")
	}

	return updated, nil
}

// DeleteDocument removes a document. Administrators may delete any document,
// uploaders only their own unverified ones.
func (r *registry) DeleteDocument(ctx context.Context, actor domain.Actor, id domain.DocumentID) error {
	if !actor.IsAdmin() {
		d, err := r.document(ctx, r.storage, id)
		if err != nil {
			return err
		}
		if !actor.Is(d.UploadedBy) {
			return serrors.With(serrors.ErrForbidden, "you can only delete your own documents")
		}
		if d.IsVerified {
			return serrors.With(serrors.ErrConflict, "verified documents can only be deleted by administrators")
		}
	}

	deleted, err := r.storage.DeleteDocument(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete document: %w", err)
	}
	if !deleted {
		return notFound("document")
	}

	return nil
}

// ListDocuments lists documents. Citizens only ever see their own uploads.
func (r *registry) ListDocuments(ctx context.Context,
	actor domain.Actor,
	filter storage.DocumentFilter,
	page domain.PageRequest) (*domain.Page[domain.Document], error) {
	if !actor.IsStaff() {
		filter.UploadedBy = &actor.UserID
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, serrors.Invalid("documentType", "is not a known document type")
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, serrors.Invalid("status", "is not a known document status")
	}

	page = page.Normalize()
	items, total, err := r.storage.ListDocuments(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("could not list documents: %w", err)
	}

	return newPage(items, total, page), nil
}

// VerifyDocument marks the document verified by the actor and activates it.
func (r *registry) VerifyDocument(ctx context.Context, actor domain.Actor, id domain.DocumentID) (*domain.Document, error) {
	if err := requireStaff(actor, "verify documents"); err != nil {
		return nil, err
	}
	if _, err := activeStaff(ctx, r.storage, actor.UserID, "verifierId"); err != nil {
		return nil, err
	}

	updated, err := r.modifyDocument(ctx, id, func(d *domain.Document) error {
		if d.Status == domain.DocumentStatusDeleted {
			return serrors.With(serrors.ErrConflict, "deleted documents cannot be verified")
		}
		d.Verify(actor.UserID, r.now())

		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.DocumentsVerified.Inc()
	logger.Info(ctx, "document verified",
		zap.Stringer("documentID", updated.ID),
		zap.Stringer("verifiedBy", actor.UserID))

	return updated, nil
}

func (r *registry) SetDocumentStatus(ctx context.Context,
	actor domain.Actor,
	id domain.DocumentID,
	status domain.DocumentStatus) (*domain.Document, error) {
	if err := requireStaff(actor, "change document status"); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, serrors.Invalid("status", "is not a known document status")
	}

	return r.modifyDocument(ctx, id, func(d *domain.Document) error {
		d.Status = status

		return nil
	})
}

func (r *registry) DocumentStats(ctx context.Context, actor domain.Actor) (*domain.DocumentStats, error) {
	if err := requireStaff(actor, "view document statistics"); err != nil {
		return nil, err
	}

	stats, err := r.storage.DocumentStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get document stats: %w", err)
	}

	return &stats, nil
}
