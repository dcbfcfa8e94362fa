package registry

import (
	"context"
	"fmt"
	"landregistry/pkg/domain"
	"landregistry/pkg/logger"
	"landregistry/pkg/mail"
	"landregistry/pkg/metrics"
	"landregistry/pkg/serrors"
	"landregistry/pkg/storage"
	"strings"
	"time"

	"go.uber.org/zap"
)

var requestConstraints = map[string]string{ //nolint: gochecknoglobals
	"requests_request_number_key":       "request number already exists",
	"requests_land_parcel_id_fkey":      "land parcel does not exist",
	"requests_requester_id_fkey":        "requester does not exist",
	"requests_assigned_officer_id_fkey": "assigned officer does not exist",
}

// CreateRequest files a workflow request. Citizens always file for
// themselves. Staff may file on behalf of another user and pre-assign it.
func (r *registry) CreateRequest(ctx context.Context, actor domain.Actor, req domain.Request) (*domain.Request, error) {
	now := r.now()

	req.ID = domain.RequestID{}
	req.Description = strings.TrimSpace(req.Description)
	req.Status = domain.RequestStatusPending
	req.SubmissionDate = now
	req.ReviewDate = time.Time{}
	req.CompletionDate = time.Time{}
	req.RejectionReason = ""
	if req.Priority == "" {
		req.Priority = domain.PriorityNormal
	}
	if !actor.IsStaff() || req.RequesterID.IsZero() {
		req.RequesterID = actor.UserID
	}
	if !actor.IsStaff() {
		req.RequestNumber = ""
		req.AssignedOfficerID = nil
		req.OfficerNotes = ""
	}
	req.RequestNumber = strings.TrimSpace(req.RequestNumber)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if !actor.Is(req.RequesterID) {
		if err := activeUser(ctx, r.storage, req.RequesterID, "requesterId"); err != nil {
			return nil, err
		}
	}
	if req.ParcelID != nil {
		if err := parcelExists(ctx, r.storage, *req.ParcelID); err != nil {
			return nil, err
		}
	}
	if req.AssignedOfficerID != nil {
		if _, err := activeStaff(ctx, r.storage, *req.AssignedOfficerID, "assignedOfficerId"); err != nil {
			return nil, err
		}
	}

	if req.RequestNumber == "" {
		seq, err := r.storage.NextRequestSequence(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not allocate request number: %w", err)
		}
		req.RequestNumber = domain.FormatRequestNumber(now.Year(), seq)
	}

	created, err := r.storage.CreateRequest(ctx, req)
	if err != nil {
		return nil, storage.Translate(fmt.Errorf("could not create request: %w", err), requestConstraints)
	}

	metrics.RequestsCreated.WithLabelValues(string(created.RequestType)).Inc()
	logger.Info(ctx, "request filed",
		zap.Stringer("requestID", created.ID),
		zap.String("requestNumber", created.RequestNumber),
		zap.String("type", string(created.RequestType)))

	return created, nil
}

// Request returns the request id. Citizens may only read their own.
func (r *registry) Request(ctx context.Context, actor domain.Actor, id domain.RequestID) (*domain.Request, error) {
	req, err := r.request(ctx, r.storage, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff() && !actor.Is(req.RequesterID) {
		return nil, serrors.With(serrors.ErrForbidden, "you can only view your own requests")
	}

	return req, nil
}

func (r *registry) request(ctx context.Context, st storage.AllStorage, id domain.RequestID) (*domain.Request, error) {
	req, err := st.RequestByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get request: %w", err)
	}
	if req == nil {
		return nil, notFound("request")
	}

	return req, nil
}

func closed(req *domain.Request) error {
	return serrors.With(serrors.ErrConflict, "request %s is already %s",
		req.RequestNumber, strings.ToLower(string(req.Status)))
}

// UpdateRequest edits an open request. Requesters may change the description
// and priority while the request is pending; staff may also write notes.
func (r *registry) UpdateRequest(ctx context.Context,
	actor domain.Actor,
	id domain.RequestID,
	patch RequestPatch) (*domain.Request, error) {
	return r.modifyRequest(ctx, id, func(_ storage.AllStorage, req *domain.Request) error {
		if req.Status.Terminal() {
			return closed(req)
		}
		if !actor.IsStaff() {
			if !actor.Is(req.RequesterID) {
				return serrors.With(serrors.ErrForbidden, "you can only modify your own requests")
			}
			if req.Status != domain.RequestStatusPending {
				return serrors.With(serrors.ErrConflict, "request can no longer be edited once review has started")
			}
			if patch.OfficerNotes != nil {
				return serrors.With(serrors.ErrForbidden, "only land officers and administrators can write notes")
			}
		}

		if patch.Description != nil {
			req.Description = strings.TrimSpace(*patch.Description)
		}
		if patch.Priority != nil {
			req.Priority = *patch.Priority
		}
		if patch.OfficerNotes != nil {
			req.OfficerNotes = *patch.OfficerNotes
		}

		return req.Validate()
	})
}

// modifyRequest locks id, lets change mutate it and stores the result, all
// in one transaction. Concurrent changes to the same request are serialised
// by the row lock, so a decision always sees the committed status.
func (r *registry) modifyRequest(ctx context.Context,
	id domain.RequestID,
	change func(tx storage.AllStorage, req *domain.Request) error) (*domain.Request, error) {
	var updated *domain.Request
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		req, err := tx.LockRequest(ctx, id)
		if err != nil {
			return fmt.Errorf("could not lock request: %w", err)
		}
		if req == nil {
			return notFound("request")
		}
		if err := change(tx, req); err != nil {
			return err
		}

		updated, err = tx.UpdateRequest(ctx, *req)
		if err != nil {
			return storage.Translate(fmt.Errorf("could not update request: %w", err), requestConstraints)
		}
		if updated == nil {
			return notFound("request")
		}

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return updated, nil
}

// transition moves the request to status. Decisions are mailed to the
// requester from within the same transaction.
func (r *registry) transition(ctx context.Context,
	id domain.RequestID,
	status domain.RequestStatus,
	change func(req *domain.Request) error) (*domain.Request, error) {
	updated, err := r.modifyRequest(ctx, id, func(tx storage.AllStorage, req *domain.Request) error {
		if change != nil {
			if err := change(req); err != nil {
				return err
			}
		}
		if !req.TransitionTo(status, r.now()) {
			return closed(req)
		}

		if status != domain.RequestStatusApproved && status != domain.RequestStatusRejected {
			return nil
		}

		requester, err := tx.UserByID(ctx, req.RequesterID)
		if err != nil {
			return fmt.Errorf("could not get requester: %w", err)
		}
		if requester == nil {
			return nil
		}

		return mail.Enqueue(ctx, tx, mail.RequestDecision(requester.Email, requester.FullName(), *req))
	})
	if err != nil {
		return nil, err
	}

	if status.Terminal() {
		metrics.RequestDecisions.WithLabelValues(string(status)).Inc()
	}
	logger.Info(ctx, "request status changed",
		zap.Stringer("requestID", updated.ID),
		zap.String("status", string(updated.Status)))

	return updated, nil
}

func (r *registry) ApproveRequest(ctx context.Context,
	actor domain.Actor,
	id domain.RequestID,
	notes string) (*domain.Request, error) {
	if err := requireStaff(actor, "approve requests"); err != nil {
		return nil, err
	}

	return r.transition(ctx, id, domain.RequestStatusApproved, func(req *domain.Request) error {
		if notes = strings.TrimSpace(notes); notes != "" {
			req.OfficerNotes = notes
		}

		return nil
	})
}

func (r *registry) RejectRequest(ctx context.Context,
	actor domain.Actor,
	id domain.RequestID,
	reason string) (*domain.Request, error) {
	if err := requireStaff(actor, "reject requests"); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, serrors.Invalid("rejectionReason", "is required")
	}

	return r.transition(ctx, id, domain.RequestStatusRejected, func(req *domain.Request) error {
		req.RejectionReason = reason

		return nil
	})
}

// CancelRequest withdraws a request. Requesters may cancel their own.
func (r *registry) CancelRequest(ctx context.Context, actor domain.Actor, id domain.RequestID) (*domain.Request, error) {
	return r.transition(ctx, id, domain.RequestStatusCancelled, func(req *domain.Request) error {
		if !actor.IsStaff() && !actor.Is(req.RequesterID) {
			return serrors.With(serrors.ErrForbidden, "you can only cancel your own requests")
		}

		return nil
	})
}

func (r *registry) SetRequestStatus(ctx context.Context,
	actor domain.Actor,
	id domain.RequestID,
	status domain.RequestStatus) (*domain.Request, error) {
	if err := requireStaff(actor, "change request status"); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, serrors.Invalid("status", "is not a known request status")
	}
	if status == domain.RequestStatusRejected {
		return nil, serrors.With(serrors.ErrBadRequest, "use the reject operation to give a rejection reason")
	}

	return r.transition(ctx, id, status, nil)
}

// AssignRequest assigns the request to officer, or unassigns it when officer is nil.
func (r *registry) AssignRequest(ctx context.Context,
	actor domain.Actor,
	id domain.RequestID,
	officer *domain.UserID) (*domain.Request, error) {
	if err := requireStaff(actor, "assign requests"); err != nil {
		return nil, err
	}

	return r.modifyRequest(ctx, id, func(tx storage.AllStorage, req *domain.Request) error {
		if req.Status.Terminal() {
			return closed(req)
		}
		if officer != nil {
			if _, err := activeStaff(ctx, tx, *officer, "officerId"); err != nil {
				return err
			}
		}
		req.AssignedOfficerID = officer

		return nil
	})
}

func (r *registry) SetRequestPriority(ctx context.Context,
	actor domain.Actor,
	id domain.RequestID,
	priority domain.Priority) (*domain.Request, error) {
	if err := requireStaff(actor, "change request priority"); err != nil {
		return nil, err
	}
	if !priority.Valid() {
		return nil, serrors.Invalid("priority", "is not a known priority")
	}

	return r.modifyRequest(ctx, id, func(_ storage.AllStorage, req *domain.Request) error {
		if req.Status.Terminal() {
			return closed(req)
		}
		req.Priority = priority

		return nil
	})
}

// AddRequestNotes replaces the officer notes. Closed requests may still be annotated.
func (r *registry) AddRequestNotes(ctx context.Context,
	actor domain.Actor,
	id domain.RequestID,
	notes string) (*domain.Request, error) {
	if err := requireStaff(actor, "write request notes"); err != nil {
		return nil, err
	}
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return nil, serrors.Invalid("notes", "is required")
	}

	return r.modifyRequest(ctx, id, func(_ storage.AllStorage, req *domain.Request) error {
		req.OfficerNotes = notes

		return nil
	})
}

func (r *registry) DeleteRequest(ctx context.Context, actor domain.Actor, id domain.RequestID) error {
	if err := requireAdmin(actor, "delete requests"); err != nil {
		return err
	}

	deleted, err := r.storage.DeleteRequest(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete request: %w", err)
	}
	if !deleted {
		return notFound("request")
	}

	return nil
}

// ListRequests lists requests. Citizens only ever see their own.
func (r *registry) ListRequests(ctx context.Context,
	actor domain.Actor,
	filter storage.RequestFilter,
	page domain.PageRequest) (*domain.Page[domain.Request], error) {
	if !actor.IsStaff() {
		filter.RequesterID = &actor.UserID
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, serrors.Invalid("status", "is not a known request status")
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, serrors.Invalid("requestType", "is not a known request type")
	}
	if filter.Priority != "" && !filter.Priority.Valid() {
		return nil, serrors.Invalid("priority", "is not a known priority")
	}

	page = page.Normalize()
	items, total, err := r.storage.ListRequests(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("could not list requests: %w", err)
	}

	return newPage(items, total, page), nil
}

func (r *registry) RequestStats(ctx context.Context, actor domain.Actor) (*domain.RequestStats, error) {
	if err := requireStaff(actor, "view request statistics"); err != nil {
		return nil, err
	}

	stats, err := r.storage.RequestStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get request stats: %w", err)
	}

	return &stats, nil
}
