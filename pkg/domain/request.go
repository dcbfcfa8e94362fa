package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RequestID uniquely identifies a workflow request.
type RequestID uuid.UUID

// String returns the canonical textual form of the id.
func (id RequestID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the id is unset.
func (id RequestID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

type RequestType string

const (
	RequestTypeLandRegistration  RequestType = "LAND_REGISTRATION"
	RequestTypeOwnershipTransfer RequestType = "OWNERSHIP_TRANSFER"
	RequestTypeTitleDeedIssuance RequestType = "TITLE_DEED_ISSUANCE"
	RequestTypeLandSubdivision   RequestType = "LAND_SUBDIVISION"
	RequestTypeBoundarySurvey    RequestType = "BOUNDARY_SURVEY"
	RequestTypeLandUseChange     RequestType = "LAND_USE_CHANGE"
	RequestTypeDisputeResolution RequestType = "DISPUTE_RESOLUTION"
)

// Valid reports whether t is a known request type.
func (t RequestType) Valid() bool {
	switch t {
	case RequestTypeLandRegistration, RequestTypeOwnershipTransfer, RequestTypeTitleDeedIssuance,
		RequestTypeLandSubdivision, RequestTypeBoundarySurvey, RequestTypeLandUseChange,
		RequestTypeDisputeResolution:
		return true
	}

	return false
}

type RequestStatus string

const (
	RequestStatusPending     RequestStatus = "PENDING"
	RequestStatusUnderReview RequestStatus = "UNDER_REVIEW"
	RequestStatusOnHold      RequestStatus = "ON_HOLD"
	RequestStatusApproved    RequestStatus = "APPROVED"
	RequestStatusRejected    RequestStatus = "REJECTED"
	RequestStatusCancelled   RequestStatus = "CANCELLED"
)

// Valid reports whether s is a known request status.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusUnderReview, RequestStatusOnHold,
		RequestStatusApproved, RequestStatusRejected, RequestStatusCancelled:
		return true
	}

	return false
}

// Terminal reports whether no further transition is allowed out of s.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected || s == RequestStatusCancelled
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool { return p.Rank() > 0 }

// Rank orders priorities, URGENT being the highest. Unknown values rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityNormal:
		return 2
	case PriorityHigh:
		return 3
	case PriorityUrgent:
		return 4
	}

	return 0
}

// MaxRequestDescription is the longest accepted request description.
const MaxRequestDescription = 1000

// Request is a workflow item filed by a citizen and handled by land officers.
type Request struct {
	ID            RequestID     `json:"id"`
	RequestNumber string        `json:"requestNumber"`
	RequesterID   UserID        `json:"requesterId"`
	ParcelID      *ParcelID     `json:"landParcelId,omitempty"`
	RequestType   RequestType   `json:"requestType"`
	Description   string        `json:"description"`
	Status        RequestStatus `json:"status"`
	Priority      Priority      `json:"priority"`

	SubmissionDate time.Time `json:"submissionDate"`
	ReviewDate     time.Time `json:"reviewDate,omitzero"`
	CompletionDate time.Time `json:"completionDate,omitzero"`

	AssignedOfficerID *UserID `json:"assignedOfficerId,omitempty"`
	OfficerNotes      string  `json:"officerNotes,omitempty"`
	RejectionReason   string  `json:"rejectionReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FormatRequestNumber renders the public number of the seq-th request filed in year.
func FormatRequestNumber(year int, seq int64) string {
	return fmt.Sprintf("REQ-%d-%06d", year, seq)
}

// TransitionTo moves the request into status, stamping review and completion
// dates. It returns false if the request is already in a terminal state.
func (r *Request) TransitionTo(status RequestStatus, now time.Time) bool {
	if r.Status.Terminal() {
		return false
	}

	r.Status = status
	switch status {
	case RequestStatusUnderReview:
		if r.ReviewDate.IsZero() {
			r.ReviewDate = now
		}
	case RequestStatusApproved, RequestStatusRejected:
		r.CompletionDate = now
	}

	return true
}
