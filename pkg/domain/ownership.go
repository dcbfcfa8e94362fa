package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OwnershipID uniquely identifies an ownership record.
type OwnershipID uuid.UUID

// String returns the canonical textual form of the id.
func (id OwnershipID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the id is unset.
func (id OwnershipID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

type OwnershipType string

const (
	OwnershipTypeFull      OwnershipType = "FULL_OWNERSHIP"
	OwnershipTypeJoint     OwnershipType = "JOINT_OWNERSHIP"
	OwnershipTypeLeasehold OwnershipType = "LEASEHOLD"
	OwnershipTypeCustomary OwnershipType = "CUSTOMARY"
)

// Valid reports whether t is a known ownership type.
func (t OwnershipType) Valid() bool {
	switch t {
	case OwnershipTypeFull, OwnershipTypeJoint, OwnershipTypeLeasehold, OwnershipTypeCustomary:
		return true
	}

	return false
}

type AcquisitionMethod string

const (
	AcquisitionPurchase             AcquisitionMethod = "PURCHASE"
	AcquisitionInheritance          AcquisitionMethod = "INHERITANCE"
	AcquisitionGift                 AcquisitionMethod = "GIFT"
	AcquisitionGovernmentAllocation AcquisitionMethod = "GOVERNMENT_ALLOCATION"
	AcquisitionCourtOrder           AcquisitionMethod = "COURT_ORDER"
	AcquisitionExchange             AcquisitionMethod = "EXCHANGE"
	AcquisitionOther                AcquisitionMethod = "OTHER"
)

// Valid reports whether m is a known acquisition method.
func (m AcquisitionMethod) Valid() bool {
	switch m {
	case AcquisitionPurchase, AcquisitionInheritance, AcquisitionGift, AcquisitionGovernmentAllocation,
		AcquisitionCourtOrder, AcquisitionExchange, AcquisitionOther:
		return true
	}

	return false
}

type OwnershipStatus string

const (
	OwnershipStatusActive      OwnershipStatus = "ACTIVE"
	OwnershipStatusInactive    OwnershipStatus = "INACTIVE"
	OwnershipStatusTransferred OwnershipStatus = "TRANSFERRED"
	OwnershipStatusDisputed    OwnershipStatus = "DISPUTED"
	OwnershipStatusSuspended   OwnershipStatus = "SUSPENDED"
)

// Valid reports whether s is a known ownership status.
func (s OwnershipStatus) Valid() bool {
	switch s {
	case OwnershipStatusActive, OwnershipStatusInactive, OwnershipStatusTransferred,
		OwnershipStatusDisputed, OwnershipStatusSuspended:
		return true
	}

	return false
}

// Ends reports whether moving into s closes the ownership period.
func (s OwnershipStatus) Ends() bool {
	return s == OwnershipStatusTransferred || s == OwnershipStatusInactive
}

var (
	// MinOwnershipPercentage is the smallest share that can be recorded.
	MinOwnershipPercentage = decimal.RequireFromString("0.01") //nolint: gochecknoglobals
	// MaxOwnershipPercentage is both the largest single share and the cap on
	// the sum of active shares on a parcel.
	MaxOwnershipPercentage = decimal.NewFromInt(100) //nolint: gochecknoglobals
)

// Ownership links a user to a parcel with a share.
type Ownership struct {
	ID                  OwnershipID       `json:"id"`
	UserID              UserID            `json:"userId"`
	ParcelID            ParcelID          `json:"landParcelId"`
	OwnershipPercentage decimal.Decimal   `json:"ownershipPercentage"`
	OwnershipType       OwnershipType     `json:"ownershipType"`
	AcquisitionDate     time.Time         `json:"acquisitionDate"`
	AcquisitionMethod   AcquisitionMethod `json:"acquisitionMethod"`
	TitleDeedNumber     string            `json:"titleDeedNumber,omitempty"`
	Status              OwnershipStatus   `json:"status"`
	StartDate           time.Time         `json:"startDate"`
	// EndDate is zero while the ownership is still running.
	EndDate time.Time `json:"endDate,omitzero"`
	Notes   string    `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
