package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// MaxAreaSqm is the largest area the registry stores.
	MaxAreaSqm = decimal.RequireFromString("999999999999.99") //nolint: gochecknoglobals
	// MaxMarketValue is the largest market value the registry stores.
	MaxMarketValue = decimal.RequireFromString("99999999999999.99") //nolint: gochecknoglobals
)

// ParcelID uniquely identifies a land parcel.
type ParcelID uuid.UUID

// String returns the canonical textual form of the id.
func (id ParcelID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the id is unset.
func (id ParcelID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// LandUse is the zoning category of a parcel.
type LandUse string

const (
	LandUseResidential  LandUse = "RESIDENTIAL"
	LandUseCommercial   LandUse = "COMMERCIAL"
	LandUseIndustrial   LandUse = "INDUSTRIAL"
	LandUseAgricultural LandUse = "AGRICULTURAL"
	LandUseRecreational LandUse = "RECREATIONAL"
	LandUseMixedUse     LandUse = "MIXED_USE"
	LandUseGovernment   LandUse = "GOVERNMENT"
)

// Valid reports whether u is a known land use.
func (u LandUse) Valid() bool {
	switch u {
	case LandUseResidential, LandUseCommercial, LandUseIndustrial, LandUseAgricultural,
		LandUseRecreational, LandUseMixedUse, LandUseGovernment:
		return true
	}

	return false
}

// ParcelStatus is the occupancy state of a parcel.
type ParcelStatus string

const (
	ParcelStatusAvailable     ParcelStatus = "AVAILABLE"
	ParcelStatusOccupied      ParcelStatus = "OCCUPIED"
	ParcelStatusReserved      ParcelStatus = "RESERVED"
	ParcelStatusDisputed      ParcelStatus = "DISPUTED"
	ParcelStatusUnderTransfer ParcelStatus = "UNDER_TRANSFER"
)

// Valid reports whether s is a known parcel status.
func (s ParcelStatus) Valid() bool {
	switch s {
	case ParcelStatusAvailable, ParcelStatusOccupied, ParcelStatusReserved,
		ParcelStatusDisputed, ParcelStatusUnderTransfer:
		return true
	}

	return false
}

// Parcel is a unit of land record.
type Parcel struct {
	ID           ParcelID        `json:"id"`
	ParcelNumber string          `json:"parcelNumber"`
	Location     string          `json:"location"`
	District     string          `json:"district"`
	Sector       string          `json:"sector"`
	Cell         string          `json:"cell"`
	AreaSqm      decimal.Decimal `json:"areaSqm"`
	LandUse      LandUse         `json:"landUse"`
	Status       ParcelStatus    `json:"status"`
	Description  string          `json:"description,omitempty"`
	Coordinates  string          `json:"coordinates,omitempty"`
	// MarketValue is optional; nil when the parcel has not been valued.
	MarketValue *decimal.Decimal `json:"marketValue,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
