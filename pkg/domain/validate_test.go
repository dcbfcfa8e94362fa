package domain_test

import (
	"landregistry/pkg/domain"
	"landregistry/pkg/serrors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validUser() domain.User {
	return domain.User{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john.doe@example.com",
		PhoneNumber: "0781234567",
		NationalID:  "1234567890123456",
		Role:        domain.RoleCitizen,
		Status:      domain.UserStatusActive,
	}
}

func TestUser_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(u *domain.User)
		field  string
	}{
		{name: "valid", mutate: func(*domain.User) {}},
		{name: "missing first name", mutate: func(u *domain.User) { u.FirstName = " " }, field: "firstName"},
		{name: "bad email", mutate: func(u *domain.User) { u.Email = "John <john@x.io>" }, field: "email"},
		{name: "short national id", mutate: func(u *domain.User) { u.NationalID = "123" }, field: "nationalId"},
		{name: "letters in phone", mutate: func(u *domain.User) { u.PhoneNumber = "07812abc" }, field: "phoneNumber"},
		{name: "unknown role", mutate: func(u *domain.User) { u.Role = "ROOT" }, field: "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u := validUser()
			tt.mutate(&u)
			err := u.Validate()
			if tt.field == "" {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, serrors.ErrBadRequest)
			require.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestParcel_Validate(t *testing.T) {
	t.Parallel()

	p := domain.Parcel{
		ParcelNumber: "LP001",
		Location:     "Kimisagara",
		District:     "Nyarugenge",
		Sector:       "Nyarugenge",
		Cell:         "Kimisagara",
		AreaSqm:      decimal.NewFromInt(500),
		LandUse:      domain.LandUseResidential,
		Status:       domain.ParcelStatusAvailable,
	}
	require.NoError(t, p.Validate())

	zero := p
	zero.AreaSqm = decimal.Zero
	require.ErrorIs(t, zero.Validate(), serrors.ErrBadRequest)

	long := p
	long.ParcelNumber = strings.Repeat("9", 51)
	require.ErrorIs(t, long.Validate(), serrors.ErrBadRequest)

	noCell := p
	noCell.Cell = ""
	require.ErrorContains(t, noCell.Validate(), "cell")

	for _, tt := range []struct {
		name  string
		area  string
		value string
	}{
		{name: "area below a cent", area: "0.001"},
		{name: "area with three decimals", area: "12.345"},
		{name: "area too large", area: "1000000000000"},
		{name: "value with three decimals", area: "500", value: "10.001"},
		{name: "value too large", area: "500", value: "100000000000000"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			bad := p
			bad.AreaSqm = decimal.RequireFromString(tt.area)
			if tt.value != "" {
				v := decimal.RequireFromString(tt.value)
				bad.MarketValue = &v
			}
			require.ErrorIs(t, bad.Validate(), serrors.ErrBadRequest)
		})
	}

	largest := p
	largest.AreaSqm = domain.MaxAreaSqm
	largest.MarketValue = &domain.MaxMarketValue
	require.NoError(t, largest.Validate())
}

func TestOwnership_Validate(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	o := domain.Ownership{
		UserID:              domain.UserID(uuid.New()),
		ParcelID:            domain.ParcelID(uuid.New()),
		OwnershipPercentage: decimal.NewFromInt(100),
		OwnershipType:       domain.OwnershipTypeFull,
		AcquisitionDate:     day,
		AcquisitionMethod:   domain.AcquisitionPurchase,
		Status:              domain.OwnershipStatusActive,
		StartDate:           day,
	}
	require.NoError(t, o.Validate())

	for _, pct := range []string{"0", "100.01", "-5", "33.333"} {
		bad := o
		bad.OwnershipPercentage = decimal.RequireFromString(pct)
		require.ErrorIs(t, bad.Validate(), serrors.ErrBadRequest, pct)
	}

	ok := o
	ok.OwnershipPercentage = decimal.RequireFromString("0.01")
	require.NoError(t, ok.Validate())

	backwards := o
	backwards.EndDate = day.AddDate(0, 0, -1)
	require.ErrorContains(t, backwards.Validate(), "endDate")
}

func TestRequestAndDocument_Validate(t *testing.T) {
	t.Parallel()

	r := domain.Request{
		RequesterID: domain.UserID(uuid.New()),
		RequestType: domain.RequestTypeBoundarySurvey,
		Description: "survey the boundary",
		Priority:    domain.PriorityNormal,
		Status:      domain.RequestStatusPending,
	}
	require.NoError(t, r.Validate())
	r.Description = strings.Repeat("x", domain.MaxRequestDescription+1)
	require.ErrorIs(t, r.Validate(), serrors.ErrBadRequest)

	d := domain.Document{
		DocumentName: "deed.pdf",
		DocumentType: domain.DocumentTypeTitleDeed,
		Status:       domain.DocumentStatusPendingVerification,
	}
	require.NoError(t, d.Validate())
	d.DocumentType = "SELFIE"
	require.ErrorContains(t, d.Validate(), "documentType")
}
