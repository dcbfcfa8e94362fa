package postgres_test

import (
	"context"
	"fmt"
	"landregistry/pkg/domain"
	"landregistry/pkg/storage/postgres"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixtureSeq atomic.Int64 //nolint: gochecknoglobals

func createUser(t *testing.T, pg *postgres.PgSQL, role domain.Role) *domain.User {
	t.Helper()

	n := fixtureSeq.Add(1)
	u, err := pg.CreateUser(context.Background(), domain.User{
		FirstName:    fmt.Sprintf("First%d", n),
		LastName:     "Tester",
		Email:        fmt.Sprintf("user%d@example.com", n),
		PhoneNumber:  fmt.Sprintf("078%07d", n),
		NationalID:   fmt.Sprintf("%016d", n),
		Role:         role,
		Status:       domain.UserStatusActive,
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	return u
}

func createParcel(t *testing.T, pg *postgres.PgSQL, district string) *domain.Parcel {
	t.Helper()

	n := fixtureSeq.Add(1)
	p, err := pg.CreateParcel(context.Background(), domain.Parcel{
		ParcelNumber: fmt.Sprintf("LP%05d", n),
		Location:     "Kimisagara",
		District:     district,
		Sector:       "Nyarugenge",
		Cell:         "Kimisagara",
		AreaSqm:      decimal.NewFromInt(500),
		LandUse:      domain.LandUseResidential,
		Status:       domain.ParcelStatusAvailable,
	})
	require.NoError(t, err)

	return p
}

func createOwnership(t *testing.T,
	pg *postgres.PgSQL,
	userID domain.UserID,
	parcelID domain.ParcelID,
	pct string) *domain.Ownership {
	t.Helper()

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	o, err := pg.CreateOwnership(context.Background(), domain.Ownership{
		UserID:              userID,
		ParcelID:            parcelID,
		OwnershipPercentage: decimal.RequireFromString(pct),
		OwnershipType:       domain.OwnershipTypeJoint,
		AcquisitionDate:     day,
		AcquisitionMethod:   domain.AcquisitionPurchase,
		Status:              domain.OwnershipStatusActive,
		StartDate:           day,
	})
	require.NoError(t, err)

	return o
}
