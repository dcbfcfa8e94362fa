package postgres_test

import (
	"context"
	"landregistry/pkg/domain"
	"landregistry/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Ownerships(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	alice := createUser(t, pgSQL, domain.RoleCitizen)
	bob := createUser(t, pgSQL, domain.RoleCitizen)
	parcel := createParcel(t, pgSQL, "Gasabo")

	first := createOwnership(t, pgSQL, alice.ID, parcel.ID, "60")
	second := createOwnership(t, pgSQL, bob.ID, parcel.ID, "25.50")

	t.Run("active share", func(t *testing.T) {
		share, err := pgSQL.ActiveOwnershipShare(ctx, parcel.ID, nil)
		require.NoError(t, err)
		require.True(t, decimal.RequireFromString("85.50").Equal(share), share.String())

		share, err = pgSQL.ActiveOwnershipShare(ctx, parcel.ID, &first.ID)
		require.NoError(t, err)
		require.True(t, decimal.RequireFromString("25.50").Equal(share), share.String())

		empty, err := pgSQL.ActiveOwnershipShare(ctx, domain.ParcelID(uuid.New()), nil)
		require.NoError(t, err)
		require.True(t, empty.IsZero())
	})

	t.Run("second active holding of the same user is rejected", func(t *testing.T) {
		o := *first
		o.OwnershipPercentage = decimal.NewFromInt(1)
		_, err := pgSQL.CreateOwnership(ctx, o)
		require.ErrorIs(t, err, storage.ErrUniqueViolation)
		require.Equal(t, "ownerships_active_holder_key", storage.ViolatedConstraint(err))
	})

	t.Run("unknown user is a foreign key violation", func(t *testing.T) {
		o := *first
		o.UserID = domain.UserID(uuid.New())
		_, err := pgSQL.CreateOwnership(ctx, o)
		require.ErrorIs(t, err, storage.ErrForeignKeyViolation)
	})

	t.Run("transferred ownership keeps its end date", func(t *testing.T) {
		end := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		second.Status = domain.OwnershipStatusTransferred
		second.EndDate = end
		updated, err := pgSQL.UpdateOwnership(ctx, *second)
		require.NoError(t, err)
		require.Equal(t, domain.OwnershipStatusTransferred, updated.Status)
		require.True(t, end.Equal(updated.EndDate.UTC()))

		share, err := pgSQL.ActiveOwnershipShare(ctx, parcel.ID, nil)
		require.NoError(t, err)
		require.True(t, decimal.NewFromInt(60).Equal(share))
	})

	t.Run("list by user and by parcel", func(t *testing.T) {
		list, total, err := pgSQL.ListOwnerships(ctx, storage.OwnershipFilter{UserID: &alice.ID},
			domain.PageRequest{Size: 10})
		require.NoError(t, err)
		require.EqualValues(t, 1, total)
		require.Equal(t, first.ID, list[0].ID)

		_, total, err = pgSQL.ListOwnerships(ctx, storage.OwnershipFilter{
			ParcelID: &parcel.ID,
			Status:   domain.OwnershipStatusActive,
		}, domain.PageRequest{Size: 10})
		require.NoError(t, err)
		require.EqualValues(t, 1, total)
	})

	t.Run("stats", func(t *testing.T) {
		stats, err := pgSQL.OwnershipStats(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 2, stats.Total)
		require.EqualValues(t, 1, stats.ByStatus[domain.OwnershipStatusActive])
		require.EqualValues(t, 2, stats.ByType[domain.OwnershipTypeJoint])
	})
}
