package postgres_test

import (
	"context"
	"landregistry/pkg/domain"
	"landregistry/pkg/storage"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Parcels(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	a := createParcel(t, pgSQL, "Gasabo")
	b := createParcel(t, pgSQL, "Gasabo")
	c := createParcel(t, pgSQL, "Nyarugenge")

	t.Run("fetch by number ignores case", func(t *testing.T) {
		got, err := pgSQL.ParcelByNumber(ctx, " "+a.ParcelNumber+" ")
		require.NoError(t, err)
		require.Equal(t, a.ID, got.ID)
		require.True(t, decimal.NewFromInt(500).Equal(got.AreaSqm))
		require.Nil(t, got.MarketValue)
	})

	t.Run("duplicate number", func(t *testing.T) {
		dup := *a
		_, err := pgSQL.CreateParcel(ctx, dup)
		require.ErrorIs(t, err, storage.ErrUniqueViolation)
	})

	t.Run("update status and value", func(t *testing.T) {
		value := decimal.RequireFromString("25000000.50")
		b.Status = domain.ParcelStatusReserved
		b.MarketValue = &value
		updated, err := pgSQL.UpdateParcel(ctx, *b)
		require.NoError(t, err)
		require.Equal(t, domain.ParcelStatusReserved, updated.Status)
		require.True(t, value.Equal(*updated.MarketValue))
	})

	t.Run("filters", func(t *testing.T) {
		parcels, total, err := pgSQL.ListParcels(ctx, storage.ParcelFilter{District: "gasabo"},
			domain.PageRequest{Size: 10})
		require.NoError(t, err)
		require.EqualValues(t, 2, total)
		require.Len(t, parcels, 2)

		_, total, err = pgSQL.ListParcels(ctx, storage.ParcelFilter{Status: domain.ParcelStatusAvailable},
			domain.PageRequest{Size: 10})
		require.NoError(t, err)
		require.EqualValues(t, 2, total)

		minArea := decimal.NewFromInt(501)
		_, total, err = pgSQL.ListParcels(ctx, storage.ParcelFilter{MinArea: &minArea},
			domain.PageRequest{Size: 10})
		require.NoError(t, err)
		require.EqualValues(t, 0, total)

		parcels, _, err = pgSQL.ListParcels(ctx, storage.ParcelFilter{Search: c.ParcelNumber},
			domain.PageRequest{Size: 10})
		require.NoError(t, err)
		require.Len(t, parcels, 1)
		require.Equal(t, c.ID, parcels[0].ID)
	})

	t.Run("owner filter only sees active ownerships", func(t *testing.T) {
		owner := createUser(t, pgSQL, domain.RoleCitizen)
		createOwnership(t, pgSQL, owner.ID, a.ID, "100")
		o := createOwnership(t, pgSQL, owner.ID, c.ID, "40")
		o.Status = domain.OwnershipStatusTransferred
		_, err := pgSQL.UpdateOwnership(ctx, *o)
		require.NoError(t, err)

		parcels, total, err := pgSQL.ListParcels(ctx, storage.ParcelFilter{OwnerID: &owner.ID},
			domain.PageRequest{Size: 10})
		require.NoError(t, err)
		require.EqualValues(t, 1, total)
		require.Equal(t, a.ID, parcels[0].ID)
	})

	t.Run("stats", func(t *testing.T) {
		stats, err := pgSQL.ParcelStats(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 3, stats.Total)
		require.EqualValues(t, 1, stats.ByStatus[domain.ParcelStatusReserved])
		require.EqualValues(t, 3, stats.ByLandUse[domain.LandUseResidential])
		require.True(t, decimal.NewFromInt(1500).Equal(stats.TotalAreaSqm))
		require.True(t, decimal.RequireFromString("25000000.50").Equal(stats.TotalMarketValue))
	})

	t.Run("delete cascades to ownerships", func(t *testing.T) {
		owner := createUser(t, pgSQL, domain.RoleCitizen)
		p := createParcel(t, pgSQL, "Musanze")
		o := createOwnership(t, pgSQL, owner.ID, p.ID, "50")

		deleted, err := pgSQL.DeleteParcel(ctx, p.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		got, err := pgSQL.OwnershipByID(ctx, o.ID)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestPgSQL_LockParcel_InTx(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	p := createParcel(t, pgSQL, "Huye")
	err := pgSQL.WithTx(ctx, func(s storage.AllStorage) error {
		locked, err := s.LockParcel(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, p.ParcelNumber, locked.ParcelNumber)

		return nil
	})
	require.NoError(t, err)
}
