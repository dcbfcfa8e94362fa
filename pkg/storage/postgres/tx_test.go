package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"landregistry/pkg/domain"
	"landregistry/pkg/storage"
	"landregistry/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	inner, ok := tx.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
}

func TestPgSQL_CommitRollbackOutsideTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := createUser(t, pg, domain.RoleCitizen)
	parcel := createParcel(t, pg, "Gasabo")

	var committed *domain.Request
	err := pg.WithTx(ctx, func(st storage.AllStorage) error {
		seq, err := st.NextRequestSequence(ctx)
		if err != nil {
			return err //nolint: wrapcheck
		}
		committed, err = st.CreateRequest(ctx, domain.Request{
			RequestNumber:  domain.FormatRequestNumber(2025, seq),
			RequesterID:    owner.ID,
			ParcelID:       &parcel.ID,
			RequestType:    domain.RequestTypeBoundarySurvey,
			Description:    "survey the northern boundary",
			Status:         domain.RequestStatusPending,
			Priority:       domain.PriorityNormal,
			SubmissionDate: time.Now(),
		})

		return err //nolint: wrapcheck
	})
	require.NoError(t, err)
	got, err := pg.RequestByID(ctx, committed.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	// a failure after the insert leaves nothing behind
	boom := errors.New("boom")
	var rolledBack *domain.Ownership
	err = pg.WithTx(ctx, func(st storage.AllStorage) error {
		var err error
		rolledBack, err = st.CreateOwnership(ctx, domain.Ownership{
			UserID:              owner.ID,
			ParcelID:            parcel.ID,
			OwnershipPercentage: decimal.NewFromInt(40),
			OwnershipType:       domain.OwnershipTypeJoint,
			AcquisitionDate:     time.Now(),
			AcquisitionMethod:   domain.AcquisitionGift,
			Status:              domain.OwnershipStatusActive,
			StartDate:           time.Now(),
		})
		if err != nil {
			return err //nolint: wrapcheck
		}

		return boom
	})
	require.ErrorIs(t, err, boom)
	require.NotNil(t, rolledBack)
	gone, err := pg.OwnershipByID(ctx, rolledBack.ID)
	require.NoError(t, err)
	require.Nil(t, gone)
}
