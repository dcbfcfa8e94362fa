package postgres_test

import (
	"context"
	"landregistry/internal/registry"
	"landregistry/pkg/domain"
	"landregistry/pkg/serrors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_LockOwnershipAndRequest(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner := createUser(t, pgSQL, domain.RoleCitizen)
	parcel := createParcel(t, pgSQL, "Kicukiro")
	o := createOwnership(t, pgSQL, owner.ID, parcel.ID, "60")

	locked, err := pgSQL.LockOwnership(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, o.ID, locked.ID)

	missing, err := pgSQL.LockOwnership(ctx, domain.OwnershipID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)

	noRequest, err := pgSQL.LockRequest(ctx, domain.RequestID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, noRequest)
}

// race runs a and b at the same time and returns both errors.
func race(a, b func() error) (error, error) {
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errA  error
		errB  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		<-start
		errA = a()
	}()
	go func() {
		defer wg.Done()
		<-start
		errB = b()
	}()
	close(start)
	wg.Wait()

	return errA, errB
}

// oneConflict asserts that exactly one of the errors is nil and the other a conflict.
func oneConflict(t *testing.T, errA, errB error) {
	t.Helper()

	if errA == nil {
		require.ErrorIs(t, errB, serrors.ErrConflict)

		return
	}
	require.ErrorIs(t, errA, serrors.ErrConflict)
	require.NoError(t, errB)
}

func TestRegistry_ConcurrentTransfers(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	reg := registry.New(pgSQL)
	officer := domain.Actor{UserID: createUser(t, pgSQL, domain.RoleLandOfficer).ID, Role: domain.RoleLandOfficer}

	for range 5 {
		seller := createUser(t, pgSQL, domain.RoleCitizen)
		first := createUser(t, pgSQL, domain.RoleCitizen)
		second := createUser(t, pgSQL, domain.RoleCitizen)
		parcel := createParcel(t, pgSQL, "Gasabo")
		o := createOwnership(t, pgSQL, seller.ID, parcel.ID, "60")

		errA, errB := race(
			func() error {
				_, err := reg.TransferOwnership(ctx, officer, o.ID, first.ID)

				return err
			},
			func() error {
				_, err := reg.TransferOwnership(ctx, officer, o.ID, second.ID)

				return err
			},
		)
		oneConflict(t, errA, errB)

		share, err := pgSQL.ActiveOwnershipShare(ctx, parcel.ID, nil)
		require.NoError(t, err)
		require.True(t, decimal.NewFromInt(60).Equal(share), share.String())
	}
}

func TestRegistry_ConcurrentDecisions(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	reg := registry.New(pgSQL)
	citizen := createUser(t, pgSQL, domain.RoleCitizen)
	parcel := createParcel(t, pgSQL, "Nyarugenge")
	officer := domain.Actor{UserID: createUser(t, pgSQL, domain.RoleLandOfficer).ID, Role: domain.RoleLandOfficer}

	for range 5 {
		seq, err := pgSQL.NextRequestSequence(ctx)
		require.NoError(t, err)
		req, err := pgSQL.CreateRequest(ctx, domain.Request{
			RequestNumber:  domain.FormatRequestNumber(2025, seq),
			RequesterID:    citizen.ID,
			ParcelID:       &parcel.ID,
			RequestType:    domain.RequestTypeTitleDeedIssuance,
			Description:    "title deed please",
			Status:         domain.RequestStatusPending,
			Priority:       domain.PriorityNormal,
			SubmissionDate: time.Now().UTC(),
		})
		require.NoError(t, err)

		errA, errB := race(
			func() error {
				_, err := reg.ApproveRequest(ctx, officer, req.ID, "")

				return err
			},
			func() error {
				_, err := reg.RejectRequest(ctx, officer, req.ID, "missing survey plan")

				return err
			},
		)
		oneConflict(t, errA, errB)

		stored, err := pgSQL.RequestByID(ctx, req.ID)
		require.NoError(t, err)
		if errA == nil {
			require.Equal(t, domain.RequestStatusApproved, stored.Status)
		} else {
			require.Equal(t, domain.RequestStatusRejected, stored.Status)
		}
	}
}
