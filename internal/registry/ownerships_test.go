package registry_test

import (
	"context"
	"landregistry/internal/registry"
	"landregistry/pkg/domain"
	"landregistry/pkg/serrors"
	"landregistry/pkg/storage"
	mockstorage "landregistry/pkg/storage/mock"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateOwnership(t *testing.T) {
	f := newFixture(t)
	p := newParcel()
	in := *newOwnership(f.citizen.UserID, p.ID, 40)
	in.AcquisitionDate = time.Time{}
	in.StartDate = time.Time{}
	in.Status = ""

	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockParcel(gomock.Any(), p.ID).Return(p, nil)
		tx.EXPECT().UserByID(gomock.Any(), f.citizen.UserID).Return(userOf(f.citizen), nil)
		tx.EXPECT().ActiveOwnershipShare(gomock.Any(), p.ID, nil).Return(decimal.NewFromInt(60), nil)
		tx.EXPECT().CreateOwnership(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o domain.Ownership) (*domain.Ownership, error) {
				require.Equal(t, domain.OwnershipStatusActive, o.Status)
				require.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), o.AcquisitionDate)
				require.Equal(t, o.AcquisitionDate, o.StartDate)

				return &o, nil
			})
	})

	o, err := f.reg.CreateOwnership(context.Background(), f.officer, in)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(40).Equal(o.OwnershipPercentage))
}

func TestCreateOwnership_ExceedsParcel(t *testing.T) {
	f := newFixture(t)
	p := newParcel()

	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockParcel(gomock.Any(), p.ID).Return(p, nil)
		tx.EXPECT().UserByID(gomock.Any(), f.citizen.UserID).Return(userOf(f.citizen), nil)
		tx.EXPECT().ActiveOwnershipShare(gomock.Any(), p.ID, nil).Return(decimal.RequireFromString("70.50"), nil)
	})

	_, err := f.reg.CreateOwnership(context.Background(), f.officer, *newOwnership(f.citizen.UserID, p.ID, 30))
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.Contains(t, serrors.MessageOf(err), "70.50% already held")
}

func TestCreateOwnership_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := newParcel()

	_, err := f.reg.CreateOwnership(ctx, f.citizen, *newOwnership(f.citizen.UserID, p.ID, 30))
	require.ErrorIs(t, err, serrors.ErrForbidden)

	tooPrecise := *newOwnership(f.citizen.UserID, p.ID, 30)
	tooPrecise.OwnershipPercentage = decimal.RequireFromString("33.333")
	_, err = f.reg.CreateOwnership(ctx, f.officer, tooPrecise)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	tooMuch := *newOwnership(f.citizen.UserID, p.ID, 101)
	_, err = f.reg.CreateOwnership(ctx, f.officer, tooMuch)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCreateOwnership_DuplicateHolder(t *testing.T) {
	f := newFixture(t)
	p := newParcel()

	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockParcel(gomock.Any(), p.ID).Return(p, nil)
		tx.EXPECT().UserByID(gomock.Any(), f.citizen.UserID).Return(userOf(f.citizen), nil)
		tx.EXPECT().ActiveOwnershipShare(gomock.Any(), p.ID, nil).Return(decimal.Zero, nil)
		tx.EXPECT().CreateOwnership(gomock.Any(), gomock.Any()).Return(nil, &storage.ConstraintError{
			Err:        storage.ErrUniqueViolation,
			Constraint: "ownerships_active_holder_key",
		})
	})

	_, err := f.reg.CreateOwnership(context.Background(), f.officer, *newOwnership(f.citizen.UserID, p.ID, 50))
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.Equal(t, "user already has an active ownership of this land parcel", serrors.MessageOf(err))
}

func TestOwnership_CitizenScope(t *testing.T) {
	f := newFixture(t)
	o := newOwnership(f.officer.UserID, newParcel().ID, 100)
	f.st.EXPECT().OwnershipByID(gomock.Any(), o.ID).Return(o, nil)

	_, err := f.reg.Ownership(context.Background(), f.citizen, o.ID)
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestUpdateOwnership_EndingSetsEndDate(t *testing.T) {
	f := newFixture(t)
	p := newParcel()
	o := newOwnership(f.citizen.UserID, p.ID, 100)

	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().OwnershipByID(gomock.Any(), o.ID).Return(o, nil)
		tx.EXPECT().LockParcel(gomock.Any(), p.ID).Return(p, nil)
		tx.EXPECT().LockOwnership(gomock.Any(), o.ID).Return(o, nil)
		tx.EXPECT().UpdateOwnership(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o domain.Ownership) (*domain.Ownership, error) { return &o, nil })
	})

	updated, err := f.reg.UpdateOwnership(context.Background(), f.officer, o.ID, registry.OwnershipPatch{
		Status: ptr(domain.OwnershipStatusInactive),
		Notes:  ptr("sold privately"),
	})
	require.NoError(t, err)
	require.Equal(t, domain.OwnershipStatusInactive, updated.Status)
	require.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), updated.EndDate)
}

func TestUpdateOwnership_PercentageRecheck(t *testing.T) {
	f := newFixture(t)
	p := newParcel()
	o := newOwnership(f.citizen.UserID, p.ID, 50)

	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().OwnershipByID(gomock.Any(), o.ID).Return(o, nil)
		tx.EXPECT().LockParcel(gomock.Any(), p.ID).Return(p, nil)
		tx.EXPECT().LockOwnership(gomock.Any(), o.ID).Return(o, nil)
		tx.EXPECT().ActiveOwnershipShare(gomock.Any(), p.ID, &o.ID).Return(decimal.NewFromInt(50), nil)
	})

	_, err := f.reg.UpdateOwnership(context.Background(), f.officer, o.ID, registry.OwnershipPatch{
		OwnershipPercentage: ptr(decimal.NewFromInt(60)),
	})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestTransferOwnership(t *testing.T) {
	f := newFixture(t)
	p := newParcel()
	old := newOwnership(f.citizen.UserID, p.ID, 100)
	buyer := domain.Actor{UserID: domain.UserID(uuid.New()), Role: domain.RoleCitizen}
	midnight := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().OwnershipByID(gomock.Any(), old.ID).Return(old, nil)
		tx.EXPECT().LockParcel(gomock.Any(), p.ID).Return(p, nil)
		tx.EXPECT().LockOwnership(gomock.Any(), old.ID).Return(old, nil)
		tx.EXPECT().UserByID(gomock.Any(), buyer.UserID).Return(userOf(buyer), nil)
		tx.EXPECT().UpdateOwnership(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o domain.Ownership) (*domain.Ownership, error) {
				require.Equal(t, old.ID, o.ID)
				require.Equal(t, domain.OwnershipStatusTransferred, o.Status)
				require.Equal(t, midnight, o.EndDate)

				return &o, nil
			})
		tx.EXPECT().CreateOwnership(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o domain.Ownership) (*domain.Ownership, error) {
				require.True(t, o.ID.IsZero())
				require.Equal(t, buyer.UserID, o.UserID)
				require.Equal(t, domain.OwnershipStatusActive, o.Status)
				require.True(t, decimal.NewFromInt(100).Equal(o.OwnershipPercentage))
				require.Equal(t, midnight, o.StartDate)
				require.True(t, o.EndDate.IsZero())

				return &o, nil
			})
	})

	created, err := f.reg.TransferOwnership(context.Background(), f.officer, old.ID, buyer.UserID)
	require.NoError(t, err)
	require.Equal(t, buyer.UserID, created.UserID)
}

func TestTransferOwnership_Rules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := newParcel()

	_, err := f.reg.TransferOwnership(ctx, f.citizen, domain.OwnershipID{}, f.officer.UserID)
	require.ErrorIs(t, err, serrors.ErrForbidden)

	_, err = f.reg.TransferOwnership(ctx, f.officer, domain.OwnershipID{}, domain.UserID{})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	ended := newOwnership(f.citizen.UserID, p.ID, 100)
	ended.Status = domain.OwnershipStatusTransferred
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().OwnershipByID(gomock.Any(), ended.ID).Return(ended, nil)
		tx.EXPECT().LockParcel(gomock.Any(), p.ID).Return(p, nil)
		tx.EXPECT().LockOwnership(gomock.Any(), ended.ID).Return(ended, nil)
	})
	_, err = f.reg.TransferOwnership(ctx, f.officer, ended.ID, f.admin.UserID)
	require.ErrorIs(t, err, serrors.ErrConflict)

	active := newOwnership(f.citizen.UserID, p.ID, 100)
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().OwnershipByID(gomock.Any(), active.ID).Return(active, nil)
		tx.EXPECT().LockParcel(gomock.Any(), p.ID).Return(p, nil)
		tx.EXPECT().LockOwnership(gomock.Any(), active.ID).Return(active, nil)
	})
	_, err = f.reg.TransferOwnership(ctx, f.officer, active.ID, f.citizen.UserID)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestListOwnerships_CitizenScoped(t *testing.T) {
	f := newFixture(t)
	other := f.officer.UserID

	f.st.EXPECT().ListOwnerships(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter storage.OwnershipFilter, _ domain.PageRequest) ([]domain.Ownership, int64, error) {
			require.Equal(t, f.citizen.UserID, *filter.UserID)

			return nil, 0, nil
		})

	page, err := f.reg.ListOwnerships(context.Background(), f.citizen,
		storage.OwnershipFilter{UserID: &other}, domain.PageRequest{})
	require.NoError(t, err)
	require.Empty(t, page.Items)
}
