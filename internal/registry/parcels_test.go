package registry_test

import (
	"context"
	"landregistry/internal/registry"
	"landregistry/pkg/domain"
	"landregistry/pkg/serrors"
	"landregistry/pkg/storage"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateParcel(t *testing.T) {
	f := newFixture(t)
	in := *newParcel()
	in.ParcelNumber = "  KGL-GAS-0002 "
	in.Status = ""

	f.st.EXPECT().CreateParcel(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.Parcel) (*domain.Parcel, error) {
			require.Equal(t, "KGL-GAS-0002", p.ParcelNumber)
			require.Equal(t, domain.ParcelStatusAvailable, p.Status)
			require.True(t, p.ID.IsZero())

			return &p, nil
		})

	p, err := f.reg.CreateParcel(context.Background(), f.officer, in)
	require.NoError(t, err)
	require.Equal(t, "KGL-GAS-0002", p.ParcelNumber)
}

func TestCreateParcel_Rules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.reg.CreateParcel(ctx, f.citizen, *newParcel())
	require.ErrorIs(t, err, serrors.ErrForbidden)

	zeroArea := *newParcel()
	zeroArea.AreaSqm = decimal.Zero
	_, err = f.reg.CreateParcel(ctx, f.officer, zeroArea)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	f.st.EXPECT().CreateParcel(gomock.Any(), gomock.Any()).Return(nil, &storage.ConstraintError{
		Err:        storage.ErrUniqueViolation,
		Constraint: "land_parcels_parcel_number_key",
	})
	_, err = f.reg.CreateParcel(ctx, f.officer, *newParcel())
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.Equal(t, "parcel number already exists", serrors.MessageOf(err))
}

func TestUpdateParcel(t *testing.T) {
	f := newFixture(t)
	p := newParcel()
	value := decimal.RequireFromString("25000000.50")

	f.st.EXPECT().ParcelByID(gomock.Any(), p.ID).Return(p, nil)
	f.st.EXPECT().UpdateParcel(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.Parcel) (*domain.Parcel, error) { return &p, nil })

	updated, err := f.reg.UpdateParcel(context.Background(), f.officer, p.ID, registry.ParcelPatch{
		Sector:      ptr(" Remera "),
		MarketValue: &value,
	})
	require.NoError(t, err)
	require.Equal(t, "Remera", updated.Sector)
	require.True(t, value.Equal(*updated.MarketValue))
}

func TestUpdateParcel_NegativeArea(t *testing.T) {
	f := newFixture(t)
	p := newParcel()

	f.st.EXPECT().ParcelByID(gomock.Any(), p.ID).Return(p, nil)

	_, err := f.reg.UpdateParcel(context.Background(), f.admin, p.ID, registry.ParcelPatch{
		AreaSqm: ptr(decimal.NewFromInt(-1)),
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestParcel_NotFound(t *testing.T) {
	f := newFixture(t)
	id := newParcel().ID
	f.st.EXPECT().ParcelByID(gomock.Any(), id).Return(nil, nil)

	_, err := f.reg.Parcel(context.Background(), f.citizen, id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestParcelByNumber(t *testing.T) {
	f := newFixture(t)
	p := newParcel()
	f.st.EXPECT().ParcelByNumber(gomock.Any(), "KGL-GAS-0001").Return(p, nil)

	got, err := f.reg.ParcelByNumber(context.Background(), f.citizen, " KGL-GAS-0001 ")
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestDeleteParcel_RequiresAdmin(t *testing.T) {
	f := newFixture(t)
	p := newParcel()

	err := f.reg.DeleteParcel(context.Background(), f.officer, p.ID)
	require.ErrorIs(t, err, serrors.ErrForbidden)

	f.st.EXPECT().DeleteParcel(gomock.Any(), p.ID).Return(true, nil)
	require.NoError(t, f.reg.DeleteParcel(context.Background(), f.admin, p.ID))
}

func TestListParcels_AreaRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.reg.ListParcels(ctx, f.citizen, storage.ParcelFilter{
		MinArea: ptr(decimal.NewFromInt(500)),
		MaxArea: ptr(decimal.NewFromInt(100)),
	}, domain.PageRequest{})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	filter := storage.ParcelFilter{District: "Gasabo", Status: domain.ParcelStatusAvailable}
	f.st.EXPECT().ListParcels(gomock.Any(), filter, gomock.Any()).Return([]domain.Parcel{*newParcel()}, int64(1), nil)

	page, err := f.reg.ListParcels(ctx, f.citizen, filter, domain.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, 1, page.TotalPages)
}

func TestSetParcelStatus(t *testing.T) {
	f := newFixture(t)
	p := newParcel()

	_, err := f.reg.SetParcelStatus(context.Background(), f.officer, p.ID, "SOLD")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	f.st.EXPECT().ParcelByID(gomock.Any(), p.ID).Return(p, nil)
	f.st.EXPECT().UpdateParcel(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.Parcel) (*domain.Parcel, error) { return &p, nil })

	updated, err := f.reg.SetParcelStatus(context.Background(), f.officer, p.ID, domain.ParcelStatusReserved)
	require.NoError(t, err)
	require.Equal(t, domain.ParcelStatusReserved, updated.Status)
}
