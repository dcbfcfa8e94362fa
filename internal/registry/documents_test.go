package registry_test

import (
	"context"
	"landregistry/internal/registry"
	"landregistry/pkg/domain"
	"landregistry/pkg/serrors"
	"landregistry/pkg/storage"
	mockstorage "landregistry/pkg/storage/mock"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateDocument_NextVersion(t *testing.T) {
	f := newFixture(t)
	p := newParcel()
	in := *newDocument(f.officer.UserID)
	in.ParcelID = &p.ID
	in.Status = domain.DocumentStatusActive
	in.IsVerified = true

	f.st.EXPECT().ParcelByID(gomock.Any(), p.ID).Return(p, nil)
	f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockParcel(gomock.Any(), p.ID).Return(p, nil)
		tx.EXPECT().MaxDocumentVersion(gomock.Any(), "survey-plan.pdf", &p.ID).Return(2, nil)
		tx.EXPECT().CreateDocument(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d domain.Document) (*domain.Document, error) {
				require.Equal(t, 3, d.Version)
				require.Equal(t, f.citizen.UserID, d.UploadedBy)
				require.Equal(t, domain.DocumentStatusPendingVerification, d.Status)
				require.False(t, d.IsVerified)

				return &d, nil
			})
	})

	d, err := f.reg.CreateDocument(context.Background(), f.citizen, in)
	require.NoError(t, err)
	require.Equal(t, 3, d.Version)
}

func TestCreateDocument_ForeignRequest(t *testing.T) {
	f := newFixture(t)
	req := newRequest(f.officer.UserID, domain.RequestStatusPending)
	in := *newDocument(f.citizen.UserID)
	in.RequestID = &req.ID

	f.st.EXPECT().RequestByID(gomock.Any(), req.ID).Return(req, nil)

	_, err := f.reg.CreateDocument(context.Background(), f.citizen, in)
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestDocument_CitizenScope(t *testing.T) {
	f := newFixture(t)
	d := newDocument(f.officer.UserID)
	f.st.EXPECT().DocumentByID(gomock.Any(), d.ID).Return(d, nil)

	_, err := f.reg.Document(context.Background(), f.citizen, d.ID)
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestUpdateDocument(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	verified := newDocument(f.citizen.UserID)
	verified.Verify(f.officer.UserID, now)
	f.st.EXPECT().DocumentByID(gomock.Any(), verified.ID).Return(verified, nil)
	_, err := f.reg.UpdateDocument(ctx, f.citizen, verified.ID, registry.DocumentPatch{Description: ptr("scan")})
	require.ErrorIs(t, err, serrors.ErrConflict)

	pending := newDocument(f.citizen.UserID)
	f.st.EXPECT().DocumentByID(gomock.Any(), pending.ID).Return(pending, nil)
	f.st.EXPECT().UpdateDocument(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d domain.Document) (*domain.Document, error) { return &d, nil })
	updated, err := f.reg.UpdateDocument(ctx, f.citizen, pending.ID, registry.DocumentPatch{
		DocumentName: ptr(" survey-plan-v2.pdf "),
		FileSize:     ptr(int64(4096)),
	})
	require.NoError(t, err)
	require.Equal(t, "survey-plan-v2.pdf", updated.DocumentName)
	require.Equal(t, int64(4096), updated.FileSize)
}

func TestDeleteDocument(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	verified := newDocument(f.citizen.UserID)
	verified.Verify(f.officer.UserID, now)
	f.st.EXPECT().DocumentByID(gomock.Any(), verified.ID).Return(verified, nil)
	require.ErrorIs(t, f.reg.DeleteDocument(ctx, f.citizen, verified.ID), serrors.ErrConflict)

	pending := newDocument(f.citizen.UserID)
	f.st.EXPECT().DocumentByID(gomock.Any(), pending.ID).Return(pending, nil)
	f.st.EXPECT().DeleteDocument(gomock.Any(), pending.ID).Return(true, nil)
	require.NoError(t, f.reg.DeleteDocument(ctx, f.citizen, pending.ID))

	f.st.EXPECT().DeleteDocument(gomock.Any(), verified.ID).Return(true, nil)
	require.NoError(t, f.reg.DeleteDocument(ctx, f.admin, verified.ID))
}

func TestVerifyDocument(t *testing.T) {
	f := newFixture(t)
	d := newDocument(f.citizen.UserID)

	_, err := f.reg.VerifyDocument(context.Background(), f.citizen, d.ID)
	require.ErrorIs(t, err, serrors.ErrForbidden)

	f.st.EXPECT().UserByID(gomock.Any(), f.officer.UserID).Return(userOf(f.officer), nil)
	f.st.EXPECT().DocumentByID(gomock.Any(), d.ID).Return(d, nil)
	f.st.EXPECT().UpdateDocument(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d domain.Document) (*domain.Document, error) { return &d, nil })

	verified, err := f.reg.VerifyDocument(context.Background(), f.officer, d.ID)
	require.NoError(t, err)
	require.True(t, verified.IsVerified)
	require.Equal(t, f.officer.UserID, *verified.VerifiedBy)
	require.Equal(t, now, verified.VerificationDate)
	require.Equal(t, domain.DocumentStatusActive, verified.Status)
}

func TestVerifyDocument_InactiveVerifier(t *testing.T) {
	f := newFixture(t)
	officer := userOf(f.officer)
	officer.Status = domain.UserStatusSuspended

	f.st.EXPECT().UserByID(gomock.Any(), f.officer.UserID).Return(officer, nil)

	_, err := f.reg.VerifyDocument(context.Background(), f.officer, newDocument(f.citizen.UserID).ID)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestListDocuments_CitizenScoped(t *testing.T) {
	f := newFixture(t)
	verified := true

	f.st.EXPECT().ListDocuments(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter storage.DocumentFilter, _ domain.PageRequest) ([]domain.Document, int64, error) {
			require.Equal(t, f.citizen.UserID, *filter.UploadedBy)
			require.True(t, *filter.Verified)

			return nil, 0, nil
		})

	_, err := f.reg.ListDocuments(context.Background(), f.citizen,
		storage.DocumentFilter{Verified: &verified}, domain.PageRequest{})
	require.NoError(t, err)
}
