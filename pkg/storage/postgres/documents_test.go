package postgres_test

import (
	"context"
	"landregistry/pkg/domain"
	"landregistry/pkg/storage"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Documents(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	uploader := createUser(t, pgSQL, domain.RoleCitizen)
	officer := createUser(t, pgSQL, domain.RoleLandOfficer)
	parcel := createParcel(t, pgSQL, "Gasabo")

	newDoc := func(name string, parcelID *domain.ParcelID, size int64) *domain.Document {
		t.Helper()

		version, err := pgSQL.MaxDocumentVersion(ctx, name, parcelID)
		require.NoError(t, err)
		d, err := pgSQL.CreateDocument(ctx, domain.Document{
			DocumentName: name,
			DocumentType: domain.DocumentTypeSurveyPlan,
			FileSize:     size,
			MimeType:     "application/pdf",
			ParcelID:     parcelID,
			UploadedBy:   uploader.ID,
			Status:       domain.DocumentStatusPendingVerification,
			Version:      version + 1,
		})
		require.NoError(t, err)

		return d
	}

	v1 := newDoc("plan.pdf", &parcel.ID, 100)
	v2 := newDoc("plan.pdf", &parcel.ID, 200)
	loose := newDoc("plan.pdf", nil, 300)

	t.Run("versions increase per name and parcel", func(t *testing.T) {
		require.Equal(t, 1, v1.Version)
		require.Equal(t, 2, v2.Version)
		require.Equal(t, 1, loose.Version)
	})

	t.Run("verify and filter", func(t *testing.T) {
		v2.Verify(officer.ID, time.Now())
		updated, err := pgSQL.UpdateDocument(ctx, *v2)
		require.NoError(t, err)
		require.True(t, updated.IsVerified)
		require.Equal(t, officer.ID, *updated.VerifiedBy)

		verified := true
		list, total, err := pgSQL.ListDocuments(ctx, storage.DocumentFilter{Verified: &verified},
			domain.PageRequest{Size: 10})
		require.NoError(t, err)
		require.EqualValues(t, 1, total)
		require.Equal(t, v2.ID, list[0].ID)

		_, total, err = pgSQL.ListDocuments(ctx, storage.DocumentFilter{ParcelID: &parcel.ID},
			domain.PageRequest{Size: 10})
		require.NoError(t, err)
		require.EqualValues(t, 2, total)
	})

	t.Run("stats", func(t *testing.T) {
		stats, err := pgSQL.DocumentStats(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 3, stats.Total)
		require.EqualValues(t, 1, stats.Verified)
		require.EqualValues(t, 200, stats.TotalActiveFileSize)
		require.EqualValues(t, 2, stats.ByStatus[domain.DocumentStatusPendingVerification])
		require.EqualValues(t, 3, stats.ByType[domain.DocumentTypeSurveyPlan])
	})

	t.Run("archive expired active documents", func(t *testing.T) {
		now := time.Now()
		v2.ExpiryDate = now.Add(-time.Hour)
		_, err := pgSQL.UpdateDocument(ctx, *v2)
		require.NoError(t, err)

		v1.ExpiryDate = now.Add(-time.Hour) // pending, must stay untouched
		_, err = pgSQL.UpdateDocument(ctx, *v1)
		require.NoError(t, err)

		n, err := pgSQL.ArchiveExpiredDocuments(ctx, now)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		got, err := pgSQL.DocumentByID(ctx, v2.ID)
		require.NoError(t, err)
		require.Equal(t, domain.DocumentStatusArchived, got.Status)

		got, err = pgSQL.DocumentByID(ctx, v1.ID)
		require.NoError(t, err)
		require.Equal(t, domain.DocumentStatusPendingVerification, got.Status)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := pgSQL.DeleteDocument(ctx, loose.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		got, err := pgSQL.DocumentByID(ctx, loose.ID)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}
