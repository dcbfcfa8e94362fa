package postgres_test

import (
	"context"
	"landregistry/pkg/domain"
	"landregistry/pkg/storage"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Requests(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	citizen := createUser(t, pgSQL, domain.RoleCitizen)
	officer := createUser(t, pgSQL, domain.RoleLandOfficer)
	parcel := createParcel(t, pgSQL, "Gasabo")

	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	newRequest := func(priority domain.Priority, submitted time.Time) *domain.Request {
		t.Helper()

		seq, err := pgSQL.NextRequestSequence(ctx)
		require.NoError(t, err)
		r, err := pgSQL.CreateRequest(ctx, domain.Request{
			RequestNumber:  domain.FormatRequestNumber(2025, seq),
			RequesterID:    citizen.ID,
			ParcelID:       &parcel.ID,
			RequestType:    domain.RequestTypeTitleDeedIssuance,
			Description:    "title deed please",
			Status:         domain.RequestStatusPending,
			Priority:       priority,
			SubmissionDate: submitted,
		})
		require.NoError(t, err)

		return r
	}

	normalOld := newRequest(domain.PriorityNormal, base)
	urgent := newRequest(domain.PriorityUrgent, base.Add(2*time.Hour))
	normalNew := newRequest(domain.PriorityNormal, base.Add(time.Hour))
	low := newRequest(domain.PriorityLow, base.Add(-time.Hour))

	t.Run("sequence numbers are distinct", func(t *testing.T) {
		require.NotEqual(t, normalOld.RequestNumber, urgent.RequestNumber)
		require.Regexp(t, `^REQ-2025-\d{6}$`, normalOld.RequestNumber)
	})

	t.Run("pending ordered by priority then submission", func(t *testing.T) {
		list, total, err := pgSQL.ListRequests(ctx, storage.RequestFilter{
			Status:     domain.RequestStatusPending,
			ByPriority: true,
		}, domain.PageRequest{Size: 10})
		require.NoError(t, err)
		require.EqualValues(t, 4, total)

		ids := []domain.RequestID{list[0].ID, list[1].ID, list[2].ID, list[3].ID}
		require.Equal(t, []domain.RequestID{urgent.ID, normalOld.ID, normalNew.ID, low.ID}, ids)
	})

	t.Run("assign and decide", func(t *testing.T) {
		normalOld.AssignedOfficerID = &officer.ID
		require.True(t, normalOld.TransitionTo(domain.RequestStatusApproved, base.Add(24*time.Hour)))
		updated, err := pgSQL.UpdateRequest(ctx, *normalOld)
		require.NoError(t, err)
		require.Equal(t, domain.RequestStatusApproved, updated.Status)
		require.Equal(t, officer.ID, *updated.AssignedOfficerID)
		require.False(t, updated.CompletionDate.IsZero())

		list, _, err := pgSQL.ListRequests(ctx, storage.RequestFilter{AssignedOfficerID: &officer.ID},
			domain.PageRequest{Size: 10})
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("duplicate number", func(t *testing.T) {
		dup := *urgent
		_, err := pgSQL.CreateRequest(ctx, dup)
		require.ErrorIs(t, err, storage.ErrUniqueViolation)
	})

	t.Run("search and stats", func(t *testing.T) {
		list, _, err := pgSQL.ListRequests(ctx, storage.RequestFilter{Search: low.RequestNumber},
			domain.PageRequest{Size: 10})
		require.NoError(t, err)
		require.Len(t, list, 1)

		stats, err := pgSQL.RequestStats(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 4, stats.Total)
		require.EqualValues(t, 3, stats.ByStatus[domain.RequestStatusPending])
		require.EqualValues(t, 2, stats.ByPriority[domain.PriorityNormal])
		require.EqualValues(t, 4, stats.ByType[domain.RequestTypeTitleDeedIssuance])
	})

	t.Run("parcel delete clears the reference", func(t *testing.T) {
		deleted, err := pgSQL.DeleteParcel(ctx, parcel.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		got, err := pgSQL.RequestByID(ctx, urgent.ID)
		require.NoError(t, err)
		require.Nil(t, got.ParcelID)
	})
}
