package domain_test

import (
	"encoding/json"
	"landregistry/pkg/domain"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRequest_TransitionTo(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	t.Run("review date is stamped only once", func(t *testing.T) {
		t.Parallel()

		r := domain.Request{Status: domain.RequestStatusPending}
		require.True(t, r.TransitionTo(domain.RequestStatusUnderReview, now))
		require.Equal(t, now, r.ReviewDate)

		require.True(t, r.TransitionTo(domain.RequestStatusOnHold, later))
		require.True(t, r.TransitionTo(domain.RequestStatusUnderReview, later))
		require.Equal(t, now, r.ReviewDate)
		require.True(t, r.CompletionDate.IsZero())
	})

	t.Run("decision stamps completion date", func(t *testing.T) {
		t.Parallel()

		r := domain.Request{Status: domain.RequestStatusUnderReview}
		require.True(t, r.TransitionTo(domain.RequestStatusRejected, later))
		require.Equal(t, later, r.CompletionDate)
	})

	t.Run("terminal states refuse transitions", func(t *testing.T) {
		t.Parallel()

		for _, s := range []domain.RequestStatus{
			domain.RequestStatusApproved, domain.RequestStatusRejected, domain.RequestStatusCancelled,
		} {
			r := domain.Request{Status: s}
			require.False(t, r.TransitionTo(domain.RequestStatusPending, now))
			require.Equal(t, s, r.Status)
		}
	})
}

func TestPriority_Rank(t *testing.T) {
	t.Parallel()

	require.Greater(t, domain.PriorityUrgent.Rank(), domain.PriorityHigh.Rank())
	require.Greater(t, domain.PriorityHigh.Rank(), domain.PriorityNormal.Rank())
	require.Greater(t, domain.PriorityNormal.Rank(), domain.PriorityLow.Rank())
	require.False(t, domain.Priority("SOMEDAY").Valid())
}

func TestFormatRequestNumber(t *testing.T) {
	t.Parallel()

	require.Equal(t, "REQ-2025-000042", domain.FormatRequestNumber(2025, 42))
	require.Equal(t, "REQ-2024-1234567", domain.FormatRequestNumber(2024, 1234567))
}

func TestDocument_VerifyAndExpired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	verifier := domain.UserID(uuid.New())
	d := domain.Document{Status: domain.DocumentStatusPendingVerification}
	d.Verify(verifier, now)

	require.True(t, d.IsVerified)
	require.Equal(t, domain.DocumentStatusActive, d.Status)
	require.Equal(t, verifier, *d.VerifiedBy)
	require.Equal(t, now, d.VerificationDate)

	require.False(t, d.Expired(now))
	d.ExpiryDate = now.Add(-time.Minute)
	require.True(t, d.Expired(now))
}

func TestPageRequest_Normalize(t *testing.T) {
	t.Parallel()

	p := domain.PageRequest{Page: -3, Size: 1000, SortDir: "sideways"}.Normalize()
	require.Equal(t, 0, p.Page)
	require.Equal(t, domain.MaxPageSize, p.Size)
	require.Equal(t, domain.SortDesc, p.SortDir)

	p = domain.PageRequest{Page: 2, SortDir: domain.SortAsc}.Normalize()
	require.Equal(t, domain.DefaultPageSize, p.Size)
	require.Equal(t, 20, p.Offset())

	p = domain.PageRequest{Page: math.MaxInt / 10, Size: 100}.Normalize()
	require.Equal(t, domain.MaxPage, p.Page)
	require.Positive(t, p.Offset())
	require.Equal(t, domain.SortAsc, p.SortDir)
}

func TestNewPage(t *testing.T) {
	t.Parallel()

	page := domain.NewPage([]int{1, 2, 3}, domain.PageRequest{Page: 1, Size: 3}, 7)
	require.Equal(t, 3, page.TotalPages)
	require.Equal(t, 1, page.CurrentPage)
	require.EqualValues(t, 7, page.TotalItems)

	empty := domain.NewPage[int](nil, domain.PageRequest{Size: 10}, 0)
	require.NotNil(t, empty.Items)
	require.Equal(t, 0, empty.TotalPages)
}

func TestOwnershipStatus_Ends(t *testing.T) {
	t.Parallel()

	require.True(t, domain.OwnershipStatusTransferred.Ends())
	require.True(t, domain.OwnershipStatusInactive.Ends())
	require.False(t, domain.OwnershipStatusDisputed.Ends())
}

func TestIdentifiers_JSON(t *testing.T) {
	id := domain.RequestID(uuid.MustParse("8a6e0804-2bd0-4672-b79d-d97027f9071a"))
	parcel := domain.ParcelID(uuid.MustParse("0b1c9a1e-4a52-4d8f-9d3e-2f6a5c7b8e90"))

	b, err := json.Marshal(domain.Request{ID: id, ParcelID: &parcel})
	require.NoError(t, err)
	require.Contains(t, string(b), `"id":"8a6e0804-2bd0-4672-b79d-d97027f9071a"`)
	require.Contains(t, string(b), `"landParcelId":"0b1c9a1e-4a52-4d8f-9d3e-2f6a5c7b8e90"`)

	var got domain.Request
	require.NoError(t, json.Unmarshal(b, &got))
	require.Equal(t, id, got.ID)
	require.Equal(t, parcel, *got.ParcelID)

	require.Error(t, json.Unmarshal([]byte(`{"requesterId":"nope"}`), &got))
}
