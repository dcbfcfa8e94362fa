package worker_test

import (
	"context"
	"errors"
	"landregistry/internal/worker"
	mockstorage "landregistry/pkg/storage/mock"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func makeSweepJob(id int64) *river.Job[worker.ExpirySweepArgs] {
	return &river.Job[worker.ExpirySweepArgs]{
		JobRow: &rivertype.JobRow{ID: id},
	}
}

func TestExpiryWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewExpiryWorker(st)

	st.EXPECT().ArchiveExpiredDocuments(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, now time.Time) (int64, error) {
			require.Equal(t, time.UTC, now.Location())
			require.WithinDuration(t, time.Now(), now, time.Minute)

			return 3, nil
		})

	require.NoError(t, w.Work(context.Background(), makeSweepJob(1)))
}

func TestExpiryWorker_Work_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewExpiryWorker(st)

	st.EXPECT().ArchiveExpiredDocuments(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection reset"))

	require.Error(t, w.Work(context.Background(), makeSweepJob(2)))
}

func TestExpirySweepArgs(t *testing.T) {
	args := worker.ExpirySweepArgs{}
	require.Equal(t, "DocumentExpirySweep", args.Kind())
	require.NotEmpty(t, args.InsertOpts().UniqueOpts.ByState)
}
