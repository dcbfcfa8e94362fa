package worker_test

import (
	"context"
	"errors"
	"fmt"
	"landregistry/internal/worker"
	"landregistry/pkg/logger"
	"landregistry/pkg/mail"
	mockmail "landregistry/pkg/mail/mock"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeMailJob(id int64, msg mail.Message) *river.Job[mail.JobArgs] {
	return &river.Job[mail.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   mail.JobArgs{Message: msg},
	}
}

var message = mail.Message{ //nolint: gochecknoglobals
	To:      "jean.citizen@example.com",
	Subject: "Your verification code",
	Body:    "123456",
}

func TestMailWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mockmail.NewMockMailer(ctrl)
	w := worker.NewMailWorker(mailer, nil)

	mailer.EXPECT().Send(gomock.Any(), message).Return(nil)

	require.NoError(t, w.Work(context.Background(), makeMailJob(1, message)))
}

func TestMailWorker_Work_PermanentCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mockmail.NewMockMailer(ctrl)
	w := worker.NewMailWorker(mailer, nil)

	mailer.EXPECT().Send(gomock.Any(), message).
		Return(fmt.Errorf("%w: 550 mailbox unavailable", mail.ErrPermanent))

	err := w.Work(context.Background(), makeMailJob(2, message))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestMailWorker_Work_TemporaryRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mockmail.NewMockMailer(ctrl)
	w := worker.NewMailWorker(mailer, nil)

	mailer.EXPECT().Send(gomock.Any(), message).Return(errors.New("421 try again later"))

	err := w.Work(context.Background(), makeMailJob(3, message))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr))
}

func TestMailWorker_Work_Throttled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mockmail.NewMockMailer(ctrl)
	// one token, refilled every 200ms
	w := worker.NewMailWorker(mailer, rate.NewLimiter(rate.Every(200*time.Millisecond), 1))

	mailer.EXPECT().Send(gomock.Any(), message).Return(nil).Times(3)

	start := time.Now()
	for i := range 3 {
		require.NoError(t, w.Work(context.Background(), makeMailJob(int64(i), message)))
	}
	require.GreaterOrEqual(t, time.Since(start), 350*time.Millisecond)
}

func TestMailWorker_Work_ContextCancelledWhileWaiting(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mockmail.NewMockMailer(ctrl)
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	require.True(t, limiter.Allow())
	w := worker.NewMailWorker(mailer, limiter)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.Error(t, w.Work(ctx, makeMailJob(4, message)))
}
