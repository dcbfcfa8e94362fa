package mail_test

import (
	"context"
	"landregistry/pkg/domain"
	"landregistry/pkg/logger"
	"landregistry/pkg/mail"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPasswordReset_AppendsToken(t *testing.T) {
	msg := mail.PasswordReset("john@example.com", "John", "http://localhost:5173/reset-password?lang=en",
		"abc-123", time.Hour)

	require.Equal(t, "john@example.com", msg.To)
	require.Contains(t, msg.Body, "http://localhost:5173/reset-password?lang=en&token=abc-123")
	require.Contains(t, msg.Body, "1h0m0s")
}

func TestVerificationCode(t *testing.T) {
	msg := mail.VerificationCode("a@example.com", "Alice", "042137", 10*time.Minute)
	require.Contains(t, msg.Body, "042137")
}

func TestRequestDecision(t *testing.T) {
	r := domain.Request{
		RequestNumber:   "REQ-2025-000007",
		RequestType:     domain.RequestTypeLandRegistration,
		Status:          domain.RequestStatusRejected,
		RejectionReason: "survey plan missing",
	}

	msg := mail.RequestDecision("alice@example.com", "Alice", r)
	require.Equal(t, "Request REQ-2025-000007 rejected", msg.Subject)
	require.Contains(t, msg.Body, "land registration request REQ-2025-000007 has been rejected")
	require.Contains(t, msg.Body, "Reason: survey plan missing")

	r.Status = domain.RequestStatusApproved
	msg = mail.RequestDecision("alice@example.com", "Alice", r)
	require.NotContains(t, msg.Body, "Reason:")
}

func TestJobArgs(t *testing.T) {
	args := mail.JobArgs{Message: mail.Message{To: "x@example.com"}}
	require.Equal(t, "SendMail", args.Kind())
	require.Equal(t, mail.Queue, args.InsertOpts().Queue)
}

func TestLogMailer(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	require.NoError(t, mail.LogMailer{}.Send(context.Background(), mail.Message{To: "x@example.com"}))
}
