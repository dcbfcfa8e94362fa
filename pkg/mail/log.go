package mail

import (
	"context"
	"landregistry/pkg/logger"

	"go.uber.org/zap"
)

// LogMailer writes messages to the logger instead of sending them. It is used
// in development, where no relay is configured.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, msg Message) error {
	logger.Info(ctx, "mail delivered to log",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body))

	return nil
}
