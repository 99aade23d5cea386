package relay

import (
	"context"

	"go.uber.org/zap"

	"greencross/internal/domain"
)

// LogRelay only logs the notification. Used for local development.
type LogRelay struct {
	logger *zap.Logger
}

func NewLogRelay(logger *zap.Logger) *LogRelay {
	return &LogRelay{logger: logger}
}

func (r *LogRelay) Send(ctx context.Context, n domain.Notification) error {
	event := ToEvent(n)
	r.logger.Info("preorder notification",
		zap.String("notificationId", event.ID),
		zap.String("to", event.To),
		zap.String("replyTo", event.ReplyTo),
		zap.String("subject", event.Subject),
		zap.String("body", event.Body),
		zap.String("createdAt", event.CreatedAt),
	)
	return nil
}
