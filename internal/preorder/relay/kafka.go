package relay

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"greencross/internal/domain"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaRelay hands the notification to a downstream mailer through a topic.
type KafkaRelay struct {
	writer MessageWriter
	logger *zap.Logger
}

func NewKafkaRelay(writer MessageWriter, logger *zap.Logger) *KafkaRelay {
	return &KafkaRelay{writer: writer, logger: logger}
}

func (r *KafkaRelay) Send(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(ToEvent(n))
	if err != nil {
		return fmt.Errorf("encoding notification: %w", err)
	}

	err = r.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.ID),
		Value: payload,
		Time:  n.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("publishing notification: %w", err)
	}

	r.logger.Info("preorder notification published", zap.String("notificationId", n.ID))
	return nil
}
