package relay

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"greencross/internal/domain"
)

type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type SMTPRelay struct {
	sender Sender
	from   string
	logger *zap.Logger
}

func NewSMTPRelay(sender Sender, from string, logger *zap.Logger) *SMTPRelay {
	return &SMTPRelay{sender: sender, from: from, logger: logger}
}

func (r *SMTPRelay) Send(ctx context.Context, n domain.Notification) error {
	msg, err := r.buildMessage(n)
	if err != nil {
		return err
	}

	if err := r.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending preorder email: %w", err)
	}

	r.logger.Info("preorder email sent",
		zap.String("notificationId", n.ID),
		zap.String("to", n.To),
	)
	return nil
}

func (r *SMTPRelay) buildMessage(n domain.Notification) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(r.from); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(n.To); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	if n.ReplyTo != "" {
		if err := msg.ReplyTo(n.ReplyTo); err != nil {
			// Reply-To is best effort.
			r.logger.Warn("dropping reply-to", zap.String("replyTo", n.ReplyTo), zap.Error(err))
		}
	}
	msg.Subject(n.Subject)
	msg.SetDateWithValue(n.CreatedAt)
	msg.SetBodyString(mail.TypeTextPlain, n.Body)

	return msg, nil
}
