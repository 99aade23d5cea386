package smtp

import (
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"

	"greencross/internal/config"
)

// NewClient builds the outbound mail client. STARTTLS is used when the server
// offers it; PLAIN auth only when a user is configured.
func NewClient(cfg config.SMTPConfig) (*mail.Client, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp host is required")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client for %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	return client, nil
}
