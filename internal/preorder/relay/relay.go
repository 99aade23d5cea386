package relay

import (
	"context"
	"fmt"
	"time"

	"greencross/internal/domain"
	"greencross/internal/dto"
)

const (
	DriverSMTP  = "smtp"
	DriverKafka = "kafka"
	DriverLog   = "log"
)

// Relay delivers a composed notification to the business.
type Relay interface {
	Send(ctx context.Context, n domain.Notification) error
}

func ValidDriver(driver string) bool {
	switch driver {
	case DriverSMTP, DriverKafka, DriverLog:
		return true
	}
	return false
}

func UnknownDriverError(driver string) error {
	return fmt.Errorf("unknown relay driver %q", driver)
}

// ToEvent is the wire form shared by the kafka and log relays.
func ToEvent(n domain.Notification) dto.NotificationEvent {
	return dto.NotificationEvent{
		ID:        n.ID,
		To:        n.To,
		ReplyTo:   n.ReplyTo,
		Subject:   n.Subject,
		Body:      n.Body,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
}
