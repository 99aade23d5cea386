package preorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"greencross/internal/config"
	"greencross/internal/preorder/relay"
)

func TestNewRelay(t *testing.T) {
	base := config.Config{
		SMTP:  config.SMTPConfig{Host: "smtp.example.com", Port: 587, From: "no-reply@greencross.local", To: "orders@greencross.example"},
		Kafka: config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "greencross.preorders"},
	}

	tests := []struct {
		driver   string
		expected interface{}
	}{
		{driver: relay.DriverSMTP, expected: &relay.SMTPRelay{}},
		{driver: relay.DriverKafka, expected: &relay.KafkaRelay{}},
		{driver: relay.DriverLog, expected: &relay.LogRelay{}},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			cfg := base
			cfg.Relay.Driver = tt.driver

			r, closeRelay, err := NewRelay(&cfg, zap.NewNop())
			require.NoError(t, err)
			assert.IsType(t, tt.expected, r)
			assert.NoError(t, closeRelay())
		})
	}
}

func TestNewRelay_UnknownDriver(t *testing.T) {
	cfg := config.Config{Relay: config.RelayConfig{Driver: "fax"}}

	_, _, err := NewRelay(&cfg, zap.NewNop())

	assert.Error(t, err)
}

func TestNewModule(t *testing.T) {
	cfg := config.Config{
		Relay: config.RelayConfig{Driver: relay.DriverLog},
		SMTP:  config.SMTPConfig{To: "orders@greencross.example"},
	}

	ctrl, closeRelay, err := NewModule(&cfg, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, ctrl)
	assert.NoError(t, closeRelay())
}
