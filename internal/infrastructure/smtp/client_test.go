package smtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greencross/internal/config"
)

func TestNewClient(t *testing.T) {
	client, err := NewClient(config.SMTPConfig{Host: "smtp.example.com", Port: 2525, User: "mailer", Password: "secret"})
	require.NoError(t, err)
	assert.NotNil(t, client)

	anonymous, err := NewClient(config.SMTPConfig{Host: "localhost", Port: 25})
	require.NoError(t, err)
	assert.NotNil(t, anonymous)
}

func TestNewClient_Invalid(t *testing.T) {
	_, err := NewClient(config.SMTPConfig{Host: "", Port: 587})
	assert.Error(t, err)

	_, err = NewClient(config.SMTPConfig{Host: "smtp.example.com", Port: 70000})
	assert.Error(t, err)
}
