package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)
	assert.Equal(t, "log", cfg.Relay.Driver)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "no-reply@greencross.local", cfg.SMTP.From)
	assert.Equal(t, "greencrossmgmt@gmail.com", cfg.SMTP.To)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "http://localhost:8080", cfg.Storefront.APIURL)
	assert.NotEmpty(t, cfg.Storefront.StatePath)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  allowed_origins:
    - https://greencross.example
    - https://admin.greencross.example
log:
  level: debug
  encoding: console
relay:
  driver: smtp
smtp:
  host: smtp.example.com
  port: 2525
  user: mailer
  password: hunter2
storefront:
  state_path: /tmp/greencross.json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://greencross.example", "https://admin.greencross.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.Equal(t, "smtp", cfg.Relay.Driver)
	assert.Equal(t, SMTPConfig{
		Host:     "smtp.example.com",
		Port:     2525,
		User:     "mailer",
		Password: "hunter2",
		From:     "no-reply@greencross.local",
		To:       "greencrossmgmt@gmail.com",
	}, cfg.SMTP)
	assert.Equal(t, "/tmp/greencross.json", cfg.Storefront.StatePath)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\nrelay:\n  driver: log\n")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("RELAY_DRIVER", "KAFKA")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("KAFKA_TOPIC", "orders")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "kafka", cfg.Relay.Driver)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "orders", cfg.Kafka.Topic)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{name: "unknown relay driver", env: map[string]string{"RELAY_DRIVER": "fax"}},
		{name: "smtp without host", env: map[string]string{"RELAY_DRIVER": "smtp"}},
		{name: "kafka without topic", env: map[string]string{"RELAY_DRIVER": "kafka", "KAFKA_TOPIC": " "}},
		{name: "port out of range", env: map[string]string{"SERVER_PORT": "70000"}},
		{name: "malformed file", file: "server: [port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeConfig(t, tt.file)
			}

			cfg, err := Load(path)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList([]string{"a, b", "c"}))
	assert.Nil(t, splitList([]string{" ", ""}))
}
