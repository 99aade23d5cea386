package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"greencross/internal/preorder/relay"
)

type Config struct {
	Server     ServerConfig
	Log        LogConfig
	Relay      RelayConfig
	SMTP       SMTPConfig
	Kafka      KafkaConfig
	Storefront StorefrontConfig
}

type ServerConfig struct {
	Port            int
	AllowedOrigins  []string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level    string
	Encoding string
}

type RelayConfig struct {
	Driver string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type StorefrontConfig struct {
	APIURL    string
	StatePath string
}

// Load reads path when it exists and lets the environment override any key,
// with "." replaced by "_" (server.port is SERVER_PORT). An empty path skips
// the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetInt("server.port"),
			AllowedOrigins:  splitList(v.GetStringSlice("server.allowed_origins")),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			IdleTimeout:     v.GetDuration("server.idle_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Log: LogConfig{
			Level:    v.GetString("log.level"),
			Encoding: v.GetString("log.encoding"),
		},
		Relay: RelayConfig{
			Driver: strings.ToLower(v.GetString("relay.driver")),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("smtp.host"),
			Port:     v.GetInt("smtp.port"),
			User:     v.GetString("smtp.user"),
			Password: v.GetString("smtp.password"),
			From:     v.GetString("smtp.from"),
			To:       v.GetString("smtp.to"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(v.GetStringSlice("kafka.brokers")),
			Topic:   strings.TrimSpace(v.GetString("kafka.topic")),
		},
		Storefront: StorefrontConfig{
			APIURL:    v.GetString("storefront.api_url"),
			StatePath: v.GetString("storefront.state_path"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.idle_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "json")

	v.SetDefault("relay.driver", relay.DriverLog)

	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "no-reply@greencross.local")
	v.SetDefault("smtp.to", "greencrossmgmt@gmail.com")

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "greencross.preorders")

	v.SetDefault("storefront.api_url", "http://localhost:8080")
	v.SetDefault("storefront.state_path", defaultStatePath())
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	if !relay.ValidDriver(c.Relay.Driver) {
		return relay.UnknownDriverError(c.Relay.Driver)
	}

	switch c.Relay.Driver {
	case relay.DriverSMTP:
		if c.SMTP.Host == "" {
			return errors.New("smtp.host is required for the smtp relay")
		}
	case relay.DriverKafka:
		if len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "" {
			return errors.New("kafka.brokers and kafka.topic are required for the kafka relay")
		}
	}

	if c.SMTP.To == "" {
		return errors.New("smtp.to is required")
	}
	return nil
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".greencross", "state.json")
	}
	return filepath.Join(dir, "greencross", "state.json")
}
