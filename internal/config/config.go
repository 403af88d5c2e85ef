package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddress    string        `mapstructure:"SERVER_ADDRESS"`
	PostgresConn     string        `mapstructure:"POSTGRES_CONN"`
	PostgresDatabase string        `mapstructure:"POSTGRES_DATABASE"`
	MigrationsPath   string        `mapstructure:"MIGRATIONS_PATH"`
	KafkaBrokers     string        `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic       string        `mapstructure:"KAFKA_TOPIC"`
	TrackingMode     string        `mapstructure:"TRACKING_MODE"`
	TrackingInterval time.Duration `mapstructure:"TRACKING_INTERVAL"`
	ViewIdleTimeout  time.Duration `mapstructure:"VIEW_IDLE_TIMEOUT"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	LogFormat        string        `mapstructure:"LOG_FORMAT"`
}

// every key needs a default so AutomaticEnv picks it up during Unmarshal
var defaults = map[string]any{
	"SERVER_ADDRESS":    ":8080",
	"POSTGRES_CONN":     "",
	"POSTGRES_DATABASE": "shiplyne",
	"MIGRATIONS_PATH":   "file://migrations/reference-data",
	"KAFKA_BROKERS":     "",
	"KAFKA_TOPIC":       "shiplyne.events",
	"TRACKING_MODE":     "poll",
	"TRACKING_INTERVAL": "5s",
	"VIEW_IDLE_TIMEOUT": "10m",
	"LOG_LEVEL":         "info",
	"LOG_FORMAT":        "text",
}

// LoadConfig reads an optional .env file from path. Environment variables win over the file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config.LoadConfig: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.TrackingMode {
	case "poll", "push":
	default:
		return fmt.Errorf("config: TRACKING_MODE must be poll or push, got %q", c.TrackingMode)
	}
	if c.TrackingInterval <= 0 {
		return fmt.Errorf("config: TRACKING_INTERVAL must be positive, got %s", c.TrackingInterval)
	}
	if c.ViewIdleTimeout <= 0 {
		return fmt.Errorf("config: VIEW_IDLE_TIMEOUT must be positive, got %s", c.ViewIdleTimeout)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown LOG_LEVEL %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("config: LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}

	return nil
}

// Brokers splits KAFKA_BROKERS. An empty result disables publishing.
func (c *Config) Brokers() []string {
	out := make([]string, 0)
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}

	return out
}
