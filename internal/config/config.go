package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/utils"
)

const (
	OTPModeDemo = "demo"
)

type Config struct {
	Port            string        `env:"PORT"             env-default:"8080"`
	Environment     string        `env:"ENVIRONMENT"      env-default:"development"`
	LogLevelName    string        `env:"LOG_LEVEL"        env-default:"info"`
	RedisURL        string        `env:"REDIS_URL"`
	SessionTTL      time.Duration `env:"SESSION_TTL"      env-default:"24h"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"30s"`
	OTPMode         string        `env:"OTP_MODE"         env-default:"demo"`

	Events EventsConfig

	// LogLevel is parsed from LogLevelName by LoadConfig
	LogLevel slog.Level `env:"-"`
}

type EventsConfig struct {
	KafkaBrokers []string `env:"KAFKA_BROKERS" env-separator:","`
	Topic        string   `env:"EVENTS_TOPIC"  env-default:"learning-activity"`
}

// LoadConfig reads an optional .env file (path from ENV_FILE, default
// ".env") and then decodes the environment. Real environment variables win
// over values from the file.
func LoadConfig() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load %s: %w", envFile, err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	cfg.LogLevel = utils.ParseLevel(cfg.LogLevelName)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	if c.OTPMode != OTPModeDemo {
		return fmt.Errorf("unsupported OTP_MODE %q", c.OTPMode)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
