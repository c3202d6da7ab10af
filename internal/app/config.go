package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// envPrefix — общий префикс переменных окружения сервиса.
const envPrefix = "SALESOPS_"

// Config описывает настройки запуска приложения. Все поля читаются из
// окружения с префиксом SALESOPS_.
type Config struct {
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	MetricsAddr string `env:"METRICS_ADDR" envDefault:":9090"`

	// PostgresDSN пустой — работаем на in-memory хранилище.
	PostgresDSN         string `env:"POSTGRES_DSN"`
	PostgresAutoMigrate bool   `env:"POSTGRES_AUTO_MIGRATE" envDefault:"true"`

	// KafkaBrokers пустой — события заказов не публикуются.
	KafkaBrokers string `env:"KAFKA_BROKERS"`

	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	OutboxPollInterval time.Duration `env:"OUTBOX_POLL_INTERVAL" envDefault:"1s"`
	OutboxBatchSize    int           `env:"OUTBOX_BATCH_SIZE" envDefault:"100"`
	OutboxMaxAttempts  int           `env:"OUTBOX_MAX_ATTEMPTS" envDefault:"3"`
	OutboxRetryDelay   time.Duration `env:"OUTBOX_RETRY_DELAY" envDefault:"50ms"`
}

// DefaultConfig возвращает конфигурацию с дефолтными значениями без чтения
// окружения. JWTSecret остаётся пустым и должен быть задан вызывающим.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:            ":8080",
		MetricsAddr:         ":9090",
		PostgresAutoMigrate: true,
		TokenTTL:            24 * time.Hour,
		BcryptCost:          10,
		OutboxPollInterval:  time.Second,
		OutboxBatchSize:     100,
		OutboxMaxAttempts:   3,
		OutboxRetryDelay:    50 * time.Millisecond,
	}
}

// ParseConfig читает конфигурацию из окружения.
func ParseConfig() (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: envPrefix})
	if err != nil {
		return Config{}, fmt.Errorf("parse environment config: %w", err)
	}
	return cfg, nil
}

// Validate проверяет обязательные параметры перед запуском.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("%sJWT_SECRET is required", envPrefix)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive, got %s", c.TokenTTL)
	}
	if c.HTTPAddr == "" {
		return fmt.Errorf("http addr is required")
	}
	return nil
}
