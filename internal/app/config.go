package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Драйверы хранилища.
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Config описывает настройки запуска приложения.
type Config struct {
	HTTPAddr    string
	MetricsAddr string

	StorageDriver       string
	PostgresDSN         string
	PostgresAutoMigrate bool

	KafkaBrokers []string

	ShutdownTimeout time.Duration
}

// DefaultConfig возвращает базовую конфигурацию: HTTP на :8080,
// метрики на :9090, in-memory хранилище.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:            ":8080",
		MetricsAddr:         ":9090",
		StorageDriver:       StorageDriverMemory,
		PostgresAutoMigrate: true,
		ShutdownTimeout:     5 * time.Second,
	}
}

// ConfigFromEnv накладывает переменные окружения на DefaultConfig.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if addr := strings.TrimSpace(os.Getenv("ESHOP_HTTP_ADDR")); addr != "" {
		cfg.HTTPAddr = addr
	}
	if addr := strings.TrimSpace(os.Getenv("ESHOP_METRICS_ADDR")); addr != "" {
		cfg.MetricsAddr = addr
	}
	if driver := strings.TrimSpace(os.Getenv("ESHOP_STORAGE_DRIVER")); driver != "" {
		cfg.StorageDriver = driver
	}
	if dsn := strings.TrimSpace(os.Getenv("ESHOP_POSTGRES_DSN")); dsn != "" {
		cfg.PostgresDSN = dsn
	}
	if raw := strings.TrimSpace(os.Getenv("ESHOP_POSTGRES_AUTO_MIGRATE")); raw != "" {
		autoMigrate, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse ESHOP_POSTGRES_AUTO_MIGRATE: %w", err)
		}
		cfg.PostgresAutoMigrate = autoMigrate
	}
	if brokers := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); brokers != "" {
		cfg.KafkaBrokers = splitBrokers(brokers)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет согласованность конфигурации.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			return fmt.Errorf("postgres storage driver requires ESHOP_POSTGRES_DSN")
		}
	default:
		return fmt.Errorf("unsupported storage driver: %s", c.StorageDriver)
	}
	return nil
}

func splitBrokers(raw string) []string {
	parts := strings.Split(raw, ",")
	brokers := make([]string, 0, len(parts))
	for _, part := range parts {
		if broker := strings.TrimSpace(part); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}
