package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"daybook"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"daybook"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Import struct {
		// BatchSize is how many voucher blocks are committed between
		// progress checkpoints on the upload row.
		BatchSize int `envconfig:"IMPORT_BATCH_SIZE" default:"10"`
		// AuditDir is where raw parsed block dumps are kept. Files in
		// here are never deleted by the service.
		AuditDir string `envconfig:"IMPORT_AUDIT_DIR" default:"./audit"`
		// Strict sends ambiguous short all-caps particulars to
		// unclassified instead of defaulting them to ledger lines.
		Strict bool `envconfig:"IMPORT_STRICT_CLASSIFY" default:"false"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
