package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

type DatabaseConfig struct {
	Host            string        `env:"PGHOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"PGUSER" envDefault:"postgres"`
	Password        string        `env:"PGPASSWORD" envDefault:"postgres"`
	Name            string        `env:"PGDATABASE" envDefault:"cardhub"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

type CatalogConfig struct {
	// BulkFilePath points at the Scryfall default-cards JSON dump.
	BulkFilePath string        `env:"CATALOG_BULK_FILE" envDefault:"default-cards.json"`
	SyncInterval time.Duration `env:"CATALOG_SYNC_INTERVAL" envDefault:"0"`
	ScryfallURL  string        `env:"SCRYFALL_URL" envDefault:"https://api.scryfall.com/"`
}

type LogConfig struct {
	Pretty bool `env:"LOG_PRETTY" envDefault:"true"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
