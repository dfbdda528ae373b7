package database

import (
	"context"
	"fmt"
	"sync"

	"cardhub/internal/config"
	"cardhub/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Manager owns the process's single connection pool. The pool is created
// lazily on first Acquire and rebuilt transparently if it is found dead,
// so callers only ever see a live pool or a connection error.
type Manager struct {
	cfg config.DatabaseConfig
	log zerolog.Logger

	mu   sync.Mutex
	pool *pgxpool.Pool
}

func NewManager(cfg config.DatabaseConfig, log zerolog.Logger) *Manager {
	return &Manager{cfg: cfg, log: log}
}

// Acquire returns a live pool, establishing or re-establishing the
// connection as needed. Establishment failures wrap model.ErrConnection.
func (m *Manager) Acquire(ctx context.Context) (*pgxpool.Pool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pool != nil {
		if err := m.pool.Ping(ctx); err == nil {
			return m.pool, nil
		}
		m.log.Warn().Msg("database connection lost, reconnecting")
		m.pool.Close()
		m.pool = nil
	}

	pool, err := NewPool(ctx, m.cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrConnection, err)
	}

	m.pool = pool
	m.log.Info().
		Str("host", m.cfg.Host).
		Str("database", m.cfg.Name).
		Msg("connected to PostgreSQL")
	return m.pool, nil
}

// Close releases the pool. Safe to call when nothing was ever acquired.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pool != nil {
		m.pool.Close()
		m.pool = nil
	}
}

// NewPool builds and pings a pgx pool from the database configuration.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.MaxIdleConns)
	poolConfig.MaxConnIdleTime = cfg.ConnMaxIdleTime
	poolConfig.MaxConnLifetime = cfg.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}
