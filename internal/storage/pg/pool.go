package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/gazette-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/gazette-hunter/pkg/config/env"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	backendName         = "postgres"
	defaultQueryTimeout = 10 * time.Second
)

type PoolConfig struct {
	ConnStr      string
	QueryTimeout time.Duration
}

// LoadEnv returns nil when no connection string is configured.
func LoadEnv() (*PoolConfig, error) {
	connStr := env.String("POSTGRES_CONNECTION_STRING", "")
	if connStr == "" {
		return nil, nil
	}

	timeout, err := env.Duration("POSTGRES_QUERY_TIMEOUT", defaultQueryTimeout)
	if err != nil {
		return nil, apperr.NewConfigurationWrap("invalid postgres query timeout", err)
	}

	return &PoolConfig{ConnStr: connStr, QueryTimeout: timeout}, nil
}

type ConnectionPool struct {
	conn         *pgxpool.Pool
	queryTimeout time.Duration
}

func NewConnectionPool(ctx context.Context, cfg PoolConfig) (*ConnectionPool, error) {
	dbpool, err := pgxpool.New(ctx, cfg.ConnStr)
	if err != nil {
		return nil, apperr.NewConfigurationWrap("failed to create postgres pool", err)
	}

	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}

	return &ConnectionPool{conn: dbpool, queryTimeout: timeout}, nil
}

func (p *ConnectionPool) GetConn() *pgxpool.Pool {
	return p.conn
}

func (p *ConnectionPool) Close() {
	p.conn.Close()
}

func (p *ConnectionPool) Ping(ctx context.Context) error {
	c, err := p.conn.Acquire(ctx)
	if err != nil {
		return err
	}
	defer c.Release()
	return c.Ping(ctx)
}

func (p *ConnectionPool) newQueryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, p.queryTimeout)
}

// classify maps driver failures onto the backend error kinds.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &apperr.BackendError{Backend: backendName, Status: 500, Reason: pgErr.Code + ": " + pgErr.Message}
	}
	return &apperr.BackendUnavailableError{Backend: backendName, Err: err}
}
