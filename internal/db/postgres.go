package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"promo-orders/internal/config/configs"
)

// NewPostgresPool creates a pool for cfg.Addr and pings it with a 5 second
// timeout. A positive cfg.MaxConns caps the pool size. If pinging fails the
// pool is closed and the error returned. The caller closes the pool.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolConf.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
