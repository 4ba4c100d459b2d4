package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port"
	"promo-orders/internal/metrics"
)

const typesKey = "promo:catalog:types"

// CatalogCache decorates a port.CatalogRepository, keeping the active
// catalog listing in Redis for ttl. Other lookups go straight to the
// repository. Redis failures fall back to the repository.
type CatalogCache struct {
	port.CatalogRepository

	rdb    redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
	group  singleflight.Group
}

// NewCatalogCache wraps repo.
func NewCatalogCache(repo port.CatalogRepository, rdb redis.Cmdable, ttl time.Duration, logger *slog.Logger) *CatalogCache {
	return &CatalogCache{CatalogRepository: repo, rdb: rdb, ttl: ttl, logger: logger}
}

// NewClient connects to Redis and checks the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctxPing).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func (c *CatalogCache) ListActiveTypes(ctx context.Context) ([]domain.PromotionType, error) {
	raw, err := c.rdb.Get(ctx, typesKey).Bytes()
	switch {
	case err == nil:
		types, err := decodeTypes(raw)
		if err == nil {
			metrics.CatalogCacheHits.Inc()
			return types, nil
		}
		c.logger.Warn("decode cached catalog", slog.Any("error", err))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("read cached catalog", slog.Any("error", err))
	}
	metrics.CatalogCacheMiss.Inc()

	v, err, _ := c.group.Do(typesKey, func() (any, error) {
		types, err := c.CatalogRepository.ListActiveTypes(ctx)
		if err != nil {
			return nil, err
		}
		if raw, err := json.Marshal(types); err == nil {
			if err = c.rdb.Set(ctx, typesKey, raw, c.ttl).Err(); err != nil {
				c.logger.Warn("cache catalog", slog.Any("error", err))
			}
		}
		return types, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.PromotionType), nil
}

// Invalidate drops the cached listing.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, typesKey).Err()
}

func decodeTypes(raw []byte) ([]domain.PromotionType, error) {
	var types []domain.PromotionType
	if err := json.Unmarshal(raw, &types); err != nil {
		return nil, err
	}
	return types, nil
}
