package redis

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port/mocks"
	"promo-orders/internal/metrics"
)

// fakeRedis answers the commands the cache issues and records writes.
type fakeRedis struct {
	redis.Cmdable

	cached []byte
	getErr error
	setErr error

	setKey string
	setVal []byte
	setTTL time.Duration
	sets   int
	dels   []string
}

func (f *fakeRedis) Get(_ context.Context, _ string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	if f.cached == nil {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(f.cached), nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	f.sets++
	f.setKey, f.setTTL = key, ttl
	f.setVal, _ = value.([]byte)
	return redis.NewStatusResult("OK", f.setErr)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.dels = append(f.dels, keys...)
	return redis.NewIntResult(int64(len(keys)), nil)
}

func testTypes() []domain.PromotionType {
	return []domain.PromotionType{{ID: 1, Slug: "featured-listing", Name: "Featured Listing", CostModel: domain.CostModelFixed, IsActive: true}}
}

func newTestCache(t *testing.T, rdb *fakeRedis) (*CatalogCache, *mocks.MockCatalogRepository) {
	repo := mocks.NewMockCatalogRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCatalogCache(repo, rdb, time.Minute, logger), repo
}

func TestListActiveTypesHit(t *testing.T) {
	raw, err := json.Marshal(testTypes())
	require.NoError(t, err)
	rdb := &fakeRedis{cached: raw}
	cache, _ := newTestCache(t, rdb)
	hits := testutil.ToFloat64(metrics.CatalogCacheHits)

	got, err := cache.ListActiveTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "featured-listing", got[0].Slug)
	assert.Zero(t, rdb.sets)
	assert.Equal(t, hits+1, testutil.ToFloat64(metrics.CatalogCacheHits))
}

func TestListActiveTypesMiss(t *testing.T) {
	cases := []struct {
		name string
		rdb  *fakeRedis
	}{
		{name: "empty", rdb: &fakeRedis{}},
		{name: "redis down", rdb: &fakeRedis{getErr: errors.New("connection refused")}},
		{name: "corrupt entry", rdb: &fakeRedis{cached: []byte("{")}},
		{name: "write fails", rdb: &fakeRedis{setErr: errors.New("read only replica")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cache, repo := newTestCache(t, tc.rdb)
			repo.EXPECT().ListActiveTypes(mock.Anything).Return(testTypes(), nil).Once()
			misses := testutil.ToFloat64(metrics.CatalogCacheMiss)

			got, err := cache.ListActiveTypes(context.Background())
			require.NoError(t, err)
			assert.Equal(t, testTypes(), got)
			assert.Equal(t, misses+1, testutil.ToFloat64(metrics.CatalogCacheMiss))

			require.Equal(t, 1, tc.rdb.sets)
			assert.Equal(t, typesKey, tc.rdb.setKey)
			assert.Equal(t, time.Minute, tc.rdb.setTTL)
			cached, err := decodeTypes(tc.rdb.setVal)
			require.NoError(t, err)
			assert.Equal(t, "featured-listing", cached[0].Slug)
		})
	}
}

func TestListActiveTypesRepositoryError(t *testing.T) {
	rdb := &fakeRedis{}
	cache, repo := newTestCache(t, rdb)
	repo.EXPECT().ListActiveTypes(mock.Anything).Return(nil, errors.New("db down"))

	_, err := cache.ListActiveTypes(context.Background())
	require.Error(t, err)
	assert.Zero(t, rdb.sets)
}

func TestInvalidate(t *testing.T) {
	rdb := &fakeRedis{}
	cache, _ := newTestCache(t, rdb)

	require.NoError(t, cache.Invalidate(context.Background()))
	assert.Equal(t, []string{typesKey}, rdb.dels)
}

func TestCachedCatalogStaysPriceable(t *testing.T) {
	maxQty := 30
	types := []domain.PromotionType{{
		ID:        3,
		Slug:      "ad-creation",
		CostModel: domain.CostModelPercentage,
		Options: []domain.PromotionOption{{
			ID:           30,
			Code:         "managed",
			CostModifier: decimal.RequireFromString("1.25"),
			Metadata:     map[string]any{"fee_percent": 12.5},
			Pricing: []domain.PromotionPricing{
				{ID: 1, MinQuantity: 1, MaxQuantity: &maxQty, UnitPrice: decimal.RequireFromString("99.90")},
			},
		}},
	}}

	raw, err := json.Marshal(types)
	require.NoError(t, err)
	got, err := decodeTypes(raw)
	require.NoError(t, err)

	opt := got[0].Options[0]
	fee, ok := opt.MetadataDecimal("fee_percent")
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("12.5").Equal(fee))
	assert.True(t, decimal.RequireFromString("1.25").Equal(opt.Modifier()))
	assert.True(t, opt.Pricing[0].Contains(30))
	assert.False(t, opt.Pricing[0].Contains(31))
	assert.NoError(t, domain.ValidateTiers(opt.Pricing))
}

func TestDecodeTypesRejectsGarbage(t *testing.T) {
	_, err := decodeTypes([]byte("not json"))
	assert.Error(t, err)
}
