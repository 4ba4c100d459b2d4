package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/snowflake"

	"promo-orders/internal/adapter/http"
	"promo-orders/internal/adapter/kafka"
	"promo-orders/internal/adapter/notify"
	"promo-orders/internal/adapter/postgres"
	"promo-orders/internal/adapter/redis"
	"promo-orders/internal/adapter/usecase"
	"promo-orders/internal/config"
	"promo-orders/internal/core/domain"
	"promo-orders/internal/core/port"
	"promo-orders/internal/db"
)

// main loads configuration, prepares the database, wires repositories and
// use cases, then serves HTTP until SIGINT or SIGTERM. A background sweep
// cancels unpaid orders past their expiry.
func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return 1
	}
	logger := cfg.Log.New(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return 1
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return 1
	}
	defer pool.Close()

	catalogRepo := postgres.NewCatalogRepository(pool)
	var catalogSource port.CatalogRepository = catalogRepo
	var cache *redis.CatalogCache
	if cfg.Redis.Addr != "" {
		rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return 1
		}
		defer rdb.Close()
		cache = redis.NewCatalogCache(catalogRepo, rdb, cfg.Redis.CatalogTTL, logger)
		catalogSource = cache
		logger.Info("catalog cache enabled", slog.String("addr", cfg.Redis.Addr))
	}

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, cfg.Pricing.Currency); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return 1
		}
		// A listing cached before the seed would hide the new catalog until it expires.
		if cache != nil {
			if err = cache.Invalidate(ctx); err != nil {
				logger.Warn("invalidate catalog cache", slog.Any("error", err))
			}
		}
	}

	node, err := snowflake.NewNode(cfg.Orders.NodeID)
	if err != nil {
		logger.Error("order number generator", slog.Any("error", err))
		return 1
	}

	var events port.EventPublisher
	if cfg.Kafka.Enabled() {
		pub := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer func() {
			if err := pub.Close(); err != nil {
				logger.Error("close event publisher", slog.Any("error", err))
			}
		}()
		events = pub
	}

	catalog := usecase.NewCatalogUseCase(catalogSource)
	pricing := usecase.NewPricing(catalog, catalogRepo, usecase.PricingConfig{
		TaxRate:           cfg.Pricing.TaxRate,
		Currency:          cfg.Pricing.Currency,
		DefaultFeePercent: cfg.Pricing.DefaultFeePercent,
	})
	orders := usecase.NewOrderUseCase(
		postgres.NewOrderRepository(pool),
		catalog,
		pricing,
		events,
		node,
		usecase.OrderConfig{DraftTTL: cfg.Orders.DraftTTL, PaymentTTL: cfg.Orders.PaymentTTL},
		logger,
	)
	ads := usecase.NewAdRequestUseCase(postgres.NewAdRequestRepository(pool), notify.NewLogNotifier(logger), logger)
	// No platform API clients are configured yet, so connections report
	// ErrPlatformNotConfigured while OAuth URLs still work.
	tracking := usecase.NewTrackingUseCase(postgres.NewTrackingRepository(pool), nil, map[domain.AdPlatform]string{
		domain.AdPlatformFacebook: cfg.Ads.FacebookAppID,
		domain.AdPlatformGoogle:   cfg.Ads.GoogleClientID,
		domain.AdPlatformTikTok:   cfg.Ads.TikTokAppID,
	}, logger)
	email := usecase.NewEmailUseCase(postgres.NewEmailRepository(pool), nil, logger)

	if cfg.Orders.ExpirySweepInterval > 0 {
		go sweepExpired(ctx, orders, cfg.Orders.ExpirySweepInterval, logger)
	}

	handler := httpadapter.NewHandler(httpadapter.Services{
		Orders:   orders,
		Catalog:  catalog,
		Ads:      ads,
		Tracking: tracking,
		Email:    email,
	}, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
	case err = <-errCh:
		logger.Error("server error", slog.Any("error", err))
		exitCode = 1
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return 1
	}
	logger.Info("server gracefully stopped")
	return exitCode
}

func sweepExpired(ctx context.Context, orders port.OrderUseCase, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := orders.ExpireOrders(ctx, now)
			if err != nil {
				logger.Error("expire orders", slog.Any("error", err))
				continue
			}
			if n > 0 {
				logger.Info("expired unpaid orders", slog.Int("count", n))
			}
		}
	}
}
