package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "github.com/rafaelleal24/commerce/docs"
	"github.com/rafaelleal24/commerce/internal/adapters/config"
	"github.com/rafaelleal24/commerce/internal/adapters/http"
	"github.com/rafaelleal24/commerce/internal/adapters/http/controllers"
	"github.com/rafaelleal24/commerce/internal/adapters/metrics"
	"github.com/rafaelleal24/commerce/internal/adapters/outbox"
	"github.com/rafaelleal24/commerce/internal/adapters/redis"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/logger"
	"github.com/rafaelleal24/commerce/internal/core/service"
)

// @title       Commerce API
// @version     1.0
// @description Catalog, points and order placement API

// @host     localhost:8080
// @BasePath /

//go:generate swag init -d ../.. -g cmd/http/main.go -o ../../docs --parseInternal

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(logger.Options{
		Endpoint:       cfg.Logger.Endpoint,
		ServiceName:    cfg.Logger.ServiceName,
		ServiceVersion: cfg.Logger.ServiceVersion,
		Level:          logger.ParseLevel(cfg.Logger.Level),
		Production:     cfg.Logger.IsProduction,
	}); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	// cancellable context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize the configured store
	store, err := newStorage(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "Failed to initialize storage", err, map[string]any{"driver": cfg.Storage.Driver})
	}
	defer store.close()

	// initialize redis connection
	redisClient, err := redis.NewConnection(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
	}
	defer redisClient.Close()
	logger.Info(ctx, "Connected to Redis", nil)

	// initialize the outbox destination
	broker, brokerHealth, err := newBroker(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "Failed to initialize broker", err, map[string]any{"driver": cfg.Broker.Driver})
	}
	defer broker.Close()

	// metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(cfg.Metrics, registry)

	// caches and rate limiter
	orderCache := redis.NewCache[domain.Order](redisClient, "order-cache")
	idempotencyCache := redis.NewCache[service.IdempotencyEntry[domain.Order]](redisClient, "idempotency-cache")
	rateLimiter := redis.NewRateLimiter(redisClient)

	// outbox handler (uses cancellable context)
	outboxHandler := outbox.NewHandler(store.outbox, broker, appMetrics, cfg.Outbox)
	go outboxHandler.Start(ctx)
	logger.Info(ctx, "Outbox handler started", map[string]any{"interval": cfg.Outbox.Interval.String(), "batch_size": cfg.Outbox.BatchSize})

	// services
	userService := service.NewUserService(store.users, store.points, store.txManager)
	pointService := service.NewPointService(store.points, userService, store.txManager)
	brandService := service.NewBrandService(store.brands)
	productService := service.NewProductService(store.products, store.likes, brandService)
	likeService := service.NewLikeService(store.likes, userService, productService)
	idempotencyService := service.NewIdempotencyService[domain.Order](idempotencyCache, service.IdempotencyOptions{
		TTL:          cfg.Cache.IdempotencyTTL,
		LeaseTTL:     cfg.Cache.IdempotencyLeaseTTL,
		PollInterval: cfg.Cache.IdempotencyPollInterval,
		PollTimeout:  cfg.Cache.IdempotencyPollTimeout,
	})
	orderService := service.NewOrderService(store.orders, productService, userService, pointService, orderCache, idempotencyService, store.txManager, appMetrics)

	// controllers
	ctrl := http.Controllers{
		Health: controllers.NewHealthController(cfg.HTTP.HealthTimeout,
			store.health,
			controllers.HealthChecker{Name: "redis", Check: redisClient.Ping},
			brokerHealth,
		),
		Docs:    controllers.NewDocsController(),
		User:    controllers.NewUserController(userService),
		Point:   controllers.NewPointController(pointService),
		Brand:   controllers.NewBrandController(brandService),
		Product: controllers.NewProductController(productService),
		Like:    controllers.NewLikeController(likeService),
		Order:   controllers.NewOrderController(orderService),
	}

	// router
	router := http.NewRouter(ctrl, rateLimiter, appMetrics, appMetrics.Handler(), cfg.HTTP.OrderRateLimit)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]any{"signal": sig.String()})
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := logger.Shutdown(shutdownCtx); err != nil {
			fmt.Println("logger shutdown error: " + err.Error())
		}
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{
		"addr":    cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port,
		"storage": cfg.Storage.Driver,
		"broker":  cfg.Broker.Driver,
	})
	err = router.ListenAndServe(ctx, cfg.HTTP)
	if err != nil {
		logger.Fatal(ctx, "Failed to start HTTP server", err, nil)
	}
}
