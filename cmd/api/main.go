package main

import (
	"context"
	"errors"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"sales_analytics/internal/application/analytics"
	"sales_analytics/internal/config"
	"sales_analytics/internal/domain/repository"
	"sales_analytics/internal/infrastructure/encoding/avro"
	ginserver "sales_analytics/internal/infrastructure/http/gin"
	"sales_analytics/internal/infrastructure/http/seed"
	kafkainfra "sales_analytics/internal/infrastructure/messaging/kafka"
	"sales_analytics/internal/infrastructure/metrics"
	"sales_analytics/internal/infrastructure/persistence/file"
	"sales_analytics/internal/infrastructure/persistence/memory"
	"sales_analytics/internal/infrastructure/persistence/postgres"
	"sales_analytics/internal/interfaces/http/handler"
	"sales_analytics/internal/interfaces/http/middleware"
	"sales_analytics/internal/interfaces/http/router"
	"sales_analytics/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config failed: %v", err)
	}

	baseLog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		stdlog.Fatalf("init logger failed: %v", err)
	}
	defer baseLog.Sync()
	log := baseLog.WithFields(logger.String("app", cfg.App.Name))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := newSeedSource(ctx, cfg, log)
	if err != nil {
		log.Fatal("seed source setup failed", logger.Error(err))
	}
	defer closeSource()

	store, err := memory.NewOrderStore(ctx, source)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Fatal("seed data missing", logger.String("source", source.Name()), logger.Error(err))
		}
		log.Fatal("load seed data failed", logger.Error(err))
	}
	log.Info("order store loaded", logger.String("source", source.Name()), logger.Int("records", store.Len()))

	reg := metrics.NewRegistry()
	reg.SetStoreOrders(store.Len())

	opts := []analytics.Option{analytics.WithMetrics(reg)}

	var producer *kafkainfra.OrderProducer
	if cfg.Kafka.Enabled {
		producer, err = kafkainfra.NewOrderProducer(cfg.Kafka, log)
		if err != nil {
			log.Fatal("kafka producer setup failed", logger.Error(err))
		}
		defer producer.Close(context.Background())

		encoder, err := avro.NewOrderCreatedEncoder()
		if err != nil {
			log.Fatal("avro encoder setup failed", logger.Error(err))
		}
		opts = append(opts, analytics.WithPublisher(kafkainfra.NewOrderEventPublisher(producer, encoder)))
	}

	svc := analytics.NewService(store, log, opts...)

	if cfg.Kafka.Enabled && cfg.Kafka.IngestTopic != "" {
		consumer := kafkainfra.NewOrderConsumer(cfg.Kafka, svc, log)
		defer consumer.Close()
		go func() {
			if err := consumer.Start(ctx); err != nil {
				log.Error("kafka consumer stopped", logger.Error(err))
			}
		}()
	}

	engine := ginserver.NewEngine(cfg.App.Env)
	engine.Use(middleware.RequestID(), middleware.AccessLog(log, reg))
	if cfg.RateLimit.RPS > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		limiter.StartCleanup(ctx, middleware.DefaultCleanupInterval)
		engine.Use(limiter.Middleware())
	}
	router.RegisterRoutes(engine, router.Handlers{
		Orders:    handler.NewOrderHandler(svc),
		Analytics: handler.NewAnalyticsHandler(svc),
		Admin:     handler.NewAdminHandler(svc),
		Metrics:   reg.Handler(),
	})

	server := ginserver.NewServer(cfg.Server, engine, log)
	if err := server.Run(ctx); err != nil {
		log.Fatal("server run failed", logger.Error(err))
	}
	log.Info("server stopped")
}

func newSeedSource(ctx context.Context, cfg *config.Config, log logger.Logger) (repository.SeedSource, func(), error) {
	switch cfg.Seed.Source {
	case config.SeedSourceHTTP:
		return seed.NewClient(cfg.Seed.HTTP, log), func() {}, nil
	case config.SeedSourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB, log)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewOrderSource(pool, cfg.DB.Table), pool.Close, nil
	default:
		return file.NewOrderSource(cfg.Seed.Path), func() {}, nil
	}
}
