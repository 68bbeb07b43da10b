package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/acikkaynak/housing-api-go/app"
	"github.com/acikkaynak/housing-api-go/broker"
	"github.com/acikkaynak/housing-api-go/cache"
	"github.com/acikkaynak/housing-api-go/config"
	"github.com/acikkaynak/housing-api-go/geocode"
	log "github.com/acikkaynak/housing-api-go/pkg/logger"
	"github.com/acikkaynak/housing-api-go/repository"
	"github.com/acikkaynak/housing-api-go/storage"
	"go.uber.org/zap"
)

// @title						Student Housing API
// @version					    1.0
// @description				    Listings, photo uploads and address lookup for student housing
// @BasePath					/
// @schemes					    https http
// @securityDefinitions.apiKey	ApiKeyAuth
// @in							header
// @name						X-Api-Key
func main() {
	cfg := config.MustLoadServer()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	bucket, closeBucket, err := newBucket(ctx, cfg)
	cancel()
	if err != nil {
		log.Logger().Fatal("failed to init storage", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
	}
	defer closeBucket()

	publisher := newPublisher(cfg)
	defer publisher.Close()

	resolver := geocode.NewResolver(geocode.NewClient(geocode.ClientOptions{
		BaseURL:      cfg.Geocoder.BaseURL,
		UserAgent:    cfg.Geocoder.UserAgent,
		CountryCodes: cfg.Geocoder.CountryCodes,
		Timeout:      cfg.Geocoder.Timeout,
	}), cfg.Geocoder.Country)

	deps := app.Dependencies{
		Config:    cfg,
		Bucket:    bucket,
		Store:     repository.New(bucket, cfg.Storage.ListingsKey),
		Resolver:  resolver,
		Publisher: publisher,
	}
	if cfg.Redis.Addr != "" {
		cacheRepo := cache.NewRedisRepository(cfg.Redis.Addr, cfg.Redis.Password)
		if err := cacheRepo.Ping(); err != nil {
			log.Logger().Warn("redis is not reachable yet", zap.Error(err))
		}
		defer cacheRepo.Close()
		deps.Cache = cacheRepo
	}

	application := app.New(deps)
	application.Register()

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT)
	signal.Notify(c, syscall.SIGTERM)

	go func() {
		_ = <-c
		log.Logger().Info("application gracefully shutting down..")
		_ = application.Shutdown()
	}()

	log.Logger().Info("starting http server",
		zap.String("addr", cfg.HTTP.Addr),
		zap.String("storage", cfg.Storage.Backend))
	if err := application.Listen(cfg.HTTP.Addr); err != nil {
		log.Logger().Panic("app error", zap.Error(err))
	}
}

func newBucket(ctx context.Context, cfg *config.Config) (storage.Bucket, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		bucket, err := storage.NewPostgresBucket(ctx, cfg.Storage.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return bucket, bucket.Close, nil
	case config.BackendMemory:
		log.Logger().Warn("using in-memory storage, data is lost on restart")
		return storage.NewMemoryBucket(), func() {}, nil
	default:
		bucket, err := storage.NewMinioBucket(ctx, storage.MinioOptions{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
		})
		if err != nil {
			return nil, nil, err
		}
		return bucket, func() {}, nil
	}
}

func newPublisher(cfg *config.Config) broker.Publisher {
	switch cfg.Broker.Kind {
	case config.BrokerKafka:
		producer, err := broker.NewProducer(cfg.Brokers())
		if err != nil {
			log.Logger().Error("failed to init kafka producer, listing events are disabled", zap.Error(err))
			return broker.Noop{}
		}
		return broker.NewKafkaPublisher(producer)
	case config.BrokerNATS:
		publisher, err := broker.NewNATSPublisher(cfg.Broker.NATSURL)
		if err != nil {
			log.Logger().Error("failed to connect to nats, listing events are disabled", zap.Error(err))
			return broker.Noop{}
		}
		return publisher
	default:
		return broker.Noop{}
	}
}
