package bootstrap

import (
	"context"
	"fmt"

	"redeem-server/internal/apierrors"
	"redeem-server/internal/config"
	"redeem-server/internal/events"
	"redeem-server/internal/observability"
	"redeem-server/internal/ratelimit"
	"redeem-server/internal/store"

	analyticsHandler "redeem-server/internal/analytics/handler"
	analyticsProcessor "redeem-server/internal/analytics/processor"
	authHandler "redeem-server/internal/auth/handler"
	authProcessor "redeem-server/internal/auth/processor"
	kafkaClient "redeem-server/internal/clients/kafka"
	redisClient "redeem-server/internal/clients/redis"
	lanesHandler "redeem-server/internal/lanes/handler"
	lanesProcessor "redeem-server/internal/lanes/processor"
	merchHandler "redeem-server/internal/merch/handler"
	merchProcessor "redeem-server/internal/merch/processor"
	usersHandler "redeem-server/internal/users/handler"
	usersProcessor "redeem-server/internal/users/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler      authHandler.Handler
	MerchHandler     merchHandler.Handler
	LaneHandler      lanesHandler.Handler
	AnalyticsHandler analyticsHandler.Handler
	UserHandler      usersHandler.Handler

	// RateLimiter is nil when Redis or the limit is disabled
	RateLimiter *ratelimit.Service

	// Clients (for cleanup)
	Redis         *redisClient.Client
	KafkaProducer *kafkaClient.Producer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	apierrors.SetLogger(logger)
	apierrors.UseJSONFieldNames()

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	if cfg.Database.RunMigrations {
		if err := store.ApplyMigrations(connectionString); err != nil {
			return nil, err
		}
		logger.Info(ctx, "database migrations applied")
	}

	dataStore, err := store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return initialize(ctx, cfg, logger, dataStore)
}

// initialize wires everything on top of an opened store. On failure it
// releases whatever was opened, the store included.
func initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger, dataStore store.Store) (*Dependencies, error) {
	deps := &Dependencies{
		Store:  dataStore,
		Logger: logger,
	}

	// Initialize optional clients
	var err error
	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		deps.Cleanup()
		return nil, err
	}

	merchOpts := []merchProcessor.Option{
		merchProcessor.WithLocation(cfg.Redemption.Location),
	}
	if deps.Redis != nil {
		merchOpts = append(merchOpts, merchProcessor.WithLocker(deps.Redis, cfg.Redemption.LockTTL))
		if cfg.Redemption.RateLimitRPM > 0 {
			deps.RateLimiter = ratelimit.NewService(deps.Redis, cfg.Redemption.RateLimitRPM, logger)
		}
	}

	if brokers := cfg.Kafka.BrokerList(); len(brokers) > 0 {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		merchOpts = append(merchOpts, merchProcessor.WithEventPublisher(events.NewPublisher(deps.KafkaProducer, logger)))
	} else {
		logger.Info(ctx, "Kafka brokers not configured, order events disabled")
	}

	// Initialize auth processor and handler
	authProc := authProcessor.New(&deps.Store, cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(&authProc, logger)

	// Initialize merch processor and handler
	merchProc := merchProcessor.New(&deps.Store, logger, merchOpts...)
	deps.MerchHandler = merchHandler.New(&merchProc, logger)

	// Initialize lane processor and handler
	laneProc := lanesProcessor.New(&deps.Store, logger)
	deps.LaneHandler = lanesHandler.New(&laneProc, logger)

	// Initialize analytics processor and handler
	analyticsProc := analyticsProcessor.New(&deps.Store, logger, cfg.Redemption.Location)
	deps.AnalyticsHandler = analyticsHandler.New(&analyticsProc, logger)

	// Initialize user processor and handler
	userProc := usersProcessor.New(&deps.Store, logger)
	deps.UserHandler = usersHandler.New(&userProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if err := d.Redis.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis client", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
