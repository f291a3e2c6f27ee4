package app

import (
	"context"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	notificationGateway "tracking-service/internal/gateway/http/notification"
	positionGateway "tracking-service/internal/gateway/http/position"
	routingGateway "tracking-service/internal/gateway/http/routing"
	"tracking-service/internal/gateway/http/upstream"
	"tracking-service/internal/handlers/tasks/notification_refresh"
	"tracking-service/internal/pkg/config"
	notificationRepo "tracking-service/internal/repository/notification"
	positionRepo "tracking-service/internal/repository/position"
	notificationService "tracking-service/internal/service/notification"
	"tracking-service/internal/service/notification_cache"
	positionService "tracking-service/internal/service/position"
	"tracking-service/internal/service/publisher"
	"tracking-service/internal/service/route"
	"tracking-service/internal/service/tracker"
	"tracking-service/pkg/background"
	"tracking-service/pkg/logger"
	"tracking-service/pkg/querier"
	"tracking-service/pkg/retrier/backoff_adapter"
	"tracking-service/pkg/token_bucket"
	"tracking-service/pkg/tx"
)

type Application struct {
	PositionService    *positionService.Service
	Tracker            *tracker.Tracker
	RouteResolver      *route.Resolver
	NotificationCache  *notification_cache.Cache
	NotificationEngine *notificationService.Engine
	BackgroundWorkers  *background.Worker
}

type WorkerApp struct {
	PositionService *positionService.Service
}

// ClientApp - сторона агента и клиента: публикация и чтение точек через
// HTTP API трекинг-сервиса.
type ClientApp struct {
	Publisher     *publisher.Publisher
	Tracker       *tracker.Tracker
	RouteResolver *route.Resolver
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func providePositionRepository(client *goredis.Client) *positionRepo.Repository {
	return positionRepo.New(client)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func providePositionService(log logger.Logger, repository positionService.Repository) *positionService.Service {
	return positionService.New(log, repository)
}

// provideLocalTracker - трекер поверх локального хранилища для websocket-стрима.
func provideLocalTracker(log logger.Logger, service *positionService.Service) *tracker.Tracker {
	return tracker.New(log, service)
}

// provideRemoteTracker - трекер поверх GET /location/{order_id} удаленного сервиса.
func provideRemoteTracker(log logger.Logger, gateway *positionGateway.Gateway) *tracker.Tracker {
	return tracker.New(log, gateway)
}

func provideRoutingGateway(cfg *config.Config) (*routingGateway.Gateway, error) {
	client, err := upstream.New(routingGateway.ServiceName, cfg.Upstream.RoutingURL, cfg.Upstream.RoutingTimeout)
	if err != nil {
		return nil, fmt.Errorf("routing client: %w", err)
	}
	return routingGateway.New(client, cfg.Upstream.RoutingProfile), nil
}

func provideRouteResolver(gateway route.Gateway) *route.Resolver {
	return route.New(gateway)
}

func providePositionGateway(cfg *config.Config) (*positionGateway.Gateway, error) {
	client, err := upstream.New(positionGateway.ServiceName, cfg.Upstream.PositionURL, cfg.Upstream.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("position client: %w", err)
	}
	return positionGateway.New(client), nil
}

func providePublisherLimiter(cfg *config.Config) *token_bucket.TokenBucket {
	return token_bucket.NewPerInterval(cfg.Publisher.Burst, cfg.Publisher.Interval)
}

func providePublisher(log logger.Logger, gateway publisher.Gateway, limiter publisher.Limiter) *publisher.Publisher {
	return publisher.New(log, gateway, limiter)
}

// provideNotificationCache поднимает кэш из таблицы до старта HTTP.
func provideNotificationCache(
	ctx context.Context,
	log logger.Logger,
	repository notification_cache.Repository,
	txManager notification_cache.TxManager,
) (*notification_cache.Cache, func(), error) {
	cache := notification_cache.New(log, repository, txManager)
	if err := cache.Load(ctx); err != nil {
		cache.Close()
		return nil, nil, fmt.Errorf("notification cache: %w", err)
	}
	return cache, cache.Close, nil
}

func provideNotificationGateway(cfg *config.Config) (*notificationGateway.Gateway, error) {
	var opts []upstream.Option
	if cfg.Upstream.NotificationToken != "" {
		opts = append(opts, upstream.WithBearerToken(cfg.Upstream.NotificationToken))
	}

	client, err := upstream.New(
		notificationGateway.ServiceName,
		cfg.Upstream.NotificationURL,
		cfg.Upstream.NotificationTimeout,
		opts...,
	)
	if err != nil {
		return nil, fmt.Errorf("notification client: %w", err)
	}
	return notificationGateway.New(client, backoff_adapter.New(notificationGateway.RetryConfig())), nil
}

func provideNotificationEngine(
	log logger.Logger,
	gateway notificationService.Gateway,
	cache notificationService.Cache,
	cfg *config.Config,
) *notificationService.Engine {
	return notificationService.New(log, gateway, cache, notificationService.Config{
		PageSize: cfg.Notification.PageSize,
		MaxPages: cfg.Notification.MaxPages,
	})
}

func provideNotificationRefreshTask(
	engine notification_refresh.Engine,
	cfg *config.Config,
) *notification_refresh.NotificationRefresh {
	return notification_refresh.NewNotificationRefresh(engine, cfg.Tasks.NotificationRefreshInterval)
}

func provideTaskList(
	notificationRefreshTask *notification_refresh.NotificationRefresh,
) []background.Task {
	return []background.Task{
		notificationRefreshTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
