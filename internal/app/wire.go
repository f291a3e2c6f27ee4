//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	notificationGateway "tracking-service/internal/gateway/http/notification"
	positionGateway "tracking-service/internal/gateway/http/position"
	routingGateway "tracking-service/internal/gateway/http/routing"
	"tracking-service/internal/handlers/tasks/notification_refresh"
	"tracking-service/internal/pkg/config"
	notificationRepo "tracking-service/internal/repository/notification"
	positionRepo "tracking-service/internal/repository/position"
	notificationService "tracking-service/internal/service/notification"
	"tracking-service/internal/service/notification_cache"
	positionService "tracking-service/internal/service/position"
	"tracking-service/internal/service/publisher"
	"tracking-service/internal/service/route"
	"tracking-service/pkg/logger"
	"tracking-service/pkg/token_bucket"
	"tracking-service/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*Application, func(), error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		providePositionRepository,
		provideNotificationRepository,

		providePositionService,
		provideLocalTracker,
		provideRoutingGateway,
		provideRouteResolver,
		provideNotificationCache,
		provideNotificationGateway,
		provideNotificationEngine,

		provideNotificationRefreshTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(positionService.Repository), new(*positionRepo.Repository)),
		wire.Bind(new(notification_cache.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(notification_cache.TxManager), new(*tx.Manager)),
		wire.Bind(new(route.Gateway), new(*routingGateway.Gateway)),
		wire.Bind(new(notificationService.Gateway), new(*notificationGateway.Gateway)),
		wire.Bind(new(notificationService.Cache), new(*notification_cache.Cache)),
		wire.Bind(new(notification_refresh.Engine), new(*notificationService.Engine)),
	)
	return nil, nil, nil
}

// InitializeWorkerApp для Kafka воркера (cmd/worker-position-updated)
func InitializeWorkerApp(
	log logger.Logger,
	redisClient *goredis.Client,
) *WorkerApp {
	wire.Build(
		providePositionRepository,
		providePositionService,

		wire.Struct(new(WorkerApp), "*"),

		wire.Bind(new(positionService.Repository), new(*positionRepo.Repository)),
	)
	return nil
}

// InitializeClientApp для клиентских утилит (cmd/tracker, cmd/agent-simulator)
func InitializeClientApp(
	log logger.Logger,
	cfg *config.Config,
) (*ClientApp, error) {
	wire.Build(
		providePositionGateway,
		providePublisherLimiter,
		providePublisher,
		provideRemoteTracker,
		provideRoutingGateway,
		provideRouteResolver,

		wire.Struct(new(ClientApp), "*"),

		wire.Bind(new(publisher.Gateway), new(*positionGateway.Gateway)),
		wire.Bind(new(publisher.Limiter), new(*token_bucket.TokenBucket)),
		wire.Bind(new(route.Gateway), new(*routingGateway.Gateway)),
	)
	return nil, nil
}
