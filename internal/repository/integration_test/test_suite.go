package integration_test

import (
	"context"
	"log"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"tracking-service/internal/pkg/config"
	"tracking-service/internal/pkg/migrations"
	"tracking-service/internal/pkg/postgres"
	"tracking-service/internal/pkg/redis"
	"tracking-service/pkg/logger/zap_adapter"
	"tracking-service/pkg/querier"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	querierOnce     sync.Once

	redisInstance *goredis.Client
	redisOnce     sync.Once
)

func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()
		zapLogger := zap_adapter.NewNop()

		if err := migrations.Up(ctx, zapLogger, postgres.NewDsn(cfg)); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		poolInstance = connPool
		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

// GetPool нужен репозиториям, которые открывают транзакции через tx.Manager.
func GetPool() *pgxpool.Pool {
	GetQuerier()
	return poolInstance
}

func GetRedis() *goredis.Client {
	redisOnce.Do(func() {
		db, err := strconv.Atoi(os.Getenv("REDIS_DB"))
		if err != nil {
			db = 0
		}
		cfg := &config.Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       db,
		}

		client, err := redis.NewClient(context.Background(), zap_adapter.NewNop(), cfg)
		if err != nil {
			panic(err)
		}
		redisInstance = client
	})

	return redisInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if setupSql == "" {
		GetQuerier()
		return
	}

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE notifications;
	`)
	require.NoError(t, err)
}

func TeardownRedis(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, GetRedis().FlushDB(ctx).Err())
}
