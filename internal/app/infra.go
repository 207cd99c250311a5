package app

import (
	"context"
	"database/sql"
	"time"

	"account-auth-service/internal/config"
	"account-auth-service/internal/db"
	"account-auth-service/internal/logger"
	"account-auth-service/internal/redis"

	_ "github.com/lib/pq"
	"github.com/sethvargo/go-retry"
)

type Infra struct {
	DB    *db.DB
	Redis *redis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	backoff := retry.WithMaxRetries(5, retry.NewFibonacci(100*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return retry.RetryableError(sqlDB.PingContext(pingCtx))
	})
	if err != nil {
		return nil, err
	}

	database := &db.DB{DB: sqlDB}

	if err := db.RunMigrations(ctx, database); err != nil {
		return nil, err
	}

	logger.Info("database ready", nil)

	redisClient, err := redis.New(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	return &Infra{
		DB:    database,
		Redis: redisClient,
	}, nil
}
