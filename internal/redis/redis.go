package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
)

type Client struct {
	*goredis.Client
}

func New(ctx context.Context, addr, password string, db int) (*Client, error) {

	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Startup-only retry: once the service is serving, session store
	// failures are surfaced to callers, never retried.
	backoff := retry.WithMaxRetries(5, retry.NewFibonacci(100*time.Millisecond))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return retry.RetryableError(client.Ping(pingCtx).Err())
	})

	if err != nil {
		return nil, err
	}

	return &Client{Client: client}, nil

}
