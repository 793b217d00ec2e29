package cache

import (
	"context"
	"fmt"
	"time"

	"hotel-board/internal/pkg/config"

	"github.com/go-redis/redis/v8"
)

func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Addr, err)
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}
