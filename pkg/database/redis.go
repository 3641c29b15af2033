package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"quizmaster_backend/internal/config"

	"github.com/go-redis/redis/v8"
)

// InitRedis connects the cache client used by the analytics service. The
// connection is verified with a bounded ping so a missing redis fails fast
// at startup instead of on the first leaderboard request.
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     20,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Println("Redis connection established")
	return rdb, nil
}
