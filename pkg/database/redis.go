package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"study_planner_backend/internal/config"

	"github.com/go-redis/redis/v8"
)

const redisPingTimeout = 3 * time.Second

// InitRedis connects the client that backs the dashboard cache. Callers
// treat a failed connection as cache-disabled rather than fatal.
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     50,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	log.Println("Redis connection established")
	return rdb, nil
}
