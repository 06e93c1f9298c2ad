package configs

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// OpenRedis returns a client for the cache instance, or nil when REDIS_ADDR is
// unset. Callers must tolerate a nil client and skip caching.
func OpenRedis() *redis.Client {
	if LoadENV.RedisAddr == "" {
		log.Println("OpenRedis: REDIS_ADDR not set, exchange-rate caching disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: LoadENV.RedisAddr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("OpenRedis: ping failed: %v. Continuing without cache.", err)
		return nil
	}

	log.Println("✅ Redis connection successful!")
	return rdb
}
