package utils

import (
	"context"
	"log"
	"time"

	"github.com/prakashreddykaladi/Mini-Venue-Booking-Dashboard/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// BusClient is the dedicated client for change-notification traffic.
	BusClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitBusClient initializes the Redis client used by the change
// notification bus. Pub/sub holds the connection open, so it gets its own
// client and DB rather than sharing the cache client.
func InitBusClient() {
	BusClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisBusDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := BusClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Bus): %v", err)
	}
}

// GetBusClient returns the Redis client for the change notification bus.
func GetBusClient() *redis.Client {
	if BusClient == nil {
		InitBusClient()
	}
	return BusClient
}
