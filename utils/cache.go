// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"medibook/config"
)

// CacheClient is the generic cache client.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client.
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

// FreeSlotsCacheKey builds the cache key for a doctor's free-slot listing.
// date is "YYYY-MM-DD" or "all" when no date filter was given.
func FreeSlotsCacheKey(doctorID, date string) string {
	if date == "" {
		date = "all"
	}
	return fmt.Sprintf("slots:free:%s:%s", doctorID, date)
}

// InvalidateFreeSlots drops every cached free-slot listing for the doctor.
// Listings are cached per date under a shared prefix; a booking or a fresh
// generation run makes all of them stale.
func InvalidateFreeSlots(ctx context.Context, rdb *redis.Client, doctorID string) {
	if rdb == nil {
		return
	}
	pattern := fmt.Sprintf("slots:free:%s:*", doctorID)
	keys, err := rdb.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	rdb.Del(ctx, keys...)
}
