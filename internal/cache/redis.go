package cache

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// FleetStatusKey caches the serialized fleet status summary. It is short
// lived and invalidated whenever an inspection is recorded.
const FleetStatusKey = "fleet:status"

const fleetStatusTTL = 2 * time.Minute

var client *redis.Client

// Init initializes the Redis connection. The cache is optional; when Redis
// is unreachable every cache call degrades to a no-op.
func Init() error {
	host := os.Getenv("REDIS_SERVICE_HOST")
	if host == "" {
		host = "redis" // fallback to service name
	}
	port := os.Getenv("REDIS_SERVICE_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetFleetStatus returns the cached summary if present.
func GetFleetStatus(ctx context.Context) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, FleetStatusKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetFleetStatus caches the serialized summary.
func SetFleetStatus(ctx context.Context, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, FleetStatusKey, data, fleetStatusTTL)
}

// InvalidateFleetStatus drops the cached summary. Called after every
// recorded inspection so the dashboard never shows a stale verdict.
func InvalidateFleetStatus(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, FleetStatusKey)
}

// IsHealthy returns true if the Redis connection is working.
func IsHealthy() bool {
	if client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}
