// The redisutils package simplifies recurring operations like connecting
// to, formatting for, and parsing from Redis.
package redisutils

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// SetupClient initializes a new Redis client for the given address.
func SetupClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

// SetupTestClient initializes a new Redis client for the local test instance.
func SetupTestClient() *redis.Client {
	return SetupClient("localhost:6379")
}

// CleanupRedis cleans up the Redis database between tests to ensure isolation.
func CleanupRedis(client *redis.Client) {
	client.FlushAll(context.Background())
}
