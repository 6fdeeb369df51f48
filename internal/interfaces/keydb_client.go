package interfaces

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// KeyDbClient abstracts the Redis/KeyDB client used by the optional
// geocode durable store.
type KeyDbClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}
