package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewClient creates a Redis client. Callers own the instance and pass it
// to whatever needs it; there is no package-level client.
func NewClient(cfg Config) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func HealthCheck(ctx context.Context, client *goredis.Client) error {
	return client.Ping(ctx).Err()
}
