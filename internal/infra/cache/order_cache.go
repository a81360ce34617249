// Package cache implements the order read cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand/v2"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	defaultOrderTTL = 5 * time.Minute
	maxTTLJitter    = time.Minute
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewOrderCache returns the Redis cache when configured, otherwise a cache that always misses
func NewOrderCache(params Params) repository.OrderCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Order cache disabled")

		return NoopOrderCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Order cache connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisOrderCache(client, cfg.OrderTTL)
}

// setIfNotOlder writes the order hash unless the cached version is newer.
var setIfNotOlder = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'version')
if current and tonumber(current) > tonumber(ARGV[1]) then
	return 0
end
redis.call('HSET', KEYS[1], 'version', ARGV[1], 'data', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

// RedisOrderCache stores each order as a hash under order:<id> holding its version and serialized form.
// Writes carrying an older version than the cached one are dropped.
type RedisOrderCache struct {
	client  redis.UniversalClient
	baseTTL time.Duration
}

// NewRedisOrderCache wraps an existing client.
func NewRedisOrderCache(client redis.UniversalClient, ttl time.Duration) *RedisOrderCache {
	if ttl <= 0 {
		ttl = defaultOrderTTL
	}

	return &RedisOrderCache{client: client, baseTTL: ttl}
}

func (c *RedisOrderCache) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	data, err := c.client.HGet(ctx, orderKey(id), "data").Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrCacheMiss
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get failed")
	}

	var order entity.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, errors.Wrap(err, "unmarshal cached order failed")
	}

	return &order, nil
}

// SetOrder caches order unless a newer version is already cached.
func (c *RedisOrderCache) SetOrder(ctx context.Context, order *entity.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return errors.Wrap(err, "marshal order failed")
	}

	keys := []string{orderKey(order.ID)}
	if err := setIfNotOlder.Run(ctx, c.client, keys, order.Version, data, c.ttl().Milliseconds()).Err(); err != nil {
		return errors.Wrap(err, "redis set failed")
	}

	return nil
}

func (c *RedisOrderCache) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, orderKey(id)).Err(); err != nil {
		return errors.Wrap(err, "redis delete failed")
	}

	return nil
}

// ttl spreads expirations so hot orders do not expire together.
func (c *RedisOrderCache) ttl() time.Duration {
	return c.baseTTL + rand.N(maxTTLJitter)
}

func orderKey(id uuid.UUID) string {
	return "order:" + id.String()
}

// NoopOrderCache is used when no cache is configured.
type NoopOrderCache struct{}

func (NoopOrderCache) GetOrder(context.Context, uuid.UUID) (*entity.Order, error) {
	return nil, repository.ErrCacheMiss
}

func (NoopOrderCache) SetOrder(context.Context, *entity.Order) error { return nil }

func (NoopOrderCache) DeleteOrder(context.Context, uuid.UUID) error { return nil }
