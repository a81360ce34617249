package cache

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T) (*RedisOrderCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisOrderCache(client, time.Minute), mr
}

func cachedOrder(version int, status entity.OrderStatus) *entity.Order {
	createdAt := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)

	return &entity.Order{
		ID:          uuid.MustParse("7f1c7a52-3c64-4d8e-9d8d-0a4c4b8f2a11"),
		OrderNumber: "ORD-20260310-7KQ2MX",
		UserID:      uuid.MustParse("0b7e3c55-9a51-4c1e-8e3a-5d1f6b2c9e40"),
		Items: []entity.OrderItem{
			{ProductID: uuid.MustParse("c3d1a2b4-5e6f-4a7b-8c9d-0e1f2a3b4c5d"), Name: "Linen shirt", Price: decimal.RequireFromString("39.90"), Quantity: 2, Size: "M"},
		},
		Subtotal:      decimal.RequireFromString("79.80"),
		Total:         decimal.RequireFromString("79.80"),
		PaymentMethod: "card",
		PaymentStatus: entity.PaymentStatusPaid,
		Status:        status,
		Version:       version,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestRedisOrderCache_SetThenGet(t *testing.T) {
	c, mr := newTestRedisCache(t)
	ctx := context.Background()
	order := cachedOrder(3, entity.OrderStatusShipped)

	require.NoError(t, c.SetOrder(ctx, order))

	got, err := c.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderNumber, got.OrderNumber)
	assert.Equal(t, order.UserID, got.UserID)
	assert.Equal(t, entity.OrderStatusShipped, got.Status)
	assert.Equal(t, 3, got.Version)
	assert.True(t, order.Total.Equal(got.Total))
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].Price.Equal(decimal.RequireFromString("39.90")))
	assert.True(t, order.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, "3", mr.HGet(orderKey(order.ID), "version"))

	ttl := mr.TTL(orderKey(order.ID))
	assert.GreaterOrEqual(t, ttl, time.Minute)
	assert.Less(t, ttl, 2*time.Minute)
}

func TestRedisOrderCache_GetMissing(t *testing.T) {
	c, _ := newTestRedisCache(t)

	order, err := c.GetOrder(context.Background(), uuid.New())
	assert.Nil(t, order)
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}

func TestRedisOrderCache_OlderVersionIgnored(t *testing.T) {
	c, _ := newTestRedisCache(t)
	ctx := context.Background()
	current := cachedOrder(2, entity.OrderStatusCancelled)
	stale := cachedOrder(1, entity.OrderStatusPending)

	require.NoError(t, c.SetOrder(ctx, current))
	require.NoError(t, c.SetOrder(ctx, stale))

	got, err := c.GetOrder(ctx, current.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, got.Status)
	assert.Equal(t, 2, got.Version)
}

func TestRedisOrderCache_NewerVersionReplaces(t *testing.T) {
	c, _ := newTestRedisCache(t)
	ctx := context.Background()

	updated := cachedOrder(2, entity.OrderStatusProcessing)

	require.NoError(t, c.SetOrder(ctx, cachedOrder(1, entity.OrderStatusPending)))
	require.NoError(t, c.SetOrder(ctx, updated))

	got, err := c.GetOrder(ctx, updated.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, got.Status)
}

func TestRedisOrderCache_Delete(t *testing.T) {
	c, mr := newTestRedisCache(t)
	ctx := context.Background()
	order := cachedOrder(1, entity.OrderStatusPending)

	require.NoError(t, c.SetOrder(ctx, order))
	require.NoError(t, c.DeleteOrder(ctx, order.ID))

	assert.False(t, mr.Exists(orderKey(order.ID)))
	_, err := c.GetOrder(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
}

func TestRedisOrderCache_CorruptEntry(t *testing.T) {
	c, mr := newTestRedisCache(t)
	id := uuid.New()
	mr.HSet(orderKey(id), "version", "1", "data", "{not json")

	_, err := c.GetOrder(context.Background(), id)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrCacheMiss)
}

func TestNoopOrderCache_AlwaysMisses(t *testing.T) {
	c := NoopOrderCache{}
	id := uuid.New()

	order, err := c.GetOrder(context.Background(), id)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, repository.ErrCacheMiss)
	assert.NoError(t, c.DeleteOrder(context.Background(), id))
}

func TestRedisOrderCache_TTLWithinJitterBounds(t *testing.T) {
	c := NewRedisOrderCache(nil, 2*time.Minute)

	for range 20 {
		ttl := c.ttl()
		assert.GreaterOrEqual(t, ttl, 2*time.Minute)
		assert.Less(t, ttl, 3*time.Minute)
	}
}

func TestNewRedisOrderCache_DefaultTTL(t *testing.T) {
	c := NewRedisOrderCache(nil, 0)
	assert.Equal(t, defaultOrderTTL, c.baseTTL)
}

func TestOrderKey(t *testing.T) {
	id := uuid.MustParse("7f1c7a52-3c64-4d8e-9d8d-0a4c4b8f2a11")
	assert.Equal(t, "order:7f1c7a52-3c64-4d8e-9d8d-0a4c4b8f2a11", orderKey(id))
}
