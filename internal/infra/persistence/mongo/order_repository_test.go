package mongo

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func setupTestDB(t *testing.T) *mongo.Database {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MongoDB container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	testcontainers.CleanupContainer(t, mongoContainer)
	require.NoError(t, err)

	uri, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database("storefront_test")
	require.NoError(t, EnsureIndexes(ctx, db))

	return db
}

func newStoredOrder() *entity.Order {
	createdAt := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)

	return &entity.Order{
		OrderNumber:   "ORD-20260310-7KQ2MX",
		UserID:        uuid.New(),
		Items:         []entity.OrderItem{{ProductID: uuid.New(), Name: "Linen shirt", Price: decimal.RequireFromString("39.90"), Quantity: 1}},
		Subtotal:      decimal.RequireFromString("39.90"),
		Total:         decimal.RequireFromString("39.90"),
		PaymentMethod: "card",
		PaymentStatus: entity.PaymentStatusPaid,
		Status:        entity.OrderStatusPending,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestOrderRepository_UpdateOrder_VersionGuard(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	created := newStoredOrder()
	require.NoError(t, repo.CreateOrder(ctx, created))

	first, err := repo.FindOrderByID(ctx, created.ID)
	require.NoError(t, err)
	second, err := repo.FindOrderByID(ctx, created.ID)
	require.NoError(t, err)

	first.Status = entity.OrderStatusConfirmed
	require.NoError(t, repo.UpdateOrder(ctx, first))
	assert.Equal(t, 2, first.Version)

	second.Status = entity.OrderStatusCancelled
	err = repo.UpdateOrder(ctx, second)
	require.ErrorIs(t, err, repository.ErrOrderVersionMismatch)
	assert.Equal(t, 1, second.Version)

	stored, err := repo.FindOrderByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, stored.Status)
	assert.Equal(t, 2, stored.Version)
	assert.Nil(t, stored.ReturnExchange)
}

func TestOrderRepository_CreateOrder_DuplicateNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateOrder(ctx, newStoredOrder()))

	err := repo.CreateOrder(ctx, newStoredOrder())
	require.ErrorIs(t, err, repository.ErrDuplicateOrderNumber)
}
