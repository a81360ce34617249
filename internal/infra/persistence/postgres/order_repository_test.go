package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping PostgreSQL container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("storefront"),
		tcpostgres.WithUsername("storefront"),
		tcpostgres.WithPassword("storefront"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	testcontainers.CleanupContainer(t, pgContainer)
	require.NoError(t, err)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	db, err := pgLib.New(&pgLib.DBConn{
		Master: pgLib.ConnectionConfig{
			Host:     host,
			Port:     port.Port(),
			UserName: "storefront",
			Password: "storefront",
		},
		Database: "storefront",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, MigrateUp(db, slog.New(slog.NewTextHandler(io.Discard, nil))))

	return db
}

func createStoredOrder(t *testing.T, db *gorm.DB) *entity.Order {
	t.Helper()
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "mei@example.com", Role: entity.RoleNameCustomer}
	require.NoError(t, NewUserRepository(db).UpsertUser(ctx, user))

	order := mappedOrder()
	order.ID = uuid.Nil
	order.UserID = user.ID
	order.Status = entity.OrderStatusPending
	order.DeliveredAt = nil
	require.NoError(t, NewOrderRepository(db).CreateOrder(ctx, order))

	return order
}

func TestOrderRepository_UpdateOrder_VersionGuard(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	created := createStoredOrder(t, db)

	first, err := repo.FindOrderByID(ctx, created.ID)
	require.NoError(t, err)
	second, err := repo.FindOrderByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 1, first.Version)

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
}

func TestOrderRepository_UpdateOrder_UnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	order := mappedOrder()

	err := NewOrderRepository(db).UpdateOrder(context.Background(), order)
	require.ErrorIs(t, err, repository.ErrOrderVersionMismatch)
}

func TestOrderRepository_AbsentReturnExchangeIsJSONNull(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	created := createStoredOrder(t, db)

	var isNull bool
	require.NoError(t, db.WithContext(ctx).
		Raw("SELECT return_exchange = 'null'::jsonb FROM orders WHERE id = ?", created.ID).
		Scan(&isNull).Error)
	assert.True(t, isNull)

	stored, err := NewOrderRepository(db).FindOrderByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ReturnExchange)
	assert.True(t, created.Total.Equal(stored.Total))
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Linen shirt", stored.Items[0].Name)
}

func TestOrderRepository_FindOrderByID_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewOrderRepository(db).FindOrderByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, repository.ErrOrderNotFound)
}
