package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/cache"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// A cancel that commits while GetOrder is still reading the store must win over the
// snapshot that GetOrder writes back afterwards.
func TestOrderService_GetOrder_CancelDuringStoreRead(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		EventRepo: mockRepo.NewMockOrderEventRepository(t),
		Cache:     cache.NewRedisOrderCache(client, 0),
		Publisher: publisher,
		Config:    &config.Config{},
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	customer := entity.NewCustomerActor(uuid.New(), []string{entity.RoleNameCustomer})
	stored := newOrder(customer.UserID, entity.OrderStatusPending)

	expectTransaction(t, txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
		txOrderRepo.EXPECT().FindOrderByID(ctx, stored.ID).RunAndReturn(func(context.Context, uuid.UUID) (*entity.Order, error) {
			current := *stored

			return &current, nil
		})
		txOrderRepo.EXPECT().UpdateOrder(ctx, mock.AnythingOfType("*entity.Order")).RunAndReturn(func(_ context.Context, order *entity.Order) error {
			order.Version++
			*stored = *order

			return nil
		})

		txEventRepo := mockRepo.NewMockOrderEventRepository(t)
		factory.EXPECT().NewOrderEventRepository().Return(txEventRepo)
		txEventRepo.EXPECT().CreateOrderEvent(ctx, mock.AnythingOfType("*entity.OrderEvent")).Return(nil)
	})
	publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)

	// The read sees the pending row, then the cancel commits before the read fills the cache.
	orderRepo.EXPECT().FindOrderByID(ctx, stored.ID).RunAndReturn(func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
		snapshot := *stored

		_, err := svc.CancelOrder(ctx, customer, id, &usecase.CancelOrderInput{Reason: "changed my mind"})
		require.NoError(t, err)

		return &snapshot, nil
	}).Once()

	first, err := svc.GetOrder(ctx, customer, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, first.Status)

	second, err := svc.GetOrder(ctx, customer, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, second.Status)
	assert.Equal(t, 2, second.Version)
}
