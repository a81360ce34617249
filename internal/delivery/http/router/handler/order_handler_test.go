package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOrderHandler(t *testing.T) (*OrderHandler, *mockUsecase.MockOrderUsecase) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(OrderHandlerParams{
		OrderUC: orderUC,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return handler, orderUC
}

func TestOrderHandler_ListOrders(t *testing.T) {
	handler, orderUC := createTestOrderHandler(t)
	customer := entity.NewCustomerActor(uuid.New(), []string{entity.RoleNameCustomer})
	order := sampleOrder(customer.UserID, entity.OrderStatusPending)

	orderUC.EXPECT().
		ListOrders(mock.Anything, customer, &usecase.ListOrdersInput{Status: "pending", Page: 2, PageSize: 5}).
		Return(&usecase.OrderPage{Orders: []*entity.Order{order}, Total: 6, Page: 2, PageSize: 5}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		target: "/api/v1/orders?status=pending&page=2&pageSize=5",
		actor:  &customer,
	})
	require.NoError(t, handler.ListOrders(c))

	var page OrderListResponse
	env := decodeEnvelope(t, rec, &page)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, int64(6), page.Total)
	require.Len(t, page.Orders, 1)
	assert.Equal(t, order.ID, page.Orders[0].ID)
	assert.Equal(t, "92.2", page.Orders[0].Total.String())
}

func TestOrderHandler_ListOrders_BadQuery(t *testing.T) {
	handler, _ := createTestOrderHandler(t)
	admin := entity.NewAdminActor(uuid.New(), []string{entity.RoleNameAdmin})

	c, _ := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/admin/orders?page=abc", actor: &admin})

	err := handler.ListOrders(c)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderHandler_GetOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, orderUC := createTestOrderHandler(t)
		customer := entity.NewCustomerActor(uuid.New(), nil)
		order := sampleOrder(customer.UserID, entity.OrderStatusShipped)
		order.TrackingNumber = "1Z999"

		orderUC.EXPECT().GetOrder(mock.Anything, customer, order.ID).Return(order, nil)

		c, rec := newTestContext(testRequest{method: http.MethodGet, id: order.ID.String(), actor: &customer})
		require.NoError(t, handler.GetOrder(c))

		var body map[string]any
		decodeEnvelope(t, rec, &body)
		assert.Equal(t, "shipped", body["status"])
		assert.Equal(t, "1Z999", body["trackingNumber"])
		assert.Equal(t, "ORD-20260301-7KQ2MX", body["orderNumber"])
		assert.NotContains(t, body, "returnExchange")
	})

	t.Run("invalid id", func(t *testing.T) {
		handler, _ := createTestOrderHandler(t)
		customer := entity.NewCustomerActor(uuid.New(), nil)

		c, _ := newTestContext(testRequest{method: http.MethodGet, id: "not-a-uuid", actor: &customer})

		assert.True(t, errors.Is(handler.GetOrder(c), domainerrors.ErrValidationFailed))
	})

	t.Run("not found passes through", func(t *testing.T) {
		handler, orderUC := createTestOrderHandler(t)
		customer := entity.NewCustomerActor(uuid.New(), nil)
		orderID := uuid.New()

		orderUC.EXPECT().GetOrder(mock.Anything, customer, orderID).Return(nil, domainerrors.ErrOrderNotFound)

		c, _ := newTestContext(testRequest{method: http.MethodGet, id: orderID.String(), actor: &customer})

		assert.True(t, errors.Is(handler.GetOrder(c), domainerrors.ErrOrderNotFound))
	})

	t.Run("no actor", func(t *testing.T) {
		handler, _ := createTestOrderHandler(t)

		c, _ := newTestContext(testRequest{method: http.MethodGet, id: uuid.NewString()})

		assert.True(t, errors.Is(handler.GetOrder(c), domainerrors.ErrUnauthorized))
	})
}

func TestOrderHandler_CancelOrder(t *testing.T) {
	t.Run("without body", func(t *testing.T) {
		handler, orderUC := createTestOrderHandler(t)
		customer := entity.NewCustomerActor(uuid.New(), nil)
		order := sampleOrder(customer.UserID, entity.OrderStatusCancelled)
		order.CancelledBy = entity.ActorKindCustomer

		orderUC.EXPECT().CancelOrder(mock.Anything, customer, order.ID, &usecase.CancelOrderInput{}).Return(order, nil)

		c, rec := newTestContext(testRequest{method: http.MethodPatch, id: order.ID.String(), actor: &customer})
		require.NoError(t, handler.CancelOrder(c))

		var body OrderResponse
		env := decodeEnvelope(t, rec, &body)
		assert.Equal(t, "Order cancelled successfully", env.Message)
		assert.Equal(t, "cancelled", body.Status)
		assert.Equal(t, "customer", body.CancelledBy)
	})

	t.Run("with reason", func(t *testing.T) {
		handler, orderUC := createTestOrderHandler(t)
		admin := entity.NewAdminActor(uuid.New(), []string{entity.RoleNameSupport})
		order := sampleOrder(uuid.New(), entity.OrderStatusCancelled)

		orderUC.EXPECT().
			CancelOrder(mock.Anything, admin, order.ID, &usecase.CancelOrderInput{Reason: "out of stock"}).
			Return(order, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPatch,
			id:     order.ID.String(),
			body:   `{"reason":"out of stock"}`,
			actor:  &admin,
		})
		require.NoError(t, handler.CancelOrder(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("state conflict passes through", func(t *testing.T) {
		handler, orderUC := createTestOrderHandler(t)
		customer := entity.NewCustomerActor(uuid.New(), nil)
		orderID := uuid.New()

		orderUC.EXPECT().CancelOrder(mock.Anything, customer, orderID, mock.Anything).Return(nil, domainerrors.ErrOrderNotCancellable)

		c, _ := newTestContext(testRequest{method: http.MethodPatch, id: orderID.String(), actor: &customer})

		assert.True(t, errors.Is(handler.CancelOrder(c), domainerrors.ErrOrderNotCancellable))
	})
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	admin := entity.NewAdminActor(uuid.New(), []string{entity.RoleNameManager})

	t.Run("success", func(t *testing.T) {
		handler, orderUC := createTestOrderHandler(t)
		order := sampleOrder(uuid.New(), entity.OrderStatusShipped)

		orderUC.EXPECT().
			UpdateOrderStatus(mock.Anything, admin, order.ID, &usecase.UpdateOrderStatusInput{Status: "shipped", TrackingNumber: "1Z999", Carrier: "UPS"}).
			Return(order, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPatch,
			id:     order.ID.String(),
			body:   `{"status":"shipped","trackingNumber":"1Z999","carrier":"UPS"}`,
			actor:  &admin,
		})
		require.NoError(t, handler.UpdateOrderStatus(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing status", func(t *testing.T) {
		handler, _ := createTestOrderHandler(t)

		c, _ := newTestContext(testRequest{method: http.MethodPatch, id: uuid.NewString(), body: `{}`, actor: &admin})

		assert.True(t, errors.Is(handler.UpdateOrderStatus(c), domainerrors.ErrValidationFailed))
	})

	t.Run("malformed body", func(t *testing.T) {
		handler, _ := createTestOrderHandler(t)

		c, _ := newTestContext(testRequest{method: http.MethodPatch, id: uuid.NewString(), body: `{"status":`, actor: &admin})

		assert.True(t, errors.Is(handler.UpdateOrderStatus(c), domainerrors.ErrValidationFailed))
	})

	t.Run("same status", func(t *testing.T) {
		handler, orderUC := createTestOrderHandler(t)
		orderID := uuid.New()

		orderUC.EXPECT().UpdateOrderStatus(mock.Anything, admin, orderID, mock.Anything).Return(nil, domainerrors.ErrOrderSameStatus)

		c, _ := newTestContext(testRequest{method: http.MethodPatch, id: orderID.String(), body: `{"status":"pending"}`, actor: &admin})

		assert.True(t, errors.Is(handler.UpdateOrderStatus(c), domainerrors.ErrOrderSameStatus))
	})
}

func TestOrderHandler_ReturnExchange(t *testing.T) {
	t.Run("customer request", func(t *testing.T) {
		handler, orderUC := createTestOrderHandler(t)
		customer := entity.NewCustomerActor(uuid.New(), nil)
		order := sampleOrder(customer.UserID, entity.OrderStatusDelivered)
		order.ReturnExchange = &entity.ReturnExchange{
			Type:        entity.ReturnExchangeTypeExchange,
			Status:      entity.ReturnExchangeStatusRequested,
			Reason:      "wrong size",
			RequestedAt: order.UpdatedAt,
		}

		orderUC.EXPECT().
			RequestReturnExchange(mock.Anything, customer, order.ID, &usecase.ReturnExchangeRequestInput{Type: "exchange", Reason: "wrong size"}).
			Return(order, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			id:     order.ID.String(),
			body:   `{"type":"exchange","reason":"wrong size"}`,
			actor:  &customer,
		})
		require.NoError(t, handler.RequestReturnExchange(c))

		var body OrderResponse
		decodeEnvelope(t, rec, &body)
		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, body.ReturnExchange)
		assert.Equal(t, "exchange", body.ReturnExchange.Type)
		assert.Equal(t, "requested", body.ReturnExchange.Status)
	})

	t.Run("admin decision", func(t *testing.T) {
		handler, orderUC := createTestOrderHandler(t)
		admin := entity.NewAdminActor(uuid.New(), []string{entity.RoleNameSupport})
		order := sampleOrder(uuid.New(), entity.OrderStatusDelivered)

		orderUC.EXPECT().
			ProcessReturnExchange(mock.Anything, admin, order.ID, &usecase.ProcessReturnExchangeInput{Action: "approved", AdminNotes: "ok"}).
			Return(order, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPatch,
			id:     order.ID.String(),
			body:   `{"action":"approved","adminNotes":"ok"}`,
			actor:  &admin,
		})
		require.NoError(t, handler.ProcessReturnExchange(c))

		env := decodeEnvelope(t, rec, nil)
		assert.Equal(t, "Return/exchange request approved", env.Message)
	})

	t.Run("admin complete", func(t *testing.T) {
		handler, orderUC := createTestOrderHandler(t)
		admin := entity.NewAdminActor(uuid.New(), []string{entity.RoleNameSupport})
		order := sampleOrder(uuid.New(), entity.OrderStatusDelivered)

		orderUC.EXPECT().
			CompleteReturnExchange(mock.Anything, admin, order.ID, &usecase.CompleteReturnExchangeInput{}).
			Return(nil, domainerrors.ErrReturnNotApproved)

		c, _ := newTestContext(testRequest{method: http.MethodPatch, id: order.ID.String(), actor: &admin})

		assert.True(t, errors.Is(handler.CompleteReturnExchange(c), domainerrors.ErrReturnNotApproved))
	})
}

func TestOrderHandler_ListOrderEvents(t *testing.T) {
	handler, orderUC := createTestOrderHandler(t)
	admin := entity.NewAdminActor(uuid.New(), []string{entity.RoleNameAdmin})
	order := sampleOrder(uuid.New(), entity.OrderStatusConfirmed)
	event := entity.NewOrderEvent(order, entity.OrderEventStatusUpdated, entity.OrderStatusPending, admin, "", order.UpdatedAt)

	orderUC.EXPECT().ListOrderEvents(mock.Anything, order.ID).Return([]*entity.OrderEvent{event}, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, id: order.ID.String(), actor: &admin})
	require.NoError(t, handler.ListOrderEvents(c))

	var events []OrderEventResponse
	decodeEnvelope(t, rec, &events)
	require.Len(t, events, 1)
	assert.Equal(t, "status_updated", events[0].Action)
	assert.Equal(t, "pending", events[0].FromStatus)
	assert.Equal(t, "confirmed", events[0].ToStatus)
	assert.Equal(t, "admin", events[0].ActorKind)
}
