package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves order routes on both the storefront and the admin surface.
// The actor kind set by the auth middleware decides which rules apply.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var input usecase.ListOrdersInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	page, err := h.orderUC.ListOrders(c.Request().Context(), actor, &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newOrderListResponse(page), "Orders retrieved successfully")
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order), "Order retrieved successfully")
}

// ListOrderEvents handles GET /admin/orders/:id/events
func (h *OrderHandler) ListOrderEvents(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	events, err := h.orderUC.ListOrderEvents(c.Request().Context(), orderID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newOrderEventResponses(events), "Order events retrieved successfully")
}

// UpdateOrderStatus handles PATCH /admin/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateOrderStatusInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), actor, orderID, &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order), "Order status updated successfully")
}

// CancelOrder handles PATCH /orders/:id/cancel on both surfaces
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.CancelOrderInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	order, err := h.orderUC.CancelOrder(c.Request().Context(), actor, orderID, &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order), "Order cancelled successfully")
}

// RequestReturnExchange handles POST /orders/:id/return-exchange
func (h *OrderHandler) RequestReturnExchange(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.ReturnExchangeRequestInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	order, err := h.orderUC.RequestReturnExchange(c.Request().Context(), actor, orderID, &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newOrderResponse(order), "Return/exchange request submitted successfully")
}

// ProcessReturnExchange handles PATCH /admin/orders/:id/return-exchange
func (h *OrderHandler) ProcessReturnExchange(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.ProcessReturnExchangeInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	order, err := h.orderUC.ProcessReturnExchange(c.Request().Context(), actor, orderID, &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order), "Return/exchange request "+input.Action)
}

// CompleteReturnExchange handles PATCH /admin/orders/:id/return-exchange/complete
func (h *OrderHandler) CompleteReturnExchange(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.CompleteReturnExchangeInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	order, err := h.orderUC.CompleteReturnExchange(c.Request().Context(), actor, orderID, &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order), "Return/exchange completed successfully")
}
