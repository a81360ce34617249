// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the order lifecycle operations for both the storefront and the back-office.
// Customer actors only ever see and touch their own orders.
type OrderUsecase interface {
	ListOrders(ctx context.Context, actor entity.Actor, input *ListOrdersInput) (*OrderPage, error)
	GetOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error)
	ListOrderEvents(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderEvent, error)
	UpdateOrderStatus(ctx context.Context, actor entity.Actor, orderID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)
	CancelOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID, input *CancelOrderInput) (*entity.Order, error)
	RequestReturnExchange(ctx context.Context, actor entity.Actor, orderID uuid.UUID, input *ReturnExchangeRequestInput) (*entity.Order, error)
	ProcessReturnExchange(ctx context.Context, actor entity.Actor, orderID uuid.UUID, input *ProcessReturnExchangeInput) (*entity.Order, error)
	CompleteReturnExchange(ctx context.Context, actor entity.Actor, orderID uuid.UUID, input *CompleteReturnExchangeInput) (*entity.Order, error)
}

// --- Input DTOs ---

// ListOrdersInput filters an order listing. Page is 1-based.
type ListOrdersInput struct {
	Status       string `query:"status"`
	ReturnStatus string `query:"returnStatus"`
	Search       string `query:"q"`
	Page         int    `query:"page"`
	PageSize     int    `query:"pageSize"`
}

// UpdateOrderStatusInput is the admin status change.
type UpdateOrderStatusInput struct {
	Status         string `json:"status" validate:"required"`
	TrackingNumber string `json:"trackingNumber,omitempty" validate:"max=100"`
	Carrier        string `json:"carrier,omitempty" validate:"max=100"`
}

// CancelOrderInput carries the optional cancellation reason.
type CancelOrderInput struct {
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

// ReturnExchangeRequestInput is the customer's return or exchange request.
type ReturnExchangeRequestInput struct {
	Type   string `json:"type" validate:"required"`
	Reason string `json:"reason" validate:"max=1000"`
}

// ProcessReturnExchangeInput is the admin decision on a pending request.
type ProcessReturnExchangeInput struct {
	Action     string `json:"action" validate:"required"`
	AdminNotes string `json:"adminNotes,omitempty" validate:"max=1000"`
}

// CompleteReturnExchangeInput closes an approved request.
type CompleteReturnExchangeInput struct {
	AdminNotes string `json:"adminNotes,omitempty" validate:"max=1000"`
}

// --- Output DTOs ---

// OrderPage is one page of an order listing.
type OrderPage struct {
	Orders   []*entity.Order `json:"orders"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}
