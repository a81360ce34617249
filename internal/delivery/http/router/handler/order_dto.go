package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderResponse is the JSON view of an order shared by both surfaces.
type OrderResponse struct {
	ID                 uuid.UUID               `json:"id"`
	OrderNumber        string                  `json:"orderNumber"`
	UserID             uuid.UUID               `json:"userId"`
	Items              []OrderItemResponse     `json:"items"`
	Subtotal           decimal.Decimal         `json:"subtotal"`
	ShippingCost       decimal.Decimal         `json:"shippingCost"`
	Discount           decimal.Decimal         `json:"discount"`
	Total              decimal.Decimal         `json:"total"`
	PaymentMethod      string                  `json:"paymentMethod"`
	PaymentStatus      string                  `json:"paymentStatus"`
	ShippingAddress    ShippingAddressResponse `json:"shippingAddress"`
	TrackingNumber     string                  `json:"trackingNumber,omitempty"`
	Carrier            string                  `json:"carrier,omitempty"`
	Status             string                  `json:"status"`
	CancellationReason string                  `json:"cancellationReason,omitempty"`
	CancelledBy        string                  `json:"cancelledBy,omitempty"`
	CancelledAt        *time.Time              `json:"cancelledAt,omitempty"`
	DeliveredAt        *time.Time              `json:"deliveredAt,omitempty"`
	ReturnExchange     *ReturnExchangeResponse `json:"returnExchange,omitempty"`
	Version            int                     `json:"version"`
	CreatedAt          time.Time               `json:"createdAt"`
	UpdatedAt          time.Time               `json:"updatedAt"`
}

type OrderItemResponse struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
}

type ShippingAddressResponse struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type ReturnExchangeResponse struct {
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Reason      string     `json:"reason"`
	RequestedAt time.Time  `json:"requestedAt"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	AdminNotes  string     `json:"adminNotes,omitempty"`
}

// OrderListResponse is one page of orders.
type OrderListResponse struct {
	Orders   []OrderResponse `json:"orders"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

// OrderEventResponse is one audit trail entry.
type OrderEventResponse struct {
	ID           uuid.UUID `json:"id"`
	OrderID      uuid.UUID `json:"orderId"`
	Action       string    `json:"action"`
	FromStatus   string    `json:"fromStatus"`
	ToStatus     string    `json:"toStatus"`
	ReturnStatus string    `json:"returnStatus,omitempty"`
	ActorID      uuid.UUID `json:"actorId"`
	ActorKind    string    `json:"actorKind"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func newOrderResponse(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	addr := order.ShippingAddress
	resp := OrderResponse{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		UserID:        order.UserID,
		Items:         items,
		Subtotal:      order.Subtotal,
		ShippingCost:  order.ShippingCost,
		Discount:      order.Discount,
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: string(order.PaymentStatus),
		ShippingAddress: ShippingAddressResponse{
			FullName:   addr.FullName,
			Phone:      addr.Phone,
			Line1:      addr.Line1,
			Line2:      addr.Line2,
			City:       addr.City,
			State:      addr.State,
			PostalCode: addr.PostalCode,
			Country:    addr.Country,
		},
		TrackingNumber:     order.TrackingNumber,
		Carrier:            order.Carrier,
		Status:             order.Status.String(),
		CancellationReason: order.CancellationReason,
		CancelledBy:        string(order.CancelledBy),
		CancelledAt:        order.CancelledAt,
		DeliveredAt:        order.DeliveredAt,
		Version:            order.Version,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
	if re := order.ReturnExchange; re != nil {
		resp.ReturnExchange = &ReturnExchangeResponse{
			Type:        string(re.Type),
			Status:      string(re.Status),
			Reason:      re.Reason,
			RequestedAt: re.RequestedAt,
			ProcessedAt: re.ProcessedAt,
			CompletedAt: re.CompletedAt,
			AdminNotes:  re.AdminNotes,
		}
	}

	return resp
}

func newOrderListResponse(page *usecase.OrderPage) OrderListResponse {
	orders := make([]OrderResponse, 0, len(page.Orders))
	for _, order := range page.Orders {
		orders = append(orders, newOrderResponse(order))
	}

	return OrderListResponse{
		Orders:   orders,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
}

func newOrderEventResponses(events []*entity.OrderEvent) []OrderEventResponse {
	resp := make([]OrderEventResponse, 0, len(events))
	for _, event := range events {
		resp = append(resp, OrderEventResponse{
			ID:           event.ID,
			OrderID:      event.OrderID,
			Action:       string(event.Action),
			FromStatus:   event.FromStatus.String(),
			ToStatus:     event.ToStatus.String(),
			ReturnStatus: string(event.ReturnStatus),
			ActorID:      event.ActorID,
			ActorKind:    string(event.ActorKind),
			Note:         event.Note,
			CreatedAt:    event.CreatedAt,
		})
	}

	return resp
}
