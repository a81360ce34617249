package postgres

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mappedOrder() *entity.Order {
	createdAt := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)
	deliveredAt := createdAt.Add(72 * time.Hour)

	return &entity.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-20260310-7KQ2MX",
		UserID:      uuid.New(),
		Items: []entity.OrderItem{
			{ProductID: uuid.New(), Name: "Linen shirt", Price: decimal.RequireFromString("39.90"), Quantity: 2, Size: "M", Color: "sand"},
		},
		Subtotal:      decimal.RequireFromString("79.80"),
		ShippingCost:  decimal.RequireFromString("4.50"),
		Discount:      decimal.RequireFromString("5.00"),
		Total:         decimal.RequireFromString("79.30"),
		PaymentMethod: "card",
		PaymentStatus: entity.PaymentStatusPaid,
		ShippingAddress: entity.ShippingAddress{
			FullName: "Mei Lin", Line1: "12 Harbour Rd", City: "Taipei", PostalCode: "100", Country: "TW",
		},
		TrackingNumber: "TRK-1",
		Carrier:        "DHL",
		Status:         entity.OrderStatusDelivered,
		DeliveredAt:    &deliveredAt,
		Version:        4,
		CreatedAt:      createdAt,
		UpdatedAt:      deliveredAt,
	}
}

func TestOrderMapper_RoundTrip(t *testing.T) {
	order := mappedOrder()
	requestedAt := order.DeliveredAt.Add(6 * time.Hour)
	order.ReturnExchange = &entity.ReturnExchange{
		Type:        entity.ReturnExchangeTypeReturn,
		Status:      entity.ReturnExchangeStatusRequested,
		Reason:      "too small",
		RequestedAt: requestedAt,
	}

	orderM := fromOrderDomain(order)
	assert.Equal(t, string(entity.ReturnExchangeStatusRequested), orderM.ReturnStatus)

	assert.Equal(t, order, toOrderDomain(orderM))
}

func TestOrderMapper_AbsentReturnExchangeStoredAsNull(t *testing.T) {
	order := mappedOrder()

	orderM := fromOrderDomain(order)

	assert.Nil(t, orderM.ReturnExchange.Data())
	assert.Empty(t, orderM.ReturnStatus)
	value, err := orderM.ReturnExchange.Value()
	require.NoError(t, err)
	assert.Equal(t, "null", value)

	assert.Nil(t, toOrderDomain(orderM).ReturnExchange)
}

func TestToOrderDomain_Nil(t *testing.T) {
	assert.Nil(t, toOrderDomain(nil))
}
