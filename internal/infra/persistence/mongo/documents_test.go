package mongo

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestOrderFilterDocument(t *testing.T) {
	userID := uuid.New()

	query := orderFilterDocument(entity.OrderFilter{
		UserID:       &userID,
		Status:       entity.OrderStatusDelivered,
		ReturnStatus: entity.ReturnExchangeStatusRequested,
		Search:       "ORD-2026",
	})

	assert.Equal(t, userID.String(), query["user_id"])
	assert.Equal(t, "delivered", query["status"])
	assert.Equal(t, "requested", query["return_exchange.status"])
	assert.Contains(t, query, "order_number")

	assert.Equal(t, bson.M{}, orderFilterDocument(entity.OrderFilter{}))
}

func TestOrderDocument_PreservesMoneyAndReturnRecord(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	order := &entity.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-20260301-ABCDEF",
		UserID:      uuid.New(),
		Items: []entity.OrderItem{
			{ProductID: uuid.New(), Name: "Linen Shirt", Price: decimal.RequireFromString("49.90"), Quantity: 2, Size: "M"},
		},
		Total:  decimal.RequireFromString("99.80"),
		Status: entity.OrderStatusDelivered,
		ReturnExchange: &entity.ReturnExchange{
			Type:        entity.ReturnExchangeTypeExchange,
			Status:      entity.ReturnExchangeStatusRequested,
			Reason:      "wrong size",
			RequestedAt: now,
		},
		Version: 3,
	}

	got := toOrderDomain(fromOrderDomain(order))

	assert.True(t, order.Items[0].Price.Equal(got.Items[0].Price))
	assert.True(t, order.Total.Equal(got.Total))
	assert.Equal(t, order.ReturnExchange, got.ReturnExchange)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, 3, got.Version)
}
