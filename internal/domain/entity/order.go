package entity

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a customer purchase with snapshot pricing and a fulfilment status.
// Orders are created at checkout and never deleted.
type Order struct {
	ID                 uuid.UUID
	OrderNumber        string
	UserID             uuid.UUID
	Items              []OrderItem
	Subtotal           decimal.Decimal
	ShippingCost       decimal.Decimal
	Discount           decimal.Decimal
	Total              decimal.Decimal
	PaymentMethod      string
	PaymentStatus      PaymentStatus
	ShippingAddress    ShippingAddress
	TrackingNumber     string
	Carrier            string
	Status             OrderStatus
	CancellationReason string
	CancelledBy        ActorKind
	CancelledAt        *time.Time
	DeliveredAt        *time.Time
	ReturnExchange     *ReturnExchange
	Version            int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// OrderItem is a line item with product data copied at checkout time.
type OrderItem struct {
	ProductID uuid.UUID
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Size      string
	Color     string
}

// LineTotal returns price times quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ShippingAddress is the delivery address captured at checkout.
type ShippingAddress struct {
	FullName   string
	Phone      string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// OrderFilter narrows order listings. Zero values mean no constraint.
type OrderFilter struct {
	UserID       *uuid.UUID
	Status       OrderStatus
	ReturnStatus ReturnExchangeStatus
	Search       string
	Limit        int
	Offset       int
}

// IsOwnedBy reports whether the order belongs to the given user.
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.UserID == userID
}

// RecalculateTotals derives subtotal and total from the items.
func (o *Order) RecalculateTotals() {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	o.Subtotal = subtotal
	o.Total = subtotal.Add(o.ShippingCost).Sub(o.Discount)
}

const orderNumberAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewOrderNumber builds a human readable order number such as ORD-20260115-7KQ2MX.
func NewOrderNumber(now time.Time) string {
	suffix := make([]byte, 6)
	_, _ = rand.Read(suffix)
	for i, b := range suffix {
		suffix[i] = orderNumberAlphabet[int(b)%len(orderNumberAlphabet)]
	}

	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102"), suffix)
}
