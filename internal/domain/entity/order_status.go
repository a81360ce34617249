package entity

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// orderStatusRank orders the fulfilment progression. Cancelled is off the line.
var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusConfirmed:  1,
	OrderStatusProcessing: 2,
	OrderStatusShipped:    3,
	OrderStatusDelivered:  4,
	OrderStatusCancelled:  -1,
}

// OrderStatuses lists every persisted status in progression order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known values.
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusRank[s]

	return ok
}

// IsFinal reports whether the status can no longer be edited through a status update.
func (s OrderStatus) IsFinal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Rank returns the position of the status on the fulfilment line, -1 for cancelled.
func (s OrderStatus) Rank() int {
	rank, ok := orderStatusRank[s]
	if !ok {
		return -1
	}

	return rank
}

// PaymentStatus tracks payment collection for an order.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}
