package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderEventAction names the mutation an audit entry records.
type OrderEventAction string

const (
	OrderEventStatusUpdated     OrderEventAction = "status_updated"
	OrderEventCancelled         OrderEventAction = "cancelled"
	OrderEventReturnRequested   OrderEventAction = "return_requested"
	OrderEventReturnAdjudicated OrderEventAction = "return_adjudicated"
	OrderEventReturnCompleted   OrderEventAction = "return_completed"
)

// OrderEvent is an append-only audit record of a successful order mutation.
type OrderEvent struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	OrderNumber  string
	UserID       uuid.UUID // order owner
	Action       OrderEventAction
	FromStatus   OrderStatus
	ToStatus     OrderStatus
	ReturnStatus ReturnExchangeStatus
	ActorID      uuid.UUID
	ActorKind    ActorKind
	Note         string
	CreatedAt    time.Time
}

// NewOrderEvent snapshots the order after a mutation.
func NewOrderEvent(order *Order, action OrderEventAction, from OrderStatus, actor Actor, note string, now time.Time) *OrderEvent {
	event := &OrderEvent{
		ID:          uuid.New(),
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		Action:      action,
		FromStatus:  from,
		ToStatus:    order.Status,
		ActorID:     actor.UserID,
		ActorKind:   actor.Kind,
		Note:        note,
		CreatedAt:   now,
	}
	if order.ReturnExchange != nil {
		event.ReturnStatus = order.ReturnExchange.Status
	}

	return event
}
