package service

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// OrderEventMessage is the wire payload published for every order mutation.
type OrderEventMessage struct {
	RequestID    string `json:"requestId,omitempty"` // For distributed tracing
	EventID      string `json:"eventId"`
	OrderID      string `json:"orderId"`
	OrderNumber  string `json:"orderNumber"`
	UserID       string `json:"userId"`
	Action       string `json:"action"`
	FromStatus   string `json:"fromStatus,omitempty"`
	ToStatus     string `json:"toStatus"`
	ReturnStatus string `json:"returnStatus,omitempty"`
	ActorID      string `json:"actorId"`
	ActorKind    string `json:"actorKind"`
	OccurredAt   string `json:"occurredAt"`
}

// NewOrderEventMessage converts an audit entry into its published form.
func NewOrderEventMessage(event *entity.OrderEvent, requestID string) *OrderEventMessage {
	return &OrderEventMessage{
		RequestID:    requestID,
		EventID:      event.ID.String(),
		OrderID:      event.OrderID.String(),
		OrderNumber:  event.OrderNumber,
		UserID:       event.UserID.String(),
		Action:       string(event.Action),
		FromStatus:   string(event.FromStatus),
		ToStatus:     string(event.ToStatus),
		ReturnStatus: string(event.ReturnStatus),
		ActorID:      event.ActorID.String(),
		ActorKind:    string(event.ActorKind),
		OccurredAt:   event.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// EventPublisher defines the interface for publishing events to a message bus
type EventPublisher interface {
	// PublishOrderEvent publishes an order mutation for downstream consumers
	PublishOrderEvent(ctx context.Context, event *OrderEventMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
