package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. Line items, shipping address and the
// return/exchange record are embedded as JSONB documents.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type OrderModel struct {
	ID                 uuid.UUID                               `gorm:"type:uuid;primaryKey"`
	OrderNumber        string                                  `gorm:"type:varchar(32);uniqueIndex;not null"`
	UserID             uuid.UUID                               `gorm:"type:uuid;not null;index"`
	Items              datatypes.JSONType[[]OrderItemJSON]     `gorm:"type:jsonb;not null"`
	Subtotal           decimal.Decimal                         `gorm:"type:numeric(12,2);not null"`
	ShippingCost       decimal.Decimal                         `gorm:"type:numeric(12,2);not null"`
	Discount           decimal.Decimal                         `gorm:"type:numeric(12,2);not null"`
	Total              decimal.Decimal                         `gorm:"type:numeric(12,2);not null"`
	PaymentMethod      string                                  `gorm:"type:varchar(32);not null"`
	PaymentStatus      string                                  `gorm:"type:varchar(16);not null"`
	ShippingAddress    datatypes.JSONType[ShippingAddressJSON] `gorm:"type:jsonb;not null"`
	TrackingNumber     string                                  `gorm:"type:varchar(64)"`
	Carrier            string                                  `gorm:"type:varchar(64)"`
	Status             string                                  `gorm:"type:varchar(16);not null;index"`
	CancellationReason string                                  `gorm:"type:text"`
	CancelledBy        string                                  `gorm:"type:varchar(16)"`
	CancelledAt        *time.Time
	DeliveredAt        *time.Time
	ReturnExchange     datatypes.JSONType[*ReturnExchangeJSON] `gorm:"type:jsonb;not null;default:'null'"`
	ReturnStatus       string                                  `gorm:"type:varchar(16);index"`
	Version            int                                     `gorm:"not null;default:1"`
	CreatedAt          time.Time                               `gorm:"index"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemJSON is the stored form of a line item.
type OrderItemJSON struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
}

// ShippingAddressJSON is the stored form of the address snapshot.
type ShippingAddressJSON struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// ReturnExchangeJSON is the stored form of the after-sale request.
type ReturnExchangeJSON struct {
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Reason      string     `json:"reason"`
	RequestedAt time.Time  `json:"requestedAt"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	AdminNotes  string     `json:"adminNotes"`
}

// OrderEventModel mirrors the append-only 'order_events' audit table.
type OrderEventModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderNumber  string    `gorm:"type:varchar(32);not null"`
	UserID       uuid.UUID `gorm:"type:uuid;not null"`
	Action       string    `gorm:"type:varchar(32);not null"`
	FromStatus   string    `gorm:"type:varchar(16)"`
	ToStatus     string    `gorm:"type:varchar(16);not null"`
	ReturnStatus string    `gorm:"type:varchar(16)"`
	ActorID      uuid.UUID `gorm:"type:uuid;not null"`
	ActorKind    string    `gorm:"type:varchar(16);not null"`
	Note         string    `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderEventModel) TableName() string {
	return "order_events"
}
