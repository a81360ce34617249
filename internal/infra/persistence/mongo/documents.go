package mongo

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type orderDocument struct {
	ID                 string                  `bson:"_id"`
	OrderNumber        string                  `bson:"order_number"`
	UserID             string                  `bson:"user_id"`
	Items              []orderItemDocument     `bson:"items"`
	Subtotal           primitive.Decimal128    `bson:"subtotal"`
	ShippingCost       primitive.Decimal128    `bson:"shipping_cost"`
	Discount           primitive.Decimal128    `bson:"discount"`
	Total              primitive.Decimal128    `bson:"total"`
	PaymentMethod      string                  `bson:"payment_method"`
	PaymentStatus      string                  `bson:"payment_status"`
	ShippingAddress    addressDocument         `bson:"shipping_address"`
	TrackingNumber     string                  `bson:"tracking_number,omitempty"`
	Carrier            string                  `bson:"carrier,omitempty"`
	Status             string                  `bson:"status"`
	CancellationReason string                  `bson:"cancellation_reason,omitempty"`
	CancelledBy        string                  `bson:"cancelled_by,omitempty"`
	CancelledAt        *time.Time              `bson:"cancelled_at,omitempty"`
	DeliveredAt        *time.Time              `bson:"delivered_at,omitempty"`
	ReturnExchange     *returnExchangeDocument `bson:"return_exchange,omitempty"`
	Version            int                     `bson:"version"`
	CreatedAt          time.Time               `bson:"created_at"`
	UpdatedAt          time.Time               `bson:"updated_at"`
}

type orderItemDocument struct {
	ProductID string               `bson:"product_id"`
	Name      string               `bson:"name"`
	Price     primitive.Decimal128 `bson:"price"`
	Quantity  int                  `bson:"quantity"`
	Size      string               `bson:"size,omitempty"`
	Color     string               `bson:"color,omitempty"`
}

type addressDocument struct {
	Label      string `bson:"label,omitempty"`
	FullName   string `bson:"full_name"`
	Phone      string `bson:"phone"`
	Line1      string `bson:"line1"`
	Line2      string `bson:"line2,omitempty"`
	City       string `bson:"city"`
	State      string `bson:"state,omitempty"`
	PostalCode string `bson:"postal_code"`
	Country    string `bson:"country"`
	IsDefault  bool   `bson:"is_default,omitempty"`
}

type returnExchangeDocument struct {
	Type        string     `bson:"type"`
	Status      string     `bson:"status"`
	Reason      string     `bson:"reason"`
	RequestedAt time.Time  `bson:"requested_at"`
	ProcessedAt *time.Time `bson:"processed_at,omitempty"`
	CompletedAt *time.Time `bson:"completed_at,omitempty"`
	AdminNotes  string     `bson:"admin_notes"`
}

type orderEventDocument struct {
	ID           string    `bson:"_id"`
	OrderID      string    `bson:"order_id"`
	OrderNumber  string    `bson:"order_number"`
	UserID       string    `bson:"user_id"`
	Action       string    `bson:"action"`
	FromStatus   string    `bson:"from_status,omitempty"`
	ToStatus     string    `bson:"to_status"`
	ReturnStatus string    `bson:"return_status,omitempty"`
	ActorID      string    `bson:"actor_id"`
	ActorKind    string    `bson:"actor_kind"`
	Note         string    `bson:"note,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
}

type roleDocument struct {
	ID          string                     `bson:"_id"`
	Name        string                     `bson:"name"`
	Description string                     `bson:"description"`
	IsSystem    bool                       `bson:"is_system"`
	Permissions map[string]map[string]bool `bson:"permissions"`
	CreatedAt   time.Time                  `bson:"created_at"`
	UpdatedAt   time.Time                  `bson:"updated_at"`
}

type userDocument struct {
	ID         string            `bson:"_id"`
	Name       string            `bson:"name"`
	Email      string            `bson:"email"`
	Phone      string            `bson:"phone,omitempty"`
	Role       string            `bson:"role"`
	IsBlocked  bool              `bson:"is_blocked"`
	IsVerified bool              `bson:"is_verified"`
	Addresses  []addressDocument `bson:"addresses"`
	Wishlist   []string          `bson:"wishlist"`
	CreatedAt  time.Time         `bson:"created_at"`
	UpdatedAt  time.Time         `bson:"updated_at"`
}

func toDecimal128(d decimal.Decimal) primitive.Decimal128 {
	value, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.NewDecimal128(0, 0)
	}

	return value
}

func fromDecimal128(d primitive.Decimal128) decimal.Decimal {
	value, err := decimal.NewFromString(d.String())
	if err != nil {
		return decimal.Zero
	}

	return value
}

func parseUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}

	return id
}

func fromOrderDomain(order *entity.Order) *orderDocument {
	items := make([]orderItemDocument, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemDocument{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			Price:     toDecimal128(item.Price),
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	doc := &orderDocument{
		ID:                 order.ID.String(),
		OrderNumber:        order.OrderNumber,
		UserID:             order.UserID.String(),
		Items:              items,
		Subtotal:           toDecimal128(order.Subtotal),
		ShippingCost:       toDecimal128(order.ShippingCost),
		Discount:           toDecimal128(order.Discount),
		Total:              toDecimal128(order.Total),
		PaymentMethod:      order.PaymentMethod,
		PaymentStatus:      string(order.PaymentStatus),
		ShippingAddress:    fromShippingAddress(order.ShippingAddress),
		TrackingNumber:     order.TrackingNumber,
		Carrier:            order.Carrier,
		Status:             string(order.Status),
		CancellationReason: order.CancellationReason,
		CancelledBy:        string(order.CancelledBy),
		CancelledAt:        order.CancelledAt,
		DeliveredAt:        order.DeliveredAt,
		Version:            order.Version,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
	if re := order.ReturnExchange; re != nil {
		doc.ReturnExchange = &returnExchangeDocument{
			Type:        string(re.Type),
			Status:      string(re.Status),
			Reason:      re.Reason,
			RequestedAt: re.RequestedAt,
			ProcessedAt: re.ProcessedAt,
			CompletedAt: re.CompletedAt,
			AdminNotes:  re.AdminNotes,
		}
	}

	return doc
}

func toOrderDomain(doc *orderDocument) *entity.Order {
	items := make([]entity.OrderItem, 0, len(doc.Items))
	for _, item := range doc.Items {
		items = append(items, entity.OrderItem{
			ProductID: parseUUID(item.ProductID),
			Name:      item.Name,
			Price:     fromDecimal128(item.Price),
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	order := &entity.Order{
		ID:                 parseUUID(doc.ID),
		OrderNumber:        doc.OrderNumber,
		UserID:             parseUUID(doc.UserID),
		Items:              items,
		Subtotal:           fromDecimal128(doc.Subtotal),
		ShippingCost:       fromDecimal128(doc.ShippingCost),
		Discount:           fromDecimal128(doc.Discount),
		Total:              fromDecimal128(doc.Total),
		PaymentMethod:      doc.PaymentMethod,
		PaymentStatus:      entity.PaymentStatus(doc.PaymentStatus),
		ShippingAddress:    toAddressDomain(doc.ShippingAddress).ToShippingAddress(),
		TrackingNumber:     doc.TrackingNumber,
		Carrier:            doc.Carrier,
		Status:             entity.OrderStatus(doc.Status),
		CancellationReason: doc.CancellationReason,
		CancelledBy:        entity.ActorKind(doc.CancelledBy),
		CancelledAt:        doc.CancelledAt,
		DeliveredAt:        doc.DeliveredAt,
		Version:            doc.Version,
		CreatedAt:          doc.CreatedAt,
		UpdatedAt:          doc.UpdatedAt,
	}
	if re := doc.ReturnExchange; re != nil {
		order.ReturnExchange = &entity.ReturnExchange{
			Type:        entity.ReturnExchangeType(re.Type),
			Status:      entity.ReturnExchangeStatus(re.Status),
			Reason:      re.Reason,
			RequestedAt: re.RequestedAt,
			ProcessedAt: re.ProcessedAt,
			CompletedAt: re.CompletedAt,
			AdminNotes:  re.AdminNotes,
		}
	}

	return order
}

func fromShippingAddress(a entity.ShippingAddress) addressDocument {
	return addressDocument{
		FullName:   a.FullName,
		Phone:      a.Phone,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func fromAddressDomain(a entity.Address) addressDocument {
	doc := fromShippingAddress(a.ToShippingAddress())
	doc.Label = a.Label
	doc.IsDefault = a.IsDefault

	return doc
}

func toAddressDomain(doc addressDocument) entity.Address {
	return entity.Address{
		Label:      doc.Label,
		FullName:   doc.FullName,
		Phone:      doc.Phone,
		Line1:      doc.Line1,
		Line2:      doc.Line2,
		City:       doc.City,
		State:      doc.State,
		PostalCode: doc.PostalCode,
		Country:    doc.Country,
		IsDefault:  doc.IsDefault,
	}
}

func fromOrderEventDomain(e *entity.OrderEvent) *orderEventDocument {
	return &orderEventDocument{
		ID:           e.ID.String(),
		OrderID:      e.OrderID.String(),
		OrderNumber:  e.OrderNumber,
		UserID:       e.UserID.String(),
		Action:       string(e.Action),
		FromStatus:   string(e.FromStatus),
		ToStatus:     string(e.ToStatus),
		ReturnStatus: string(e.ReturnStatus),
		ActorID:      e.ActorID.String(),
		ActorKind:    string(e.ActorKind),
		Note:         e.Note,
		CreatedAt:    e.CreatedAt,
	}
}

func toOrderEventDomain(doc *orderEventDocument) *entity.OrderEvent {
	return &entity.OrderEvent{
		ID:           parseUUID(doc.ID),
		OrderID:      parseUUID(doc.OrderID),
		OrderNumber:  doc.OrderNumber,
		UserID:       parseUUID(doc.UserID),
		Action:       entity.OrderEventAction(doc.Action),
		FromStatus:   entity.OrderStatus(doc.FromStatus),
		ToStatus:     entity.OrderStatus(doc.ToStatus),
		ReturnStatus: entity.ReturnExchangeStatus(doc.ReturnStatus),
		ActorID:      parseUUID(doc.ActorID),
		ActorKind:    entity.ActorKind(doc.ActorKind),
		Note:         doc.Note,
		CreatedAt:    doc.CreatedAt,
	}
}

func fromPermissionsDomain(p entity.Permissions) map[string]map[string]bool {
	stored := make(map[string]map[string]bool, len(p))
	for resource, actions := range p {
		row := make(map[string]bool, len(actions))
		for action, enabled := range actions {
			row[string(action)] = enabled
		}
		stored[string(resource)] = row
	}

	return stored
}

func toRoleDomain(doc *roleDocument) *entity.Role {
	permissions := make(entity.Permissions, len(doc.Permissions))
	for resource, actions := range doc.Permissions {
		for action, enabled := range actions {
			permissions.Set(entity.Resource(resource), entity.Action(action), enabled)
		}
	}

	return &entity.Role{
		ID:          parseUUID(doc.ID),
		Name:        doc.Name,
		Description: doc.Description,
		IsSystem:    doc.IsSystem,
		Permissions: permissions,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *userDocument {
	addresses := make([]addressDocument, 0, len(u.Addresses))
	for _, a := range u.Addresses {
		addresses = append(addresses, fromAddressDomain(a))
	}
	wishlist := make([]string, 0, len(u.Wishlist))
	for _, id := range u.Wishlist {
		wishlist = append(wishlist, id.String())
	}

	return &userDocument{
		ID:         u.ID.String(),
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       u.Role,
		IsBlocked:  u.IsBlocked,
		IsVerified: u.IsVerified,
		Addresses:  addresses,
		Wishlist:   wishlist,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func toUserDomain(doc *userDocument) *entity.User {
	addresses := make([]entity.Address, 0, len(doc.Addresses))
	for _, a := range doc.Addresses {
		addresses = append(addresses, toAddressDomain(a))
	}
	wishlist := make([]uuid.UUID, 0, len(doc.Wishlist))
	for _, id := range doc.Wishlist {
		wishlist = append(wishlist, parseUUID(id))
	}

	return &entity.User{
		ID:         parseUUID(doc.ID),
		Name:       doc.Name,
		Email:      doc.Email,
		Phone:      doc.Phone,
		Role:       doc.Role,
		IsBlocked:  doc.IsBlocked,
		IsVerified: doc.IsVerified,
		Addresses:  addresses,
		Wishlist:   wishlist,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}
