package postgres

import (
	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

func toOrderDomain(m *model.OrderModel) *entity.Order {
	if m == nil {
		return nil
	}

	itemsJSON := m.Items.Data()
	items := make([]entity.OrderItem, 0, len(itemsJSON))
	for _, item := range itemsJSON {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	address := m.ShippingAddress.Data()

	return &entity.Order{
		ID:            m.ID,
		OrderNumber:   m.OrderNumber,
		UserID:        m.UserID,
		Items:         items,
		Subtotal:      m.Subtotal,
		ShippingCost:  m.ShippingCost,
		Discount:      m.Discount,
		Total:         m.Total,
		PaymentMethod: m.PaymentMethod,
		PaymentStatus: entity.PaymentStatus(m.PaymentStatus),
		ShippingAddress: entity.ShippingAddress{
			FullName:   address.FullName,
			Phone:      address.Phone,
			Line1:      address.Line1,
			Line2:      address.Line2,
			City:       address.City,
			State:      address.State,
			PostalCode: address.PostalCode,
			Country:    address.Country,
		},
		TrackingNumber:     m.TrackingNumber,
		Carrier:            m.Carrier,
		Status:             entity.OrderStatus(m.Status),
		CancellationReason: m.CancellationReason,
		CancelledBy:        entity.ActorKind(m.CancelledBy),
		CancelledAt:        m.CancelledAt,
		DeliveredAt:        m.DeliveredAt,
		ReturnExchange:     toReturnExchangeDomain(m.ReturnExchange.Data()),
		Version:            m.Version,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toReturnExchangeDomain(re *model.ReturnExchangeJSON) *entity.ReturnExchange {
	if re == nil {
		return nil
	}

	return &entity.ReturnExchange{
		Type:        entity.ReturnExchangeType(re.Type),
		Status:      entity.ReturnExchangeStatus(re.Status),
		Reason:      re.Reason,
		RequestedAt: re.RequestedAt,
		ProcessedAt: re.ProcessedAt,
		CompletedAt: re.CompletedAt,
		AdminNotes:  re.AdminNotes,
	}
}

func fromOrderDomain(order *entity.Order) *model.OrderModel {
	items := make([]model.OrderItemJSON, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, model.OrderItemJSON{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	var returnExchange *model.ReturnExchangeJSON
	returnStatus := ""
	if re := order.ReturnExchange; re != nil {
		returnExchange = &model.ReturnExchangeJSON{
			Type:        string(re.Type),
			Status:      string(re.Status),
			Reason:      re.Reason,
			RequestedAt: re.RequestedAt,
			ProcessedAt: re.ProcessedAt,
			CompletedAt: re.CompletedAt,
			AdminNotes:  re.AdminNotes,
		}
		returnStatus = string(re.Status)
	}

	address := order.ShippingAddress

	return &model.OrderModel{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		UserID:        order.UserID,
		Items:         datatypes.NewJSONType(items),
		Subtotal:      order.Subtotal,
		ShippingCost:  order.ShippingCost,
		Discount:      order.Discount,
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: string(order.PaymentStatus),
		ShippingAddress: datatypes.NewJSONType(model.ShippingAddressJSON{
			FullName:   address.FullName,
			Phone:      address.Phone,
			Line1:      address.Line1,
			Line2:      address.Line2,
			City:       address.City,
			State:      address.State,
			PostalCode: address.PostalCode,
			Country:    address.Country,
		}),
		TrackingNumber:     order.TrackingNumber,
		Carrier:            order.Carrier,
		Status:             string(order.Status),
		CancellationReason: order.CancellationReason,
		CancelledBy:        string(order.CancelledBy),
		CancelledAt:        order.CancelledAt,
		DeliveredAt:        order.DeliveredAt,
		ReturnExchange:     datatypes.NewJSONType(returnExchange),
		ReturnStatus:       returnStatus,
		Version:            order.Version,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}

func toOrderEventDomain(m *model.OrderEventModel) *entity.OrderEvent {
	return &entity.OrderEvent{
		ID:           m.ID,
		OrderID:      m.OrderID,
		OrderNumber:  m.OrderNumber,
		UserID:       m.UserID,
		Action:       entity.OrderEventAction(m.Action),
		FromStatus:   entity.OrderStatus(m.FromStatus),
		ToStatus:     entity.OrderStatus(m.ToStatus),
		ReturnStatus: entity.ReturnExchangeStatus(m.ReturnStatus),
		ActorID:      m.ActorID,
		ActorKind:    entity.ActorKind(m.ActorKind),
		Note:         m.Note,
		CreatedAt:    m.CreatedAt,
	}
}

func fromOrderEventDomain(e *entity.OrderEvent) *model.OrderEventModel {
	return &model.OrderEventModel{
		ID:           e.ID,
		OrderID:      e.OrderID,
		OrderNumber:  e.OrderNumber,
		UserID:       e.UserID,
		Action:       string(e.Action),
		FromStatus:   string(e.FromStatus),
		ToStatus:     string(e.ToStatus),
		ReturnStatus: string(e.ReturnStatus),
		ActorID:      e.ActorID,
		ActorKind:    string(e.ActorKind),
		Note:         e.Note,
		CreatedAt:    e.CreatedAt,
	}
}

func toRoleDomain(m *model.RoleModel) *entity.Role {
	stored := m.Permissions.Data()
	permissions := make(entity.Permissions, len(stored))
	for resource, actions := range stored {
		for action, enabled := range actions {
			permissions.Set(entity.Resource(resource), entity.Action(action), enabled)
		}
	}

	return &entity.Role{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		IsSystem:    m.IsSystem,
		Permissions: permissions,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromPermissionsDomain(p entity.Permissions) model.PermissionsJSON {
	stored := make(model.PermissionsJSON, len(p))
	for resource, actions := range p {
		row := make(map[string]bool, len(actions))
		for action, enabled := range actions {
			row[string(action)] = enabled
		}
		stored[string(resource)] = row
	}

	return stored
}

func toUserDomain(m *model.UserModel) *entity.User {
	stored := m.Addresses.Data()
	addresses := make([]entity.Address, 0, len(stored))
	for _, a := range stored {
		addresses = append(addresses, entity.Address{
			Label:      a.Label,
			FullName:   a.FullName,
			Phone:      a.Phone,
			Line1:      a.Line1,
			Line2:      a.Line2,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
			IsDefault:  a.IsDefault,
		})
	}

	return &entity.User{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Role:       m.Role,
		IsBlocked:  m.IsBlocked,
		IsVerified: m.IsVerified,
		Addresses:  addresses,
		Wishlist:   m.Wishlist.Data(),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	addresses := make([]model.AddressJSON, 0, len(u.Addresses))
	for _, a := range u.Addresses {
		addresses = append(addresses, model.AddressJSON{
			Label:      a.Label,
			FullName:   a.FullName,
			Phone:      a.Phone,
			Line1:      a.Line1,
			Line2:      a.Line2,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
			IsDefault:  a.IsDefault,
		})
	}

	return &model.UserModel{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       u.Role,
		IsBlocked:  u.IsBlocked,
		IsVerified: u.IsVerified,
		Addresses:  datatypes.NewJSONType(addresses),
		Wishlist:   datatypes.NewJSONType(u.Wishlist),
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
