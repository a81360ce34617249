package entity

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2026, 1, 15, 23, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^ORD-20260115-[A-HJ-NP-Z2-9]{6}$`)

	seen := make(map[string]struct{})
	for range 50 {
		number := NewOrderNumber(now)
		assert.Regexp(t, pattern, number)
		seen[number] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestOrder_RecalculateTotals(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{Name: "Linen shirt", Price: decimal.RequireFromString("39.90"), Quantity: 2},
			{Name: "Canvas belt", Price: decimal.RequireFromString("12.50"), Quantity: 1},
		},
		ShippingCost: decimal.RequireFromString("5.00"),
		Discount:     decimal.RequireFromString("10.00"),
	}

	order.RecalculateTotals()

	assert.True(t, decimal.RequireFromString("92.30").Equal(order.Subtotal), order.Subtotal.String())
	assert.True(t, decimal.RequireFromString("87.30").Equal(order.Total), order.Total.String())
}

func TestPermissions_Granted(t *testing.T) {
	p := make(Permissions)
	p.Set(ResourceOrders, ActionView, true)
	p.Set(ResourceOrders, ActionCancel, false)
	p.Set(ResourceDashboard, ActionView, true)

	assert.Equal(t, [][2]string{{"dashboard", "view"}, {"orders", "view"}}, p.Granted())
	assert.False(t, p.Allows(ResourceUsers, ActionDelete))
}

func TestRole_IsLockoutBit(t *testing.T) {
	admin := &Role{Name: RoleNameAdmin}
	manager := &Role{Name: RoleNameManager}

	assert.True(t, admin.IsLockoutBit(ResourceRolePermissions, ActionEdit))
	assert.False(t, admin.IsLockoutBit(ResourceRolePermissions, ActionView))
	assert.False(t, manager.IsLockoutBit(ResourceRolePermissions, ActionEdit))
}

func TestIsKnownPermission(t *testing.T) {
	assert.True(t, IsKnownPermission(ResourceOrders, ActionManageReturns))
	assert.False(t, IsKnownPermission(ResourceDashboard, ActionDelete))
	assert.False(t, IsKnownPermission("coupons", ActionView))
}
