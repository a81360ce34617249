// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront account. Role names a Role whose permissions gate the admin panel.
type User struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Phone      string
	Role       string
	IsBlocked  bool
	IsVerified bool
	Addresses  []Address
	Wishlist   []uuid.UUID // product ids
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Address is a saved shipping address; at most one is the default.
type Address struct {
	Label      string
	FullName   string
	Phone      string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
	IsDefault  bool
}

// DefaultAddress returns the address flagged as default, if any.
func (u *User) DefaultAddress() (Address, bool) {
	for _, a := range u.Addresses {
		if a.IsDefault {
			return a, true
		}
	}

	return Address{}, false
}

// ToShippingAddress snapshots the address for an order.
func (a Address) ToShippingAddress() ShippingAddress {
	return ShippingAddress{
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
