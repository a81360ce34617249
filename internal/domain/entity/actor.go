package entity

import "github.com/google/uuid"

// ActorKind tells which surface a mutation came from.
type ActorKind string

const (
	ActorKindAdmin    ActorKind = "admin"
	ActorKindCustomer ActorKind = "customer"
)

// Actor is the authenticated principal behind a request.
type Actor struct {
	UserID uuid.UUID
	Roles  []string
	Kind   ActorKind
}

// NewAdminActor returns an actor for the back-office surface.
func NewAdminActor(userID uuid.UUID, roles []string) Actor {
	return Actor{UserID: userID, Roles: roles, Kind: ActorKindAdmin}
}

// NewCustomerActor returns an actor for the storefront surface.
func NewCustomerActor(userID uuid.UUID, roles []string) Actor {
	return Actor{UserID: userID, Roles: roles, Kind: ActorKindCustomer}
}
