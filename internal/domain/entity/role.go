// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Resource is an admin panel area guarded by permissions.
type Resource string

// Action is an operation on a resource.
type Action string

const (
	ResourceDashboard       Resource = "dashboard"
	ResourceUsers           Resource = "users"
	ResourceOrders          Resource = "orders"
	ResourceProducts        Resource = "products"
	ResourceInventory       Resource = "inventory"
	ResourceAnalytics       Resource = "analytics"
	ResourceSettings        Resource = "settings"
	ResourceRolePermissions Resource = "rolePermissions"
)

const (
	ActionView          Action = "view"
	ActionCreate        Action = "create"
	ActionEdit          Action = "edit"
	ActionDelete        Action = "delete"
	ActionBlock         Action = "block"
	ActionExport        Action = "export"
	ActionUpdateStatus  Action = "updateStatus"
	ActionCancel        Action = "cancel"
	ActionManageReturns Action = "manageReturns"
)

// permissionCatalog is the full set of bits a role can hold.
var permissionCatalog = map[Resource][]Action{
	ResourceDashboard:       {ActionView},
	ResourceUsers:           {ActionView, ActionCreate, ActionEdit, ActionDelete, ActionBlock},
	ResourceOrders:          {ActionView, ActionUpdateStatus, ActionCancel, ActionManageReturns},
	ResourceProducts:        {ActionView, ActionCreate, ActionEdit, ActionDelete},
	ResourceInventory:       {ActionView, ActionEdit},
	ResourceAnalytics:       {ActionView, ActionExport},
	ResourceSettings:        {ActionView, ActionEdit},
	ResourceRolePermissions: {ActionView, ActionEdit},
}

// IsKnownPermission reports whether the pair exists in the catalog.
func IsKnownPermission(resource Resource, action Action) bool {
	return slices.Contains(permissionCatalog[resource], action)
}

// Resources returns the catalog resources sorted by name.
func Resources() []Resource {
	resources := make([]Resource, 0, len(permissionCatalog))
	for r := range permissionCatalog {
		resources = append(resources, r)
	}
	sort.Slice(resources, func(i, j int) bool { return resources[i] < resources[j] })

	return resources
}

// ActionsOf returns the actions defined for a resource.
func ActionsOf(resource Resource) []Action {
	return slices.Clone(permissionCatalog[resource])
}

// Permissions is the role matrix: resource -> action -> allowed.
type Permissions map[Resource]map[Action]bool

// Allows reports whether the bit is set. Missing entries are denied.
func (p Permissions) Allows(resource Resource, action Action) bool {
	return p[resource][action]
}

// Set flips a single bit, creating the resource row when needed.
func (p Permissions) Set(resource Resource, action Action, enabled bool) {
	if p[resource] == nil {
		p[resource] = make(map[Action]bool)
	}
	p[resource][action] = enabled
}

// Granted lists the enabled bits as resource/action pairs, sorted for stable output.
func (p Permissions) Granted() [][2]string {
	granted := make([][2]string, 0)
	for _, resource := range Resources() {
		for _, action := range permissionCatalog[resource] {
			if p.Allows(resource, action) {
				granted = append(granted, [2]string{string(resource), string(action)})
			}
		}
	}

	return granted
}

// AllPermissions returns a matrix with every catalog bit enabled.
func AllPermissions() Permissions {
	p := make(Permissions, len(permissionCatalog))
	for resource, actions := range permissionCatalog {
		for _, action := range actions {
			p.Set(resource, action, true)
		}
	}

	return p
}

// Default role names.
const (
	RoleNameAdmin    = "admin"
	RoleNameManager  = "manager"
	RoleNameSupport  = "support"
	RoleNameCustomer = "customer"
)

// Role groups permissions under a name referenced by users.
type Role struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsSystem    bool
	Permissions Permissions
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLockoutBit reports whether turning this bit off would leave nobody able to edit roles.
func (r *Role) IsLockoutBit(resource Resource, action Action) bool {
	return r.Name == RoleNameAdmin && resource == ResourceRolePermissions && action == ActionEdit
}

// DefaultRoles returns the seed roles.
func DefaultRoles() []*Role {
	manager := make(Permissions)
	for _, resource := range []Resource{ResourceOrders, ResourceProducts, ResourceInventory, ResourceAnalytics} {
		for _, action := range permissionCatalog[resource] {
			manager.Set(resource, action, true)
		}
	}
	manager.Set(ResourceDashboard, ActionView, true)

	support := make(Permissions)
	support.Set(ResourceDashboard, ActionView, true)
	support.Set(ResourceOrders, ActionView, true)
	support.Set(ResourceOrders, ActionCancel, true)
	support.Set(ResourceOrders, ActionManageReturns, true)

	return []*Role{
		{Name: RoleNameAdmin, Description: "Full access", IsSystem: true, Permissions: AllPermissions()},
		{Name: RoleNameManager, Description: "Store operations", IsSystem: true, Permissions: manager},
		{Name: RoleNameSupport, Description: "Customer support", IsSystem: true, Permissions: support},
		{Name: RoleNameCustomer, Description: "Storefront customer", IsSystem: true, Permissions: make(Permissions)},
	}
}
