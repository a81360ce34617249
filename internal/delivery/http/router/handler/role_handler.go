package handler

import (
	"net/http"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RoleHandlerParams holds dependencies for RoleHandler, injected by Fx.
type RoleHandlerParams struct {
	fx.In

	RoleUC usecase.RoleUsecase
}

// RoleHandler serves the role permission matrix to admins.
type RoleHandler struct {
	roleUC usecase.RoleUsecase
}

// NewRoleHandler is the constructor for RoleHandler
func NewRoleHandler(params RoleHandlerParams) *RoleHandler {
	return &RoleHandler{roleUC: params.RoleUC}
}

// RoleResponse is the JSON view of a role.
type RoleResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	IsSystem    bool               `json:"isSystem"`
	Permissions entity.Permissions `json:"permissions"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func newRoleResponse(role *entity.Role) RoleResponse {
	permissions := role.Permissions
	if permissions == nil {
		permissions = make(entity.Permissions)
	}

	return RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		IsSystem:    role.IsSystem,
		Permissions: permissions,
		UpdatedAt:   role.UpdatedAt,
	}
}

// ListRoles handles GET /admin/roles
func (h *RoleHandler) ListRoles(c echo.Context) error {
	roles, err := h.roleUC.ListRoles(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		resp = append(resp, newRoleResponse(role))
	}

	return response.Success(c, http.StatusOK, resp, "Roles retrieved successfully")
}

// GetRole handles GET /admin/roles/:id
func (h *RoleHandler) GetRole(c echo.Context) error {
	roleID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	role, err := h.roleUC.GetRole(c.Request().Context(), roleID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newRoleResponse(role), "Role retrieved successfully")
}

// UpdateRolePermission handles PATCH /admin/roles/:id/permissions
func (h *RoleHandler) UpdateRolePermission(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	roleID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateRolePermissionInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	role, err := h.roleUC.UpdateRolePermission(c.Request().Context(), actor, roleID, &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newRoleResponse(role), "Role permission updated successfully")
}
