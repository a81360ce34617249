package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoleHandler_ListRoles(t *testing.T) {
	roleUC := mockUsecase.NewMockRoleUsecase(t)
	handler := NewRoleHandler(RoleHandlerParams{RoleUC: roleUC})

	roles := entity.DefaultRoles()
	roleUC.EXPECT().ListRoles(mock.Anything).Return(roles, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet})
	require.NoError(t, handler.ListRoles(c))

	var body []RoleResponse
	decodeEnvelope(t, rec, &body)
	require.Len(t, body, len(roles))
	assert.Equal(t, entity.RoleNameAdmin, body[0].Name)
	assert.True(t, body[0].Permissions.Allows(entity.ResourceRolePermissions, entity.ActionEdit))
	assert.NotNil(t, body[3].Permissions)
}

func TestRoleHandler_UpdateRolePermission(t *testing.T) {
	admin := entity.NewAdminActor(uuid.New(), []string{entity.RoleNameAdmin})

	t.Run("success", func(t *testing.T) {
		roleUC := mockUsecase.NewMockRoleUsecase(t)
		handler := NewRoleHandler(RoleHandlerParams{RoleUC: roleUC})
		role := entity.DefaultRoles()[2]
		role.ID = uuid.New()

		roleUC.EXPECT().
			UpdateRolePermission(mock.Anything, admin, role.ID, mock.MatchedBy(func(in *usecase.UpdateRolePermissionInput) bool {
				return in.Resource == "orders" && in.Action == "updateStatus" && in.Enabled != nil && *in.Enabled
			})).
			Return(role, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPatch,
			id:     role.ID.String(),
			body:   `{"resource":"orders","action":"updateStatus","enabled":true}`,
			actor:  &admin,
		})
		require.NoError(t, handler.UpdateRolePermission(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("enabled is required", func(t *testing.T) {
		handler := NewRoleHandler(RoleHandlerParams{RoleUC: mockUsecase.NewMockRoleUsecase(t)})

		c, _ := newTestContext(testRequest{
			method: http.MethodPatch,
			id:     uuid.NewString(),
			body:   `{"resource":"orders","action":"view"}`,
			actor:  &admin,
		})

		assert.True(t, errors.Is(handler.UpdateRolePermission(c), domainerrors.ErrValidationFailed))
	})

	t.Run("lockout passes through", func(t *testing.T) {
		roleUC := mockUsecase.NewMockRoleUsecase(t)
		handler := NewRoleHandler(RoleHandlerParams{RoleUC: roleUC})
		roleID := uuid.New()

		roleUC.EXPECT().UpdateRolePermission(mock.Anything, admin, roleID, mock.Anything).Return(nil, domainerrors.ErrRoleLockout)

		c, _ := newTestContext(testRequest{
			method: http.MethodPatch,
			id:     roleID.String(),
			body:   `{"resource":"rolePermissions","action":"edit","enabled":false}`,
			actor:  &admin,
		})

		assert.True(t, errors.Is(handler.UpdateRolePermission(c), domainerrors.ErrRoleLockout))
	})
}
