package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockSvc.MockTokenService
	authorizer *mockSvc.MockAuthorizer
}

func createTestAuthMiddleware(t *testing.T) *authFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	authorizer := mockSvc.NewMockAuthorizer(t)

	return &authFixtures{
		middleware: NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc, Authorizer: authorizer}),
		tokenSvc:   tokenSvc,
		authorizer: authorizer,
	}
}

func newAuthContext(authHeader string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

// captureActor is a terminal handler recording the actor the middleware stored.
func captureActor(out *entity.Actor) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := deliverycontext.GetActor(c)
		if !ok {
			return errors.New("actor missing")
		}
		*out = actor

		return nil
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("resolves role from the user store", func(t *testing.T) {
		f := createTestAuthMiddleware(t)
		userID := uuid.New()

		f.tokenSvc.EXPECT().ValidateToken("good-token").
			Return(&service.Claims{UserID: userID, Roles: []string{"customer"}}, nil)
		f.authorizer.EXPECT().EnsureActive(mock.Anything, userID).
			Return(&entity.User{ID: userID, Role: entity.RoleNameSupport}, nil)

		var actor entity.Actor
		err := f.middleware.Authenticate(entity.ActorKindAdmin)(captureActor(&actor))(newAuthContext("Bearer good-token"))

		require.NoError(t, err)
		assert.Equal(t, userID, actor.UserID)
		assert.Equal(t, []string{entity.RoleNameSupport}, actor.Roles)
		assert.Equal(t, entity.ActorKindAdmin, actor.Kind)
	})

	t.Run("missing header", func(t *testing.T) {
		f := createTestAuthMiddleware(t)

		var actor entity.Actor
		err := f.middleware.Authenticate(entity.ActorKindCustomer)(captureActor(&actor))(newAuthContext(""))

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("not a bearer token", func(t *testing.T) {
		f := createTestAuthMiddleware(t)

		var actor entity.Actor
		err := f.middleware.Authenticate(entity.ActorKindCustomer)(captureActor(&actor))(newAuthContext("Basic abc"))

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("invalid token", func(t *testing.T) {
		f := createTestAuthMiddleware(t)
		f.tokenSvc.EXPECT().ValidateToken("bad").Return(nil, errors.New("token is expired"))

		var actor entity.Actor
		err := f.middleware.Authenticate(entity.ActorKindCustomer)(captureActor(&actor))(newAuthContext("Bearer bad"))

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("blocked user", func(t *testing.T) {
		f := createTestAuthMiddleware(t)
		userID := uuid.New()
		f.tokenSvc.EXPECT().ValidateToken("token").Return(&service.Claims{UserID: userID}, nil)
		f.authorizer.EXPECT().EnsureActive(mock.Anything, userID).Return(nil, domainerrors.ErrUserBlocked)

		var actor entity.Actor
		err := f.middleware.Authenticate(entity.ActorKindCustomer)(captureActor(&actor))(newAuthContext("Bearer token"))

		assert.True(t, errors.Is(err, domainerrors.ErrUserBlocked))
	})
}

func TestAuthMiddleware_RequirePermission(t *testing.T) {
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	t.Run("granted", func(t *testing.T) {
		f := createTestAuthMiddleware(t)
		actor := entity.NewAdminActor(uuid.New(), []string{entity.RoleNameManager})
		c := newAuthContext("")
		deliverycontext.SetActor(c, actor)

		f.authorizer.EXPECT().
			Authorize(mock.Anything, actor, entity.ResourceOrders, entity.ActionUpdateStatus).
			Return(nil)

		err := f.middleware.RequirePermission(entity.ResourceOrders, entity.ActionUpdateStatus)(next)(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, c.Response().Status)
	})

	t.Run("denied", func(t *testing.T) {
		f := createTestAuthMiddleware(t)
		actor := entity.NewAdminActor(uuid.New(), []string{entity.RoleNameSupport})
		c := newAuthContext("")
		deliverycontext.SetActor(c, actor)

		f.authorizer.EXPECT().
			Authorize(mock.Anything, actor, entity.ResourceOrders, entity.ActionUpdateStatus).
			Return(domainerrors.ErrPermissionDenied)

		err := f.middleware.RequirePermission(entity.ResourceOrders, entity.ActionUpdateStatus)(next)(c)
		assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
		assert.False(t, c.Response().Committed)
	})

	t.Run("without authentication", func(t *testing.T) {
		f := createTestAuthMiddleware(t)

		err := f.middleware.RequirePermission(entity.ResourceOrders, entity.ActionView)(next)(newAuthContext(""))
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}

func TestAuthMiddleware_AuthenticateThenRequirePermission_SingleUserLookup(t *testing.T) {
	f := createTestAuthMiddleware(t)
	userID := uuid.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	f.tokenSvc.EXPECT().ValidateToken("good-token").Return(&service.Claims{UserID: userID}, nil)
	f.authorizer.EXPECT().EnsureActive(mock.Anything, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleNameManager}, nil).
		Once()
	f.authorizer.EXPECT().
		Authorize(mock.Anything, entity.Actor{UserID: userID, Roles: []string{entity.RoleNameManager}, Kind: entity.ActorKindAdmin},
			entity.ResourceOrders, entity.ActionUpdateStatus).
		Return(nil)

	chain := f.middleware.Authenticate(entity.ActorKindAdmin)(
		f.middleware.RequirePermission(entity.ResourceOrders, entity.ActionUpdateStatus)(next))
	c := newAuthContext("Bearer good-token")

	require.NoError(t, chain(c))
	assert.Equal(t, http.StatusNoContent, c.Response().Status)
	f.authorizer.AssertNumberOfCalls(t, "EnsureActive", 1)
}
