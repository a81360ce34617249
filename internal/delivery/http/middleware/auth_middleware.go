package middleware

import (
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Authorizer   service.Authorizer
}

// AuthMiddleware authenticates bearer tokens and enforces the permission matrix.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	authorizer service.Authorizer
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:   params.TokenService,
		authorizer: params.Authorizer,
	}
}

// Authenticate validates the access token, loads the user and stores the actor for the given surface.
// The role always comes from the user store, never from the token.
func (m *AuthMiddleware) Authenticate(kind entity.ActorKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
			}

			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || strings.TrimSpace(tokenString) == "" {
				return domainerrors.ErrUnauthorized.WithDetails("invalid token format, must be Bearer token")
			}

			claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
			if err != nil {
				return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
			}

			user, err := m.authorizer.EnsureActive(c.Request().Context(), claims.UserID)
			if err != nil {
				return err
			}

			deliverycontext.SetActor(c, entity.Actor{
				UserID: user.ID,
				Roles:  []string{user.Role},
				Kind:   kind,
			})

			return next(c)
		}
	}
}

// RequirePermission checks the actor's role for resource.action.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequirePermission(resource entity.Resource, action entity.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := deliverycontext.GetActor(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}

			if err := m.authorizer.Authorize(c.Request().Context(), actor, resource, action); err != nil {
				return err
			}

			return next(c)
		}
	}
}
