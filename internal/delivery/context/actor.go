package context

import (
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetActor stores the authenticated actor in echo.Context.
func SetActor(c echo.Context, actor entity.Actor) {
	c.Set(string(KeyActor), actor)
}

// GetActor returns the actor set by the auth middleware.
func GetActor(c echo.Context) (entity.Actor, bool) {
	actor, ok := c.Get(string(KeyActor)).(entity.Actor)

	return actor, ok
}
