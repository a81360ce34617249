// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actorFrom returns the actor set by the auth middleware.
func actorFrom(c echo.Context) (entity.Actor, error) {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return entity.Actor{}, domainerrors.ErrUnauthorized
	}

	return actor, nil
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + ": " + c.Param(name))
	}

	return id, nil
}

// bindAndValidate binds query or body into req and runs the echo validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		if httpErr, ok := err.(*echo.HTTPError); ok && httpErr.Code == http.StatusUnsupportedMediaType {
			return domainerrors.ErrValidationFailed.WithDetails("unsupported content type")
		}

		return domainerrors.ErrValidationFailed.WithDetails("malformed request")
	}

	return c.Validate(req)
}
