package handler

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware echoes the actor resolved by the auth middleware
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"userId":    actor.UserID,
		"roles":     actor.Roles,
		"kind":      actor.Kind,
		"requestId": deliverycontext.GetRequestID(c),
		"status":    "authenticated",
	}, "Authentication middleware test successful")
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status": "public",
	}, "Public endpoint test successful")
}
