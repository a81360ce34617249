package context

import "github.com/labstack/echo/v4"

// ContextKey is a custom type for echo context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in echo.Context.
	KeyRequestID ContextKey = "request_id"

	// KeyActor is the key for storing the authenticated actor in echo.Context.
	KeyActor ContextKey = "actor"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context, empty when absent.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok {
		return id
	}

	return ""
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}
