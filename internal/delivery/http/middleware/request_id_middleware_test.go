package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	logs "storefront/internal/infra/log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewRequestIDMiddleware(logger)

	run := func(header string) (echo.Context, string) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(deliverycontext.HeaderXRequestID, header)
		}
		c := echo.New().NewContext(req, httptest.NewRecorder())

		var ctxRequestID string
		err := m.Process(func(c echo.Context) error {
			ctxRequestID = logs.RequestID(c.Request().Context())
			assert.NotSame(t, logger, logs.FromContext(c.Request().Context(), logger))

			return nil
		})(c)
		require.NoError(t, err)

		return c, ctxRequestID
	}

	t.Run("keeps client id", func(t *testing.T) {
		c, ctxRequestID := run("client-id")

		assert.Equal(t, "client-id", deliverycontext.GetRequestID(c))
		assert.Equal(t, "client-id", ctxRequestID)
		assert.Equal(t, "client-id", c.Response().Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("generates id", func(t *testing.T) {
		c, ctxRequestID := run("")

		_, err := uuid.Parse(deliverycontext.GetRequestID(c))
		assert.NoError(t, err)
		assert.Equal(t, deliverycontext.GetRequestID(c), ctxRequestID)
	})
}
