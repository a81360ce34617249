package context

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	assert.Empty(t, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestActor(t *testing.T) {
	c := newEchoContext()
	_, ok := GetActor(c)
	assert.False(t, ok)

	actor := entity.NewCustomerActor(uuid.New(), []string{entity.RoleNameCustomer})
	SetActor(c, actor)

	got, ok := GetActor(c)
	assert.True(t, ok)
	assert.Equal(t, actor, got)
}
