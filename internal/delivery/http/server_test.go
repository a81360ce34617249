package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/delivery/http/router"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo       *echo.Echo
	orderUC    *mockUsecase.MockOrderUsecase
	roleUC     *mockUsecase.MockRoleUsecase
	tokenSvc   *mockSvc.MockTokenService
	authorizer *mockSvc.MockAuthorizer
}

func createTestServer(t *testing.T) *serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{TestRoutes: &config.TestRoutesConfig{Enabled: true}}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	f := &serverFixtures{
		orderUC:    mockUsecase.NewMockOrderUsecase(t),
		roleUC:     mockUsecase.NewMockRoleUsecase(t),
		tokenSvc:   mockSvc.NewMockTokenService(t),
		authorizer: mockSvc.NewMockAuthorizer(t),
	}
	f.echo = newEcho(cfg, logger, router.RouterParams{
		Config:       cfg,
		OrderHandler: handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: f.orderUC, Logger: logger}),
		RoleHandler:  handler.NewRoleHandler(handler.RoleHandlerParams{RoleUC: f.roleUC}),
		TestHandler:  handler.NewTestHandler(),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			TokenService: f.tokenSvc,
			Authorizer:   f.authorizer,
		}),
	})

	return f
}

// signIn makes token "t-<role>" resolve to an active user holding role.
func (f *serverFixtures) signIn(role string) (uuid.UUID, string) {
	userID := uuid.New()
	token := "t-" + role
	f.tokenSvc.EXPECT().ValidateToken(token).Return(&service.Claims{UserID: userID}, nil)
	f.authorizer.EXPECT().EnsureActive(mock.Anything, userID).Return(&entity.User{ID: userID, Role: role}, nil)

	return userID, token
}

func (f *serverFixtures) do(method, path, token, body string) (*httptest.ResponseRecorder, response.Response) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("X-Request-Id", "req-test")
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var env response.Response
	_ = json.Unmarshal(rec.Body.Bytes(), &env)

	return rec, env
}

func TestServer_Health(t *testing.T) {
	f := createTestServer(t)

	rec, env := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "req-test", env.RequestID)
	assert.Equal(t, "req-test", rec.Header().Get("X-Request-Id"))
}

func TestServer_CustomerGetOrder(t *testing.T) {
	f := createTestServer(t)
	userID, token := f.signIn(entity.RoleNameCustomer)
	orderID := uuid.New()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	f.orderUC.EXPECT().
		GetOrder(mock.Anything, entity.Actor{UserID: userID, Roles: []string{entity.RoleNameCustomer}, Kind: entity.ActorKindCustomer}, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusPending, CreatedAt: now, UpdatedAt: now}, nil)

	rec, env := f.do(http.MethodGet, "/api/v1/orders/"+orderID.String(), token, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "req-test", env.RequestID)
}

func TestServer_MissingToken(t *testing.T) {
	f := createTestServer(t)

	rec, env := f.do(http.MethodGet, "/api/v1/orders", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestServer_AdminPermissionDenied(t *testing.T) {
	f := createTestServer(t)
	userID, token := f.signIn(entity.RoleNameSupport)

	f.authorizer.EXPECT().
		Authorize(mock.Anything, mock.MatchedBy(func(actor entity.Actor) bool {
			return actor.UserID == userID && len(actor.Roles) == 1 && actor.Roles[0] == entity.RoleNameSupport
		}), entity.ResourceOrders, entity.ActionUpdateStatus).
		Return(domainerrors.ErrPermissionDenied)

	rec, env := f.do(http.MethodPatch, "/api/v1/admin/orders/"+uuid.NewString()+"/status", token, `{"status":"shipped"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PERMISSION_DENIED", env.Error.Code)
}

func TestServer_CustomerCancelConflict(t *testing.T) {
	f := createTestServer(t)
	_, token := f.signIn(entity.RoleNameCustomer)
	orderID := uuid.New()

	f.orderUC.EXPECT().
		CancelOrder(mock.Anything, mock.Anything, orderID, mock.Anything).
		Return(nil, domainerrors.ErrOrderNotCancellable.WithDetails("current status: shipped"))

	rec, env := f.do(http.MethodPatch, "/api/v1/orders/"+orderID.String()+"/cancel", token, `{"reason":"changed my mind"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ORDER_NOT_CANCELLABLE", env.Error.Code)
	assert.Equal(t, "current status: shipped", env.Error.Details)
}

func TestServer_TestRoutes(t *testing.T) {
	f := createTestServer(t)

	rec, env := f.do(http.MethodGet, "/test/public", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	_, token := f.signIn(entity.RoleNameCustomer)
	rec, env = f.do(http.MethodGet, "/test/auth", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "customer", data["kind"])
}
