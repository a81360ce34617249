package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	method string
	target string
	body   string
	id     string
	actor  *entity.Actor
}

func newTestContext(req testRequest) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	if req.target == "" {
		req.target = "/"
	}
	httpReq := httptest.NewRequest(req.method, req.target, strings.NewReader(req.body))
	if req.body != "" {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(httpReq, rec)
	if req.id != "" {
		c.SetParamNames("id")
		c.SetParamValues(req.id)
	}
	if req.actor != nil {
		deliverycontext.SetActor(c, *req.actor)
	}

	return c, rec
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data any) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}

	return env
}

func sampleOrder(userID uuid.UUID, status entity.OrderStatus) *entity.Order {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	order := &entity.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-20260301-7KQ2MX",
		UserID:      userID,
		Items: []entity.OrderItem{
			{ProductID: uuid.New(), Name: "Linen shirt", Price: decimal.RequireFromString("29.90"), Quantity: 3, Size: "M"},
		},
		ShippingCost:  decimal.RequireFromString("5.00"),
		Discount:      decimal.RequireFromString("2.50"),
		PaymentMethod: "cod",
		PaymentStatus: entity.PaymentStatusPending,
		ShippingAddress: entity.ShippingAddress{
			FullName: "Ada Byron", Phone: "555-0100", Line1: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US",
		},
		Status:    status,
		Version:   1,
		CreatedAt: created,
		UpdatedAt: created,
	}
	order.RecalculateTotals()

	return order
}
