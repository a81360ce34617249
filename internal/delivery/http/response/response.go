// Package response renders the uniform JSON envelope of the HTTP API.
package response

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success   bool       `json:"success"`
	Code      int        `json:"code"`    // HTTP status code
	Message   string     `json:"message"` // User-friendly message
	Data      any        `json:"data,omitempty"`
	Error     *ErrorInfo `json:"error,omitempty"`
	RequestID string     `json:"requestId,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"` // Business error code, e.g., "ORDER_NOT_FOUND"
	Details string `json:"details,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success:   true,
		Code:      statusCode,
		Message:   message,
		Data:      data,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message(), "")
}

// HandleAppError renders an AppError. Other errors are returned with a stack for the central handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), publicDetails(appErr))
	}

	return errors.WithStack(err)
}

// publicDetails drops details on 5xx, 401 and 403 responses.
func publicDetails(appErr domainerrors.AppError) string {
	switch code := appErr.HTTPCode(); {
	case code >= http.StatusInternalServerError, code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ""
	default:
		return appErr.Details()
	}
}
