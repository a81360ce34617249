package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Optional detail
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying details.
// Copies compare equal to the original under errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Authorization errors
var (
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"you do not have permission to perform this action",
		"",
	)

	ErrUserBlocked = NewBaseError(
		http.StatusForbidden,
		"USER_BLOCKED",
		"this account has been blocked",
		"",
	)
)

// Order state conflicts
var (
	ErrOrderStatusLocked = NewBaseError(
		http.StatusConflict,
		"ORDER_STATUS_LOCKED",
		"cannot update status of a delivered or cancelled order",
		"",
	)

	ErrOrderSameStatus = NewBaseError(
		http.StatusConflict,
		"ORDER_SAME_STATUS",
		"order already has this status",
		"",
	)

	ErrOrderBackwardTransition = NewBaseError(
		http.StatusConflict,
		"ORDER_BACKWARD_TRANSITION",
		"order status cannot move backwards",
		"",
	)

	ErrOrderNotCancellable = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_CANCELLABLE",
		"order is not eligible for cancellation",
		"",
	)

	ErrOrderVersionConflict = NewBaseError(
		http.StatusConflict,
		"ORDER_VERSION_CONFLICT",
		"order was modified by another request, please retry",
		"",
	)
)

// Return/exchange state conflicts
var (
	ErrReturnNotEligible = NewBaseError(
		http.StatusConflict,
		"RETURN_NOT_ELIGIBLE",
		"only delivered orders can be returned or exchanged",
		"",
	)

	ErrReturnAlreadyRequested = NewBaseError(
		http.StatusConflict,
		"RETURN_ALREADY_REQUESTED",
		"a return or exchange has already been requested for this order",
		"",
	)

	ErrReturnWindowExpired = NewBaseError(
		http.StatusConflict,
		"RETURN_WINDOW_EXPIRED",
		"the return/exchange window for this order has closed",
		"",
	)

	ErrReturnNotFound = NewBaseError(
		http.StatusConflict,
		"RETURN_NOT_FOUND",
		"order has no return or exchange request",
		"",
	)

	ErrReturnNotPending = NewBaseError(
		http.StatusConflict,
		"RETURN_NOT_PENDING",
		"return/exchange request has already been processed",
		"",
	)

	ErrReturnNotApproved = NewBaseError(
		http.StatusConflict,
		"RETURN_NOT_APPROVED",
		"only approved return/exchange requests can be completed",
		"",
	)
)

// Validation errors
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidOrderStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_STATUS",
		"invalid order status",
		"",
	)

	ErrStatusRequiresCancel = NewBaseError(
		http.StatusBadRequest,
		"STATUS_REQUIRES_CANCEL",
		"use the cancel operation to cancel an order",
		"",
	)

	ErrInvalidReturnType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RETURN_TYPE",
		"type must be return or exchange",
		"",
	)

	ErrReturnReasonRequired = NewBaseError(
		http.StatusBadRequest,
		"RETURN_REASON_REQUIRED",
		"a reason is required for returns and exchanges",
		"",
	)

	ErrInvalidReturnAction = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RETURN_ACTION",
		"action must be approved or rejected",
		"",
	)

	ErrInvalidPermission = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PERMISSION",
		"unknown resource or action",
		"",
	)
)

// Not found and role errors
var (
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrRoleNotFound = NewBaseError(
		http.StatusNotFound,
		"ROLE_NOT_FOUND",
		"role not found",
		"",
	)

	ErrRoleLockout = NewBaseError(
		http.StatusConflict,
		"ROLE_LOCKOUT",
		"this permission cannot be removed from the admin role",
		"",
	)
)

// General errors
var (
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
