package errors

import (
	"net/http"

	"tiffin/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Extra context, hidden on 5xx responses
}

// BaseError is the default AppError implementation
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// Is matches on error code so that copies created by WithDetails still
// compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WithDetails returns a copy carrying detail text
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy with a different user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Account errors
	ErrStudentNotFound = NewBaseError(
		http.StatusNotFound,
		"STUDENT_NOT_FOUND",
		"Student not found",
		"",
	)

	ErrStudentAlreadyExists = NewBaseError(
		http.StatusConflict,
		"STUDENT_ALREADY_EXISTS",
		"Student already exists with this email",
		"",
	)

	ErrVendorNotFound = NewBaseError(
		http.StatusNotFound,
		"VENDOR_NOT_FOUND",
		"Vendor not found",
		"",
	)

	ErrVendorAlreadyExists = NewBaseError(
		http.StatusConflict,
		"VENDOR_ALREADY_EXISTS",
		"Vendor already exists with this email",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrInvalidPassword = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PASSWORD",
		"Current password is incorrect",
		"",
	)

	ErrAccountInactive = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_INACTIVE",
		"Invalid email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token",
		"",
	)

	// Subscription errors
	ErrSubscriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND",
		"Subscription not found",
		"",
	)

	ErrSubscriptionAlreadyCancelled = NewBaseError(
		http.StatusBadRequest,
		"SUBSCRIPTION_ALREADY_CANCELLED",
		"Subscription is already cancelled",
		"",
	)

	ErrSubscriptionNotPaused = NewBaseError(
		http.StatusBadRequest,
		"SUBSCRIPTION_NOT_PAUSED",
		"Subscription is not paused",
		"",
	)

	ErrSubscriptionNotActive = NewBaseError(
		http.StatusBadRequest,
		"SUBSCRIPTION_NOT_ACTIVE",
		"Only active subscriptions can be paused",
		"",
	)

	ErrInvalidSubscriptionTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SUBSCRIPTION_TRANSITION",
		"Subscription cannot change to the requested status",
		"",
	)

	ErrSubscriptionConflict = NewBaseError(
		http.StatusConflict,
		"SUBSCRIPTION_CONFLICT",
		"Subscription was modified concurrently, please retry",
		"",
	)

	ErrInvalidDuration = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DURATION",
		"Vendor ID and duration are required",
		"",
	)

	ErrStartDateInPast = NewBaseError(
		http.StatusBadRequest,
		"START_DATE_IN_PAST",
		"Start date cannot be in the past",
		"",
	)

	ErrInvalidPauseWindow = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAUSE_WINDOW",
		"Resume date must be after pause date",
		"",
	)

	// Subscription request errors
	ErrRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"REQUEST_NOT_FOUND",
		"Subscription request not found",
		"",
	)

	ErrRequestAlreadyDecided = NewBaseError(
		http.StatusConflict,
		"REQUEST_ALREADY_DECIDED",
		"Subscription request has already been processed",
		"",
	)

	ErrInvalidQRCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QR_CODE",
		"QR code is not a valid vendor code",
		"",
	)

	// Holiday errors
	ErrHolidayNotFound = NewBaseError(
		http.StatusNotFound,
		"HOLIDAY_NOT_FOUND",
		"Holiday not found",
		"",
	)

	ErrHolidayAlreadyExists = NewBaseError(
		http.StatusConflict,
		"HOLIDAY_ALREADY_EXISTS",
		"Holiday already exists for this date",
		"",
	)

	ErrHolidayNoticePeriod = NewBaseError(
		http.StatusBadRequest,
		"HOLIDAY_NOTICE_PERIOD",
		"Holiday must be at least 24 hours in advance",
		"",
	)

	ErrHolidayDateRequired = NewBaseError(
		http.StatusBadRequest,
		"HOLIDAY_DATE_REQUIRED",
		"Date or dates are required",
		"",
	)

	ErrVendorOnHoliday = NewBaseError(
		http.StatusConflict,
		"VENDOR_ON_HOLIDAY",
		"Vendor is on holiday for this date",
		"",
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrInvalidOrderTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_TRANSITION",
		"Order cannot change to the requested status",
		"",
	)

	// Customer and payment errors
	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Customer not found",
		"",
	)

	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"Payment not found",
		"",
	)

	// Announcement errors
	ErrAnnouncementNotFound = NewBaseError(
		http.StatusNotFound,
		"ANNOUNCEMENT_NOT_FOUND",
		"Announcement not found",
		"",
	)

	// Notification and message errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrMessageNotFound = NewBaseError(
		http.StatusNotFound,
		"MESSAGE_NOT_FOUND",
		"Message not found",
		"",
	)

	ErrThreadNotFound = NewBaseError(
		http.StatusNotFound,
		"THREAD_NOT_FOUND",
		"Message thread not found",
		"",
	)

	// Device errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation failed",
		"",
	)

	// Transaction errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
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

// Unwrap exposes the driver error to errors.Is checks
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
	return "Database operation failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
