package response

import (
	"net/http"

	deliverycontext "tiffin/internal/delivery/context"
	domainerrors "tiffin/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success returns a successful response. An optional message is echoed to the client.
func Success(c echo.Context, statusCode int, data any, message ...string) error {
	body := domainerrors.SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    meta(c),
	}
	if len(message) > 0 {
		body.Message = message[0]
	}

	return c.JSON(statusCode, body)
}

// Partial reports a request that was only partly applied. The status stays successful.
func Partial(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Success: false,
		Message: message,
		Data:    data,
		Meta:    meta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode, message string, fields []domainerrors.FieldError) error {
	// Field details are meaningless on server and auth failures
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		fields = nil
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Success: false,
		Message: message,
		Code:    errorCode,
		Errors:  fields,
		Meta:    meta(c),
	})
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// Attachment streams a file download.
func Attachment(c echo.Context, fileName, contentType string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)

	return c.Blob(http.StatusOK, contentType, data)
}

func meta(c echo.Context) *domainerrors.MetaInfo {
	return &domainerrors.MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
	}
}
