// Package response renders HTTP bodies. Successful calls return the bare
// payload; failures return an ErrorResponse.
package response

import (
	"net/http"

	deliverycontext "tracker/internal/delivery/context"
	domainerrors "tracker/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Detail string                    `json:"detail"`           // User-facing message, e.g. "User not found"
	Code   string                    `json:"code"`             // Machine-readable error code, e.g. "USER_NOT_FOUND"
	Errors []domainerrors.FieldError `json:"errors,omitempty"` // Failing fields (4xx only)
	Meta   *MetaInfo                 `json:"meta"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Success writes payload as the whole body.
func Success(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

// OK writes the literal body true.
func OK(c echo.Context) error {
	return c.JSON(http.StatusOK, true)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, detail string, fields []domainerrors.FieldError) error {
	// Field errors are never exposed on 5xx responses.
	if statusCode >= http.StatusInternalServerError {
		fields = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Detail: detail,
		Code:   errorCode,
		Errors: fields,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, detail string) error {
	return Error(c, http.StatusInternalServerError, errorCode, detail, nil)
}

// HandleAppError renders client-side domain errors; anything else is
// returned to the echo error handler.
func HandleAppError(c echo.Context, err error) error {
	var vErr *domainerrors.ValidationError
	if errors.As(err, &vErr) {
		return Error(c, vErr.HTTPCode(), vErr.ErrorCode(), vErr.Message(), vErr.Fields())
	}

	// 5xx errors go on to the error handler so they get logged.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
	}

	return errors.WithStack(err)
}
