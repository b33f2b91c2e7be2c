// Package response renders API bodies: bare resources on success and a
// uniform error envelope on failure.
package response

import (
	"net/http"

	deliverycontext "workbench/internal/delivery/context"
	domainerrors "workbench/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SuccessFlag is the body of mutations that return no resource.
type SuccessFlag struct {
	Success bool `json:"success"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable, e.g. "COMMENT_NOT_FOUND"
	Message string `json:"message"`           // Safe to show to users
	Details any    `json:"details,omitempty"` // Only for client errors other than 401/403
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// JSON writes data as the bare response body.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK writes {"success": true}.
func OK(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessFlag{Success: true})
}

// Error writes the error envelope. Details are dropped for server and auth errors.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// AppError renders an application error with its own status, code and details.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// InternalServerError writes a generic 500 that reveals nothing about the cause.
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later", nil)
}
