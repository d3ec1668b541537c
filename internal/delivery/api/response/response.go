// Package response renders the JSON envelopes returned by the API.
package response

import (
	"log/slog"
	"net/http"

	deliverycontext "bloodbank/internal/delivery/context"
	domainerrors "bloodbank/internal/domain/errors"
	"bloodbank/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse wraps a payload.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps a failure.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo describes a failure. Details is omitted whenever it could leak internals.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MetaInfo carries the request id, and the item count for list payloads.
type MetaInfo struct {
	RequestID string `json:"request_id"`
	Count     *int   `json:"count,omitempty"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success renders data with statusCode.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// List renders a 200 list payload and records its length in meta.count. A nil slice is
// rendered as an empty array so an empty candidate list is not mistaken for a missing one.
func List[T any](c echo.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	m := meta(c)
	count := len(items)
	m.Count = &count

	return c.JSON(http.StatusOK, SuccessResponse{Data: items, Meta: m})
}

// exposesDetails reports whether details may be shown for statusCode. Server faults and
// authentication failures never describe their cause to the caller.
func exposesDetails(statusCode int) bool {
	return statusCode < http.StatusInternalServerError &&
		statusCode != http.StatusUnauthorized &&
		statusCode != http.StatusForbidden
}

// Error renders an error envelope.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if !exposesDetails(statusCode) {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders an AppError such as NotFound or PreconditionFailed. Any other
// error is handed back for echo's error handler. Server-side failures are logged with
// their cause, since the response hides it.
func HandleAppError(c echo.Context, err error) error {
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if !ok {
		return errors.WithStack(err)
	}

	if appErr.HTTPCode() >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), slog.Default()).Error("Request failed",
			slog.String("code", appErr.ErrorCode()),
			slog.Any("error", err),
		)
	}

	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
