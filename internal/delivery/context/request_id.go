// Package context carries per-request values between middleware, handlers and usecases.
package context

import (
	"context"
	"log/slog"

	"workbench/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header a request ID is read from and echoed on.
const HeaderXRequestID = "X-Request-Id"

// echo.Context store keys.
const (
	echoKeyRequestID = "workbench.request_id"
	echoKeyPrincipal = "workbench.principal"
)

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyLogger
)

// GetRequestID returns the ID assigned by the request ID middleware, or "" outside it.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(echoKeyRequestID).(string)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestIDFromContext is GetRequestID for code that only sees a context.Context.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, falling back when ctx has none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(ctxKeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKeyLogger, logger)
}

// SetPrincipal records the principal resolved from a bearer token.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(echoKeyPrincipal, principal)
}

// GetPrincipal returns the authenticated principal, or nil on public routes.
func GetPrincipal(c echo.Context) *entity.Principal {
	principal, _ := c.Get(echoKeyPrincipal).(*entity.Principal)

	return principal
}
