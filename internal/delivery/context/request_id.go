// Package context carries per-request values between the web front and the
// usecases: the request id, a request-scoped logger and the guard decision.
package context

import (
	"context"
	"log/slog"

	"pabw/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID stores the request id.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger stores the request-scoped logger.
	KeyLogger ContextKey = "logger"

	// KeyGuardDecision stores the route guard outcome on the echo.Context.
	KeyGuardDecision ContextKey = "guard_decision"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request id stored on c, or "" when none was set.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok {
		return id
	}

	return ""
}

// SetRequestID stores the request id on c.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// RequestIDFrom extracts the request id from a standard context.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when the
// context carries none (background work, tests).
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetGuardDecision records what the route guard decided for this request.
func SetGuardDecision(c echo.Context, decision entity.GuardDecision) {
	c.Set(string(KeyGuardDecision), decision)
}

// GetGuardDecision returns the recorded guard decision, if the route was guarded.
func GetGuardDecision(c echo.Context) (entity.GuardDecision, bool) {
	decision, ok := c.Get(string(KeyGuardDecision)).(entity.GuardDecision)

	return decision, ok
}
