package common

import (
	"context"
)

// RequestContext holds per-request identity resolved from the session token.
// It is nil for anonymous requests.
type RequestContext struct {
	SessionID     string
	UserID        string
	Role          string
	CorrelationID string
}

type contextKey int

const (
	requestContextKey contextKey = iota
	correlationIDKey
)

// WithRequestContext stores a RequestContext in the request context.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey, rc)
}

// RequestContextFromContext retrieves the RequestContext from context, or nil if absent.
func RequestContextFromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey).(*RequestContext)
	return rc
}

// WithCorrelationID stores the request correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationID returns the correlation ID from context, or "".
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// ResolveSessionID returns the session ID from context, or "" when anonymous.
func ResolveSessionID(ctx context.Context) string {
	if rc := RequestContextFromContext(ctx); rc != nil {
		return rc.SessionID
	}
	return ""
}
