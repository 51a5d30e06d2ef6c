package types

import (
	"context"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxUserID    ContextKey = "ctx_user_id"
	CtxUserRole  ContextKey = "ctx_user_role"
	CtxSessionID ContextKey = "ctx_session_id"
	CtxJWT       ContextKey = "ctx_jwt"

	// DefaultUserID marks mutations performed without an authenticated
	// session (guest carts, anonymous service requests).
	DefaultUserID = "00000000-0000-0000-0000-000000000000"
)

func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(CtxUserID).(string); ok {
		return userID
	}
	return ""
}

func GetUserRole(ctx context.Context) UserRole {
	if role, ok := ctx.Value(CtxUserRole).(UserRole); ok {
		return role
	}
	return UserRoleUser
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

// GetSessionID returns the anonymous cart session token from the context.
func GetSessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value(CtxSessionID).(string); ok {
		return sessionID
	}
	return ""
}

// SetUserID sets the user ID in the context
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxUserID, userID)
}

// SetUserRole sets the user role in the context
func SetUserRole(ctx context.Context, role UserRole) context.Context {
	return context.WithValue(ctx, CtxUserRole, role)
}

// SetSessionID sets the anonymous cart session token in the context
func SetSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, CtxSessionID, sessionID)
}

// IsAuthenticated reports whether the context carries a real user identity.
func IsAuthenticated(ctx context.Context) bool {
	userID := GetUserID(ctx)
	return userID != "" && userID != DefaultUserID
}

