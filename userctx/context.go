package userctx

import (
	"context"

	"github.com/footyhub/footyhub/models"
)

// Context key type
type contextKey string

const (
	userKey    contextKey = "user"
	addressKey contextKey = "client_address"
)

// SetUser adds the resolved user to request context
func SetUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser retrieves the resolved user from request context, or nil for anonymous requests
func GetUser(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

// GetUserID returns the resolved user's ID, or nil for anonymous requests
func GetUserID(ctx context.Context) *int64 {
	user := GetUser(ctx)
	if user == nil {
		return nil
	}
	id := user.ID
	return &id
}

// IsAdmin reports whether the request carries an admin identity
func IsAdmin(ctx context.Context) bool {
	user := GetUser(ctx)
	return user != nil && user.IsAdmin
}

// SetAddress adds the client address to request context
func SetAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, addressKey, address)
}

// GetAddress retrieves the client address from request context
func GetAddress(ctx context.Context) string {
	address, _ := ctx.Value(addressKey).(string)
	return address
}
