// Package authenticator wraps the OpenID Connect provider used for single sign-on.
package authenticator

import (
	"context"
	"strings"
)

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}

func (c Claims) str(key string) string {
	v, _ := c[key].(string)
	return strings.TrimSpace(v)
}

// Subject returns the "sub" claim
func (c Claims) Subject() string {
	return c.str("sub")
}

// Email returns the "email" claim, if present
func (c Claims) Email() string {
	return c.str("email")
}

// Username picks the local username for the identity:
// preferred_username, then nickname, then name, then email, then sub.
func (c Claims) Username() string {
	for _, key := range []string{"preferred_username", "nickname", "name", "email", "sub"} {
		if v := c.str(key); v != "" {
			return v
		}
	}
	return ""
}
