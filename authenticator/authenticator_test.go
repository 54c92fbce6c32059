package authenticator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimsUsername(t *testing.T) {
	assert.Equal(t, "alice", Claims{"preferred_username": "alice", "nickname": "ali"}.Username())
	assert.Equal(t, "ali", Claims{"nickname": "ali", "name": "Alice A."}.Username())
	assert.Equal(t, "a@x.com", Claims{"email": "a@x.com", "sub": "auth|1"}.Username())
	assert.Equal(t, "auth|1", Claims{"sub": "auth|1", "nickname": "  "}.Username())
	assert.Equal(t, "", Claims{"sub": 12}.Username())
}

func TestClaimsEmail(t *testing.T) {
	claims := Claims{"email": " a@x.com ", "sub": "auth|1"}

	assert.Equal(t, "a@x.com", claims.Email())
	assert.Equal(t, "auth|1", claims.Subject())
}

func TestOpenIDConfigIssuerURL(t *testing.T) {
	assert.Equal(t, "https://login.example.com/", OpenIDConfig{Domain: "login.example.com"}.IssuerURL())
	assert.Equal(t, "http://localhost:8080/realms/footyhub", OpenIDConfig{Domain: "http://localhost:8080/realms/footyhub"}.IssuerURL())
}

func TestNewOpenIDProviderValidatesConfig(t *testing.T) {
	_, err := NewOpenIDProvider(context.Background(), OpenIDConfig{Domain: "login.example.com", ClientID: "footyhub"})

	assert.EqualError(t, err, "client secret is required")
}

func TestOpenIDProviderRejectsIncompleteResponses(t *testing.T) {
	p := &OpenIDProvider{}

	_, err := p.ExchangeCode(context.Background(), "")
	assert.EqualError(t, err, "missing authorization code")

	_, err = p.GetClaims(context.Background(), &Token{AccessToken: "at"})
	assert.EqualError(t, err, "no id_token in token response")
}
