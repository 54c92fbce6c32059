package userctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/footyhub/footyhub/models"
)

func TestAnonymousContext(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, GetUser(ctx))
	assert.Nil(t, GetUserID(ctx))
	assert.False(t, IsAdmin(ctx))
	assert.Empty(t, GetAddress(ctx))
}

func TestUserContext(t *testing.T) {
	ctx := SetUser(context.Background(), &models.User{ID: 3, Username: "alice", IsAdmin: true})
	ctx = SetAddress(ctx, "10.1.2.3")

	assert.Equal(t, int64(3), *GetUserID(ctx))
	assert.Equal(t, "alice", GetUser(ctx).Username)
	assert.True(t, IsAdmin(ctx))
	assert.Equal(t, "10.1.2.3", GetAddress(ctx))
}
