package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/footyhub/footyhub/models"
	"github.com/footyhub/footyhub/repositories"
)

// IdentityService maps a client address to the user bound to it
type IdentityService interface {
	Resolve(ctx context.Context, address string) (*models.User, error)
}

type identityService struct {
	sessions repositories.SessionRepository
	users    repositories.UserRepository
}

// NewIdentityService creates a new identity service
func NewIdentityService(sessions repositories.SessionRepository, users repositories.UserRepository) IdentityService {
	return &identityService{
		sessions: sessions,
		users:    users,
	}
}

// Resolve returns the user bound to address, or nil when there is none.
// A binding pointing at a deleted user also resolves to nil.
func (s *identityService) Resolve(ctx context.Context, address string) (*models.User, error) {
	if address == "" {
		return nil, nil
	}

	binding, err := s.sessions.Lookup(ctx, address)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	user, err := s.users.GetByID(ctx, binding.UserID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	return user, nil
}
