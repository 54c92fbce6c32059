package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/footyhub/footyhub/models"
	"github.com/footyhub/footyhub/repositories"
)

// UserService interface defines the admin console operations on accounts
type UserService interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, form *models.SignupForm) (*models.User, error)
	Update(ctx context.Context, form *models.UserUpdateForm) (*models.User, error)
	Delete(ctx context.Context, id int64) error
	MakeAdmin(ctx context.Context, id int64) error
}

type userService struct {
	users      repositories.UserRepository
	bcryptCost int
}

// NewUserService creates a new user service
func NewUserService(users repositories.UserRepository, bcryptCost int) UserService {
	return &userService{
		users:      users,
		bcryptCost: bcryptCost,
	}
}

// GetAll retrieves all users
func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.users.GetAll(ctx)
}

// GetByID retrieves a user by ID
func (s *userService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid user ID %d: %w", id, models.ErrNotFound)
	}
	return s.users.GetByID(ctx, id)
}

// GetByUsername retrieves a user by username
func (s *userService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.users.GetByUsername(ctx, strings.TrimSpace(username))
}

// Create adds an account on behalf of an admin
func (s *userService) Create(ctx context.Context, form *models.SignupForm) (*models.User, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, errs
	}

	hash, err := hashPassword(form.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     strings.TrimSpace(form.Username),
		PasswordHash: hash,
		Email:        strings.TrimSpace(form.Email),
		IsAdmin:      form.IsAdmin,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return user, nil
}

// Update changes username and email, and the password when one is given
func (s *userService) Update(ctx context.Context, form *models.UserUpdateForm) (*models.User, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, errs
	}

	user, err := s.users.GetByID(ctx, form.ID)
	if err != nil {
		return nil, err
	}

	user.Username = strings.TrimSpace(form.Username)
	user.Email = strings.TrimSpace(form.Email)

	if form.Password != "" {
		hash, err := hashPassword(form.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return user, nil
}

// Delete removes a user and the sessions bound to them
func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

// MakeAdmin grants admin rights
func (s *userService) MakeAdmin(ctx context.Context, id int64) error {
	return s.users.SetAdmin(ctx, id, true)
}
