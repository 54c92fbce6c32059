package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/footyhub/footyhub/models"
	"github.com/footyhub/footyhub/repositories"
)

// AuthService handles signup, login and logout against address-bound sessions
type AuthService interface {
	Login(ctx context.Context, address string, form *models.LoginForm) (*models.User, error)
	Signup(ctx context.Context, address string, form *models.SignupForm) (*models.User, error)
	Logout(ctx context.Context, address string) error
	LoginExternal(ctx context.Context, address, username, email string) (*models.User, error)
}

type authService struct {
	users      repositories.UserRepository
	sessions   repositories.SessionRepository
	recorder   AuditRecorder
	bcryptCost int
}

// NewAuthService creates a new auth service
func NewAuthService(users repositories.UserRepository, sessions repositories.SessionRepository, recorder AuditRecorder, bcryptCost int) AuthService {
	return &authService{
		users:      users,
		sessions:   sessions,
		recorder:   recorder,
		bcryptCost: bcryptCost,
	}
}

// Login checks the credentials and binds address to the user
func (s *authService) Login(ctx context.Context, address string, form *models.LoginForm) (*models.User, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, errs
	}

	username := strings.TrimSpace(form.Username)

	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, models.ErrNotFound) {
		s.record(nil, models.RequestLogin, username, 401, "user does not exist")
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	ok, err := checkPassword(user.PasswordHash, form.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.record(&user.ID, models.RequestLogin, username, 401, "wrong password")
		return nil, ErrInvalidCredential
	}

	if err := s.sessions.Bind(ctx, address, user.ID); err != nil {
		return nil, err
	}

	s.record(&user.ID, models.RequestLogin, username, 200, "success")
	log.Info().Int64("user_id", user.ID).Str("address", address).Msg("user logged in")

	return user, nil
}

// Signup creates an account and binds address to it
func (s *authService) Signup(ctx context.Context, address string, form *models.SignupForm) (*models.User, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, errs
	}

	username := strings.TrimSpace(form.Username)

	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := hashPassword(form.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Email:        strings.TrimSpace(form.Email),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	if err := s.sessions.Bind(ctx, address, user.ID); err != nil {
		return nil, err
	}

	s.record(&user.ID, models.RequestSignup, username, 200, "success")
	log.Info().Int64("user_id", user.ID).Str("username", username).Msg("user signed up")

	return user, nil
}

// Logout removes whatever binding address has
func (s *authService) Logout(ctx context.Context, address string) error {
	if err := s.sessions.Unbind(ctx, address); err != nil {
		return err
	}

	s.record(nil, models.RequestLogout, "", 200, "success")
	return nil
}

// LoginExternal binds address to the user an identity provider vouched for,
// creating the account on first login.
func (s *authService) LoginExternal(ctx context.Context, address, username, email string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		var errs models.ValidationErrors
		errs.Add("username", "Identity provider returned no username")
		return nil, errs
	}

	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, models.ErrNotFound) {
		user, err = s.createExternalUser(ctx, username, email)
	}
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Bind(ctx, address, user.ID); err != nil {
		return nil, err
	}

	s.record(&user.ID, models.RequestSSOLogin, username, 200, "success")
	log.Info().Int64("user_id", user.ID).Str("address", address).Msg("user logged in through SSO")

	return user, nil
}

func (s *authService) createExternalUser(ctx context.Context, username, email string) (*models.User, error) {
	hash, err := unusablePassword(s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Email:        strings.TrimSpace(email),
	}

	err = s.users.Create(ctx, user)
	if errors.Is(err, models.ErrConflict) {
		// Lost a race with a concurrent first login.
		return s.users.GetByUsername(ctx, username)
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) record(userID *int64, requestType, requestData string, status int, response string) {
	s.recorder.Record(models.AuditLogEntry{
		UserID:       userID,
		RequestType:  requestType,
		RequestData:  requestData,
		StatusCode:   status,
		ResponseData: response,
	})
}
