package services

import (
	"fmt"

	"github.com/footyhub/footyhub/models"
)

// Authentication errors. Each wraps one of the models sentinels.
var (
	ErrUserNotFound      = fmt.Errorf("user does not exist: %w", models.ErrNotFound)
	ErrInvalidCredential = fmt.Errorf("password is incorrect: %w", models.ErrUnauthorized)
	ErrUserAlreadyExists = fmt.Errorf("user already exists: %w", models.ErrConflict)
)
