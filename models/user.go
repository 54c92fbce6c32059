package models

import (
	"strings"
	"time"
)

// User is a registered account. PasswordHash is a bcrypt hash, never the raw password.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Email        string    `json:"email" db:"email"`
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// SignupForm represents form data for creating an account.
// Admins add users with the same form plus IsAdmin.
type SignupForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// Validate validates the signup form data
func (f *SignupForm) Validate() ValidationErrors {
	var errs ValidationErrors

	username := strings.TrimSpace(f.Username)
	email := strings.TrimSpace(f.Email)

	if username == "" || email == "" || f.Password == "" {
		errs.Add("form", "All fields are required")
		return errs
	}

	if len(username) > 64 {
		errs.Add("username", "Username must be less than 64 characters")
	}

	if len(email) > 255 {
		errs.Add("email", "Email must be less than 255 characters")
	} else if !isValidEmail(email) {
		errs.Add("email", "Email format is invalid")
	}

	if len(f.Password) > 72 {
		errs.Add("password", "Password must be at most 72 bytes")
	}

	return errs
}

// LoginForm represents form data for logging in
type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates the login form data
func (f *LoginForm) Validate() ValidationErrors {
	var errs ValidationErrors
	if strings.TrimSpace(f.Username) == "" || f.Password == "" {
		errs.Add("form", "All fields are required")
	}
	return errs
}

// UserUpdateForm represents the admin edit form. An empty password keeps the current one.
type UserUpdateForm struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the user update form data
func (f *UserUpdateForm) Validate() ValidationErrors {
	var errs ValidationErrors

	if f.ID <= 0 {
		errs.Add("userId", "User ID is required")
	}

	username := strings.TrimSpace(f.Username)
	if username == "" {
		errs.Add("username", "Username is required")
	} else if len(username) > 64 {
		errs.Add("username", "Username must be less than 64 characters")
	}

	email := strings.TrimSpace(f.Email)
	if email != "" && !isValidEmail(email) {
		errs.Add("email", "Email format is invalid")
	}

	if len(f.Password) > 72 {
		errs.Add("password", "Password must be at most 72 bytes")
	}

	return errs
}
