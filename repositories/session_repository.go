package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/footyhub/footyhub/database"
	"github.com/footyhub/footyhub/models"
)

// SessionRepository maps client addresses to user IDs
type SessionRepository interface {
	Bind(ctx context.Context, address string, userID int64) error
	Lookup(ctx context.Context, address string) (*models.SessionBinding, error)
	Unbind(ctx context.Context, address string) error
}

type sessionRepository struct {
	db *database.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *database.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Bind creates or overwrites the binding for address
func (r *sessionRepository) Bind(ctx context.Context, address string, userID int64) error {
	query := r.db.Rebind(`
		INSERT INTO session_bindings (address, user_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (address) DO UPDATE
		SET user_id = excluded.user_id, created_at = excluded.created_at
	`)

	if _, err := r.db.ExecContext(ctx, query, address, userID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to bind session: %w", err)
	}

	return nil
}

// Lookup returns the binding for address, or a wrapped models.ErrNotFound
func (r *sessionRepository) Lookup(ctx context.Context, address string) (*models.SessionBinding, error) {
	query := r.db.Rebind(`
		SELECT address, user_id, created_at
		FROM session_bindings
		WHERE address = ?
	`)

	var binding models.SessionBinding
	err := r.db.QueryRowContext(ctx, query, address).Scan(
		&binding.Address,
		&binding.UserID,
		&binding.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session for %s: %w", address, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	return &binding, nil
}

// Unbind removes the binding for address. A missing binding is not an error.
func (r *sessionRepository) Unbind(ctx context.Context, address string) error {
	query := r.db.Rebind(`DELETE FROM session_bindings WHERE address = ?`)

	if _, err := r.db.ExecContext(ctx, query, address); err != nil {
		return fmt.Errorf("failed to unbind session: %w", err)
	}

	return nil
}
