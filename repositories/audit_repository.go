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

// AuditRepository handles audit log persistence
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
	GetByID(ctx context.Context, id int64) (*models.AuditLogEntry, error)
	ListByUser(ctx context.Context, userID int64) ([]models.AuditLogEntry, error)
	Delete(ctx context.Context, id int64) error
}

type auditRepository struct {
	db *database.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *database.DB) AuditRepository {
	return &auditRepository{db: db}
}

const auditColumns = `id, user_id, request_type, request_data, status_code, timestamp, response_data`

// Create inserts a new audit log entry
func (r *auditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	query := r.db.Rebind(`
		INSERT INTO audit_log (user_id, request_type, request_data, status_code, timestamp, response_data)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	var userID sql.NullInt64
	if entry.UserID != nil {
		userID = sql.NullInt64{Int64: *entry.UserID, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		userID,
		entry.RequestType,
		entry.RequestData,
		entry.StatusCode,
		entry.Timestamp,
		entry.ResponseData,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}

	return nil
}

// GetByID retrieves a single audit log entry
func (r *auditRepository) GetByID(ctx context.Context, id int64) (*models.AuditLogEntry, error) {
	query := r.db.Rebind(fmt.Sprintf(`SELECT %s FROM audit_log WHERE id = ?`, auditColumns))

	entry, err := scanAuditEntry(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("audit log entry with ID %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log entry: %w", err)
	}

	return entry, nil
}

// ListByUser returns a user's entries, newest first
func (r *auditRepository) ListByUser(ctx context.Context, userID int64) ([]models.AuditLogEntry, error) {
	query := r.db.Rebind(fmt.Sprintf(`
		SELECT %s
		FROM audit_log
		WHERE user_id = ?
		ORDER BY id DESC
	`, auditColumns))

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	entries := []models.AuditLogEntry{}
	for rows.Next() {
		entry, err := scanAuditEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log entry: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit log: %w", err)
	}

	return entries, nil
}

// Delete deletes an audit log entry by ID
func (r *auditRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM audit_log WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete audit log entry: %w", err)
	}

	return expectAffected(result, "audit log entry", id)
}

func scanAuditEntry(row rowScanner) (*models.AuditLogEntry, error) {
	var entry models.AuditLogEntry
	var userID sql.NullInt64

	err := row.Scan(
		&entry.ID,
		&userID,
		&entry.RequestType,
		&entry.RequestData,
		&entry.StatusCode,
		&entry.Timestamp,
		&entry.ResponseData,
	)
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		id := userID.Int64
		entry.UserID = &id
	}

	return &entry, nil
}
