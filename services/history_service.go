package services

import (
	"context"
	"fmt"

	"github.com/footyhub/footyhub/models"
	"github.com/footyhub/footyhub/repositories"
)

// HistoryService reads and deletes audit log entries.
// Entries are visible to the user they belong to and to admins.
type HistoryService interface {
	ListForUser(ctx context.Context, userID int64) ([]models.AuditLogEntry, error)
	Get(ctx context.Context, viewer *models.User, id int64) (*models.AuditLogEntry, error)
	Delete(ctx context.Context, viewer *models.User, id int64) error
}

type historyService struct {
	audit repositories.AuditRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(audit repositories.AuditRepository) HistoryService {
	return &historyService{audit: audit}
}

// ListForUser returns a user's entries, newest first
func (s *historyService) ListForUser(ctx context.Context, userID int64) ([]models.AuditLogEntry, error) {
	return s.audit.ListByUser(ctx, userID)
}

// Get returns one entry; a missing entry is models.ErrNotFound, someone else's is models.ErrForbidden
func (s *historyService) Get(ctx context.Context, viewer *models.User, id int64) (*models.AuditLogEntry, error) {
	entry, err := s.audit.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authorizeEntry(viewer, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// Delete removes one entry after the same checks as Get
func (s *historyService) Delete(ctx context.Context, viewer *models.User, id int64) error {
	if _, err := s.Get(ctx, viewer, id); err != nil {
		return err
	}
	return s.audit.Delete(ctx, id)
}

func authorizeEntry(viewer *models.User, entry *models.AuditLogEntry) error {
	if viewer == nil {
		return fmt.Errorf("log entry %d: %w", entry.ID, models.ErrUnauthorized)
	}
	if viewer.IsAdmin {
		return nil
	}
	if entry.UserID == nil || *entry.UserID != viewer.ID {
		return fmt.Errorf("log entry %d: %w", entry.ID, models.ErrForbidden)
	}
	return nil
}
