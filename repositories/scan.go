package repositories

import (
	"database/sql"
	"fmt"

	"github.com/footyhub/footyhub/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// expectAffected turns a zero-row write into a wrapped models.ErrNotFound
func expectAffected(result sql.Result, entity string, id int64) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s with ID %d: %w", entity, id, models.ErrNotFound)
	}

	return nil
}
