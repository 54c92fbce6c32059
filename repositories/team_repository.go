package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/footyhub/footyhub/database"
	"github.com/footyhub/footyhub/models"
)

// TeamRepository interface defines team catalog database operations
type TeamRepository interface {
	List(ctx context.Context, query models.TeamQuery) ([]models.Team, int, error)
	GetByID(ctx context.Context, id int64) (*models.Team, error)
	Create(ctx context.Context, team *models.Team) error
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// teamRepository implements TeamRepository interface
type teamRepository struct {
	db *database.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *database.DB) TeamRepository {
	return &teamRepository{db: db}
}

const teamColumns = `id, name, league, founded, first_image, second_image, third_image`

// orderClause maps a sort key to a fixed ORDER BY clause
func orderClause(sortKey string) string {
	switch sortKey {
	case models.SortByName, "name":
		return "ORDER BY name ASC, id ASC"
	case models.SortByLeague:
		return "ORDER BY league ASC, id ASC"
	default:
		return "ORDER BY id ASC"
	}
}

// List returns one page of teams and the total number of teams matching the filter.
// The query is expected to be normalized; a page past the end yields no rows.
func (r *teamRepository) List(ctx context.Context, q models.TeamQuery) ([]models.Team, int, error) {
	where := ""
	var args []any
	if q.Founded != nil {
		where = "WHERE founded = ?"
		args = append(args, *q.Founded)
	}

	var total int
	countQuery := r.db.Rebind(fmt.Sprintf("SELECT COUNT(*) FROM teams %s", where))
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count teams: %w", err)
	}

	dataQuery := r.db.Rebind(fmt.Sprintf(`
		SELECT %s
		FROM teams
		%s
		%s
		LIMIT ? OFFSET ?
	`, teamColumns, where, orderClause(q.Sort)))
	args = append(args, q.PageSize, q.Offset())

	rows, err := r.db.QueryContext(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	teams := []models.Team{}
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, *team)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating teams: %w", err)
	}

	return teams, total, nil
}

// GetByID retrieves a team by ID
func (r *teamRepository) GetByID(ctx context.Context, id int64) (*models.Team, error) {
	query := r.db.Rebind(fmt.Sprintf(`SELECT %s FROM teams WHERE id = ?`, teamColumns))

	team, err := scanTeam(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("team with ID %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return team, nil
}

// Create creates a new team
func (r *teamRepository) Create(ctx context.Context, team *models.Team) error {
	query := r.db.Rebind(`
		INSERT INTO teams (name, league, founded, first_image, second_image, third_image)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	err := r.db.QueryRowContext(ctx, query,
		team.Name,
		team.League,
		team.Founded,
		team.FirstImage,
		team.SecondImage,
		team.ThirdImage,
	).Scan(&team.ID)
	if err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}

	return nil
}

// Update updates an existing team
func (r *teamRepository) Update(ctx context.Context, team *models.Team) error {
	query := r.db.Rebind(`
		UPDATE teams
		SET name = ?, league = ?, founded = ?,
		    first_image = ?, second_image = ?, third_image = ?
		WHERE id = ?
	`)

	result, err := r.db.ExecContext(ctx, query,
		team.Name,
		team.League,
		team.Founded,
		team.FirstImage,
		team.SecondImage,
		team.ThirdImage,
		team.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update team: %w", err)
	}

	return expectAffected(result, "team", team.ID)
}

// Delete deletes a team by ID
func (r *teamRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM teams WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	return expectAffected(result, "team", id)
}

// Count returns the total number of teams
func (r *teamRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count teams: %w", err)
	}

	return count, nil
}

func scanTeam(row rowScanner) (*models.Team, error) {
	var team models.Team
	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.League,
		&team.Founded,
		&team.FirstImage,
		&team.SecondImage,
		&team.ThirdImage,
	)
	if err != nil {
		return nil, err
	}
	return &team, nil
}
