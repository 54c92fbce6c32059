package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/footyhub/footyhub/models"
	"github.com/footyhub/footyhub/repositories"
)

// TeamService interface defines team catalog business logic
type TeamService interface {
	List(ctx context.Context, query models.TeamQuery) (*models.TeamPage, error)
	GetByID(ctx context.Context, id int64) (*models.Team, error)
	Create(ctx context.Context, form *models.TeamForm) (*models.Team, error)
	Update(ctx context.Context, id int64, form *models.TeamForm) (*models.Team, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// teamService implements TeamService interface
type teamService struct {
	teamRepo    repositories.TeamRepository
	maxPageSize int
}

// NewTeamService creates a new team service
func NewTeamService(teamRepo repositories.TeamRepository, maxPageSize int) TeamService {
	if maxPageSize < 1 {
		maxPageSize = models.MaxPageSize
	}
	return &teamService{
		teamRepo:    teamRepo,
		maxPageSize: maxPageSize,
	}
}

// List returns one page of the catalog. A founded filter outside the accepted range is rejected.
func (s *teamService) List(ctx context.Context, query models.TeamQuery) (*models.TeamPage, error) {
	if errs := query.Validate(); errs.HasErrors() {
		return nil, errs
	}

	query.Normalize(s.maxPageSize)

	teams, total, err := s.teamRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	return models.NewTeamPage(teams, total, query), nil
}

// GetByID retrieves a team by ID
func (s *teamService) GetByID(ctx context.Context, id int64) (*models.Team, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid team ID %d: %w", id, models.ErrNotFound)
	}
	return s.teamRepo.GetByID(ctx, id)
}

// Create creates a new team with validation
func (s *teamService) Create(ctx context.Context, form *models.TeamForm) (*models.Team, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, errs
	}

	team := teamFromForm(form)

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return team, nil
}

// Update updates an existing team
func (s *teamService) Update(ctx context.Context, id int64, form *models.TeamForm) (*models.Team, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid team ID %d: %w", id, models.ErrNotFound)
	}

	if errs := form.Validate(); errs.HasErrors() {
		return nil, errs
	}

	team := teamFromForm(form)
	team.ID = id

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return team, nil
}

// Delete permanently deletes a team
func (s *teamService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid team ID %d: %w", id, models.ErrNotFound)
	}

	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	return nil
}

// Count returns the total number of teams
func (s *teamService) Count(ctx context.Context) (int, error) {
	return s.teamRepo.Count(ctx)
}

func teamFromForm(form *models.TeamForm) *models.Team {
	return &models.Team{
		Name:        strings.TrimSpace(form.Name),
		League:      strings.TrimSpace(form.League),
		Founded:     form.Founded,
		FirstImage:  strings.TrimSpace(form.FirstImage),
		SecondImage: strings.TrimSpace(form.SecondImage),
		ThirdImage:  strings.TrimSpace(form.ThirdImage),
	}
}
