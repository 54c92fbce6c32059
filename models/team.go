package models

import (
	"math"
	"strings"
)

const (
	MinFounded = 1500
	MaxFounded = 2024

	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Sort keys accepted by the team list
const (
	SortByName   = "team"
	SortByLeague = "league"
)

// Team is an entry of the team catalog
type Team struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	League      string `json:"league" db:"league"`
	Founded     int    `json:"founded" db:"founded"`
	FirstImage  string `json:"first_image" db:"first_image"`
	SecondImage string `json:"second_image" db:"second_image"`
	ThirdImage  string `json:"third_image" db:"third_image"`
}

// TeamForm represents form data for creating/updating teams
type TeamForm struct {
	Name        string `json:"name"`
	League      string `json:"league"`
	Founded     int    `json:"founded"`
	FirstImage  string `json:"first_image"`
	SecondImage string `json:"second_image"`
	ThirdImage  string `json:"third_image"`
}

// Validate validates the team form data
func (f *TeamForm) Validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(f.Name) == "" {
		errs.Add("name", "Team name is required")
	} else if len(f.Name) > 100 {
		errs.Add("name", "Team name must be less than 100 characters")
	}

	if strings.TrimSpace(f.League) == "" {
		errs.Add("league", "League is required")
	}

	if !ValidFounded(f.Founded) {
		errs.Add("founded", "Founded should be a valid number between 1500 and 2024")
	}

	return errs
}

// ValidFounded reports whether year lies in the accepted founding range
func ValidFounded(year int) bool {
	return year >= MinFounded && year <= MaxFounded
}

// TeamQuery holds the filter, sort and pagination of a team list request
type TeamQuery struct {
	Founded  *int
	Sort     string
	Page     int
	PageSize int
}

// Validate validates the list filter
func (q *TeamQuery) Validate() ValidationErrors {
	var errs ValidationErrors
	if q.Founded != nil && !ValidFounded(*q.Founded) {
		errs.Add("founded", "Founded should be a valid number between 1500 and 2024")
	}
	return errs
}

// Normalize applies defaults and clamps the page size to maxPageSize
func (q *TeamQuery) Normalize(maxPageSize int) {
	if maxPageSize < 1 {
		maxPageSize = MaxPageSize
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	// Keep (Page-1)*PageSize within int
	if q.Page > math.MaxInt/q.PageSize {
		q.Page = math.MaxInt / q.PageSize
	}
}

// Offset returns the number of rows to skip for the requested page
func (q *TeamQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// TeamPage is one page of the team catalog
type TeamPage struct {
	Teams      []Team
	TotalCount int
	TotalPages int
	Page       int
	PageSize   int
}

// NewTeamPage builds a page and derives the page count
func NewTeamPage(teams []Team, total int, q TeamQuery) *TeamPage {
	pages := 0
	if q.PageSize > 0 {
		pages = (total + q.PageSize - 1) / q.PageSize
	}
	return &TeamPage{
		Teams:      teams,
		TotalCount: total,
		TotalPages: pages,
		Page:       q.Page,
		PageSize:   q.PageSize,
	}
}

// HasPrev reports whether a previous page exists
func (p *TeamPage) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a next page exists
func (p *TeamPage) HasNext() bool {
	return p.Page < p.TotalPages
}
