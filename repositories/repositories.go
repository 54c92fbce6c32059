package repositories

import (
	"github.com/footyhub/footyhub/database"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Users    UserRepository
	Sessions SessionRepository
	Teams    TeamRepository
	Audit    AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db),
		Sessions: NewSessionRepository(db),
		Teams:    NewTeamRepository(db),
		Audit:    NewAuditRepository(db),
	}
}
