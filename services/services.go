package services

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/footyhub/footyhub/clients"
	"github.com/footyhub/footyhub/models"
	"github.com/footyhub/footyhub/repositories"
)

// AuditRecorder accepts audit entries without blocking the caller
type AuditRecorder interface {
	Record(entry models.AuditLogEntry) bool
}

// WeatherFetcher fetches current weather for a city
type WeatherFetcher interface {
	CurrentByCity(ctx context.Context, city string) (*clients.Weather, error)
}

// TeamInfoFetcher fetches a club profile
type TeamInfoFetcher interface {
	TeamInfo(ctx context.Context, name string) (*clients.TeamInfo, error)
}

// NewsFetcher fetches La Liga headlines
type NewsFetcher interface {
	LaLigaNews(ctx context.Context) ([]clients.Article, error)
}

// Upstreams groups the third-party API clients
type Upstreams struct {
	Weather  WeatherFetcher
	TeamInfo TeamInfoFetcher
	News     NewsFetcher
}

// Options tunes service behavior
type Options struct {
	BcryptCost  int
	MaxPageSize int
	Clock       clockwork.Clock
}

// Services holds all service instances
type Services struct {
	Identity IdentityService
	Auth     AuthService
	Users    UserService
	Team     TeamService
	History  HistoryService
	Lookup   LookupService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, recorder AuditRecorder, upstreams Upstreams, opts Options) *Services {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	return &Services{
		Identity: NewIdentityService(repos.Sessions, repos.Users),
		Auth:     NewAuthService(repos.Users, repos.Sessions, recorder, opts.BcryptCost),
		Users:    NewUserService(repos.Users, opts.BcryptCost),
		Team:     NewTeamService(repos.Teams, opts.MaxPageSize),
		History:  NewHistoryService(repos.Audit),
		Lookup:   NewLookupService(upstreams, recorder, opts.Clock),
	}
}
