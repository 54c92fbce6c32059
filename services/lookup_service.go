package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/footyhub/footyhub/clients"
	"github.com/footyhub/footyhub/models"
)

// LookupService proxies the third-party APIs and records each lookup in the audit log
type LookupService interface {
	Weather(ctx context.Context, user *models.User, city string) (*clients.Weather, error)
	TeamInfo(ctx context.Context, user *models.User, name string) (*clients.TeamInfo, error)
	News(ctx context.Context, user *models.User) ([]clients.Article, error)
}

type lookupService struct {
	upstreams Upstreams
	recorder  AuditRecorder
	clock     clockwork.Clock
}

// NewLookupService creates a new lookup service
func NewLookupService(upstreams Upstreams, recorder AuditRecorder, clock clockwork.Clock) LookupService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &lookupService{
		upstreams: upstreams,
		recorder:  recorder,
		clock:     clock,
	}
}

// Weather returns the decorated current weather for city
func (s *lookupService) Weather(ctx context.Context, user *models.User, city string) (*clients.Weather, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		var errs models.ValidationErrors
		errs.Add("city", "City is required")
		return nil, errs
	}

	weather, err := s.upstreams.Weather.CurrentByCity(ctx, city)
	if err != nil {
		if errors.Is(err, clients.ErrCityNotFound) {
			s.record(user, models.RequestWeather, city, 404, "")
		} else {
			log.Error().Err(err).Str("city", city).Msg("weather lookup failed")
		}
		return nil, err
	}

	weather.Decorate(s.clock.Now())
	s.record(user, models.RequestWeather, city, 200, snapshot(weather))

	return weather, nil
}

// TeamInfo returns the club profile for name
func (s *lookupService) TeamInfo(ctx context.Context, user *models.User, name string) (*clients.TeamInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		var errs models.ValidationErrors
		errs.Add("teamName", "Team name is required")
		return nil, errs
	}

	info, err := s.upstreams.TeamInfo.TeamInfo(ctx, name)
	if err != nil {
		if errors.Is(err, clients.ErrTeamNotFound) {
			s.record(user, models.RequestTeamInfo, name, 404, "")
		} else {
			log.Error().Err(err).Str("team", name).Msg("team info lookup failed")
		}
		return nil, err
	}

	s.record(user, models.RequestTeamInfo, name, 200, snapshot(info))

	return info, nil
}

// News returns the current La Liga headlines
func (s *lookupService) News(ctx context.Context, user *models.User) ([]clients.Article, error) {
	articles, err := s.upstreams.News.LaLigaNews(ctx)
	if err != nil {
		log.Error().Err(err).Msg("football news lookup failed")
		return nil, err
	}

	s.record(user, models.RequestFootballNews, "", 200, snapshot(articles))

	return articles, nil
}

func (s *lookupService) record(user *models.User, requestType, requestData string, status int, response string) {
	entry := models.AuditLogEntry{
		RequestType:  requestType,
		RequestData:  requestData,
		StatusCode:   status,
		ResponseData: response,
	}
	if user != nil {
		id := user.ID
		entry.UserID = &id
	}
	s.recorder.Record(entry)
}

// snapshot serializes an upstream response for the audit log
func snapshot(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
