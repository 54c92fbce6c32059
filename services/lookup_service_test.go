package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footyhub/footyhub/clients"
	"github.com/footyhub/footyhub/models"
)

type weatherStub func(ctx context.Context, city string) (*clients.Weather, error)

func (f weatherStub) CurrentByCity(ctx context.Context, city string) (*clients.Weather, error) {
	return f(ctx, city)
}

type teamInfoStub func(ctx context.Context, name string) (*clients.TeamInfo, error)

func (f teamInfoStub) TeamInfo(ctx context.Context, name string) (*clients.TeamInfo, error) {
	return f(ctx, name)
}

type newsStub func(ctx context.Context) ([]clients.Article, error)

func (f newsStub) LaLigaNews(ctx context.Context) ([]clients.Article, error) {
	return f(ctx)
}

func TestLookupWeatherDecoratesAndRecords(t *testing.T) {
	recorder := &recorderStub{}
	clock := clockwork.NewFakeClockAt(time.Date(2024, 4, 2, 18, 30, 0, 0, time.UTC))
	service := NewLookupService(Upstreams{
		Weather: weatherStub(func(ctx context.Context, city string) (*clients.Weather, error) {
			return &clients.Weather{City: city, Description: "scattered clouds", WindDeg: 95}, nil
		}),
	}, recorder, clock)

	user := &models.User{ID: 4}
	weather, err := service.Weather(context.Background(), user, " Seville ")

	require.NoError(t, err)
	assert.Equal(t, "Seville", weather.City)
	assert.Equal(t, "Scattered clouds", weather.Description)
	assert.Equal(t, "E", weather.WindDirection)
	assert.Equal(t, "18:30", weather.Time)

	entry := recorder.last()
	assert.Equal(t, models.RequestWeather, entry.RequestType)
	assert.Equal(t, "Seville", entry.RequestData)
	assert.Equal(t, 200, entry.StatusCode)
	assert.Equal(t, int64(4), *entry.UserID)
	assert.Contains(t, entry.ResponseData, `"wind_direction":"E"`)
}

func TestLookupWeatherCityNotFound(t *testing.T) {
	recorder := &recorderStub{}
	service := NewLookupService(Upstreams{
		Weather: weatherStub(func(ctx context.Context, city string) (*clients.Weather, error) {
			return nil, fmt.Errorf("%s: %w", city, clients.ErrCityNotFound)
		}),
	}, recorder, clockwork.NewFakeClock())

	_, err := service.Weather(context.Background(), &models.User{ID: 4}, "Atlantis")

	assert.ErrorIs(t, err, clients.ErrCityNotFound)
	assert.Equal(t, 404, recorder.last().StatusCode)
}

func TestLookupWeatherRequiresCity(t *testing.T) {
	service := NewLookupService(Upstreams{}, &recorderStub{}, clockwork.NewFakeClock())

	_, err := service.Weather(context.Background(), nil, "  ")

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestLookupTeamInfoUpstreamFailureIsNotRecorded(t *testing.T) {
	recorder := &recorderStub{}
	service := NewLookupService(Upstreams{
		TeamInfo: teamInfoStub(func(ctx context.Context, name string) (*clients.TeamInfo, error) {
			return nil, fmt.Errorf("team info: %w", models.ErrUpstreamUnavailable)
		}),
	}, recorder, clockwork.NewFakeClock())

	_, err := service.TeamInfo(context.Background(), &models.User{ID: 1}, "Sevilla")

	assert.ErrorIs(t, err, models.ErrUpstreamUnavailable)
	assert.Empty(t, recorder.all())
}

func TestLookupTeamInfoRecords(t *testing.T) {
	recorder := &recorderStub{}
	service := NewLookupService(Upstreams{
		TeamInfo: teamInfoStub(func(ctx context.Context, name string) (*clients.TeamInfo, error) {
			return &clients.TeamInfo{Name: clients.Text(name), Founded: "1890"}, nil
		}),
	}, recorder, clockwork.NewFakeClock())

	info, err := service.TeamInfo(context.Background(), nil, "Sevilla")

	require.NoError(t, err)
	assert.Equal(t, clients.Text("1890"), info.Founded)

	entry := recorder.last()
	assert.Equal(t, models.RequestTeamInfo, entry.RequestType)
	assert.Nil(t, entry.UserID)
}

func TestLookupNews(t *testing.T) {
	recorder := &recorderStub{}
	service := NewLookupService(Upstreams{
		News: newsStub(func(ctx context.Context) ([]clients.Article, error) {
			return []clients.Article{{Title: "Clásico preview", URL: "https://example.com"}}, nil
		}),
	}, recorder, clockwork.NewFakeClock())

	articles, err := service.News(context.Background(), &models.User{ID: 2})

	require.NoError(t, err)
	assert.Len(t, articles, 1)
	assert.Equal(t, models.RequestFootballNews, recorder.last().RequestType)
	assert.Contains(t, recorder.last().ResponseData, "Clásico preview")
}
