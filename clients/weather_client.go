package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	DefaultWeatherURL = "https://api.openweathermap.org"

	currentWeatherEndpoint = "/data/2.5/weather"
)

// Weather is the current weather for a city, flattened from the OpenWeatherMap response.
// WindDirection and Time are filled in by Decorate.
type Weather struct {
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Temp          float64 `json:"temp"`
	FeelsLike     float64 `json:"feels_like"`
	Humidity      int     `json:"humidity"`
	Pressure      int     `json:"pressure"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDeg       float64 `json:"wind_deg"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
	WindDirection string  `json:"wind_direction,omitempty"`
	Time          string  `json:"time,omitempty"`
}

type openWeatherResponse struct {
	Name  string `json:"name"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
}

// WeatherClient queries the OpenWeatherMap current weather API
type WeatherClient struct {
	*BaseClient
	apiKey string
}

func NewWeatherClient(baseURL, apiKey string, timeout time.Duration) *WeatherClient {
	if baseURL == "" {
		baseURL = DefaultWeatherURL
	}

	return &WeatherClient{
		BaseClient: NewBaseClient(baseURL, timeout),
		apiKey:     apiKey,
	}
}

// CurrentByCity returns the current weather in metric units. An unknown city yields ErrCityNotFound.
func (c *WeatherClient) CurrentByCity(ctx context.Context, city string) (*Weather, error) {
	query := url.Values{
		"q":     {city},
		"units": {"metric"},
		"appid": {c.apiKey},
	}

	body, err := c.Get(ctx, currentWeatherEndpoint, query)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("%s: %w", city, ErrCityNotFound)
		}
		return nil, unavailable("weather", err)
	}

	var resp openWeatherResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, unavailable("weather", fmt.Errorf("unexpected response format: %w", err))
	}

	weather := &Weather{
		City:      resp.Name,
		Country:   resp.Sys.Country,
		Lat:       resp.Coord.Lat,
		Lon:       resp.Coord.Lon,
		Temp:      resp.Main.Temp,
		FeelsLike: resp.Main.FeelsLike,
		Humidity:  resp.Main.Humidity,
		Pressure:  resp.Main.Pressure,
		WindSpeed: resp.Wind.Speed,
		WindDeg:   resp.Wind.Deg,
	}
	if len(resp.Weather) > 0 {
		weather.Description = resp.Weather[0].Description
		weather.Icon = resp.Weather[0].Icon
	}

	return weather, nil
}

// Decorate fills in the compass wind direction and the local time, and capitalizes the description
func (w *Weather) Decorate(now time.Time) {
	w.WindDirection = WindDirection(w.WindDeg)
	w.Description = Capitalize(w.Description)
	w.Time = TimeString(now)
}

var compassPoints = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// WindDirection maps a meteorological wind angle to one of eight compass points
func WindDirection(deg float64) string {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	idx := int(math.Floor((deg+22.5)/45)) % len(compassPoints)
	return compassPoints[idx]
}

// Capitalize upper-cases the first letter of s
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// TimeString formats a time as HH:MM
func TimeString(t time.Time) string {
	return t.Format("15:04")
}
