package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/footyhub/footyhub/models"
)

const (
	TeamInfoRapidAPIHost = "heisenbug-la-liga-live-scores-v1.p.rapidapi.com"
	DefaultTeamInfoURL   = "https://" + TeamInfoRapidAPIHost

	teamEndpoint = "/api/laliga/team"
)

// ErrTeamNotFound is returned when the team info API does not know the team
var ErrTeamNotFound = fmt.Errorf("team not found: %w", models.ErrNotFound)

// TeamInfo is the club profile returned by the La Liga live scores API
type TeamInfo struct {
	League              Text `json:"league"`
	Season              Text `json:"season"`
	Name                Text `json:"name"`
	OfficialName        Text `json:"officialName"`
	Address             Text `json:"address"`
	Website             Text `json:"website"`
	Founded             Text `json:"founded"`
	TeamSize            Text `json:"teamSize"`
	AverageAge          Text `json:"averageAge"`
	Foreigners          Text `json:"foreigners"`
	NationalTeamPlayers Text `json:"nationaTeamPlayers"`
	TeamValue           Text `json:"teamValue"`
	Venue               Text `json:"venue"`
	VenueCapacity       Text `json:"venueCapacity"`
}

// TeamInfoClient looks up club profiles
type TeamInfoClient struct {
	*BaseClient
}

func NewTeamInfoClient(baseURL, apiKey string, timeout time.Duration) *TeamInfoClient {
	if baseURL == "" {
		baseURL = DefaultTeamInfoURL
	}

	client := &TeamInfoClient{
		BaseClient: NewBaseClient(baseURL, timeout),
	}

	client.SetHeader(RapidAPIKeyHeader, apiKey)
	client.SetHeader(RapidAPIHostHeader, TeamInfoRapidAPIHost)

	return client
}

// TeamInfo fetches the profile of the named team
func (c *TeamInfoClient) TeamInfo(ctx context.Context, name string) (*TeamInfo, error) {
	body, err := c.Get(ctx, teamEndpoint, url.Values{"name": {name}})
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("%s: %w", name, ErrTeamNotFound)
		}
		return nil, unavailable("team info", err)
	}

	var info TeamInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, unavailable("team info", fmt.Errorf("unexpected response format: %w", err))
	}

	return &info, nil
}
