package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	RapidAPIKeyHeader  = "X-RapidAPI-Key"
	RapidAPIHostHeader = "X-RapidAPI-Host"

	NewsRapidAPIHost = "football-news-aggregator-live.p.rapidapi.com"
	DefaultNewsURL   = "https://" + NewsRapidAPIHost

	laLigaNewsEndpoint = "/news/fourfourtwo/laliga"
)

// Article is one headline from the news aggregator
type Article struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source,omitempty"`
}

// NewsClient fetches football news from the RapidAPI aggregator
type NewsClient struct {
	*BaseClient
}

func NewNewsClient(baseURL, apiKey string, timeout time.Duration) *NewsClient {
	if baseURL == "" {
		baseURL = DefaultNewsURL
	}

	client := &NewsClient{
		BaseClient: NewBaseClient(baseURL, timeout),
	}

	client.SetHeader(RapidAPIKeyHeader, apiKey)
	client.SetHeader(RapidAPIHostHeader, NewsRapidAPIHost)

	return client
}

// LaLigaNews returns the current La Liga headlines. Anything but a JSON array is an error.
func (c *NewsClient) LaLigaNews(ctx context.Context) ([]Article, error) {
	body, err := c.Get(ctx, laLigaNewsEndpoint, nil)
	if err != nil {
		return nil, unavailable("news", err)
	}

	var articles []Article
	if err := json.Unmarshal(body, &articles); err != nil {
		return nil, unavailable("news", fmt.Errorf("unexpected response format: %w", err))
	}
	if articles == nil {
		return nil, unavailable("news", fmt.Errorf("unexpected response format: %s", body))
	}

	return articles, nil
}
