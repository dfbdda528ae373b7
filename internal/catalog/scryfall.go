package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// SearchResult is the subset of a Scryfall search response the
// marketplace consumes.
type SearchResult struct {
	TotalCards int       `json:"total_cards"`
	Data       []RawCard `json:"data"`
}

// Client queries the upstream Scryfall API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

// SearchCard runs a name search upstream. Upstream errors and non-200
// responses degrade to an empty result; only request construction and
// transport failures surface as errors.
func (c *Client) SearchCard(ctx context.Context, name string) (*SearchResult, error) {
	endpoint := c.baseURL + "cards/search?q=" + url.QueryEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build scryfall request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query scryfall: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Str("name", name).Msg("scryfall search returned no result")
		return &SearchResult{}, nil
	}

	var result SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode scryfall response: %w", err)
	}

	return &result, nil
}
