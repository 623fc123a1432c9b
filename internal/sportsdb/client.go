package sportsdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"sports-explorer/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config controls how the client reaches the sports-data service.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Observer   RequestObserver
}

// Client queries TheSportsDB and maps its payloads to domain models. It holds no UI state and
// every method blocks until the response is decoded or ctx is done.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	observer   RequestObserver
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     resolveAPIKey(cfg.APIKey),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		observer:   resolveObserver(cfg.Observer),
		now:        time.Now,
	}
}

// AllSports lists every sport known to the service. A nil slice means the payload had no sports.
func (c *Client) AllSports(ctx context.Context) ([]models.Sport, error) {
	var payload sportsResponse
	if err := c.get(ctx, EndpointAllSports, nil, &payload, func() bool { return len(payload.Sports) > 0 }); err != nil {
		return nil, err
	}
	return mapSports(payload.Sports), nil
}

// SearchPlayers finds players by name.
func (c *Client) SearchPlayers(ctx context.Context, name string) ([]models.Player, error) {
	var payload playersResponse
	params := url.Values{"p": {name}}
	if err := c.get(ctx, EndpointSearchPlayers, params, &payload, func() bool { return len(payload.Players) > 0 }); err != nil {
		return nil, err
	}
	return mapPlayers(payload.Players), nil
}

// SearchTeams finds teams by name, in the order the service returns them.
func (c *Client) SearchTeams(ctx context.Context, name string) ([]models.Team, error) {
	var payload teamsResponse
	params := url.Values{"t": {name}}
	if err := c.get(ctx, EndpointSearchTeams, params, &payload, func() bool { return len(payload.Teams) > 0 }); err != nil {
		return nil, err
	}
	return mapTeams(payload.Teams), nil
}

// SearchMatches lists past matches between two teams in the order the service returns them.
func (c *Client) SearchMatches(ctx context.Context, team1, team2 string) ([]models.Match, error) {
	var payload matchesResponse
	params := url.Values{"t1": {team1}, "t2": {team2}}
	if err := c.get(ctx, EndpointSearchMatches, params, &payload, func() bool { return len(payload.Matches) > 0 }); err != nil {
		return nil, err
	}
	return mapMatches(payload.Matches), nil
}

// URL returns the absolute request URL for an endpoint.
func (c *Client) URL(endpoint string, params url.Values) string {
	u := c.baseURL + "/" + url.PathEscape(c.apiKey) + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, v interface{}, found func() bool) error {
	start := c.now()
	outcome := OutcomeError
	defer func() {
		c.observer.ObserveRequest(endpoint, outcome, c.now().Sub(start))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(endpoint, params), nil)
	if err != nil {
		return fmt.Errorf("sportsdb: %s: build request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sportsdb: %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("sportsdb: %s: decode response: %w", endpoint, err)
	}

	outcome = OutcomeNotFound
	if found() {
		outcome = OutcomeOK
	}
	return nil
}
