package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the FreeToGame catalog endpoint
const DefaultBaseURL = "https://www.freetogame.com/api"

// maxResults caps how many candidates a search returns
const maxResults = 5

// Candidate is one game record from the remote catalog. Field names follow
// the catalog's JSON payload.
type Candidate struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Thumbnail        string `json:"thumbnail"`
	ShortDescription string `json:"short_description"`
	GameURL          string `json:"game_url"`
	Genre            string `json:"genre"`
	Platform         string `json:"platform"`
	Publisher        string `json:"publisher"`
	Developer        string `json:"developer"`
	ReleaseDate      string `json:"release_date"`
}

// Client queries the remote game catalog. Lookup failures are returned as
// errors for the caller to display; the client never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client. An empty baseURL falls back to the
// PLAYTRACK_API_URL environment variable, then to DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("PLAYTRACK_API_URL")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchGames returns up to 5 catalog entries whose title, genre, or
// description matches the query. A blank query returns no results without
// issuing a request.
func (c *Client) SearchGames(ctx context.Context, query string) ([]Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	var catalog []Candidate
	if err := c.get(ctx, c.baseURL+"/games", &catalog); err != nil {
		return nil, err
	}

	// The catalog has no search endpoint, so filter client-side
	var matched []Candidate
	for _, game := range catalog {
		if game.matches(query) {
			matched = append(matched, game)
			if len(matched) == maxResults {
				break
			}
		}
	}

	return matched, nil
}

// GameDetails fetches the full record for a single catalog entry
func (c *Client) GameDetails(ctx context.Context, id int) (*Candidate, error) {
	var game Candidate
	if err := c.get(ctx, c.baseURL+"/game?id="+strconv.Itoa(id), &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (c *Client) get(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid catalog response: %w", err)
	}
	return nil
}

func (g Candidate) matches(query string) bool {
	query = strings.ToLower(query)
	return strings.Contains(strings.ToLower(g.Title), query) ||
		strings.Contains(strings.ToLower(g.Genre), query) ||
		strings.Contains(strings.ToLower(g.ShortDescription), query)
}
