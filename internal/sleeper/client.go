package sleeper

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sleeper-recap/internal/store"
)

// Client fetches league data from the Sleeper API. All calls are blocking
// and fail fast: any non-2xx status or transport error aborts the run.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
	// Snapshots, when non-nil, is a read-through cache of raw response
	// bodies. A cached body is served without touching the network.
	Snapshots *store.SnapshotStore
}

func NewClient() *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: 30 * time.Second},
		BaseURL:   "https://api.sleeper.app/v1",
		UserAgent: "sleeper-recap/1.0",
	}
}

// League fetches league metadata, including the scored week range.
func (c *Client) League(leagueID string) (*League, error) {
	var out League
	rel := fmt.Sprintf("league/%s/league.json", leagueID)
	if err := c.getJSON("/league/"+leagueID, rel, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Users fetches the league's members.
func (c *Client) Users(leagueID string) ([]User, error) {
	var out []User
	rel := fmt.Sprintf("league/%s/users.json", leagueID)
	if err := c.getJSON("/league/"+leagueID+"/users", rel, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Rosters fetches the roster-to-owner mapping.
func (c *Client) Rosters(leagueID string) ([]Roster, error) {
	var out []Roster
	rel := fmt.Sprintf("league/%s/rosters.json", leagueID)
	if err := c.getJSON("/league/"+leagueID+"/rosters", rel, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Matchups fetches one week's matchup list.
func (c *Client) Matchups(leagueID string, week int) ([]Matchup, error) {
	var out []Matchup
	rel := fmt.Sprintf("league/%s/matchups/%d.json", leagueID, week)
	if err := c.getJSON(fmt.Sprintf("/league/%s/matchups/%d", leagueID, week), rel, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// getJSON resolves urlPath against BaseURL and decodes the response into out,
// consulting the snapshot store first when one is configured.
func (c *Client) getJSON(urlPath string, rel string, out any) error {
	if c.Snapshots != nil && c.Snapshots.Exists(rel) {
		body, err := c.Snapshots.Read(rel)
		if err != nil {
			return err
		}
		return json.Unmarshal(body, out)
	}

	req, err := http.NewRequest(http.MethodGet, c.BaseURL+urlPath, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", urlPath, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("GET %s failed: %d body=%s", urlPath, resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", urlPath, err)
	}

	if c.Snapshots != nil {
		if err := c.Snapshots.Write(rel, body); err != nil {
			return err
		}
	}
	return nil
}
