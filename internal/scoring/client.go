// Package scoring reports finished spins to the casino scoring service.
package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// GameResult is the payload accepted by the scoring service's
// /api/scoring/game-result endpoint. GameData and Metadata carry
// JSON-encoded strings rather than nested objects.
type GameResult struct {
	Username  string  `json:"username"`
	Game      string  `json:"game"`
	Action    string  `json:"action"`
	BetAmount float64 `json:"betAmount"`
	Payout    float64 `json:"payout"`
	Win       bool    `json:"win"`
	Result    string  `json:"result"`
	GameData  string  `json:"gameData"`
	Metadata  string  `json:"metadata"`
}

// Client posts game results to the scoring service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a scoring client for the given base URL,
// e.g. http://localhost:8085.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Record sends one game result to the scoring service.
func (c *Client) Record(ctx context.Context, result GameResult) error {
	if c == nil {
		return nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal game result: %w", err)
	}

	url := c.baseURL + "/api/scoring/game-result"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("create scoring request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send game result: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("scoring service returned status %d", resp.StatusCode)
	}
	return nil
}
