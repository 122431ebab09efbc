package flags

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Client resolves boolean feature flags. Environment variables of the form
// FLAG_<KEY> (dots and dashes become underscores) take precedence; after that
// the flagd REST API is consulted, and on any failure the caller's default
// wins. A lookup never blocks longer than the HTTP timeout.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client against the flagd REST surface,
// e.g. "http://flagd:8013". A nil client resolves everything to defaults.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: time.Second},
	}
}

// flagdPayload is the slice of flagd's REST response we care about.
type flagdPayload struct {
	State          string `json:"state"`
	DefaultVariant string `json:"defaultVariant"`
}

// Bool resolves a boolean flag, falling back to def.
func (c *Client) Bool(ctx context.Context, key string, def bool) bool {
	if v, ok := os.LookupEnv(envKey(key)); ok {
		switch strings.ToLower(v) {
		case "true", "1", "yes":
			return true
		default:
			return false
		}
	}
	if c == nil {
		return def
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/schema/v1/flags/"+key, nil)
	if err != nil {
		return def
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return def
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return def
	}

	var payload flagdPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return def
	}
	if payload.State != "ENABLED" {
		return def
	}
	switch payload.DefaultVariant {
	case "true":
		return true
	case "false":
		return false
	}
	if b, err := strconv.ParseBool(strings.ToLower(payload.DefaultVariant)); err == nil {
		return b
	}
	return def
}

// envKey maps "casino.house-advantage" to "FLAG_CASINO_HOUSE_ADVANTAGE".
func envKey(key string) string {
	mapped := strings.NewReplacer(".", "_", "-", "_").Replace(key)
	return "FLAG_" + strings.ToUpper(mapped)
}
