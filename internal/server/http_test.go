package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHealthEndpoint(t *testing.T) {
	srv := httptest.NewServer(NewHealthRouter("vegas-roulette-service"))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %s", ct)
	}

	var payload struct {
		Status          string            `json:"status"`
		Service         string            `json:"service"`
		ServiceMetadata map[string]string `json:"serviceMetadata"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload.Status != "ok" || payload.Service != "vegas-roulette-service" {
		t.Fatalf("payload = %+v", payload)
	}
	for _, key := range []string{"version", "gameType", "complexity", "rtp", "maxPayout", "owner", "technology", "timestamp"} {
		if payload.ServiceMetadata[key] == "" {
			t.Fatalf("serviceMetadata missing %s", key)
		}
	}
	if _, err := time.Parse(time.RFC3339, payload.ServiceMetadata["timestamp"]); err != nil {
		t.Fatalf("timestamp not RFC3339: %v", err)
	}
}

func TestUnknownPathReturnsJSONNotFound(t *testing.T) {
	srv := httptest.NewServer(NewHealthRouter("vegas-roulette-service"))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/nope")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Not found" {
		t.Fatalf("body = %v", body)
	}
}

func TestHealthAllowsCrossOriginReads(t *testing.T) {
	srv := httptest.NewServer(NewHealthRouter("vegas-roulette-service"))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Origin", "http://casino.example.com")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
