package state

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"
)

func TestDisabledStoreIsNoOp(t *testing.T) {
	s := &Store{}
	if s.Enabled() {
		t.Fatalf("zero store should be disabled")
	}
	ctx := context.Background()
	if err := s.Save(ctx, "alice", &Record{WinningNumber: 7}); err != nil {
		t.Fatalf("disabled save should be a no-op: %v", err)
	}
	rec, err := s.Load(ctx, "alice")
	if err != nil || rec != nil {
		t.Fatalf("disabled load should be empty: rec=%v err=%v", rec, err)
	}
	if err := s.Delete(ctx, "alice"); err != nil {
		t.Fatalf("disabled delete should be a no-op: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("disabled close should be a no-op: %v", err)
	}
}

func TestNilStoreIsSafe(t *testing.T) {
	var s *Store
	if s.Enabled() {
		t.Fatalf("nil store should be disabled")
	}
	if err := s.Save(context.Background(), "alice", &Record{}); err != nil {
		t.Fatalf("nil save should be a no-op: %v", err)
	}
}

func TestConnectUnreachableDegrades(t *testing.T) {
	// nothing listens on port 1; the store must come up disabled, not fail
	s := Connect("127.0.0.1:1", "")
	if s.Enabled() {
		t.Fatalf("unreachable Redis should leave the store disabled")
	}
}

func TestKey(t *testing.T) {
	if got := key("alice"); got != "roulette:game:alice" {
		t.Fatalf("key wrong: %s", got)
	}
}

func TestRecordJSONShape(t *testing.T) {
	rec := Record{
		SpinID:        "0b2f7a48-1c70-4a0e-9c9b-6a9d6a1f2e33",
		LastSpin:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		WinningNumber: 17,
		Color:         "black",
		Win:           true,
		Payout:        180,
		BetAmount:     5,
		BetType:       "straight",
		CheatActive:   true,
		CheatType:     "ballControl",
		CheatBoosted:  true,
	}
	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{
		"spin_id", "last_spin", "winning_number", "color", "win", "payout",
		"bet_amount", "bet_type", "cheat_active", "cheat_type", "cheat_boosted",
	} {
		if _, ok := m[k]; !ok {
			t.Fatalf("missing json key %q in %s", k, b)
		}
	}
	if m["winning_number"].(float64) != 17 || m["color"] != "black" {
		t.Fatalf("unexpected payload: %s", b)
	}
}

// Runs only against a real Redis, e.g. TEST_REDIS_ADDR=localhost:6379.
func TestStoreRoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	s := Connect(addr, os.Getenv("TEST_REDIS_PASSWORD"))
	if !s.Enabled() {
		t.Fatalf("could not connect to Redis at %s", addr)
	}
	defer s.Close()

	ctx := context.Background()
	username := "roundtrip-test-user"
	defer s.Delete(ctx, username)

	want := &Record{
		SpinID:        "round-trip-spin",
		LastSpin:      time.Now().UTC().Truncate(time.Second),
		WinningNumber: 32,
		Color:         "red",
		Win:           true,
		Payout:        20,
		BetAmount:     10,
		BetType:       "red",
	}
	if err := s.Save(ctx, username, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := s.Load(ctx, username)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got == nil || got.SpinID != want.SpinID || got.WinningNumber != 32 || !got.LastSpin.Equal(want.LastSpin) {
		t.Fatalf("roundtrip mismatch: got %+v want %+v", got, want)
	}
	if err := s.Delete(ctx, username); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if rec, err := s.Load(ctx, username); err != nil || rec != nil {
		t.Fatalf("record should be gone after delete: rec=%v err=%v", rec, err)
	}
}
