package state

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	gameStateKeyPrefix = "roulette:game:"
	gameStateTTL       = time.Hour
)

// Record is the last resolved spin for a player.
type Record struct {
	SpinID        string    `json:"spin_id"`
	LastSpin      time.Time `json:"last_spin"`
	WinningNumber int       `json:"winning_number"`
	Color         string    `json:"color"`
	Win           bool      `json:"win"`
	Payout        float64   `json:"payout"`
	BetAmount     float64   `json:"bet_amount"`
	BetType       string    `json:"bet_type"`
	CheatActive   bool      `json:"cheat_active"`
	CheatType     string    `json:"cheat_type"`
	CheatBoosted  bool      `json:"cheat_boosted"`
}

// Store persists the last spin per player in Redis. Everything is
// best-effort: when Redis is unreachable the store degrades to a no-op and
// the game keeps running without persistence.
type Store struct {
	client *redis.Client
}

// Connect builds a Store against addr and pings it once. On failure it logs
// a warning and returns a disabled store.
func Connect(addr, password string) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Game state will not be persisted.", err)
		return &Store{}
	}
	log.Printf("✅ Connected to Redis at %s", addr)
	return &Store{client: client}
}

// Enabled reports whether a Redis connection is behind the store.
func (s *Store) Enabled() bool {
	return s != nil && s.client != nil
}

// Save writes the player's latest spin, replacing any previous one. The
// record expires after an hour of inactivity.
func (s *Store) Save(ctx context.Context, username string, rec *Record) error {
	if !s.Enabled() {
		return nil
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal game state: %w", err)
	}
	if err := s.client.Set(ctx, key(username), payload, gameStateTTL).Err(); err != nil {
		return fmt.Errorf("save game state: %w", err)
	}
	return nil
}

// Load returns the player's last spin, or nil when none is stored.
func (s *Store) Load(ctx context.Context, username string) (*Record, error) {
	if !s.Enabled() {
		return nil, nil
	}
	val, err := s.client.Get(ctx, key(username)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load game state: %w", err)
	}
	var rec Record
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, fmt.Errorf("parse game state: %w", err)
	}
	return &rec, nil
}

// Delete removes the player's stored spin.
func (s *Store) Delete(ctx context.Context, username string) error {
	if !s.Enabled() {
		return nil
	}
	if err := s.client.Del(ctx, key(username)).Err(); err != nil {
		return fmt.Errorf("delete game state: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	if !s.Enabled() {
		return nil
	}
	return s.client.Close()
}

func key(username string) string {
	return gameStateKeyPrefix + username
}
