// Package server implements the roulette gRPC service and its HTTP
// health surface. All game logic lives in internal/roulette; this
// package converts wire requests, runs the resolver, and dispatches
// the best-effort side effects.
package server

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"vegas-roulette-service/internal/assets"
	"vegas-roulette-service/internal/background"
	"vegas-roulette-service/internal/config"
	"vegas-roulette-service/internal/roulette"
	"vegas-roulette-service/internal/scoring"
	"vegas-roulette-service/internal/state"
	pb "vegas-roulette-service/proto"
)

const (
	tracerName         = "vegas-roulette-service"
	houseAdvantageFlag = "casino.house-advantage"
)

// FlagSource resolves boolean feature flags, falling back to the given
// default when the flag cannot be retrieved.
type FlagSource interface {
	Bool(ctx context.Context, key string, def bool) bool
}

// StateStore persists each player's last spin.
type StateStore interface {
	Save(ctx context.Context, username string, rec *state.Record) error
}

// ResultSink receives finished game results.
type ResultSink interface {
	Record(ctx context.Context, result scoring.GameResult) error
}

// Deps bundles the collaborators a RouletteServer uses. Nil entries
// disable the corresponding concern rather than failing.
type Deps struct {
	Resolver *roulette.Resolver
	Flags    FlagSource
	Store    StateStore
	Sink     ResultSink
	Tasks    *background.Runner
}

// RouletteServer implements pb.RouletteServiceServer.
type RouletteServer struct {
	pb.UnimplementedRouletteServiceServer

	cfg      config.Config
	resolver *roulette.Resolver
	flags    FlagSource
	store    StateStore
	sink     ResultSink
	tasks    *background.Runner
}

// New builds the servicer from its dependencies.
func New(cfg config.Config, deps Deps) *RouletteServer {
	resolver := deps.Resolver
	if resolver == nil {
		resolver = roulette.NewResolver(nil)
	}
	return &RouletteServer{
		cfg:      cfg,
		resolver: resolver,
		flags:    deps.Flags,
		store:    deps.Store,
		sink:     deps.Sink,
		tasks:    deps.Tasks,
	}
}

// Health reports service status and static metadata.
func (s *RouletteServer) Health(ctx context.Context, req *pb.HealthRequest) (*pb.HealthResponse, error) {
	return &pb.HealthResponse{
		Status:   "ok",
		Service:  s.cfg.Server.ServiceName,
		Metadata: Metadata(),
	}, nil
}

// Spin resolves one roulette round: parse the bet, run the wheel with
// any cheat and house-advantage adjustments, then hand the state save
// and the scoring report off to the background runner.
func (s *RouletteServer) Spin(ctx context.Context, req *pb.SpinRequest) (*pb.SpinResponse, error) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "roulette_spin")
	defer span.End()

	betType := req.GetBetType()
	if betType == "" {
		betType = "red"
	}
	betAmount := req.GetBetAmount()
	if betAmount == 0 {
		betAmount = 10
	}
	cheatActive := req.GetCheatActive()
	cheatType := req.GetCheatType()

	username := "Anonymous"
	if u, ok := req.GetPlayerInfo()["username"]; ok {
		username = u
	}

	houseAdvantage := false
	if s.flags != nil {
		houseAdvantage = s.flags.Bool(ctx, houseAdvantageFlag, false)
	}
	if houseAdvantage {
		log.Printf("[Roulette] 🏠 House advantage mode enabled - reducing win probability")
	}

	span.SetAttributes(
		attribute.String("game.action", "spin"),
		attribute.String("game.bet_type", betType),
		attribute.Float64("game.bet_amount", betAmount),
		attribute.Bool("game.cheat_active", cheatActive),
		attribute.Bool("feature_flag.house_advantage", houseAdvantage),
	)
	if cheatType != "" {
		span.SetAttributes(attribute.String("game.cheat_type", cheatType))
	}
	if username != "" {
		span.SetAttributes(attribute.String("user.name", username))
	}

	bet := betFromRequest(betType, betAmount, req.GetBetValue())

	outcome := s.resolver.Spin(roulette.Request{
		Bet:            bet,
		CheatActive:    cheatActive,
		CheatKind:      roulette.CheatKind(cheatType),
		HouseAdvantage: houseAdvantage,
	})

	if outcome.CheatBoosted {
		log.Printf("[Roulette] 🎯 Cheat boosted! bet_type=%s, cheat_type=%s, winning_number=%d",
			betType, cheatType, outcome.Number)
	}

	spinID := uuid.NewString()
	span.SetAttributes(
		attribute.String("game.spin_id", spinID),
		attribute.Int("game.winning_number", outcome.Number),
		attribute.String("game.color", string(outcome.Color)),
		attribute.Bool("game.win", outcome.Won),
		attribute.Float64("game.payout", outcome.Payout),
		attribute.Bool("game.cheat_boosted", outcome.CheatBoosted),
	)

	s.saveState(spinID, username, betType, betAmount, cheatActive, cheatType, outcome)
	s.reportResult(spinID, username, betType, betAmount, bet, cheatActive, cheatType, outcome)

	log.Printf("🎡 Roulette Spin: %d (%s), Bet: %s, Win: %v, Payout: %.2f",
		outcome.Number, outcome.Color, betType, outcome.Won, outcome.Payout)

	return &pb.SpinResponse{
		WinningNumber: int32(outcome.Number),
		Color:         string(outcome.Color),
		Win:           outcome.Won,
		Payout:        outcome.Payout,
		Timestamp:     outcome.SpunAt.Format(time.RFC3339),
		CheatActive:   cheatActive,
		CheatType:     cheatType,
		CheatBoosted:  outcome.CheatBoosted,
	}, nil
}

// GetGameAssets returns the embedded game page and its client config.
func (s *RouletteServer) GetGameAssets(ctx context.Context, req *pb.GameAssetsRequest) (*pb.GameAssetsResponse, error) {
	tracer := otel.Tracer(tracerName)
	_, span := tracer.Start(ctx, "get_game_assets")
	defer span.End()

	span.SetAttributes(attribute.String("game.asset_type", req.GetAssetType()))

	gameConfig := map[string]string{
		"service_endpoint": s.cfg.Server.Endpoint,
		"game_name":        "Roulette",
		"game_type":        "european-roulette",
		"min_bet":          "10",
		"max_bet":          "1000",
	}

	return &pb.GameAssetsResponse{
		Html:       assets.HTML(),
		Javascript: assets.JS(),
		Css:        assets.CSS(),
		Config:     gameConfig,
	}, nil
}

// saveState persists the spin as the player's last game state.
func (s *RouletteServer) saveState(spinID, username, betType string, betAmount float64, cheatActive bool, cheatType string, outcome roulette.Outcome) {
	if s.store == nil {
		return
	}
	record := &state.Record{
		SpinID:        spinID,
		LastSpin:      outcome.SpunAt,
		WinningNumber: outcome.Number,
		Color:         string(outcome.Color),
		Win:           outcome.Won,
		Payout:        outcome.Payout,
		BetAmount:     betAmount,
		BetType:       betType,
		CheatActive:   cheatActive,
		CheatType:     cheatType,
		CheatBoosted:  outcome.CheatBoosted,
	}
	s.dispatch("save-game-state", func(ctx context.Context) {
		if err := s.store.Save(ctx, username, record); err != nil {
			log.Printf("Warning: Failed to save game state to Redis: %v", err)
		}
	})
}

// reportResult submits the spin to the scoring service. Losses are
// reported too so total bet volume is tracked.
func (s *RouletteServer) reportResult(spinID, username, betType string, betAmount float64, bet roulette.Bet, cheatActive bool, cheatType string, outcome roulette.Outcome) {
	if s.sink == nil {
		return
	}

	totalBet := betAmount
	if bet.Multiple && len(bet.Legs) > 0 {
		totalBet = bet.TotalAmount()
	}

	won := outcome.Won && outcome.Payout > 0
	result := "lose"
	if won {
		result = "win"
	}

	gameData, _ := json.Marshal(map[string]any{
		"winning_number": outcome.Number,
		"color":          string(outcome.Color),
		"bet_type":       betType,
	})
	metadata, _ := json.Marshal(map[string]any{
		"spin_id":       spinID,
		"cheat_active":  cheatActive,
		"cheat_type":    cheatType,
		"cheat_boosted": outcome.CheatBoosted,
		"timestamp":     outcome.SpunAt.Format(time.RFC3339),
	})

	gameResult := scoring.GameResult{
		Username:  username,
		Game:      "roulette",
		Action:    "spin",
		BetAmount: totalBet,
		Payout:    outcome.Payout,
		Win:       won,
		Result:    result,
		GameData:  string(gameData),
		Metadata:  string(metadata),
	}
	s.dispatch("record-game-result", func(ctx context.Context) {
		if err := s.sink.Record(ctx, gameResult); err != nil {
			log.Printf("[Scoring] Failed to record game result: %v", err)
		}
	})
}

// dispatch hands a side effect to the background runner, or to a plain
// goroutine when no runner is wired.
func (s *RouletteServer) dispatch(name string, fn func(ctx context.Context)) {
	if s.tasks != nil {
		s.tasks.Submit(name, fn)
		return
	}
	go fn(context.Background())
}

// betFromRequest maps the wire bet fields onto engine bet legs. Map
// entries are read in sorted key order so a given request always builds
// the same legs.
func betFromRequest(betType string, betAmount float64, betValue map[string]*pb.Bet) roulette.Bet {
	if betType == string(roulette.BetMultiple) {
		legs := make([]roulette.BetLeg, 0, len(betValue))
		for _, key := range sortedKeys(betValue) {
			b := betValue[key]
			leg := roulette.BetLeg{
				Kind:   roulette.BetKind(b.GetType()),
				Amount: b.GetAmount(),
			}
			if leg.Kind == roulette.BetStraight {
				leg.Target = parseTarget(b.GetValue())
			}
			legs = append(legs, leg)
		}
		return roulette.Bet{Multiple: true, Legs: legs}
	}

	leg := roulette.BetLeg{
		Kind:   roulette.BetKind(betType),
		Amount: betAmount,
	}
	if leg.Kind == roulette.BetStraight {
		for _, key := range sortedKeys(betValue) {
			if target := parseTarget(betValue[key].GetValue()); target != nil {
				leg.Target = target
				break
			}
		}
	}
	return roulette.Bet{Legs: []roulette.BetLeg{leg}}
}

func parseTarget(value string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &n
}

func sortedKeys(m map[string]*pb.Bet) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
