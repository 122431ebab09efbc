package roulette

import "time"

// Request carries everything the resolver needs for one spin. The transport
// layer validates and converts wire input before building one.
type Request struct {
	Bet            Bet
	CheatActive    bool
	CheatKind      CheatKind
	HouseAdvantage bool
}

// Outcome is a fully resolved spin.
type Outcome struct {
	Number       int
	Color        Color
	Won          bool
	Payout       float64
	CheatBoosted bool
	SpunAt       time.Time
}

// Resolver turns bet requests into spin outcomes. It holds no per-spin state,
// so one Resolver serves concurrent requests as long as its RandomSource does.
type Resolver struct {
	rng RandomSource
}

// NewResolver builds a resolver on the given random source. Nil selects the
// process-wide default.
func NewResolver(rng RandomSource) *Resolver {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &Resolver{rng: rng}
}

// Spin draws a pocket, applies the cheat and house-advantage adjustments in
// that order, and scores the bet. Malformed legs lose; they never fail the
// spin.
func (r *Resolver) Spin(req Request) Outcome {
	number := r.rng.IntN(wheelSize)
	number, boosted := applyCheat(number, req.Bet, req.CheatActive, req.CheatKind, r.rng)
	color := ColorOf(number)

	won, payout := evaluate(req.Bet, number, color)
	won, payout = applyHouseEdge(won, payout, req.HouseAdvantage, r.rng)

	return Outcome{
		Number:       number,
		Color:        color,
		Won:          won,
		Payout:       payout,
		CheatBoosted: boosted,
		SpunAt:       time.Now().UTC(),
	}
}
