package roulette

import "sort"

// CheatKind names the rigging technique a cheating player claims to use.
// The kind only sets the odds that the rig engages on a given spin.
type CheatKind string

const (
	CheatNone             CheatKind = ""
	CheatBallControl      CheatKind = "ballControl"
	CheatWheelBias        CheatKind = "wheelBias"
	CheatMagneticField    CheatKind = "magneticField"
	CheatSectorPrediction CheatKind = "sectorPrediction"
)

// boostChance returns the per-spin probability that the given technique
// manages to re-bias the wheel. Unknown kinds never fire.
func boostChance(kind CheatKind) float64 {
	switch kind {
	case CheatBallControl:
		return 0.30
	case CheatWheelBias:
		return 0.25
	case CheatMagneticField:
		return 0.40
	case CheatSectorPrediction:
		return 0.35
	default:
		return 0
	}
}

// applyCheat re-biases the drawn pocket toward the bet when the cheat fires.
// It reports the final pocket and whether a replacement actually happened.
// The caller re-derives the color afterwards.
//
// Single-mode red/black bets swap to a random matching pocket only when the
// draw missed; single-mode straight bets jump to the target; even, odd, low,
// and high have no single-mode rig. Multiple mode picks uniformly from the
// union of pockets satisfying at least one leg.
func applyCheat(number int, bet Bet, active bool, kind CheatKind, rng RandomSource) (int, bool) {
	if !active || kind == CheatNone {
		return number, false
	}
	if rng.Float64() >= boostChance(kind) {
		return number, false
	}

	if bet.Multiple {
		candidates := favorableNumbers(bet.Legs)
		if len(candidates) == 0 {
			return number, false
		}
		return candidates[rng.IntN(len(candidates))], true
	}

	if len(bet.Legs) == 0 {
		return number, false
	}
	leg := bet.Legs[0]
	switch leg.Kind {
	case BetRed:
		if ColorOf(number) != Red {
			reds := RedNumbers()
			return reds[rng.IntN(len(reds))], true
		}
	case BetBlack:
		if ColorOf(number) != Black {
			blacks := BlackNumbers()
			return blacks[rng.IntN(len(blacks))], true
		}
	case BetStraight:
		if leg.Target != nil && *leg.Target >= 0 && *leg.Target <= 36 {
			return *leg.Target, true
		}
	}
	return number, false
}

// favorableNumbers is the union of pockets that satisfy at least one leg, in
// ascending order. Straight targets off the wheel are ignored.
func favorableNumbers(legs []BetLeg) []int {
	want := make(map[int]bool)
	add := func(ns []int) {
		for _, n := range ns {
			want[n] = true
		}
	}
	for _, leg := range legs {
		switch leg.Kind {
		case BetStraight:
			if leg.Target != nil && *leg.Target >= 0 && *leg.Target <= 36 {
				want[*leg.Target] = true
			}
		case BetRed:
			add(RedNumbers())
		case BetBlack:
			add(BlackNumbers())
		case BetEven:
			add(evenNumbers())
		case BetOdd:
			add(oddNumbers())
		case BetLow:
			add(lowNumbers())
		case BetHigh:
			add(highNumbers())
		}
	}
	if len(want) == 0 {
		return nil
	}
	out := make([]int, 0, len(want))
	for n := range want {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
