package roulette

import (
	"testing"
	"time"
)

func TestSpinStraightHit(t *testing.T) {
	rng := &stubRNG{t: t, ints: []int{17}}
	r := NewResolver(rng)
	out := r.Spin(Request{Bet: singleBet(BetStraight, 5, intp(17))})
	if out.Number != 17 || out.Color != Black {
		t.Fatalf("want pocket 17 black; got %d %s", out.Number, out.Color)
	}
	if !out.Won || out.Payout != 180 {
		t.Fatalf("want win 180; got won=%v payout=%f", out.Won, out.Payout)
	}
	if out.CheatBoosted {
		t.Fatalf("no cheat requested but boost reported")
	}
	if out.SpunAt.IsZero() || out.SpunAt.Location() != time.UTC {
		t.Fatalf("SpunAt should be a UTC timestamp; got %v", out.SpunAt)
	}
}

func TestSpinCheatThenHouseEdge(t *testing.T) {
	// draw 4 (black), ballControl fires and swaps in red pocket 1,
	// then the house roll stays high so the win survives
	rng := &stubRNG{t: t, ints: []int{4, 0}, floats: []float64{0.1, 0.9}}
	r := NewResolver(rng)
	req := Request{
		Bet:            singleBet(BetRed, 10, nil),
		CheatActive:    true,
		CheatKind:      CheatBallControl,
		HouseAdvantage: true,
	}
	out := r.Spin(req)
	if out.Number != 1 || out.Color != Red || !out.CheatBoosted {
		t.Fatalf("cheat should land red 1: %+v", out)
	}
	if !out.Won || out.Payout != 20 {
		t.Fatalf("want surviving win of 20; got won=%v payout=%f", out.Won, out.Payout)
	}

	// same spin, but the house roll comes in low and takes the win back
	rng = &stubRNG{t: t, ints: []int{4, 0}, floats: []float64{0.1, 0.1}}
	out = NewResolver(rng).Spin(req)
	if out.Won || out.Payout != 0 {
		t.Fatalf("house edge should force the loss; got won=%v payout=%f", out.Won, out.Payout)
	}
	if !out.CheatBoosted {
		t.Fatalf("forced loss must still report the boost")
	}
}

func TestSpinColorFollowsCheatedNumber(t *testing.T) {
	// straight cheat jumps from 4 to 18; reported color must match 18
	rng := &stubRNG{t: t, ints: []int{4}, floats: []float64{0.1}}
	r := NewResolver(rng)
	out := r.Spin(Request{
		Bet:         singleBet(BetStraight, 5, intp(18)),
		CheatActive: true,
		CheatKind:   CheatMagneticField,
	})
	if out.Number != 18 || out.Color != Red {
		t.Fatalf("want red 18 after jump; got %d %s", out.Number, out.Color)
	}
	if !out.Won || out.Payout != 180 {
		t.Fatalf("want win 180; got won=%v payout=%f", out.Won, out.Payout)
	}
}

func TestSpinLossConsumesNoHouseRoll(t *testing.T) {
	// pocket 0 loses the red bet; with no win there must be no house roll
	rng := &stubRNG{t: t, ints: []int{0}}
	r := NewResolver(rng)
	out := r.Spin(Request{Bet: singleBet(BetRed, 10, nil), HouseAdvantage: true})
	if out.Won || out.Payout != 0 || out.Color != Green {
		t.Fatalf("zero should lose red: %+v", out)
	}
}

func TestSpinNilRNGUsesDefault(t *testing.T) {
	r := NewResolver(nil)
	out := r.Spin(Request{Bet: singleBet(BetRed, 10, nil)})
	if out.Number < 0 || out.Number > 36 {
		t.Fatalf("pocket out of range: %d", out.Number)
	}
	if out.Color != ColorOf(out.Number) {
		t.Fatalf("color %s does not match pocket %d", out.Color, out.Number)
	}
}

func TestSpinDistribution(t *testing.T) {
	const n = 200000
	rng := NewSeededRNG(42)
	r := NewResolver(rng)
	counts := make([]int, wheelSize)
	for i := 0; i < n; i++ {
		out := r.Spin(Request{Bet: singleBet(BetRed, 10, nil)})
		counts[out.Number]++
	}
	// every pocket should land around 1/37 of the time
	for num, c := range counts {
		freq := float64(c) / float64(n)
		if diff := freq - 1.0/37.0; diff > 0.005 || diff < -0.005 {
			t.Fatalf("pocket %d freq %f not close to %f", num, freq, 1.0/37.0)
		}
	}
}
