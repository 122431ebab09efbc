package roulette

import "testing"

func TestHouseEdgeDisabled(t *testing.T) {
	rng := &stubRNG{t: t} // any draw fails the test
	won, payout := applyHouseEdge(true, 20, false, rng)
	if !won || payout != 20 {
		t.Fatalf("disabled edge touched a win: won=%v payout=%f", won, payout)
	}
}

func TestHouseEdgeIgnoresLosses(t *testing.T) {
	rng := &stubRNG{t: t}
	won, payout := applyHouseEdge(false, 0, true, rng)
	if won || payout != 0 {
		t.Fatalf("loss should pass through: won=%v payout=%f", won, payout)
	}
}

func TestHouseEdgeForcesLoss(t *testing.T) {
	rng := &stubRNG{t: t, floats: []float64{0.1}}
	won, payout := applyHouseEdge(true, 20, true, rng)
	if won || payout != 0 {
		t.Fatalf("roll under 0.25 should force a loss: won=%v payout=%f", won, payout)
	}
}

func TestHouseEdgeKeepsWin(t *testing.T) {
	rng := &stubRNG{t: t, floats: []float64{0.9}}
	won, payout := applyHouseEdge(true, 20, true, rng)
	if !won || payout != 20 {
		t.Fatalf("roll over 0.25 should keep the win: won=%v payout=%f", won, payout)
	}
}

func TestHouseEdgeRateApprox(t *testing.T) {
	const n = 100000
	rng := NewSeededRNG(42)
	forced := 0
	for i := 0; i < n; i++ {
		if won, _ := applyHouseEdge(true, 20, true, rng); !won {
			forced++
		}
	}
	freq := float64(forced) / float64(n)
	// should be around 0.25
	if diff := freq - 0.25; diff > 0.01 || diff < -0.01 {
		t.Fatalf("forced-loss rate %f not close to 0.25", freq)
	}
}
