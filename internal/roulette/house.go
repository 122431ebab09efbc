package roulette

// houseEdgeChance is the probability that an enabled house-advantage pass
// converts a winning spin into a loss.
const houseEdgeChance = 0.25

// applyHouseEdge runs after evaluation and fires at most once per spin. It can
// only downgrade a win to a loss; losing spins pass through untouched and
// consume no randomness.
func applyHouseEdge(won bool, payout float64, enabled bool, rng RandomSource) (bool, float64) {
	if !enabled || !won || payout <= 0 {
		return won, payout
	}
	if rng.Float64() < houseEdgeChance {
		return false, 0
	}
	return won, payout
}
