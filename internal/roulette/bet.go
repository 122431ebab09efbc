package roulette

// BetKind names a wager type. Unrecognized kinds are still carried through
// resolution; they simply never win.
type BetKind string

const (
	BetStraight BetKind = "straight"
	BetRed      BetKind = "red"
	BetBlack    BetKind = "black"
	BetEven     BetKind = "even"
	BetOdd      BetKind = "odd"
	BetLow      BetKind = "low"
	BetHigh     BetKind = "high"

	// BetMultiple marks a request that carries several independent legs
	// instead of a single wager.
	BetMultiple BetKind = "multiple"
)

// Payout multipliers, applied to the stake of each winning leg.
const (
	straightPayout = 36
	outsidePayout  = 2
)

// BetLeg is one wager: a kind, a stake, and, for straight bets, the target
// pocket. Target stays nil when the wire value was absent or unparseable,
// which makes the leg a guaranteed loss.
type BetLeg struct {
	Kind   BetKind
	Amount float64
	Target *int
}

// Bet is the full wager for one spin: a single leg, or several independent
// legs in multiple mode.
type Bet struct {
	Multiple bool
	Legs     []BetLeg
}

// TotalAmount is the combined stake across all legs.
func (b Bet) TotalAmount() float64 {
	var total float64
	for _, leg := range b.Legs {
		total += leg.Amount
	}
	return total
}

// evaluateLeg scores one leg against the drawn pocket. Zero never counts as
// even, odd, low, or high.
func evaluateLeg(leg BetLeg, number int, color Color) (bool, float64) {
	won := false
	switch leg.Kind {
	case BetRed:
		won = color == Red
	case BetBlack:
		won = color == Black
	case BetEven:
		won = number > 0 && number%2 == 0
	case BetOdd:
		won = number > 0 && number%2 == 1
	case BetLow:
		won = number >= 1 && number <= 18
	case BetHigh:
		won = number >= 19 && number <= 36
	case BetStraight:
		won = leg.Target != nil && number == *leg.Target
	}
	if !won {
		return false, 0
	}
	if leg.Kind == BetStraight {
		return true, leg.Amount * straightPayout
	}
	return true, leg.Amount * outsidePayout
}

// evaluate scores the whole bet. Any winning leg wins the spin, and the
// payout is the sum over winning legs.
func evaluate(bet Bet, number int, color Color) (bool, float64) {
	won := false
	var payout float64
	for _, leg := range bet.Legs {
		legWon, legPayout := evaluateLeg(leg, number, color)
		if legWon {
			won = true
			payout += legPayout
		}
	}
	return won, payout
}
