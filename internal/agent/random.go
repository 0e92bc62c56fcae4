package agent

import (
	"math/rand/v2"

	"holdem/internal/game"
)

// Random folds 20%, calls 40%, and bets or raises 40% of the time,
// with uniformly sized raises. Facing a bet it cannot cover, it flips
// a coin between folding and shoving.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random decider drawing from rng
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Decide(is game.InformationSet) game.Action {
	me := is.ActingSeat()

	if is.MinCall > me.Chips {
		if r.rng.Float64() < 0.5 {
			return fold(is)
		}
		return allIn(is)
	}

	switch roll := r.rng.Float64(); {
	case roll < 0.2:
		if is.MinCall == 0 {
			return checkOrCall(is)
		}
		return fold(is)
	case roll < 0.6:
		return checkOrCall(is)
	default:
		if is.CurrentBet == 0 {
			amount := min(me.Chips, (1+r.rng.IntN(3))*is.BigBlind)
			return game.Action{Type: game.Bet, Amount: amount, Round: is.Round}
		}
		amount := min(me.Bet+me.Chips, is.CurrentBet+(2+r.rng.IntN(3))*is.BigBlind)
		return game.Action{Type: game.Raise, Amount: amount, Round: is.Round}
	}
}
