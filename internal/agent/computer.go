package agent

import (
	"math/rand/v2"

	"holdem/internal/game"
)

// Computer is the default opponent: 20% fold, 60% call, 20% raise,
// with small bet sizing tied to the big blind. Facing an all-in it
// cannot cover, it calls 30% of the time.
type Computer struct {
	rng *rand.Rand
}

// NewComputer creates a Computer decider drawing from rng
func NewComputer(rng *rand.Rand) *Computer {
	return &Computer{rng: rng}
}

func (c *Computer) Decide(is game.InformationSet) game.Action {
	me := is.ActingSeat()

	if is.MinCall >= me.Chips && is.MinCall > 0 {
		if c.rng.Float64() < 0.3 {
			return allIn(is)
		}
		return fold(is)
	}

	switch roll := c.rng.Float64(); {
	case roll < 0.2 && is.MinCall > 0:
		return fold(is)
	case roll < 0.8:
		return checkOrCall(is)
	default:
		if is.CurrentBet == 0 {
			amount := min(me.Chips, is.BigBlind+c.rng.IntN(3)*is.BigBlind)
			if amount == me.Chips {
				return allIn(is)
			}
			return game.Action{Type: game.Bet, Amount: amount, Round: is.Round}
		}
		amount := max(is.CurrentBet+is.BigBlind, is.CurrentBet+(1+c.rng.IntN(3))*is.BigBlind)
		amount = min(amount, me.Bet+me.Chips)
		if amount == me.Bet+me.Chips {
			return allIn(is)
		}
		return game.Action{Type: game.Raise, Amount: amount, Round: is.Round}
	}
}
