package agent

import (
	"math/rand/v2"

	"holdem/internal/game"
)

// Advanced adjusts to position and board texture. On the button or
// short-handed it bets three quarters of the pot and raises paired
// boards; out of position it mostly checks and calls. Facing a bet it
// cannot cover, it folds in proportion to the pot odds.
type Advanced struct {
	rng *rand.Rand
}

// NewAdvanced creates an Advanced decider drawing from rng
func NewAdvanced(rng *rand.Rand) *Advanced {
	return &Advanced{rng: rng}
}

func (a *Advanced) Decide(is game.InformationSet) game.Action {
	me := is.ActingSeat()

	if is.MinCall > me.Chips {
		potOdds := float64(is.MinCall) / float64(is.Pot+is.MinCall)
		if a.rng.Float64() < potOdds {
			return fold(is)
		}
		return allIn(is)
	}

	late := me.Dealer || a.activePlayers(is) <= 3
	paired := boardPaired(is)

	if late {
		if is.CurrentBet == 0 {
			size := min(me.Chips, is.Pot*3/4)
			if size >= is.BigBlind {
				return game.Action{Type: game.Bet, Amount: size, Round: is.Round}
			}
			return checkOrCall(is)
		}
		if paired || a.rng.Float64() < 0.4 {
			size := min(me.Bet+me.Chips, is.CurrentBet*5/2)
			return game.Action{Type: game.Raise, Amount: size, Round: is.Round}
		}
		return checkOrCall(is)
	}

	if is.CurrentBet == 0 {
		if paired || a.rng.Float64() < 0.2 {
			size := min(me.Chips, is.Pot/2)
			if size >= is.BigBlind {
				return game.Action{Type: game.Bet, Amount: size, Round: is.Round}
			}
		}
		return checkOrCall(is)
	}
	if a.rng.Float64() < 0.8 {
		return checkOrCall(is)
	}
	return fold(is)
}

func (a *Advanced) activePlayers(is game.InformationSet) int {
	n := 0
	for _, s := range is.Seats {
		if !s.Folded {
			n++
		}
	}
	return n
}

// boardPaired reports whether any two community cards share a rank
func boardPaired(is game.InformationSet) bool {
	seen := make(map[int]bool, len(is.CommunityCards))
	for _, c := range is.CommunityCards {
		if seen[int(c.Rank)] {
			return true
		}
		seen[int(c.Rank)] = true
	}
	return false
}
