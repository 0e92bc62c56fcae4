// Package agent provides the built-in deciders: a console-driven human
// seat and several computer strategies of varying aggression.
package agent

import (
	"fmt"
	"math/rand/v2"

	"holdem/internal/game"
)

// Strategy names accepted by New
const (
	StrategyCallingStation = "calling-station"
	StrategyRandom         = "random"
	StrategyComputer       = "computer"
	StrategyAdvanced       = "advanced"
)

// New builds a computer decider by strategy name. Human seats are
// constructed directly with NewHuman since they need terminal wiring.
func New(strategy string, rng *rand.Rand) (game.Decider, error) {
	switch strategy {
	case StrategyCallingStation:
		return CallingStation{}, nil
	case StrategyRandom:
		return &Random{rng: rng}, nil
	case StrategyComputer:
		return &Computer{rng: rng}, nil
	case StrategyAdvanced:
		return &Advanced{rng: rng}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
}

// allIn builds an all-in proposal for the acting seat. The amount is
// the seat's total round contribution, matching what the validator
// would produce.
func allIn(is game.InformationSet) game.Action {
	me := is.ActingSeat()
	return game.Action{Type: game.AllIn, Amount: me.Bet + me.Chips, Round: is.Round}
}

func checkOrCall(is game.InformationSet) game.Action {
	if is.MinCall == 0 {
		return game.Action{Type: game.Check, Round: is.Round}
	}
	return game.Action{Type: game.Call, Amount: is.MinCall, Round: is.Round}
}

func fold(is game.InformationSet) game.Action {
	return game.Action{Type: game.Fold, Round: is.Round}
}
