package agent

import "holdem/internal/game"

// CallingStation checks when free and calls everything else. It never
// folds and never raises, which makes it the baseline opponent.
type CallingStation struct{}

func (CallingStation) Decide(is game.InformationSet) game.Action {
	return checkOrCall(is)
}

// Scripted plays a fixed list of actions in order and checks once the
// script runs out. Used by tests to drive exact betting sequences.
type Scripted struct {
	Actions []game.Action
	next    int
}

func (s *Scripted) Decide(is game.InformationSet) game.Action {
	if s.next >= len(s.Actions) {
		return game.Action{Type: game.Check, Round: is.Round}
	}
	a := s.Actions[s.next]
	s.next++
	a.Round = is.Round
	return a
}
