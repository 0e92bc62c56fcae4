package game

import "holdem/internal/deck"

// SeatState is the public view of a seat inside an InformationSet.
// HoleCards is nil unless the seat is the acting seat or the hand has
// reached showdown.
type SeatState struct {
	Index     int
	Name      string
	Chips     int
	Bet       int
	Folded    bool
	Dealer    bool
	Acting    bool
	HoleCards []deck.Card
}

// InformationSet is an immutable snapshot built fresh before every
// decision. Deciders receive it by value and can never reach back into
// live hand state.
type InformationSet struct {
	Round          Round
	CommunityCards []deck.Card
	Pot            int
	CurrentBet     int
	MinCall        int // shortfall for the acting seat
	SmallBlind     int
	BigBlind       int
	Dealer         int
	Actor          int
	Seats          []SeatState
	History        []Action
}

// ActingSeat returns the acting seat's state
func (is InformationSet) ActingSeat() SeatState {
	return is.Seats[is.Actor]
}

// ActionsInRound returns the recorded actions for one round
func (is InformationSet) ActionsInRound(round Round) []Action {
	var out []Action
	for _, a := range is.History {
		if a.Round == round {
			out = append(out, a)
		}
	}
	return out
}

// buildInformationSet snapshots hand state for the given actor. Slices
// are copied so later mutation of the hand cannot leak across turns.
func (h *Hand) buildInformationSet(actor, currentBet int) InformationSet {
	is := InformationSet{
		Round:          h.round,
		CommunityCards: append([]deck.Card(nil), h.community...),
		Pot:            h.pot,
		CurrentBet:     currentBet,
		SmallBlind:     h.smallBlind,
		BigBlind:       h.bigBlind,
		Dealer:         h.dealer,
		Actor:          actor,
		History:        append([]Action(nil), h.history...),
	}

	for i, s := range h.seats {
		state := SeatState{
			Index:  s.Index,
			Name:   s.Name,
			Chips:  s.Chips,
			Bet:    s.Bet,
			Folded: s.Folded,
			Dealer: i == h.dealer,
			Acting: i == actor,
		}
		if i == actor || h.round == Showdown {
			state.HoleCards = append([]deck.Card(nil), s.HoleCards...)
		}
		is.Seats = append(is.Seats, state)
	}

	if actor >= 0 {
		shortfall := currentBet - h.seats[actor].Bet
		if shortfall < 0 {
			shortfall = 0
		}
		is.MinCall = shortfall
	}
	return is
}
