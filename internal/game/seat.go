package game

import "holdem/internal/deck"

// Seat is a table position holding a chip stack and per-hand state.
// Seats are owned by the table; the betting engine references them for
// the duration of a hand.
type Seat struct {
	Index     int
	Name      string
	Chips     int
	Bet       int // contribution in the current betting round
	TotalBet  int // contribution across the whole hand
	Folded    bool
	HoleCards []deck.Card
}

// NewSeat creates a seat with a starting stack
func NewSeat(index int, name string, chips int) *Seat {
	return &Seat{Index: index, Name: name, Chips: chips}
}

// InHand returns true if the seat has not folded
func (s *Seat) InHand() bool {
	return !s.Folded
}

// CanAct returns true if the seat can still take a turn: not folded
// and not all-in.
func (s *Seat) CanAct() bool {
	return !s.Folded && s.Chips > 0
}

// resetForHand clears per-hand state. Chips persist across hands.
func (s *Seat) resetForHand() {
	s.Bet = 0
	s.TotalBet = 0
	s.Folded = false
	s.HoleCards = nil
}
