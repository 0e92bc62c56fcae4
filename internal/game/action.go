package game

import "fmt"

// ActionType classifies a betting action
type ActionType int

const (
	Fold ActionType = iota
	Check
	Call
	Bet
	Raise
	AllIn
	SmallBlind
	BigBlind
)

func (t ActionType) String() string {
	return [...]string{"fold", "check", "call", "bet", "raise", "allin", "small_blind", "big_blind"}[t]
}

// Action is a single betting action. Amounts are additional chips for
// CALL and blinds, and the seat's total round contribution for BET,
// RAISE and ALL_IN. Actions are recorded into an append-only history
// and never mutated after validation.
type Action struct {
	Type   ActionType
	Seat   int
	Amount int
	Round  Round
}

func (a Action) String() string {
	switch a.Type {
	case Fold, Check:
		return fmt.Sprintf("seat %d %ss", a.Seat, a.Type)
	case Raise:
		return fmt.Sprintf("seat %d raises to $%d", a.Seat, a.Amount)
	case AllIn:
		return fmt.Sprintf("seat %d goes all-in for $%d", a.Seat, a.Amount)
	default:
		return fmt.Sprintf("seat %d %ss $%d", a.Seat, a.Type, a.Amount)
	}
}
