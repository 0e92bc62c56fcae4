package game

// RoundView is the slice of betting-round state the validator consults.
type RoundView struct {
	Round      Round
	CurrentBet int
	BigBlind   int
}

// ValidateAction rewrites a proposed action into a guaranteed-legal one.
// It is stateless and never mutates chips or the pot; it consults only
// the seat and round view passed in. The second return reports whether
// the proposal needed correcting. Re-validating an already-legal action
// returns it unchanged.
//
// Rules, in order:
//   - CHECK facing a bet becomes CALL for the true shortfall.
//   - CALL is clamped to min(shortfall, stack); with nothing to call it
//     becomes CHECK.
//   - BET facing a bet becomes RAISE. Minimum bet is the big blind;
//     minimum raise is the current bet plus the big blind; undersized
//     requests are bumped.
//   - Any action whose required contribution meets or exceeds the stack
//     becomes ALL_IN, with the amount expressed as the seat's total
//     round contribution.
func ValidateAction(proposed Action, seat *Seat, view RoundView) (Action, bool) {
	a := proposed
	a.Seat = seat.Index
	a.Round = view.Round

	shortfall := view.CurrentBet - seat.Bet
	if shortfall < 0 {
		shortfall = 0
	}

	switch a.Type {
	case Fold:
		a.Amount = 0

	case Check:
		if shortfall > 0 {
			a.Type = Call
			a.Amount = shortfall
		} else {
			a.Amount = 0
		}

	case Call:
		if shortfall == 0 {
			a.Type = Check
			a.Amount = 0
		} else {
			a.Amount = min(shortfall, seat.Chips)
		}

	case Bet:
		if view.CurrentBet > 0 {
			a.Type = Raise
		}

	case AllIn:
		a.Amount = seat.Bet + seat.Chips
	}

	// Minimum sizing for opening bets and raises
	if a.Type == Bet && a.Amount < view.BigBlind {
		a.Amount = view.BigBlind
	}
	if a.Type == Raise && a.Amount < view.CurrentBet+view.BigBlind {
		a.Amount = view.CurrentBet + view.BigBlind
	}

	// Anything consuming the stack is an all-in, recorded as the seat's
	// total round contribution (prior bet plus remaining stack).
	switch a.Type {
	case Call:
		if a.Amount >= seat.Chips {
			a.Type = AllIn
			a.Amount = seat.Bet + seat.Chips
		}
	case Bet, Raise:
		if a.Amount-seat.Bet >= seat.Chips {
			a.Type = AllIn
			a.Amount = seat.Bet + seat.Chips
		}
	}

	corrected := a.Type != proposed.Type || a.Amount != proposed.Amount
	return a, corrected
}
