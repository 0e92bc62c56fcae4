package game

// RoundState tracks the betting-round state machine
type RoundState int

const (
	WaitingForActor RoundState = iota
	ActorActed
	RoundComplete
)

// BettingRound drives turn order through one betting round. It mutates
// seat stacks and contributions as actions are applied; the pot itself
// is owned by the hand, which accumulates the deltas Apply returns.
type BettingRound struct {
	round      Round
	seats      []*Seat
	bigBlind   int
	currentBet int
	opener     int
	actor      int
	state      RoundState
	acted      map[int]bool
	raised     bool
}

// NewBettingRound creates a betting round opening at the given seat.
// currentBet carries the big blind pre-flop and zero after.
func NewBettingRound(round Round, seats []*Seat, opener, currentBet, bigBlind int) *BettingRound {
	return &BettingRound{
		round:      round,
		seats:      seats,
		bigBlind:   bigBlind,
		currentBet: currentBet,
		opener:     opener,
		actor:      opener,
		acted:      make(map[int]bool),
	}
}

// Actor returns the index of the seat due to act, skipping folded and
// all-in seats without consuming a turn. Returns -1 when no seat can
// act, which completes the round.
func (br *BettingRound) Actor() int {
	if br.state == RoundComplete {
		return -1
	}
	n := len(br.seats)
	for i := 0; i < n; i++ {
		idx := (br.actor + i) % n
		if br.seats[idx].CanAct() {
			br.actor = idx
			return idx
		}
	}
	br.state = RoundComplete
	return -1
}

// View returns the snapshot the validator consults
func (br *BettingRound) View() RoundView {
	return RoundView{Round: br.round, CurrentBet: br.currentBet, BigBlind: br.bigBlind}
}

// CurrentBet returns the highest total round contribution so far
func (br *BettingRound) CurrentBet() int {
	return br.currentBet
}

// State returns the state machine position
func (br *BettingRound) State() RoundState {
	return br.state
}

// Complete returns true once the round has terminated
func (br *BettingRound) Complete() bool {
	return br.state == RoundComplete
}

// Apply applies a validated action for the current actor and returns
// the chips it moved into the pot. A bet or raise (including an all-in
// that raises the current bet) resets the acted-since-last-raise set
// to just that seat; everything else adds the seat to it.
func (br *BettingRound) Apply(a Action) int {
	seat := br.seats[a.Seat]
	delta := 0

	switch a.Type {
	case Fold:
		seat.Folded = true
		br.acted[a.Seat] = true

	case Check:
		br.acted[a.Seat] = true

	case Call:
		seat.Chips -= a.Amount
		seat.Bet += a.Amount
		seat.TotalBet += a.Amount
		delta = a.Amount
		br.acted[a.Seat] = true

	case Bet, Raise:
		add := a.Amount - seat.Bet
		seat.Chips -= add
		seat.Bet = a.Amount
		seat.TotalBet += add
		delta = add
		br.currentBet = a.Amount
		br.raised = true
		br.acted = map[int]bool{a.Seat: true}

	case AllIn:
		add := seat.Chips
		seat.Chips = 0
		seat.Bet += add
		seat.TotalBet += add
		delta = add
		if seat.Bet > br.currentBet {
			br.currentBet = seat.Bet
			br.raised = true
			br.acted = map[int]bool{a.Seat: true}
		} else {
			br.acted[a.Seat] = true
		}
	}

	br.state = ActorActed
	br.advance(a.Seat)
	return delta
}

// advance moves the turn to the next raw seat index and checks the
// three termination conditions. The full-circle check deliberately
// compares the raw index, matching turn order rather than eligibility.
func (br *BettingRound) advance(from int) {
	br.actor = (from + 1) % len(br.seats)

	switch {
	case br.allActed():
		br.state = RoundComplete
	case !br.raised && br.actor == br.opener:
		br.state = RoundComplete
	case br.contenders() <= 1:
		br.state = RoundComplete
	default:
		br.state = WaitingForActor
	}
}

// allActed reports whether every seat still able to act has acted
// since the last raise.
func (br *BettingRound) allActed() bool {
	for i, s := range br.seats {
		if s.CanAct() && !br.acted[i] {
			return false
		}
	}
	return true
}

func (br *BettingRound) contenders() int {
	n := 0
	for _, s := range br.seats {
		if s.InHand() {
			n++
		}
	}
	return n
}
