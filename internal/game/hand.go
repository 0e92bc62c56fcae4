package game

import (
	"fmt"
	"io"
	"math/rand/v2"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"holdem/internal/deck"
	"holdem/internal/evaluator"
)

// Hand runs a single hand of Texas Hold'em from blinds through pot
// award. All betting flows into one merged pot; a short all-in caps
// nothing and its winner takes the whole pot.
type Hand struct {
	seats      []*Seat
	deciders   []Decider
	dealer     int
	smallBlind int
	bigBlind   int

	deck      *deck.Deck
	community []deck.Card
	pot       int
	history   []Action
	round     Round

	logger     *log.Logger
	sink       Sink
	clock      quartz.Clock
	violations int
	startTotal int
}

// Decider chooses an action from an information set. Implementations
// may return any action; the validator rewrites illegal proposals
// rather than rejecting them.
type Decider interface {
	Decide(InformationSet) Action
}

// Result summarizes a completed hand
type Result struct {
	Winners    []int
	Shares     map[int]int
	Pot        int
	ByFold     bool
	Scores     map[int]evaluator.Score
	Violations int
}

// NewHand prepares a hand for the given seats. Each seat is paired
// with the decider at the same index. The deck is freshly shuffled
// from rng unless WithDeck overrides it.
func NewHand(seats []*Seat, deciders []Decider, dealer, smallBlind, bigBlind int, rng *rand.Rand, opts ...HandOption) (*Hand, error) {
	if len(seats) < 2 {
		return nil, fmt.Errorf("need at least 2 seats, got %d", len(seats))
	}
	if len(seats) != len(deciders) {
		return nil, fmt.Errorf("seat/decider mismatch: %d seats, %d deciders", len(seats), len(deciders))
	}
	if dealer < 0 || dealer >= len(seats) {
		return nil, fmt.Errorf("dealer index %d out of range", dealer)
	}

	h := &Hand{
		seats:      seats,
		deciders:   deciders,
		dealer:     dealer,
		smallBlind: smallBlind,
		bigBlind:   bigBlind,
		logger:     log.New(io.Discard),
		sink:       NopSink{},
		clock:      quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.deck == nil {
		h.deck = deck.New(rng)
	}
	return h, nil
}

// Play runs the hand to completion. Deck exhaustion and empty pot
// distribution are the only fatal errors; chip conservation drift is
// counted and reported through the sink instead.
func (h *Hand) Play() (Result, error) {
	for _, s := range h.seats {
		s.resetForHand()
	}
	h.startTotal = h.totalChips()
	h.round = Blinds

	h.emitHandStart()

	sb, bb := h.blindSeats()
	h.postBlind(sb, SmallBlind, h.smallBlind)
	h.postBlind(bb, BigBlind, h.bigBlind)

	for _, s := range h.seats {
		cards, err := h.deck.Deal(2)
		if err != nil {
			return Result{}, err
		}
		s.HoleCards = cards
	}

	streets := []struct {
		round   Round
		deal    int
		opener  func() int
		openBet int
	}{
		{Preflop, 0, func() int { return (bb + 1) % len(h.seats) }, h.bigBlind},
		{Flop, 3, func() int { return sb }, 0},
		{Turn, 1, func() int { return sb }, 0},
		{River, 1, func() int { return sb }, 0},
	}

	for _, st := range streets {
		if st.deal > 0 {
			cards, err := h.deck.Deal(st.deal)
			if err != nil {
				return Result{}, err
			}
			h.community = append(h.community, cards...)
			for _, s := range h.seats {
				s.Bet = 0
			}
		}
		if err := h.runBettingRound(st.round, st.opener(), st.openBet); err != nil {
			return Result{}, err
		}
		if h.contenders() <= 1 {
			return h.awardByFold()
		}
	}

	return h.showdown()
}

// Pot returns the chips currently in the pot
func (h *Hand) Pot() int {
	return h.pot
}

// History returns all applied actions including blind posts
func (h *Hand) History() []Action {
	return h.history
}

// Community returns the dealt board
func (h *Hand) Community() []deck.Card {
	return h.community
}

func (h *Hand) blindSeats() (sb, bb int) {
	n := len(h.seats)
	if n == 2 {
		// Heads-up the dealer posts the small blind
		return h.dealer, (h.dealer + 1) % n
	}
	return (h.dealer + 1) % n, (h.dealer + 2) % n
}

// postBlind moves chips for a blind, short stacks post what they have
func (h *Hand) postBlind(seatIdx int, kind ActionType, blind int) {
	seat := h.seats[seatIdx]
	amt := min(blind, seat.Chips)
	seat.Chips -= amt
	seat.Bet += amt
	seat.TotalBet += amt
	h.pot += amt

	a := Action{Type: kind, Seat: seatIdx, Amount: amt, Round: Blinds}
	h.history = append(h.history, a)
	h.sink.OnEvent(ActionEvent{
		Action:   a,
		Name:     seat.Name,
		Proposed: kind,
		PotAfter: h.pot,
		at:       h.clock.Now(),
	})
	h.logger.Debug("blind posted", "seat", seat.Name, "type", kind, "amount", amt)
}

func (h *Hand) runBettingRound(round Round, opener, openBet int) error {
	h.round = round
	h.sink.OnEvent(RoundStartEvent{
		Round:          round,
		CommunityCards: append([]deck.Card(nil), h.community...),
		Pot:            h.pot,
		CurrentBet:     openBet,
		at:             h.clock.Now(),
	})

	if h.eligible() > 1 {
		br := NewBettingRound(round, h.seats, opener, openBet, h.bigBlind)
		for !br.Complete() {
			actor := br.Actor()
			if actor < 0 {
				break
			}
			seat := h.seats[actor]
			is := h.buildInformationSet(actor, br.CurrentBet())
			proposed := h.deciders[actor].Decide(is)
			validated, corrected := ValidateAction(proposed, seat, br.View())
			if corrected {
				h.logger.Warn("corrected action",
					"seat", seat.Name,
					"proposed", proposed.Type,
					"applied", validated.Type,
					"amount", validated.Amount)
			}

			h.pot += br.Apply(validated)
			h.history = append(h.history, validated)
			h.sink.OnEvent(ActionEvent{
				Action:    validated,
				Name:      seat.Name,
				Corrected: corrected,
				Proposed:  proposed.Type,
				PotAfter:  h.pot,
				at:        h.clock.Now(),
			})
		}
	}

	h.sink.OnEvent(RoundEndEvent{Round: round, Pot: h.pot, at: h.clock.Now()})

	if actual := h.totalChips() + h.pot; actual != h.startTotal {
		h.violations++
		h.logger.Error("chip conservation violated",
			"round", round, "expected", h.startTotal, "actual", actual)
		h.sink.OnEvent(ChipConservationEvent{
			Round:    round,
			Expected: h.startTotal,
			Actual:   actual,
			at:       h.clock.Now(),
		})
	}
	return nil
}

// awardByFold gives the whole pot to the last seat standing
func (h *Hand) awardByFold() (Result, error) {
	var winners []int
	for i, s := range h.seats {
		if s.InHand() {
			winners = append(winners, i)
		}
	}
	return h.awardPot(winners, true, nil)
}

func (h *Hand) showdown() (Result, error) {
	h.round = Showdown

	scores := make(map[int]evaluator.Score)
	var results []ShowdownResult
	for i, s := range h.seats {
		if !s.InHand() {
			continue
		}
		score := evaluator.Evaluate(s.HoleCards, h.community)
		scores[i] = score
		results = append(results, ShowdownResult{
			Seat:      i,
			Name:      s.Name,
			HoleCards: append([]deck.Card(nil), s.HoleCards...),
			Score:     score,
		})
	}
	h.sink.OnEvent(ShowdownEvent{
		CommunityCards: append([]deck.Card(nil), h.community...),
		Results:        results,
		at:             h.clock.Now(),
	})

	var winners []int
	for i, score := range scores {
		switch {
		case len(winners) == 0 || score.Compare(scores[winners[0]]) > 0:
			winners = []int{i}
		case score.Compare(scores[winners[0]]) == 0:
			winners = append(winners, i)
		}
	}
	sort.Ints(winners)

	return h.awardPot(winners, false, scores)
}

// awardPot splits the pot evenly among winners in seat order, handing
// odd chips one at a time starting from the lowest-indexed winner.
func (h *Hand) awardPot(winners []int, byFold bool, scores map[int]evaluator.Score) (Result, error) {
	if len(winners) == 0 && h.pot > 0 {
		return Result{}, fmt.Errorf("%w: pot=%d", ErrEmptyPotDistribution, h.pot)
	}

	pot := h.pot
	shares := splitPot(pot, len(winners))
	res := Result{
		Winners: winners,
		Shares:  make(map[int]int, len(winners)),
		Pot:     pot,
		ByFold:  byFold,
		Scores:  scores,
	}

	var awarded []PotShare
	for i, w := range winners {
		h.seats[w].Chips += shares[i]
		res.Shares[w] = shares[i]
		awarded = append(awarded, PotShare{Seat: w, Name: h.seats[w].Name, Amount: shares[i]})
	}
	h.pot = 0

	h.sink.OnEvent(PotAwardEvent{Winners: awarded, Pot: pot, ByFold: byFold, at: h.clock.Now()})
	h.logger.Info("pot awarded", "pot", pot, "winners", len(winners), "by_fold", byFold)

	// Hand-end checkpoint: after distribution the stacks alone must
	// carry the full starting total.
	if actual := h.totalChips(); actual != h.startTotal {
		h.violations++
		h.logger.Error("chip conservation violated at hand end",
			"expected", h.startTotal, "actual", actual)
		h.sink.OnEvent(ChipConservationEvent{
			Round:    h.round,
			Expected: h.startTotal,
			Actual:   actual,
			at:       h.clock.Now(),
		})
	}
	res.Violations = h.violations
	return res, nil
}

func (h *Hand) emitHandStart() {
	var states []SeatState
	for i, s := range h.seats {
		states = append(states, SeatState{
			Index:  s.Index,
			Name:   s.Name,
			Chips:  s.Chips,
			Dealer: i == h.dealer,
		})
	}
	h.sink.OnEvent(HandStartEvent{
		Dealer:     h.dealer,
		SmallBlind: h.smallBlind,
		BigBlind:   h.bigBlind,
		Seats:      states,
		at:         h.clock.Now(),
	})
}

func (h *Hand) totalChips() int {
	total := 0
	for _, s := range h.seats {
		total += s.Chips
	}
	return total
}

func (h *Hand) contenders() int {
	n := 0
	for _, s := range h.seats {
		if s.InHand() {
			n++
		}
	}
	return n
}

func (h *Hand) eligible() int {
	n := 0
	for _, s := range h.seats {
		if s.CanAct() {
			n++
		}
	}
	return n
}

// splitPot divides pot into n near-equal shares, remainder first
func splitPot(pot, n int) []int {
	if n == 0 {
		return nil
	}
	shares := make([]int, n)
	base, rem := pot/n, pot%n
	for i := range shares {
		shares[i] = base
		if i < rem {
			shares[i]++
		}
	}
	return shares
}
