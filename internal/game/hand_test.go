package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdem/internal/deck"
	"holdem/internal/evaluator"
	"holdem/internal/randutil"
)

type deciderFunc func(InformationSet) Action

func (f deciderFunc) Decide(is InformationSet) Action { return f(is) }

// station checks when free and calls otherwise
var station = deciderFunc(func(is InformationSet) Action {
	if is.MinCall == 0 {
		return Action{Type: Check}
	}
	return Action{Type: Call, Amount: is.MinCall}
})

var alwaysFold = deciderFunc(func(is InformationSet) Action {
	return Action{Type: Fold}
})

// recorder captures every emitted event for inspection
type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(ev Event) { r.events = append(r.events, ev) }

func (r *recorder) kinds() []EventKind {
	out := make([]EventKind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind()
	}
	return out
}

// stackedDeck lays out hole cards per seat followed by the board
func stackedDeck(t *testing.T, holes []string, board string) *deck.Deck {
	t.Helper()
	var cards []deck.Card
	for _, h := range holes {
		cards = append(cards, deck.MustParseCards(h)...)
	}
	cards = append(cards, deck.MustParseCards(board)...)
	return deck.NewStacked(cards...)
}

func TestHeadsUpShowdown(t *testing.T) {
	seats := newSeats(100, 100)
	rec := &recorder{}
	d := stackedDeck(t, []string{"As Ah", "Kd Kc"}, "2h 7d 9s 3c 4d")

	h, err := NewHand(seats, []Decider{station, station}, 0, 5, 10, nil,
		WithDeck(d), WithSink(rec))
	require.NoError(t, err)

	res, err := h.Play()
	require.NoError(t, err)

	assert.Equal(t, []int{0}, res.Winners)
	assert.Equal(t, 20, res.Pot)
	assert.False(t, res.ByFold)
	assert.Equal(t, 0, res.Violations)
	assert.Equal(t, evaluator.Pair, res.Scores[0].Category)

	assert.Equal(t, 110, seats[0].Chips)
	assert.Equal(t, 90, seats[1].Chips)
}

func TestHeadsUpBlindPositions(t *testing.T) {
	// Heads-up the dealer posts the small blind and acts first pre-flop
	seats := newSeats(100, 100)
	rec := &recorder{}
	d := stackedDeck(t, []string{"As Ah", "Kd Kc"}, "2h 7d 9s 3c 4d")

	h, err := NewHand(seats, []Decider{station, station}, 0, 5, 10, nil,
		WithDeck(d), WithSink(rec))
	require.NoError(t, err)
	_, err = h.Play()
	require.NoError(t, err)

	var blinds []Action
	var firstVoluntary *Action
	for _, ev := range rec.events {
		ae, ok := ev.(ActionEvent)
		if !ok {
			continue
		}
		switch ae.Action.Type {
		case SmallBlind, BigBlind:
			blinds = append(blinds, ae.Action)
		default:
			if firstVoluntary == nil {
				a := ae.Action
				firstVoluntary = &a
			}
		}
	}

	require.Len(t, blinds, 2)
	assert.Equal(t, SmallBlind, blinds[0].Type)
	assert.Equal(t, 0, blinds[0].Seat)
	assert.Equal(t, 5, blinds[0].Amount)
	assert.Equal(t, BigBlind, blinds[1].Type)
	assert.Equal(t, 1, blinds[1].Seat)
	assert.Equal(t, 10, blinds[1].Amount)

	require.NotNil(t, firstVoluntary)
	assert.Equal(t, 0, firstVoluntary.Seat)
}

func TestThreeHandedBlindPositions(t *testing.T) {
	seats := newSeats(100, 100, 100)
	rec := &recorder{}
	d := stackedDeck(t, []string{"As Ah", "Kd Kc", "Qh Qs"}, "2h 7d 9s 3c 4d")

	h, err := NewHand(seats, []Decider{station, station, station}, 0, 5, 10, nil,
		WithDeck(d), WithSink(rec))
	require.NoError(t, err)
	_, err = h.Play()
	require.NoError(t, err)

	var blinds []Action
	for _, ev := range rec.events {
		if ae, ok := ev.(ActionEvent); ok {
			if ae.Action.Type == SmallBlind || ae.Action.Type == BigBlind {
				blinds = append(blinds, ae.Action)
			}
		}
	}
	require.Len(t, blinds, 2)
	assert.Equal(t, 1, blinds[0].Seat, "small blind left of the dealer")
	assert.Equal(t, 2, blinds[1].Seat, "big blind left of the small blind")
}

func TestFoldOutAwardsPotWithoutShowdown(t *testing.T) {
	seats := newSeats(100, 100)
	rec := &recorder{}
	d := stackedDeck(t, []string{"As Ah", "Kd Kc"}, "2h 7d 9s 3c 4d")

	h, err := NewHand(seats, []Decider{alwaysFold, station}, 0, 5, 10, nil,
		WithDeck(d), WithSink(rec))
	require.NoError(t, err)

	res, err := h.Play()
	require.NoError(t, err)

	assert.Equal(t, []int{1}, res.Winners)
	assert.True(t, res.ByFold)
	assert.Nil(t, res.Scores)
	assert.Equal(t, 15, res.Pot, "small blind forfeited")
	assert.Equal(t, 95, seats[0].Chips)
	assert.Equal(t, 105, seats[1].Chips)

	assert.NotContains(t, rec.kinds(), EventShowdown)
}

func TestBoardTieSplitsPot(t *testing.T) {
	// Both seats play the board straight
	seats := newSeats(100, 100)
	d := stackedDeck(t, []string{"2s 3h", "2d 3c"}, "Ts Jd Qh Kc Ad")

	h, err := NewHand(seats, []Decider{station, station}, 0, 5, 10, nil, WithDeck(d))
	require.NoError(t, err)

	res, err := h.Play()
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, res.Winners)
	assert.Equal(t, 10, res.Shares[0])
	assert.Equal(t, 10, res.Shares[1])
	assert.Equal(t, 100, seats[0].Chips)
	assert.Equal(t, 100, seats[1].Chips)
}

func TestIllegalProposalIsCorrectedAndFlagged(t *testing.T) {
	// Seat 1 tries to check the small blind's completion away pre-flop
	checker := deciderFunc(func(is InformationSet) Action {
		return Action{Type: Check}
	})
	seats := newSeats(100, 100)
	rec := &recorder{}
	d := stackedDeck(t, []string{"As Ah", "Kd Kc"}, "2h 7d 9s 3c 4d")

	h, err := NewHand(seats, []Decider{checker, station}, 0, 5, 10, nil,
		WithDeck(d), WithSink(rec))
	require.NoError(t, err)
	_, err = h.Play()
	require.NoError(t, err)

	var corrected *ActionEvent
	for _, ev := range rec.events {
		if ae, ok := ev.(ActionEvent); ok && ae.Corrected {
			corrected = &ae
			break
		}
	}
	require.NotNil(t, corrected, "the pre-flop check facing the big blind must be corrected")
	assert.Equal(t, Check, corrected.Proposed)
	assert.Equal(t, Call, corrected.Action.Type)
	assert.Equal(t, 5, corrected.Action.Amount)
}

func TestShortDeckIsFatal(t *testing.T) {
	seats := newSeats(100, 100)
	d := deck.NewStacked(deck.MustParseCards("As Ah Kd Kc 2h")...)

	h, err := NewHand(seats, []Decider{station, station}, 0, 5, 10, nil, WithDeck(d))
	require.NoError(t, err)

	_, err = h.Play()
	require.Error(t, err)
	assert.True(t, errors.Is(err, deck.ErrExhausted))
}

func TestChipsConservedAcrossSeededHands(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		seats := newSeats(200, 200, 200)
		h, err := NewHand(seats, []Decider{station, station, station}, 0, 5, 10, randutil.New(seed))
		require.NoError(t, err)

		res, err := h.Play()
		require.NoError(t, err)
		assert.Equal(t, 0, res.Violations, "seed %d", seed)

		total := 0
		for _, s := range seats {
			total += s.Chips
		}
		assert.Equal(t, 600, total, "seed %d", seed)
	}
}

func TestAllInShowdown(t *testing.T) {
	// Short stack shoves pre-flop, big stack calls, no further betting
	shover := deciderFunc(func(is InformationSet) Action {
		me := is.ActingSeat()
		return Action{Type: AllIn, Amount: me.Bet + me.Chips}
	})
	seats := newSeats(40, 200)
	rec := &recorder{}
	d := stackedDeck(t, []string{"As Ah", "Kd Kc"}, "2h 7d 9s 3c 4d")

	h, err := NewHand(seats, []Decider{shover, station}, 0, 5, 10, nil,
		WithDeck(d), WithSink(rec))
	require.NoError(t, err)

	res, err := h.Play()
	require.NoError(t, err)

	assert.Equal(t, []int{0}, res.Winners)
	assert.Equal(t, 80, res.Pot)
	assert.Equal(t, 0, res.Violations)
	assert.Equal(t, 80, seats[0].Chips)
	assert.Equal(t, 160, seats[1].Chips)
}

func TestSplitPotRemainderGoesToFirstSeats(t *testing.T) {
	assert.Equal(t, []int{91, 90}, splitPot(181, 2))
	assert.Equal(t, []int{34, 33, 33}, splitPot(100, 3))
	assert.Equal(t, []int{50, 50}, splitPot(100, 2))
	assert.Nil(t, splitPot(100, 0))
}

func TestNewHandValidation(t *testing.T) {
	_, err := NewHand(newSeats(100), []Decider{station}, 0, 5, 10, randutil.New(1))
	assert.Error(t, err)

	_, err = NewHand(newSeats(100, 100), []Decider{station}, 0, 5, 10, randutil.New(1))
	assert.Error(t, err)

	_, err = NewHand(newSeats(100, 100), []Decider{station, station}, 5, 5, 10, randutil.New(1))
	assert.Error(t, err)
}
