package game

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Player is a persistent table member. Chips carry across hands;
// players at zero chips are removed before the next deal.
type Player struct {
	Name     string
	Chips    int
	Strategy string
	Decider  Decider
}

// Table plays repeated hands with a rotating dealer button until one
// player holds all the chips or the hand limit is reached.
type Table struct {
	players    []*Player
	smallBlind int
	bigBlind   int
	dealer     int
	rng        *rand.Rand

	logger *log.Logger
	sink   Sink
	clock  quartz.Clock

	maxHands int
}

// Outcome summarizes a finished table session
type Outcome struct {
	Winner      string
	HandsPlayed int
	Violations  int
	MaxPot      int
	FinalChips  map[string]int
	Eliminated  []string
}

// TableOption configures a Table
type TableOption func(*Table)

// WithTableSink routes hand events to the given sink
func WithTableSink(s Sink) TableOption {
	return func(t *Table) {
		t.sink = s
	}
}

// WithTableLogger sets the structured logger
func WithTableLogger(l *log.Logger) TableOption {
	return func(t *Table) {
		t.logger = l
	}
}

// WithTableClock injects a clock for event timestamps
func WithTableClock(c quartz.Clock) TableOption {
	return func(t *Table) {
		t.clock = c
	}
}

// WithMaxHands caps the number of hands a session plays. Zero means
// play until a single player remains.
func WithMaxHands(n int) TableOption {
	return func(t *Table) {
		t.maxHands = n
	}
}

// NewTable creates an empty table. Add at least two players before
// calling Run or PlayHand.
func NewTable(smallBlind, bigBlind int, rng *rand.Rand, opts ...TableOption) *Table {
	t := &Table{
		smallBlind: smallBlind,
		bigBlind:   bigBlind,
		rng:        rng,
		logger:     log.New(io.Discard),
		sink:       NopSink{},
		clock:      quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AddPlayer seats a player with a starting stack
func (t *Table) AddPlayer(name string, chips int, strategy string, d Decider) {
	t.players = append(t.players, &Player{
		Name:     name,
		Chips:    chips,
		Strategy: strategy,
		Decider:  d,
	})
}

// Players returns the current roster
func (t *Table) Players() []*Player {
	return t.players
}

// PlayHand deals one hand among the current players and syncs stacks
// back to the roster.
func (t *Table) PlayHand() (Result, error) {
	if len(t.players) < 2 {
		return Result{}, fmt.Errorf("need at least 2 players, have %d", len(t.players))
	}

	seats := make([]*Seat, len(t.players))
	deciders := make([]Decider, len(t.players))
	for i, p := range t.players {
		seats[i] = NewSeat(i, p.Name, p.Chips)
		deciders[i] = p.Decider
	}

	h, err := NewHand(seats, deciders, t.dealer, t.smallBlind, t.bigBlind, t.rng,
		WithSink(t.sink), WithLogger(t.logger), WithClock(t.clock))
	if err != nil {
		return Result{}, err
	}

	res, err := h.Play()
	if err != nil {
		return Result{}, err
	}

	for i, s := range seats {
		t.players[i].Chips = s.Chips
	}
	return res, nil
}

// Run plays hands until one player has all the chips or the hand limit
// is hit, rotating the dealer and dropping busted players in between.
func (t *Table) Run() (Outcome, error) {
	out := Outcome{FinalChips: make(map[string]int)}

	for len(t.players) > 1 {
		if t.maxHands > 0 && out.HandsPlayed >= t.maxHands {
			break
		}

		res, err := t.PlayHand()
		if err != nil {
			return out, err
		}
		out.HandsPlayed++
		out.Violations += res.Violations
		if res.Pot > out.MaxPot {
			out.MaxPot = res.Pot
		}

		out.Eliminated = append(out.Eliminated, t.removeBusted()...)
		t.dealer = (t.dealer + 1) % max(len(t.players), 1)
	}

	for _, p := range t.players {
		out.FinalChips[p.Name] = p.Chips
	}
	if len(t.players) == 1 {
		out.Winner = t.players[0].Name
	}
	return out, nil
}

// removeBusted drops zero-chip players and reports their names. Seat
// indexes compact so the dealer button keeps a valid target.
func (t *Table) removeBusted() []string {
	var busted []string
	kept := t.players[:0]
	for _, p := range t.players {
		if p.Chips > 0 {
			kept = append(kept, p)
		} else {
			busted = append(busted, p.Name)
			t.logger.Info("player eliminated", "name", p.Name)
		}
	}
	t.players = kept
	if len(t.players) > 0 {
		t.dealer %= len(t.players)
	}
	return busted
}
