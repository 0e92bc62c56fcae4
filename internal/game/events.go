package game

import (
	"time"

	"holdem/internal/deck"
	"holdem/internal/evaluator"
)

// EventKind identifies a game event type
type EventKind string

const (
	EventHandStart        EventKind = "hand_start"
	EventRoundStart       EventKind = "round_start"
	EventRoundEnd         EventKind = "round_end"
	EventAction           EventKind = "action"
	EventChipConservation EventKind = "chip_conservation"
	EventShowdown         EventKind = "showdown"
	EventPotAward         EventKind = "pot_award"
)

// Event is a structured observation emitted by the engine
type Event interface {
	Kind() EventKind
	At() time.Time
}

// Sink receives engine events. Formatting and storage are the sink's
// concern; the engine only reports what happened.
type Sink interface {
	OnEvent(Event)
}

// NopSink discards all events
type NopSink struct{}

func (NopSink) OnEvent(Event) {}

// HandStartEvent is emitted when a new hand begins
type HandStartEvent struct {
	Dealer     int
	SmallBlind int
	BigBlind   int
	Seats      []SeatState
	at         time.Time
}

func (e HandStartEvent) Kind() EventKind { return EventHandStart }
func (e HandStartEvent) At() time.Time   { return e.at }

// RoundStartEvent is emitted entering a betting round, after any
// community cards for that round are dealt.
type RoundStartEvent struct {
	Round          Round
	CommunityCards []deck.Card
	Pot            int
	CurrentBet     int
	at             time.Time
}

func (e RoundStartEvent) Kind() EventKind { return EventRoundStart }
func (e RoundStartEvent) At() time.Time   { return e.at }

// RoundEndEvent is emitted when a betting round terminates
type RoundEndEvent struct {
	Round Round
	Pot   int
	at    time.Time
}

func (e RoundEndEvent) Kind() EventKind { return EventRoundEnd }
func (e RoundEndEvent) At() time.Time   { return e.at }

// ActionEvent is emitted for every applied action, including blind
// posts. Corrected marks actions the validator had to rewrite; the
// original proposal's type is kept for inspection.
type ActionEvent struct {
	Action    Action
	Name      string
	Corrected bool
	Proposed  ActionType
	PotAfter  int
	at        time.Time
}

func (e ActionEvent) Kind() EventKind { return EventAction }
func (e ActionEvent) At() time.Time   { return e.at }

// ChipConservationEvent signals that stacks plus pot drifted from the
// hand's starting total. It is counted, never fatal.
type ChipConservationEvent struct {
	Round    Round
	Expected int
	Actual   int
	at       time.Time
}

func (e ChipConservationEvent) Kind() EventKind { return EventChipConservation }
func (e ChipConservationEvent) At() time.Time   { return e.at }

// ShowdownResult is one seat's revealed hand at showdown
type ShowdownResult struct {
	Seat      int
	Name      string
	HoleCards []deck.Card
	Score     evaluator.Score
}

// ShowdownEvent is emitted with every non-folded seat's evaluation
type ShowdownEvent struct {
	CommunityCards []deck.Card
	Results        []ShowdownResult
	at             time.Time
}

func (e ShowdownEvent) Kind() EventKind { return EventShowdown }
func (e ShowdownEvent) At() time.Time   { return e.at }

// PotShare is one winner's cut of the pot
type PotShare struct {
	Seat   int
	Name   string
	Amount int
}

// PotAwardEvent is emitted when the pot is distributed
type PotAwardEvent struct {
	Winners []PotShare
	Pot     int
	ByFold  bool
	at      time.Time
}

func (e PotAwardEvent) Kind() EventKind { return EventPotAward }
func (e PotAwardEvent) At() time.Time   { return e.at }
