package game

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"holdem/internal/deck"
)

// HandOption configures a Hand
type HandOption func(*Hand)

// WithSink routes engine events to the given sink
func WithSink(s Sink) HandOption {
	return func(h *Hand) {
		h.sink = s
	}
}

// WithClock injects a clock for event timestamps, used by tests
func WithClock(c quartz.Clock) HandOption {
	return func(h *Hand) {
		h.clock = c
	}
}

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l *log.Logger) HandOption {
	return func(h *Hand) {
		h.logger = l
	}
}

// WithDeck replaces the shuffled deck, letting tests stack known cards
func WithDeck(d *deck.Deck) HandOption {
	return func(h *Hand) {
		h.deck = d
	}
}
