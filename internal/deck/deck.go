package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrExhausted is returned when a deal asks for more cards than remain.
var ErrExhausted = errors.New("deck exhausted")

// Deck is a shuffled, depleting card source. It is created fresh for
// every hand and shuffled exactly once, at construction.
type Deck struct {
	cards []Card
}

// New creates a standard 52-card deck shuffled with the provided RNG.
func New(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, 0, 52)}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return d
}

// NewStacked creates a deck that deals the given cards in order.
// Used for deterministic tests.
func NewStacked(cards ...Card) *Deck {
	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked}
}

// Deal removes and returns the first n cards of the remaining sequence.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("deal %d with %d remaining: %w", n, len(d.cards), ErrExhausted)
	}
	dealt := d.cards[:n]
	d.cards = d.cards[n:]
	return dealt, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}
