package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdem/internal/deck"
	"holdem/internal/evaluator"
	"holdem/internal/game"
)

func TestConsoleNarratesAHand(t *testing.T) {
	var buf strings.Builder
	c := NewConsole(&buf)

	c.OnEvent(game.HandStartEvent{
		SmallBlind: 5, BigBlind: 10,
		Seats: []game.SeatState{
			{Name: "a", Chips: 100, Dealer: true},
			{Name: "b", Chips: 100},
		},
	})
	c.OnEvent(game.ActionEvent{
		Action:   game.Action{Type: game.SmallBlind, Amount: 5},
		Name:     "a",
		PotAfter: 5,
	})
	c.OnEvent(game.RoundStartEvent{Round: game.Preflop})
	c.OnEvent(game.ActionEvent{
		Action:   game.Action{Type: game.Raise, Amount: 30},
		Name:     "b",
		PotAfter: 45,
	})
	c.OnEvent(game.RoundStartEvent{
		Round:          game.Flop,
		CommunityCards: deck.MustParseCards("Ah 7d 2c"),
		Pot:            60,
	})
	c.OnEvent(game.ShowdownEvent{
		CommunityCards: deck.MustParseCards("Ah 7d 2c 9s 4h"),
		Results: []game.ShowdownResult{
			{Name: "a", HoleCards: deck.MustParseCards("As Ad"), Score: evaluator.Score{Category: evaluator.ThreeOfAKind}},
		},
	})
	c.OnEvent(game.PotAwardEvent{
		Winners: []game.PotShare{{Name: "a", Amount: 60}},
		Pot:     60,
	})

	out := buf.String()
	require.Contains(t, out, "NEW HAND (blinds $5/$10)")
	assert.Contains(t, out, "a: posts small blind")
	assert.Contains(t, out, "*** HOLE CARDS ***")
	assert.Contains(t, out, "b: raises to")
	assert.Contains(t, out, "*** FLOP ***")
	assert.Contains(t, out, "*** SHOWDOWN ***")
	assert.Contains(t, out, "Three of a Kind")
	assert.Contains(t, out, "a wins")
}

func TestConsoleMarksCorrectedActions(t *testing.T) {
	var buf strings.Builder
	c := NewConsole(&buf)

	c.OnEvent(game.ActionEvent{
		Action:    game.Action{Type: game.Call, Amount: 10},
		Name:      "b",
		Corrected: true,
		Proposed:  game.Check,
		PotAfter:  20,
	})

	assert.Contains(t, buf.String(), "adjusted")
}
