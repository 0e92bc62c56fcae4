// Package display renders engine events to a terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"holdem/internal/deck"
	"holdem/internal/game"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	redCard     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	blackCard   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	chipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	winStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// Console writes a running hand commentary to w. It implements
// game.Sink.
type Console struct {
	w io.Writer
}

// NewConsole creates a console sink writing to w
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) OnEvent(ev game.Event) {
	switch e := ev.(type) {
	case game.HandStartEvent:
		c.handStart(e)
	case game.RoundStartEvent:
		c.roundStart(e)
	case game.ActionEvent:
		c.action(e)
	case game.ChipConservationEvent:
		fmt.Fprintln(c.w, warnStyle.Render(
			fmt.Sprintf("chip count drifted on the %s: expected %d, have %d", e.Round, e.Expected, e.Actual)))
	case game.ShowdownEvent:
		c.showdown(e)
	case game.PotAwardEvent:
		c.potAward(e)
	}
}

func (c *Console) handStart(e game.HandStartEvent) {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, headerStyle.Render(strings.Repeat("=", 60)))
	fmt.Fprintln(c.w, headerStyle.Render(fmt.Sprintf("NEW HAND (blinds $%d/$%d)", e.SmallBlind, e.BigBlind)))
	for _, s := range e.Seats {
		marker := " "
		if s.Dealer {
			marker = "D"
		}
		fmt.Fprintf(c.w, " %s %s: %s\n", marker, s.Name, chips(s.Chips))
	}
}

func (c *Console) roundStart(e game.RoundStartEvent) {
	if e.Round == game.Preflop {
		fmt.Fprintln(c.w, headerStyle.Render("*** HOLE CARDS ***"))
		return
	}
	fmt.Fprintln(c.w, headerStyle.Render(fmt.Sprintf("*** %s ***", strings.ToUpper(e.Round.String()))))
	fmt.Fprintf(c.w, "Board: %s\n", cards(e.CommunityCards))
	fmt.Fprintf(c.w, "Pot: %s\n", chips(e.Pot))
}

func (c *Console) action(e game.ActionEvent) {
	var text string
	switch e.Action.Type {
	case game.SmallBlind:
		text = fmt.Sprintf("posts small blind %s", chips(e.Action.Amount))
	case game.BigBlind:
		text = fmt.Sprintf("posts big blind %s", chips(e.Action.Amount))
	case game.Fold:
		text = "folds"
	case game.Check:
		text = "checks"
	case game.Call:
		text = fmt.Sprintf("calls %s", chips(e.Action.Amount))
	case game.Bet:
		text = fmt.Sprintf("bets %s", chips(e.Action.Amount))
	case game.Raise:
		text = fmt.Sprintf("raises to %s", chips(e.Action.Amount))
	case game.AllIn:
		text = fmt.Sprintf("goes all-in for %s", chips(e.Action.Amount))
	}
	fmt.Fprintf(c.w, "%s: %s (pot now: %s)\n", e.Name, text, chips(e.PotAfter))
	if e.Corrected {
		fmt.Fprintln(c.w, warnStyle.Render(
			fmt.Sprintf("  (proposed %s was adjusted)", e.Proposed)))
	}
}

func (c *Console) showdown(e game.ShowdownEvent) {
	fmt.Fprintln(c.w, headerStyle.Render("*** SHOWDOWN ***"))
	fmt.Fprintf(c.w, "Board: %s\n", cards(e.CommunityCards))
	for _, r := range e.Results {
		fmt.Fprintf(c.w, "%s shows %s: %s\n", r.Name, cards(r.HoleCards), r.Score.Category)
	}
}

func (c *Console) potAward(e game.PotAwardEvent) {
	for _, w := range e.Winners {
		how := ""
		if e.ByFold {
			how = " (all others folded)"
		}
		fmt.Fprintln(c.w, winStyle.Render(fmt.Sprintf("%s wins %s%s", w.Name, dollars(w.Amount), how)))
	}
}

func chips(n int) string {
	return chipStyle.Render(dollars(n))
}

func dollars(n int) string {
	return fmt.Sprintf("$%d", n)
}

// cards renders a card list with red suits in red
func cards(cs []deck.Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		if c.Suit.IsRed() {
			parts[i] = redCard.Render(c.String())
		} else {
			parts[i] = blackCard.Render(c.String())
		}
	}
	return strings.Join(parts, " ")
}
