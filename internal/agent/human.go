package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"holdem/internal/game"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Human reads actions from a terminal. Single-letter commands: f to
// fold, c to check or call, b to bet, r to raise. Bet and raise prompt
// for an amount and re-ask until it fits the stack and minimum sizing.
type Human struct {
	in  *bufio.Reader
	out io.Writer
}

// NewHuman creates a Human reading commands from r and prompting on w
func NewHuman(r io.Reader, w io.Writer) *Human {
	return &Human{in: bufio.NewReader(r), out: w}
}

func (h *Human) Decide(is game.InformationSet) game.Action {
	me := is.ActingSeat()

	for {
		fmt.Fprintf(h.out, "\n%s ", promptStyle.Render("Enter your action (f/c/b/r):"))
		line, err := h.in.ReadString('\n')
		if err != nil {
			// Treat EOF as a fold so piped input ends the hand cleanly
			return fold(is)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "f":
			return fold(is)

		case "c":
			if is.MinCall > me.Chips {
				fmt.Fprintln(h.out, warnStyle.Render("Not enough chips to call. Going all-in instead."))
				return allIn(is)
			}
			return checkOrCall(is)

		case "b":
			if is.CurrentBet != 0 {
				fmt.Fprintln(h.out, errStyle.Render("There is already a bet. Use r to raise."))
				continue
			}
			amount, ok := h.readAmount("bet", is.BigBlind, me.Chips)
			if !ok {
				continue
			}
			return game.Action{Type: game.Bet, Amount: amount, Round: is.Round}

		case "r":
			if is.CurrentBet == 0 {
				fmt.Fprintln(h.out, errStyle.Render("Nothing to raise. Use b to bet."))
				continue
			}
			amount, ok := h.readAmount("raise", is.CurrentBet+is.BigBlind, me.Bet+me.Chips)
			if !ok {
				continue
			}
			return game.Action{Type: game.Raise, Amount: amount, Round: is.Round}

		default:
			fmt.Fprintln(h.out, errStyle.Render("Invalid action. Please try again."))
		}
	}
}

// readAmount prompts for a chip amount until it falls inside
// [minAmount, maxAmount]. Returns false if input ends.
func (h *Human) readAmount(verb string, minAmount, maxAmount int) (int, bool) {
	for {
		fmt.Fprintf(h.out, "%s ", promptStyle.Render(
			fmt.Sprintf("How much would you like to %s? Min: $%d | Max: $%d:", verb, minAmount, maxAmount)))
		line, err := h.in.ReadString('\n')
		if err != nil {
			return 0, false
		}

		amount, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(h.out, errStyle.Render("Please enter a valid number."))
			continue
		}
		switch {
		case amount < minAmount:
			fmt.Fprintln(h.out, warnStyle.Render(fmt.Sprintf("Minimum %s is $%d.", verb, minAmount)))
		case amount > maxAmount:
			fmt.Fprintln(h.out, warnStyle.Render(fmt.Sprintf("You can't %s more than $%d.", verb, maxAmount)))
		default:
			return amount, true
		}
	}
}
