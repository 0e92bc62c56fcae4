// Package statistics aggregates results across hands and games. The
// Tracker doubles as an event sink so it can be attached to any table,
// including many tables at once from simulator workers.
package statistics

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"holdem/internal/game"
)

// Tracker accumulates counts from engine events and table outcomes.
// Safe for concurrent use.
type Tracker struct {
	mu         sync.Mutex
	games      int
	hands      int
	showdowns  int
	maxPot     int
	potSum     int
	violations int
	actions    map[game.ActionType]int
	handWins   map[string]int
	gameWins   map[string]int
	finalChips map[string]int
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{
		actions:    make(map[game.ActionType]int),
		handWins:   make(map[string]int),
		gameWins:   make(map[string]int),
		finalChips: make(map[string]int),
	}
}

// OnEvent implements game.Sink
func (t *Tracker) OnEvent(ev game.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch e := ev.(type) {
	case game.HandStartEvent:
		t.hands++
	case game.ActionEvent:
		t.actions[e.Action.Type]++
	case game.ChipConservationEvent:
		t.violations++
	case game.ShowdownEvent:
		t.showdowns++
	case game.PotAwardEvent:
		t.potSum += e.Pot
		if e.Pot > t.maxPot {
			t.maxPot = e.Pot
		}
		for _, w := range e.Winners {
			t.handWins[w.Name]++
		}
	}
}

// RecordOutcome folds a finished table session into the totals
func (t *Tracker) RecordOutcome(out game.Outcome) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.games++
	if out.Winner != "" {
		t.gameWins[out.Winner]++
	}
	for name, chips := range out.FinalChips {
		t.finalChips[name] += chips
	}
}

// Summary is a point-in-time snapshot of the tracker
type Summary struct {
	Games      int
	Hands      int
	Showdowns  int
	MaxPot     int
	MeanPot    float64
	Violations int
	Actions    map[game.ActionType]int
	HandWins   map[string]int
	GameWins   map[string]int
	FinalChips map[string]int

	// GameWins re-keyed by strategy, filled in by the simulator which
	// knows the seat-to-strategy mapping.
	StrategyWins map[string]int
}

// Summary snapshots the current totals
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Summary{
		Games:      t.games,
		Hands:      t.hands,
		Showdowns:  t.showdowns,
		MaxPot:     t.maxPot,
		Violations: t.violations,
		Actions:    make(map[game.ActionType]int, len(t.actions)),
		HandWins:   make(map[string]int, len(t.handWins)),
		GameWins:   make(map[string]int, len(t.gameWins)),
		FinalChips: make(map[string]int, len(t.finalChips)),
	}
	if t.hands > 0 {
		s.MeanPot = float64(t.potSum) / float64(t.hands)
	}
	for k, v := range t.actions {
		s.Actions[k] = v
	}
	for k, v := range t.handWins {
		s.HandWins[k] = v
	}
	for k, v := range t.gameWins {
		s.GameWins[k] = v
	}
	for k, v := range t.finalChips {
		s.FinalChips[k] = v
	}
	return s
}

// Write renders the summary as a report
func (s Summary) Write(w io.Writer) {
	line := func(format string, args ...any) {
		fmt.Fprintf(w, format+"\n", args...)
	}

	line("================================================================================")
	line("SIMULATION STATISTICS")
	line("================================================================================")
	line("Games played: %d", s.Games)
	line("Hands played: %d", s.Hands)
	line("Showdowns: %d", s.Showdowns)
	line("Largest pot: $%d", s.MaxPot)
	line("Average pot: $%.1f", s.MeanPot)
	line("")
	line("Player Actions:")
	line("  Folds:   %d", s.Actions[game.Fold])
	line("  Checks:  %d", s.Actions[game.Check])
	line("  Calls:   %d", s.Actions[game.Call])
	line("  Bets:    %d", s.Actions[game.Bet])
	line("  Raises:  %d", s.Actions[game.Raise])
	line("  All-ins: %d", s.Actions[game.AllIn])
	line("")
	line("Results by player:")
	for _, name := range sortedKeys(s.HandWins, s.GameWins) {
		line("  %s:", name)
		if s.Hands > 0 {
			pct := float64(s.HandWins[name]) / float64(s.Hands) * 100
			line("    Hands won: %d (%.1f%%)", s.HandWins[name], pct)
		}
		line("    Games won: %d", s.GameWins[name])
	}
	if len(s.StrategyWins) > 0 {
		line("")
		line("Games won by strategy:")
		for _, strategy := range sortedKeys(s.StrategyWins) {
			line("  %s: %d", strategy, s.StrategyWins[strategy])
		}
	}
	if s.Violations > 0 {
		line("")
		line("Chip conservation violations: %d", s.Violations)
	}
}

func sortedKeys(maps ...map[string]int) []string {
	set := make(map[string]bool)
	for _, m := range maps {
		for k := range m {
			set[k] = true
		}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
