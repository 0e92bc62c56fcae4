// Package simulator plays many games concurrently and aggregates the
// results. Each game gets its own seeded generator so a run is
// reproducible for a given seed regardless of worker count.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"holdem/internal/agent"
	"holdem/internal/game"
	"holdem/internal/randutil"
	"holdem/internal/statistics"
)

// SeatSpec describes one simulated seat
type SeatSpec struct {
	Name     string
	Strategy string
	Chips    int
}

// Config drives a simulation run
type Config struct {
	Games      int
	Seats      []SeatSpec
	SmallBlind int
	BigBlind   int
	MaxHands   int // per game, zero plays to a single winner
	Seed       int64
	Workers    int
	Logger     *log.Logger
}

// Run plays cfg.Games games and returns the aggregated statistics.
// Stops early if the context is cancelled or any game fails.
func Run(ctx context.Context, cfg Config) (statistics.Summary, error) {
	if cfg.Games <= 0 {
		return statistics.Summary{}, fmt.Errorf("games must be positive, got %d", cfg.Games)
	}
	if len(cfg.Seats) < 2 {
		return statistics.Summary{}, fmt.Errorf("need at least 2 seats, got %d", len(cfg.Seats))
	}
	for _, s := range cfg.Seats {
		if s.Strategy == "human" {
			return statistics.Summary{}, fmt.Errorf("seat %s: human seats cannot be simulated", s.Name)
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	tracker := statistics.NewTracker()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < cfg.Games; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rng := randutil.New(cfg.Seed + int64(i))
			table := game.NewTable(cfg.SmallBlind, cfg.BigBlind, rng,
				game.WithTableSink(tracker),
				game.WithTableLogger(logger),
				game.WithMaxHands(cfg.MaxHands))

			for _, spec := range cfg.Seats {
				d, err := agent.New(spec.Strategy, rng)
				if err != nil {
					return fmt.Errorf("seat %s: %w", spec.Name, err)
				}
				table.AddPlayer(spec.Name, spec.Chips, spec.Strategy, d)
			}

			out, err := table.Run()
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			tracker.RecordOutcome(out)
			logger.Debug("game finished",
				"game", i, "hands", out.HandsPlayed, "winner", out.Winner)
			return nil
		})
	}

	err := g.Wait()
	summary := tracker.Summary()

	summary.StrategyWins = make(map[string]int)
	for _, spec := range cfg.Seats {
		summary.StrategyWins[spec.Strategy] += summary.GameWins[spec.Name]
	}
	return summary, err
}
