package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"holdem/internal/config"
	"holdem/internal/simulator"
)

type CLI struct {
	Config   string `short:"c" help:"Path to HCL config file" default:"holdem.hcl"`
	Games    int    `short:"g" help:"Number of games to simulate" default:"100"`
	Hands    int    `short:"n" help:"Max hands per game, 0 plays until one stack remains" default:"500"`
	Seed     int64  `help:"Base seed, 0 uses the clock" default:"0"`
	Workers  int    `short:"w" help:"Concurrent games, 0 uses all CPUs" default:"0"`
	LogLevel string `help:"Log level" default:"warn"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("simulate"),
		kong.Description("Simulate many Hold'em games between computer strategies."))

	if err := run(cli); err != nil {
		log.Fatal("Simulation failed", "error", err)
	}
	kctx.Exit(0)
}

func run(cli CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if lvl, err := log.ParseLevel(cli.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	var seats []simulator.SeatSpec
	for _, s := range cfg.Seats {
		strategy := s.Strategy
		if strategy == "human" {
			// A human cannot sit in thousands of games; substitute the
			// calling station so one config file serves both commands.
			strategy = "calling-station"
			logger.Warn("human seat replaced for simulation", "name", s.Name)
		}
		seats = append(seats, simulator.SeatSpec{Name: s.Name, Strategy: strategy, Chips: s.Chips})
	}

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	summary, err := simulator.Run(ctx, simulator.Config{
		Games:      cli.Games,
		Seats:      seats,
		SmallBlind: cfg.Game.SmallBlind,
		BigBlind:   cfg.Game.BigBlind,
		MaxHands:   cli.Hands,
		Seed:       seed,
		Workers:    cli.Workers,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	summary.Write(os.Stdout)
	fmt.Printf("Completed %d games in %s (seed %d)\n", summary.Games, time.Since(start).Round(time.Millisecond), seed)
	return nil
}
