package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"holdem/internal/agent"
	"holdem/internal/config"
	"holdem/internal/display"
	"holdem/internal/game"
	"holdem/internal/randutil"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Config  string `short:"c" help:"Path to HCL config file" default:"holdem.hcl"`
	Seed    int64  `help:"Deck seed, 0 uses the clock" default:"0"`
	Hands   int    `short:"n" help:"Stop after this many hands, 0 plays until one stack remains" default:"0"`
	LogFile string `help:"Write logs to this file instead of stderr" default:""`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Play Texas Hold'em against computer opponents."))

	fmt.Println(titleStyle.Render(" ♠ ♥ Texas Hold'em ♦ ♣ "))
	fmt.Println()

	if err := run(cli); err != nil {
		log.Fatal("Game failed", "error", err)
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

	logOut := os.Stderr
	if cli.LogFile != "" {
		f, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if lvl, err := log.ParseLevel(cfg.Game.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)

	table := game.NewTable(cfg.Game.SmallBlind, cfg.Game.BigBlind, rng,
		game.WithTableSink(display.NewConsole(os.Stdout)),
		game.WithTableLogger(logger),
		game.WithMaxHands(cli.Hands))

	for _, seat := range cfg.Seats {
		var d game.Decider
		if seat.Strategy == "human" {
			d = agent.NewHuman(os.Stdin, os.Stdout)
		} else {
			d, err = agent.New(seat.Strategy, rng)
			if err != nil {
				return err
			}
		}
		table.AddPlayer(seat.Name, seat.Chips, seat.Strategy, d)
	}

	out, err := table.Run()
	if err != nil {
		return err
	}

	fmt.Println()
	if out.Winner != "" {
		fmt.Printf("%s wins the table after %d hands\n", out.Winner, out.HandsPlayed)
	} else {
		fmt.Printf("Session over after %d hands\n", out.HandsPlayed)
		for name, chips := range out.FinalChips {
			fmt.Printf("  %s: $%d\n", name, chips)
		}
	}
	if out.Violations > 0 {
		fmt.Printf("Chip conservation violations: %d\n", out.Violations)
	}
	return nil
}
