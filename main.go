package main

import (
	"connect4/config"
	"connect4/experiments"
	"connect4/searcher"
	"connect4/searcher/agent"
	"connect4/ui"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	mode := flag.String("mode", "tui", "One of tui, console, selfplay or experiment")
	depth := flag.Int("depth", cfg.SearchDepth, "Search depth in plies")
	humanFirst := flag.Bool("human-first", cfg.HumanFirst, "Let the human move first")
	games := flag.Int("games", cfg.ExperimentGames, "Number of games per experiment matchup")
	out := flag.String("out", cfg.ExperimentDir, "Directory for experiment CSV files")
	flag.Parse()

	closeLog := setupLogging(cfg, *mode)
	defer closeLog()

	if *depth < 1 {
		log.Fatal().Msgf("depth must be positive, got %d", *depth)
	}

	ai := agent.NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(*depth), searcher.WithMetrics()))
	setup := experiments.Setup{
		Dir:      *out,
		NumGames: *games,
		MaxDepth: *depth,
		Seed:     cfg.Seed,
	}

	var err error
	switch *mode {
	case "tui":
		err = ui.RunTUI(ai, *humanFirst)
	case "console":
		err = ui.RunConsole(ui.NewConsole(os.Stdin, os.Stdout), ai, *humanFirst)
	case "selfplay":
		err = experiments.RunSelfPlayExperiment(setup)
	case "experiment":
		err = experiments.RunDepthExperiment(setup)
		if err == nil {
			err = experiments.RunThroughputExperiment(setup)
		}
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

// setupLogging writes to stderr, or to the configured log file while the
// terminal UI owns the screen.
func setupLogging(cfg config.Config, mode string) func() {
	zerolog.SetGlobalLevel(cfg.LogLevel)

	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	closeFn := func() {}
	if mode == "tui" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			w = io.Discard
		} else {
			w = zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: time.RFC3339}
			closeFn = func() { f.Close() }
		}
	}
	log.Logger = log.Output(w)
	return closeFn
}
