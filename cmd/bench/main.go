package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/pkg/profile"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/IlikeChooros/go-minimax/pkg/bench"
	"github.com/IlikeChooros/go-minimax/pkg/config"
	"github.com/IlikeChooros/go-minimax/pkg/logging"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

const histogramWidth = 40

func opponent(name string) bench.PlayerLike {
	switch name {
	case config.OpponentEngine:
		return bench.NewEnginePlayer(true)
	case config.OpponentUnpruned:
		return bench.NewEnginePlayer(false)
	default:
		return bench.NewRandomPlayer()
	}
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logging.Setup(os.Stderr, cfg.GetBool(config.KeyDebug))
	log.Debug().Interface("config", cfg.SanitizedSettings()).Msg("loaded config")

	if dir := cfg.GetString(config.KeyCPUProfile); dir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.NoShutdownHook).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repeat := cfg.GetInt(config.KeyRepeat)
	runner := bench.NewRunner().
		SetRepeat(repeat).
		SetParallel(cfg.GetBool(config.KeyParallel))

	log.Info().Int("repeat", repeat).Msg("comparing minimax with alpha-beta pruning")
	results, err := runner.Compare(ctx, bench.DefaultScenarios())
	if err != nil {
		log.Error().Err(err).Msg("benchmark failed")
		return
	}

	report := bench.Report{Repeat: repeat, Scenarios: results}
	if cfg.GetBool(config.KeyArena) {
		arena := bench.NewVersusArena(ttt.NewPosition(),
			bench.NewEnginePlayer(cfg.GetBool(config.KeyPruning)),
			opponent(cfg.GetString(config.KeyOpponent)),
		).WithContext(ctx)
		arena.Setup(uint(cfg.GetInt(config.KeyGames)), uint(cfg.GetInt(config.KeyWorkers)))

		summary := arena.Run(bench.NewLogListener())
		report.Arena = &summary
	}

	format := cfg.GetString(config.KeyFormat)
	if err := report.Write(os.Stdout, format, termenv.NewOutput(os.Stdout)); err != nil {
		log.Error().Err(err).Msg("could not write the report")
		return
	}

	// histograms would break the json and yaml documents
	if cfg.GetBool(config.KeyHistogram) && format == config.FormatText {
		if err := bench.WriteHistograms(os.Stdout, results, histogramWidth); err != nil {
			log.Error().Err(err).Msg("could not write the histograms")
		}
	}
}
