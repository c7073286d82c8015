// Package config loads the settings of the play and bench programs from
// command line flags and TICTACTOE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

const EnvPrefix = "TICTACTOE"

const (
	KeyDebug       = "debug"
	KeyPruning     = "pruning"
	KeyHumanFirst  = "human-first"
	KeyHumanMark   = "human-mark"
	KeyHistoryFile = "history-file"
	KeyRepeat      = "repeat"
	KeyFormat      = "format"
	KeyHistogram   = "histogram"
	KeyArena       = "arena"
	KeyGames       = "games"
	KeyWorkers     = "workers"
	KeyOpponent    = "opponent"
	KeyCPUProfile  = "cpuprofile"
	KeyParallel    = "parallel"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"

	OpponentEngine   = "engine"
	OpponentUnpruned = "unpruned"
	OpponentRandom   = "random"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	*viper.Viper
	flags *pflag.FlagSet
}

// Parse the arguments (without the program name), flags override the environment
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	fs := pflag.NewFlagSet("tictactoe", pflag.ContinueOnError)

	fs.Bool(KeyDebug, false, "enable debug logging")
	fs.Bool(KeyPruning, true, "use alpha-beta pruning in the search")
	fs.Bool(KeyHumanFirst, false, "let the human make the first move")
	fs.String(KeyHumanMark, "o", "mark of the human player, x or o")
	fs.String(KeyHistoryFile, "/tmp/tictactoe_history.tmp", "readline history file")
	fs.Int(KeyRepeat, 5, "timing repetitions of every benchmark scenario")
	fs.String(KeyFormat, FormatText, "benchmark report format: text, json or yaml")
	fs.Bool(KeyHistogram, false, "print a histogram of the search timings")
	fs.Bool(KeyArena, false, "play self-play games after the scenarios")
	fs.Int(KeyGames, 100, "number of arena games")
	fs.Int(KeyWorkers, 4, "number of arena workers")
	fs.String(KeyOpponent, OpponentRandom, "arena opponent of the engine: engine, unpruned or random")
	fs.String(KeyCPUProfile, "", "directory to write a cpu profile to")
	fs.Bool(KeyParallel, false, "run the benchmark scenarios concurrently")

	c.flags = fs
	if err := fs.Parse(args); err != nil {
		return err
	}

	c.SetEnvPrefix(EnvPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	return c.validate()
}

func (c *Config) validate() error {
	if _, err := c.HumanMark(); err != nil {
		return err
	}

	switch f := c.GetString(KeyFormat); f {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, f)
	}

	switch o := c.GetString(KeyOpponent); o {
	case OpponentEngine, OpponentUnpruned, OpponentRandom:
	default:
		return fmt.Errorf("%w: unknown opponent %q", ErrInvalidConfig, o)
	}

	for _, key := range []string{KeyRepeat, KeyGames, KeyWorkers} {
		if c.GetInt(key) < 1 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, key, c.GetInt(key))
		}
	}
	return nil
}

// Mark the human plays with
func (c *Config) HumanMark() (ttt.Mark, error) {
	switch m := strings.ToLower(c.GetString(KeyHumanMark)); m {
	case "x":
		return ttt.Cross, nil
	case "o":
		return ttt.Circle, nil
	default:
		return ttt.None, fmt.Errorf("%w: human mark must be x or o, got %q", ErrInvalidConfig, m)
	}
}

// Flag usage text
func (c *Config) Usage() string {
	if c.flags == nil {
		return ""
	}
	return c.flags.FlagUsages()
}

// Settings as a map, for logging
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
