package config

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.NoErr(cfg.Load(nil))

	is.Equal(cfg.GetBool(KeyPruning), true)
	is.Equal(cfg.GetBool(KeyDebug), false)
	is.Equal(cfg.GetBool(KeyParallel), false)
	is.Equal(cfg.GetInt(KeyRepeat), 5)
	is.Equal(cfg.GetString(KeyFormat), FormatText)
	is.Equal(cfg.GetString(KeyOpponent), OpponentRandom)

	mark, err := cfg.HumanMark()
	is.NoErr(err)
	is.Equal(mark, ttt.Circle)
	is.True(cfg.Usage() != "")
}

func TestFlags(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--pruning=false", "--human-mark", "X", "--games", "10", "--format", "yaml"}))

	is.Equal(cfg.GetBool(KeyPruning), false)
	is.Equal(cfg.GetInt(KeyGames), 10)
	is.Equal(cfg.GetString(KeyFormat), FormatYAML)

	mark, err := cfg.HumanMark()
	is.NoErr(err)
	is.Equal(mark, ttt.Cross)
}

func TestEnvironment(t *testing.T) {
	is := is.New(t)
	t.Setenv("TICTACTOE_DEBUG", "true")
	t.Setenv("TICTACTOE_HUMAN_FIRST", "true")
	t.Setenv("TICTACTOE_WORKERS", "2")

	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--workers", "3"}))

	is.Equal(cfg.GetBool(KeyDebug), true)
	is.Equal(cfg.GetBool(KeyHumanFirst), true)
	is.Equal(cfg.GetInt(KeyWorkers), 3) // flags win over the environment
}

func TestInvalid(t *testing.T) {
	tests := [][]string{
		{"--human-mark", "z"},
		{"--format", "xml"},
		{"--opponent", "human"},
		{"--games", "0"},
		{"--repeat", "-1"},
	}

	for _, args := range tests {
		cfg := &Config{}
		if err := cfg.Load(args); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Load(%v) error = %v, want %v", args, err, ErrInvalidConfig)
		}
	}

	cfg := &Config{}
	if err := cfg.Load([]string{"--no-such-flag"}); err == nil {
		t.Error("Load accepted an unknown flag")
	}
}
