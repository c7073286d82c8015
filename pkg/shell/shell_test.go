package shell

import (
	"bytes"
	"errors"
	"os"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"   ", nil, errNoData},
		{"4", &shellcmd{"move", []string{"4"}}, nil},
		{"move 4", &shellcmd{"move", []string{"4"}}, nil},
		{"Pruning off", &shellcmd{"pruning", []string{"off"}}, nil},
		{"u", &shellcmd{"undo", []string{}}, nil},
		{"new 'ai'", &shellcmd{"new", []string{"ai"}}, nil},
		{"new \"ai", nil, errUnbalancedQuotes},
	}
	for _, tc := range cases {
		cmd, err := extractFields(tc.line)
		is.Equal(cmd, tc.expCmd)
		is.Equal(err, tc.expErr)
	}
}

func TestCommandNames(t *testing.T) {
	is := is.New(t)
	names := CommandNames()
	is.True(slices.IsSorted(names))
	is.True(slices.Contains(names, "move"))
	is.True(slices.Contains(names, "exit"))
	is.Equal(len(names), len(commands)+len(aliases))
}

func newTestSession(opts Options) (*Session, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	s := NewSession(buf, nil, opts)
	s.Start()
	return s, buf
}

func TestEngineOpens(t *testing.T) {
	is := is.New(t)
	s, buf := newTestSession(Options{HumanMark: ttt.Circle, Pruning: true})

	// every opening draws, the first square wins the tie
	is.Equal(s.Position().Notation(), "x2/3/3")
	is.True(strings.Contains(buf.String(), "You play 'o', AI plays 'x'"))
	is.True(strings.Contains(buf.String(), "AI chose position 0"))
	is.True(strings.Contains(buf.String(), "| x |   |   |"))
}

func TestHumanOpens(t *testing.T) {
	is := is.New(t)
	s, buf := newTestSession(Options{HumanMark: ttt.Cross, HumanFirst: true, Pruning: true})
	is.Equal(s.Position().Count(), 0)
	is.True(!strings.Contains(buf.String(), "AI is thinking"))

	is.NoErr(s.Execute("4"))
	is.Equal(s.Position().Count(), 2)
	is.Equal(s.Position().At(ttt.B2), ttt.Cross)
	is.Equal(s.Position().SideToMove(ttt.Cross), ttt.Cross)
}

func TestIllegalInput(t *testing.T) {
	is := is.New(t)
	s, _ := newTestSession(Options{HumanMark: ttt.Circle, Pruning: true})

	cases := []struct {
		line string
		err  error
	}{
		{"0", ErrIllegalMove}, // taken by the engine
		{"9", ErrIllegalMove},
		{"move -1", ErrIllegalMove},
		{"move four", ErrIllegalMove},
		{"move", ErrWrongArgs},
		{"move 1 2", ErrWrongArgs},
		{"castle", ErrUnknownCommand},
		{"pruning maybe", ErrWrongArgs},
		{"new nobody", ErrWrongArgs},
	}
	for _, tc := range cases {
		err := s.Execute(tc.line)
		is.True(errors.Is(err, tc.err)) // wrong error for the line
	}
	is.Equal(s.Position().Notation(), "x2/3/3")
}

func TestUndo(t *testing.T) {
	is := is.New(t)
	s, _ := newTestSession(Options{HumanMark: ttt.Circle, Pruning: true})
	is.True(errors.Is(s.Execute("undo"), ErrNothingToUndo))

	is.NoErr(s.Execute("4"))
	is.Equal(s.Position().Count(), 3)

	is.NoErr(s.Execute("undo"))
	is.Equal(s.Position().Notation(), "x2/3/3")
	is.True(errors.Is(s.Execute("u"), ErrNothingToUndo))
}

func TestPerfectGameIsTie(t *testing.T) {
	is := is.New(t)
	s, buf := newTestSession(Options{HumanMark: ttt.Circle, Pruning: true})

	for !s.Position().IsTerminated() {
		best := minimax.NewEngine(ttt.Circle).SelectBestMove(s.Position())
		is.NoErr(s.Execute(strconv.Itoa(int(best.Move))))
	}

	is.Equal(s.Position().Winner(), ttt.None)
	is.True(strings.Contains(buf.String(), "It's a tie!"))
	is.True(errors.Is(s.Execute("hint"), ErrGameOver))
	is.True(errors.Is(s.Execute("4"), ErrGameOver))

	// the last human move and the engine's answer are taken back
	is.NoErr(s.Execute("undo"))
	is.Equal(s.Position().Count(), 7)
}

func TestEngineWinsAfterBlunder(t *testing.T) {
	is := is.New(t)
	s, buf := newTestSession(Options{HumanMark: ttt.Circle, Pruning: true})

	// x opened in the corner, an edge reply loses
	is.NoErr(s.Execute("1"))
	for !s.Position().IsTerminated() {
		best := minimax.NewEngine(ttt.Circle).SelectBestMove(s.Position())
		is.NoErr(s.Execute(strconv.Itoa(int(best.Move))))
	}
	is.Equal(s.Position().Winner(), ttt.Cross)
	is.True(strings.Contains(buf.String(), "AI wins!"))
}

func TestHint(t *testing.T) {
	is := is.New(t)
	s, buf := newTestSession(Options{HumanMark: ttt.Circle, Pruning: true})
	buf.Reset()

	// against a corner opening only the center holds the draw
	is.NoErr(s.Execute("hint"))
	is.True(strings.Contains(buf.String(), "hint: play 4 (score 0"))
	is.Equal(s.Position().Count(), 1)
}

func TestPruningAndStats(t *testing.T) {
	is := is.New(t)
	s, buf := newTestSession(Options{HumanMark: ttt.Cross, HumanFirst: true, Pruning: true})

	is.NoErr(s.Execute("stats"))
	is.True(strings.Contains(buf.String(), "hasn't searched"))

	is.NoErr(s.Execute("pruning off"))
	is.True(strings.Contains(buf.String(), "pruning is off"))
	is.Equal(s.engine.Pruning(), false)

	is.NoErr(s.Execute("0"))
	buf.Reset()
	is.NoErr(s.Execute("stats"))
	is.True(strings.HasPrefix(buf.String(), "bestmove 4"))
	is.True(strings.Contains(buf.String(), "cutoffs 0"))

	is.NoErr(s.Execute("pruning ON"))
	is.Equal(s.engine.Pruning(), true)
}

func TestNewGame(t *testing.T) {
	is := is.New(t)
	s, _ := newTestSession(Options{HumanMark: ttt.Circle, Pruning: true})
	is.NoErr(s.Execute("4"))

	is.NoErr(s.Execute("new human"))
	is.Equal(s.Position().Count(), 0)
	is.Equal(s.sideToMove(), ttt.Circle)

	is.NoErr(s.Execute("new ai"))
	is.Equal(s.Position().Count(), 1)

	is.NoErr(s.Execute("new"))
	is.Equal(s.Position().Count(), 1)
}

func TestHelpAndQuit(t *testing.T) {
	is := is.New(t)
	s, buf := newTestSession(Options{HumanMark: ttt.Circle})
	buf.Reset()

	is.NoErr(s.Execute("help"))
	for _, c := range commands {
		is.True(strings.Contains(buf.String(), c.usage))
	}

	is.True(!s.Quitting())
	is.NoErr(s.Execute("exit"))
	is.True(s.Quitting())
}

func TestRender(t *testing.T) {
	is := is.New(t)
	pos, err := ttt.FromNotation("xo1/3/2x")
	is.NoErr(err)

	s := NewSession(&bytes.Buffer{}, nil, Options{})
	is.Equal(Render(pos, s.out), "| x | o |   |\n|   |   |   |\n|   |   | x |\n")
}
