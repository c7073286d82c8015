// Package shell implements the interactive game against the engine, one
// command line at a time. The prompt itself lives in the main package.
package shell

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrIllegalMove      = errors.New("illegal move")
	ErrGameOver         = errors.New("the game is over, type 'new' to play again")
	ErrNothingToUndo    = errors.New("nothing to undo")
	ErrWrongArgs        = errors.New("wrong arguments")
	errNoData           = errors.New("no data")
	errUnbalancedQuotes = errors.New("unbalanced quotes")
)

type shellcmd struct {
	cmd  string
	args []string
}

type command struct {
	usage string
	help  string
	run   func(s *Session, cmd *shellcmd) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"move":    {"move <0-8>", "place your mark, a bare number works too", (*Session).move},
		"undo":    {"undo", "take back your last move and the reply", (*Session).undo},
		"hint":    {"hint", "ask the engine for your best move", (*Session).hint},
		"new":     {"new [human|ai]", "start a new game, optionally choosing who opens", (*Session).newGame},
		"board":   {"board", "show the board", (*Session).board},
		"pruning": {"pruning [on|off]", "show or toggle alpha-beta pruning", (*Session).pruning},
		"stats":   {"stats", "statistics of the last engine search", (*Session).stats},
		"help":    {"help", "show this message", (*Session).help},
		"quit":    {"quit", "leave the game", (*Session).quit},
	}
}

var aliases = map[string]string{
	"exit": "quit",
	"m":    "move",
	"u":    "undo",
	"b":    "board",
}

// Names of all commands, sorted, for completion
func CommandNames() []string {
	names := append(lo.Keys(commands), lo.Keys(aliases)...)
	slices.Sort(names)
	return names
}

// Split the line into the command and its arguments, a bare square index
// is read as a move
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		if errors.Is(err, shellquote.UnterminatedSingleQuoteError) ||
			errors.Is(err, shellquote.UnterminatedDoubleQuoteError) {
			return nil, errUnbalancedQuotes
		}
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}

	cmd := strings.ToLower(fields[0])
	if _, err := strconv.Atoi(cmd); err == nil {
		return &shellcmd{cmd: "move", args: fields}, nil
	}
	if alias, ok := aliases[cmd]; ok {
		cmd = alias
	}
	return &shellcmd{cmd: cmd, args: fields[1:]}, nil
}

type Options struct {
	HumanMark  ttt.Mark
	HumanFirst bool
	Pruning    bool
}

// One game against the engine, replies are written to the output
type Session struct {
	w          io.Writer
	out        *termenv.Output
	pos        *ttt.Position
	engine     *minimax.Engine
	human      ttt.Mark
	humanFirst bool
	last       *minimax.Result
	quitting   bool
}

// 'out' styles the board, nil means plain ascii
func NewSession(w io.Writer, out *termenv.Output, opts Options) *Session {
	if opts.HumanMark != ttt.Cross && opts.HumanMark != ttt.Circle {
		opts.HumanMark = ttt.Circle
	}
	if out == nil {
		out = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}

	return &Session{
		w:          w,
		out:        out,
		pos:        ttt.NewPosition(),
		engine:     minimax.NewEngine(opts.HumanMark.Opponent()).SetPruning(opts.Pruning),
		human:      opts.HumanMark,
		humanFirst: opts.HumanFirst,
	}
}

func (s *Session) showMessage(msg string) {
	io.WriteString(s.w, msg)
	io.WriteString(s.w, "\n")
}

func (s *Session) Position() *ttt.Position {
	return s.pos
}

func (s *Session) Quitting() bool {
	return s.quitting
}

// Mark that opened the current game
func (s *Session) firstMark() ttt.Mark {
	if s.humanFirst {
		return s.human
	}
	return s.human.Opponent()
}

func (s *Session) sideToMove() ttt.Mark {
	return s.pos.SideToMove(s.firstMark())
}

// Greet the player, show the board and let the engine open if it moves first
func (s *Session) Start() {
	s.showMessage(fmt.Sprintf("Welcome to Tic-Tac-Toe! You play '%v', AI plays '%v'.", s.human, s.human.Opponent()))
	s.showMessage("Board positions are numbered 0 to 8 as follows:")
	s.showMessage(Legend)
	s.play()
}

// Run a single command line. Errors are meant to be shown to the player,
// the session stays usable after them.
func (s *Session) Execute(line string) error {
	cmd, err := extractFields(line)
	if err != nil {
		if errors.Is(err, errNoData) {
			return nil
		}
		return err
	}

	c, ok := commands[cmd.cmd]
	if !ok {
		return fmt.Errorf("%w: %q, type 'help' for the list", ErrUnknownCommand, cmd.cmd)
	}
	log.Debug().Str("cmd", cmd.cmd).Strs("args", cmd.args).Msg("executing")
	return c.run(s, cmd)
}

// Let the engine reply if it is on the move, then show the board
// and the result once the game is over
func (s *Session) play() {
	if !s.pos.IsTerminated() && s.sideToMove() != s.human {
		s.showMessage("AI is thinking...")
		result := s.engine.SelectBestMove(s.pos)
		s.pos.MakeMove(result.Move, s.engine.Maximizer())
		s.last = &result
		s.showMessage(fmt.Sprintf("AI chose position %v (evaluated %d nodes in %.4f seconds)",
			result.Move, result.Nodes, result.Elapsed.Seconds()))
	}

	s.showMessage(Render(s.pos, s.out))
	if !s.pos.IsTerminated() {
		return
	}

	switch s.pos.Winner() {
	case s.human:
		s.showMessage("Congratulations! You won!")
	case ttt.None:
		s.showMessage("It's a tie!")
	default:
		s.showMessage("AI wins! Better luck next time.")
	}
}

func (s *Session) move(cmd *shellcmd) error {
	if len(cmd.args) != 1 {
		return fmt.Errorf("%w: usage: %s", ErrWrongArgs, commands["move"].usage)
	}
	if s.pos.IsTerminated() {
		return ErrGameOver
	}

	n, err := strconv.Atoi(cmd.args[0])
	if err != nil || n < 0 || n >= ttt.NSquares {
		return fmt.Errorf("%w: %q, enter a number 0-8", ErrIllegalMove, cmd.args[0])
	}
	sq := ttt.Square(n)
	if !lo.Contains(s.pos.AvailableMoves().Slice(), sq) {
		return fmt.Errorf("%w: square %v is taken", ErrIllegalMove, sq)
	}

	s.pos.MakeMove(sq, s.human)
	s.play()
	return nil
}

func (s *Session) undo(*shellcmd) error {
	humanMoves := lo.CountBy(s.pos.History(), func(sq ttt.Square) bool {
		return s.pos.At(sq) == s.human
	})
	if humanMoves == 0 {
		return ErrNothingToUndo
	}

	for {
		m := s.pos.At(s.pos.LastMove())
		s.pos.UndoLast()
		if m == s.human {
			break
		}
	}
	s.showMessage(Render(s.pos, s.out))
	return nil
}

func (s *Session) hint(*shellcmd) error {
	if s.pos.IsTerminated() {
		return ErrGameOver
	}

	result := minimax.NewEngine(s.human).SetPruning(s.engine.Pruning()).SelectBestMove(s.pos)
	s.showMessage(fmt.Sprintf("hint: play %v (score %d, %d nodes)", result.Move, result.Score, result.Nodes))
	return nil
}

func (s *Session) newGame(cmd *shellcmd) error {
	if len(cmd.args) > 1 {
		return fmt.Errorf("%w: usage: %s", ErrWrongArgs, commands["new"].usage)
	}
	if len(cmd.args) == 1 {
		switch strings.ToLower(cmd.args[0]) {
		case "human":
			s.humanFirst = true
		case "ai":
			s.humanFirst = false
		default:
			return fmt.Errorf("%w: usage: %s", ErrWrongArgs, commands["new"].usage)
		}
	}

	s.pos.Reset()
	s.last = nil
	s.play()
	return nil
}

func (s *Session) board(*shellcmd) error {
	s.showMessage(Render(s.pos, s.out))
	s.showMessage(Legend)
	return nil
}

func (s *Session) pruning(cmd *shellcmd) error {
	switch {
	case len(cmd.args) == 0:
	case len(cmd.args) == 1 && strings.EqualFold(cmd.args[0], "on"):
		s.engine.SetPruning(true)
	case len(cmd.args) == 1 && strings.EqualFold(cmd.args[0], "off"):
		s.engine.SetPruning(false)
	default:
		return fmt.Errorf("%w: usage: %s", ErrWrongArgs, commands["pruning"].usage)
	}

	state := lo.Ternary(s.engine.Pruning(), "on", "off")
	s.showMessage("alpha-beta pruning is " + state)
	return nil
}

func (s *Session) stats(*shellcmd) error {
	if s.last == nil {
		s.showMessage("the engine hasn't searched yet")
		return nil
	}
	s.showMessage(s.last.String())
	return nil
}

func (s *Session) help(*shellcmd) error {
	names := lo.Keys(commands)
	slices.Sort(names)
	for _, name := range names {
		c := commands[name]
		s.showMessage(fmt.Sprintf("  %-18s %s", c.usage, c.help))
	}
	return nil
}

func (s *Session) quit(*shellcmd) error {
	s.quitting = true
	s.showMessage("Thanks for playing!")
	return nil
}
