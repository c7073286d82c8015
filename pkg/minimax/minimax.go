// Package minimax plays perfect tic-tac-toe by searching the whole game tree,
// optionally with alpha-beta pruning.
package minimax

import (
	"fmt"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Engine maps the search players to marks and holds the search options.
// It keeps no state between searches, the position is owned by the caller.
type Engine struct {
	maximizer ttt.Mark
	pruning   bool
	listener  Listener
}

// Create an engine searching for the best move of 'maximizer', pruning is on by default
func NewEngine(maximizer ttt.Mark) *Engine {
	if maximizer == ttt.None {
		panic("minimax: maximizer must be a player's mark")
	}

	return &Engine{
		maximizer: maximizer,
		pruning:   true,
		listener:  NewListener(),
	}
}

// Enable or disable alpha-beta pruning, doesn't change the result, only the work done
func (e *Engine) SetPruning(pruning bool) *Engine {
	e.pruning = pruning
	return e
}

func (e *Engine) Pruning() bool {
	return e.pruning
}

// Set the listener, it is copied
func (e *Engine) SetListener(listener Listener) *Engine {
	e.listener = listener
	return e
}

func (e *Engine) Maximizer() ttt.Mark {
	return e.maximizer
}

// Mark placed by given search player
func (e *Engine) MarkOf(p Player) ttt.Mark {
	if p == Maximizer {
		return e.maximizer
	}
	return e.maximizer.Opponent()
}

// Search player owning given mark
func (e *Engine) PlayerOf(m ttt.Mark) Player {
	switch m {
	case e.maximizer:
		return Maximizer
	case e.maximizer.Opponent():
		return Minimizer
	}
	panic(fmt.Sprintf("minimax: mark %v has no player", m))
}

// Copy of the engine, the listener included
func (e *Engine) Clone() *Engine {
	clone := *e
	return &clone
}

// Best move for the engine's maximizer with the engine's default settings
func SelectBestMove(pos *ttt.Position, pruning bool) Result {
	return NewEngine(ttt.Cross).SetPruning(pruning).SelectBestMove(pos)
}
