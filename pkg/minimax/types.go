package minimax

import (
	"fmt"
	"strings"
	"time"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Other types, which didn't fit to the search files

// Minimax value of a position, from the maximizer's perspective
type Score int

// Side to move in the search, the engine maps it to a mark
type Player int

const (
	Maximizer Player = iota
	Minimizer
)

func (p Player) Other() Player {
	if p == Maximizer {
		return Minimizer
	}
	return Maximizer
}

func (p Player) String() string {
	if p == Maximizer {
		return "max"
	}
	return "min"
}

// Root move with its minimax value
type Line struct {
	Move  ttt.Square
	Score Score
}

// Outcome of the best move search
type Result struct {
	Move    ttt.Square
	Score   Score
	Nodes   uint64
	Cutoffs uint64
	Elapsed time.Duration
	// Every root move in enumeration order
	Lines []Line
}

// Whether the search found a move at all
func (r Result) Ok() bool {
	return r.Move.Valid()
}

func (r Result) Stats() Stats {
	return Stats{Nodes: r.Nodes, Cutoffs: r.Cutoffs, Elapsed: r.Elapsed}
}

func (r Result) String() string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("bestmove %v score %d %s", r.Move, r.Score, r.Stats().String()))
	if len(r.Lines) > 0 {
		builder.WriteString(" lines")
		for _, l := range r.Lines {
			builder.WriteString(fmt.Sprintf(" %v:%d", l.Move, l.Score))
		}
	}
	return builder.String()
}
