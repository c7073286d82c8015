package bench

import (
	"fmt"

	"lukechampine.com/frand"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Arena participant, each arena worker gets its own clone
type PlayerLike interface {
	Name() string
	// Choose a move for 'mark' on a non-terminated position, must leave it untouched
	BestMove(pos *ttt.Position, mark ttt.Mark) ttt.Square
	// Nodes searched so far
	Nodes() uint64
	Clone() PlayerLike
}

// Perfect player backed by the minimax engine
type EnginePlayer struct {
	pruning bool
	nodes   uint64
}

func NewEnginePlayer(pruning bool) *EnginePlayer {
	return &EnginePlayer{pruning: pruning}
}

func (p *EnginePlayer) Name() string {
	if p.pruning {
		return "alphabeta"
	}
	return "minimax"
}

func (p *EnginePlayer) BestMove(pos *ttt.Position, mark ttt.Mark) ttt.Square {
	result := minimax.NewEngine(mark).SetPruning(p.pruning).SelectBestMove(pos)
	p.nodes += result.Nodes
	return result.Move
}

func (p *EnginePlayer) Nodes() uint64 {
	return p.nodes
}

func (p *EnginePlayer) Clone() PlayerLike {
	return NewEnginePlayer(p.pruning)
}

// Plays a uniformly random legal move
type RandomPlayer struct{}

func NewRandomPlayer() *RandomPlayer {
	return &RandomPlayer{}
}

func (RandomPlayer) Name() string {
	return "random"
}

func (RandomPlayer) BestMove(pos *ttt.Position, _ ttt.Mark) ttt.Square {
	moves := pos.AvailableMoves()
	if moves.Size == 0 {
		panic(fmt.Sprintf("RandomPlayer: no moves in %s", pos))
	}
	return moves.Moves[frand.Intn(int(moves.Size))]
}

func (RandomPlayer) Nodes() uint64 {
	return 0
}

func (RandomPlayer) Clone() PlayerLike {
	return &RandomPlayer{}
}
