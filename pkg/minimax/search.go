package minimax

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// State of a single search: the shared position and the counters.
// The position is mutated in place, every applied move is undone
// before returning to the caller.
type searcher struct {
	pos       *ttt.Position
	maximizer ttt.Mark
	pruning   bool
	stats     *Stats
}

func (e *Engine) newSearcher(pos *ttt.Position, stats *Stats) *searcher {
	return &searcher{
		pos:       pos,
		maximizer: e.maximizer,
		pruning:   e.pruning,
		stats:     stats,
	}
}

// Minimax value of 'pos' with 'player' to move, 'depth' plies below the
// decision point. Node and cutoff counts are added to 'stats', which may be nil.
func (e *Engine) Minimax(pos *ttt.Position, depth int, alpha, beta Score, player Player, stats *Stats) Score {
	if stats == nil {
		stats = &Stats{}
	}
	return e.newSearcher(pos, stats).minimax(depth, alpha, beta, player)
}

// Minimax value of 'pos' with 'player' to move, using the full window
func (e *Engine) Evaluate(pos *ttt.Position, player Player) (Score, Stats) {
	stats := Stats{}
	timer := _NewTimer()
	score := e.Minimax(pos, 0, -Infinity, Infinity, player, &stats)
	stats.Elapsed = timer.Elapsed()
	return score, stats
}

func (s *searcher) markOf(p Player) ttt.Mark {
	if p == Maximizer {
		return s.maximizer
	}
	return s.maximizer.Opponent()
}

func (s *searcher) minimax(depth int, alpha, beta Score, player Player) Score {
	s.stats.Nodes++

	if winner := s.pos.Winner(); winner != ttt.None {
		return TerminalScore(winner == s.maximizer, depth)
	}

	moves := s.pos.AvailableMoves().Slice()
	if len(moves) == 0 {
		return DrawScore
	}

	mark := s.markOf(player)
	next := player.Other()

	if player == Maximizer {
		best := -Infinity
		for i, sq := range moves {
			score := s.child(sq, mark, depth+1, alpha, beta, next)
			best = max(best, score)

			if s.pruning {
				alpha = max(alpha, score)
				if beta <= alpha {
					s.cutoff(i, len(moves))
					break
				}
			}
		}
		return best
	}

	best := Infinity
	for i, sq := range moves {
		score := s.child(sq, mark, depth+1, alpha, beta, next)
		best = min(best, score)

		if s.pruning {
			beta = min(beta, score)
			if beta <= alpha {
				s.cutoff(i, len(moves))
				break
			}
		}
	}
	return best
}

// Play the move, score the resulting position and take the move back.
// The undo is deferred, so the position is restored on every exit path.
func (s *searcher) child(sq ttt.Square, mark ttt.Mark, depth int, alpha, beta Score, player Player) Score {
	if !s.pos.MakeMove(sq, mark) {
		panic(fmt.Sprintf("minimax: generated move %v is occupied in %s", sq, s.pos))
	}
	defer s.pos.UndoMove(sq)

	return s.minimax(depth, alpha, beta, player)
}

// Count the cutoff only if it actually skipped a move
func (s *searcher) cutoff(idx, nMoves int) {
	if idx < nMoves-1 {
		s.stats.Cutoffs++
	}
}

// Score every legal move of the maximizer and return the best one, the first
// move wins ties. Every root move is searched with the full window, so the
// chosen move and its score don't depend on pruning.
// Panics if the game is already won, on a full board returns no move.
func (e *Engine) SelectBestMove(pos *ttt.Position) Result {
	if winner := pos.Winner(); winner != ttt.None {
		panic(fmt.Sprintf("minimax: search on a finished game, %v won in %s", winner, pos))
	}

	timer := _NewTimer()
	stats := Stats{}
	s := e.newSearcher(pos, &stats)
	moves := pos.AvailableMoves().Slice()

	result := Result{
		Move:  ttt.SquareNone,
		Score: -Infinity,
		Lines: make([]Line, 0, len(moves)),
	}

	for _, sq := range moves {
		score := s.child(sq, e.maximizer, 0, -Infinity, Infinity, Minimizer)
		line := Line{Move: sq, Score: score}
		result.Lines = append(result.Lines, line)
		e.listener.invokeMove(line)

		if score > result.Score {
			result.Score = score
			result.Move = sq
		}
	}

	if len(moves) == 0 {
		result.Score = DrawScore
	}

	stats.Elapsed = timer.Elapsed()
	result.Nodes = stats.Nodes
	result.Cutoffs = stats.Cutoffs
	result.Elapsed = stats.Elapsed

	log.Debug().
		Str("position", pos.Notation()).
		Stringer("maximizer", e.maximizer).
		Bool("pruning", e.pruning).
		Stringer("move", result.Move).
		Int("score", int(result.Score)).
		Uint64("nodes", result.Nodes).
		Uint64("cutoffs", result.Cutoffs).
		Dur("elapsed", result.Elapsed).
		Msg("search finished")

	e.listener.invokeStop(result)
	return result
}
