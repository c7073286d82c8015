package minimax

import "math"

const (
	// Value of a win found at depth 0, every extra ply costs one point,
	// so quicker wins and slower losses are preferred
	WinScore Score = 10

	DrawScore Score = 0

	// Bound of the initial alpha-beta window
	Infinity Score = math.MaxInt32
)

// Score of a decided game found 'depth' plies into the search
func TerminalScore(maximizerWon bool, depth int) Score {
	if maximizerWon {
		return WinScore - Score(depth)
	}
	return -WinScore + Score(depth)
}
