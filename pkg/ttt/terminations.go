package ttt

type Termination int

const (
	TerminationNone      Termination = 0
	TerminationCircleWon Termination = 1
	TerminationCrossWon  Termination = 2
	TerminationDraw      Termination = 4
)

func (t Termination) String() string {
	switch t {
	case TerminationCircleWon:
		return "CircleWon"
	case TerminationCrossWon:
		return "CrossWon"
	case TerminationDraw:
		return "Draw"
	}
	return "None"
}

// rows and columns indexed by Square.Row() and Square.Col()
var (
	_rowPatterns = [3]uint16{0b000000111, 0b000111000, 0b111000000}
	_colPatterns = [3]uint16{0b001001001, 0b010010010, 0b100100100}
)

const (
	_diagPattern     uint16 = 0b100010001 // 0, 4, 8
	_antiDiagPattern uint16 = 0b001010100 // 2, 4, 6
)

// horizontal, vertical and diagonal patterns as bitboards
var _winningBitboardPatterns = [8]uint16{
	_rowPatterns[0], _rowPatterns[1], _rowPatterns[2],
	_colPatterns[0], _colPatterns[1], _colPatterns[2],
	_diagPattern, _antiDiagPattern,
}

// Squares of every winning line, in the same order as the bitboard patterns
var WinningLines = [8][3]Square{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Check only the lines passing through the square that was just played.
// Diagonals are tested for even squares only, those are the corners and
// the center, every diagonal is completed on one of them.
func (p *Position) checkWin(sq Square, m Mark) bool {
	bb := p.bitboards[m.bitboardIdx()]
	row, col := _rowPatterns[sq.Row()], _colPatterns[sq.Col()]

	if bb&row == row || bb&col == col {
		return true
	}

	if sq%2 == 0 {
		return bb&_diagPattern == _diagPattern || bb&_antiDiagPattern == _antiDiagPattern
	}
	return false
}

// Scan the whole board for a completed line of the given mark
func (p *Position) hasLine(m Mark) bool {
	bb := p.bitboards[m.bitboardIdx()]
	for _, pattern := range _winningBitboardPatterns {
		if bb&pattern == pattern {
			return true
		}
	}
	return false
}

// Whether the game is over, either won or with no empty squares left
func (p *Position) IsTerminated() bool {
	return p.winner != None || !p.HasMoves()
}

func (p *Position) IsDraw() bool {
	return p.winner == None && !p.HasMoves()
}

// Current state of the game
func (p *Position) Termination() Termination {
	switch {
	case p.winner == Cross:
		return TerminationCrossWon
	case p.winner == Circle:
		return TerminationCircleWon
	case !p.HasMoves():
		return TerminationDraw
	}
	return TerminationNone
}
