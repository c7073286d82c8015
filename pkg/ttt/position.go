package ttt

import (
	"errors"
	"fmt"
)

const (
	_bitboardCrossIdx  = 0
	_bitboardCircleIdx = 1

	_fullBoard uint16 = 0b111111111
)

var (
	// Undo was called with a square that is not the most recent move
	ErrUndoOrder = errors.New("ttt: undo out of order")
	// Move was made on an already won position
	ErrGameOver = errors.New("ttt: position is already won")
)

type Position struct {
	board     [NSquares]Mark
	bitboards [2]uint16
	history   []Square
	winner    Mark
}

func NewPosition() *Position {
	return &Position{
		history: make([]Square, 0, NSquares),
	}
}

// Make a deep copy of the position (has no shared memory with this object)
func (p *Position) Clone() *Position {
	pos := &Position{
		board:     p.board,
		bitboards: p.bitboards,
		winner:    p.winner,
		history:   make([]Square, len(p.history), NSquares),
	}
	copy(pos.history, p.history)
	return pos
}

// Clear the board, keeping the allocated history
func (p *Position) Reset() {
	p.board = [NSquares]Mark{}
	p.bitboards = [2]uint16{}
	p.history = p.history[:0]
	p.winner = None
}

// Place the mark on the square, returns false (leaving the position untouched)
// if the square is already taken. Panics on an invalid square, an empty mark
// or a position that is already won.
func (p *Position) MakeMove(sq Square, m Mark) bool {
	if !sq.Valid() {
		panic(fmt.Sprintf("ttt: square %d out of range", sq))
	}
	if m == None {
		panic("ttt: cannot place an empty mark")
	}
	if p.winner != None {
		panic(fmt.Errorf("%w: %v won, move %v", ErrGameOver, p.winner, sq))
	}
	if p.board[sq] != None {
		return false
	}

	p.board[sq] = m
	p.bitboards[m.bitboardIdx()] |= 1 << sq
	p.history = append(p.history, sq)

	if p.checkWin(sq, m) {
		p.winner = m
	}
	return true
}

// Take back the most recent move, which must be played on 'sq'.
// Any other square is rejected with a panic wrapping ErrUndoOrder.
func (p *Position) UndoMove(sq Square) {
	last := p.LastMove()
	if last == SquareNone || last != sq {
		panic(fmt.Errorf("%w: undo %v, last move %v", ErrUndoOrder, sq, last))
	}
	p.pop()
}

// Take back the most recent move, returns SquareNone if there is nothing to undo
func (p *Position) UndoLast() Square {
	last := p.LastMove()
	if last != SquareNone {
		p.pop()
	}
	return last
}

func (p *Position) pop() {
	sq := p.history[len(p.history)-1]
	m := p.board[sq]

	p.bitboards[m.bitboardIdx()] &^= 1 << sq
	p.board[sq] = None
	p.history = p.history[:len(p.history)-1]

	// only the winner's own move can break its line
	if p.winner == m && !p.hasLine(m) {
		p.winner = None
	}
}

// Most recent move, or SquareNone on an empty board
func (p *Position) LastMove() Square {
	if len(p.history) == 0 {
		return SquareNone
	}
	return p.history[len(p.history)-1]
}

// Mark placed on the square
func (p *Position) At(sq Square) Mark {
	return p.board[sq]
}

// Moves applied so far, most recent last. Shares memory with the position.
func (p *Position) History() []Square {
	return p.history
}

// Number of occupied squares
func (p *Position) Count() int {
	return len(p.history)
}

func (p *Position) Winner() Mark {
	return p.winner
}

// Mark to play next, given the mark that opened the game
func (p *Position) SideToMove(first Mark) Mark {
	if len(p.history)%2 == 0 {
		return first
	}
	return first.Opponent()
}
