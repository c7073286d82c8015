package ttt

import "fmt"

// Enum for the squares, row-major starting from the top-left corner
const (
	A3 Square = iota
	B3
	C3
	A2
	B2
	C2
	A1
	B1
	C1
)

const (
	SquareNone Square = 255
	NSquares          = 9
)

// Row of the square, 0 being the top one
func (sq Square) Row() int {
	return int(sq) / 3
}

// Column of the square, 0 being the leftmost one
func (sq Square) Col() int {
	return int(sq) % 3
}

func (sq Square) Valid() bool {
	return sq < NSquares
}

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return fmt.Sprintf("%d", uint8(sq))
}

type MoveList struct {
	Moves [NSquares]Square
	Size  uint8
}

func NewMoveList() *MoveList {
	return &MoveList{}
}

func (ml *MoveList) AppendMove(mv Square) {
	ml.Moves[ml.Size] = mv
	ml.Size++
}

// View of the generated moves, shares memory with the list
func (ml *MoveList) Slice() []Square {
	return ml.Moves[:ml.Size]
}

func (ml *MoveList) Contains(mv Square) bool {
	for _, m := range ml.Slice() {
		if m == mv {
			return true
		}
	}
	return false
}
