package ttt

import "math/bits"

// Empty squares in ascending order, the search relies on this order
// being stable for its tie-breaking
func (p *Position) AvailableMoves() *MoveList {
	movelist := NewMoveList()

	free := uint(_fullBoard ^ (p.bitboards[_bitboardCrossIdx] | p.bitboards[_bitboardCircleIdx]))
	for free != 0 {
		movelist.AppendMove(Square(bits.TrailingZeros(free)))
		free &= free - 1
	}

	return movelist
}

// Whether there is at least one empty square
func (p *Position) HasMoves() bool {
	return (p.bitboards[_bitboardCrossIdx] | p.bitboards[_bitboardCircleIdx]) != _fullBoard
}
