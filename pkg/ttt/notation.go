package ttt

import (
	"errors"
	"fmt"
	"strings"
)

const (
	StartingPosition string = "3/3/3"
)

var (
	ErrInvalidNotation    = errors.New("ttt: invalid notation")
	ErrImpossiblePosition = errors.New("ttt: impossible position")
)

// String notation of the board, much like the FEN representation of a chessboard:
//
//	<row>/<row>/<row>
//
// rows go from the top one, each row lists its squares from left to right,
// 'x' and 'o' for the marks and a digit for a run of empty squares ('.' is
// accepted as a single empty square when parsing).
//
// Examples:
//
// * 3/3/3 - empty board
//
// * xo1/1x1/2o - x on 0 and 4, o on 1 and 8
func (p *Position) Notation() string {
	builder := strings.Builder{}

	for row := 0; row < 3; row++ {
		counter := 0
		for col := 0; col < 3; col++ {
			switch m := p.board[row*3+col]; m {
			case Cross, Circle:
				if counter > 0 {
					builder.WriteByte('0' + byte(counter))
					counter = 0
				}
				builder.WriteString(m.String())
			default:
				counter++
			}
		}

		if counter > 0 {
			builder.WriteByte('0' + byte(counter))
		}
		if row != 2 {
			builder.WriteByte('/')
		}
	}

	return builder.String()
}

func (p *Position) String() string {
	return p.Notation()
}

// Multi-line grid of the board, empty squares are shown with their index
func (p *Position) Pretty() string {
	builder := strings.Builder{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sq := Square(row*3 + col)
			if m := p.board[sq]; m != None {
				builder.WriteString(" " + m.String() + " ")
			} else {
				builder.WriteString(fmt.Sprintf(" %d ", sq))
			}
			if col != 2 {
				builder.WriteByte('|')
			}
		}
		builder.WriteByte('\n')
		if row != 2 {
			builder.WriteString("---+---+---\n")
		}
	}
	return builder.String()
}

// Load the position from given notation string, resets current state.
// The history is rebuilt by alternating the marks in ascending square
// order, starting with the side that has more marks (cross on a tie).
func (p *Position) FromNotation(notation string) error {
	p.Reset()

	if notation == "startpos" {
		notation = StartingPosition
	}

	rows := strings.Split(strings.TrimSpace(notation), "/")
	if len(rows) != 3 {
		return fmt.Errorf("%w: %q: expected 3 rows, got %d", ErrInvalidNotation, notation, len(rows))
	}

	var squares [2][]Square
	for r, row := range rows {
		col := 0
		for _, c := range row {
			if col >= 3 {
				return fmt.Errorf("%w: %q: row %d is too long", ErrInvalidNotation, notation, r)
			}
			sq := Square(r*3 + col)
			switch {
			case c == 'x' || c == 'X':
				squares[_bitboardCrossIdx] = append(squares[_bitboardCrossIdx], sq)
				col++
			case c == 'o' || c == 'O':
				squares[_bitboardCircleIdx] = append(squares[_bitboardCircleIdx], sq)
				col++
			case c == '.' || c == '_':
				col++
			case c >= '1' && c <= '3':
				col += int(c - '0')
			default:
				return fmt.Errorf("%w: %q: unexpected character %q", ErrInvalidNotation, notation, c)
			}
		}
		if col != 3 {
			return fmt.Errorf("%w: %q: row %d has %d squares", ErrInvalidNotation, notation, r, col)
		}
	}

	nCross, nCircle := len(squares[_bitboardCrossIdx]), len(squares[_bitboardCircleIdx])
	if nCross-nCircle > 1 || nCircle-nCross > 1 {
		return fmt.Errorf("%w: %q: %d crosses and %d circles", ErrImpossiblePosition, notation, nCross, nCircle)
	}

	first, second := Cross, Circle
	if nCircle > nCross {
		first, second = Circle, Cross
	}
	for i := 0; i < max(nCross, nCircle); i++ {
		for _, m := range [2]Mark{first, second} {
			list := squares[m.bitboardIdx()]
			if i < len(list) {
				p.place(list[i], m)
			}
		}
	}

	crossWon, circleWon := p.hasLine(Cross), p.hasLine(Circle)
	if crossWon && circleWon {
		p.Reset()
		return fmt.Errorf("%w: %q: both sides have a line", ErrImpossiblePosition, notation)
	}
	if crossWon {
		p.winner = Cross
	} else if circleWon {
		p.winner = Circle
	}
	return nil
}

// Put the mark on the board without any termination checks
func (p *Position) place(sq Square, m Mark) {
	p.board[sq] = m
	p.bitboards[m.bitboardIdx()] |= 1 << sq
	p.history = append(p.history, sq)
}

// Create the position from notation
func FromNotation(notation string) (*Position, error) {
	pos := NewPosition()
	if err := pos.FromNotation(notation); err != nil {
		return nil, err
	}
	return pos, nil
}
