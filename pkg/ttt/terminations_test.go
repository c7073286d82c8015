package ttt

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func onLine(line [3]Square, sq Square) bool {
	return line[0] == sq || line[1] == sq || line[2] == sq
}

func TestWinDetection(t *testing.T) {
	for _, line := range WinningLines {
		for _, m := range []Mark{Cross, Circle} {
			// Each square of the line gets to be the completing move
			for last := 0; last < 3; last++ {
				t.Run(fmt.Sprintf("%v-%v-last-%v", line, m, line[last]), func(t *testing.T) {
					pos := NewPosition()

					// Two opponent marks off the line, there are always at least 4 free
					off := make([]Square, 0, 2)
					for sq := Square(0); sq < NSquares && len(off) < 2; sq++ {
						if !onLine(line, sq) {
							off = append(off, sq)
						}
					}

					placed := 0
					for i, sq := range line {
						if i == last {
							continue
						}
						assert.True(t, pos.MakeMove(sq, m))
						assert.True(t, pos.MakeMove(off[placed], m.Opponent()))
						placed++
						assert.Equal(t, None, pos.Winner(), "winner set before the line is complete")
					}

					assert.True(t, pos.MakeMove(line[last], m))
					assert.Equal(t, m, pos.Winner())
					assert.True(t, pos.IsTerminated())
					assert.False(t, pos.IsDraw())
					assert.True(t, pos.HasMoves(), "an off-line square must stay empty")

					pos.UndoMove(line[last])
					assert.Equal(t, None, pos.Winner())
				})
			}
		}
	}
}

func TestNoFalsePositives(t *testing.T) {
	walkReachable(NewPosition(), Cross, func(p *Position, _ Mark) {
		hasLine := p.hasLine(Cross) || p.hasLine(Circle)
		if hasLine != (p.Winner() != None) {
			t.Fatalf("%s: winner=%v, has line=%v", p, p.Winner(), hasLine)
		}
		if p.Winner() != None && !p.hasLine(p.Winner()) {
			t.Fatalf("%s: winner %v has no line", p, p.Winner())
		}
	})
}

func TestTermination(t *testing.T) {
	tests := []struct {
		notation string
		want     Termination
	}{
		{StartingPosition, TerminationNone},
		{"xo1/1x1/2o", TerminationNone},
		{"xxx/oo1/3", TerminationCrossWon},
		{"xx1/ooo/x2", TerminationCircleWon},
		{"xox/xoo/oxx", TerminationDraw},
		{"xox/oxo/oxx", TerminationCrossWon},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			pos, err := FromNotation(tt.notation)
			if err != nil {
				t.Fatal(err)
			}
			if got := pos.Termination(); got != tt.want {
				t.Errorf("Termination() = %v, want %v", got, tt.want)
			}
			if got := pos.IsTerminated(); got != (tt.want != TerminationNone) {
				t.Errorf("IsTerminated() = %v, want %v", got, !got)
			}
		})
	}
}

func TestRandomPlayout(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		p := NewPosition()
		turn := Cross
		for !p.IsTerminated() {
			moves := p.AvailableMoves()
			if moves.Size == 0 {
				t.Fatal("No legal moves available")
			}
			p.MakeMove(moves.Slice()[r.Intn(int(moves.Size))], turn)
			turn = turn.Opponent()
		}
		if p.Termination() == TerminationNone {
			t.Fatalf("%s: game ended without a termination condition", p)
		}
		if p.Count() < 5 {
			t.Fatalf("%s: game over after %d moves", p, p.Count())
		}
	}
}
