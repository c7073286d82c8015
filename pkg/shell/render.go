package shell

import (
	"strings"

	"github.com/muesli/termenv"
	"github.com/samber/lo"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

const (
	crossColor  = "1" // red
	circleColor = "4" // blue
)

// Square indices as they are typed at the prompt
const Legend = "0 | 1 | 2\n3 | 4 | 5\n6 | 7 | 8\n"

// Draw the board as three '| x | o |   |' rows, the last move is underlined
func Render(pos *ttt.Position, out *termenv.Output) string {
	last := pos.LastMove()
	builder := strings.Builder{}

	for row := range 3 {
		squares := []ttt.Square{ttt.Square(row * 3), ttt.Square(row*3 + 1), ttt.Square(row*3 + 2)}
		cells := lo.Map(squares, func(sq ttt.Square, _ int) string {
			return renderCell(pos.At(sq), sq == last, out)
		})
		builder.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return builder.String()
}

func renderCell(m ttt.Mark, last bool, out *termenv.Output) string {
	if m == ttt.None {
		return " "
	}

	style := out.String(m.String()).Bold()
	if m == ttt.Cross {
		style = style.Foreground(out.Color(crossColor))
	} else {
		style = style.Foreground(out.Color(circleColor))
	}
	if last {
		style = style.Underline()
	}
	return style.String()
}
