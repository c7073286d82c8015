package ttt

type Square uint8
type Mark uint8

const (
	None   Mark = 0
	Cross  Mark = 1
	Circle Mark = 2
)

// The other player's mark, None stays None
func (m Mark) Opponent() Mark {
	switch m {
	case Cross:
		return Circle
	case Circle:
		return Cross
	}
	return None
}

func (m Mark) String() string {
	switch m {
	case Cross:
		return "x"
	case Circle:
		return "o"
	}
	return "."
}

// Index into the position's bitboards
func (m Mark) bitboardIdx() int {
	if m == Circle {
		return _bitboardCircleIdx
	}
	return _bitboardCrossIdx
}
