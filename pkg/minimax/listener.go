package minimax

type MoveListenerFunc func(Line)
type StopListenerFunc func(Result)

type Listener struct {
	// called after each root move is scored
	onMove MoveListenerFunc

	// called once, when the search is done
	onStop StopListenerFunc
}

func NewListener() Listener {
	return Listener{}
}

// Attach root move callback, called in the move enumeration order
func (listener *Listener) OnMove(onMove MoveListenerFunc) *Listener {
	listener.onMove = onMove
	return listener
}

// Attach 'on search end' callback, receives the final result
func (listener *Listener) OnStop(onStop StopListenerFunc) *Listener {
	listener.onStop = onStop
	return listener
}

func (listener *Listener) invokeMove(line Line) {
	if listener.onMove != nil {
		listener.onMove(line)
	}
}

func (listener *Listener) invokeStop(result Result) {
	if listener.onStop != nil {
		listener.onStop(result)
	}
}
