package bench

import "sync"

// Distributes the arena events to several listeners, the summary is
// additionally kept so it can be read after the arena is done
type ArenaListener struct {
	listeners []ListenerLike
	mu        *sync.Mutex
	summary   *VersusSummaryInfo
}

func NewArenaListener(listeners ...ListenerLike) *ArenaListener {
	return &ArenaListener{
		listeners: listeners,
		mu:        &sync.Mutex{},
		summary:   &VersusSummaryInfo{},
	}
}

func (al *ArenaListener) each(f func(ListenerLike)) {
	for _, l := range al.listeners {
		f(l)
	}
}

func (al *ArenaListener) SetRow(row int) {
	al.each(func(l ListenerLike) { l.SetRow(row) })
}

func (al *ArenaListener) OnStart() {
	al.each(func(l ListenerLike) { l.OnStart() })
}

func (al *ArenaListener) OnGameStart() {
	al.each(func(l ListenerLike) { l.OnGameStart() })
}

func (al *ArenaListener) OnMoveMade(info VersusWorkerInfo) {
	al.each(func(l ListenerLike) { l.OnMoveMade(info) })
}

func (al *ArenaListener) OnFinishedGame(info VersusWorkerInfo) {
	al.each(func(l ListenerLike) { l.OnFinishedGame(info) })
}

func (al *ArenaListener) OnFinishedWork(info VersusWorkerInfo) {
	al.each(func(l ListenerLike) { l.OnFinishedWork(info) })
}

func (al *ArenaListener) Summary(summary VersusSummaryInfo) {
	al.mu.Lock()
	*al.summary = summary
	al.mu.Unlock()
	al.each(func(l ListenerLike) { l.Summary(summary) })
}

func (al *ArenaListener) OnEnd() {
	al.each(func(l ListenerLike) { l.OnEnd() })
}

// Clones every listener, the summary storage stays shared
func (al *ArenaListener) Clone() ListenerLike {
	clone := &ArenaListener{
		listeners: make([]ListenerLike, 0, len(al.listeners)),
		mu:        al.mu,
		summary:   al.summary,
	}
	for _, l := range al.listeners {
		clone.listeners = append(clone.listeners, l.Clone())
	}
	return clone
}

// Last summary received, zero value before the arena ends
func (al *ArenaListener) LastSummary() VersusSummaryInfo {
	al.mu.Lock()
	defer al.mu.Unlock()
	return *al.summary
}
