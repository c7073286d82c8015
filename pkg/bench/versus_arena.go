package bench

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"lukechampine.com/frand"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

/*
Arena benchmark, plays a series of games between two players, distributed
between worker goroutines. Each worker owns a clone of the starting position
and of both players, the first mover of every game is chosen by a coin flip.
*/

type VersusArena struct {
	VersusArenaStats
	Player1  PlayerLike
	Player2  PlayerLike
	NGames   uint
	NThreads uint
	Position *ttt.Position
	wg       sync.WaitGroup
	finished atomic.Bool
	nodes    atomic.Uint64
	start    time.Time
	ctx      context.Context
}

func NewVersusArena(position *ttt.Position, p1, p2 PlayerLike) *VersusArena {
	return &VersusArena{
		Player1:  p1,
		Player2:  p2,
		NGames:   100,
		NThreads: 2,
		Position: position,
		ctx:      context.Background(),
	}
}

// Games stop being played (and recorded) once the context is done
func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) Setup(nGames uint, nThreads uint) {
	va.NGames = nGames
	va.NThreads = max(nThreads, 1)
}

func (va *VersusArena) Wait() {
	va.wg.Wait()

	for {
		if va.finished.Load() {
			break
		}
		runtime.Gosched()
	}
}

// Start the workers, returns immediately. Call Wait to block until the summary is delivered.
func (va *VersusArena) Start(listener ListenerLike) {
	if listener == nil {
		listener = &DefaultListener{}
	}
	if va.Position.IsTerminated() {
		panic("VersusArena: starting position is terminated")
	}

	va.finished.Store(false)
	va.start = time.Now()
	listener.OnStart()

	threads := max(va.NThreads, 1)
	nGames := va.NGames / threads
	rest := va.NGames % threads

	for i := range threads {
		delta := 0
		if rest > 0 {
			delta = 1
			rest--
		}
		va.wg.Add(1)

		// Always use a clone, to avoid race conditions
		p1 := va.Player1.Clone()
		p2 := va.Player2.Clone()
		l := listener.Clone()

		l.SetRow(int(i))
		go va.worker(int(i), int(nGames)+delta, l, p1, p2)
	}
}

// Start the arena and wait for the summary
func (va *VersusArena) Run(listener ListenerLike) VersusSummaryInfo {
	collector := NewArenaListener()
	if listener != nil {
		collector = NewArenaListener(listener)
	}
	va.Start(collector)
	va.Wait()
	return collector.LastSummary()
}

func (va *VersusArena) summary() VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		Draws:            va.Draws(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Workers:          int(max(va.NThreads, 1)),
		P1Name:           va.Player1.Name(),
		P2Name:           va.Player2.Name(),
		Nodes:            va.nodes.Load(),
		Elapsed:          time.Since(va.start),
	}
}

func (va *VersusArena) worker(id, nGames int, listener ListenerLike, p1, p2 PlayerLike) {
	localStats := VersusArenaStats{}
	gamePos := va.Position.Clone()
	finished := 0

	for i := range nGames {
		p1First := frand.Intn(2) == 0
		first, second := p2, p1
		if p1First {
			first, second = p1, p2
		}

		outcome, ok := va.playGame(first, second, gamePos, listener, VersusWorkerInfo{
			WorkerID:      id,
			NGames:        nGames,
			FinishedGames: i,
			P1Name:        p1.Name(),
			P2Name:        p2.Name(),
		})
		if !ok {
			break
		}

		va.record(outcome, p1First)
		localStats.record(outcome, p1First)
		finished++
	}

	va.nodes.Add(p1.Nodes() + p2.Nodes())
	listener.OnFinishedWork(VersusWorkerInfo{
		WorkerID:         id,
		NGames:           nGames,
		FinishedGames:    finished,
		P1Wins:           localStats.P1Wins(),
		P2Wins:           localStats.P2Wins(),
		Draws:            localStats.Draws(),
		FirstToMoveWins:  localStats.FirstToMoveWins(),
		SecondToMoveWins: localStats.SecondToMoveWins(),
		P1Name:           p1.Name(),
		P2Name:           p2.Name(),
	})
	va.wg.Done()

	if id == 0 {
		va.wg.Wait()
		listener.Summary(va.summary())
		listener.OnEnd()
		va.finished.Store(true)
	}
}

// Play a single game on 'gamePos', 'first' makes the first move. The position
// is restored before returning. Returns false if the context was cancelled.
func (va *VersusArena) playGame(first, second PlayerLike, gamePos *ttt.Position,
	listener ListenerLike, info VersusWorkerInfo,
) (GameOutcome, bool) {
	moves := make([]ttt.Square, 0, ttt.NSquares)
	defer func() {
		for range moves {
			gamePos.UndoLast()
		}
	}()

	listener.OnGameStart()

	firstMark := gamePos.SideToMove(ttt.Cross)
	players := [2]PlayerLike{first, second}
	marks := [2]ttt.Mark{firstMark, firstMark.Opponent()}

	for turn := 0; !gamePos.IsTerminated(); turn ^= 1 {
		select {
		case <-va.ctx.Done():
			return GameOutcome{}, false
		default:
		}

		m := players[turn].BestMove(gamePos, marks[turn])
		if !gamePos.MakeMove(m, marks[turn]) {
			panic("VersusArena: " + players[turn].Name() + " played an occupied square")
		}
		moves = append(moves, m)

		info.Moves = moves
		info.GameMoveNum = len(moves)
		listener.OnMoveMade(info)
	}

	outcome := computeOutcome(gamePos, firstMark)
	info.Moves = append([]ttt.Square(nil), moves...)
	info.GameMoveNum = len(moves)
	listener.OnFinishedGame(info)
	return outcome, true
}
