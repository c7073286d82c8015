package bench

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ListenerLike interface {
	SetRow(row int)
	OnStart()
	OnGameStart()
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(summary VersusSummaryInfo)
	OnEnd()
	Clone() ListenerLike
}

// Listener that ignores every event
type DefaultListener struct {
	row int
}

func (d *DefaultListener) SetRow(row int)                       { d.row = row }
func (d *DefaultListener) OnStart()                             {}
func (d *DefaultListener) OnGameStart()                         {}
func (d *DefaultListener) OnMoveMade(info VersusWorkerInfo)     {}
func (d *DefaultListener) OnFinishedGame(info VersusWorkerInfo) {}
func (d *DefaultListener) OnFinishedWork(info VersusWorkerInfo) {}
func (d *DefaultListener) Summary(summary VersusSummaryInfo)    {}
func (d *DefaultListener) OnEnd()                               {}
func (d *DefaultListener) Clone() ListenerLike                  { return &DefaultListener{} }

// Reports finished games and the summary through the global logger,
// moves are logged at debug level
type LogListener struct {
	row    int
	logger zerolog.Logger
}

func NewLogListener() *LogListener {
	return &LogListener{logger: log.Logger}
}

func (l *LogListener) SetRow(row int) {
	l.row = row
	l.logger = log.With().Int("worker", row).Logger()
}

func (l *LogListener) OnStart() {
	l.logger.Info().Msg("arena started")
}

func (l *LogListener) OnGameStart() {}

func (l *LogListener) OnMoveMade(info VersusWorkerInfo) {
	l.logger.Debug().Int("game", info.FinishedGames+1).Interface("moves", info.Moves).Msg("move made")
}

func (l *LogListener) OnFinishedGame(info VersusWorkerInfo) {
	l.logger.Debug().
		Int("game", info.FinishedGames+1).
		Int("of", info.NGames).
		Interface("moves", info.Moves).
		Msg("game finished")
}

func (l *LogListener) OnFinishedWork(info VersusWorkerInfo) {
	l.logger.Info().
		Int("games", info.NGames).
		Int("p1_wins", info.P1Wins).
		Int("p2_wins", info.P2Wins).
		Int("draws", info.Draws).
		Msg("worker finished")
}

func (l *LogListener) Summary(s VersusSummaryInfo) {
	l.logger.Info().
		Str("p1", s.P1Name).
		Str("p2", s.P2Name).
		Int("games", s.TotalGames).
		Int("p1_wins", s.P1Wins).
		Int("p2_wins", s.P2Wins).
		Int("draws", s.Draws).
		Uint64("nodes", s.Nodes).
		Dur("elapsed", s.Elapsed).
		Msg("arena summary")
}

func (l *LogListener) OnEnd() {
	l.logger.Info().Msg("arena finished")
}

func (l *LogListener) Clone() ListenerLike {
	return &LogListener{row: l.row, logger: l.logger}
}
