package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

var ErrPruningMismatch = errors.New("bench: pruned and unpruned search disagree")

// Fixed position to compare the plain and the pruned search on
type Scenario struct {
	Name     string
	Notation string
}

// Side to move in the scenario, cross is assumed to have opened the game
func (s Scenario) Mover(pos *ttt.Position) ttt.Mark {
	return pos.SideToMove(ttt.Cross)
}

// Empty board, x0 o4 x1 and x0 o1 x3 o4
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "Empty Board", Notation: ttt.StartingPosition},
		{Name: "Mid Game", Notation: "xx1/1o1/3"},
		{Name: "End Game", Notation: "xo1/xo1/3"},
	}
}

// Search statistics of one algorithm on one scenario
type Measurement struct {
	Nodes   uint64          `json:"nodes" yaml:"nodes"`
	Cutoffs uint64          `json:"cutoffs" yaml:"cutoffs"`
	Mean    time.Duration   `json:"mean_ns" yaml:"mean"`
	StdDev  time.Duration   `json:"stddev_ns" yaml:"stddev"`
	Samples []time.Duration `json:"-" yaml:"-"`
}

type Comparison struct {
	Name            string      `json:"name" yaml:"name"`
	Position        string      `json:"position" yaml:"position"`
	Mover           string      `json:"mover" yaml:"mover"`
	Move            int         `json:"move" yaml:"move"`
	Score           int         `json:"score" yaml:"score"`
	Minimax         Measurement `json:"minimax" yaml:"minimax"`
	AlphaBeta       Measurement `json:"alphabeta" yaml:"alphabeta"`
	NodeImprovement float64     `json:"node_improvement_pct" yaml:"node_improvement_pct"`
	TimeImprovement float64     `json:"time_improvement_pct" yaml:"time_improvement_pct"`
}

// Runs the scenarios with and without pruning
type Runner struct {
	repeat   int
	parallel bool
}

func NewRunner() *Runner {
	return &Runner{repeat: 1}
}

// Number of timed searches per scenario and algorithm
func (r *Runner) SetRepeat(repeat int) *Runner {
	r.repeat = max(repeat, 1)
	return r
}

// Run the scenarios concurrently, each on its own position. Timings get
// noisier, node counts are unaffected.
func (r *Runner) SetParallel(parallel bool) *Runner {
	r.parallel = parallel
	return r
}

// Compare the plain and the pruned search on every scenario, results keep the scenario order
func (r *Runner) Compare(ctx context.Context, scenarios []Scenario) ([]Comparison, error) {
	results := make([]Comparison, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	if !r.parallel {
		g.SetLimit(1)
	}

	for i, scenario := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			comparison, err := r.compare(scenario)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", scenario.Name, err)
			}
			results[i] = comparison
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) compare(scenario Scenario) (Comparison, error) {
	pos, err := ttt.FromNotation(scenario.Notation)
	if err != nil {
		return Comparison{}, err
	}
	if pos.IsTerminated() {
		return Comparison{}, fmt.Errorf("position %s is terminated", pos)
	}

	mover := scenario.Mover(pos)
	plain, plainResult := r.measure(pos, mover, false)
	pruned, prunedResult := r.measure(pos, mover, true)

	if plainResult.Move != prunedResult.Move || plainResult.Score != prunedResult.Score {
		return Comparison{}, fmt.Errorf("%w: %v/%d vs %v/%d", ErrPruningMismatch,
			plainResult.Move, plainResult.Score, prunedResult.Move, prunedResult.Score)
	}

	comparison := Comparison{
		Name:            scenario.Name,
		Position:        pos.Notation(),
		Mover:           mover.String(),
		Move:            int(prunedResult.Move),
		Score:           int(prunedResult.Score),
		Minimax:         plain,
		AlphaBeta:       pruned,
		NodeImprovement: improvement(float64(pruned.Nodes), float64(plain.Nodes)),
		TimeImprovement: improvement(float64(pruned.Mean), float64(plain.Mean)),
	}

	log.Debug().
		Str("scenario", scenario.Name).
		Uint64("minimax_nodes", plain.Nodes).
		Uint64("alphabeta_nodes", pruned.Nodes).
		Dur("minimax_mean", plain.Mean).
		Dur("alphabeta_mean", pruned.Mean).
		Msg("scenario compared")
	return comparison, nil
}

// Search a private copy of the position 'repeat' times
func (r *Runner) measure(pos *ttt.Position, mover ttt.Mark, pruning bool) (Measurement, minimax.Result) {
	engine := minimax.NewEngine(mover).SetPruning(pruning)
	own := pos.Clone()

	var result minimax.Result
	m := Measurement{Samples: make([]time.Duration, 0, r.repeat)}
	samples := make([]float64, 0, r.repeat)
	for range r.repeat {
		result = engine.SelectBestMove(own)
		m.Samples = append(m.Samples, result.Elapsed)
		samples = append(samples, float64(result.Elapsed))
	}

	m.Nodes = result.Nodes
	m.Cutoffs = result.Cutoffs
	if len(samples) > 1 {
		mean, std := stat.MeanStdDev(samples, nil)
		m.Mean, m.StdDev = time.Duration(mean), time.Duration(std)
	} else {
		m.Mean = time.Duration(samples[0])
	}
	return m, result
}

// Percentage saved by 'improved' compared to 'base'
func improvement(improved, base float64) float64 {
	if base <= 0 {
		return 0
	}
	return (1 - improved/base) * 100
}
