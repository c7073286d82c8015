package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/IlikeChooros/go-minimax/pkg/config"
)

const histogramBins = 5

type Report struct {
	Repeat    int                `json:"repeat" yaml:"repeat"`
	Scenarios []Comparison       `json:"scenarios" yaml:"scenarios"`
	Arena     *VersusSummaryInfo `json:"arena,omitempty" yaml:"arena,omitempty"`
}

// Write the report in one of the config formats. 'out' styles the text
// format, nil means plain ascii.
func (r Report) Write(w io.Writer, format string, out *termenv.Output) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatText, "":
		if out == nil {
			out = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
		}
		return r.writeText(w, out)
	}
	return fmt.Errorf("%w: unknown report format %q", config.ErrInvalidConfig, format)
}

func (r Report) writeText(w io.Writer, out *termenv.Output) error {
	header := func(s string) termenv.Style {
		return out.String(s).Bold()
	}
	good := func(s string) termenv.Style {
		return out.String(s).Foreground(out.Color("2"))
	}

	for _, c := range r.Scenarios {
		_, err := fmt.Fprintf(w, "%s (%s, %s to move): best %d score %d\n",
			header(c.Name), c.Position, c.Mover, c.Move, c.Score)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  Standard Minimax:   %s, %d nodes evaluated\n",
			formatTiming(c.Minimax), c.Minimax.Nodes)
		fmt.Fprintf(w, "  Alpha-Beta Pruning: %s, %d nodes evaluated, %d cutoffs\n",
			formatTiming(c.AlphaBeta), c.AlphaBeta.Nodes, c.AlphaBeta.Cutoffs)
		fmt.Fprintf(w, "  Improvement: %s faster, %s fewer nodes\n\n",
			good(fmt.Sprintf("%.1f%%", c.TimeImprovement)),
			good(fmt.Sprintf("%.1f%%", c.NodeImprovement)))
	}

	if a := r.Arena; a != nil {
		fmt.Fprintf(w, "%s %s vs %s, %d games on %d workers\n",
			header("Arena"), a.P1Name, a.P2Name, a.TotalGames, a.Workers)
		fmt.Fprintf(w, "  %s wins: %d, %s wins: %d, draws: %d\n",
			a.P1Name, a.P1Wins, a.P2Name, a.P2Wins, a.Draws)
		fmt.Fprintf(w, "  first to move wins: %d, second to move wins: %d\n",
			a.FirstToMoveWins, a.SecondToMoveWins)
		fmt.Fprintf(w, "  %d nodes in %s\n", a.Nodes, a.Elapsed.Round(time.Millisecond))
	}
	return nil
}

func formatTiming(m Measurement) string {
	if m.StdDev == 0 {
		return fmt.Sprintf("%.4fs", m.Mean.Seconds())
	}
	return fmt.Sprintf("%.4fs ± %.4fs", m.Mean.Seconds(), m.StdDev.Seconds())
}

// Print a histogram of the search timings (in milliseconds) of every scenario and algorithm
func WriteHistograms(w io.Writer, comparisons []Comparison, width int) error {
	for _, c := range comparisons {
		for _, part := range []struct {
			name string
			m    Measurement
		}{
			{"minimax", c.Minimax},
			{"alphabeta", c.AlphaBeta},
		} {
			if len(part.m.Samples) == 0 {
				continue
			}
			data := make([]float64, len(part.m.Samples))
			for i, d := range part.m.Samples {
				data[i] = float64(d) / float64(time.Millisecond)
			}

			if _, err := fmt.Fprintf(w, "%s, %s:\n", c.Name, part.name); err != nil {
				return err
			}
			h := histogram.Hist(histogramBins, data)
			err := histogram.Fprintf(w, h, histogram.Linear(width), func(v float64) string {
				return fmt.Sprintf("%.3fms", v)
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}
