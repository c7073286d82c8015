package bench

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"gopkg.in/yaml.v3"

	"github.com/IlikeChooros/go-minimax/pkg/config"
)

func sampleReport() Report {
	return Report{
		Repeat: 3,
		Scenarios: []Comparison{{
			Name:     "Empty Board",
			Position: "3/3/3",
			Mover:    "x",
			Minimax: Measurement{
				Nodes:   549945,
				Mean:    120 * time.Millisecond,
				StdDev:  5 * time.Millisecond,
				Samples: []time.Duration{115 * time.Millisecond, 120 * time.Millisecond, 125 * time.Millisecond},
			},
			AlphaBeta: Measurement{
				Nodes:   20000,
				Cutoffs: 9000,
				Mean:    6 * time.Millisecond,
				Samples: []time.Duration{6 * time.Millisecond},
			},
			NodeImprovement: 96.4,
			TimeImprovement: 95,
		}},
		Arena: &VersusSummaryInfo{TotalGames: 10, Draws: 10, Workers: 2, P1Name: "alphabeta", P2Name: "minimax"},
	}
}

func TestReportText(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	is.NoErr(sampleReport().Write(&buf, config.FormatText, nil))

	out := buf.String()
	is.True(strings.Contains(out, "Empty Board (3/3/3, x to move)"))
	is.True(strings.Contains(out, "Standard Minimax:   0.1200s ± 0.0050s, 549945 nodes evaluated"))
	is.True(strings.Contains(out, "Alpha-Beta Pruning: 0.0060s, 20000 nodes evaluated, 9000 cutoffs"))
	is.True(strings.Contains(out, "95.0% faster, 96.4% fewer nodes"))
	is.True(strings.Contains(out, "alphabeta vs minimax, 10 games on 2 workers"))
	is.True(!strings.Contains(out, "\x1b[")) // ascii profile, no escape codes
}

func TestReportJSON(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	is.NoErr(sampleReport().Write(&buf, config.FormatJSON, nil))

	var decoded Report
	is.NoErr(json.Unmarshal(buf.Bytes(), &decoded))
	is.Equal(decoded.Repeat, 3)
	is.Equal(len(decoded.Scenarios), 1)
	is.Equal(decoded.Scenarios[0].Minimax.Nodes, uint64(549945))
	is.True(decoded.Scenarios[0].Minimax.Samples == nil) // samples stay out of the report
	is.Equal(decoded.Arena.Draws, 10)
}

func TestReportYAML(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	is.NoErr(sampleReport().Write(&buf, config.FormatYAML, nil))

	var decoded map[string]any
	is.NoErr(yaml.Unmarshal(buf.Bytes(), &decoded))
	is.Equal(decoded["repeat"], 3)
	is.True(decoded["arena"] != nil)
	is.Equal(len(decoded["scenarios"].([]any)), 1)
}

func TestReportUnknownFormat(t *testing.T) {
	is := is.New(t)
	err := sampleReport().Write(&bytes.Buffer{}, "xml", nil)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "xml"))
}

func TestWriteHistograms(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	is.NoErr(WriteHistograms(&buf, sampleReport().Scenarios, 20))

	out := buf.String()
	is.True(strings.Contains(out, "Empty Board, minimax:"))
	is.True(strings.Contains(out, "Empty Board, alphabeta:"))
	is.True(strings.Contains(out, "ms"))
}
