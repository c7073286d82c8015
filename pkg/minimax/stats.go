package minimax

import (
	"fmt"
	"time"
)

// Counters of a single search, owned by the caller that started it
type Stats struct {
	// minimax invocations
	Nodes uint64
	// alpha-beta cutoffs that skipped at least one move
	Cutoffs uint64
	Elapsed time.Duration
}

// Add the counters of another search to this one
func (s *Stats) Add(other Stats) {
	s.Nodes += other.Nodes
	s.Cutoffs += other.Cutoffs
	s.Elapsed += other.Elapsed
}

// Nodes per second, 0 if the elapsed time wasn't measured
func (s Stats) Nps() uint64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return uint64(float64(s.Nodes) / s.Elapsed.Seconds())
}

func (s Stats) String() string {
	return fmt.Sprintf("nodes %d cutoffs %d time %s nps %d", s.Nodes, s.Cutoffs, s.Elapsed, s.Nps())
}
