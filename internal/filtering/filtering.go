package filtering

import (
	"github.com/spigell/automatcher/internal/tinder"
)

// Filter decides whether a single recommendation passes a filtering step.
type Filter interface {
	Name() string
	Match(rec *tinder.Recommendation) bool
}

// Step describes the result of running a filter over recommendations.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Observe records one recommendation that went through a filter.
func (s *Step) Observe(kept bool) {
	s.Initial++
	if kept {
		s.Left++
		return
	}
	s.Dropped++
}

// Merge adds the counters of another step.
func (s *Step) Merge(other Step) {
	s.Initial += other.Initial
	s.Dropped += other.Dropped
	s.Left += other.Left
}
