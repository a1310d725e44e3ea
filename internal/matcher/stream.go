package matcher

import (
	"context"

	"github.com/spigell/automatcher/internal/filtering"
	"github.com/spigell/automatcher/internal/tinder"
)

// PageFunc returns the next page of recommendations.
type PageFunc func(ctx context.Context) ([]*tinder.Recommendation, error)

// TeasedStream lazily yields recommendations accepted by the filter.
//
// It keeps fetching pages while the previous page produced at least one match
// and stops after the first page without any. Later pages are never looked at
// once that happens, even if they would have matched.
type TeasedStream struct {
	pages  PageFunc
	filter filtering.Filter

	page    []*tinder.Recommendation
	pos     int
	matched bool
	started bool
	done    bool

	fetched int
	step    filtering.Step
}

func NewTeasedStream(pages PageFunc, filter filtering.Filter) *TeasedStream {
	return &TeasedStream{pages: pages, filter: filter}
}

// Next returns the next matching recommendation or nil when the stream is over.
func (s *TeasedStream) Next(ctx context.Context) (*tinder.Recommendation, error) {
	for !s.done {
		if s.pos >= len(s.page) {
			if s.started && !s.matched {
				s.done = true
				break
			}

			page, err := s.pages(ctx)
			if err != nil {
				s.done = true
				return nil, err
			}

			s.page, s.pos = page, 0
			s.matched, s.started = false, true
			s.fetched++
			continue
		}

		rec := s.page[s.pos]
		s.pos++

		ok := s.filter.Match(rec)
		s.step.Observe(ok)
		if ok {
			s.matched = true
			return rec, nil
		}
	}

	return nil, nil
}

// Stats reports how many pages were fetched and how many recommendations were scanned.
func (s *TeasedStream) Stats() (int, filtering.Step) {
	return s.fetched, s.step
}
