package matcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/spigell/automatcher/internal/tinder"
)

// ErrExhausted means Tinder has no recommendations right now. It is transient.
var ErrExhausted = errors.New("no recommendations available")

// Source fetches one page of recommendations per call and never retries.
type Source struct {
	feed Recommender
}

// NewSource wraps the feed.
func NewSource(feed Recommender) *Source {
	return &Source{feed: feed}
}

// Fetch returns one page, or ErrExhausted when the feed returned none.
func (s *Source) Fetch(ctx context.Context) ([]*tinder.Recommendation, error) {
	recs, err := s.feed.GetRecommendations(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch recommendations: %w", err)
	}

	if recs == nil {
		return nil, ErrExhausted
	}

	return recs, nil
}
