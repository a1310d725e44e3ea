// Package matcher drives the like loop: it converts teasers into matches first
// and spends whatever like budget is left on plain recommendations.
package matcher

import (
	"context"

	"github.com/spigell/automatcher/internal/tinder"
)

// Liker submits a like for a profile.
type Liker interface {
	Like(ctx context.Context, id string) (*tinder.LikeResult, error)
}

// Recommender returns pages of recommendations.
// A nil page without an error means the feed is temporarily empty.
type Recommender interface {
	GetRecommendations(ctx context.Context) ([]*tinder.Recommendation, error)
}

// TeaserFeed exposes the profiles that already liked the account.
type TeaserFeed interface {
	GetTeaser(ctx context.Context) (*tinder.TeaserCount, error)
	GetTeasers(ctx context.Context) ([]*tinder.Teaser, error)
}

// Feed is everything the matching loop needs from Tinder.
type Feed interface {
	Liker
	Recommender
	TeaserFeed
	Ping(ctx context.Context, location tinder.Geolocation) error
}

var _ Feed = (*tinder.Client)(nil)
