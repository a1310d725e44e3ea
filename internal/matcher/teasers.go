package matcher

import (
	"context"
	"fmt"
)

// TeaserSet holds photo ids of everyone who already liked the account.
type TeaserSet map[string]struct{}

func (s TeaserSet) Contains(photoID string) bool {
	_, ok := s[photoID]
	return ok
}

func (s TeaserSet) Len() int { return len(s) }

// BuildTeaserSet fetches teasers and flattens their photo ids.
func BuildTeaserSet(ctx context.Context, feed TeaserFeed) (TeaserSet, error) {
	teasers, err := feed.GetTeasers(ctx)
	if err != nil {
		return nil, fmt.Errorf("build teaser set: %w", err)
	}

	set := make(TeaserSet)
	for _, teaser := range teasers {
		if teaser == nil {
			continue
		}
		for _, id := range teaser.User.PhotoIDs() {
			set[id] = struct{}{}
		}
	}

	return set, nil
}

// TeaserCount returns how many people liked the account. It is only logged.
func TeaserCount(ctx context.Context, feed TeaserFeed) (int, error) {
	teaser, err := feed.GetTeaser(ctx)
	if err != nil {
		return 0, fmt.Errorf("get teaser count: %w", err)
	}

	if teaser == nil {
		return 0, nil
	}

	return teaser.Count, nil
}
