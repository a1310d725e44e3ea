package filtering

import (
	"github.com/spigell/automatcher/internal/tinder"
)

// PhotoIndex answers whether a photo belongs to someone who already liked us.
type PhotoIndex interface {
	Contains(photoID string) bool
	Len() int
}

type teasedFilter struct {
	index PhotoIndex
}

// NewTeased creates a filter that keeps recommendations sharing at least one photo with the index.
func NewTeased(index PhotoIndex) Filter {
	return &teasedFilter{index: index}
}

func (f *teasedFilter) Name() string { return "teased" }

func (f *teasedFilter) Match(rec *tinder.Recommendation) bool {
	if rec == nil || f.index == nil || f.index.Len() == 0 {
		return false
	}

	for _, photo := range rec.UserInfo.Photos {
		if photo != nil && f.index.Contains(photo.ID) {
			return true
		}
	}

	return false
}
