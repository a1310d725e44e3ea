package tinder

import (
	"context"
	"fmt"
)

const recommendationTypeUser = "user"

type Recommendation struct {
	Type     string   `json:"type,omitempty"`
	UserInfo UserInfo `json:"user,omitempty"`
}

type UserInfo struct {
	ID     string   `json:"_id,omitempty"`
	Name   string   `json:"name,omitempty"`
	Bio    string   `json:"bio,omitempty"`
	Photos []*Photo `json:"photos,omitempty"`
}

type Photo struct {
	ID  string `json:"id,omitempty"`
	URL string `json:"url,omitempty"`
}

func (c *Client) getRecommendations(ctx context.Context) ([]*Recommendation, error) {
	url := fmt.Sprintf("%s%s", c.APIURL, recsPath)

	items, err := c.GetItems(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("get recommendations: %w", err)
	}

	// Tinder answers with an empty data object when it has run out of profiles for now.
	if len(items) == 0 {
		return nil, nil
	}

	var recs []*Recommendation
	if err := decodeItems(items, &recs); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}

	users := make([]*Recommendation, 0, len(recs))
	for _, rec := range recs {
		if rec == nil || rec.UserInfo.ID == "" {
			continue
		}
		// Ads and other cards carry no profile to like.
		if rec.Type != "" && rec.Type != recommendationTypeUser {
			continue
		}
		users = append(users, rec)
	}

	// A page of ads only is as good as no page at all.
	if len(users) == 0 {
		return nil, nil
	}

	return users, nil
}

// PhotoIDs returns the photo identifiers in the order Tinder sent them.
func (u *UserInfo) PhotoIDs() []string {
	ids := make([]string, 0, len(u.Photos))
	for _, photo := range u.Photos {
		if photo == nil || photo.ID == "" {
			continue
		}
		ids = append(ids, photo.ID)
	}

	return ids
}
