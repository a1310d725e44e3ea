package tinder

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

// LikeResult is the outcome of a single like action.
// LikesRemaining is authoritative: Tinder may grant or take likes at any moment.
type LikeResult struct {
	LikesRemaining int
	// Match is set only when the like was reciprocated.
	Match *Match
}

type Match struct {
	ID string `json:"_id,omitempty"`
}

type likeResponse struct {
	Status           int   `json:"status"`
	Match            any   `json:"match"`
	LikesRemaining   int   `json:"likes_remaining"`
	RateLimitedUntil int64 `json:"rate_limited_until"`
}

func (c *Client) like(ctx context.Context, id string) (*LikeResult, error) {
	if id == "" {
		return nil, errors.New("candidate id is required")
	}

	likeURL := fmt.Sprintf("%s%s/%s", c.APIURL, likePath, url.PathEscape(id))

	var raw map[string]any
	if err := c.getJSON(ctx, likeURL, &raw); err != nil {
		return nil, fmt.Errorf("like %s: %w", id, err)
	}

	var response likeResponse
	if err := decodeItems(raw, &response); err != nil {
		return nil, fmt.Errorf("decode like response: %w", err)
	}

	if response.RateLimitedUntil > 0 {
		c.logger.Debug("likes are rate limited", zap.Int64("rate_limited_until", response.RateLimitedUntil))
	}

	result := &LikeResult{LikesRemaining: response.LikesRemaining}

	// match is `false` for one-sided likes and an object for mutual ones.
	if m, ok := response.Match.(map[string]any); ok {
		var match Match
		if err := decodeItems(m, &match); err != nil {
			return nil, fmt.Errorf("decode match: %w", err)
		}
		result.Match = &match
	}

	return result, nil
}
