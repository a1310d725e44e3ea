package tinder

import (
	"context"
	"fmt"
)

// TeaserCount is the number of people who already liked the account.
type TeaserCount struct {
	Count int `json:"count"`
}

// Teaser is a blurred profile of someone who already liked the account.
// Only the photos are usable to recognise them among recommendations.
type Teaser struct {
	Type string   `json:"type,omitempty"`
	User UserInfo `json:"user,omitempty"`
}

func (c *Client) getTeaserCount(ctx context.Context) (*TeaserCount, error) {
	url := fmt.Sprintf("%s%s", c.APIURL, teaserCountPath)

	var response struct {
		Data TeaserCount `json:"data"`
	}
	if err := c.getJSON(ctx, url, &response); err != nil {
		return nil, fmt.Errorf("get teaser count: %w", err)
	}

	return &response.Data, nil
}

func (c *Client) getTeasers(ctx context.Context) ([]*Teaser, error) {
	url := fmt.Sprintf("%s%s", c.APIURL, teasersPath)

	items, err := c.GetItems(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("get teasers: %w", err)
	}

	teasers := make([]*Teaser, 0, len(items))
	if err := decodeItems(items, &teasers); err != nil {
		return nil, fmt.Errorf("decode teasers: %w", err)
	}

	return teasers, nil
}
