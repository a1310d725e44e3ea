package tinder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	apiURL    = "https://api.gotinder.com"
	userAgent = "spigell/automatcher"
	platform  = "web"

	pingPath        = "/v2/meta"
	teaserCountPath = "/v2/fast-match/count"
	teasersPath     = "/v2/fast-match/teasers"
	recsPath        = "/v2/recs/core"
	likePath        = "/like"
)

type Client struct {
	token      uuid.UUID
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

func New(logger *zap.Logger, token uuid.UUID) *Client {
	return &Client{
		token:  token,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:    logger,
		UserAgent: userAgent,
	}
}

// Ping reports the current location. Tinder treats it as a keep-alive as well.
func (c *Client) Ping(ctx context.Context, location Geolocation) error {
	url := fmt.Sprintf("%s%s", c.APIURL, pingPath)

	if err := c.postJSON(ctx, url, location, nil); err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	return nil
}

func (c *Client) GetTeaser(ctx context.Context) (*TeaserCount, error) {
	return c.getTeaserCount(ctx)
}

func (c *Client) GetTeasers(ctx context.Context) ([]*Teaser, error) {
	return c.getTeasers(ctx)
}

// GetRecommendations returns the next page of recommendations.
// A nil page without an error means the feed has nothing to offer right now.
func (c *Client) GetRecommendations(ctx context.Context) ([]*Recommendation, error) {
	return c.getRecommendations(ctx)
}

func (c *Client) Like(ctx context.Context, id string) (*LikeResult, error) {
	return c.like(ctx, id)
}
