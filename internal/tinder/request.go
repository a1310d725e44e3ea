package tinder

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const (
	contentType     = "application/json"
	contentEncoding = "gzip"
)

// DataResponse is the common envelope of Tinder v2 endpoints.
type DataResponse struct {
	Meta struct {
		Status int `json:"status"`
	} `json:"meta"`
	Data map[string]any `json:"data"`
}

type Item interface{}

// GetItems makes GET request to Tinder API and returns raw items stored under data.results.
// A nil slice is returned when the response carries no results key.
func (c *Client) GetItems(ctx context.Context, url string) ([]Item, error) {
	var response *DataResponse
	if err := c.getJSON(ctx, url, &response); err != nil {
		return nil, err
	}

	if response == nil || response.Data == nil {
		return nil, nil
	}

	raw, ok := response.Data["results"]
	if !ok || raw == nil {
		c.logger.Debug("no results in response", zap.String("url", url))
		return nil, nil
	}

	results, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected results type %T", raw)
	}

	items := make([]Item, 0, len(results))
	for _, r := range results {
		items = append(items, r)
	}

	return items, nil
}

func (c *Client) getJSON(ctx context.Context, url string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	req = c.setHeaders(req)
	req.Header.Set("Content-Type", contentType)

	return c.do(req, target)
}

func (c *Client) postJSON(ctx context.Context, url string, payload, target interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req = c.setHeaders(req)
	req.Header.Set("Content-Type", contentType)

	return c.do(req, target)
}

func (c *Client) do(req *http.Request, target interface{}) error {
	resp, err := c.request(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return err
		}
		defer gzipReader.Close()
		reader = gzipReader
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	if target == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	return json.Unmarshal(data, target)
}

func (c *Client) request(req *http.Request) (*http.Response, error) {
	c.logger.Debug("make request", zap.String("method", req.Method), zap.String("url", req.URL.String()))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	req.Header.Set("X-Auth-Token", c.token.String())
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept-Encoding", contentEncoding)
	req.Header.Set("platform", platform)

	return req
}

// decodeItems decodes generic JSON values into typed structs using json tags.
func decodeItems(input any, result any) error {
	cfg := &mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           result,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}
