// Package storage uploads receipt files to the managed object storage and
// returns their public URLs.
package storage

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Client talks to the object storage API of the managed backend.
type Client struct {
	client *resty.Client
	bucket string
}

// New returns a client for the given storage endpoint and bucket.
func New(baseURL, apiKey, bucket string) *Client {
	return &Client{
		client: resty.New().
			SetBaseURL(baseURL).
			SetHeader("apikey", apiKey).
			SetAuthToken(apiKey),
		bucket: bucket,
	}
}

// Upload stores the object under the given path and returns its public URL.
// Existing objects are not overwritten.
func (c *Client) Upload(ctx context.Context, path, contentType string, body []byte) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		Post(fmt.Sprintf("/storage/v1/object/%s/%s", c.bucket, path))
	if err != nil {
		return "", fmt.Errorf("receipt upload failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("receipt upload failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.client.BaseURL, c.bucket, path), nil
}
