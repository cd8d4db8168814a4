// Package ocr extracts text from receipt images via an external OCR engine.
//
// Structured extraction of amounts, dates and merchants from the raw text is
// not implemented. Callers must treat those fields as always unset.
package ocr

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// LineItem is a single position on a receipt.
type LineItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Receipt is the parse result for an uploaded receipt image.
type Receipt struct {
	Text     string           `json:"text"`
	Amount   *decimal.Decimal `json:"amount"`
	Date     *time.Time       `json:"date"`
	Merchant *string          `json:"merchant"`
	Items    []LineItem       `json:"items"`
}

// Client talks to the OCR engine.
type Client struct {
	client *resty.Client
}

// New returns a client for the given OCR engine endpoint.
func New(baseURL string) *Client {
	return &Client{
		client: resty.New().SetBaseURL(baseURL),
	}
}

// ExtractText sends the image to the OCR engine and returns the raw text.
func (c *Client) ExtractText(ctx context.Context, image []byte) (string, error) {
	var body struct {
		Text string `json:"text"`
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(image).
		SetResult(&body).
		Post("/recognize")
	if err != nil {
		return "", fmt.Errorf("text extraction failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("text extraction failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	return body.Text, nil
}

// ParseReceipt extracts the text of a receipt image.
//
// TODO: derive amount, date and merchant from the raw text with regexes and
// heuristics.
func (c *Client) ParseReceipt(ctx context.Context, image []byte) (Receipt, error) {
	text, err := c.ExtractText(ctx, image)
	if err != nil {
		return Receipt{}, err
	}

	return Receipt{
		Text:  text,
		Items: []LineItem{},
	}, nil
}
