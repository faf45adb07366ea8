package sheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
)

// ErrUnexpectedStatus is returned when the export endpoint answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected status from sheet export")

// ErrNotText is returned when the export endpoint answers with a non-text body.
var ErrNotText = errors.New("sheet export is not text")

// acceptHeader asks for the TSV export but tolerates plain text.
const acceptHeader = "text/tab-separated-values, text/plain;q=0.9, */*;q=0.1"

// Client fetches a published sheet export over HTTP.
type Client struct {
	url     string
	http    *http.Client
	timeout time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds the whole request. Zero keeps the client's own timeout.
// It applies to whichever HTTP client is in effect, in any option order.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient returns a Client for the export at url.
func NewClient(url string, opts ...ClientOption) *Client {
	c := &Client{url: url, http: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		clone := *c.http
		clone.Timeout = c.timeout
		c.http = &clone
	}
	return c
}

// URL returns the export address.
func (c *Client) URL() string {
	return c.url
}

// Fetch issues one GET for the export and returns the body as text.
// It does not retry.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("building sheet request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching sheet: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
	if err := checkTextContent(resp.Header.Get("Content-Type")); err != nil {
		return "", err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading sheet body: %w", err)
	}
	return string(body), nil
}

// checkTextContent accepts an empty content type or any text/* media type.
func checkTextContent(contentType string) error {
	if contentType == "" {
		return nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrNotText, contentType)
	}
	if !strings.HasPrefix(mediaType, "text/") {
		return fmt.Errorf("%w: %s", ErrNotText, mediaType)
	}
	return nil
}
