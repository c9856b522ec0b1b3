// Package ingestion imports job postings from external job board URLs into
// draft jobs ready for review.
package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the HTTP request timeout for posting fetches.
const DefaultTimeout = 30 * time.Second

// defaultUserAgent identifies the importer to job boards.
const defaultUserAgent = "Mozilla/5.0 (compatible; TalentHub/1.0)"

// maxBodyBytes caps how much of a posting page is read.
const maxBodyBytes = 4 << 20

// FetchError describes a failed posting fetch.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Fetcher retrieves posting pages over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with the default timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: DefaultTimeout}}
}

// FetchHTML retrieves the HTML of a posting page.
func (f *Fetcher) FetchHTML(ctx context.Context, urlStr string) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &FetchError{URL: urlStr, Message: "invalid URL", Cause: err}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", &FetchError{URL: urlStr, Message: "unsupported scheme " + parsed.Scheme}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to read response body", Cause: err}
	}
	return string(body), nil
}
