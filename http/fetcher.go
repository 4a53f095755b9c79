// Package http provides HTTP implementations of spyder.Fetcher and
// spyder.SitemapService.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/mrTr1cky/spyder"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 5 * time.Second

// DefaultUserAgent is a desktop Chrome User-Agent sent with every request.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements spyder.Fetcher at compile time.
var _ spyder.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents using a single HTTP GET per URL.
// It does not execute JavaScript and never retries.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (5s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient sets the underlying HTTP client. The client's Timeout is
// replaced by the fetcher timeout.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{}
	} else {
		c := *f.client
		f.client = &c
	}
	f.client.Timeout = f.timeout

	return f
}

// Fetch issues one GET for url. Only HTTP 200 is a success; the body is
// decoded to UTF-8 using the charset announced by the response.
func (f *Fetcher) Fetch(ctx context.Context, url string) spyder.FetchOutcome {
	outcome := spyder.FetchOutcome{URL: url}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		outcome.Kind = spyder.FetchTransportError
		outcome.Err = err
		return outcome
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		outcome.Kind = spyder.FetchTransportError
		outcome.Err = err
		return outcome
	}
	defer resp.Body.Close()

	outcome.Status = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		outcome.Kind = spyder.FetchHTTPError
		return outcome
	}

	body, err := readBody(resp)
	if err != nil {
		outcome.Kind = spyder.FetchTransportError
		outcome.Err = err
		return outcome
	}

	outcome.Kind = spyder.FetchOK
	outcome.Body = body
	return outcome
}

// readBody reads the response body, converting it to UTF-8.
func readBody(resp *http.Response) (string, error) {
	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err == io.EOF {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
