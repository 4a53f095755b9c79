package crawl_test

import (
	"context"
	"errors"
	"sync"

	"github.com/mrTr1cky/spyder"
	"github.com/mrTr1cky/spyder/mock"
)

// site is an in-memory link graph mapping a page URL to its outgoing links.
// Fetching a page returns its URL as the body so the extractor can look
// the links up again.
type site map[string][]string

// down lists URLs that fail with a transport error instead of a 404.
type down map[string]bool

// fetchCounter counts fetches per URL. It is safe for concurrent use.
type fetchCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

func newFetchCounter() *fetchCounter {
	return &fetchCounter{counts: make(map[string]int)}
}

func (c *fetchCounter) add(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[url]++
}

func (c *fetchCounter) get(url string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[url]
}

func (c *fetchCounter) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.counts {
		n += v
	}
	return n
}

func (c *fetchCounter) snapshot() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	m := make(map[string]int, len(c.counts))
	for k, v := range c.counts {
		m[k] = v
	}
	return m
}

func (s site) fetcher(counter *fetchCounter, unreachable down) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) spyder.FetchOutcome {
			if counter != nil {
				counter.add(url)
			}
			if unreachable[url] {
				return spyder.FetchOutcome{
					Kind: spyder.FetchTransportError,
					URL:  url,
					Err:  errors.New("connection refused"),
				}
			}
			if _, ok := s[url]; !ok {
				return spyder.FetchOutcome{Kind: spyder.FetchHTTPError, URL: url, Status: 404}
			}
			return spyder.FetchOutcome{Kind: spyder.FetchOK, URL: url, Status: 200, Body: url}
		},
	}
}

func (s site) extractor() *mock.LinkExtractor {
	return &mock.LinkExtractor{
		ExtractFn: func(html, _ string) ([]string, error) {
			return s[html], nil
		},
	}
}
