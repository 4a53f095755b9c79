package crawl_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mrTr1cky/spyder"
	"github.com/mrTr1cky/spyder/crawl"
	"github.com/mrTr1cky/spyder/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCoordinator(fetcher spyder.Fetcher, extractor spyder.LinkExtractor, concurrency int) *crawl.Coordinator {
	return &crawl.Coordinator{
		Crawler:     crawl.NewCrawler(fetcher, extractor, crawl.NewVisitedSet(0)),
		Prober:      &crawl.Prober{Fetcher: fetcher},
		Concurrency: concurrency,
	}
}

func TestCoordinator_Run(t *testing.T) {
	t.Parallel()

	t.Run("crawls and probes a domain", func(t *testing.T) {
		t.Parallel()

		s := site{
			"http://ex.test/":      {"http://ex.test/a"},
			"http://ex.test/a":     {"http://ex.test/b", "http://ex.test/"},
			"http://ex.test/b":     {"http://ex.test/a"},
			"http://ex.test/admin": nil,
		}
		counter := newFetchCounter()
		c := newCoordinator(s.fetcher(counter, nil), s.extractor(), 0)

		result, err := c.Run(context.Background(), []string{"http://ex.test/"}, []string{"admin", "backup"})

		require.NoError(t, err)
		assert.Equal(t, []string{"http://ex.test/", "http://ex.test/a", "http://ex.test/b"}, result.Discovered)
		assert.Equal(t, 1, counter.get("http://ex.test/"))
		assert.Equal(t, 1, counter.get("http://ex.test/a"))
		assert.Equal(t, 1, counter.get("http://ex.test/b"))
		require.Len(t, result.Crawls, 1)
		require.Len(t, result.Probes, 1)
		assert.Equal(t, []string{"http://ex.test/admin"}, result.Probes[0].Valid)
		assert.Zero(t, result.Errors)
	})

	t.Run("a failing domain does not stop the others", func(t *testing.T) {
		t.Parallel()

		s := site{
			"http://ex.test/":  {"http://ex.test/a"},
			"http://ex.test/a": nil,
		}
		c := newCoordinator(s.fetcher(nil, down{"http://down.test/": true}), s.extractor(), 1)

		result, err := c.Run(context.Background(), []string{"not a url", "http://down.test/", "http://ex.test/"}, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"http://ex.test/", "http://ex.test/a"}, result.Discovered)
		assert.Equal(t, 2, result.Errors, "crawl and probe of the invalid domain")
		assert.Len(t, result.Crawls, 2)
	})

	t.Run("overlapping domains fetch shared pages once", func(t *testing.T) {
		t.Parallel()

		s := site{
			"http://ex.test/":       {"http://ex.test/shared"},
			"http://ex.test/docs":   {"http://ex.test/shared"},
			"http://ex.test/shared": {"http://ex.test/docs", "http://ex.test/"},
		}
		counter := newFetchCounter()
		c := newCoordinator(s.fetcher(counter, nil), s.extractor(), 4)

		result, err := c.Run(context.Background(), []string{"http://ex.test/", "http://ex.test/docs"}, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"http://ex.test/", "http://ex.test/docs", "http://ex.test/shared"}, result.Discovered)
		for url, n := range counter.snapshot() {
			assert.Equal(t, 1, n, "fetch count for %s", url)
		}
	})

	t.Run("runs at most Concurrency units at once", func(t *testing.T) {
		t.Parallel()

		var inFlight, peak atomic.Int64
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) spyder.FetchOutcome {
				n := inFlight.Add(1)
				defer inFlight.Add(-1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				return spyder.FetchOutcome{Kind: spyder.FetchOK, URL: url, Status: 200, Body: ""}
			},
		}
		extractor := &mock.LinkExtractor{
			ExtractFn: func(_, _ string) ([]string, error) { return nil, nil },
		}
		c := newCoordinator(fetcher, extractor, 2)

		domains := make([]string, 6)
		for i := range domains {
			domains[i] = fmt.Sprintf("http://d%d.test/", i)
		}

		result, err := c.Run(context.Background(), domains, []string{"admin"})

		require.NoError(t, err)
		assert.Len(t, result.Discovered, len(domains))
		assert.LessOrEqual(t, peak.Load(), int64(2))
	})

	t.Run("rejects an empty domain list", func(t *testing.T) {
		t.Parallel()

		c := newCoordinator(&mock.Fetcher{}, &mock.LinkExtractor{}, 0)

		result, err := c.Run(context.Background(), nil, []string{"admin"})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, spyder.EINVALID, spyder.ErrorCode(err))
	})
}
