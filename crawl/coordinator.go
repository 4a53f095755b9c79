package crawl

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/mrTr1cky/spyder"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the worker pool size used when Concurrency is not positive.
const DefaultConcurrency = 10

// Coordinator runs one crawl and one probe per domain on a bounded pool.
type Coordinator struct {
	Crawler     *Crawler
	Prober      *Prober
	Concurrency int
	Logger      *slog.Logger
}

// Result aggregates a finished run.
type Result struct {
	// Discovered is the content of the shared visited set: every URL any
	// traversal fetched successfully, sorted.
	Discovered []string

	Crawls []*CrawlResult
	Probes []*ProbeResult

	// Errors counts units that ended with an error.
	Errors int
}

// Run submits a crawl unit and a probe unit for every domain and waits for
// all of them. Units never cancel each other: an error in one is logged and
// counted, and every other unit still runs to completion.
func (c *Coordinator) Run(ctx context.Context, domains []string, wordlist []string) (*Result, error) {
	if len(domains) == 0 {
		return nil, spyder.Errorf(spyder.EINVALID, "no domains to scan")
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	crawls := make([]*CrawlResult, len(domains))
	probes := make([]*ProbeResult, len(domains))
	var errCount atomic.Int64

	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, domain := range domains {
		g.Go(func() error {
			res, err := c.Crawler.Crawl(ctx, domain)
			if err != nil {
				errCount.Add(1)
				logger.Error("crawl failed", "domain", domain, "err", err)
			}
			crawls[i] = res
			return nil
		})
		g.Go(func() error {
			res, err := c.Prober.Probe(ctx, domain, wordlist)
			if err != nil {
				errCount.Add(1)
				logger.Error("probe failed", "domain", domain, "err", err)
			}
			probes[i] = res
			return nil
		})
	}

	_ = g.Wait()

	result := &Result{
		Discovered: c.Crawler.Visited.Discovered(),
		Errors:     int(errCount.Load()),
	}
	for i := range domains {
		if crawls[i] != nil {
			result.Crawls = append(result.Crawls, crawls[i])
		}
		if probes[i] != nil {
			result.Probes = append(result.Probes, probes[i])
		}
	}
	return result, nil
}
