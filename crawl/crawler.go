// Package crawl provides the scan engine: a depth-bounded, origin-scoped
// link traversal, a wordlist prober, and the coordinator that runs both
// for every input domain on a bounded worker pool.
package crawl

import (
	"context"
	"log/slog"

	"github.com/mrTr1cky/spyder"
)

// DefaultMaxDepth is the default number of link hops followed from a root.
const DefaultMaxDepth = 3

// Crawler discovers same-origin URLs reachable from a root URL.
// A Crawler may run traversals for many roots concurrently; they share
// the Visited set, so each URL is fetched at most once across all of them.
type Crawler struct {
	Fetcher   spyder.Fetcher
	Extractor spyder.LinkExtractor
	Visited   spyder.VisitedSet
	Reporter  spyder.Reporter

	// Sitemaps, if set, seeds each traversal with the root's sitemap URLs.
	Sitemaps spyder.SitemapService

	// Logger receives diagnostics that are not scan results.
	Logger *slog.Logger

	// MaxDepth is the deepest link hop that is fetched. The root is depth 0.
	MaxDepth int

	// MaxPages caps the number of fetches per root. Zero means no cap.
	MaxPages int
}

// NewCrawler returns a Crawler with DefaultMaxDepth and no page cap.
func NewCrawler(fetcher spyder.Fetcher, extractor spyder.LinkExtractor, visited spyder.VisitedSet) *Crawler {
	return &Crawler{
		Fetcher:   fetcher,
		Extractor: extractor,
		Visited:   visited,
		MaxDepth:  DefaultMaxDepth,
	}
}

// CrawlResult holds the outcome of one root's traversal.
type CrawlResult struct {
	Root string

	// Visits lists the URLs this traversal fetched successfully.
	// URLs fetched first by another traversal are not repeated here.
	Visits []spyder.Visit

	// Fetched counts fetch attempts, Failed the attempts that were not HTTP 200.
	Fetched int
	Failed  int

	// Truncated is set when MaxPages stopped the traversal early.
	Truncated bool
}

// Crawl walks the link graph from root. The traversal is iterative: pending
// tasks live on a Frontier and the walk ends when it is empty.
//
// A task is discarded when its depth exceeds MaxDepth or when its URL was
// already claimed in the Visited set. Links leaving the root's origin are
// ignored. Fetch failures end the branch and are reported, never returned.
// The returned error is non-nil only for an invalid root or a cancelled
// context, in which case the partial result is returned as well.
func (c *Crawler) Crawl(ctx context.Context, root string) (*CrawlResult, error) {
	origin, err := spyder.OriginOf(root)
	if err != nil {
		return nil, err
	}

	result := &CrawlResult{Root: root}
	reporter := c.reporter()

	frontier := NewFrontier()
	if c.Sitemaps != nil && c.MaxDepth >= 1 {
		c.seedFromSitemaps(ctx, root, origin, frontier)
	}
	frontier.Push(spyder.CrawlTask{URL: root, Depth: 0})

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		task, ok := frontier.Pop()
		if !ok {
			break
		}
		if task.Depth > c.MaxDepth {
			continue
		}
		if c.MaxPages > 0 && result.Fetched >= c.MaxPages {
			// Only a task that would still be fetched is cut off.
			if c.Visited.Seen(task.URL) {
				continue
			}
			result.Truncated = true
			break
		}
		if !c.Visited.Claim(task.URL) {
			continue
		}

		result.Fetched++
		outcome := c.Fetcher.Fetch(ctx, task.URL)
		if !outcome.OK() {
			c.Visited.Resolve(task.URL, false)
			result.Failed++
			reporter.FetchFailed(outcome)
			continue
		}

		c.Visited.Resolve(task.URL, true)
		result.Visits = append(result.Visits, spyder.Visit{URL: task.URL, Depth: task.Depth})
		reporter.Discovered(task.URL, task.Depth)

		// Children of the deepest level would be discarded anyway.
		if task.Depth >= c.MaxDepth {
			continue
		}

		links, err := c.Extractor.Extract(outcome.Body, task.URL)
		if err != nil {
			c.logger().Debug("link extraction failed", "url", task.URL, "err", err)
			continue
		}

		// Push in reverse so links are visited in document order.
		for i := len(links) - 1; i >= 0; i-- {
			link := links[i]
			if !inOrigin(origin, link) || c.Visited.Seen(link) {
				continue
			}
			frontier.Push(spyder.CrawlTask{URL: link, Depth: task.Depth + 1})
		}
	}

	return result, nil
}

// seedFromSitemaps pushes the root's same-origin sitemap URLs as depth-1 tasks.
// Failures are logged and otherwise ignored.
func (c *Crawler) seedFromSitemaps(ctx context.Context, root string, origin spyder.Origin, frontier *Frontier) {
	urls, err := c.Sitemaps.DiscoverURLs(ctx, root)
	if err != nil {
		c.logger().Warn("sitemap seeding failed", "root", root, "err", err)
		return
	}
	for i := len(urls) - 1; i >= 0; i-- {
		if inOrigin(origin, urls[i]) {
			frontier.Push(spyder.CrawlTask{URL: urls[i], Depth: 1})
		}
	}
}

func (c *Crawler) reporter() spyder.Reporter {
	if c.Reporter == nil {
		return spyder.NopReporter{}
	}
	return c.Reporter
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// inOrigin reports whether rawURL belongs to origin.
// Unparseable URLs belong to no origin.
func inOrigin(origin spyder.Origin, rawURL string) bool {
	o, err := spyder.OriginOf(rawURL)
	if err != nil {
		return false
	}
	return o == origin
}
