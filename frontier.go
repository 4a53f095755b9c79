package spyder

// CrawlTask is a URL scheduled for a visit at a given link depth from its root.
type CrawlTask struct {
	URL   string
	Depth int
}

// Visit records a successfully fetched URL and the depth it was found at.
type Visit struct {
	URL   string
	Depth int
}

// VisitedSet is the process-wide record of URLs the crawl has touched.
// It is shared by every concurrent traversal and must be safe for
// concurrent use.
type VisitedSet interface {
	// Claim atomically marks url as visited. It returns true only for the
	// first caller; every later caller must not fetch url.
	Claim(url string) bool

	// Resolve records the result of the fetch for a claimed url.
	// Only URLs resolved with ok=true are reported by Discovered.
	Resolve(url string, ok bool)

	// Seen returns true if url has been claimed.
	Seen(url string) bool

	// Discovered returns every successfully fetched URL in sorted order.
	Discovered() []string

	// Len returns the number of successfully fetched URLs.
	Len() int
}
