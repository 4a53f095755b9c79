package spyder

// Reporter receives user-facing scan events.
// Implementations must be safe for concurrent use.
type Reporter interface {
	// Discovered is called once for every URL the crawl fetched successfully.
	Discovered(url string, depth int)

	// FetchFailed is called for every fetch that did not return HTTP 200.
	FetchFailed(outcome FetchOutcome)

	// ValidPath is called for every wordlist candidate that returned HTTP 200.
	ValidPath(url string)
}

// NopReporter is a Reporter that discards all events.
type NopReporter struct{}

func (NopReporter) Discovered(string, int) {}

func (NopReporter) FetchFailed(FetchOutcome) {}

func (NopReporter) ValidPath(string) {}
