package mock

import (
	"sync"

	"github.com/mrTr1cky/spyder"
)

var _ spyder.Reporter = (*Reporter)(nil)

// Reporter is a mock implementation of spyder.Reporter.
// Nil funcs are ignored so tests can set only the events they inspect.
type Reporter struct {
	DiscoveredFn  func(url string, depth int)
	FetchFailedFn func(outcome spyder.FetchOutcome)
	ValidPathFn   func(url string)
}

func (r *Reporter) Discovered(url string, depth int) {
	if r.DiscoveredFn != nil {
		r.DiscoveredFn(url, depth)
	}
}

func (r *Reporter) FetchFailed(outcome spyder.FetchOutcome) {
	if r.FetchFailedFn != nil {
		r.FetchFailedFn(outcome)
	}
}

func (r *Reporter) ValidPath(url string) {
	if r.ValidPathFn != nil {
		r.ValidPathFn(url)
	}
}

var _ spyder.Reporter = (*RecordingReporter)(nil)

// RecordingReporter is a spyder.Reporter that records every event.
// It is safe for concurrent use.
type RecordingReporter struct {
	mu         sync.Mutex
	discovered []string
	failed     []spyder.FetchOutcome
	validPaths []string
}

func (r *RecordingReporter) Discovered(url string, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.discovered = append(r.discovered, url)
}

func (r *RecordingReporter) FetchFailed(outcome spyder.FetchOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = append(r.failed, outcome)
}

func (r *RecordingReporter) ValidPath(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validPaths = append(r.validPaths, url)
}

// DiscoveredURLs returns the URLs passed to Discovered in call order.
func (r *RecordingReporter) DiscoveredURLs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.discovered...)
}

// Failures returns the outcomes passed to FetchFailed in call order.
func (r *RecordingReporter) Failures() []spyder.FetchOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]spyder.FetchOutcome(nil), r.failed...)
}

// ValidPaths returns the URLs passed to ValidPath in call order.
func (r *RecordingReporter) ValidPaths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.validPaths...)
}
