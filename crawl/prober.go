package crawl

import (
	"context"
	"net/url"
	"strings"

	"github.com/mrTr1cky/spyder"
	"github.com/mrTr1cky/spyder/bloom"
)

// candidateFalsePositiveRate is the rate at which a new candidate falls through
// the bloom filter to the exact set.
const candidateFalsePositiveRate = 0.0001

// candidateSet records the candidates tried in one call. New candidates are
// mostly answered by the bloom filter; a positive is confirmed against the
// exact set, so a unique candidate is never skipped.
type candidateSet struct {
	filter *bloom.Filter
	exact  map[string]struct{}
}

func newCandidateSet(n int) *candidateSet {
	return &candidateSet{
		filter: bloom.NewFilter(uint(n), candidateFalsePositiveRate),
		exact:  make(map[string]struct{}, n),
	}
}

// add records candidate and reports whether it was new.
func (s *candidateSet) add(candidate string) bool {
	if s.filter.Test(candidate) {
		if _, ok := s.exact[candidate]; ok {
			return false
		}
	} else {
		s.filter.Add(candidate)
	}
	s.exact[candidate] = struct{}{}
	return true
}

// Prober checks wordlist paths against a base URL.
// It does not consult or update the crawl's visited set.
type Prober struct {
	Fetcher  spyder.Fetcher
	Reporter spyder.Reporter
}

// ProbeResult holds the outcome of probing one base URL.
type ProbeResult struct {
	Base string

	// Valid lists candidates that returned HTTP 200, in wordlist order.
	Valid []string

	Probed int
	Failed int
}

// Probe resolves every wordlist entry against base and fetches it once.
// Entries are trimmed; blank lines and lines starting with '#' are skipped,
// as are entries that do not parse as URL references.
// Identical candidates within one call are fetched once.
func (p *Prober) Probe(ctx context.Context, base string, wordlist []string) (*ProbeResult, error) {
	if _, err := spyder.OriginOf(base); err != nil {
		return nil, err
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, spyder.Errorf(spyder.EINVALID, "invalid base URL: %v", err)
	}

	result := &ProbeResult{Base: base}
	reporter := p.Reporter
	if reporter == nil {
		reporter = spyder.NopReporter{}
	}
	tried := newCandidateSet(len(wordlist))

	for _, line := range wordlist {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		entry := strings.TrimSpace(line)
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}
		ref, err := url.Parse(entry)
		if err != nil {
			continue
		}
		candidate := baseURL.ResolveReference(ref).String()
		if !tried.add(candidate) {
			continue
		}

		result.Probed++
		outcome := p.Fetcher.Fetch(ctx, candidate)
		if !outcome.OK() {
			result.Failed++
			reporter.FetchFailed(outcome)
			continue
		}

		result.Valid = append(result.Valid, candidate)
		reporter.ValidPath(candidate)
	}

	return result, nil
}
