package crawl

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/mrTr1cky/spyder"
)

// DefaultVisitedShards is the number of lock shards used by NewVisitedSet
// when a non-positive count is given.
const DefaultVisitedShards = 64

// Compile-time interface verification.
var _ spyder.VisitedSet = (*VisitedSet)(nil)

type visitState uint8

const (
	statePending visitState = iota
	stateDiscovered
	stateFailed
)

// VisitedSet is an exact, sharded record of claimed URLs.
// Each URL hashes to one shard; the shard mutex makes claim-and-insert
// atomic for that URL. It is safe for concurrent use by multiple goroutines.
type VisitedSet struct {
	shards     []visitedShard
	discovered atomic.Int64
}

type visitedShard struct {
	mu    sync.Mutex
	state map[string]visitState
}

// NewVisitedSet creates an empty VisitedSet with n lock shards.
func NewVisitedSet(n int) *VisitedSet {
	if n <= 0 {
		n = DefaultVisitedShards
	}
	s := &VisitedSet{shards: make([]visitedShard, n)}
	for i := range s.shards {
		s.shards[i].state = make(map[string]visitState)
	}
	return s
}

func (s *VisitedSet) shard(url string) *visitedShard {
	return &s.shards[xxhash.Sum64String(url)%uint64(len(s.shards))]
}

// Claim marks url as being visited. It returns false if url was already claimed.
func (s *VisitedSet) Claim(url string) bool {
	sh := s.shard(url)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, ok := sh.state[url]; ok {
		return false
	}
	sh.state[url] = statePending
	return true
}

// Resolve records the fetch result for url. Only the first resolution
// counts; later calls are no-ops.
func (s *VisitedSet) Resolve(url string, ok bool) {
	sh := s.shard(url)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if st, exists := sh.state[url]; exists && st != statePending {
		return
	}
	if ok {
		sh.state[url] = stateDiscovered
		s.discovered.Add(1)
		return
	}
	sh.state[url] = stateFailed
}

// Seen returns true if url has been claimed.
func (s *VisitedSet) Seen(url string) bool {
	sh := s.shard(url)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	_, ok := sh.state[url]
	return ok
}

// Discovered returns all successfully fetched URLs in sorted order.
func (s *VisitedSet) Discovered() []string {
	urls := make([]string, 0, s.Len())
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		for url, st := range sh.state {
			if st == stateDiscovered {
				urls = append(urls, url)
			}
		}
		sh.mu.Unlock()
	}
	sort.Strings(urls)
	return urls
}

// Len returns the number of successfully fetched URLs.
func (s *VisitedSet) Len() int {
	return int(s.discovered.Load())
}
