package scrape

import (
	"strings"
	"sync"

	"github.com/CarlosDimare/soccerwiki/bloom"
)

// Target is one club queued for roster scraping.
type Target struct {
	URL  string
	Name string
}

// Frontier is an in-memory FIFO queue of club targets with Bloom filter
// deduplication, so a club listed under several league sections is
// scraped once. Safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []Target
}

// NewFrontier creates a Frontier sized for n expected URLs with the
// given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{seen: bloom.NewFilter(n, fpRate)}
}

// Push queues a target. Returns false if its URL has already been seen.
// URL fragments are stripped before deduplication.
func (f *Frontier) Push(target Target) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := stripFragment(target.URL)
	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)

	target.URL = url
	f.queue = append(f.queue, target)
	return true
}

// Pop returns the next queued target in insertion order.
// The bool result is false when the frontier is empty.
func (f *Frontier) Pop() (Target, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return Target{}, false
	}
	target := f.queue[0]
	f.queue = f.queue[1:]
	return target, true
}

// Len returns the number of queued targets.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen reports whether the URL was queued before, fragment ignored.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
