package soccerwiki

import "context"

// Fetcher retrieves raw markup text from URLs. The extraction core never
// performs I/O itself; it only ever sees documents a Fetcher already
// retrieved successfully.
type Fetcher interface {
	// Fetch retrieves the document at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// HostLimiter provides per-host rate limiting for scrape loops.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
