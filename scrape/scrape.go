// Package scrape provides scraping orchestration: fetching listing,
// squad and profile pages, running the extraction assemblers over them,
// and merging per-player profile records back into rosters.
package scrape

import (
	"context"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/CarlosDimare/soccerwiki"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the profile-fetch worker pool.
const DefaultConcurrency = 4

// Scraper coordinates a Fetcher and the extraction assemblers.
type Scraper struct {
	Fetcher soccerwiki.Fetcher
	Parser  soccerwiki.Parser
	Limiter soccerwiki.HostLimiter

	// BaseURL is the site origin profile URLs are built against.
	// Empty means soccerwiki.DefaultBaseURL.
	BaseURL string

	// Concurrency bounds the profile worker pool. <=0 means
	// DefaultConcurrency.
	Concurrency int

	// RetryDelays configures fetch retry backoff. Nil means
	// DefaultRetryDelays.
	RetryDelays []time.Duration
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress while profiles are fetched and merged.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Player    string
	Err       error
}

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// ScrapeClubs fetches a league listing page and extracts its clubs.
func (s *Scraper) ScrapeClubs(ctx context.Context, listURL string) ([]*soccerwiki.Club, error) {
	html, err := s.fetch(ctx, listURL)
	if err != nil {
		return nil, err
	}
	return s.Parser.ParseClubList(html, listURL)
}

// ScrapePlayer fetches a single player page and extracts the profile.
func (s *Scraper) ScrapePlayer(ctx context.Context, playerURL string) (*soccerwiki.PlayerProfile, error) {
	html, err := s.fetch(ctx, playerURL)
	if err != nil {
		return nil, err
	}
	return s.Parser.ParsePlayer(html, playerURL)
}

// ScrapeRoster fetches a squad page, extracts the roster, then fetches
// every player's profile and merges it into the roster record. Profile
// fetches run on a bounded worker pool; results are written back by
// stable player index so the roster keeps its page order regardless of
// completion order. A failed profile fetch degrades that player to the
// roster-scoped record; it never aborts the roster.
func (s *Scraper) ScrapeRoster(ctx context.Context, squadURL string, progress ProgressFunc) (*soccerwiki.Roster, error) {
	html, err := s.fetch(ctx, squadURL)
	if err != nil {
		return nil, err
	}

	roster, err := s.Parser.ParseRoster(html, squadURL)
	if err != nil {
		return nil, err
	}

	total := len(roster.Players)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i := range roster.Players {
		i := i
		g.Go(func() error {
			basic := roster.Players[i]
			playerURL := s.playerURL(basic.PlayerID)

			full, err := s.ScrapePlayer(gctx, playerURL)
			done := int(completed.Add(1))
			if err != nil {
				if progress != nil {
					progress(ProgressEvent{
						Type:      ProgressFailed,
						Completed: done,
						Total:     total,
						URL:       playerURL,
						Player:    basic.Name,
						Err:       err,
					})
				}
				return nil
			}

			roster.Players[i] = soccerwiki.MergePlayer(basic, full)
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressCompleted,
					Completed: done,
					Total:     total,
					URL:       playerURL,
					Player:    basic.Name,
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return roster, nil
}

// fetch retrieves one document, honoring the per-host rate limit and the
// retry policy.
func (s *Scraper) fetch(ctx context.Context, rawURL string) (string, error) {
	if s.Limiter != nil {
		if u, err := url.Parse(rawURL); err == nil {
			if err := s.Limiter.Wait(ctx, u.Host); err != nil {
				return "", err
			}
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetry(ctx, rawURL, s.Fetcher.Fetch, delays)
}

// playerURL builds a profile URL from a player id.
func (s *Scraper) playerURL(pid string) string {
	base := s.BaseURL
	if base == "" {
		base = soccerwiki.DefaultBaseURL
	}
	return strings.TrimSuffix(base, "/") + "/player.php?pid=" + pid
}
