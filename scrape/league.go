package scrape

import (
	"context"

	"github.com/CarlosDimare/soccerwiki"
)

// Frontier sizing for league scrapes. A national listing carries at most
// a few hundred clubs; the filter is sized generously anyway.
const (
	frontierExpectedClubs     = 1000
	frontierFalsePositiveRate = 0.01
)

// LeagueResult holds the outcome of a whole-league scrape.
type LeagueResult struct {
	Rosters []*soccerwiki.Roster
	Failed  int
}

// ScrapeLeague fetches a country listing, then scrapes the roster of
// every club it names, profiles included. Clubs are deduplicated across
// league sections by URL; a club whose roster scrape fails is counted
// and skipped, never fatal. Rosters come back in listing order.
func (s *Scraper) ScrapeLeague(ctx context.Context, listURL string, progress ProgressFunc) (*LeagueResult, error) {
	clubs, err := s.ScrapeClubs(ctx, listURL)
	if err != nil {
		return nil, err
	}

	frontier := NewFrontier(frontierExpectedClubs, frontierFalsePositiveRate)
	for _, club := range clubs {
		frontier.Push(Target{URL: club.URL, Name: club.Name})
	}

	result := &LeagueResult{}
	for {
		target, ok := frontier.Pop()
		if !ok {
			break
		}
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		roster, err := s.ScrapeRoster(ctx, target.URL, progress)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, URL: target.URL, Err: err})
			}
			continue
		}
		result.Rosters = append(result.Rosters, roster)
	}

	return result, nil
}
