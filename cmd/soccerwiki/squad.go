package main

import (
	"fmt"

	"github.com/CarlosDimare/soccerwiki"
	"github.com/CarlosDimare/soccerwiki/scrape"
)

// Run executes the squad command.
func (c *SquadCmd) Run(deps *Dependencies) error {
	roster, err := deps.Scraper.ScrapeRoster(deps.Ctx, c.URL, rosterProgress(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", soccerwiki.ErrorMessage(err))
		return err
	}

	path, err := deps.Writer.WriteRoster(roster)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", soccerwiki.ErrorMessage(err))
		return err
	}

	if err := recordSnapshot(deps, soccerwiki.KindRoster, c.URL, roster.ClubName, roster); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s (%d players) to %s\n", roster.ClubName, len(roster.Players), path)
	return nil
}

// rosterProgress renders profile fetch progress for roster scrapes.
func rosterProgress(deps *Dependencies) scrape.ProgressFunc {
	return func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d players\n", event.Total)
		case scrape.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  player %d of %d: %s\n", event.Completed, event.Total, event.Player)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Err)
		case scrape.ProgressFinished:
			// Summary printed after the scrape completes.
		}
	}
}
