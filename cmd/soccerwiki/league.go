package main

import (
	"fmt"

	"github.com/CarlosDimare/soccerwiki"
)

// Run executes the league command.
func (c *LeagueCmd) Run(deps *Dependencies) error {
	result, err := deps.Scraper.ScrapeLeague(deps.Ctx, c.URL, rosterProgress(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", soccerwiki.ErrorMessage(err))
		return err
	}

	for _, roster := range result.Rosters {
		path, err := deps.Writer.WriteRoster(roster)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", soccerwiki.ErrorMessage(err))
			return err
		}

		if err := recordSnapshot(deps, soccerwiki.KindRoster, c.URL, roster.ClubName, roster); err != nil {
			return err
		}

		fmt.Fprintf(deps.Stdout, "Saved %s (%d players) to %s\n", roster.ClubName, len(roster.Players), path)
	}

	if result.Failed > 0 {
		fmt.Fprintf(deps.Stderr, "%d clubs failed\n", result.Failed)
	}

	fmt.Fprintf(deps.Stdout, "Saved %d rosters\n", len(result.Rosters))
	return nil
}
