package main

import (
	"fmt"

	"github.com/CarlosDimare/soccerwiki"
)

// Run executes the clubs command.
func (c *ClubsCmd) Run(deps *Dependencies) error {
	clubs, err := deps.Scraper.ScrapeClubs(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", soccerwiki.ErrorMessage(err))
		return err
	}

	path, err := deps.Writer.WriteClubs(clubs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", soccerwiki.ErrorMessage(err))
		return err
	}

	if err := recordSnapshot(deps, soccerwiki.KindClubList, c.URL, "clubs", clubs); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d clubs to %s\n", len(clubs), path)
	return nil
}
