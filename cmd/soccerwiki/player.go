package main

import (
	"fmt"

	"github.com/CarlosDimare/soccerwiki"
)

// Run executes the player command.
func (c *PlayerCmd) Run(deps *Dependencies) error {
	profile, err := deps.Scraper.ScrapePlayer(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", soccerwiki.ErrorMessage(err))
		return err
	}

	path, err := deps.Writer.WritePlayer(profile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", soccerwiki.ErrorMessage(err))
		return err
	}

	if err := recordSnapshot(deps, soccerwiki.KindPlayer, c.URL, profile.DisplayName(), profile); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s to %s\n", profile.DisplayName(), path)
	return nil
}
