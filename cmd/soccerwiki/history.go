package main

import (
	"fmt"

	"github.com/CarlosDimare/soccerwiki"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := soccerwiki.SnapshotFilter{Limit: c.Limit}
	if c.Kind != "" {
		kind := soccerwiki.PageKind(c.Kind)
		filter.Kind = &kind
	}

	snaps, err := deps.Snapshots.FindSnapshots(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", soccerwiki.ErrorMessage(err))
		return err
	}

	if len(snaps) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots found.")
		return nil
	}

	for _, s := range snaps {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-7s  %s  %s\n",
			s.FetchedAt.Format("2006-01-02 15:04"), s.ID, string(s.Kind), s.Name, s.SourceURL)
	}

	return nil
}
