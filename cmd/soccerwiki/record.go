package main

import (
	"fmt"

	"github.com/CarlosDimare/soccerwiki"
)

// recordSnapshot stores the projected JSON form of a scraped record.
func recordSnapshot(deps *Dependencies, kind soccerwiki.PageKind, sourceURL, name string, record any) error {
	content, err := soccerwiki.ExportJSON(record)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", soccerwiki.ErrorMessage(err))
		return err
	}

	snap := &soccerwiki.Snapshot{
		Kind:      kind,
		SourceURL: sourceURL,
		Name:      name,
		Content:   string(content),
	}
	if err := deps.Snapshots.CreateSnapshot(deps.Ctx, snap); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", soccerwiki.ErrorMessage(err))
		return err
	}

	return nil
}
