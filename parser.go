package soccerwiki

// ClubListParser assembles club records from a league listing document.
type ClubListParser interface {
	// ParseClubList extracts every club row found in the document.
	// Rows missing required cells are skipped silently, never an error.
	ParseClubList(html, sourceURL string) ([]*Club, error)
}

// RosterParser assembles a squad roster from a club page.
type RosterParser interface {
	// ParseRoster extracts the roster table and one record per player
	// row. Only rows with both a name and a player id are accepted.
	ParseRoster(html, sourceURL string) (*Roster, error)
}

// PlayerParser assembles a full profile from a player page.
type PlayerParser interface {
	// ParsePlayer extracts every profile field the document exposes.
	// Missing fields come back empty; only structural failures error.
	ParsePlayer(html, sourceURL string) (*PlayerProfile, error)
}

// Parser combines the three entity assemblers behind one extraction
// boundary. Implementations also provide Parse, dispatching on the
// source URL's page kind.
type Parser interface {
	ClubListParser
	RosterParser
	PlayerParser

	// Parse classifies sourceURL and runs the matching assembler.
	// Unrecognized URLs fail with EINVALID.
	Parse(html, sourceURL string) (*Record, error)
}
