package soccerwiki

// Club represents one club entry on a league listing page.
// IDs are taken from the club link's query parameter and are unique
// within a single listing; records are immutable after assembly.
type Club struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Logo           string `json:"logo"`
	FoundationYear string `json:"foundationYear"`
	Location       string `json:"location"`
	League         string `json:"league"`
	URL            string `json:"url"`
}

// ClubInfo holds best-effort club metadata found on a squad page.
// Every field may be empty when the page does not expose it.
type ClubInfo struct {
	Stadium  string `json:"stadium"`
	Capacity string `json:"capacity"`
	Coach    string `json:"coach"`
	Location string `json:"location"`
}
