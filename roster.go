package soccerwiki

// Roster represents one club's squad as assembled from a squad.php page.
// It is rebuilt wholesale on each fetch and owned by the caller that
// requested it; nothing in this package mutates it afterwards.
type Roster struct {
	ClubName     string   `json:"clubName"`
	ClubID       string   `json:"clubId"`
	ClubInfo     ClubInfo `json:"clubInfo"`
	Players      []Player `json:"players"`
	TotalPlayers int      `json:"totalPlayers"`
}

// Record is the tagged result of parsing one document. Exactly one of
// the payload fields is set, according to Kind.
type Record struct {
	Kind   PageKind
	Clubs  []*Club
	Roster *Roster
	Player *PlayerProfile
}
