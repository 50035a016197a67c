package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/CarlosDimare/soccerwiki"
	"github.com/PuerkitoBio/goquery"
)

// reSquadTableID matches table identifiers that name a squad listing.
var reSquadTableID = regexp.MustCompile(`(?i)squad|roster`)

// minFallbackRows is the row-count threshold for the last-resort table
// heuristic: a table with more rows than this is "probably the roster".
// Known-fragile: a page with another large table before the real roster
// picks the wrong one, which is why this runs only after the class and
// id strategies have failed.
const minFallbackRows = 5

// ParseRoster extracts a club's squad from a squad.php document.
// Player rows are identified by their profile link; a row is accepted
// only when both the name and the player id could be extracted.
func (p *Parser) ParseRoster(htmlText, sourceURL string) (*soccerwiki.Roster, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, soccerwiki.Errorf(soccerwiki.EINVALID, "failed to parse HTML: %v", err)
	}

	roster := &soccerwiki.Roster{
		ClubName: "Club",
		ClubID:   queryParam(sourceURL, "clubid"),
		ClubInfo: parseClubInfo(doc),
	}
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		roster.ClubName = h1
	}

	bounds := soccerwiki.RosterBounds()

	if table := findRosterTable(doc); table != nil {
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			player, ok := parsePlayerRow(row, bounds)
			if !ok {
				return
			}
			roster.Players = append(roster.Players, player)
		})
	}

	// Table discovery found nothing usable: scan the whole document for
	// profile links and use each link's nearest block ancestor as scope.
	// This path extracts a reduced field subset on purpose: position and
	// physical attributes are unreliable outside a row layout.
	if len(roster.Players) == 0 {
		roster.Players = scanPlayerLinks(doc)
	}

	roster.TotalPlayers = len(roster.Players)
	return roster, nil
}

// findRosterTable locates the squad table via a three-step fallback
// chain: canonical class, squad-like id, then the first table with more
// than minFallbackRows rows.
func findRosterTable(doc *goquery.Document) *goquery.Selection {
	if table := doc.Find("table.table-roster").First(); table.Length() > 0 {
		return table
	}

	var found *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		if reSquadTableID.MatchString(table.AttrOr("id", "")) {
			found = table
			return false
		}
		return true
	})
	if found != nil {
		return found
	}

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		if table.Find("tr").Length() > minFallbackRows {
			found = table
			return false
		}
		return true
	})
	return found
}

// parsePlayerRow extracts one player from a roster table row. Every cell
// is scanned by every extractor; the first cell to produce a field wins
// and later cells never overwrite it.
func parsePlayerRow(row *goquery.Selection, bounds soccerwiki.Bounds) (soccerwiki.Player, bool) {
	link := row.Find(`a[href*="player.php"]`).First()
	if link.Length() == 0 {
		return soccerwiki.Player{}, false
	}

	player := soccerwiki.Player{
		Name:     strings.TrimSpace(link.Text()),
		PlayerID: queryParam(link.AttrOr("href", ""), "pid"),
	}

	row.Find("td").Each(func(_ int, cell *goquery.Selection) {
		scanRosterCell(cell, &player, bounds)
	})

	return player, player.Accepted()
}

// scanRosterCell runs every field extractor against one cell. Extractors
// are not mutually exclusive: a single cell may populate several fields.
func scanRosterCell(cell *goquery.Selection, player *soccerwiki.Player, bounds soccerwiki.Bounds) {
	text := strings.TrimSpace(cell.Text())

	setIfEmpty(&player.SquadNumber, squadBadge(cell, true))
	setIfEmpty(&player.Photo, playerPhoto(cell))
	setIfEmpty(&player.Nationality, flagCode(cell))

	if _, position := positionSpan(cell); position != "" {
		setIfEmpty(&player.Position, position)
	}
	setIfEmpty(&player.Position, cell.AttrOr("data-position", ""))

	// Bare two-digit cell in the plausible range reads as the age.
	if isDigits(text) {
		if n, err := strconv.Atoi(text); err == nil && bounds.Accept(soccerwiki.FieldAge, n) {
			setIfEmpty(&player.Age, text)
		}
	}

	if strings.Contains(text, "cm") {
		if m := reHeightCM.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && bounds.Accept(soccerwiki.FieldHeight, n) {
				setIfEmpty(&player.Height, m[1]+" cm")
			}
		}
	}
	if strings.Contains(text, "kg") {
		if m := reWeightKG.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && bounds.Accept(soccerwiki.FieldWeight, n) {
				setIfEmpty(&player.Weight, m[1]+" kg")
			}
		}
	}

	setIfEmpty(&player.Foot, footFromCell(text))

	if m := reBirthDMY.FindStringSubmatch(text); m != nil {
		setIfEmpty(&player.BirthDate, m[1]+"/"+m[2]+"/"+m[3])
	}

	// Last resort for the rating: any standalone one-or-two digit number,
	// gated by range so unrelated numbers don't stick.
	if m := reCellNum.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && bounds.Accept(soccerwiki.FieldRating, n) {
			setIfEmpty(&player.Rating, m[1])
		}
	}
}

// scanPlayerLinks is the tableless fallback: every profile link in the
// document becomes a candidate, scoped to its nearest row, list item or
// block container.
func scanPlayerLinks(doc *goquery.Document) []soccerwiki.Player {
	var players []soccerwiki.Player

	doc.Find(`a[href*="player.php"]`).Each(func(_ int, link *goquery.Selection) {
		name := strings.TrimSpace(link.Text())
		if len(name) < 3 {
			return
		}

		pid := queryParam(link.AttrOr("href", ""), "pid")
		if pid == "" {
			return
		}

		scope := link.Closest("div, tr, li")
		if scope.Length() == 0 {
			return
		}

		player := soccerwiki.Player{
			Name:        name,
			PlayerID:    pid,
			SquadNumber: squadBadge(scope, false),
			Photo:       playerPhoto(scope),
			Nationality: flagCode(scope),
		}
		players = append(players, player)
	})

	return players
}

// clubInfoLabels maps labeled-block prefixes to ClubInfo fields.
var clubInfoLabels = []struct {
	label  string
	assign func(*soccerwiki.ClubInfo, string)
}{
	{"Estadio", func(ci *soccerwiki.ClubInfo, v string) { setIfEmpty(&ci.Stadium, v) }},
	{"Capacidad", func(ci *soccerwiki.ClubInfo, v string) { setIfEmpty(&ci.Capacity, v) }},
	{"Entrenador", func(ci *soccerwiki.ClubInfo, v string) { setIfEmpty(&ci.Coach, v) }},
	{"Localización", func(ci *soccerwiki.ClubInfo, v string) { setIfEmpty(&ci.Location, v) }},
	{"Ubicación", func(ci *soccerwiki.ClubInfo, v string) { setIfEmpty(&ci.Location, v) }},
}

// parseClubInfo scans short labeled text blocks for club metadata.
// Everything is optional; an undetected field stays empty.
func parseClubInfo(doc *goquery.Document) soccerwiki.ClubInfo {
	var info soccerwiki.ClubInfo

	doc.Find("p, li, dd").Each(func(_ int, block *goquery.Selection) {
		text := strings.TrimSpace(block.Text())
		if len(text) > 120 || !strings.Contains(text, ":") {
			return
		}
		for _, entry := range clubInfoLabels {
			if !strings.HasPrefix(text, entry.label) {
				continue
			}
			if value, ok := labeledValue(text); ok && value != "" {
				entry.assign(&info, value)
			}
			break
		}
	})

	return info
}
