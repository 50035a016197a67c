package mock

import "github.com/CarlosDimare/soccerwiki"

var _ soccerwiki.Parser = (*Parser)(nil)

// Parser is a mock implementation of soccerwiki.Parser.
type Parser struct {
	ParseClubListFn func(html, sourceURL string) ([]*soccerwiki.Club, error)
	ParseRosterFn   func(html, sourceURL string) (*soccerwiki.Roster, error)
	ParsePlayerFn   func(html, sourceURL string) (*soccerwiki.PlayerProfile, error)
	ParseFn         func(html, sourceURL string) (*soccerwiki.Record, error)
}

func (p *Parser) ParseClubList(html, sourceURL string) ([]*soccerwiki.Club, error) {
	return p.ParseClubListFn(html, sourceURL)
}

func (p *Parser) ParseRoster(html, sourceURL string) (*soccerwiki.Roster, error) {
	return p.ParseRosterFn(html, sourceURL)
}

func (p *Parser) ParsePlayer(html, sourceURL string) (*soccerwiki.PlayerProfile, error) {
	return p.ParsePlayerFn(html, sourceURL)
}

func (p *Parser) Parse(html, sourceURL string) (*soccerwiki.Record, error) {
	return p.ParseFn(html, sourceURL)
}
