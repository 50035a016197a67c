// Package goquery implements the soccerwiki extraction assemblers on top
// of goquery CSS selection and x/net/html tree traversal. Each assembler
// is a pure function of (document, source URL): no I/O, no shared state,
// safe to call concurrently on independent documents.
package goquery

import (
	"net/url"

	"github.com/CarlosDimare/soccerwiki"
)

// Compile-time interface verification.
var _ soccerwiki.Parser = (*Parser)(nil)

// Parser implements the three entity assemblers. Relative links are
// resolved against BaseURL.
type Parser struct {
	base *url.URL
}

// NewParser creates a Parser resolving links against baseURL.
// An empty baseURL falls back to soccerwiki.DefaultBaseURL.
func NewParser(baseURL string) (*Parser, error) {
	if baseURL == "" {
		baseURL = soccerwiki.DefaultBaseURL
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, soccerwiki.Errorf(soccerwiki.EINVALID, "invalid base URL: %v", err)
	}
	return &Parser{base: base}, nil
}

// Parse classifies sourceURL by page kind and runs the matching
// assembler. URLs matching no known page shape fail with EINVALID.
func (p *Parser) Parse(html, sourceURL string) (*soccerwiki.Record, error) {
	kind, err := soccerwiki.DetectPageKind(sourceURL)
	if err != nil {
		return nil, err
	}

	switch kind {
	case soccerwiki.KindClubList:
		clubs, err := p.ParseClubList(html, sourceURL)
		if err != nil {
			return nil, err
		}
		return &soccerwiki.Record{Kind: kind, Clubs: clubs}, nil
	case soccerwiki.KindRoster:
		roster, err := p.ParseRoster(html, sourceURL)
		if err != nil {
			return nil, err
		}
		return &soccerwiki.Record{Kind: kind, Roster: roster}, nil
	default:
		player, err := p.ParsePlayer(html, sourceURL)
		if err != nil {
			return nil, err
		}
		return &soccerwiki.Record{Kind: kind, Player: player}, nil
	}
}

// resolve joins a (possibly relative) href against the parser's base URL.
func (p *Parser) resolve(href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return p.base.ResolveReference(ref).String()
}
