// Package soccerwiki extracts structured football records (club lists,
// squad rosters, player profiles) from the semi-structured HTML pages of
// the SoccerWiki reference site. The site exposes no API, so extraction
// is heuristic: prioritized detection strategies per field, numeric
// plausibility gates, and per-entity assemblers that tolerate missing
// markup.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, http/), with scraping orchestration in scrape/.
package soccerwiki

// DefaultBaseURL is the origin relative links are resolved against.
const DefaultBaseURL = "https://es.soccerwiki.org/"
