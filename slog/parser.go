package slog

import (
	"log/slog"
	"time"

	"github.com/CarlosDimare/soccerwiki"
)

// Ensure LoggingParser implements soccerwiki.Parser.
var _ soccerwiki.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   soccerwiki.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next soccerwiki.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// ParseClubList delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) ParseClubList(html, sourceURL string) (clubs []*soccerwiki.Club, err error) {
	defer func(begin time.Time) {
		p.logger.Info("parse club list",
			"url", sourceURL,
			"clubs", len(clubs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseClubList(html, sourceURL)
}

// ParseRoster delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) ParseRoster(html, sourceURL string) (roster *soccerwiki.Roster, err error) {
	defer func(begin time.Time) {
		var players int
		if roster != nil {
			players = len(roster.Players)
		}
		p.logger.Info("parse roster",
			"url", sourceURL,
			"players", players,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseRoster(html, sourceURL)
}

// ParsePlayer delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) ParsePlayer(html, sourceURL string) (profile *soccerwiki.PlayerProfile, err error) {
	defer func(begin time.Time) {
		var name string
		if profile != nil {
			name = profile.DisplayName()
		}
		p.logger.Info("parse player",
			"url", sourceURL,
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParsePlayer(html, sourceURL)
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(html, sourceURL string) (record *soccerwiki.Record, err error) {
	defer func(begin time.Time) {
		var kind soccerwiki.PageKind
		if record != nil {
			kind = record.Kind
		}
		p.logger.Info("parse page",
			"url", sourceURL,
			"kind", string(kind),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(html, sourceURL)
}
