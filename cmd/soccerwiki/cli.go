package main

import (
	"context"
	"io"

	"github.com/CarlosDimare/soccerwiki"
	"github.com/CarlosDimare/soccerwiki/fs"
	"github.com/CarlosDimare/soccerwiki/scrape"
	"github.com/CarlosDimare/soccerwiki/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Snapshots soccerwiki.SnapshotService
	Writer    *fs.Writer
	Scraper   *scrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Clubs   ClubsCmd   `cmd:"" help:"Scrape the clubs of a country listing page"`
	Squad   SquadCmd   `cmd:"" help:"Scrape a club squad page, player profiles included"`
	Player  PlayerCmd  `cmd:"" help:"Scrape a single player profile page"`
	League  LeagueCmd  `cmd:"" help:"Scrape every club roster of a country listing page"`
	History HistoryCmd `cmd:"" help:"List stored scrape snapshots"`

	Out         string  `short:"o" default:"out" help:"Output directory for JSON files"`
	BaseURL     string  `name:"base-url" default:"" help:"Override the wiki base URL"`
	Rate        float64 `default:"1.0" help:"Requests per second per host"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent profile fetch limit"`
	Verbose     bool    `short:"v" help:"Log fetch and parse operations"`
}

// ClubsCmd is the "clubs" subcommand.
type ClubsCmd struct {
	URL string `arg:"" help:"Country listing page URL (country.php)"`
}

// SquadCmd is the "squad" subcommand.
type SquadCmd struct {
	URL string `arg:"" help:"Club squad page URL (squad.php)"`
}

// PlayerCmd is the "player" subcommand.
type PlayerCmd struct {
	URL string `arg:"" help:"Player profile page URL (player.php)"`
}

// LeagueCmd is the "league" subcommand.
type LeagueCmd struct {
	URL string `arg:"" help:"Country listing page URL (country.php)"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Kind  string `help:"Filter by page kind (clubs, squad, player)"`
	Limit int    `default:"20" help:"Maximum snapshots to list"`
}
