package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/CarlosDimare/soccerwiki"
	"github.com/CarlosDimare/soccerwiki/fs"
	"github.com/CarlosDimare/soccerwiki/goquery"
	swhttp "github.com/CarlosDimare/soccerwiki/http"
	"github.com/CarlosDimare/soccerwiki/scrape"
	swslog "github.com/CarlosDimare/soccerwiki/slog"
	"github.com/CarlosDimare/soccerwiki/sqlite"
)

func main() {
	ctx := context.Background()

	// Local .env overrides are optional.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the snapshot service.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SnapshotService soccerwiki.SnapshotService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("soccerwiki"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'soccerwiki --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(tint.NewHandler(stderr, &tint.Options{Level: level}))

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SOCCERWIKI_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.SnapshotService = sqlite.NewSnapshotService(m.DB)
	deps.DB = m.DB
	deps.Snapshots = m.SnapshotService
	deps.Writer = fs.NewWriter(cli.Out)

	swParser, err := goquery.NewParser(cli.BaseURL)
	if err != nil {
		return err
	}

	fetcher := swslog.NewLoggingFetcher(swhttp.NewFetcher(), logger)
	defer fetcher.Close()

	deps.Scraper = &scrape.Scraper{
		Fetcher:     fetcher,
		Parser:      swslog.NewLoggingParser(swParser, logger),
		Limiter:     scrape.NewHostLimiter(cli.Rate),
		BaseURL:     cli.BaseURL,
		Concurrency: cli.Concurrency,
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("SOCCERWIKI_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "soccerwiki.db"
	}
	dir := filepath.Join(home, ".soccerwiki")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "soccerwiki.db")
}
