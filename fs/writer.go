// Package fs writes scraped records to the local filesystem as JSON.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/CarlosDimare/soccerwiki"
)

// Writer saves projected JSON documents under a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteClubs saves a club list as clubs.json and returns the file path.
func (w *Writer) WriteClubs(clubs []*soccerwiki.Club) (string, error) {
	return w.write("clubs.json", clubs)
}

// WriteRoster saves a roster as squad_<club>.json and returns the file path.
func (w *Writer) WriteRoster(roster *soccerwiki.Roster) (string, error) {
	name := roster.ClubName
	if name == "" {
		name = "squad"
	}
	return w.write("squad_"+sanitize(name)+".json", roster)
}

// WritePlayer saves a player profile as player_<name>.json and returns
// the file path.
func (w *Writer) WritePlayer(profile *soccerwiki.PlayerProfile) (string, error) {
	name := profile.DisplayName()
	if name == "" {
		name = "player"
	}
	return w.write("player_"+sanitize(name)+".json", profile)
}

func (w *Writer) write(filename string, record any) (string, error) {
	data, err := soccerwiki.ExportJSON(record)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	return path, nil
}

// sanitize makes a record name safe for use in a filename.
func sanitize(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, string(filepath.Separator), "_")
	name = strings.ReplaceAll(name, "/", "_")
	return name
}
