package workshop

import (
	"path/filepath"

	"github.com/tanq16/steamwd/internal/utils"
)

// Layout is the steamcmd install dir. Workshop items land under
// steamapps/workshop/{content,downloads,temp}/<gameid>.
type Layout struct {
	Root string
}

var workshopDirs = []string{"content", "downloads", "temp"}

func (l Layout) workshopDir(kind, gameID string) string {
	return filepath.Join(l.Root, "steamapps", "workshop", kind, gameID)
}

func (l Layout) ContentDir(gameID string) string {
	return l.workshopDir("content", gameID)
}

func (l Layout) DownloadsDir(gameID string) string {
	return l.workshopDir("downloads", gameID)
}

func (l Layout) TempDir(gameID string) string {
	return l.workshopDir("temp", gameID)
}

// ModDir is where steamcmd places a finished workshop item.
func (l Layout) ModDir(gameID, modID string) string {
	return filepath.Join(l.ContentDir(gameID), modID)
}

// Ensure creates the root and the three per-game workshop directories.
func (l Layout) Ensure(gameID string) error {
	if err := utils.EnsureDir(l.Root); err != nil {
		return err
	}
	for _, kind := range workshopDirs {
		if err := utils.EnsureDir(l.workshopDir(kind, gameID)); err != nil {
			return err
		}
	}
	return nil
}
