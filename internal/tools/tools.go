package tools

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog/log"
	"github.com/tanq16/steamwd/internal/output"
)

const SteamCMD = "steamcmd"

var ErrToolsMissing = errors.New("vital tools are missing")

type Resolution struct {
	Name  string
	Path  string
	Found bool
}

// Lookup resolves name against PATH.
func Lookup(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH: %w", name, err)
	}
	return path, nil
}

// Check resolves every tool, printing one line per tool, and returns
// ErrToolsMissing if any of them could not be found.
func Check(names []string) ([]Resolution, error) {
	output.PrintInfo("Checking tools:")
	results := make([]Resolution, 0, len(names))
	missing := false
	for _, name := range names {
		label := fmt.Sprintf("%-12s", name+": ")
		path, err := Lookup(name)
		if err != nil {
			log.Debug().Str("op", "tools/check").Err(err).Msgf("%s unresolved", name)
			output.PrintError(fmt.Sprintf("> %sDoes not exist", label))
			results = append(results, Resolution{Name: name})
			missing = true
			continue
		}
		log.Debug().Str("op", "tools/check").Msgf("%s resolved to %s", name, path)
		output.PrintDetail(fmt.Sprintf("> %s%s", label, path))
		results = append(results, Resolution{Name: name, Path: path, Found: true})
	}
	if missing {
		return results, ErrToolsMissing
	}
	return results, nil
}
