package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

const WorkDirName = "out"

// DefaultWorkDir is the "out" directory next to the running binary.
func DefaultWorkDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("error locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	return filepath.Join(filepath.Dir(execPath), WorkDirName), nil
}

// EnsureDir creates path and any missing parents. Existing directories are left alone.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("error creating directory %s: %w", path, err)
	}
	return nil
}

func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
