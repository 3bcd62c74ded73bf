package dnsconfig

import (
	"errors"
	"fmt"
	"os"
)

// NeedsBootstrap reports whether first-time DNS setup must run: true iff
// stateDir exists and holds no entries. Packaging creates the directory,
// so absence means a broken install rather than a fresh one.
func NeedsBootstrap(stateDir string) (bool, error) {
	entries, err := os.ReadDir(stateDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, &PreconditionError{Path: stateDir, Err: err}
		}
		return false, fmt.Errorf("read dir %s: %w", stateDir, err)
	}
	return len(entries) == 0, nil
}
