package dnsconfig

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/google/renameio/v2"
)

// ConfigFile describes one managed include edit: every line of Path
// matching Pattern is removed and CanonicalLine is appended in its place.
type ConfigFile struct {
	Path          string
	Pattern       *regexp.Regexp
	CanonicalLine string
}

// EnsureInclude rewrites f.Path so that exactly one line matches
// f.Pattern: the appended f.CanonicalLine. The output always ends with a
// single newline and the rewrite goes through a temp file in the same
// directory plus a rename, so a crash never leaves a truncated file.
// Running it twice produces byte-identical output. The file must already
// exist; this editor never creates config files.
func EnsureInclude(f ConfigFile) error {
	info, err := os.Stat(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &PreconditionError{Path: f.Path, Err: err}
		}
		return fmt.Errorf("stat %s: %w", f.Path, err)
	}
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", f.Path, err)
	}

	content := strings.TrimRight(string(raw), "\n")
	var kept []string
	if content != "" {
		for _, line := range strings.Split(content, "\n") {
			if !f.Pattern.MatchString(line) {
				kept = append(kept, line)
			}
		}
	}
	kept = append(kept, f.CanonicalLine)

	out := strings.Join(kept, "\n") + "\n"
	if err := renameio.WriteFile(f.Path, []byte(out), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	return nil
}
