//go:build linux

package perm

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
)

// Spec declares the required ownership and mode for one managed path.
// An empty Owner or Group leaves that id untouched; a nil Mode leaves the
// mode untouched. Recursive extends the ownership change to every
// descendant; Mode is only ever applied to Path itself.
type Spec struct {
	Path      string
	Owner     string
	Group     string
	Mode      *fs.FileMode
	Recursive bool
}

// ModePtr builds the optional mode field of a Spec.
func ModePtr(m fs.FileMode) *fs.FileMode { return &m }

// Apply reconciles spec.Path against spec. It reports false without error
// when the path does not exist. Ownership lands before the mode change so
// a stale owner never holds the final mode.
func Apply(spec Spec) (bool, error) {
	if _, err := os.Lstat(spec.Path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", spec.Path, err)
	}

	uid, err := lookupUID(spec.Owner)
	if err != nil {
		return false, err
	}
	gid, err := lookupGID(spec.Group)
	if err != nil {
		return false, err
	}
	if uid != -1 || gid != -1 {
		if err := chown(spec.Path, uid, gid, spec.Recursive); err != nil {
			return false, err
		}
	}

	if spec.Mode != nil {
		if err := os.Chmod(spec.Path, *spec.Mode); err != nil {
			return false, fmt.Errorf("chmod %s: %w", spec.Path, err)
		}
	}
	return true, nil
}

func chown(root string, uid, gid int, recursive bool) error {
	if !recursive {
		if err := os.Chown(root, uid, gid); err != nil {
			return fmt.Errorf("chown %s: %w", root, err)
		}
		return nil
	}
	return filepath.WalkDir(root, func(path string, _ fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := os.Chown(path, uid, gid); err != nil {
			return fmt.Errorf("chown %s: %w", path, err)
		}
		return nil
	})
}

func lookupUID(name string) (int, error) {
	if name == "" {
		return -1, nil
	}
	u, err := user.Lookup(name)
	if err != nil {
		return 0, fmt.Errorf("lookup user %s: %w", name, err)
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return 0, fmt.Errorf("parse uid %s: %w", u.Uid, err)
	}
	return uid, nil
}

func lookupGID(name string) (int, error) {
	if name == "" {
		return -1, nil
	}
	grp, err := user.LookupGroup(name)
	if err != nil {
		return 0, fmt.Errorf("lookup group %s: %w", name, err)
	}
	gid, err := strconv.Atoi(grp.Gid)
	if err != nil {
		return 0, fmt.Errorf("parse gid %s: %w", grp.Gid, err)
	}
	return gid, nil
}
