//go:build !linux

package perm

import (
	"errors"
	"io/fs"
)

// Spec declares the required ownership and mode for one managed path.
type Spec struct {
	Path      string
	Owner     string
	Group     string
	Mode      *fs.FileMode
	Recursive bool
}

// ModePtr builds the optional mode field of a Spec.
func ModePtr(m fs.FileMode) *fs.FileMode { return &m }

// Apply is Linux-only; the reconciliation hook never ships elsewhere.
func Apply(Spec) (bool, error) {
	return false, errors.New("perm: unsupported platform")
}
