// Package dnsconfig edits the BIND configuration MAAS manages: the include
// directive kept in the operator-owned options file, and the emptiness
// probe on the generated-config directory that gates first-time DNS setup.
package dnsconfig

import (
	"fmt"
	"path/filepath"
	"regexp"
)

const (
	// DefaultConfigDir holds the MAAS-generated BIND configuration.
	DefaultConfigDir = "/etc/bind/maas"

	// DefaultOptionsFile is the options file owned by the bind9 package.
	// MAAS owns exactly one line in it: the include directive.
	DefaultOptionsFile = "/etc/bind/named.conf.options"

	// DefaultLocalConfFile is the secondary config file the external
	// options editor points at the generated named.conf.maas.
	DefaultLocalConfFile = "/etc/bind/named.conf.local"

	NamedConfName     = "named.conf.maas"
	OptionsInsideName = "named.conf.options.inside.maas"
	RNDCConfName      = "rndc.conf.maas"
	NamedRNDCConfName = "named.conf.rndc.maas"
)

// IncludePattern matches any include directive pointing at a MAAS options
// snippet, wherever a previous version or a manual edit placed it.
var IncludePattern = regexp.MustCompile(`^include\s.*` + regexp.QuoteMeta(OptionsInsideName))

// IncludeLine returns the canonical include directive for the options
// snippet generated under configDir.
func IncludeLine(configDir string) string {
	return fmt.Sprintf("include %q;", filepath.Join(configDir, OptionsInsideName))
}

// PreconditionError reports a file or directory that packaging guarantees
// to exist but is missing.
type PreconditionError struct {
	Path string
	Err  error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("required path %s: %v", e.Path, e.Err)
}

func (e *PreconditionError) Unwrap() error { return e.Err }
