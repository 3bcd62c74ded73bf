// Package reconcile decides and executes the post-install reconciliation
// of the MAAS DNS subsystem: which steps a maintainer-script event
// requires, and running them strictly in order with abort-on-first-error
// semantics.
//
// The run holds no lock of its own. The package manager serializes
// maintainer-script invocations system-wide; that external guarantee is a
// precondition of calling Runner.Run.
package reconcile

import "fmt"

// Step is one idempotent unit of reconciliation work. The gate composes
// steps into an ordered Plan; the Runner executes them.
type Step int

const (
	EnsureLogPermissions Step = iota
	EnsureLibdirPermissions
	MaybeBootstrapDNS
	FixDNSPermissions
	EditIncludes
)

var stepNames = map[Step]string{
	EnsureLogPermissions:    "ensure-log-permissions",
	EnsureLibdirPermissions: "ensure-libdir-permissions",
	MaybeBootstrapDNS:       "maybe-bootstrap-dns",
	FixDNSPermissions:       "fix-dns-permissions",
	EditIncludes:            "edit-includes",
}

var stepEffects = map[Step]string{
	EnsureLogPermissions:    "chown the MAAS log file and the rsyslog spool",
	EnsureLibdirPermissions: "fix ownership and mode of the secret and maas_id files",
	MaybeBootstrapDNS:       "run first-time DNS setup if the config dir is empty",
	FixDNSPermissions:       "reset ownership and modes under the BIND config dir",
	EditIncludes:            "rewrite the options include and regenerate the snippet",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// Effect is a one-line description of what the step does, for plan output.
func (s Step) Effect() string { return stepEffects[s] }

// Plan is the ordered list of steps a single invocation must run.
type Plan []Step
