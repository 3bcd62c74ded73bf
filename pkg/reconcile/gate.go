package reconcile

import (
	"fmt"

	"pault.ag/go/debian/version"
)

// ActionConfigure is the only maintainer-script action with work to do.
const ActionConfigure = "configure"

// VersionThreshold is the last packaged version whose maintainer scripts
// handled DNS configuration themselves. Upgrades from a version at or
// below it take the legacy no-op path.
const VersionThreshold = "0.1+x-0ubuntu1"

var threshold = mustParse(VersionThreshold)

func mustParse(s string) version.Version {
	v, err := version.Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Decide maps a maintainer-script invocation onto the ordered Plan to
// execute. An empty previousVersion means a fresh install or
// reconfiguration; upgrades re-run everything except the bootstrap check,
// which only the first configuration needs. Any other action is a no-op.
func Decide(action, previousVersion string) (Plan, error) {
	if action != ActionConfigure {
		return nil, nil
	}
	if previousVersion == "" {
		return Plan{
			EnsureLogPermissions,
			EnsureLibdirPermissions,
			MaybeBootstrapDNS,
			FixDNSPermissions,
			EditIncludes,
		}, nil
	}

	prev, err := version.Parse(previousVersion)
	if err != nil {
		return nil, fmt.Errorf("parse previous version %q: %w", previousVersion, err)
	}
	if version.Compare(prev, threshold) <= 0 {
		return nil, nil
	}
	return Plan{
		EnsureLogPermissions,
		EnsureLibdirPermissions,
		FixDNSPermissions,
		EditIncludes,
	}, nil
}
