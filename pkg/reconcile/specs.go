package reconcile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JennyJYLiu/maas/pkg/config"
	"github.com/JennyJYLiu/maas/pkg/dnsconfig"
	"github.com/JennyJYLiu/maas/pkg/perm"
)

func logPermissionSpecs(cfg *config.Config) []perm.Spec {
	return []perm.Spec{
		{Path: cfg.LogFile, Owner: cfg.ServiceUser, Group: cfg.ServiceGroup},
		{Path: cfg.RsyslogDir, Owner: cfg.SyslogUser, Group: cfg.SyslogGroup, Recursive: true},
	}
}

func libdirPermissionSpecs(cfg *config.Config) []perm.Spec {
	return []perm.Spec{
		{Path: cfg.SecretFile(), Owner: cfg.ServiceUser, Group: cfg.ServiceGroup, Mode: perm.ModePtr(0o640)},
		{Path: cfg.IDFile(), Owner: cfg.ServiceUser, Group: cfg.ServiceGroup},
	}
}

// dnsPermissionSpecs is rebuilt on every run: the recursive ownership
// rules must cover whatever the generator and bootstrap collaborators
// have produced so far, and the four generated files then get their exact
// owner, group and mode on top.
func dnsPermissionSpecs(cfg *config.Config) ([]perm.Spec, error) {
	entries, err := os.ReadDir(cfg.BindConfigDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &dnsconfig.PreconditionError{Path: cfg.BindConfigDir, Err: err}
		}
		return nil, fmt.Errorf("read dir %s: %w", cfg.BindConfigDir, err)
	}

	specs := []perm.Spec{{Path: cfg.BindConfigDir, Owner: cfg.ServiceUser}}
	for _, ent := range entries {
		specs = append(specs, perm.Spec{
			Path:      filepath.Join(cfg.BindConfigDir, ent.Name()),
			Owner:     cfg.ServiceUser,
			Group:     cfg.ServiceGroup,
			Recursive: true,
		})
	}
	specs = append(specs,
		perm.Spec{Path: cfg.NamedConf(), Owner: cfg.ServiceUser, Group: cfg.ServiceGroup, Mode: perm.ModePtr(0o644)},
		perm.Spec{Path: cfg.OptionsInside(), Owner: cfg.ServiceUser, Group: cfg.ServiceGroup, Mode: perm.ModePtr(0o644)},
		perm.Spec{Path: cfg.RNDCConf(), Owner: cfg.ServiceUser, Group: cfg.RootGroup, Mode: perm.ModePtr(0o600)},
		perm.Spec{Path: cfg.NamedRNDCConf(), Owner: cfg.ServiceUser, Group: cfg.BindGroup, Mode: perm.ModePtr(0o640)},
	)
	return specs, nil
}
