package reconcile

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JennyJYLiu/maas/pkg/config"
	"github.com/JennyJYLiu/maas/pkg/dnsconfig"
	"github.com/JennyJYLiu/maas/pkg/perm"
)

// Runner executes reconciliation plans against one deployment.
type Runner struct {
	cfg *config.Config
	cmd Commander
	log *zap.SugaredLogger
}

func NewRunner(cfg *config.Config, cmd Commander) *Runner {
	return &Runner{cfg: cfg, cmd: cmd, log: zap.S()}
}

// Run executes the plan for one maintainer-script invocation. Steps run
// strictly in order and the first failure aborts the run. After a
// non-empty plan completes, the DNS service restart is attempted and its
// failure only logged; the no-op path stays a true no-op.
func (r *Runner) Run(ctx context.Context, action, previousVersion string) error {
	plan, err := Decide(action, previousVersion)
	if err != nil {
		return err
	}

	log := r.log.With("run_id", uuid.NewString(), "action", action)
	if previousVersion != "" {
		log = log.With("previous_version", previousVersion)
	}
	if len(plan) == 0 {
		log.Debugw("nothing to reconcile")
		return nil
	}

	for _, step := range plan {
		log.Infow("running step", "step", step.String())
		if err := r.runStep(ctx, step); err != nil {
			log.Errorw("step failed", "step", step.String(), "error", err)
			return err
		}
	}

	if err := r.cmd.Run(ctx, r.cfg.Commands.RestartDNS...); err != nil {
		log.Warnw("dns restart failed, continuing", "error", err)
	}
	return nil
}

func (r *Runner) runStep(ctx context.Context, step Step) error {
	switch step {
	case EnsureLogPermissions:
		return r.applyAll(step, logPermissionSpecs(r.cfg))
	case EnsureLibdirPermissions:
		return r.applyAll(step, libdirPermissionSpecs(r.cfg))
	case MaybeBootstrapDNS:
		return r.maybeBootstrap(ctx, step)
	case FixDNSPermissions:
		return r.fixDNSPermissions(step)
	case EditIncludes:
		return r.editIncludes(ctx, step)
	default:
		return fmt.Errorf("unknown step %v", step)
	}
}

func (r *Runner) applyAll(step Step, specs []perm.Spec) error {
	for _, spec := range specs {
		applied, err := perm.Apply(spec)
		if err != nil {
			return &StepError{Step: step, Kind: FailurePermission, Err: err}
		}
		if !applied {
			r.log.Debugw("path absent, skipped", "path", spec.Path)
		}
	}
	return nil
}

func (r *Runner) maybeBootstrap(ctx context.Context, step Step) error {
	need, err := dnsconfig.NeedsBootstrap(r.cfg.BindConfigDir)
	if err != nil {
		return &StepError{Step: step, Kind: classify(err), Err: err}
	}
	if !need {
		r.log.Debugw("dns already bootstrapped", "dir", r.cfg.BindConfigDir)
		return nil
	}
	if err := r.cmd.Run(ctx, r.cfg.Commands.SetupDNS...); err != nil {
		return &StepError{Step: step, Kind: FailureCollaborator, Err: err}
	}
	return nil
}

func (r *Runner) fixDNSPermissions(step Step) error {
	specs, err := dnsPermissionSpecs(r.cfg)
	if err != nil {
		return &StepError{Step: step, Kind: classify(err), Err: err}
	}
	return r.applyAll(step, specs)
}

// editIncludes keeps the canonical include line in the operator-owned
// options file, then has the external tools regenerate the snippet it
// points at and re-point named.conf.local at the generated zone config.
// The collaborators run after the include edit; they populate what the
// directive references.
func (r *Runner) editIncludes(ctx context.Context, step Step) error {
	f := dnsconfig.ConfigFile{
		Path:          r.cfg.OptionsFile,
		Pattern:       dnsconfig.IncludePattern,
		CanonicalLine: dnsconfig.IncludeLine(r.cfg.BindConfigDir),
	}
	if err := dnsconfig.EnsureInclude(f); err != nil {
		return &StepError{Step: step, Kind: classify(err), Err: err}
	}

	generate := append(slices.Clone(r.cfg.Commands.GenerateNamedConf),
		"--config-path", r.cfg.OptionsInside())
	if err := r.cmd.Run(ctx, generate...); err != nil {
		return &StepError{Step: step, Kind: FailureCollaborator, Err: err}
	}

	edit := append(slices.Clone(r.cfg.Commands.EditNamedOptions),
		"--config-path", r.cfg.LocalConfFile)
	if err := r.cmd.Run(ctx, edit...); err != nil {
		return &StepError{Step: step, Kind: FailureCollaborator, Err: err}
	}
	return nil
}
