package reconcile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Commander runs an external collaborator to completion.
type Commander interface {
	Run(ctx context.Context, argv ...string) error
}

// ExecCommander runs collaborators with os/exec, forwarding their output
// to the hook's own streams so dpkg captures it.
type ExecCommander struct{}

func (ExecCommander) Run(ctx context.Context, argv ...string) error {
	if len(argv) == 0 {
		return errors.New("empty command")
	}
	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("%s: %w", argv[0], err)
	}
	return nil
}
