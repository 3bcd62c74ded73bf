package reconcile

import (
	"errors"
	"fmt"

	"github.com/JennyJYLiu/maas/pkg/dnsconfig"
)

// FailureKind classifies why a step failed.
type FailureKind int

const (
	// FailurePrecondition: a path packaging guarantees was missing.
	FailurePrecondition FailureKind = iota + 1
	// FailurePermission: the OS rejected an ownership, mode, or write change.
	FailurePermission
	// FailureCollaborator: an external command exited non-zero.
	FailureCollaborator
)

func (k FailureKind) String() string {
	switch k {
	case FailurePrecondition:
		return "precondition failure"
	case FailurePermission:
		return "permission failure"
	case FailureCollaborator:
		return "collaborator failure"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// StepError wraps a step failure with the step that produced it and its
// classification. The Runner aborts at the first StepError.
type StepError struct {
	Step Step
	Kind FailureKind
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Step, e.Kind, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

func classify(err error) FailureKind {
	var pe *dnsconfig.PreconditionError
	if errors.As(err, &pe) {
		return FailurePrecondition
	}
	return FailurePermission
}
