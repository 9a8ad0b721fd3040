package training

import "github.com/pkg/errors"

// ErrConfig and ErrPrecondition are the two failure classes of this package. Every other
// sentinel wraps one of them, so callers can test either the class or the exact cause.
var (
	ErrConfig       = errors.New("invalid network configuration")
	ErrPrecondition = errors.New("precondition violated")
)

var (
	ErrEmptyTrainingSet  = errors.Wrap(ErrConfig, "training set is empty")
	ErrDimensionMismatch = errors.Wrap(ErrConfig, "weight matrix dimensions mismatch")

	ErrNotInputNode  = errors.Wrap(ErrPrecondition, "input set on a non-input node")
	ErrStaleParent   = errors.Wrap(ErrPrecondition, "parent node not evaluated")
	ErrNoForwardPass = errors.Wrap(ErrPrecondition, "no forward pass for the current instance")
	ErrInstanceShape = errors.Wrap(ErrPrecondition, "instance shape does not match the network")
)
