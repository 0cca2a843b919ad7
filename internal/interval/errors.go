package interval

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when an argument is out of its domain,
	// such as a non-positive step.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrPreconditionViolation is returned when an operation needs a valid
	// interval and gets an invalid one.
	ErrPreconditionViolation = errors.New("precondition violation")
)
