package execute

import (
	"errors"
	"fmt"
)

var (
	ErrMissingProgram = errors.New("missing program name")
	ErrResourceQuery  = errors.New("failed to get rusage")
	ErrSignaled       = errors.New("command was terminated by signal")
)

// SpawnError is returned when the OS could not create the child process.
type SpawnError struct {
	Program string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to run command: %v", e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// NonZeroExitError is returned when the child ran and exited with a code other than 0.
type NonZeroExitError struct {
	Code int
}

func (e *NonZeroExitError) Error() string {
	return fmt.Sprintf("command exited with non-zero code: %d", e.Code)
}

// IsChildFailure reports whether err describes the outcome of a child that
// ran to completion, as opposed to a failure of timej itself.
func IsChildFailure(err error) bool {
	var exitErr *NonZeroExitError
	return errors.As(err, &exitErr) || errors.Is(err, ErrSignaled)
}
