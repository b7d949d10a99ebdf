package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the user asked to exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrNoEntries indicates an operation needing a selected entry ran
	// in an empty directory.
	ErrNoEntries = errors.New("no entries")

	// ErrUnknownCommand indicates a keybinding resolved to a command
	// the application does not implement.
	ErrUnknownCommand = errors.New("unknown command")
)

// OperationError wraps a failure with the operation and its target,
// so log lines read "read_dir /srv/media: permission denied".
type OperationError struct {
	Op     string
	Target string
	Err    error
}

// NewOperationError creates an OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
