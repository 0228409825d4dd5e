package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the editor should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrNoTerminal indicates the terminal collaborator is missing.
	ErrNoTerminal = errors.New("no terminal configured")

	// ErrNoKeySource indicates the key source collaborator is missing.
	ErrNoKeySource = errors.New("no key source configured")
)

// OperationError reports a failed file operation, surfaced on the status bar
// and in the log.
type OperationError struct {
	Op     string // operation name, e.g. "save", "open"
	Target string // file path
	Err    error
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
