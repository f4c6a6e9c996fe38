package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrAlreadyRunning indicates Run was called while the loop is running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoBackend indicates New was given a nil backend.
	ErrNoBackend = errors.New("no backend")

	// ErrForeignWidget indicates a widget that does not belong to this
	// application's tree.
	ErrForeignWidget = errors.New("widget is not attached to this application")

	// ErrRootGeometry indicates an attempt to set the root's specs; the root
	// is always sized to the terminal.
	ErrRootGeometry = errors.New("root geometry follows the terminal size")
)

// InitError represents an initialization error.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// OperationError reports a failed mutation on a named widget.
type OperationError struct {
	Op     string // attach, set-size, set-position, ...
	Widget string
	Err    error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Widget, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
