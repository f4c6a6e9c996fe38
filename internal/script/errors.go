package script

import (
	"errors"
	"fmt"
)

// Errors returned by NewTask.
var (
	// ErrNoOwner is returned when a script is created without a widget.
	ErrNoOwner = errors.New("script needs an owning widget")

	// ErrNoUpdate is returned when the chunk does not define update().
	ErrNoUpdate = errors.New("script does not define update()")
)

// Error reports a script that failed to compile or raised an error while
// running.
type Error struct {
	// Name identifies the script.
	Name string
	// Tick is the tick the error was raised on, zero at compile time.
	Tick uint64
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Tick == 0 {
		return fmt.Sprintf("script %s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("script %s at tick %d: %v", e.Name, e.Tick, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
