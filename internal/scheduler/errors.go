package scheduler

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Scheduler errors.
var (
	// ErrCancelled is returned from Yielder calls once the task was
	// cancelled.
	ErrCancelled = errors.New("task cancelled")

	// ErrTaskPanic is matched by faults caused by a panic.
	ErrTaskPanic = errors.New("task panicked")
)

// TaskFault reports a task that failed or panicked.
type TaskFault struct {
	// WidgetID and WidgetName identify the owning widget. Both are zero for
	// tasks without an owner.
	WidgetID   uuid.UUID
	WidgetName string

	// Task is the name given at spawn time.
	Task string

	// Err is the returned error, or nil when the task panicked.
	Err error

	// PanicValue and Stack are set when the task panicked.
	PanicValue any
	Stack      []byte
}

// Error implements the error interface.
func (f *TaskFault) Error() string {
	owner := "no widget"
	if f.WidgetName != "" || f.WidgetID != uuid.Nil {
		owner = fmt.Sprintf("widget %s (%s)", f.WidgetName, f.WidgetID)
	}
	if f.Panicked() {
		return fmt.Sprintf("task %q of %s panicked: %v", f.Task, owner, f.PanicValue)
	}
	return fmt.Sprintf("task %q of %s failed: %v", f.Task, owner, f.Err)
}

// Unwrap returns the underlying error.
func (f *TaskFault) Unwrap() error {
	return f.Err
}

// Is matches ErrTaskPanic for panicking tasks.
func (f *TaskFault) Is(target error) bool {
	return target == ErrTaskPanic && f.Panicked()
}

// Panicked reports whether the fault came from a panic.
func (f *TaskFault) Panicked() bool {
	return f.Stack != nil
}

// panicError carries a recovered panic across a routine's goroutine.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}
