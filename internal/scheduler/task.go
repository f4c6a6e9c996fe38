package scheduler

import (
	"sync/atomic"
	"time"

	"github.com/dshills/termweave/internal/widget"
)

// Task is a resumable unit of work.
type Task interface {
	// Step runs the task until its next suspension point.
	Step(ctx *Context) Suspend
}

// TaskFunc adapts a function to Task.
type TaskFunc func(ctx *Context) Suspend

// Step calls f(ctx).
func (f TaskFunc) Step(ctx *Context) Suspend { return f(ctx) }

// Context describes the current resumption.
type Context struct {
	// Tick is the number of the tick being run, starting at 1.
	Tick uint64
	// Now is the elapsed time on the tick clock.
	Now time.Duration
	// Interval is the current tick interval.
	Interval time.Duration

	handle *Handle
}

// Owner returns the widget the task belongs to, or nil.
func (c *Context) Owner() *widget.Widget {
	return c.handle.owner
}

// Name returns the task name.
func (c *Context) Name() string {
	return c.handle.name
}

// Cancelled reports whether this is the final resumption of a cancelled
// task.
func (c *Context) Cancelled() bool {
	return c.handle.cancelled.Load()
}

// Handle refers to a spawned task.
type Handle struct {
	id    uint64
	name  string
	owner *widget.Widget
	task  Task

	wake      uint64
	cancelled atomic.Bool
	finished  bool
	fault     *TaskFault
	done      chan struct{}
}

// Name returns the task name.
func (h *Handle) Name() string {
	return h.name
}

// Owner returns the owning widget, or nil.
func (h *Handle) Owner() *widget.Widget {
	return h.owner
}

// Cancel requests cooperative cancellation. The task is resumed once more
// on the next tick with Context.Cancelled reporting true, then dropped.
// Safe to call from any goroutine.
func (h *Handle) Cancel() {
	h.cancelled.Store(true)
}

// Cancelled reports whether Cancel was called.
func (h *Handle) Cancelled() bool {
	return h.cancelled.Load()
}

// Done is closed once the task has finished for any reason.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Fault returns the failure that ended the task, or nil. Only meaningful
// after Done is closed.
func (h *Handle) Fault() *TaskFault {
	return h.fault
}
