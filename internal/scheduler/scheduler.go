package scheduler

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/dshills/termweave/internal/logging"
	"github.com/dshills/termweave/internal/widget"
)

// DefaultInterval is the default tick interval.
const DefaultInterval = 20 * time.Millisecond

// FaultHandler receives task faults on the loop goroutine.
type FaultHandler func(*TaskFault)

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithInterval sets the tick interval.
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) { s.log = logging.Component(l, "scheduler") }
}

// WithFaultHandler sets the fault handler.
func WithFaultHandler(fn FaultHandler) Option {
	return func(s *Scheduler) { s.onFault = fn }
}

// Scheduler runs tasks cooperatively on a tick clock. Apart from Post,
// Handle.Cancel and Interval, its methods must be called from the loop
// goroutine.
type Scheduler struct {
	interval time.Duration
	tick     uint64
	elapsed  time.Duration
	nextID   uint64
	tasks    []*Handle
	onFault  FaultHandler
	log      *slog.Logger

	intervalChanged bool

	mu      sync.Mutex
	mailbox []func()
	wakeup  chan struct{}
}

// New creates a scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		interval: DefaultInterval,
		log:      logging.Discard(),
		wakeup:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Interval returns the tick interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// SetInterval changes the tick interval. Non-positive values are ignored.
// Sleeps already in progress keep their tick count.
func (s *Scheduler) SetInterval(d time.Duration) {
	if d <= 0 || d == s.interval {
		return
	}
	s.interval = d
	s.intervalChanged = true
	s.log.Info("tick interval changed", "interval", d)
}

// Tick returns the number of the last completed tick.
func (s *Scheduler) Tick() uint64 {
	return s.tick
}

// Elapsed returns the time on the tick clock.
func (s *Scheduler) Elapsed() time.Duration {
	return s.elapsed
}

// Len returns the number of live tasks.
func (s *Scheduler) Len() int {
	n := 0
	for _, h := range s.tasks {
		if !h.finished {
			n++
		}
	}
	return n
}

// Spawn registers a task owned by owner (which may be nil). The task first
// runs on the next tick, including when spawned by another task.
func (s *Scheduler) Spawn(owner *widget.Widget, name string, task Task) *Handle {
	s.nextID++
	h := &Handle{
		id:    s.nextID,
		name:  name,
		owner: owner,
		task:  task,
		wake:  s.tick + 1,
		done:  make(chan struct{}),
	}
	s.tasks = append(s.tasks, h)
	s.log.Debug("task spawned", "task", name, "widget", owner)
	return h
}

// CancelWhere cancels every live task whose owner matches. Tasks without
// an owner are never matched.
func (s *Scheduler) CancelWhere(match func(owner *widget.Widget) bool) int {
	n := 0
	for _, h := range s.tasks {
		if h.finished || h.owner == nil || h.Cancelled() {
			continue
		}
		if match(h.owner) {
			h.Cancel()
			n++
		}
	}
	return n
}

// CancelOwner cancels every task owned by w.
func (s *Scheduler) CancelOwner(w *widget.Widget) int {
	return s.CancelWhere(func(o *widget.Widget) bool { return o == w })
}

// Detached cancels the tasks of every widget in the removed subtree. It
// satisfies widget.Observer.
func (s *Scheduler) Detached(w *widget.Widget) {
	if n := s.CancelWhere(w.Contains); n > 0 {
		s.log.Debug("cancelled tasks of detached subtree", "widget", w, "tasks", n)
	}
}

// Step advances the clock by one tick and resumes every ready task in
// spawn order. Tasks spawned during the step first run on the next tick.
func (s *Scheduler) Step() {
	s.tick++
	s.elapsed += s.interval

	n := len(s.tasks)
	for i := 0; i < n; i++ {
		h := s.tasks[i]
		if h.finished {
			continue
		}
		if h.Cancelled() || h.wake <= s.tick {
			s.resume(h)
		}
	}

	live := s.tasks[:0]
	for _, h := range s.tasks {
		if !h.finished {
			live = append(live, h)
		}
	}
	clear(s.tasks[len(live):])
	s.tasks = live
}

func (s *Scheduler) resume(h *Handle) {
	ctx := &Context{Tick: s.tick, Now: s.elapsed, Interval: s.interval, handle: h}
	wasCancelled := h.Cancelled()

	susp, fault := s.safeStep(h, ctx)
	switch {
	case fault != nil:
		s.finish(h, fault)
	case wasCancelled || susp.kind == suspendDone:
		s.finish(h, nil)
	case susp.kind == suspendFail:
		s.finish(h, s.faultFor(h, susp.err))
	default:
		h.wake = s.tick + susp.ticksFor(s.interval)
	}
}

// safeStep runs one step, converting a panic into a fault.
func (s *Scheduler) safeStep(h *Handle, ctx *Context) (susp Suspend, fault *TaskFault) {
	defer func() {
		if r := recover(); r != nil {
			fault = s.newFault(h)
			fault.PanicValue = r
			fault.Stack = debug.Stack()
		}
	}()
	return h.task.Step(ctx), nil
}

func (s *Scheduler) newFault(h *Handle) *TaskFault {
	f := &TaskFault{Task: h.name}
	if h.owner != nil {
		f.WidgetID = h.owner.ID
		f.WidgetName = h.owner.Name
	}
	return f
}

func (s *Scheduler) faultFor(h *Handle, err error) *TaskFault {
	f := s.newFault(h)
	var pe *panicError
	if errors.As(err, &pe) {
		f.PanicValue = pe.value
		f.Stack = pe.stack
		return f
	}
	f.Err = err
	return f
}

func (s *Scheduler) finish(h *Handle, fault *TaskFault) {
	h.finished = true
	h.fault = fault
	if r, ok := h.task.(Releaser); ok {
		r.Release()
	}
	close(h.done)

	if fault == nil {
		s.log.Debug("task finished", "task", h.name, "widget", h.owner, "cancelled", h.Cancelled())
		return
	}
	s.log.Error("task fault", "task", h.name, "widget", h.owner, "error", fault)
	if fault.Panicked() {
		s.log.Debug("task panic stack", "task", h.name, "stack", string(fault.Stack))
	}
	if s.onFault != nil {
		func() {
			defer func() {
				if r := recover(); r != nil {
					s.log.Error("fault handler panicked", "panic", fmt.Sprint(r))
				}
			}()
			s.onFault(fault)
		}()
	}
}

// Releaser is implemented by tasks holding resources beyond a single step.
// Release is called once when the task finishes, fails or is dropped.
type Releaser interface {
	Release()
}

// Shutdown drops every task without resuming it.
func (s *Scheduler) Shutdown() {
	for _, h := range s.tasks {
		if !h.finished {
			h.Cancel()
			s.finish(h, nil)
		}
	}
	s.tasks = nil
}

// Post queues fn to run on the loop goroutine between phases. Safe to call
// from any goroutine.
func (s *Scheduler) Post(fn func()) {
	s.mu.Lock()
	s.mailbox = append(s.mailbox, fn)
	s.mu.Unlock()

	select {
	case s.wakeup <- struct{}{}:
	default:
	}
}

// Drain runs queued functions in the order they were posted.
func (s *Scheduler) Drain() {
	s.mu.Lock()
	queued := s.mailbox
	s.mailbox = nil
	s.mu.Unlock()

	for _, fn := range queued {
		fn()
	}
}
