// Package app wires the renderer, event router and scheduler into a single
// application loop over a backend.
//
// Each tick runs in phases on the loop goroutine:
//
//	tasks   scheduler.Step resumes every ready task
//	paint   invalidated widgets repaint their canvases
//	compose the widget tree is composited into the frame
//	diff    the frame is compared with the last presented one
//	present changed runs are written to the backend
//
// Input events and posted functions are handled between ticks, so tasks,
// handlers and composition never overlap.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/termweave/internal/config"
	"github.com/dshills/termweave/internal/input"
	"github.com/dshills/termweave/internal/layout"
	"github.com/dshills/termweave/internal/logging"
	"github.com/dshills/termweave/internal/renderer"
	"github.com/dshills/termweave/internal/renderer/backend"
	"github.com/dshills/termweave/internal/renderer/core"
	"github.com/dshills/termweave/internal/renderer/diff"
	"github.com/dshills/termweave/internal/renderer/frame"
	"github.com/dshills/termweave/internal/router"
	"github.com/dshills/termweave/internal/scheduler"
	"github.com/dshills/termweave/internal/script"
	"github.com/dshills/termweave/internal/widget"
)

// App is the application facade. Apart from Shutdown, its methods must be
// called from the loop goroutine: before Run, from a handler, from a task,
// or through Post.
type App struct {
	backend backend.Backend
	cfg     *config.Config
	cfgPath string
	logger  *logging.Logger
	log     *slog.Logger
	onFault scheduler.FaultHandler
	logFile io.Closer

	root    *widget.Widget
	router  *router.Router
	sched   *scheduler.Scheduler
	comp    *renderer.Compositor[*widget.Widget]
	differ  *diff.Differ
	current *frame.Frame
	metrics *Metrics

	initialized bool
	running     atomic.Bool

	mu   sync.Mutex
	stop context.CancelFunc
}

// Option configures an App.
type Option func(*App)

// WithConfig uses cfg instead of the defaults.
func WithConfig(cfg *config.Config) Option {
	return func(a *App) { a.cfg = cfg }
}

// WithConfigFile loads settings from path and reloads them while Run is
// active.
func WithConfigFile(path string) Option {
	return func(a *App) { a.cfgPath = path }
}

// WithLogger sets the logger. Its level follows the log_level setting.
func WithLogger(l *logging.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithFaultHandler is called for every task fault, after it is logged.
func WithFaultHandler(fn scheduler.FaultHandler) Option {
	return func(a *App) { a.onFault = fn }
}

// New creates an application drawing to b. The backend is initialized by
// Init or Run.
func New(b backend.Backend, opts ...Option) (*App, error) {
	if b == nil {
		return nil, &InitError{Component: "backend", Err: ErrNoBackend}
	}
	a := &App{backend: b, metrics: NewMetrics()}
	for _, opt := range opts {
		opt(a)
	}

	if a.cfg == nil {
		if a.cfgPath != "" {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return nil, &InitError{Component: "config", Err: err}
			}
			a.cfg = cfg
		} else {
			a.cfg = config.Default()
		}
	} else {
		a.cfg = a.cfg.Clone()
	}
	if err := a.cfg.Validate(); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	if err := a.initLogger(); err != nil {
		return nil, &InitError{Component: "logging", Err: err}
	}

	a.root = widget.NewRoot(0, 0)
	a.root.SetBackground(backgroundCell(a.cfg))
	a.router = router.New(a.root, a.logger.Logger)
	a.sched = scheduler.New(
		scheduler.WithInterval(a.cfg.TickInterval.Std()),
		scheduler.WithLogger(a.logger.Logger),
		scheduler.WithFaultHandler(a.fault),
	)
	a.root.SetObserver(observers{a.router, a.sched})

	a.comp = renderer.NewCompositor[*widget.Widget]()
	a.differ = diff.NewDiffer()
	return a, nil
}

func (a *App) initLogger() error {
	level := logging.ParseLevel(a.cfg.LogLevel)
	if a.logger != nil {
		a.logger.SetLevel(level)
	} else {
		var out io.Writer = io.Discard
		if a.cfg.LogFile != "" {
			f, err := logging.OpenFile(a.cfg.LogFile)
			if err != nil {
				return err
			}
			a.logFile = f
			out = f
		}
		a.logger = logging.New(logging.Options{Level: level, Output: out, NoColor: true})
	}
	a.log = logging.Component(a.logger.Logger, "app")
	return nil
}

func backgroundCell(cfg *config.Config) core.Cell {
	bg, err := cfg.BackgroundColor()
	if err != nil {
		bg = core.ColorDefault
	}
	return core.EmptyCell().WithColors(core.NewColorPair(core.ColorDefault, bg))
}

// observers fans tree removals out to every interested component.
type observers []widget.Observer

func (o observers) Detached(w *widget.Widget) {
	for _, obs := range o {
		obs.Detached(w)
	}
}

// Init initializes the backend and sizes the root to it. It is called by
// Run and Tick and does nothing after the first success.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}
	if err := a.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	a.backend.SetMouse(a.cfg.Mouse)
	a.backend.SetPaste(a.cfg.Paste)

	rows, cols := a.backend.Size()
	a.router.Dispatch(input.ResizeEvent{Rows: rows, Cols: cols})
	a.initialized = true
	a.log.Info("initialized", "rows", rows, "cols", cols, "tick", a.sched.Interval())
	return nil
}

// Root returns the root widget.
func (a *App) Root() *widget.Widget {
	return a.root
}

// Config returns the settings in effect.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Metrics returns the frame metrics.
func (a *App) Metrics() *Metrics {
	return a.metrics
}

// Scheduler returns the task scheduler.
func (a *App) Scheduler() *scheduler.Scheduler {
	return a.sched
}

// Attach adds child as the topmost child of parent, or of the root when
// parent is nil.
func (a *App) Attach(parent, child *widget.Widget) error {
	if parent == nil {
		parent = a.root
	}
	if parent.Root() != a.root {
		return &OperationError{Op: "attach", Widget: child.String(), Err: ErrForeignWidget}
	}
	if err := parent.Add(child); err != nil {
		return &OperationError{Op: "attach", Widget: child.String(), Err: err}
	}
	return nil
}

// Detach removes w and its subtree. Their tasks are cancelled, focus held
// inside the subtree is cleared and their canvases are released.
func (a *App) Detach(w *widget.Widget) {
	if w == nil || w == a.root {
		return
	}
	w.Detach()
}

// SetSizeSpec replaces w's size spec. An invalid spec leaves the previous
// geometry in place. The root always matches the terminal and is rejected.
func (a *App) SetSizeSpec(w *widget.Widget, s layout.SizeSpec) error {
	if w == a.root {
		return &OperationError{Op: "set-size", Widget: w.String(), Err: ErrRootGeometry}
	}
	if err := w.SetSizeSpec(s); err != nil {
		return &OperationError{Op: "set-size", Widget: w.String(), Err: err}
	}
	return nil
}

// SetPositionSpec replaces w's position spec. An invalid spec leaves the
// previous geometry in place.
func (a *App) SetPositionSpec(w *widget.Widget, p layout.PosSpec) error {
	if w == a.root {
		return &OperationError{Op: "set-position", Widget: w.String(), Err: ErrRootGeometry}
	}
	if err := w.SetPosSpec(p); err != nil {
		return &OperationError{Op: "set-position", Widget: w.String(), Err: err}
	}
	return nil
}

// ReorderZ moves w to index among its siblings; later paints on top.
func (a *App) ReorderZ(w *widget.Widget, index int) {
	w.MoveTo(index)
}

// PullToFront makes w the topmost of its siblings.
func (a *App) PullToFront(w *widget.Widget) {
	w.PullToFront()
}

// RequestFocus focuses w if it can take focus.
func (a *App) RequestFocus(w *widget.Widget) bool {
	return a.router.RequestFocus(w)
}

// FocusNext moves focus by delta through the focusable widgets.
func (a *App) FocusNext(delta int) bool {
	return a.router.FocusNext(delta)
}

// Focused returns the focused widget, or nil.
func (a *App) Focused() *widget.Widget {
	return a.router.Focused()
}

// Bounds returns w's resolved bounds in screen coordinates, before
// clipping.
func (a *App) Bounds(w *widget.Widget) core.ScreenRect {
	return w.AbsoluteBounds()
}

// Intersects reports whether the unclipped bounds of a and b overlap.
func (a *App) Intersects(w, other *widget.Widget) bool {
	return router.Intersects(w, other)
}

// HitTest returns the widget that receives a mouse event at (row, col).
func (a *App) HitTest(row, col int) *widget.Widget {
	return a.router.HitTest(row, col)
}

// Spawn starts a task owned by w. It first runs on the next tick.
func (a *App) Spawn(w *widget.Widget, name string, task scheduler.Task) *scheduler.Handle {
	return a.sched.Spawn(w, name, task)
}

// SpawnScript compiles a Lua script for w and starts it.
func (a *App) SpawnScript(w *widget.Widget, name, source string) (*scheduler.Handle, error) {
	task, err := script.NewTask(w, name, source)
	if err != nil {
		return nil, err
	}
	return a.sched.Spawn(w, name, task), nil
}

// Post runs fn on the loop goroutine. Safe to call from any goroutine.
func (a *App) Post(fn func()) {
	a.sched.Post(fn)
}

// Dispatch routes an input event and reports whether it was consumed.
func (a *App) Dispatch(ev input.Event) bool {
	handled := a.router.Dispatch(ev)
	a.metrics.RecordEvent(handled)
	a.log.Debug("event", "event", ev.String(), "handled", handled)
	return handled
}

// Tick runs one full tick: tasks, painters, composition, diff and present.
func (a *App) Tick() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.sched.Step()
	return a.render()
}

// render composes and presents without advancing the clock.
func (a *App) render() error {
	start := time.Now()

	a.root.Refresh()

	rows, cols := a.root.Size()
	if a.current == nil {
		a.current = frame.New(rows, cols)
	} else if r, c := a.current.Size(); r != rows || c != cols {
		a.current = frame.New(rows, cols)
	}
	a.comp.ComposeInto(a.root, a.current)

	u := a.differ.Next(a.current)
	if err := a.backend.Present(u); err != nil {
		// Unknown screen state; repaint everything next time.
		a.differ.Reset()
		return fmt.Errorf("present: %w", err)
	}

	a.metrics.RecordFrame(time.Since(start), u.Changed(), u.Full)
	return nil
}

// Frame returns the last composed frame, or nil before the first tick.
func (a *App) Frame() *frame.Frame {
	return a.current
}

func (a *App) fault(f *scheduler.TaskFault) {
	a.metrics.RecordFault()
	if a.onFault != nil {
		a.onFault(f)
	}
}

// Run drives the application until ctx is done or Shutdown is called.
// Cancellation is a normal exit and returns nil.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Shutdown reads running and stop together.
	a.mu.Lock()
	if a.running.Load() {
		a.mu.Unlock()
		return ErrAlreadyRunning
	}
	a.running.Store(true)
	a.stop = cancel
	a.mu.Unlock()
	defer a.running.Store(false)

	if err := a.Init(); err != nil {
		a.mu.Lock()
		a.stop = nil
		a.mu.Unlock()
		return err
	}

	if err := a.render(); err != nil {
		a.log.Error("initial render failed", "error", err)
	}

	var watcher *config.Watcher
	if a.cfgPath != "" {
		w, err := config.Watch(a.cfgPath, a.reloaded, config.WithWatchLogger(a.logger.Logger))
		if err != nil {
			a.log.Warn("config watch disabled", "path", a.cfgPath, "error", err)
		} else {
			watcher = w
		}
	}

	events := make(chan input.Event)
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go a.pump(events, done, &wg)

	err := a.sched.Run(ctx, events, scheduler.Hooks{
		Deliver: func(ev input.Event) { a.Dispatch(ev) },
		Render: func() {
			if err := a.render(); err != nil {
				a.log.Error("render failed", "error", err)
			}
		},
	})

	a.mu.Lock()
	a.stop = nil
	a.mu.Unlock()

	if watcher != nil {
		_ = watcher.Close()
	}
	close(done)
	// The pump is parked in PollEvent until the backend shuts down.
	a.teardown()
	wg.Wait()

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pump forwards backend events to the loop until the backend is shut down.
func (a *App) pump(events chan<- input.Event, done <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		ev := a.backend.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Running reports whether Run is active.
func (a *App) Running() bool {
	return a.running.Load()
}

// Shutdown stops a running loop, drops all tasks and releases the backend.
// While Run is active it only signals the loop, which tears down on its own
// goroutine. Safe to call more than once.
func (a *App) Shutdown() {
	a.mu.Lock()
	stop, running := a.stop, a.running.Load()
	a.mu.Unlock()
	if stop != nil {
		stop()
		return
	}
	if !running {
		a.teardown()
	}
}

func (a *App) teardown() {
	a.sched.Shutdown()
	if a.initialized {
		a.backend.Shutdown()
		a.initialized = false
		a.differ.Reset()
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// reloaded runs on the config watcher goroutine.
func (a *App) reloaded(cfg *config.Config, err error) {
	if err != nil {
		return
	}
	a.sched.Post(func() { a.applyConfig(cfg) })
}

// applyConfig adopts the settings that can change at runtime. The log file
// is only opened at startup.
func (a *App) applyConfig(cfg *config.Config) {
	a.sched.SetInterval(cfg.TickInterval.Std())
	a.logger.SetLevel(logging.ParseLevel(cfg.LogLevel))
	if cfg.Background != a.cfg.Background {
		a.root.SetBackground(backgroundCell(cfg))
	}
	if cfg.Mouse != a.cfg.Mouse {
		a.backend.SetMouse(cfg.Mouse)
	}
	if cfg.Paste != a.cfg.Paste {
		a.backend.SetPaste(cfg.Paste)
	}
	cfg.LogFile = a.cfg.LogFile
	a.cfg = cfg
	a.log.Info("config applied", "tick", cfg.TickInterval.String(), "level", cfg.LogLevel)
}
