// Package backend connects the renderer to a display and an input source.
package backend

import (
	"errors"
	"sync"

	"github.com/dshills/termweave/internal/input"
	"github.com/dshills/termweave/internal/renderer/diff"
	"github.com/dshills/termweave/internal/renderer/frame"
)

// ErrNotInitialized is returned by Present before Init.
var ErrNotInitialized = errors.New("backend not initialized")

// Backend is the output and input collaborator of the renderer.
type Backend interface {
	// Init prepares the display. Must be called before any other method.
	Init() error

	// Shutdown releases the display and unblocks PollEvent.
	Shutdown()

	// Size returns the display dimensions.
	Size() (rows, cols int)

	// Present writes the changed cells of u to the display.
	Present(u diff.Update) error

	// PollEvent blocks for the next input event. It returns nil once the
	// backend has shut down.
	PollEvent() input.Event

	// SetMouse toggles mouse reporting.
	SetMouse(on bool)

	// SetPaste toggles bracketed paste.
	SetPaste(on bool)
}

// NullBackend is an in-memory backend for tests and headless use. It keeps
// the presented cells in a frame.
type NullBackend struct {
	mu       sync.Mutex
	rows     int
	cols     int
	screen   *frame.Frame
	presents int
	mouse    bool
	paste    bool

	events chan input.Event
	done   chan struct{}
	once   sync.Once
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(rows, cols int) *NullBackend {
	return &NullBackend{
		rows:   rows,
		cols:   cols,
		events: make(chan input.Event, 100),
		done:   make(chan struct{}),
	}
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.screen = frame.New(b.rows, b.cols)
	return nil
}

func (b *NullBackend) Shutdown() {
	b.once.Do(func() { close(b.done) })
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rows, b.cols
}

func (b *NullBackend) Present(u diff.Update) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.screen == nil {
		return ErrNotInitialized
	}
	if rows, cols := b.screen.Size(); u.Full || rows != u.Rows || cols != u.Cols {
		b.screen = frame.New(u.Rows, u.Cols)
	}
	diff.Apply(b.screen, u.Runs)
	b.presents++
	return nil
}

func (b *NullBackend) PollEvent() input.Event {
	select {
	case ev := <-b.events:
		return ev
	case <-b.done:
		return nil
	}
}

func (b *NullBackend) SetMouse(on bool) {
	b.mu.Lock()
	b.mouse = on
	b.mu.Unlock()
}

func (b *NullBackend) SetPaste(on bool) {
	b.mu.Lock()
	b.paste = on
	b.mu.Unlock()
}

// PostEvent queues an event for PollEvent. Events are dropped when the
// queue is full.
func (b *NullBackend) PostEvent(ev input.Event) {
	select {
	case b.events <- ev:
	default:
	}
}

// Resize changes the reported size and queues a resize event.
func (b *NullBackend) Resize(rows, cols int) {
	b.mu.Lock()
	b.rows, b.cols = rows, cols
	b.mu.Unlock()
	b.PostEvent(input.ResizeEvent{Rows: rows, Cols: cols})
}

// Screen returns a copy of the presented cells.
func (b *NullBackend) Screen() *frame.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.screen == nil {
		return frame.New(0, 0)
	}
	return b.screen.Clone()
}

// Presents returns how many updates were presented.
func (b *NullBackend) Presents() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.presents
}

// Features reports the mouse and paste settings.
func (b *NullBackend) Features() (mouse, paste bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mouse, b.paste
}
