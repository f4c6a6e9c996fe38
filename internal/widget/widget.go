package widget

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/termweave/internal/input"
	"github.com/dshills/termweave/internal/layout"
	"github.com/dshills/termweave/internal/renderer/canvas"
	"github.com/dshills/termweave/internal/renderer/core"
)

// Observer is notified about structural changes below a root widget.
type Observer interface {
	// Detached is called after w (and its subtree) left the tree.
	Detached(w *Widget)
}

// Widget is a node in the widget tree.
type Widget struct {
	// ID is a stable identity used for fault attribution and logging.
	ID uuid.UUID
	// Name is a diagnostic label.
	Name string

	size   layout.SizeSpec
	pos    layout.PosSpec
	bounds core.ScreenRect

	visible   bool
	enabled   bool
	focusable bool

	background    core.Cell
	transparentBg bool
	canvas        *canvas.Canvas
	painter       Painter
	invalid       bool

	parent   *Widget
	children []*Widget
	observer Observer

	// Event handlers. Returning true consumes the event and stops bubbling.
	OnKey    func(input.KeyEvent) bool
	OnMouse  func(input.MouseEvent) bool
	OnPaste  func(input.PasteEvent) bool
	OnResize func(input.ResizeEvent)
	OnFocus  func()
	OnBlur   func()
}

// New creates a detached widget. Spec options are validated; the first
// invalid spec is returned as an error.
func New(name string, opts ...Option) (*Widget, error) {
	w := &Widget{
		ID:         uuid.New(),
		Name:       name,
		visible:    true,
		enabled:    true,
		background: core.EmptyCell(),
		invalid:    true,
	}
	for _, opt := range opts {
		opt(w)
	}
	if err := w.size.Validate(); err != nil {
		return nil, fmt.Errorf("widget %q: %w", name, err)
	}
	if err := w.pos.Validate(); err != nil {
		return nil, fmt.Errorf("widget %q: %w", name, err)
	}
	w.resolveTree()
	return w, nil
}

// MustNew is like New but panics on an invalid spec.
func MustNew(name string, opts ...Option) *Widget {
	w, err := New(name, opts...)
	if err != nil {
		panic(err)
	}
	return w
}

// NewRoot creates a root widget sized to the terminal.
func NewRoot(rows, cols int) *Widget {
	w := MustNew("root", WithSize(layout.Fixed(rows, cols)))
	w.focusable = true
	return w
}

// String returns the name and short ID.
func (w *Widget) String() string {
	if w == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s#%s", w.Name, w.ID.String()[:8])
}

// SetObserver installs the observer notified about detaches below w.
// Only the root's observer is consulted.
func (w *Widget) SetObserver(o Observer) {
	w.observer = o
}

// Parent returns the parent, or nil for roots and detached widgets.
func (w *Widget) Parent() *Widget {
	return w.parent
}

// Children returns the children in paint order. The slice must not be
// modified.
func (w *Widget) Children() []*Widget {
	return w.children
}

// Root returns the topmost ancestor, which is w itself when detached.
func (w *Widget) Root() *Widget {
	r := w
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// IsAncestorOf reports whether w is a strict ancestor of other.
func (w *Widget) IsAncestorOf(other *Widget) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == w {
			return true
		}
	}
	return false
}

// Contains reports whether other is w or a descendant of w.
func (w *Widget) Contains(other *Widget) bool {
	return other == w || w.IsAncestorOf(other)
}

// Walk visits w and its descendants depth-first in paint order. Returning
// false from fn skips the visited widget's children.
func (w *Widget) Walk(fn func(*Widget) bool) {
	if !fn(w) {
		return
	}
	for _, c := range w.children {
		c.Walk(fn)
	}
}

// Add attaches child as the topmost child of w and resolves its subtree.
func (w *Widget) Add(child *Widget) error {
	if child.Contains(w) {
		return fmt.Errorf("add %s to %s: %w", child, w, ErrCycle)
	}
	if child.parent != nil {
		return fmt.Errorf("add %s to %s: %w", child, w, ErrAlreadyAttached)
	}
	child.parent = w
	w.children = append(w.children, child)
	child.resolveTree()
	return nil
}

// Remove detaches child from w. Removing a widget that is not a child of w
// is a no-op. Canvases in the removed subtree are released and the root's
// observer is notified.
func (w *Widget) Remove(child *Widget) {
	if child == nil || child.parent != w {
		return
	}
	idx := w.indexOf(child)
	w.children = append(w.children[:idx], w.children[idx+1:]...)
	child.parent = nil

	child.Walk(func(d *Widget) bool {
		d.canvas = nil
		d.invalid = true
		return true
	})

	if obs := w.Root().observer; obs != nil {
		obs.Detached(child)
	}
}

// Detach removes w from its parent. Detaching an unattached widget is a
// no-op.
func (w *Widget) Detach() {
	if w.parent != nil {
		w.parent.Remove(w)
	}
}

func (w *Widget) indexOf(child *Widget) int {
	for i, c := range w.children {
		if c == child {
			return i
		}
	}
	return -1
}

// MoveTo changes w's z-order among its siblings. Index 0 paints first
// (bottom); out of range indices are clamped.
func (w *Widget) MoveTo(index int) {
	p := w.parent
	if p == nil {
		return
	}
	from := p.indexOf(w)
	index = max(0, min(index, len(p.children)-1))
	if from == index {
		return
	}
	p.children = append(p.children[:from], p.children[from+1:]...)
	p.children = append(p.children[:index], append([]*Widget{w}, p.children[index:]...)...)
}

// PullToFront moves w above all its siblings.
func (w *Widget) PullToFront() {
	if w.parent != nil {
		w.MoveTo(len(w.parent.children) - 1)
	}
}

// ZIndex returns w's position among its siblings, or -1 if detached.
func (w *Widget) ZIndex() int {
	if w.parent == nil {
		return -1
	}
	return w.parent.indexOf(w)
}
