// Package router delivers input events to the widget tree and owns focus.
//
// Key and paste events go to the focused widget and bubble toward the root
// until a handler consumes them. Mouse events go to the deepest widget under
// the pointer, searching topmost children first, and bubble the same way.
// Resize events go to the root only, after the whole tree has been resolved
// against the new terminal size.
package router

import (
	"log/slog"
	"time"

	"github.com/dshills/termweave/internal/input"
	"github.com/dshills/termweave/internal/logging"
	"github.com/dshills/termweave/internal/renderer/core"
	"github.com/dshills/termweave/internal/widget"
)

// Router dispatches events for a single root widget.
type Router struct {
	root    *widget.Widget
	focused *widget.Widget
	clicks  *input.ClickTracker
	now     func() time.Time
	log     *slog.Logger
}

// New creates a router for root.
func New(root *widget.Widget, logger *slog.Logger) *Router {
	return &Router{
		root:   root,
		clicks: input.NewClickTracker(input.DefaultClickInterval, input.DefaultClickDistance),
		now:    time.Now,
		log:    logging.Component(logger, "router"),
	}
}

// Root returns the root widget.
func (r *Router) Root() *widget.Widget {
	return r.root
}

// Dispatch delivers ev and reports whether a widget consumed it.
// Resize events always report true.
func (r *Router) Dispatch(ev input.Event) bool {
	switch e := ev.(type) {
	case input.KeyEvent:
		return r.bubble(r.keyTarget(), func(w *widget.Widget) bool { return w.HandleKey(e) })
	case input.PasteEvent:
		return r.bubble(r.keyTarget(), func(w *widget.Widget) bool { return w.HandlePaste(e) })
	case input.MouseEvent:
		e = r.clicks.Stamp(e, r.now())
		target := r.HitTest(e.Row, e.Col)
		return r.bubble(target, func(w *widget.Widget) bool { return w.HandleMouse(e) })
	case input.ResizeEvent:
		r.root.SetRootSize(e.Rows, e.Cols)
		r.root.HandleResize(e)
		r.log.Debug("resized", "rows", e.Rows, "cols", e.Cols)
		return true
	default:
		r.log.Warn("unknown event", "event", ev)
		return false
	}
}

func (r *Router) keyTarget() *widget.Widget {
	r.dropStaleFocus()
	if r.focused != nil {
		return r.focused
	}
	return r.root
}

// bubble offers the event to target and then each ancestor. Disabled
// widgets are passed over.
func (r *Router) bubble(target *widget.Widget, handle func(*widget.Widget) bool) bool {
	for w := target; w != nil; w = w.Parent() {
		if !w.Enabled() {
			continue
		}
		if handle(w) {
			return true
		}
	}
	return false
}

// HitTest returns the deepest enabled widget whose clipped bounds contain
// the screen position, preferring later siblings. Hidden widgets can still
// be hit. It returns nil when the point is outside the root.
func (r *Router) HitTest(row, col int) *widget.Widget {
	b := r.root.Bounds()
	clip := core.RectFromSize(0, 0, b.Height(), b.Width())
	return hit(r.root, core.NewScreenPos(row, col), -b.Top, -b.Left, clip)
}

func hit(w *widget.Widget, pos core.ScreenPos, top, left int, clip core.ScreenRect) *widget.Widget {
	if !w.Enabled() {
		return nil
	}
	abs := w.Bounds().Translate(top, left)
	vis := abs.Intersection(clip)
	if !vis.Contains(pos) {
		return nil
	}
	children := w.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if h := hit(children[i], pos, abs.Top, abs.Left, vis); h != nil {
			return h
		}
	}
	return w
}

// Intersects reports whether the logical, unclipped bounds of a and b
// overlap.
func Intersects(a, b *widget.Widget) bool {
	return a.Intersects(b)
}
