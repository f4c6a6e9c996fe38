package widget

import (
	"github.com/dshills/termweave/internal/input"
	"github.com/dshills/termweave/internal/renderer/canvas"
	"github.com/dshills/termweave/internal/renderer/core"
)

// Visible reports the widget's own visibility flag.
func (w *Widget) Visible() bool { return w.visible }

// Enabled reports the widget's own enabled flag.
func (w *Widget) Enabled() bool { return w.enabled }

// Focusable reports whether the widget accepts focus.
func (w *Widget) Focusable() bool { return w.focusable }

// SetVisible shows or hides the widget. Hidden widgets are not painted but
// still receive mouse events.
func (w *Widget) SetVisible(v bool) { w.visible = v }

// SetEnabled enables or disables the widget. Disabled widgets are neither
// painted nor dispatched to.
func (w *Widget) SetEnabled(v bool) { w.enabled = v }

// SetFocusable sets whether the widget may take focus.
func (w *Widget) SetFocusable(v bool) { w.focusable = v }

// Drawable reports whether the compositor should paint w.
func (w *Widget) Drawable() bool {
	return w.visible && w.enabled
}

// Showing reports whether w and every ancestor are drawable.
func (w *Widget) Showing() bool {
	for p := w; p != nil; p = p.parent {
		if !p.Drawable() {
			return false
		}
	}
	return true
}

// Active reports whether w and every ancestor are enabled.
func (w *Widget) Active() bool {
	for p := w; p != nil; p = p.parent {
		if !p.enabled {
			return false
		}
	}
	return true
}

// Canvas returns the widget's canvas, or nil after it was removed.
func (w *Widget) Canvas() *canvas.Canvas {
	return w.canvas
}

// Background returns the background fill cell.
func (w *Widget) Background() core.Cell {
	return w.background
}

// SetBackground changes the fill cell and invalidates the content.
func (w *Widget) SetBackground(bg core.Cell) {
	w.background = bg
	if w.canvas != nil {
		w.canvas.SetBackground(bg)
	}
	w.invalid = true
}

// SetTransparentBackground makes cells still holding the background fill
// show whatever lies beneath.
func (w *Widget) SetTransparentBackground(on bool) {
	w.transparentBg = on
	if w.canvas != nil {
		w.canvas.SetTransparentBackground(on)
	}
}

// SetPainter installs the content painter and invalidates the content.
func (w *Widget) SetPainter(p Painter) {
	w.painter = p
	w.invalid = true
}

// Painter returns the installed painter.
func (w *Widget) Painter() Painter {
	return w.painter
}

// Invalidate schedules a repaint before the next composition.
func (w *Widget) Invalidate() {
	w.invalid = true
}

// Refresh runs painters for every invalidated widget in the subtree.
// Widgets without a painter keep their canvas content.
func (w *Widget) Refresh() {
	w.Walk(func(d *Widget) bool {
		if !d.invalid || d.canvas == nil {
			return true
		}
		if d.painter != nil {
			d.canvas.Clear()
			d.painter.Paint(d.canvas)
		}
		d.invalid = false
		return true
	})
}

// HandleKey delivers a key event to w's handler.
func (w *Widget) HandleKey(ev input.KeyEvent) bool {
	return w.OnKey != nil && w.OnKey(ev)
}

// HandleMouse delivers a mouse event to w's handler. Row and Col stay in
// screen coordinates; use ToLocal to translate.
func (w *Widget) HandleMouse(ev input.MouseEvent) bool {
	return w.OnMouse != nil && w.OnMouse(ev)
}

// HandlePaste delivers a paste event to w's handler.
func (w *Widget) HandlePaste(ev input.PasteEvent) bool {
	return w.OnPaste != nil && w.OnPaste(ev)
}

// HandleResize delivers a resize notification to w's handler.
func (w *Widget) HandleResize(ev input.ResizeEvent) {
	if w.OnResize != nil {
		w.OnResize(ev)
	}
}

// Focus runs the focus-gained handler.
func (w *Widget) Focus() {
	if w.OnFocus != nil {
		w.OnFocus()
	}
}

// Blur runs the focus-lost handler.
func (w *Widget) Blur() {
	if w.OnBlur != nil {
		w.OnBlur()
	}
}
