package router

import "github.com/dshills/termweave/internal/widget"

// Focused returns the focused widget, or nil. A widget that was hidden,
// disabled or made unfocusable since it took focus loses it here.
func (r *Router) Focused() *widget.Widget {
	r.dropStaleFocus()
	return r.focused
}

// dropStaleFocus clears focus held by a widget that could no longer request
// it. Visibility and enabled flags change without notifying the router, so
// focus is checked whenever it is used.
func (r *Router) dropStaleFocus() {
	if r.focused != nil && !r.canFocus(r.focused) {
		r.log.Debug("focus dropped", "widget", r.focused)
		r.setFocus(nil)
	}
}

// RequestFocus moves focus to w. It fails, leaving focus unchanged, unless
// w is attached under this router's root, showing, enabled and focusable.
func (r *Router) RequestFocus(w *widget.Widget) bool {
	if !r.canFocus(w) {
		r.log.Debug("focus refused", "widget", w)
		return false
	}
	if w == r.focused {
		return true
	}
	r.setFocus(w)
	return true
}

// ClearFocus drops focus.
func (r *Router) ClearFocus() {
	r.setFocus(nil)
}

func (r *Router) canFocus(w *widget.Widget) bool {
	return w != nil && w.Root() == r.root && w.Focusable() && w.Showing()
}

func (r *Router) setFocus(w *widget.Widget) {
	old := r.focused
	if old == w {
		return
	}
	r.focused = w
	if old != nil {
		old.Blur()
	}
	if w != nil {
		w.Focus()
	}
	r.log.Debug("focus changed", "from", old, "to", w)
}

// FocusNext moves focus by delta among focusable widgets in paint order,
// wrapping around. With nothing focused it starts before the first
// candidate. It reports whether any widget could take focus.
func (r *Router) FocusNext(delta int) bool {
	r.dropStaleFocus()
	var candidates []*widget.Widget
	r.root.Walk(func(w *widget.Widget) bool {
		if !w.Drawable() {
			return false
		}
		if w.Focusable() {
			candidates = append(candidates, w)
		}
		return true
	})
	if len(candidates) == 0 {
		return false
	}

	idx := -1
	for i, c := range candidates {
		if c == r.focused {
			idx = i
			break
		}
	}
	if idx < 0 && delta < 0 {
		idx = 0
	}
	n := len(candidates)
	next := ((idx+delta)%n + n) % n
	r.setFocus(candidates[next])
	return true
}

// Detached clears focus when the focused widget was inside the removed
// subtree. It satisfies widget.Observer.
func (r *Router) Detached(w *widget.Widget) {
	if r.focused != nil && w.Contains(r.focused) {
		r.setFocus(nil)
	}
}
