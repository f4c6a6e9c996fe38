package widget

import (
	"github.com/dshills/termweave/internal/layout"
	"github.com/dshills/termweave/internal/renderer/canvas"
	"github.com/dshills/termweave/internal/renderer/core"
)

// SizeSpec returns the current size spec.
func (w *Widget) SizeSpec() layout.SizeSpec {
	return w.size
}

// PosSpec returns the current position spec.
func (w *Widget) PosSpec() layout.PosSpec {
	return w.pos
}

// SetSizeSpec validates and applies a size spec, then re-resolves w and,
// if its size changed, its descendants. On error the previous spec and
// geometry are kept.
func (w *Widget) SetSizeSpec(s layout.SizeSpec) error {
	if err := s.Validate(); err != nil {
		return err
	}
	w.size = s
	w.resolve()
	return nil
}

// SetPosSpec validates and applies a position spec. On error the previous
// spec and geometry are kept.
func (w *Widget) SetPosSpec(p layout.PosSpec) error {
	if err := p.Validate(); err != nil {
		return err
	}
	w.pos = p
	w.resolve()
	return nil
}

// MoveBy shifts an absolute position by the given delta. Hinted axes get
// the delta added to their offset.
func (w *Widget) MoveBy(dRow, dCol int) {
	p := w.pos
	if p.TopHint.Set {
		p.TopOffset += dRow
	} else {
		p.Top += dRow
	}
	if p.LeftHint.Set {
		p.LeftOffset += dCol
	} else {
		p.Left += dCol
	}
	w.pos = p
	w.resolve()
}

// SetRootSize forces w's size to the terminal dimensions at origin (0, 0)
// and re-resolves every descendant.
func (w *Widget) SetRootSize(rows, cols int) {
	w.size = layout.Fixed(rows, cols)
	w.pos = layout.At(0, 0)
	w.resolveTree()
}

// Bounds returns the last resolved rectangle in the parent's coordinates.
func (w *Widget) Bounds() core.ScreenRect {
	return w.bounds
}

// Size returns the resolved (height, width).
func (w *Widget) Size() (height, width int) {
	return w.bounds.Height(), w.bounds.Width()
}

// AbsoluteBounds returns the unclipped resolved rectangle in screen
// coordinates.
func (w *Widget) AbsoluteBounds() core.ScreenRect {
	r := w.bounds
	for p := w.parent; p != nil; p = p.parent {
		r = r.Translate(p.bounds.Top, p.bounds.Left)
	}
	return r
}

// ClippedBounds returns the absolute rectangle clipped by every ancestor.
func (w *Widget) ClippedBounds() core.ScreenRect {
	r := w.AbsoluteBounds()
	for p := w.parent; p != nil; p = p.parent {
		r = r.Intersection(p.AbsoluteBounds())
	}
	return r
}

// ToLocal converts screen coordinates into w's coordinate frame.
func (w *Widget) ToLocal(row, col int) (int, int) {
	abs := w.AbsoluteBounds()
	return row - abs.Top, col - abs.Left
}

// Intersects reports whether the unclipped absolute bounds of w and other
// overlap. Clipping by ancestors is ignored, so widgets partly or wholly
// outside their parents still collide by their logical extent.
func (w *Widget) Intersects(other *Widget) bool {
	return w.AbsoluteBounds().Intersects(other.AbsoluteBounds())
}

func (w *Widget) parentSize() (int, int) {
	if w.parent == nil {
		return 0, 0
	}
	return w.parent.Size()
}

// resolve recomputes w's bounds and descends only if its size changed.
func (w *Widget) resolve() {
	if w.apply() {
		for _, c := range w.children {
			c.resolve()
		}
	}
}

// resolveTree recomputes the whole subtree unconditionally.
func (w *Widget) resolveTree() {
	w.apply()
	for _, c := range w.children {
		c.resolveTree()
	}
}

// apply resolves w's own rectangle and keeps the canvas in step. It
// reports whether the size changed.
func (w *Widget) apply() bool {
	ph, pw := w.parentSize()
	h, wd := w.size.Resolve(ph, pw)
	top, left := w.pos.Resolve(h, wd, ph, pw)

	old := w.bounds
	w.bounds = core.RectFromSize(top, left, h, wd)
	resized := old.Height() != h || old.Width() != wd

	switch {
	case w.canvas == nil:
		w.canvas = canvas.New(h, wd, w.background)
		w.canvas.SetTransparentBackground(w.transparentBg)
		w.invalid = true
	case resized:
		w.canvas.Resize(h, wd)
		w.invalid = true
	}
	return resized
}
