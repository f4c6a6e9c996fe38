package widget

import (
	"github.com/dshills/termweave/internal/layout"
	"github.com/dshills/termweave/internal/renderer/core"
)

// Option configures a widget at construction.
type Option func(*Widget)

// WithSize sets the size spec.
func WithSize(s layout.SizeSpec) Option {
	return func(w *Widget) { w.size = s }
}

// WithPos sets the position spec.
func WithPos(p layout.PosSpec) Option {
	return func(w *Widget) { w.pos = p }
}

// WithBackground sets the background fill cell.
func WithBackground(bg core.Cell) Option {
	return func(w *Widget) { w.background = bg }
}

// WithTransparentBackground makes background cells transparent.
func WithTransparentBackground() Option {
	return func(w *Widget) { w.transparentBg = true }
}

// WithPainter sets the content painter.
func WithPainter(p Painter) Option {
	return func(w *Widget) { w.painter = p }
}

// WithFocusable allows the widget to take focus.
func WithFocusable() Option {
	return func(w *Widget) { w.focusable = true }
}

// Hidden creates the widget invisible.
func Hidden() Option {
	return func(w *Widget) { w.visible = false }
}

// Disabled creates the widget disabled.
func Disabled() Option {
	return func(w *Widget) { w.enabled = false }
}
