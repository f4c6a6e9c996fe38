// Package input defines the typed events delivered to the widget tree.
//
// Events are produced by a backend, which owns raw terminal decoding, and
// consumed by the router. Four kinds exist:
//
//   - KeyEvent: a symbolic key or a literal character plus modifiers
//   - MouseEvent: a button action at a screen cell, with click count
//   - PasteEvent: a bracketed paste delivered as one string
//   - ResizeEvent: new terminal dimensions
//
// ClickTracker stamps press events with a 1-3 click count so widgets can
// react to double and triple clicks.
package input
