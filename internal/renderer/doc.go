// Package renderer composes the widget tree into a single frame.
//
// The renderer is responsible for:
//   - Painting each widget's canvas in depth-first, paint order
//   - Clipping every widget to the intersection of its ancestors' bounds
//   - Honoring per-cell transparency so lower layers show through
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│        widget tree (Node interface)     │
//	├─────────────────────────────────────────┤
//	│  Compositor → frame.Frame               │
//	├─────────────────────────────────────────┤
//	│  diff.Differ → diff.Update (runs)       │
//	├─────────────────────────────────────────┤
//	│  backend.Backend (tcell / null)         │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	comp := renderer.NewCompositor[*widget.Widget]()
//	f := comp.Compose(root)
//	update := differ.Next(f)
//	backend.Present(update)
//
// Composition only reads canvases and never suspends; the same tree always
// produces the same frame.
package renderer
