package renderer

import (
	"github.com/dshills/termweave/internal/renderer/canvas"
	"github.com/dshills/termweave/internal/renderer/core"
	"github.com/dshills/termweave/internal/renderer/frame"
)

// Node is the view of a tree node the compositor needs.
type Node[N any] interface {
	// Bounds returns the resolved rectangle in the parent's coordinates.
	Bounds() core.ScreenRect
	// Drawable reports whether the node and its subtree should be painted.
	Drawable() bool
	// Canvas returns the node's own content, or nil.
	Canvas() *canvas.Canvas
	// Children returns the children in paint order.
	Children() []N
}

// Stats describes the last composition.
type Stats struct {
	Nodes   int // nodes painted
	Skipped int // nodes skipped as hidden or fully clipped
	Cells   int // cells written to the frame
}

// Compositor paints a tree into a frame using the painter's algorithm.
type Compositor[N Node[N]] struct {
	blank core.Cell
	stats Stats
}

// NewCompositor creates a compositor whose uncovered cells are blank.
func NewCompositor[N Node[N]]() *Compositor[N] {
	return &Compositor[N]{blank: core.EmptyCell()}
}

// SetBlank sets the cell used where nothing opaque was painted.
func (c *Compositor[N]) SetBlank(cell core.Cell) {
	c.blank = cell
}

// Stats returns statistics for the last composition.
func (c *Compositor[N]) Stats() Stats {
	return c.stats
}

// Compose allocates a frame sized to the root and paints into it.
func (c *Compositor[N]) Compose(root N) *frame.Frame {
	b := root.Bounds()
	f := frame.New(b.Height(), b.Width())
	c.ComposeInto(root, f)
	return f
}

// ComposeInto repaints f from scratch. The root is placed at the frame
// origin regardless of its own position.
func (c *Compositor[N]) ComposeInto(root N, f *frame.Frame) {
	c.stats = Stats{}
	f.Reset(c.blank)

	b := root.Bounds()
	c.paint(root, -b.Top, -b.Left, f.Bounds(), f)
}

// paint draws n, whose parent's absolute origin is (top, left), clipped
// to clip. Children are clipped to the visible part of n.
func (c *Compositor[N]) paint(n N, top, left int, clip core.ScreenRect, f *frame.Frame) {
	if !n.Drawable() {
		c.stats.Skipped++
		return
	}
	abs := n.Bounds().Translate(top, left)
	vis := abs.Intersection(clip)
	if vis.IsEmpty() {
		c.stats.Skipped++
		return
	}
	c.stats.Nodes++

	if cv := n.Canvas(); cv != nil {
		for row := vis.Top; row < vis.Bottom; row++ {
			lr := row - abs.Top
			for col := vis.Left; col < vis.Right; col++ {
				lc := col - abs.Left
				if cv.Transparent(lr, lc) {
					continue
				}
				f.Set(row, col, cv.At(lr, lc))
				c.stats.Cells++
			}
		}
	}

	for _, child := range n.Children() {
		c.paint(child, abs.Top, abs.Left, vis, f)
	}
}
