package widget

import (
	"github.com/dshills/termweave/internal/renderer/canvas"
	"github.com/dshills/termweave/internal/renderer/core"
)

// Painter produces a widget's own content. The canvas has already been
// cleared to the background fill when Paint is called.
type Painter interface {
	Paint(c *canvas.Canvas)
}

// PainterFunc adapts a function to Painter.
type PainterFunc func(c *canvas.Canvas)

// Paint calls f(c).
func (f PainterFunc) Paint(c *canvas.Canvas) { f(c) }

// Fill paints the whole canvas with a single cell.
type Fill struct {
	Cell core.Cell
}

// Paint implements Painter.
func (f Fill) Paint(c *canvas.Canvas) {
	h, w := c.Size()
	c.Fill(core.RectFromSize(0, 0, h, w), f.Cell)
}

// Text paints lines of text starting at the top-left corner. Lines longer
// than the canvas are clipped.
type Text struct {
	Lines  []string
	Colors core.ColorPair
	Attrs  core.Attribute
}

// Paint implements Painter.
func (t Text) Paint(c *canvas.Canvas) {
	for row, line := range t.Lines {
		c.SetText(row, 0, line, t.Colors, t.Attrs)
	}
}

// Gradient fills the canvas with colors interpolated from From to To,
// top to bottom, or left to right when Horizontal is set.
type Gradient struct {
	From, To   core.ColorPair
	Horizontal bool
	Rune       rune
}

// Paint implements Painter.
func (g Gradient) Paint(c *canvas.Canvas) {
	h, w := c.Size()
	r := g.Rune
	if r == 0 {
		r = ' '
	}
	if g.Horizontal {
		for col, colors := range core.Gradient(w, g.From, g.To) {
			c.Fill(core.RectFromSize(0, col, h, 1), core.NewCell(r, colors))
		}
		return
	}
	for row, colors := range core.Gradient(h, g.From, g.To) {
		c.Fill(core.RectFromSize(row, 0, 1, w), core.NewCell(r, colors))
	}
}
