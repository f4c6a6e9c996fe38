// Package canvas provides the per-widget cell grid that painters draw into.
package canvas

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/termweave/internal/renderer/core"
)

// Canvas is a rectangular grid of cells owned by a single widget.
// Coordinates are (row, col) relative to the canvas origin; writes outside
// the grid are discarded.
type Canvas struct {
	height, width int
	cells         []core.Cell
	transparent   []bool
	background    core.Cell

	// transparentBg makes cells equal to the background read as transparent.
	transparentBg bool
}

// New creates a canvas filled with the background cell.
// Negative dimensions are treated as zero.
func New(height, width int, background core.Cell) *Canvas {
	c := &Canvas{
		height:     max(height, 0),
		width:      max(width, 0),
		background: background,
	}
	c.allocate()
	return c
}

func (c *Canvas) allocate() {
	n := c.height * c.width
	c.cells = make([]core.Cell, n)
	c.transparent = make([]bool, n)
	for i := range c.cells {
		c.cells[i] = c.background
	}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (height, width int) {
	return c.height, c.width
}

// Background returns the background fill cell.
func (c *Canvas) Background() core.Cell {
	return c.background
}

// SetBackground changes the fill cell. Cells still holding the old fill
// are repainted with the new one; other content is left alone.
func (c *Canvas) SetBackground(bg core.Cell) {
	old := c.background
	c.background = bg
	for i := range c.cells {
		if c.cells[i].Equals(old) {
			c.cells[i] = bg
		}
	}
}

// Resize reallocates the grid, preserving the overlapping top-left region.
// New area is filled with the background cell.
func (c *Canvas) Resize(height, width int) {
	height, width = max(height, 0), max(width, 0)
	if height == c.height && width == c.width {
		return
	}

	oldCells := c.cells
	oldMask := c.transparent
	oldWidth := c.width
	copyHeight := min(c.height, height)
	copyWidth := min(c.width, width)

	c.height = height
	c.width = width
	c.allocate()

	for row := 0; row < copyHeight; row++ {
		copy(c.cells[row*width:row*width+copyWidth], oldCells[row*oldWidth:row*oldWidth+copyWidth])
		copy(c.transparent[row*width:row*width+copyWidth], oldMask[row*oldWidth:row*oldWidth+copyWidth])
	}
}

func (c *Canvas) index(row, col int) (int, bool) {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return 0, false
	}
	return row*c.width + col, true
}

// At returns the cell at the position, or the background if out of range.
func (c *Canvas) At(row, col int) core.Cell {
	i, ok := c.index(row, col)
	if !ok {
		return c.background
	}
	return c.cells[i]
}

// Set writes a cell.
func (c *Canvas) Set(row, col int, cell core.Cell) {
	if i, ok := c.index(row, col); ok {
		c.cells[i] = cell
	}
}

// Fill writes cell to every position inside rect.
func (c *Canvas) Fill(rect core.ScreenRect, cell core.Cell) {
	rect = rect.Intersection(core.RectFromSize(0, 0, c.height, c.width))
	for row := rect.Top; row < rect.Bottom; row++ {
		line := c.cells[row*c.width : (row+1)*c.width]
		for col := rect.Left; col < rect.Right; col++ {
			line[col] = cell
		}
	}
}

// Clear resets every cell to the background and drops the transparency mask.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = c.background
		c.transparent[i] = false
	}
}

// SetRow writes cells starting at (row, col), clipping at the edges.
func (c *Canvas) SetRow(row, col int, cells []core.Cell) {
	if row < 0 || row >= c.height {
		return
	}
	for i, cell := range cells {
		if x := col + i; x >= 0 && x < c.width {
			c.cells[row*c.width+x] = cell
		}
	}
}

// SetText writes text starting at (row, col) and returns the number of
// columns consumed. Grapheme clusters are kept together; a wide cluster
// occupies two columns, the second holding a continuation cell with Rune 0.
// A wide cluster that would straddle the right edge is replaced by a blank.
func (c *Canvas) SetText(row, col int, text string, colors core.ColorPair, attrs core.Attribute) int {
	if row < 0 || row >= c.height {
		return 0
	}

	start := col
	state := -1
	for len(text) > 0 && col < c.width {
		var cluster string
		var width int
		cluster, text, width, state = uniseg.FirstGraphemeClusterInString(text, state)
		if width == 0 {
			continue
		}

		r := []rune(cluster)[0]
		if width == 2 && col+1 >= c.width {
			r, width = ' ', 1
		}

		if col >= 0 {
			c.cells[row*c.width+col] = core.Cell{Rune: r, Colors: colors, Attrs: attrs}
		}
		if width == 2 && col+1 >= 0 {
			c.cells[row*c.width+col+1] = core.Cell{Rune: 0, Colors: colors, Attrs: attrs}
		}
		col += width
	}
	return col - start
}

// SetTransparent marks a single cell transparent or opaque.
func (c *Canvas) SetTransparent(row, col int, transparent bool) {
	if i, ok := c.index(row, col); ok {
		c.transparent[i] = transparent
	}
}

// SetTransparentBackground makes cells that still equal the background fill
// read as transparent.
func (c *Canvas) SetTransparentBackground(on bool) {
	c.transparentBg = on
}

// TransparentBackground reports whether background cells are transparent.
func (c *Canvas) TransparentBackground() bool {
	return c.transparentBg
}

// Transparent reports whether the cell at (row, col) should be skipped when
// the canvas is painted. Out-of-range positions are transparent.
func (c *Canvas) Transparent(row, col int) bool {
	i, ok := c.index(row, col)
	if !ok {
		return true
	}
	if c.transparent[i] {
		return true
	}
	return c.transparentBg && c.cells[i].Equals(c.background)
}
