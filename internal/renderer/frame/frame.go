// Package frame holds the root-sized composited grid produced once per tick.
package frame

import "github.com/dshills/termweave/internal/renderer/core"

// Frame is a row-major grid of cells covering the whole screen.
type Frame struct {
	rows, cols int
	cells      []core.Cell
}

// New creates a frame of empty cells. Non-positive dimensions produce an
// empty frame.
func New(rows, cols int) *Frame {
	rows, cols = max(rows, 0), max(cols, 0)
	if rows == 0 || cols == 0 {
		rows, cols = 0, 0
	}
	f := &Frame{rows: rows, cols: cols, cells: make([]core.Cell, rows*cols)}
	f.Reset(core.EmptyCell())
	return f
}

// Size returns the frame dimensions.
func (f *Frame) Size() (rows, cols int) {
	return f.rows, f.cols
}

// Bounds returns the frame rectangle anchored at (0, 0).
func (f *Frame) Bounds() core.ScreenRect {
	return core.RectFromSize(0, 0, f.rows, f.cols)
}

// At returns the cell at (row, col). Out of range returns an empty cell.
func (f *Frame) At(row, col int) core.Cell {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return core.EmptyCell()
	}
	return f.cells[row*f.cols+col]
}

// Set writes the cell at (row, col); out of range writes are dropped.
func (f *Frame) Set(row, col int, cell core.Cell) {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return
	}
	f.cells[row*f.cols+col] = cell
}

// Row returns the cells of a row. The slice aliases the frame.
func (f *Frame) Row(row int) []core.Cell {
	if row < 0 || row >= f.rows {
		return nil
	}
	return f.cells[row*f.cols : (row+1)*f.cols]
}

// Reset fills every cell with c.
func (f *Frame) Reset(c core.Cell) {
	for i := range f.cells {
		f.cells[i] = c
	}
}

// Clone returns a deep copy.
func (f *Frame) Clone() *Frame {
	out := &Frame{rows: f.rows, cols: f.cols, cells: make([]core.Cell, len(f.cells))}
	copy(out.cells, f.cells)
	return out
}

// Equal reports whether two frames have the same size and cells that
// render the same (core.Cell.Equals).
func (f *Frame) Equal(other *Frame) bool {
	if other == nil || f.rows != other.rows || f.cols != other.cols {
		return false
	}
	for i := range f.cells {
		if !f.cells[i].Equals(other.cells[i]) {
			return false
		}
	}
	return true
}

// String renders the glyphs, one line per row. Intended for tests and
// debug logging.
func (f *Frame) String() string {
	buf := make([]rune, 0, f.rows*(f.cols+1))
	for row := 0; row < f.rows; row++ {
		for _, c := range f.Row(row) {
			if c.Rune == 0 {
				continue
			}
			buf = append(buf, c.Rune)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
