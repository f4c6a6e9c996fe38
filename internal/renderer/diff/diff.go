// Package diff computes the changed-cell runs between two frames.
//
// Frames are scanned row-major. Each maximal stretch of changed cells in a
// row becomes one Run, so every changed cell appears in exactly one run and
// unchanged cells never appear at all. When the previous frame is missing
// or has different dimensions the whole new frame is emitted, one run per
// row.
package diff

import (
	"github.com/dshills/termweave/internal/renderer/core"
	"github.com/dshills/termweave/internal/renderer/frame"
)

// Run is a contiguous sequence of changed cells within a single row.
type Run struct {
	Row   int
	Col   int
	Cells []core.Cell
}

// End returns the exclusive end column of the run.
func (r Run) End() int {
	return r.Col + len(r.Cells)
}

// Update is the output of one diff pass.
type Update struct {
	// Rows and Cols are the dimensions of the current frame.
	Rows, Cols int

	// Full is set when every cell was emitted because the previous frame
	// was missing or dimension-mismatched.
	Full bool

	Runs []Run
}

// Changed returns the total number of cells across all runs.
func (u Update) Changed() int {
	n := 0
	for _, r := range u.Runs {
		n += len(r.Cells)
	}
	return n
}

// Empty reports whether the update carries no changes.
func (u Update) Empty() bool {
	return !u.Full && len(u.Runs) == 0
}

// Diff compares cur against prev.
func Diff(prev, cur *frame.Frame) Update {
	rows, cols := cur.Size()
	u := Update{Rows: rows, Cols: cols}

	if prev == nil {
		u.Full = true
	} else if pr, pc := prev.Size(); pr != rows || pc != cols {
		u.Full = true
	}

	if u.Full {
		for row := 0; row < rows; row++ {
			cells := make([]core.Cell, cols)
			copy(cells, cur.Row(row))
			u.Runs = append(u.Runs, Run{Row: row, Col: 0, Cells: cells})
		}
		return u
	}

	for row := 0; row < rows; row++ {
		oldRow := prev.Row(row)
		newRow := cur.Row(row)
		col := 0
		for col < cols {
			if newRow[col].Equals(oldRow[col]) {
				col++
				continue
			}
			start := col
			for col < cols && !newRow[col].Equals(oldRow[col]) {
				col++
			}
			cells := make([]core.Cell, col-start)
			copy(cells, newRow[start:col])
			u.Runs = append(u.Runs, Run{Row: row, Col: start, Cells: cells})
		}
	}
	return u
}

// Apply writes every run into dst.
func Apply(dst *frame.Frame, runs []Run) {
	for _, r := range runs {
		for i, c := range r.Cells {
			dst.Set(r.Row, r.Col+i, c)
		}
	}
}

// Differ keeps the previous-frame slot between ticks.
type Differ struct {
	prev *frame.Frame
}

// NewDiffer creates a differ with an empty previous slot, so the first
// call to Next produces a full update.
func NewDiffer() *Differ {
	return &Differ{}
}

// Next diffs cur against the retained frame, then retains a copy of cur.
func (d *Differ) Next(cur *frame.Frame) Update {
	u := Diff(d.prev, cur)
	d.prev = cur.Clone()
	return u
}

// Reset drops the retained frame, forcing a full update next time.
func (d *Differ) Reset() {
	d.prev = nil
}

// Previous returns the retained frame, or nil.
func (d *Differ) Previous() *frame.Frame {
	return d.prev
}
