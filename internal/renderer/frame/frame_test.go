package frame

import (
	"testing"

	"github.com/dshills/termweave/internal/renderer/core"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		wantR      int
		wantC      int
	}{
		{"normal", 3, 4, 3, 4},
		{"zero rows", 0, 4, 0, 0},
		{"negative", -1, -5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, c := New(tt.rows, tt.cols).Size()
			if r != tt.wantR || c != tt.wantC {
				t.Errorf("Size() = (%d, %d), want (%d, %d)", r, c, tt.wantR, tt.wantC)
			}
		})
	}
}

func TestSetAtRow(t *testing.T) {
	f := New(2, 3)
	x := core.NewCell('x', core.DefaultColors)
	f.Set(1, 2, x)
	f.Set(2, 0, x)
	if got := f.At(1, 2); got != x {
		t.Errorf("At(1, 2) = %+v", got)
	}
	if got := f.Row(1)[2]; got != x {
		t.Errorf("Row(1)[2] = %+v", got)
	}
	if f.Row(5) != nil {
		t.Error("Row out of range should be nil")
	}
	if got := f.String(); got != "   \n  x\n" {
		t.Errorf("String() = %q", got)
	}
}

func TestCloneEqual(t *testing.T) {
	f := New(2, 2)
	g := f.Clone()
	if !f.Equal(g) {
		t.Fatal("clone should be equal")
	}
	g.Set(0, 0, core.NewCell('z', core.DefaultColors))
	if f.Equal(g) {
		t.Error("mutating the clone must not affect the original")
	}
	if f.Equal(New(2, 3)) {
		t.Error("different sizes must not be equal")
	}
	if f.Equal(nil) {
		t.Error("nil must not be equal")
	}
}
