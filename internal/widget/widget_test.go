package widget

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/termweave/internal/layout"
	"github.com/dshills/termweave/internal/renderer/canvas"
	"github.com/dshills/termweave/internal/renderer/core"
)

type detachRecorder struct {
	detached []*Widget
}

func (r *detachRecorder) Detached(w *Widget) {
	r.detached = append(r.detached, w)
}

func box(name string, top, left, h, w int) *Widget {
	return MustNew(name, WithSize(layout.Fixed(h, w)), WithPos(layout.At(top, left)))
}

func TestNewRejectsInvalidSpec(t *testing.T) {
	_, err := New("bad", WithSize(layout.SizeSpec{HeightHint: layout.Frac(math.NaN())}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, layout.ErrInvalidSpec))

	assert.Panics(t, func() {
		MustNew("bad", WithPos(layout.PosSpec{Anchor: 77}))
	})
}

func TestAddResolvesAgainstParent(t *testing.T) {
	root := NewRoot(25, 100)
	paddle := MustNew("paddle",
		WithSize(layout.SizeSpec{HeightHint: layout.Frac(1.0), Width: 2}),
		WithPos(layout.PosSpec{LeftHint: layout.Frac(0.5)}),
	)
	require.NoError(t, root.Add(paddle))

	h, w := paddle.Size()
	assert.Equal(t, 25, h)
	assert.Equal(t, 2, w)
	assert.Equal(t, 50, paddle.Bounds().Left)

	ch, cw := paddle.Canvas().Size()
	assert.Equal(t, 25, ch)
	assert.Equal(t, 2, cw)
}

func TestAddErrors(t *testing.T) {
	root := NewRoot(10, 10)
	a := box("a", 0, 0, 2, 2)
	b := box("b", 0, 0, 1, 1)
	require.NoError(t, root.Add(a))
	require.NoError(t, a.Add(b))

	assert.ErrorIs(t, root.Add(b), ErrAlreadyAttached)
	assert.ErrorIs(t, b.Add(root), ErrCycle)
	assert.ErrorIs(t, a.Add(a), ErrCycle)
	assert.ErrorIs(t, b.Add(a), ErrCycle)
	assert.Equal(t, root, a.Parent())
	assert.Equal(t, []*Widget{b}, a.Children())
}

func TestRootResizePropagates(t *testing.T) {
	root := NewRoot(10, 20)
	half := MustNew("half", WithSize(layout.SizeSpec{HeightHint: layout.Frac(0.5), WidthHint: layout.Frac(0.5)}))
	inner := MustNew("inner", WithSize(layout.SizeSpec{HeightHint: layout.Frac(1), WidthHint: layout.Frac(1)}))
	fixed := box("fixed", 0, 0, 3, 3)
	require.NoError(t, root.Add(half))
	require.NoError(t, half.Add(inner))
	require.NoError(t, root.Add(fixed))

	root.SetRootSize(30, 40)

	h, w := half.Size()
	assert.Equal(t, 15, h)
	assert.Equal(t, 20, w)
	h, w = inner.Size()
	assert.Equal(t, 15, h)
	assert.Equal(t, 20, w)
	h, w = fixed.Size()
	assert.Equal(t, 3, h)
	assert.Equal(t, 3, w)
}

func TestSetSpecKeepsLastValid(t *testing.T) {
	root := NewRoot(10, 10)
	w := box("w", 1, 2, 3, 4)
	require.NoError(t, root.Add(w))
	before := w.Bounds()

	err := w.SetSizeSpec(layout.SizeSpec{WidthHint: layout.Frac(math.Inf(1))})
	assert.ErrorIs(t, err, layout.ErrInvalidSpec)
	err = w.SetPosSpec(layout.PosSpec{TopHint: layout.Frac(math.NaN())})
	assert.ErrorIs(t, err, layout.ErrInvalidSpec)

	assert.Equal(t, before, w.Bounds())
	assert.Equal(t, layout.Fixed(3, 4), w.SizeSpec())
}

func TestRemoveReleasesAndNotifies(t *testing.T) {
	rec := &detachRecorder{}
	root := NewRoot(10, 10)
	root.SetObserver(rec)
	a := box("a", 0, 0, 2, 2)
	b := box("b", 0, 0, 1, 1)
	require.NoError(t, root.Add(a))
	require.NoError(t, a.Add(b))

	root.Remove(a)
	assert.Nil(t, a.Parent())
	assert.Nil(t, a.Canvas())
	assert.Nil(t, b.Canvas())
	assert.Empty(t, root.Children())
	assert.Equal(t, []*Widget{a}, rec.detached)

	// Not attached: no-op.
	root.Remove(a)
	a.Detach()
	assert.Len(t, rec.detached, 1)

	// Reattaching reallocates the canvases.
	require.NoError(t, root.Add(a))
	assert.NotNil(t, a.Canvas())
	assert.NotNil(t, b.Canvas())
}

func TestZOrder(t *testing.T) {
	root := NewRoot(10, 10)
	a, b, c := box("a", 0, 0, 1, 1), box("b", 0, 0, 1, 1), box("c", 0, 0, 1, 1)
	for _, w := range []*Widget{a, b, c} {
		require.NoError(t, root.Add(w))
	}

	a.PullToFront()
	assert.Equal(t, []*Widget{b, c, a}, root.Children())

	a.MoveTo(0)
	assert.Equal(t, []*Widget{a, b, c}, root.Children())

	b.MoveTo(99)
	assert.Equal(t, []*Widget{a, c, b}, root.Children())
	assert.Equal(t, 2, b.ZIndex())
	assert.Equal(t, -1, root.ZIndex())
}

func TestIntersectsUsesLogicalBounds(t *testing.T) {
	root := NewRoot(25, 100)
	ball := box("ball", 12, 50, 1, 2)
	paddle := box("paddle", 10, 1, 5, 1)
	require.NoError(t, root.Add(ball))
	require.NoError(t, root.Add(paddle))

	assert.False(t, ball.Intersects(paddle))

	require.NoError(t, ball.SetPosSpec(layout.At(12, 1)))
	assert.True(t, ball.Intersects(paddle))
	assert.True(t, paddle.Intersects(ball))

	// Both widgets are off-screen but still collide logically.
	require.NoError(t, ball.SetPosSpec(layout.At(-40, -40)))
	require.NoError(t, paddle.SetPosSpec(layout.At(-40, -39)))
	assert.True(t, ball.Intersects(paddle))
}

func TestAbsoluteAndLocal(t *testing.T) {
	root := NewRoot(20, 20)
	outer := box("outer", 2, 3, 10, 10)
	inner := box("inner", 1, 1, 20, 20)
	require.NoError(t, root.Add(outer))
	require.NoError(t, outer.Add(inner))

	assert.Equal(t, core.RectFromSize(3, 4, 20, 20), inner.AbsoluteBounds())
	assert.Equal(t, core.NewScreenRect(3, 4, 12, 13), inner.ClippedBounds())

	r, c := inner.ToLocal(5, 5)
	assert.Equal(t, 2, r)
	assert.Equal(t, 1, c)
}

func TestMoveBy(t *testing.T) {
	root := NewRoot(20, 20)
	w := MustNew("w",
		WithSize(layout.Fixed(1, 1)),
		WithPos(layout.PosSpec{Top: 2, LeftHint: layout.Frac(0.5)}),
	)
	require.NoError(t, root.Add(w))
	w.MoveBy(1, -3)
	assert.Equal(t, 3, w.Bounds().Top)
	assert.Equal(t, 7, w.Bounds().Left)
	assert.Equal(t, -3, w.PosSpec().LeftOffset)
}

func TestRefreshRunsPaintersOnce(t *testing.T) {
	root := NewRoot(4, 4)
	calls := 0
	w := MustNew("w",
		WithSize(layout.Fixed(2, 2)),
		WithPainter(PainterFunc(func(c *canvas.Canvas) {
			calls++
			c.Set(0, 0, core.NewCell('p', core.DefaultColors))
		})),
	)
	require.NoError(t, root.Add(w))

	root.Refresh()
	root.Refresh()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 'p', w.Canvas().At(0, 0).Rune)

	w.Invalidate()
	root.Refresh()
	assert.Equal(t, 2, calls)

	require.NoError(t, w.SetSizeSpec(layout.Fixed(3, 3)))
	root.Refresh()
	assert.Equal(t, 3, calls)
}

func TestRefreshKeepsDirectDrawing(t *testing.T) {
	root := NewRoot(4, 4)
	w := box("w", 0, 0, 2, 2)
	require.NoError(t, root.Add(w))
	w.Canvas().Set(1, 1, core.NewCell('d', core.DefaultColors))
	w.Invalidate()
	root.Refresh()
	assert.Equal(t, 'd', w.Canvas().At(1, 1).Rune)
}

func TestVisibilityState(t *testing.T) {
	root := NewRoot(4, 4)
	parent := box("p", 0, 0, 4, 4)
	child := box("c", 0, 0, 1, 1)
	require.NoError(t, root.Add(parent))
	require.NoError(t, parent.Add(child))

	assert.True(t, child.Showing())
	parent.SetVisible(false)
	assert.False(t, child.Showing())
	assert.True(t, child.Active())
	parent.SetEnabled(false)
	assert.False(t, child.Active())
}

func TestWalkSkipsSubtree(t *testing.T) {
	root := NewRoot(4, 4)
	a := box("a", 0, 0, 1, 1)
	b := box("b", 0, 0, 1, 1)
	require.NoError(t, root.Add(a))
	require.NoError(t, a.Add(b))

	var seen []string
	root.Walk(func(w *Widget) bool {
		seen = append(seen, w.Name)
		return w != a
	})
	assert.Equal(t, []string{"root", "a"}, seen)
}
