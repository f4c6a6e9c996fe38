package layout

import (
	"fmt"

	"github.com/dshills/termweave/internal/renderer/core"
)

// SizeSpec describes a widget's size. Each axis is either absolute or a
// hint of the parent's dimension plus an offset. Min/Max clamps apply to
// hinted axes only; a Max of 0 means unbounded.
type SizeSpec struct {
	Height, Width int

	HeightHint, WidthHint     Hint
	HeightOffset, WidthOffset int

	MinHeight, MaxHeight int
	MinWidth, MaxWidth   int
}

// Fixed returns an absolute size spec.
func Fixed(height, width int) SizeSpec {
	return SizeSpec{Height: height, Width: width}
}

// Validate rejects specs that cannot be resolved.
func (s SizeSpec) Validate() error {
	if err := s.HeightHint.validate("HeightHint"); err != nil {
		return err
	}
	if err := s.WidthHint.validate("WidthHint"); err != nil {
		return err
	}
	if err := validateClamp("Height", s.MinHeight, s.MaxHeight); err != nil {
		return err
	}
	return validateClamp("Width", s.MinWidth, s.MaxWidth)
}

func validateClamp(axis string, lo, hi int) error {
	if lo < 0 {
		return &SpecError{Field: "Min" + axis, Message: "must not be negative", Value: lo}
	}
	if hi < 0 {
		return &SpecError{Field: "Max" + axis, Message: "must not be negative", Value: hi}
	}
	if hi > 0 && lo > hi {
		return &SpecError{Field: "Min" + axis, Message: fmt.Sprintf("exceeds Max%s %d", axis, hi), Value: lo}
	}
	return nil
}

// Resolve returns the size for a parent of the given dimensions.
// The result is never negative.
func (s SizeSpec) Resolve(parentHeight, parentWidth int) (height, width int) {
	height = resolveAxis(s.Height, s.HeightHint, s.HeightOffset, s.MinHeight, s.MaxHeight, parentHeight)
	width = resolveAxis(s.Width, s.WidthHint, s.WidthOffset, s.MinWidth, s.MaxWidth, parentWidth)
	return height, width
}

func resolveAxis(abs int, hint Hint, offset, lo, hi, parent int) int {
	v := abs
	if hint.Set {
		v = hint.Of(parent) + offset
		if hi > 0 {
			v = min(v, hi)
		}
		v = max(v, lo)
	}
	return max(v, 0)
}

// PosSpec describes a widget's origin within its parent. Each axis is
// either absolute or a hint of the parent's dimension plus an offset; the
// Anchor point of the widget is placed on the hinted target.
type PosSpec struct {
	Top, Left int

	TopHint, LeftHint     Hint
	TopOffset, LeftOffset int

	Anchor Anchor
}

// At returns an absolute position spec.
func At(top, left int) PosSpec {
	return PosSpec{Top: top, Left: left}
}

// Validate rejects specs that cannot be resolved.
func (p PosSpec) Validate() error {
	if err := p.TopHint.validate("TopHint"); err != nil {
		return err
	}
	if err := p.LeftHint.validate("LeftHint"); err != nil {
		return err
	}
	if !p.Anchor.Valid() {
		return &SpecError{Field: "Anchor", Message: "unknown anchor", Value: uint8(p.Anchor)}
	}
	return nil
}

// Resolve returns the origin for a widget of the given size inside a
// parent of the given dimensions. Absolute axes ignore the anchor.
func (p PosSpec) Resolve(height, width, parentHeight, parentWidth int) (top, left int) {
	anchorRow, anchorCol := p.Anchor.Offset(height, width)

	top = p.Top
	if p.TopHint.Set {
		top = p.TopHint.Of(parentHeight) + p.TopOffset - anchorRow
	}
	left = p.Left
	if p.LeftHint.Set {
		left = p.LeftHint.Of(parentWidth) + p.LeftOffset - anchorCol
	}
	return top, left
}

// Resolve validates both specs and returns the widget's rectangle in its
// parent's coordinate frame.
func Resolve(size SizeSpec, pos PosSpec, parentHeight, parentWidth int) (core.ScreenRect, error) {
	if err := size.Validate(); err != nil {
		return core.ScreenRect{}, err
	}
	if err := pos.Validate(); err != nil {
		return core.ScreenRect{}, err
	}
	h, w := size.Resolve(parentHeight, parentWidth)
	top, left := pos.Resolve(h, w, parentHeight, parentWidth)
	return core.RectFromSize(top, left, h, w), nil
}
