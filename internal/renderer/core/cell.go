package core

import "github.com/rivo/uniseg"

// Attribute represents text attributes (bold, italic, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone          Attribute = 0
	AttrBold          Attribute = 1 << iota
	AttrDim                     // Faint/dim text
	AttrItalic                  // Italic text
	AttrUnderline               // Underlined text
	AttrBlink                   // Blinking text (rarely supported)
	AttrReverse                 // Reverse video (swap fg/bg)
	AttrStrikethrough           // Strikethrough text
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// Cell represents a single drawable grid cell.
// Cells are plain values with no identity.
type Cell struct {
	// Rune is the glyph to display. 0 renders as a blank and also marks
	// the trailing column of a wide glyph.
	Rune rune

	// Colors is the foreground/background pair.
	Colors ColorPair

	// Attrs holds the style flags.
	Attrs Attribute
}

// EmptyCell returns a blank cell with default colors.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Colors: DefaultColors}
}

// NewCell creates a cell with the given rune and color pair.
func NewCell(r rune, colors ColorPair) Cell {
	return Cell{Rune: r, Colors: colors}
}

// WithRune returns a copy of the cell with the given rune.
func (c Cell) WithRune(r rune) Cell {
	c.Rune = r
	return c
}

// WithColors returns a copy of the cell with the given colors.
func (c Cell) WithColors(colors ColorPair) Cell {
	c.Colors = colors
	return c
}

// WithAttrs returns a copy of the cell with the given attributes.
func (c Cell) WithAttrs(attrs Attribute) Cell {
	c.Attrs = attrs
	return c
}

// IsBlank returns true if the cell shows no glyph.
func (c Cell) IsBlank() bool {
	return c.Rune == ' ' || c.Rune == 0
}

// Equals returns true if two cells render identically.
func (c Cell) Equals(other Cell) bool {
	return c.Rune == other.Rune &&
		c.Attrs == other.Attrs &&
		c.Colors.Equals(other.Colors)
}

// StringWidth returns the number of columns s occupies.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// RuneWidth returns the display width of a single rune (0, 1 or 2).
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	return uniseg.StringWidth(string(r))
}
