package core

import "testing"

func TestAttributeFlags(t *testing.T) {
	a := AttrNone.With(AttrBold).With(AttrUnderline)
	if !a.Has(AttrBold) || !a.Has(AttrUnderline) {
		t.Errorf("With() lost flags: %b", a)
	}
	if a.Has(AttrItalic) {
		t.Error("unexpected italic")
	}
	if a = a.Without(AttrBold); a.Has(AttrBold) {
		t.Error("Without() kept bold")
	}
}

func TestCellEquals(t *testing.T) {
	base := NewCell('x', NewColorPair(ColorRed, ColorDefault))
	tests := []struct {
		name  string
		other Cell
		want  bool
	}{
		{"identical", base, true},
		{"rune", base.WithRune('y'), false},
		{"colors", base.WithColors(DefaultColors), false},
		{"attrs", base.WithAttrs(AttrBold), false},
		{"default bg payload", base.WithColors(NewColorPair(ColorRed, Color{Default: true, G: 3})), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equals(tt.other); got != tt.want {
				t.Errorf("Equals() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmptyCell(t *testing.T) {
	c := EmptyCell()
	if !c.IsBlank() {
		t.Error("EmptyCell should be blank")
	}
	if !c.Colors.Equals(DefaultColors) {
		t.Errorf("EmptyCell colors = %v", c.Colors)
	}
}

func TestWidths(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"abc", 3},
		{"日本", 4},
		{"", 0},
	}
	for _, tt := range tests {
		if got := StringWidth(tt.s); got != tt.want {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
	if w := RuneWidth('a'); w != 1 {
		t.Errorf("RuneWidth('a') = %d", w)
	}
	if w := RuneWidth('世'); w != 2 {
		t.Errorf("RuneWidth('世') = %d", w)
	}
	if w := RuneWidth('\t'); w != 0 {
		t.Errorf("RuneWidth(tab) = %d", w)
	}
}
