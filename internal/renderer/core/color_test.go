package core

import "testing"

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"#FF0000", ColorRed, false},
		{"00ff00", ColorGreen, false},
		{"#00F", ColorBlue, false},
		{"#12345", Color{}, true},
		{"#GGGGGG", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ColorFromHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ColorFromHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equals(tt.want) {
				t.Errorf("ColorFromHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want bool
	}{
		{"same rgb", ColorFromRGB(1, 2, 3), ColorFromRGB(1, 2, 3), true},
		{"different rgb", ColorFromRGB(1, 2, 3), ColorFromRGB(1, 2, 4), false},
		{"default", ColorDefault, Color{Default: true, R: 9}, true},
		{"default vs black", ColorDefault, ColorBlack, false},
		{"indexed ignores gb", Color{R: 4, G: 1, Indexed: true}, ColorFromIndex(4), true},
		{"indexed vs rgb", ColorFromIndex(4), ColorFromRGB(4, 0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equals(tt.b); got != tt.want {
				t.Errorf("Equals() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	if s := ColorDefault.String(); s != "default" {
		t.Errorf("default String() = %q", s)
	}
	if s := ColorFromIndex(12).String(); s != "idx(12)" {
		t.Errorf("indexed String() = %q", s)
	}
	if s := ColorFromRGB(255, 0, 16).String(); s != "#FF0010" {
		t.Errorf("rgb String() = %q", s)
	}
}

func TestColorBlendEndpoints(t *testing.T) {
	a := ColorFromRGB(10, 20, 30)
	b := ColorFromRGB(200, 100, 50)
	if got := a.Blend(b, 0); !got.Equals(a) {
		t.Errorf("Blend(0) = %v, want %v", got, a)
	}
	if got := a.Blend(b, 1); !got.Equals(b) {
		t.Errorf("Blend(1) = %v, want %v", got, b)
	}
}

func TestColorBlendPalette(t *testing.T) {
	a := ColorFromIndex(1)
	b := ColorDefault
	if got := a.Blend(b, 0.25); !got.Equals(a) {
		t.Errorf("Blend(0.25) = %v, want %v", got, a)
	}
	if got := a.Blend(b, 0.75); !got.Equals(b) {
		t.Errorf("Blend(0.75) = %v, want %v", got, b)
	}
}

func TestGradient(t *testing.T) {
	from := NewColorPair(ColorWhite, ColorBlack)
	to := NewColorPair(ColorBlack, ColorWhite)

	if g := Gradient(0, from, to); g != nil {
		t.Errorf("Gradient(0) = %v, want nil", g)
	}
	if g := Gradient(1, from, to); len(g) != 1 || !g[0].Equals(from) {
		t.Errorf("Gradient(1) = %v", g)
	}

	g := Gradient(5, from, to)
	if len(g) != 5 {
		t.Fatalf("len(Gradient(5)) = %d", len(g))
	}
	if !g[0].Equals(from) {
		t.Errorf("first = %v, want %v", g[0], from)
	}
	if !g[4].Equals(to) {
		t.Errorf("last = %v, want %v", g[4], to)
	}
}

func TestColorPairReversed(t *testing.T) {
	p := NewColorPair(ColorRed, ColorBlue)
	if r := p.Reversed(); !r.Equals(NewColorPair(ColorBlue, ColorRed)) {
		t.Errorf("Reversed() = %v", r)
	}
}
