package layout

// Anchor names the point of a widget's own bounds that is aligned to a
// position hint's target point.
type Anchor uint8

// Anchors. The zero value is TopLeft.
const (
	TopLeft Anchor = iota
	TopCenter
	TopRight
	CenterLeft
	Center
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

var anchorNames = [...]string{
	TopLeft:      "top-left",
	TopCenter:    "top-center",
	TopRight:     "top-right",
	CenterLeft:   "center-left",
	Center:       "center",
	CenterRight:  "center-right",
	BottomLeft:   "bottom-left",
	BottomCenter: "bottom-center",
	BottomRight:  "bottom-right",
}

// String returns the anchor name.
func (a Anchor) String() string {
	if int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return "unknown"
}

// Valid reports whether a is one of the nine named anchors.
func (a Anchor) Valid() bool {
	return a <= BottomRight
}

// Offset returns the anchor point relative to the top-left of a box of
// the given size.
func (a Anchor) Offset(height, width int) (row, col int) {
	return axisOffset(int(a)/3, height), axisOffset(int(a)%3, width)
}

func axisOffset(pos, size int) int {
	switch pos {
	case 1:
		return size / 2
	case 2:
		return size
	default:
		return 0
	}
}
