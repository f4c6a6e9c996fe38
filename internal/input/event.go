package input

import "fmt"

// Event is implemented by every input event type.
type Event interface {
	// String returns a short description for logging.
	String() string
	isEvent()
}

// KeyEvent is a key press.
type KeyEvent struct {
	// Key is the symbolic key; KeyRune for printable characters.
	Key Key
	// Rune is the character when Key is KeyRune.
	Rune rune
	Mod  Modifier
}

func (KeyEvent) isEvent() {}

// IsRune returns true if the event is a printable character.
func (e KeyEvent) IsRune() bool {
	return e.Key == KeyRune
}

// String returns a representation like "Ctrl+a" or "Enter".
func (e KeyEvent) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	if e.Mod.IsEmpty() {
		return name
	}
	return e.Mod.String() + "+" + name
}

// MouseEvent is a mouse action at a screen cell.
type MouseEvent struct {
	Row, Col int
	Button   Button
	Action   Action
	Mod      Modifier
	// Clicks is 1, 2 or 3 on press events, 0 otherwise.
	Clicks int
}

func (MouseEvent) isEvent() {}

// String returns a short description.
func (e MouseEvent) String() string {
	return fmt.Sprintf("mouse %s %s at (%d,%d) clicks=%d", e.Button, e.Action, e.Row, e.Col, e.Clicks)
}

// PasteEvent carries pasted text.
type PasteEvent struct {
	Text string
}

func (PasteEvent) isEvent() {}

// String returns a short description.
func (e PasteEvent) String() string {
	return fmt.Sprintf("paste (%d bytes)", len(e.Text))
}

// ResizeEvent reports new terminal dimensions.
type ResizeEvent struct {
	Rows, Cols int
}

func (ResizeEvent) isEvent() {}

// String returns a short description.
func (e ResizeEvent) String() string {
	return fmt.Sprintf("resize %dx%d", e.Rows, e.Cols)
}
