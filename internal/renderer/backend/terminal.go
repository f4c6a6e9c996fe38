package backend

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/termweave/internal/input"
	"github.com/dshills/termweave/internal/renderer/core"
	"github.com/dshills/termweave/internal/renderer/diff"
)

// Terminal implements Backend using tcell.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
	mouse  bool
	paste  bool
	ready  bool

	// tr is only touched by PollEvent.
	tr translator
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithMouse sets whether mouse reporting is enabled at Init.
func WithMouse(on bool) TerminalOption {
	return func(t *Terminal) { t.mouse = on }
}

// WithPaste sets whether bracketed paste is enabled at Init.
func WithPaste(on bool) TerminalOption {
	return func(t *Terminal) { t.paste = on }
}

// NewTerminal creates a terminal backend on the controlling tty.
func NewTerminal(opts ...TerminalOption) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen, opts...), nil
}

// NewTerminalWithScreen wraps an existing screen, such as a
// tcell.SimulationScreen.
func NewTerminalWithScreen(screen tcell.Screen, opts ...TerminalOption) *Terminal {
	t := &Terminal{screen: screen, mouse: true, paste: true}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	if t.mouse {
		t.screen.EnableMouse()
	}
	if t.paste {
		t.screen.EnablePaste()
	}
	t.ready = true
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ready {
		t.ready = false
		t.screen.Fini()
	}
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, h := t.screen.Size()
	return h, w
}

// Present writes the runs and flushes. A full update forces a complete
// redraw.
func (t *Terminal) Present(u diff.Update) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.ready {
		return ErrNotInitialized
	}
	for _, run := range u.Runs {
		for i, cell := range run.Cells {
			// Continuation cells are covered by the wide glyph to their left.
			if cell.Rune == 0 {
				continue
			}
			t.screen.SetContent(run.Col+i, run.Row, cell.Rune, nil, convertStyle(cell))
		}
	}
	if u.Full {
		t.screen.Sync()
	} else {
		t.screen.Show()
	}
	return nil
}

func (t *Terminal) PollEvent() input.Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if out, ok := t.tr.translate(ev); ok {
			return out
		}
	}
}

func (t *Terminal) SetMouse(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.mouse = on
	if !t.ready {
		return
	}
	if on {
		t.screen.EnableMouse()
	} else {
		t.screen.DisableMouse()
	}
}

func (t *Terminal) SetPaste(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.paste = on
	if !t.ready {
		return
	}
	if on {
		t.screen.EnablePaste()
	} else {
		t.screen.DisablePaste()
	}
}

// convertStyle converts a cell's colors and attributes to tcell.Style.
func convertStyle(c core.Cell) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(convertColor(c.Colors.Fg)).
		Background(convertColor(c.Colors.Bg))

	if c.Attrs.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if c.Attrs.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if c.Attrs.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	if c.Attrs.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if c.Attrs.Has(core.AttrBlink) {
		style = style.Blink(true)
	}
	if c.Attrs.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	if c.Attrs.Has(core.AttrStrikethrough) {
		style = style.StrikeThrough(true)
	}
	return style
}

func convertColor(c core.Color) tcell.Color {
	switch {
	case c.IsDefault():
		return tcell.ColorDefault
	case c.Indexed:
		return tcell.PaletteColor(int(c.R))
	default:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
}

// translator converts tcell events into input events. It tracks held mouse
// buttons to tell presses from drags, and collects bracketed paste text.
type translator struct {
	held     tcell.ButtonMask
	pasting  bool
	pasteBuf strings.Builder
}

const buttonMask = tcell.Button1 | tcell.Button2 | tcell.Button3

func (tr *translator) translate(ev tcell.Event) (input.Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k := convertKey(e)
		if tr.pasting {
			tr.collect(k)
			return nil, false
		}
		return k, true

	case *tcell.EventPaste:
		if e.Start() {
			tr.pasting = true
			tr.pasteBuf.Reset()
			return nil, false
		}
		if !tr.pasting {
			return nil, false
		}
		tr.pasting = false
		text := tr.pasteBuf.String()
		tr.pasteBuf.Reset()
		return input.PasteEvent{Text: text}, true

	case *tcell.EventMouse:
		return tr.mouse(e), true

	case *tcell.EventResize:
		w, h := e.Size()
		return input.ResizeEvent{Rows: h, Cols: w}, true

	default:
		return nil, false
	}
}

func (tr *translator) collect(k input.KeyEvent) {
	switch {
	case k.Key == input.KeyRune:
		tr.pasteBuf.WriteRune(k.Rune)
	case k.Key == input.KeyEnter:
		tr.pasteBuf.WriteByte('\n')
	case k.Key == input.KeyTab:
		tr.pasteBuf.WriteByte('\t')
	}
}

func (tr *translator) mouse(e *tcell.EventMouse) input.MouseEvent {
	x, y := e.Position()
	ev := input.MouseEvent{Row: y, Col: x, Mod: convertMod(e.Modifiers())}

	mask := e.Buttons()
	if b := wheelButton(mask); b != input.ButtonNone {
		ev.Button = b
		ev.Action = input.ActionPress
		return ev
	}

	pressed := mask & buttonMask
	switch {
	case pressed&^tr.held != 0:
		ev.Button = convertMouseButton(pressed &^ tr.held)
		ev.Action = input.ActionPress
	case pressed != 0:
		ev.Button = convertMouseButton(pressed)
		ev.Action = input.ActionDrag
	case tr.held != 0:
		ev.Button = convertMouseButton(tr.held)
		ev.Action = input.ActionRelease
	default:
		ev.Action = input.ActionMove
	}
	tr.held = pressed
	return ev
}

// convertKey converts a tcell key event. Control letters become runes with
// ModCtrl so that handlers see "Ctrl+c" rather than a control code.
func convertKey(e *tcell.EventKey) input.KeyEvent {
	mod := convertMod(e.Modifiers())
	k := e.Key()

	switch k {
	case tcell.KeyRune:
		return input.KeyEvent{Key: input.KeyRune, Rune: e.Rune(), Mod: mod}
	case tcell.KeyEscape:
		return input.KeyEvent{Key: input.KeyEscape, Mod: mod}
	case tcell.KeyEnter:
		return input.KeyEvent{Key: input.KeyEnter, Mod: mod}
	case tcell.KeyTab:
		return input.KeyEvent{Key: input.KeyTab, Mod: mod}
	case tcell.KeyBacktab:
		return input.KeyEvent{Key: input.KeyBacktab, Mod: mod}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return input.KeyEvent{Key: input.KeyBackspace, Mod: mod}
	}

	if named, ok := namedKeys[k]; ok {
		return input.KeyEvent{Key: named, Mod: mod}
	}
	if k == tcell.KeyCtrlSpace {
		return input.KeyEvent{Key: input.KeyRune, Rune: ' ', Mod: mod.With(input.ModCtrl)}
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return input.KeyEvent{Key: input.KeyRune, Rune: r, Mod: mod.With(input.ModCtrl)}
	}
	return input.KeyEvent{Key: input.KeyNone, Mod: mod}
}

var namedKeys = map[tcell.Key]input.Key{
	tcell.KeyDelete: input.KeyDelete,
	tcell.KeyInsert: input.KeyInsert,
	tcell.KeyHome:   input.KeyHome,
	tcell.KeyEnd:    input.KeyEnd,
	tcell.KeyPgUp:   input.KeyPageUp,
	tcell.KeyPgDn:   input.KeyPageDown,
	tcell.KeyUp:     input.KeyUp,
	tcell.KeyDown:   input.KeyDown,
	tcell.KeyLeft:   input.KeyLeft,
	tcell.KeyRight:  input.KeyRight,
	tcell.KeyF1:     input.KeyF1,
	tcell.KeyF2:     input.KeyF2,
	tcell.KeyF3:     input.KeyF3,
	tcell.KeyF4:     input.KeyF4,
	tcell.KeyF5:     input.KeyF5,
	tcell.KeyF6:     input.KeyF6,
	tcell.KeyF7:     input.KeyF7,
	tcell.KeyF8:     input.KeyF8,
	tcell.KeyF9:     input.KeyF9,
	tcell.KeyF10:    input.KeyF10,
	tcell.KeyF11:    input.KeyF11,
	tcell.KeyF12:    input.KeyF12,
}

// convertMod converts tcell modifier mask to input.Modifier.
func convertMod(m tcell.ModMask) input.Modifier {
	var result input.Modifier
	if m&tcell.ModShift != 0 {
		result |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= input.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= input.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= input.ModMeta
	}
	return result
}

// convertMouseButton picks the primary button of a mask.
func convertMouseButton(b tcell.ButtonMask) input.Button {
	switch {
	case b&tcell.Button1 != 0:
		return input.ButtonLeft
	case b&tcell.Button3 != 0:
		return input.ButtonMiddle
	case b&tcell.Button2 != 0:
		return input.ButtonRight
	default:
		return input.ButtonNone
	}
}

func wheelButton(b tcell.ButtonMask) input.Button {
	switch {
	case b&tcell.WheelUp != 0:
		return input.ButtonScrollUp
	case b&tcell.WheelDown != 0:
		return input.ButtonScrollDown
	case b&tcell.WheelLeft != 0:
		return input.ButtonScrollLeft
	case b&tcell.WheelRight != 0:
		return input.ButtonScrollRight
	default:
		return input.ButtonNone
	}
}
