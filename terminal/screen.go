package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gadget/geometry"
)

// Event is a decoded terminal input event
type Event interface {
	isEvent()
}

func (KeyEvent) isEvent()    {}
func (MouseEvent) isEvent()  {}
func (PasteEvent) isEvent()  {}
func (FocusEvent) isEvent()  {}
func (ResizeEvent) isEvent() {}

// Screen provides terminal access for the app runtime: decoded input
// events in, finished cell frames out
type Screen interface {
	// Init enters raw mode and the alternate screen buffer
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() geometry.Size

	// Events returns the decoded input event stream. The channel is
	// closed on Fini
	Events() <-chan Event

	// Flush writes a finished frame to the terminal.
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, size geometry.Size)
}

// tcellScreen adapts a tcell.Screen to the Screen interface
type tcellScreen struct {
	screen  tcell.Screen
	eventCh chan Event
	stopCh  chan struct{}
	mu      sync.Mutex
	started bool
	stopped bool

	// Previous button mask, for deriving press/release from tcell's
	// stateful mouse reports
	lastButtons tcell.ButtonMask

	// Bracketed paste assembly; tcell delivers start/end markers with
	// the pasted content as rune key events between them
	pasting  bool
	pasteBuf []rune
}

// NewScreen creates a tcell-backed screen
func NewScreen() (Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &tcellScreen{
		screen:  screen,
		eventCh: make(chan Event, 64),
		stopCh:  make(chan struct{}),
	}, nil
}

func (s *tcellScreen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnableMouse()
	s.screen.EnablePaste()
	s.screen.EnableFocus()
	s.screen.HideCursor()
	s.started = true
	go s.pollLoop()
	return nil
}

func (s *tcellScreen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started || s.stopped {
		return
	}
	s.stopped = true
	close(s.stopCh)
	s.screen.Fini()
}

func (s *tcellScreen) Size() geometry.Size {
	w, h := s.screen.Size()
	return geometry.Size{Height: h, Width: w}
}

func (s *tcellScreen) Events() <-chan Event {
	return s.eventCh
}

// pollLoop converts tcell events into decoded Events until stopped
func (s *tcellScreen) pollLoop() {
	defer close(s.eventCh)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		decoded, ok := s.decode(ev)
		if !ok {
			continue
		}
		select {
		case s.eventCh <- decoded:
		case <-s.stopCh:
			return
		}
	}
}

func (s *tcellScreen) decode(ev tcell.Event) (Event, bool) {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		if s.pasting {
			switch tev.Key() {
			case tcell.KeyRune:
				s.pasteBuf = append(s.pasteBuf, tev.Rune())
			case tcell.KeyEnter:
				s.pasteBuf = append(s.pasteBuf, '\n')
			case tcell.KeyTab:
				s.pasteBuf = append(s.pasteBuf, '\t')
			}
			return nil, false
		}
		return decodeKey(tev), true
	case *tcell.EventMouse:
		return s.decodeMouse(tev), true
	case *tcell.EventPaste:
		if tev.Start() {
			s.pasting = true
			s.pasteBuf = s.pasteBuf[:0]
			return nil, false
		}
		s.pasting = false
		return PasteEvent{Text: string(s.pasteBuf)}, true
	case *tcell.EventFocus:
		return FocusEvent{Focused: tev.Focused}, true
	case *tcell.EventResize:
		w, h := tev.Size()
		return ResizeEvent{Size: geometry.NewSize(h, w)}, true
	default:
		return nil, false
	}
}

func decodeKey(ev *tcell.EventKey) KeyEvent {
	mods := ModNone
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods |= ModAlt
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}

	key := KeyNone
	var r rune
	switch ev.Key() {
	case tcell.KeyRune:
		key, r = KeyRune, ev.Rune()
	case tcell.KeyEscape:
		key = KeyEscape
	case tcell.KeyEnter:
		key = KeyEnter
	case tcell.KeyTab:
		key = KeyTab
	case tcell.KeyBacktab:
		key = KeyBacktab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		key = KeyBackspace
	case tcell.KeyDelete:
		key = KeyDelete
	case tcell.KeyInsert:
		key = KeyInsert
	case tcell.KeyUp:
		key = KeyUp
	case tcell.KeyDown:
		key = KeyDown
	case tcell.KeyLeft:
		key = KeyLeft
	case tcell.KeyRight:
		key = KeyRight
	case tcell.KeyHome:
		key = KeyHome
	case tcell.KeyEnd:
		key = KeyEnd
	case tcell.KeyPgUp:
		key = KeyPageUp
	case tcell.KeyPgDn:
		key = KeyPageDown
	case tcell.KeyF1:
		key = KeyF1
	case tcell.KeyF2:
		key = KeyF2
	case tcell.KeyF3:
		key = KeyF3
	case tcell.KeyF4:
		key = KeyF4
	case tcell.KeyF5:
		key = KeyF5
	case tcell.KeyF6:
		key = KeyF6
	case tcell.KeyF7:
		key = KeyF7
	case tcell.KeyF8:
		key = KeyF8
	case tcell.KeyF9:
		key = KeyF9
	case tcell.KeyF10:
		key = KeyF10
	case tcell.KeyF11:
		key = KeyF11
	case tcell.KeyF12:
		key = KeyF12
	default:
		// Ctrl+letter arrives as a dedicated tcell key code
		if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
			key = KeyRune
			r = rune('a' + ev.Key() - tcell.KeyCtrlA)
			mods |= ModCtrl
		}
	}
	return KeyEvent{Key: key, Rune: r, Mods: mods}
}

func (s *tcellScreen) decodeMouse(ev *tcell.EventMouse) MouseEvent {
	x, y := ev.Position()
	mods := ModNone
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods |= ModAlt
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}

	out := MouseEvent{
		Pos:    geometry.Point{Y: y, X: x},
		Button: MouseBtnNone,
		Action: MouseActionMove,
		Mods:   mods,
	}

	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		out.Button, out.Action = MouseBtnWheelUp, MouseActionScroll
	case buttons&tcell.WheelDown != 0:
		out.Button, out.Action = MouseBtnWheelDown, MouseActionScroll
	default:
		pressed := buttons &^ s.lastButtons
		released := s.lastButtons &^ buttons
		switch {
		case pressed != 0:
			out.Button, out.Action = buttonIdentity(pressed), MouseActionPress
		case released != 0:
			out.Button, out.Action = buttonIdentity(released), MouseActionRelease
		case buttons != 0:
			// Motion with a button held
			out.Button = buttonIdentity(buttons)
		}
		s.lastButtons = buttons
	}
	return out
}

func buttonIdentity(mask tcell.ButtonMask) MouseButton {
	switch {
	case mask&tcell.Button1 != 0:
		return MouseBtnLeft
	case mask&tcell.Button2 != 0:
		return MouseBtnMiddle
	case mask&tcell.Button3 != 0:
		return MouseBtnRight
	}
	return MouseBtnNone
}

func (s *tcellScreen) Flush(cells []Cell, size geometry.Size) {
	w, h := size.Width, size.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := cells[y*w+x]
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			s.screen.SetContent(x, y, r, nil, toStyle(cell))
		}
	}
	s.screen.Show()
}

func toStyle(c Cell) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
		Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
	if c.Attrs.Has(AttrBold) {
		style = style.Bold(true)
	}
	if c.Attrs.Has(AttrItalic) {
		style = style.Italic(true)
	}
	if c.Attrs.Has(AttrUnderline) {
		style = style.Underline(true)
	}
	if c.Attrs.Has(AttrStrikethrough) {
		style = style.StrikeThrough(true)
	}
	if c.Attrs.Has(AttrReverse) {
		style = style.Reverse(true)
	}
	// AttrOverline has no tcell equivalent and is dropped at the wire
	return style
}
