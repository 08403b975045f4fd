package terminal

import "github.com/lixenwraith/gadget/geometry"

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check KeyEvent.Rune)

	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyInsert

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Modifier represents active modifier keys (bitmask)
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction represents the phase of a mouse event
type MouseAction uint8

const (
	MouseActionMove MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionScroll
)

// KeyEvent is a decoded key press
type KeyEvent struct {
	Key  Key
	Rune rune
	Mods Modifier
}

// MouseEvent is a decoded mouse press, release, scroll, or movement.
// Pos is in absolute screen cells.
type MouseEvent struct {
	Pos    geometry.Point
	Button MouseButton
	Action MouseAction
	Mods   Modifier
}

// PasteEvent carries bracketed-paste content
type PasteEvent struct {
	Text string
}

// FocusEvent reports terminal focus in or out
type FocusEvent struct {
	Focused bool
}

// ResizeEvent reports a new terminal size
type ResizeEvent struct {
	Size geometry.Size
}
