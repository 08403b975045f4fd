package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gadget/geometry"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want KeyEvent
	}{
		{
			name: "rune",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone),
			want: KeyEvent{Key: KeyRune, Rune: 'a'},
		},
		{
			// tcell folds shift into the rune itself for KeyRune
			// events and reports no modifier
			name: "shifted rune",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift),
			want: KeyEvent{Key: KeyRune, Rune: 'A'},
		},
		{
			name: "escape",
			ev:   tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
			want: KeyEvent{Key: KeyEscape},
		},
		{
			name: "enter",
			ev:   tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			want: KeyEvent{Key: KeyEnter},
		},
		{
			name: "arrow with alt",
			ev:   tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModAlt),
			want: KeyEvent{Key: KeyUp, Mods: ModAlt},
		},
		{
			name: "function key",
			ev:   tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone),
			want: KeyEvent{Key: KeyF5},
		},
		{
			name: "ctrl letter",
			ev:   tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
			want: KeyEvent{Key: KeyRune, Rune: 'c', Mods: ModCtrl},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeKey(tt.ev); got != tt.want {
				t.Errorf("decodeKey = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeMousePressRelease(t *testing.T) {
	s := &tcellScreen{}

	ev := s.decodeMouse(tcell.NewEventMouse(3, 5, tcell.Button1, tcell.ModNone))
	if ev.Action != MouseActionPress || ev.Button != MouseBtnLeft {
		t.Errorf("press decoded as %+v", ev)
	}
	if ev.Pos != (geometry.Point{Y: 5, X: 3}) {
		t.Errorf("pos = %v, want {5 3}", ev.Pos)
	}

	// held motion
	ev = s.decodeMouse(tcell.NewEventMouse(4, 5, tcell.Button1, tcell.ModNone))
	if ev.Action != MouseActionMove || ev.Button != MouseBtnLeft {
		t.Errorf("drag decoded as %+v", ev)
	}

	ev = s.decodeMouse(tcell.NewEventMouse(4, 5, tcell.ButtonNone, tcell.ModNone))
	if ev.Action != MouseActionRelease || ev.Button != MouseBtnLeft {
		t.Errorf("release decoded as %+v", ev)
	}

	ev = s.decodeMouse(tcell.NewEventMouse(4, 5, tcell.ButtonNone, tcell.ModNone))
	if ev.Action != MouseActionMove || ev.Button != MouseBtnNone {
		t.Errorf("plain motion decoded as %+v", ev)
	}
}

func TestDecodeMouseScroll(t *testing.T) {
	s := &tcellScreen{}
	ev := s.decodeMouse(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModCtrl))
	if ev.Action != MouseActionScroll || ev.Button != MouseBtnWheelUp {
		t.Errorf("scroll decoded as %+v", ev)
	}
	if ev.Mods != ModCtrl {
		t.Errorf("mods = %v, want ctrl", ev.Mods)
	}
}

func TestDecodePasteAssembly(t *testing.T) {
	s := &tcellScreen{}

	if _, ok := s.decode(tcell.NewEventPaste(true)); ok {
		t.Error("paste start leaked an event")
	}
	for _, r := range "ab" {
		if _, ok := s.decode(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)); ok {
			t.Error("pasted rune leaked a key event")
		}
	}
	if _, ok := s.decode(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)); ok {
		t.Error("pasted newline leaked a key event")
	}
	if _, ok := s.decode(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone)); ok {
		t.Error("pasted rune leaked a key event")
	}

	ev, ok := s.decode(tcell.NewEventPaste(false))
	if !ok {
		t.Fatal("paste end produced no event")
	}
	paste, ok := ev.(PasteEvent)
	if !ok {
		t.Fatalf("paste end produced %T", ev)
	}
	if paste.Text != "ab\nc" {
		t.Errorf("paste text = %q, want %q", paste.Text, "ab\nc")
	}

	// keys decode normally again after the paste ends
	if _, ok := s.decode(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); !ok {
		t.Error("key after paste swallowed")
	}
}

func TestDecodeResize(t *testing.T) {
	s := &tcellScreen{}
	ev, ok := s.decode(tcell.NewEventResize(100, 30))
	if !ok {
		t.Fatal("resize produced no event")
	}
	resize, ok := ev.(ResizeEvent)
	if !ok {
		t.Fatalf("resize produced %T", ev)
	}
	if resize.Size != (geometry.Size{Height: 30, Width: 100}) {
		t.Errorf("size = %v, want {30 100}", resize.Size)
	}
}
