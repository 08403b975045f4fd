package gadget

import (
	"testing"

	"github.com/lixenwraith/gadget/terminal"
)

// recorder logs the order handlers are visited in and optionally
// consumes the event
type recorder struct {
	Gadget
	name    string
	log     *[]string
	consume bool
}

func newRecorder(name string, log *[]string, consume bool) *recorder {
	p := &recorder{Gadget: NewGadget(), name: name, log: log, consume: consume}
	p.self = p
	return p
}

func (p *recorder) OnKey(ev terminal.KeyEvent) bool {
	*p.log = append(*p.log, p.name)
	return p.consume
}

func (p *recorder) OnMouse(ev terminal.MouseEvent) bool {
	*p.log = append(*p.log, p.name)
	return p.consume
}

func TestDispatchDepthFirstFrontmostFirst(t *testing.T) {
	var log []string
	root := newTestRoot(10, 10)
	a := newRecorder("a", &log, false)
	b := newRecorder("b", &log, false)
	c := newRecorder("c", &log, false)
	root.AddGadget(a) // rear
	root.AddGadget(b) // front
	b.AddGadget(c)

	consumed := root.DispatchKey(terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'x'})
	if consumed {
		t.Error("unhandled event reported consumed")
	}
	want := []string{"c", "b", "a"}
	if len(log) != len(want) {
		t.Fatalf("visited %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("visited %v, want %v", log, want)
		}
	}
}

func TestDispatchStopsWhenConsumed(t *testing.T) {
	var log []string
	root := newTestRoot(10, 10)
	a := newRecorder("a", &log, false)
	b := newRecorder("b", &log, false)
	c := newRecorder("c", &log, true)
	root.AddGadget(a)
	root.AddGadget(b)
	b.AddGadget(c)

	if !root.DispatchKey(terminal.KeyEvent{Key: terminal.KeyEnter}) {
		t.Error("consumed event not reported")
	}
	if len(log) != 1 || log[0] != "c" {
		t.Errorf("visited %v, want [c]", log)
	}
}

func TestDispatchSkipsDisabledSubtree(t *testing.T) {
	var log []string
	root := newTestRoot(10, 10)
	a := newRecorder("a", &log, false)
	b := newRecorder("b", &log, false)
	c := newRecorder("c", &log, false)
	root.AddGadget(a)
	root.AddGadget(b)
	b.AddGadget(c)
	b.SetEnabled(false)

	root.DispatchMouse(terminal.MouseEvent{Button: terminal.MouseBtnLeft, Action: terminal.MouseActionPress})
	if len(log) != 1 || log[0] != "a" {
		t.Errorf("visited %v, want [a]", log)
	}
}

func TestDispatchVisitsHiddenGadget(t *testing.T) {
	// hidden gadgets are not painted but stay interactive
	var log []string
	root := newTestRoot(10, 10)
	a := newRecorder("a", &log, false)
	root.AddGadget(a)
	a.SetVisible(false)

	root.DispatchKey(terminal.KeyEvent{Key: terminal.KeyTab})
	if len(log) != 1 || log[0] != "a" {
		t.Errorf("visited %v, want [a]", log)
	}
}
