package gadget

import (
	"testing"

	"github.com/lixenwraith/gadget/geometry"
)

func TestBindFiresAfterWrite(t *testing.T) {
	g := NewGadget()
	var seen geometry.Point
	g.Bind(PropPos, func() { seen = g.Pos() })

	g.SetPos(geometry.Point{Y: 3, X: 7})
	if seen != (geometry.Point{Y: 3, X: 7}) {
		t.Errorf("callback saw %v, want {3 7}", seen)
	}
}

func TestBindFiresOnEqualWrite(t *testing.T) {
	g := NewGadget()
	g.SetPos(geometry.Point{Y: 1, X: 1})
	fired := 0
	g.Bind(PropPos, func() { fired++ })
	g.SetPos(geometry.Point{Y: 1, X: 1})
	if fired != 1 {
		t.Errorf("pos binding fired %d times, want 1", fired)
	}
}

func TestUnbind(t *testing.T) {
	g := NewGadget()
	fired := 0
	id := g.Bind(PropSize, func() { fired++ })
	other := 0
	g.Bind(PropSize, func() { other++ })

	g.SetSize(geometry.Size{Height: 3, Width: 3})
	g.Unbind(id)
	g.SetSize(geometry.Size{Height: 4, Width: 4})

	if fired != 1 {
		t.Errorf("unbound callback fired %d times, want 1", fired)
	}
	if other != 2 {
		t.Errorf("remaining callback fired %d times, want 2", other)
	}
	// unknown ids are ignored
	g.Unbind(999999)
}

func TestBindCascadeOnParentResize(t *testing.T) {
	root := newTestRoot(20, 40)
	child := NewGadget()
	root.AddGadget(&child)
	if err := child.SetSizeHint(SizeHint{Height: Float(0.5), Width: Float(0.5)}); err != nil {
		t.Fatalf("SetSizeHint: %v", err)
	}

	fired := 0
	child.Bind(PropSize, func() { fired++ })
	root.Resize(geometry.Size{Height: 30, Width: 50})

	if fired != 1 {
		t.Errorf("size binding fired %d times on parent resize, want 1", fired)
	}
	want := geometry.Size{Height: 15, Width: 25}
	if got := child.Size(); got != want {
		t.Errorf("size = %v, want %v", got, want)
	}
}

func TestBindCallbackMayMutate(t *testing.T) {
	// the scrollbar pattern: one gadget's pos follows another's
	root := newTestRoot(20, 40)
	lead := NewGadget()
	follow := NewGadget()
	root.AddGadget(&lead)
	root.AddGadget(&follow)

	lead.Bind(PropPos, func() {
		follow.SetPos(geometry.Point{Y: lead.Pos().Y, X: 0})
	})
	lead.SetPos(geometry.Point{Y: 5, X: 9})

	if got := follow.Pos(); got != (geometry.Point{Y: 5, X: 0}) {
		t.Errorf("follower pos = %v, want {5 0}", got)
	}
}

func TestBindFlags(t *testing.T) {
	g := NewGadget()
	var events []Prop
	g.Bind(PropVisible, func() { events = append(events, PropVisible) })
	g.Bind(PropEnabled, func() { events = append(events, PropEnabled) })
	g.Bind(PropTransparent, func() { events = append(events, PropTransparent) })
	g.Bind(PropAlpha, func() { events = append(events, PropAlpha) })

	g.SetVisible(false)
	g.SetEnabled(false)
	g.SetTransparent(true)
	g.SetAlpha(0.5)

	want := []Prop{PropVisible, PropEnabled, PropTransparent, PropAlpha}
	if len(events) != len(want) {
		t.Fatalf("fired %d bindings, want %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("binding %d = %v, want %v", i, events[i], want[i])
		}
	}
}

func TestAlphaClamped(t *testing.T) {
	g := NewGadget()
	g.SetAlpha(1.5)
	if g.Alpha() != 1 {
		t.Errorf("alpha = %v, want 1", g.Alpha())
	}
	g.SetAlpha(-0.5)
	if g.Alpha() != 0 {
		t.Errorf("alpha = %v, want 0", g.Alpha())
	}
}
