package gadget

import (
	"github.com/lixenwraith/gadget/geometry"
	"github.com/lixenwraith/gadget/render"
	"github.com/lixenwraith/gadget/terminal"
)

// Gadgeter is the interface every node in a gadget tree satisfies.
// Concrete gadgets embed Gadget, which provides no-op defaults for
// every method except Base.
type Gadgeter interface {
	// Base returns the embedded Gadget carrying tree links, geometry
	// and flags
	Base() *Gadget

	// Render paints the gadget into the frame, restricted to the
	// gadget's visible region
	Render(f *render.Frame, region geometry.Region)

	// Event handlers return true when the event is consumed, which
	// stops dispatch
	OnKey(ev terminal.KeyEvent) bool
	OnMouse(ev terminal.MouseEvent) bool
	OnPaste(ev terminal.PasteEvent) bool
	OnFocus(ev terminal.FocusEvent) bool

	// OnSize runs after the gadget's size changes
	OnSize()

	// OnAdd runs after the gadget joins a tree, OnRemove before it
	// leaves one. Both fire for every gadget in the attached or
	// detached subtree.
	OnAdd()
	OnRemove()
}

// Gadget is the base node of the scene graph. Embed it in concrete
// gadget types and construct it with NewGadget.
type Gadget struct {
	self     Gadgeter
	parent   Gadgeter
	children []Gadgeter
	rootRef  *Root

	size        geometry.Size
	pos         geometry.Point
	sizeHint    SizeHint
	posHint     PosHint
	visible     bool
	enabled     bool
	transparent bool
	alpha       float64

	// region is the portion of the screen this gadget may paint,
	// cached by the last completed region pass
	region geometry.Region

	bindings     map[Prop]map[uint64]func()
	bindingProps map[uint64]Prop
	tasks        map[*Task]struct{}
}

// NewGadget returns a base gadget with default geometry and flags
func NewGadget() Gadget {
	return Gadget{
		size:    geometry.Size{Height: 10, Width: 10},
		visible: true,
		enabled: true,
		alpha:   1,
	}
}

func (g *Gadget) Base() *Gadget { return g }

func (g *Gadget) Render(f *render.Frame, region geometry.Region) {}

func (g *Gadget) OnKey(ev terminal.KeyEvent) bool     { return false }
func (g *Gadget) OnMouse(ev terminal.MouseEvent) bool { return false }
func (g *Gadget) OnPaste(ev terminal.PasteEvent) bool { return false }
func (g *Gadget) OnFocus(ev terminal.FocusEvent) bool { return false }

func (g *Gadget) OnSize()   {}
func (g *Gadget) OnAdd()    {}
func (g *Gadget) OnRemove() {}

// outer returns the concrete gadget for virtual method dispatch. The
// self link is wired when the gadget is added to a tree.
func (g *Gadget) outer() Gadgeter {
	if g.self != nil {
		return g.self
	}
	return g
}

// Root returns the root of the tree this gadget is attached to, or
// nil when detached
func (g *Gadget) Root() *Root {
	if g.rootRef != nil {
		return g.rootRef
	}
	if g.parent == nil {
		return nil
	}
	return g.parent.Base().Root()
}

// Parent returns the gadget's parent, nil for a detached gadget or a
// root
func (g *Gadget) Parent() Gadgeter { return g.parent }

// Children returns the gadget's children from rearmost to frontmost
func (g *Gadget) Children() []Gadgeter { return g.children }

func (g *Gadget) Size() geometry.Size       { return g.size }
func (g *Gadget) Pos() geometry.Point       { return g.pos }
func (g *Gadget) SizeHint() SizeHint        { return g.sizeHint }
func (g *Gadget) PosHint() PosHint          { return g.posHint }
func (g *Gadget) Visible() bool             { return g.visible }
func (g *Gadget) Enabled() bool             { return g.enabled }
func (g *Gadget) Transparent() bool         { return g.transparent }
func (g *Gadget) Alpha() float64            { return g.alpha }
func (g *Gadget) Rect() geometry.Rect       { return geometry.NewRect(g.pos, g.size) }
func (g *Gadget) Region() geometry.Region   { return g.region }

// AbsolutePos returns the gadget's position in screen coordinates
func (g *Gadget) AbsolutePos() geometry.Point {
	if g.parent == nil {
		return g.pos
	}
	return g.parent.Base().AbsolutePos().Add(g.pos)
}

// ToLocal translates a screen coordinate into this gadget's
// coordinate space
func (g *Gadget) ToLocal(p geometry.Point) geometry.Point {
	return p.Sub(g.AbsolutePos())
}

// CollidesPoint reports whether the screen coordinate hits a visible
// part of this gadget or any of its descendants, using the regions
// cached by the last render. Descendants count because they may
// extend past this gadget's rectangle.
func (g *Gadget) CollidesPoint(p geometry.Point) bool {
	if g.region.Contains(p) {
		return true
	}
	for _, child := range g.children {
		if child.Base().CollidesPoint(p) {
			return true
		}
	}
	return false
}

// CollidesGadget reports whether this gadget's rectangle overlaps
// another gadget's rectangle in screen coordinates
func (g *Gadget) CollidesGadget(other Gadgeter) bool {
	ob := other.Base()
	mine := geometry.NewRect(g.AbsolutePos(), g.size)
	theirs := geometry.NewRect(ob.AbsolutePos(), ob.size)
	return mine.Overlaps(theirs)
}

// withRenderLock runs fn under the tree's render lock when attached,
// or directly when detached
func (g *Gadget) withRenderLock(fn func()) {
	if r := g.Root(); r != nil {
		r.mu.Lock()
		fn()
		r.mu.Unlock()
		return
	}
	fn()
}

// invalidate marks the tree's cached regions stale
func (g *Gadget) invalidate() {
	if r := g.Root(); r != nil {
		r.regionsValid = false
	}
}

// SetSize resizes the gadget. Negative dimensions clamp to zero. A
// resize re-resolves the gadget's own pos hint and every child's
// hints, then fires size bindings.
func (g *Gadget) SetSize(size geometry.Size) {
	var n notifySet
	g.withRenderLock(func() { g.setSize(size, &n) })
	n.fire()
}

func (g *Gadget) setSize(size geometry.Size, n *notifySet) {
	size = geometry.NewSize(size.Height, size.Width)
	if size == g.size {
		g.applyPosHint(n)
		return
	}
	g.size = size
	g.invalidate()
	g.applyPosHint(n)
	for _, child := range g.children {
		child.Base().applyHints(n)
	}
	g.outer().OnSize()
	n.add(g, PropSize)
}

// SetPos moves the gadget relative to its parent and fires pos
// bindings
func (g *Gadget) SetPos(pos geometry.Point) {
	var n notifySet
	g.withRenderLock(func() { g.setPos(pos, &n) })
	n.fire()
}

func (g *Gadget) setPos(pos geometry.Point, n *notifySet) {
	g.pos = pos
	g.invalidate()
	n.add(g, PropPos)
}

// SetSizeHint replaces the gadget's size hint and re-resolves it
// against the current parent. Non-positive proportions are rejected.
func (g *Gadget) SetSizeHint(h SizeHint) error {
	if err := h.validate(); err != nil {
		return err
	}
	var n notifySet
	g.withRenderLock(func() {
		g.sizeHint = h
		n.add(g, PropSizeHint)
		g.applyHints(&n)
	})
	n.fire()
	return nil
}

// SetPosHint replaces the gadget's pos hint and re-resolves it
// against the current parent
func (g *Gadget) SetPosHint(h PosHint) {
	var n notifySet
	g.withRenderLock(func() {
		g.posHint = h
		n.add(g, PropPosHint)
		g.applyPosHint(&n)
	})
	n.fire()
}

// SetVisible shows or hides the gadget. A hidden gadget and its
// subtree are not painted but still receive events.
func (g *Gadget) SetVisible(v bool) {
	var n notifySet
	g.withRenderLock(func() {
		g.visible = v
		g.invalidate()
		n.add(g, PropVisible)
	})
	n.fire()
}

// SetEnabled enables or disables the gadget. A disabled gadget and
// its subtree are neither painted nor dispatched events.
func (g *Gadget) SetEnabled(v bool) {
	var n notifySet
	g.withRenderLock(func() {
		g.enabled = v
		g.invalidate()
		n.add(g, PropEnabled)
	})
	n.fire()
}

// SetTransparent controls whether the gadget occludes gadgets behind
// it. A transparent gadget blends over content below instead of
// hiding it.
func (g *Gadget) SetTransparent(v bool) {
	var n notifySet
	g.withRenderLock(func() {
		g.transparent = v
		g.invalidate()
		n.add(g, PropTransparent)
	})
	n.fire()
}

// SetAlpha sets the blend strength used when the gadget is
// transparent, clamped to [0, 1]
func (g *Gadget) SetAlpha(a float64) {
	var n notifySet
	g.withRenderLock(func() {
		g.alpha = geometry.ClampF(a, 0, 1)
		n.add(g, PropAlpha)
	})
	n.fire()
}

// applyHints resolves the gadget's size hint then pos hint against
// its parent. Detached gadgets keep their explicit geometry.
func (g *Gadget) applyHints(n *notifySet) {
	if g.parent == nil {
		return
	}
	parentSize := g.parent.Base().size
	g.setSize(g.sizeHint.resolveSize(parentSize, g.size), n)
}

func (g *Gadget) applyPosHint(n *notifySet) {
	if g.parent == nil {
		return
	}
	if g.posHint.Y == nil && g.posHint.X == nil {
		return
	}
	parentSize := g.parent.Base().size
	g.setPos(g.posHint.resolvePos(parentSize, g.size, g.pos), n)
}
