package gadget

import "sync/atomic"

// Prop identifies a bindable gadget property
type Prop uint8

const (
	PropSize Prop = iota
	PropPos
	PropSizeHint
	PropPosHint
	PropVisible
	PropEnabled
	PropTransparent
	PropAlpha
)

var bindingID atomic.Uint64

// Bind registers fn to run after every write to the given property.
// The returned id unregisters the callback via Unbind.
func (g *Gadget) Bind(p Prop, fn func()) uint64 {
	id := bindingID.Add(1)
	if g.bindings == nil {
		g.bindings = make(map[Prop]map[uint64]func())
		g.bindingProps = make(map[uint64]Prop)
	}
	if g.bindings[p] == nil {
		g.bindings[p] = make(map[uint64]func())
	}
	g.bindings[p][id] = fn
	g.bindingProps[id] = p
	return id
}

// Unbind removes a callback registered with Bind. Unknown ids are
// ignored.
func (g *Gadget) Unbind(id uint64) {
	p, ok := g.bindingProps[id]
	if !ok {
		return
	}
	delete(g.bindings[p], id)
	delete(g.bindingProps, id)
}

// notifySet accumulates binding callbacks during a mutation so they
// run after the render lock is released. Callbacks may themselves
// mutate the tree and the lock is not re-entrant.
type notifySet struct {
	fns []func()
}

func (n *notifySet) add(g *Gadget, p Prop) {
	for _, fn := range g.bindings[p] {
		n.fns = append(n.fns, fn)
	}
}

func (n *notifySet) fire() {
	for _, fn := range n.fns {
		fn()
	}
}
