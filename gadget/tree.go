package gadget

import (
	"fmt"
)

// AddGadget appends child as the frontmost child of g. If g is
// attached to a tree, hints resolve and OnAdd fires for the whole
// added subtree in preorder.
func (g *Gadget) AddGadget(child Gadgeter) {
	g.withRenderLock(func() {
		cb := child.Base()
		cb.self = child
		cb.parent = g.outer()
		g.children = append(g.children, child)
		g.invalidate()
	})
	if g.Root() != nil {
		onAddCascade(child)
	}
}

// RemoveGadget detaches child from g. Removing a gadget that is not
// a child of g is an error. OnRemove fires for the whole detached
// subtree before unlinking, and every task the subtree owns is
// cancelled.
func (g *Gadget) RemoveGadget(child Gadgeter) error {
	cb := child.Base()
	if cb.parent == nil || cb.parent.Base() != g {
		return fmt.Errorf("remove gadget: not a child of this gadget")
	}
	if g.Root() != nil {
		onRemoveCascade(child)
	}
	g.withRenderLock(func() {
		for i, c := range g.children {
			if c.Base() == cb {
				g.children = append(g.children[:i], g.children[i+1:]...)
				break
			}
		}
		cb.parent = nil
		g.invalidate()
	})
	return nil
}

// PullToFront moves the gadget in front of its siblings
func (g *Gadget) PullToFront() {
	g.withRenderLock(func() {
		if g.parent == nil {
			return
		}
		pb := g.parent.Base()
		for i, c := range pb.children {
			if c.Base() == g {
				pb.children = append(pb.children[:i], pb.children[i+1:]...)
				pb.children = append(pb.children, g.outer())
				pb.invalidate()
				return
			}
		}
	})
}

// Prolicide removes all of the gadget's children
func (g *Gadget) Prolicide() {
	for len(g.children) > 0 {
		g.RemoveGadget(g.children[len(g.children)-1])
	}
}

// Destroy removes the gadget's subtree and detaches it from its
// parent
func (g *Gadget) Destroy() {
	g.Prolicide()
	if g.parent != nil {
		g.parent.Base().RemoveGadget(g.outer())
	}
}

// Walk visits every descendant of g in preorder, rearmost children
// first. It does not visit g itself.
func (g *Gadget) Walk(fn func(Gadgeter)) {
	for _, child := range g.children {
		fn(child)
		child.Base().Walk(fn)
	}
}

// WalkReverse visits every descendant of g in reverse preorder,
// frontmost children first
func (g *Gadget) WalkReverse(fn func(Gadgeter)) {
	for i := len(g.children) - 1; i >= 0; i-- {
		child := g.children[i]
		child.Base().WalkReverse(fn)
		fn(child)
	}
}

// Ancestors returns the chain of parents from immediate parent to
// root
func (g *Gadget) Ancestors() []Gadgeter {
	var out []Gadgeter
	for p := g.parent; p != nil; p = p.Base().parent {
		out = append(out, p)
	}
	return out
}

// onAddCascade resolves hints and fires OnAdd for a subtree that
// just joined an attached tree
func onAddCascade(g Gadgeter) {
	b := g.Base()
	var n notifySet
	b.withRenderLock(func() { b.applyHints(&n) })
	n.fire()
	g.OnAdd()
	for _, child := range b.children {
		child.Base().self = child
		onAddCascade(child)
	}
}

// onRemoveCascade cancels tasks and fires OnRemove for a subtree
// leaving the tree, deepest gadgets first
func onRemoveCascade(g Gadgeter) {
	b := g.Base()
	for i := len(b.children) - 1; i >= 0; i-- {
		onRemoveCascade(b.children[i])
	}
	b.cancelTasks()
	g.OnRemove()
}
