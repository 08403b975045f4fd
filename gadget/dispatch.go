package gadget

import "github.com/lixenwraith/gadget/terminal"

// Event dispatch walks the tree depth-first with frontmost children
// first, so the gadget drawn on top gets first refusal. A handler
// returning true consumes the event and stops the walk. Disabled
// gadgets and their subtrees are skipped entirely.

// DispatchKey offers a key event to the gadget's subtree, then the
// gadget itself
func (g *Gadget) DispatchKey(ev terminal.KeyEvent) bool {
	if !g.enabled {
		return false
	}
	for i := len(g.children) - 1; i >= 0; i-- {
		if g.children[i].Base().DispatchKey(ev) {
			return true
		}
	}
	return g.outer().OnKey(ev)
}

// DispatchMouse offers a mouse event to the gadget's subtree, then
// the gadget itself
func (g *Gadget) DispatchMouse(ev terminal.MouseEvent) bool {
	if !g.enabled {
		return false
	}
	for i := len(g.children) - 1; i >= 0; i-- {
		if g.children[i].Base().DispatchMouse(ev) {
			return true
		}
	}
	return g.outer().OnMouse(ev)
}

// DispatchPaste offers a bracketed paste to the gadget's subtree,
// then the gadget itself
func (g *Gadget) DispatchPaste(ev terminal.PasteEvent) bool {
	if !g.enabled {
		return false
	}
	for i := len(g.children) - 1; i >= 0; i-- {
		if g.children[i].Base().DispatchPaste(ev) {
			return true
		}
	}
	return g.outer().OnPaste(ev)
}

// DispatchFocus offers a terminal focus change to the gadget's
// subtree, then the gadget itself
func (g *Gadget) DispatchFocus(ev terminal.FocusEvent) bool {
	if !g.enabled {
		return false
	}
	for i := len(g.children) - 1; i >= 0; i-- {
		if g.children[i].Base().DispatchFocus(ev) {
			return true
		}
	}
	return g.outer().OnFocus(ev)
}
