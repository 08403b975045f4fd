package gadget

import (
	"sync"

	"github.com/lixenwraith/gadget/geometry"
	"github.com/lixenwraith/gadget/render"
	"github.com/lixenwraith/gadget/terminal"
)

// Stats counts renderer work for diagnostics
type Stats struct {
	// Frames is the number of completed paint passes
	Frames uint64
	// RegionPasses is the number of times visible regions were
	// recomputed from the tree
	RegionPasses uint64
}

// Root is the top of a gadget tree. It owns the frame gadgets paint
// into, the render lock, and the task scheduler.
type Root struct {
	Gadget

	mu           sync.Mutex
	regionsValid bool
	frame        *render.Frame
	scheduler    *Scheduler
	stats        Stats
}

// NewRoot creates a tree root covering the given screen size. Cells
// nothing paints over take the default cell.
func NewRoot(size geometry.Size, defaultCell terminal.Cell) *Root {
	r := &Root{
		Gadget:    NewGadget(),
		frame:     render.NewFrame(size, defaultCell),
		scheduler: &Scheduler{},
	}
	r.size = geometry.NewSize(size.Height, size.Width)
	r.rootRef = r
	r.self = r
	return r
}

// Scheduler returns the tree's task scheduler
func (r *Root) Scheduler() *Scheduler { return r.scheduler }

// Stats returns a snapshot of the renderer counters
func (r *Root) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Resize matches the root to a new screen size and re-resolves every
// hint in the tree
func (r *Root) Resize(size geometry.Size) {
	r.SetSize(size)
}

// OnSize keeps the frame matched to the root size
func (r *Root) OnSize() {
	r.frame.Resize(r.size)
}

// RenderFrame produces the current frame. Cached regions are
// recomputed only when the tree changed since the last pass, then
// every visible gadget paints back to front within its region. The
// whole pass runs under the render lock, so geometry mutation from
// other goroutines blocks until the frame is complete.
func (r *Root) RenderFrame() *render.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.regionsValid {
		full := geometry.FromRect(geometry.Point{}, r.size)
		computeRegions(r, full)
		r.regionsValid = true
		r.stats.RegionPasses++
	}

	r.frame.Clear()
	paint(r, r.frame)
	r.stats.Frames++
	return r.frame
}

// computeRegions assigns each gadget the screen region it may paint.
// Children are processed frontmost first and inherit the region
// handed to their parent, so a child can extend past its parent's
// rectangle. Each opaque visible child claims its rectangle from the
// region available to the siblings behind it.
func computeRegions(g Gadgeter, inherited geometry.Region) {
	b := g.Base()
	if !b.visible || !b.enabled {
		inherited = geometry.Region{}
	}
	b.region = inherited.Intersect(geometry.FromRect(b.AbsolutePos(), b.size))

	avail := inherited
	for i := len(b.children) - 1; i >= 0; i-- {
		child := b.children[i]
		cb := child.Base()
		computeRegions(child, avail)
		if cb.visible && cb.enabled && !cb.transparent {
			avail = avail.Subtract(geometry.FromRect(cb.AbsolutePos(), cb.size))
		}
	}
}

// paint draws the tree back to front in preorder, each gadget
// restricted to its cached region
func paint(g Gadgeter, f *render.Frame) {
	for _, child := range g.Base().children {
		cb := child.Base()
		if !cb.visible || !cb.enabled {
			continue
		}
		if !cb.region.IsEmpty() {
			child.Render(f, cb.region)
		}
		paint(child, f)
	}
}
