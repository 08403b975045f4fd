package gadget

import (
	"github.com/lixenwraith/gadget/geometry"
	"github.com/lixenwraith/gadget/render"
)

// Graphics is a gadget backed by an RGBA texture, drawn through a
// pluggable blitter. The texture holds one pixel per subcell of the
// blitter's scale.
type Graphics struct {
	Gadget

	texture *render.Texture
	blitter render.Blitter
}

// NewGraphics creates a graphics gadget drawing through the given
// blitter
func NewGraphics(blitter render.Blitter) *Graphics {
	g := &Graphics{
		Gadget:  NewGadget(),
		blitter: blitter,
	}
	g.self = g
	g.texture = render.NewTexture(g.textureSize(), render.RGBA{})
	return g
}

func (g *Graphics) textureSize() geometry.Size {
	scale := g.blitter.Scale()
	return geometry.Size{
		Height: g.size.Height * scale.Height,
		Width:  g.size.Width * scale.Width,
	}
}

// Texture returns the gadget's pixel plane. One cell covers
// Blitter.Scale pixels.
func (g *Graphics) Texture() *render.Texture { return g.texture }

// Blitter returns the active blitter
func (g *Graphics) Blitter() render.Blitter { return g.blitter }

// SetBlitter swaps the blitter and rescales the texture to the new
// subcell geometry
func (g *Graphics) SetBlitter(b render.Blitter) {
	g.blitter = b
	g.texture.Resize(g.textureSize())
	g.invalidate()
}

// OnSize keeps the texture matched to the gadget size at the
// blitter's scale
func (g *Graphics) OnSize() {
	g.texture.Resize(g.textureSize())
}

// Render blits the texture into the frame cell by cell within the
// visible region
func (g *Graphics) Render(f *render.Frame, region geometry.Region) {
	origin := g.AbsolutePos()
	scale := g.blitter.Scale()
	alpha := 1.0
	if g.transparent {
		alpha = g.alpha
	}
	for _, rect := range region.Rects() {
		for y := rect.Top; y < rect.Bottom; y++ {
			for x := rect.Left; x < rect.Right; x++ {
				texY := (y - origin.Y) * scale.Height
				texX := (x - origin.X) * scale.Width
				g.blitter.Blit(f, y, x, g.texture, texY, texX, alpha)
			}
		}
	}
}
