package render

import "github.com/lixenwraith/gadget/geometry"

// RGBA is a color with an alpha channel, non-premultiplied
type RGBA struct {
	R, G, B, A uint8
}

// Transparent is the zero texture color
var Transparent = RGBA{}

// Texture is a sub-pixel RGBA buffer painted by gadgets and consumed
// by a blitter. Row-major, sized in sub-pixels (gadget size times the
// blitter scale).
type Texture struct {
	pix  []RGBA
	size geometry.Size
}

// NewTexture creates a texture filled with the given color
func NewTexture(size geometry.Size, fill RGBA) *Texture {
	t := &Texture{
		pix:  make([]RGBA, size.Area()),
		size: size,
	}
	if fill != (RGBA{}) {
		t.Fill(fill)
	}
	return t
}

// Size returns texture dimensions in sub-pixels
func (t *Texture) Size() geometry.Size {
	return t.size
}

// At returns the pixel at (y, x), zero if out of bounds
func (t *Texture) At(y, x int) RGBA {
	if y < 0 || y >= t.size.Height || x < 0 || x >= t.size.Width {
		return RGBA{}
	}
	return t.pix[y*t.size.Width+x]
}

// Set writes the pixel at (y, x) with bounds checking
func (t *Texture) Set(y, x int, c RGBA) {
	if y < 0 || y >= t.size.Height || x < 0 || x >= t.size.Width {
		return
	}
	t.pix[y*t.size.Width+x] = c
}

// Fill sets every pixel to c
func (t *Texture) Fill(c RGBA) {
	if len(t.pix) == 0 {
		return
	}
	t.pix[0] = c
	for filled := 1; filled < len(t.pix); filled *= 2 {
		copy(t.pix[filled:], t.pix[:filled])
	}
}

// Composite blends src over the pixel at (y, x) with an extra alpha
// factor: a = srcAlpha * alpha
func (t *Texture) Composite(y, x int, src RGBA, alpha float64) {
	if y < 0 || y >= t.size.Height || x < 0 || x >= t.size.Width {
		return
	}
	i := y*t.size.Width + x
	t.pix[i] = blendRGBA(t.pix[i], src, float64(src.A)/255*alpha)
}

// Resize resamples the texture to a new size with nearest-neighbor.
// Zero-area targets produce an empty texture.
func (t *Texture) Resize(size geometry.Size) {
	if size == t.size {
		return
	}
	pix := make([]RGBA, size.Area())
	if !t.size.IsEmpty() && !size.IsEmpty() {
		for y := 0; y < size.Height; y++ {
			srcY := y * t.size.Height / size.Height
			for x := 0; x < size.Width; x++ {
				srcX := x * t.size.Width / size.Width
				pix[y*size.Width+x] = t.pix[srcY*t.size.Width+srcX]
			}
		}
	}
	t.pix = pix
	t.size = size
}

func blendRGBA(below, above RGBA, alpha float64) RGBA {
	if alpha >= 1 {
		return RGBA{R: above.R, G: above.G, B: above.B, A: 255}
	}
	if alpha <= 0 {
		return below
	}
	outA := alpha + float64(below.A)/255*(1-alpha)
	return RGBA{
		R: mixChannel(below.R, above.R, alpha),
		G: mixChannel(below.G, above.G, alpha),
		B: mixChannel(below.B, above.B, alpha),
		A: uint8(outA*255 + 0.5),
	}
}

func mixChannel(d, s uint8, alpha float64) uint8 {
	v := float64(d)*(1-alpha) + float64(s)*alpha
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v + 0.5)
}
