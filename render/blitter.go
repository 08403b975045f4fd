package render

import (
	"github.com/lixenwraith/gadget/geometry"
	"github.com/lixenwraith/gadget/terminal"
)

// Blitter maps one cell's worth of sub-pixels from a texture into the
// frame. Scale is the sub-pixel block size per cell; a gadget's
// texture is its cell size times the scale. Glyph selection lives
// entirely here, so switching blitters is invisible to gadget code.
type Blitter interface {
	// Scale returns sub-pixels per cell (rows, columns)
	Scale() geometry.Size

	// Blit renders the scale-sized block of tex rooted at
	// (texY, texX) into the frame cell at (cellY, cellX), compositing
	// over whatever the frame already holds. alpha is the owning
	// gadget's transparency factor; effective per-pixel alpha is
	// pixelAlpha * alpha.
	Blit(f *Frame, cellY, cellX int, tex *Texture, texY, texX int, alpha float64)
}

// FullBlock paints one glyph per cell: the full block with the pixel's
// color as foreground
type FullBlock struct{}

func (FullBlock) Scale() geometry.Size {
	return geometry.Size{Height: 1, Width: 1}
}

func (FullBlock) Blit(f *Frame, cellY, cellX int, tex *Texture, texY, texX int, alpha float64) {
	pix := tex.At(texY, texX)
	a := float64(pix.A) / 255 * alpha
	if a <= 0 {
		return
	}
	below := f.At(cellY, cellX)
	base := below.Bg
	if below.Rune == '█' {
		base = below.Fg
	}
	color := terminal.Blend(base, terminal.RGB{R: pix.R, G: pix.G, B: pix.B}, a)
	f.Set(cellY, cellX, terminal.Cell{
		Rune: '█',
		Fg:   color,
		Bg:   terminal.Blend(below.Bg, terminal.RGB{R: pix.R, G: pix.G, B: pix.B}, a),
	})
}

// HalfBlock packs two pixels per cell with the upper half block,
// upper pixel as foreground and lower pixel as background
type HalfBlock struct{}

func (HalfBlock) Scale() geometry.Size {
	return geometry.Size{Height: 2, Width: 1}
}

func (HalfBlock) Blit(f *Frame, cellY, cellX int, tex *Texture, texY, texX int, alpha float64) {
	upper := tex.At(texY, texX)
	lower := tex.At(texY+1, texX)
	upperA := float64(upper.A) / 255 * alpha
	lowerA := float64(lower.A) / 255 * alpha
	if upperA <= 0 && lowerA <= 0 {
		return
	}

	below := f.At(cellY, cellX)
	// Cells already holding a half block keep distinct upper/lower
	// colors; anything else shows through with its background
	belowUpper, belowLower := below.Bg, below.Bg
	if below.Rune == '▀' {
		belowUpper = below.Fg
	}

	f.Set(cellY, cellX, terminal.Cell{
		Rune: '▀',
		Fg:   terminal.Blend(belowUpper, terminal.RGB{R: upper.R, G: upper.G, B: upper.B}, upperA),
		Bg:   terminal.Blend(belowLower, terminal.RGB{R: lower.R, G: lower.G, B: lower.B}, lowerA),
	})
}

// brailleBits maps a (row, col) dot in the 4x2 grid to its bit in the
// braille pattern block
var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Braille packs a 4x2 dot grid per cell; a dot is set when its
// effective alpha crosses one half
type Braille struct{}

func (Braille) Scale() geometry.Size {
	return geometry.Size{Height: 4, Width: 2}
}

func (Braille) Blit(f *Frame, cellY, cellX int, tex *Texture, texY, texX int, alpha float64) {
	var bits rune
	var rSum, gSum, bSum, aSum float64
	var set int
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 2; dx++ {
			pix := tex.At(texY+dy, texX+dx)
			a := float64(pix.A) / 255 * alpha
			if a >= 0.5 {
				bits |= brailleBits[dy][dx]
				rSum += float64(pix.R)
				gSum += float64(pix.G)
				bSum += float64(pix.B)
				aSum += a
				set++
			}
		}
	}
	if bits == 0 {
		return
	}

	n := float64(set)
	below := f.At(cellY, cellX)
	fg := terminal.Blend(below.Fg, terminal.RGB{
		R: uint8(rSum / n),
		G: uint8(gSum / n),
		B: uint8(bSum / n),
	}, aSum/n)
	f.Set(cellY, cellX, terminal.Cell{
		Rune: 0x2800 | bits,
		Fg:   fg,
		Bg:   below.Bg,
	})
}

// Bitmap passes sub-pixels straight through to the frame's pixel
// plane for terminals that negotiate pixel output
type Bitmap struct{}

func (Bitmap) Scale() geometry.Size {
	return PixelScale
}

func (Bitmap) Blit(f *Frame, cellY, cellX int, tex *Texture, texY, texX int, alpha float64) {
	pixels := f.Pixels()
	baseY := cellY * PixelScale.Height
	baseX := cellX * PixelScale.Width
	any := false
	for dy := 0; dy < PixelScale.Height; dy++ {
		for dx := 0; dx < PixelScale.Width; dx++ {
			pix := tex.At(texY+dy, texX+dx)
			if pix.A == 0 {
				continue
			}
			pixels.Composite(baseY+dy, baseX+dx, pix, alpha)
			any = true
		}
	}
	if any {
		f.markPixels(cellY, cellX)
	}
}
