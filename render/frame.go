package render

import (
	"github.com/lixenwraith/gadget/geometry"
	"github.com/lixenwraith/gadget/terminal"
)

// CellKind marks how a frame cell reaches the wire
type CellKind uint8

const (
	KindText   CellKind = iota // Encode the cell's glyph and colors
	KindPixels                 // Encode the pixel plane block for this cell
)

// PixelScale is the pixel-plane resolution per cell, matching six-row
// pixel encodings on terminals that negotiate them
var PixelScale = geometry.Size{Height: 6, Width: 2}

// Frame is the per-tick render target: a cell grid, a kind mask, and a
// pixel plane for cells carrying raw bitmap output
type Frame struct {
	cells       []terminal.Cell
	kind        []CellKind
	pixels      *Texture
	size        geometry.Size
	defaultCell terminal.Cell
}

// NewFrame creates a frame with every cell set to the default cell
func NewFrame(size geometry.Size, defaultCell terminal.Cell) *Frame {
	f := &Frame{defaultCell: defaultCell}
	f.Resize(size)
	return f
}

// Size returns frame dimensions in cells
func (f *Frame) Size() geometry.Size {
	return f.size
}

// DefaultCell returns the background cell the frame clears to
func (f *Frame) DefaultCell() terminal.Cell {
	return f.defaultCell
}

// SetDefaultCell changes the background cell for subsequent clears
func (f *Frame) SetDefaultCell(cell terminal.Cell) {
	f.defaultCell = cell
}

// Resize reallocates buffers, reallocating only if capacity is
// insufficient, and clears the frame
func (f *Frame) Resize(size geometry.Size) {
	n := size.Area()
	if cap(f.cells) < n {
		f.cells = make([]terminal.Cell, n)
		f.kind = make([]CellKind, n)
	} else {
		f.cells = f.cells[:n]
		f.kind = f.kind[:n]
	}
	f.size = size
	pixelSize := geometry.Size{
		Height: size.Height * PixelScale.Height,
		Width:  size.Width * PixelScale.Width,
	}
	if f.pixels == nil {
		f.pixels = NewTexture(pixelSize, RGBA{})
	} else {
		f.pixels.Resize(pixelSize)
	}
	f.Clear()
}

// Clear resets every cell to the default cell and the pixel plane to
// transparent
func (f *Frame) Clear() {
	if len(f.cells) == 0 {
		return
	}
	f.cells[0] = f.defaultCell
	for filled := 1; filled < len(f.cells); filled *= 2 {
		copy(f.cells[filled:], f.cells[:filled])
	}
	for i := range f.kind {
		f.kind[i] = KindText
	}
	f.pixels.Fill(RGBA{})
}

// Cells returns the backing cell slice, row-major, for the terminal
// collaborator to encode
func (f *Frame) Cells() []terminal.Cell {
	return f.cells
}

// Pixels returns the pixel plane
func (f *Frame) Pixels() *Texture {
	return f.pixels
}

func (f *Frame) inBounds(y, x int) bool {
	return y >= 0 && y < f.size.Height && x >= 0 && x < f.size.Width
}

// At returns the cell at (y, x), the default cell if out of bounds
func (f *Frame) At(y, x int) terminal.Cell {
	if !f.inBounds(y, x) {
		return f.defaultCell
	}
	return f.cells[y*f.size.Width+x]
}

// Kind returns the cell kind at (y, x)
func (f *Frame) Kind(y, x int) CellKind {
	if !f.inBounds(y, x) {
		return KindText
	}
	return f.kind[y*f.size.Width+x]
}

// Set overwrites the cell at (y, x) with bounds checking
func (f *Frame) Set(y, x int, cell terminal.Cell) {
	if !f.inBounds(y, x) {
		return
	}
	i := y*f.size.Width + x
	f.cells[i] = cell
	f.kind[i] = KindText
}

// BlendOver composites a cell's colors over whatever is beneath:
// out = below*(1-alpha) + above*alpha per channel. The glyph and
// attributes are replaced outright when alpha > 0.
func (f *Frame) BlendOver(y, x int, cell terminal.Cell, alpha float64) {
	if !f.inBounds(y, x) || alpha <= 0 {
		return
	}
	i := y*f.size.Width + x
	below := f.cells[i]
	f.cells[i] = terminal.Cell{
		Rune:  cell.Rune,
		Fg:    terminal.Blend(below.Fg, cell.Fg, alpha),
		Bg:    terminal.Blend(below.Bg, cell.Bg, alpha),
		Attrs: cell.Attrs,
	}
	f.kind[i] = KindText
}

// BlendColors composites a cell's colors over the cell beneath while
// keeping the glyph and attributes already there. Transparent gadgets
// use this for blank cells so content below shows through.
func (f *Frame) BlendColors(y, x int, cell terminal.Cell, alpha float64) {
	if !f.inBounds(y, x) || alpha <= 0 {
		return
	}
	i := y*f.size.Width + x
	below := f.cells[i]
	below.Fg = terminal.Blend(below.Fg, cell.Fg, alpha)
	below.Bg = terminal.Blend(below.Bg, cell.Bg, alpha)
	f.cells[i] = below
	f.kind[i] = KindText
}

// markPixels flags the cell at (y, x) as pixel output
func (f *Frame) markPixels(y, x int) {
	if !f.inBounds(y, x) {
		return
	}
	f.kind[y*f.size.Width+x] = KindPixels
}
