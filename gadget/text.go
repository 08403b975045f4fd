package gadget

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gadget/geometry"
	"github.com/lixenwraith/gadget/render"
	"github.com/lixenwraith/gadget/terminal"
)

// Text is a gadget backed by a cell canvas. Wide glyphs occupy two
// cells, the second holding a zero rune continuation.
type Text struct {
	Gadget

	canvas      []terminal.Cell
	defaultCell terminal.Cell
	prevWidth   int
}

// NewText creates a text gadget whose blank cells take the given
// default
func NewText(defaultCell terminal.Cell) *Text {
	t := &Text{
		Gadget:      NewGadget(),
		defaultCell: defaultCell,
	}
	t.self = t
	t.canvas = make([]terminal.Cell, t.size.Area())
	for i := range t.canvas {
		t.canvas[i] = defaultCell
	}
	t.prevWidth = t.size.Width
	return t
}

// DefaultCell returns the cell blank canvas positions take
func (t *Text) DefaultCell() terminal.Cell { return t.defaultCell }

// At returns the canvas cell at local coordinates, or the default
// cell out of bounds
func (t *Text) At(y, x int) terminal.Cell {
	if y < 0 || y >= t.size.Height || x < 0 || x >= t.size.Width {
		return t.defaultCell
	}
	return t.canvas[y*t.size.Width+x]
}

// SetCell writes one canvas cell at local coordinates. Writes out of
// bounds are dropped.
func (t *Text) SetCell(y, x int, c terminal.Cell) {
	if y < 0 || y >= t.size.Height || x < 0 || x >= t.size.Width {
		return
	}
	t.canvas[y*t.size.Width+x] = c
}

// Clear resets the canvas to the default cell
func (t *Text) Clear() {
	for i := range t.canvas {
		t.canvas[i] = t.defaultCell
	}
}

// SetString writes s starting at local coordinates with the given
// colors. Wide glyphs take two cells; a glyph that would straddle
// the right edge is dropped. Newlines move to the start of the next
// row.
func (t *Text) SetString(y, x int, s string, fg, bg terminal.RGB, attrs terminal.Attr) {
	col := x
	for _, r := range s {
		if r == '\n' {
			y++
			col = x
			continue
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > t.size.Width {
			col += w
			continue
		}
		t.SetCell(y, col, terminal.Cell{Rune: r, Fg: fg, Bg: bg, Attrs: attrs})
		if w == 2 {
			t.SetCell(y, col+1, terminal.Cell{Rune: 0, Fg: fg, Bg: bg, Attrs: attrs})
		}
		col += w
	}
}

// StringWidth returns the number of cells s occupies on one row
func StringWidth(s string) int {
	w := 0
	for _, line := range strings.Split(s, "\n") {
		if lw := runewidth.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

// OnSize resizes the canvas, preserving the overlapping content
func (t *Text) OnSize() {
	old := t.canvas
	oldSize := geometry.Size{}
	if len(old) > 0 && t.prevWidth > 0 {
		oldSize = geometry.Size{Height: len(old) / t.prevWidth, Width: t.prevWidth}
	}
	t.canvas = make([]terminal.Cell, t.size.Area())
	for i := range t.canvas {
		t.canvas[i] = t.defaultCell
	}
	h := min(oldSize.Height, t.size.Height)
	w := min(oldSize.Width, t.size.Width)
	for y := 0; y < h; y++ {
		copy(t.canvas[y*t.size.Width:y*t.size.Width+w], old[y*oldSize.Width:y*oldSize.Width+w])
	}
	t.prevWidth = t.size.Width
}

// Render copies the visible part of the canvas into the frame. A
// transparent text gadget blends its colors over what is already
// painted; an opaque one overwrites.
func (t *Text) Render(f *render.Frame, region geometry.Region) {
	origin := t.AbsolutePos()
	for _, rect := range region.Rects() {
		for y := rect.Top; y < rect.Bottom; y++ {
			for x := rect.Left; x < rect.Right; x++ {
				c := t.At(y-origin.Y, x-origin.X)
				if c.Rune == 0 {
					// continuation of a wide glyph; paint a space
					// when the glyph cell itself is clipped away
					if !region.Contains(geometry.Point{Y: y, X: x - 1}) {
						c.Rune = ' '
					}
				} else if runewidth.RuneWidth(c.Rune) == 2 &&
					!region.Contains(geometry.Point{Y: y, X: x + 1}) {
					c.Rune = ' '
				}
				if t.transparent {
					// blank cells only tint what is beneath so
					// glyphs below stay readable
					if c.Rune == ' ' {
						f.BlendColors(y, x, c, t.alpha)
					} else {
						f.BlendOver(y, x, c, t.alpha)
					}
				} else {
					f.Set(y, x, c)
				}
			}
		}
	}
}
