package render

import (
	"testing"

	"github.com/lixenwraith/gadget/geometry"
	"github.com/lixenwraith/gadget/terminal"
)

func TestHalfBlockBlit(t *testing.T) {
	f := NewFrame(geometry.Size{Height: 1, Width: 1}, terminal.Cell{Bg: terminal.Black})
	tex := NewTexture(geometry.Size{Height: 2, Width: 1}, RGBA{})
	tex.Set(0, 0, RGBA{R: 255, A: 255})
	tex.Set(1, 0, RGBA{B: 255, A: 255})

	HalfBlock{}.Blit(f, 0, 0, tex, 0, 0, 1.0)

	cell := f.At(0, 0)
	if cell.Rune != '▀' {
		t.Errorf("rune = %q, want upper half block", cell.Rune)
	}
	if cell.Fg != (terminal.RGB{R: 255}) {
		t.Errorf("fg = %v, want pure red", cell.Fg)
	}
	if cell.Bg != (terminal.RGB{B: 255}) {
		t.Errorf("bg = %v, want pure blue", cell.Bg)
	}
}

func TestHalfBlockAlphaBlend(t *testing.T) {
	f := NewFrame(geometry.Size{Height: 1, Width: 1}, terminal.Cell{Bg: terminal.Black})
	tex := NewTexture(geometry.Size{Height: 2, Width: 1}, RGBA{R: 200, G: 200, B: 200, A: 255})

	// Gadget alpha at one half dims the texture against black
	HalfBlock{}.Blit(f, 0, 0, tex, 0, 0, 0.5)

	cell := f.At(0, 0)
	if cell.Fg.R != 100 {
		t.Errorf("fg.R = %d, want 100 (half of 200 over black)", cell.Fg.R)
	}
	if cell.Bg.R != 100 {
		t.Errorf("bg.R = %d, want 100", cell.Bg.R)
	}
}

func TestHalfBlockTransparentPixelShowsBelow(t *testing.T) {
	below := terminal.Cell{Rune: 'x', Fg: terminal.White, Bg: terminal.RGB{G: 128}}
	f := NewFrame(geometry.Size{Height: 1, Width: 1}, below)
	tex := NewTexture(geometry.Size{Height: 2, Width: 1}, RGBA{})

	HalfBlock{}.Blit(f, 0, 0, tex, 0, 0, 1.0)

	// Fully transparent block leaves the cell untouched
	if got := f.At(0, 0); got != below {
		t.Errorf("cell = %v, want untouched %v", got, below)
	}
}

func TestBrailleGlyphSelection(t *testing.T) {
	f := NewFrame(geometry.Size{Height: 1, Width: 1}, terminal.Cell{Bg: terminal.Black})
	tex := NewTexture(geometry.Size{Height: 4, Width: 2}, RGBA{})
	// Set the top-left and bottom-right dots
	tex.Set(0, 0, RGBA{R: 255, A: 255})
	tex.Set(3, 1, RGBA{R: 255, A: 255})

	Braille{}.Blit(f, 0, 0, tex, 0, 0, 1.0)

	want := rune(0x2800 | 0x01 | 0x80)
	if got := f.At(0, 0).Rune; got != want {
		t.Errorf("rune = %U, want %U", got, want)
	}
}

func TestBrailleEmptyLeavesCell(t *testing.T) {
	below := terminal.Cell{Rune: 'q', Bg: terminal.RGB{B: 3}}
	f := NewFrame(geometry.Size{Height: 1, Width: 1}, below)
	tex := NewTexture(geometry.Size{Height: 4, Width: 2}, RGBA{})

	Braille{}.Blit(f, 0, 0, tex, 0, 0, 1.0)

	if got := f.At(0, 0); got != below {
		t.Errorf("cell = %v, want untouched %v", got, below)
	}
}

func TestFullBlockBlit(t *testing.T) {
	f := NewFrame(geometry.Size{Height: 1, Width: 1}, terminal.Cell{Bg: terminal.Black})
	tex := NewTexture(geometry.Size{Height: 1, Width: 1}, RGBA{G: 255, A: 255})

	FullBlock{}.Blit(f, 0, 0, tex, 0, 0, 1.0)

	cell := f.At(0, 0)
	if cell.Rune != '█' {
		t.Errorf("rune = %q, want full block", cell.Rune)
	}
	if cell.Fg != (terminal.RGB{G: 255}) {
		t.Errorf("fg = %v, want pure green", cell.Fg)
	}
}

func TestBitmapMarksPixelCells(t *testing.T) {
	f := NewFrame(geometry.Size{Height: 2, Width: 2}, terminal.Cell{})
	tex := NewTexture(geometry.Size{
		Height: PixelScale.Height,
		Width:  PixelScale.Width,
	}, RGBA{R: 9, A: 255})

	Bitmap{}.Blit(f, 1, 1, tex, 0, 0, 1.0)

	if f.Kind(1, 1) != KindPixels {
		t.Error("blitted cell not marked as pixel output")
	}
	if f.Kind(0, 0) != KindText {
		t.Error("untouched cell should remain text")
	}
	got := f.Pixels().At(PixelScale.Height, PixelScale.Width)
	if got.R != 9 || got.A != 255 {
		t.Errorf("pixel plane = %v, want propagated texture pixel", got)
	}
}

func TestBlitterScales(t *testing.T) {
	tests := []struct {
		blitter Blitter
		want    geometry.Size
	}{
		{FullBlock{}, geometry.Size{Height: 1, Width: 1}},
		{HalfBlock{}, geometry.Size{Height: 2, Width: 1}},
		{Braille{}, geometry.Size{Height: 4, Width: 2}},
		{Bitmap{}, PixelScale},
	}
	for _, tt := range tests {
		if got := tt.blitter.Scale(); got != tt.want {
			t.Errorf("%T scale = %v, want %v", tt.blitter, got, tt.want)
		}
	}
}
