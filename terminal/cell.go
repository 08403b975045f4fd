package terminal

// Attr represents text style attributes (bitmask)
type Attr uint8

const (
	AttrNone          Attr = 0
	AttrBold          Attr = 1 << 0
	AttrItalic        Attr = 1 << 1
	AttrUnderline     Attr = 1 << 2
	AttrStrikethrough Attr = 1 << 3
	AttrOverline      Attr = 1 << 4
	AttrReverse       Attr = 1 << 5
)

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune // 0 renders as the default glyph for the blitter, ' ' for text
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Predefined colors
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// Has reports whether all bits of a are set
func (at Attr) Has(a Attr) bool {
	return at&a == a
}

// Blend mixes two colors: out = below*(1-alpha) + above*alpha per channel
func Blend(below, above RGB, alpha float64) RGB {
	if alpha >= 1 {
		return above
	}
	if alpha <= 0 {
		return below
	}
	return RGB{
		R: blendChannel(below.R, above.R, alpha),
		G: blendChannel(below.G, above.G, alpha),
		B: blendChannel(below.B, above.B, alpha),
	}
}

func blendChannel(d, s uint8, alpha float64) uint8 {
	v := float64(d)*(1-alpha) + float64(s)*alpha
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v + 0.5)
}
