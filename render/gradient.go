package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/gadget/terminal"
)

// Gradient returns n colors blending from start to end through a
// perceptually uniform color space, endpoints exact
func Gradient(start, end terminal.RGB, n int) []terminal.RGB {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []terminal.RGB{start}
	}
	from := toColorful(start)
	to := toColorful(end)
	out := make([]terminal.RGB, n)
	out[0] = start
	out[n-1] = end
	for i := 1; i < n-1; i++ {
		t := float64(i) / float64(n-1)
		out[i] = fromColorful(from.BlendLuv(to, t).Clamped())
	}
	return out
}

// Shade scales a color's lightness by factor in perceptual space
func Shade(c terminal.RGB, factor float64) terminal.RGB {
	l, a, b := toColorful(c).Lab()
	return fromColorful(colorful.Lab(l*factor, a, b).Clamped())
}

func toColorful(c terminal.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) terminal.RGB {
	r, g, b := c.RGB255()
	return terminal.RGB{R: r, G: g, B: b}
}
