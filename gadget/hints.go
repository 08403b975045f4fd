package gadget

import (
	"fmt"

	"github.com/lixenwraith/gadget/geometry"
)

// Anchor is the point of a gadget attached to a pos hint, as a
// fraction pair in the unit square. The zero value anchors the
// gadget's top-left corner.
type Anchor struct {
	Y, X float64
}

// Named anchor points
var (
	AnchorTopLeft     = Anchor{0, 0}
	AnchorTop         = Anchor{0, 0.5}
	AnchorTopRight    = Anchor{0, 1}
	AnchorLeft        = Anchor{0.5, 0}
	AnchorCenter      = Anchor{0.5, 0.5}
	AnchorRight       = Anchor{0.5, 1}
	AnchorBottomLeft  = Anchor{1, 0}
	AnchorBottom      = Anchor{1, 0.5}
	AnchorBottomRight = Anchor{1, 1}
)

// SizeHint sizes a gadget as a proportion of its parent when the
// gadget is added to a tree or its parent resizes. Nil proportions
// leave the corresponding dimension alone.
type SizeHint struct {
	Height, Width             *float64
	HeightOffset, WidthOffset int
	MinHeight, MaxHeight      *int
	MinWidth, MaxWidth        *int
}

// PosHint positions a gadget as a proportion of its parent. The
// anchor picks which point of the gadget lands on the hint position.
type PosHint struct {
	Anchor           Anchor
	Y, X             *float64
	YOffset, XOffset int
}

// Float returns a pointer to v, for building hints in place
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v, for building hint clamps in place
func Int(v int) *int {
	return &v
}

// validate rejects non-positive size proportions at the point the
// hint is set
func (h SizeHint) validate() error {
	if h.Height != nil && *h.Height <= 0 {
		return fmt.Errorf("size hint height proportion must be > 0, got %v", *h.Height)
	}
	if h.Width != nil && *h.Width <= 0 {
		return fmt.Errorf("size hint width proportion must be > 0, got %v", *h.Width)
	}
	return nil
}

// resolveSize returns the concrete size for a gadget under a parent
// of the given size, keeping current dimensions where the hint is
// unset
func (h SizeHint) resolveSize(parent, current geometry.Size) geometry.Size {
	height, width := current.Height, current.Width
	if h.Height != nil {
		height = geometry.Clamp(
			geometry.RoundDown(float64(parent.Height)**h.Height)+h.HeightOffset,
			h.MinHeight, h.MaxHeight,
		)
	}
	if h.Width != nil {
		width = geometry.Clamp(
			geometry.RoundDown(float64(parent.Width)**h.Width)+h.WidthOffset,
			h.MinWidth, h.MaxWidth,
		)
	}
	return geometry.NewSize(height, width)
}

// resolvePos returns the concrete position for a gadget of the given
// size under a parent of the given size. Size is resolved first; the
// anchor offset depends on the gadget's own resolved size.
func (h PosHint) resolvePos(parent geometry.Size, size geometry.Size, current geometry.Point) geometry.Point {
	y, x := current.Y, current.X
	if h.Y != nil {
		y = geometry.RoundDown(float64(parent.Height)**h.Y) -
			geometry.RoundDown(float64(size.Height)*h.Anchor.Y) +
			h.YOffset
	}
	if h.X != nil {
		x = geometry.RoundDown(float64(parent.Width)**h.X) -
			geometry.RoundDown(float64(size.Width)*h.Anchor.X) +
			h.XOffset
	}
	return geometry.Point{Y: y, X: x}
}
