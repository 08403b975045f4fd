package gadget

import (
	"fmt"
	"time"

	"github.com/lixenwraith/gadget/geometry"
)

// TweenConfig describes an animation of one or more gadget
// properties toward target values. Nil targets leave the property
// untouched.
type TweenConfig struct {
	Duration time.Duration
	Easing   geometry.Easing

	Pos      *geometry.Point
	Size     *geometry.Size
	Alpha    *float64
	SizeHint *SizeHint
	PosHint  *PosHint

	// OnStart runs on the first step, OnProgress after every
	// intermediate step with the eased progress, OnComplete once the
	// targets are applied exactly
	OnStart    func()
	OnProgress func(p float64)
	OnComplete func()
}

// tweenState snapshots the starting values when the tween is
// scheduled
type tweenState struct {
	pos      geometry.Point
	size     geometry.Size
	alpha    float64
	sizeHint SizeHint
	posHint  PosHint
}

// Tween schedules an animation on the gadget. Animating a detached
// gadget is an error. A non-positive duration applies the targets
// immediately.
func (g *Gadget) Tween(cfg TweenConfig) (*Task, error) {
	r := g.Root()
	if r == nil {
		return nil, fmt.Errorf("tween: gadget is not attached to a tree")
	}
	if cfg.SizeHint != nil {
		if err := cfg.SizeHint.validate(); err != nil {
			return nil, fmt.Errorf("tween: %w", err)
		}
	}

	start := tweenState{
		pos:      g.pos,
		size:     g.size,
		alpha:    g.alpha,
		sizeHint: g.sizeHint,
		posHint:  g.posHint,
	}

	if cfg.Duration <= 0 {
		if cfg.OnStart != nil {
			cfg.OnStart()
		}
		g.applyTween(cfg, start, 1)
		if cfg.OnComplete != nil {
			cfg.OnComplete()
		}
		t := &Task{owner: g, done: true}
		return t, nil
	}

	var began time.Time
	started := false
	t := &Task{owner: g}
	t.step = func(now time.Time) bool {
		if !started {
			started = true
			began = now
			if cfg.OnStart != nil {
				cfg.OnStart()
			}
		}
		p := float64(now.Sub(began)) / float64(cfg.Duration)
		if p >= 1 {
			g.applyTween(cfg, start, 1)
			if cfg.OnComplete != nil {
				cfg.OnComplete()
			}
			return true
		}
		eased := cfg.Easing.Ease(p)
		g.applyTween(cfg, start, eased)
		if cfg.OnProgress != nil {
			cfg.OnProgress(eased)
		}
		return false
	}
	r.scheduler.add(t)
	return t, nil
}

// applyTween writes the interpolated property values through the
// public setters so bindings fire and regions invalidate. At p == 1
// the targets are applied exactly.
func (g *Gadget) applyTween(cfg TweenConfig, start tweenState, p float64) {
	if cfg.SizeHint != nil {
		g.SetSizeHint(lerpSizeHint(start.sizeHint, *cfg.SizeHint, p))
	}
	if cfg.PosHint != nil {
		g.SetPosHint(lerpPosHint(start.posHint, *cfg.PosHint, p))
	}
	if cfg.Size != nil {
		if p >= 1 {
			g.SetSize(*cfg.Size)
		} else {
			g.SetSize(geometry.Size{
				Height: geometry.LerpInt(start.size.Height, cfg.Size.Height, p),
				Width:  geometry.LerpInt(start.size.Width, cfg.Size.Width, p),
			})
		}
	}
	if cfg.Pos != nil {
		if p >= 1 {
			g.SetPos(*cfg.Pos)
		} else {
			g.SetPos(geometry.Point{
				Y: geometry.LerpInt(start.pos.Y, cfg.Pos.Y, p),
				X: geometry.LerpInt(start.pos.X, cfg.Pos.X, p),
			})
		}
	}
	if cfg.Alpha != nil {
		if p >= 1 {
			g.SetAlpha(*cfg.Alpha)
		} else {
			g.SetAlpha(geometry.Lerp(start.alpha, *cfg.Alpha, p))
		}
	}
}

// lerpSizeHint interpolates proportions and offsets when both ends
// carry them. Components without a start counterpart take the target
// value from the first step.
func lerpSizeHint(a, b SizeHint, p float64) SizeHint {
	out := b
	if a.Height != nil && b.Height != nil {
		out.Height = Float(geometry.Lerp(*a.Height, *b.Height, p))
	}
	if a.Width != nil && b.Width != nil {
		out.Width = Float(geometry.Lerp(*a.Width, *b.Width, p))
	}
	out.HeightOffset = geometry.LerpInt(a.HeightOffset, b.HeightOffset, p)
	out.WidthOffset = geometry.LerpInt(a.WidthOffset, b.WidthOffset, p)
	return out
}

func lerpPosHint(a, b PosHint, p float64) PosHint {
	out := b
	if a.Y != nil && b.Y != nil {
		out.Y = Float(geometry.Lerp(*a.Y, *b.Y, p))
	}
	if a.X != nil && b.X != nil {
		out.X = Float(geometry.Lerp(*a.X, *b.X, p))
	}
	out.YOffset = geometry.LerpInt(a.YOffset, b.YOffset, p)
	out.XOffset = geometry.LerpInt(a.XOffset, b.XOffset, p)
	return out
}
