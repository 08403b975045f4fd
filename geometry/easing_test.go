package geometry

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	for e := Linear; e <= InOutBounce; e++ {
		if got := e.Ease(0); math.Abs(got) > 1e-9 {
			t.Errorf("easing %d: Ease(0) = %v, want 0", e, got)
		}
		if got := e.Ease(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("easing %d: Ease(1) = %v, want 1", e, got)
		}
	}
}

func TestEasingLinearMidpoint(t *testing.T) {
	if got := Linear.Ease(0.5); got != 0.5 {
		t.Errorf("Linear.Ease(0.5) = %v, want 0.5", got)
	}
}

func TestEasingInSineMidpoint(t *testing.T) {
	want := 1 - math.Sqrt2/2
	if got := InSine.Ease(0.5); math.Abs(got-want) > 1e-9 {
		t.Errorf("InSine.Ease(0.5) = %v, want %v", got, want)
	}
}

func TestEasingRange(t *testing.T) {
	// Non-overshooting curves stay within [0, 1]
	curves := []Easing{
		Linear, InQuad, OutQuad, InOutQuad, InCubic, OutCubic, InOutCubic,
		InQuart, OutQuart, InOutQuart, InQuint, OutQuint, InOutQuint,
		InSine, OutSine, InOutSine, InExp, OutExp, InOutExp,
		InCirc, OutCirc, InOutCirc, InBounce, OutBounce, InOutBounce,
	}
	for _, e := range curves {
		for i := 0; i <= 100; i++ {
			p := float64(i) / 100
			v := e.Ease(p)
			if v < -1e-9 || v > 1+1e-9 {
				t.Errorf("easing %d: Ease(%v) = %v out of range", e, p, v)
			}
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %v, want 5", got)
	}
	if got := LerpInt(0, 10, 1); got != 10 {
		t.Errorf("LerpInt(0, 10, 1) = %v, want 10", got)
	}
	if got := LerpInt(0, 3, 0.5); got != 1 {
		t.Errorf("LerpInt(0, 3, 0.5) = %v, want 1 (floor)", got)
	}
}

func TestClamp(t *testing.T) {
	lo, hi := 2, 8
	if got := Clamp(1, &lo, &hi); got != 2 {
		t.Errorf("Clamp(1, 2, 8) = %d, want 2", got)
	}
	if got := Clamp(9, &lo, &hi); got != 8 {
		t.Errorf("Clamp(9, 2, 8) = %d, want 8", got)
	}
	if got := Clamp(-5, nil, nil); got != -5 {
		t.Errorf("Clamp(-5, nil, nil) = %d, want -5", got)
	}
}
