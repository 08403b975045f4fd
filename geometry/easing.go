package geometry

import "math"

// Easing identifies a progress curve for tweening
type Easing uint8

const (
	Linear Easing = iota
	InQuad
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	InQuart
	OutQuart
	InOutQuart
	InQuint
	OutQuint
	InOutQuint
	InSine
	OutSine
	InOutSine
	InExp
	OutExp
	InOutExp
	InCirc
	OutCirc
	InOutCirc
	InElastic
	OutElastic
	InOutElastic
	InBack
	OutBack
	InOutBack
	InBounce
	OutBounce
	InOutBounce
)

// Ease maps raw progress p in [0, 1] through the curve
func (e Easing) Ease(p float64) float64 {
	switch e {
	case InQuad:
		return p * p
	case OutQuad:
		return -p * (p - 2)
	case InOutQuad:
		if p < 0.5 {
			return 2 * p * p
		}
		return -2*p*p + 4*p - 1
	case InCubic:
		return p * p * p
	case OutCubic:
		q := p - 1
		return q*q*q + 1
	case InOutCubic:
		if p < 0.5 {
			return 4 * p * p * p
		}
		q := 2*p - 2
		return 0.5*q*q*q + 1
	case InQuart:
		return p * p * p * p
	case OutQuart:
		q := p - 1
		return 1 - q*q*q*q
	case InOutQuart:
		if p < 0.5 {
			return 8 * p * p * p * p
		}
		q := p - 1
		return -8*q*q*q*q + 1
	case InQuint:
		return p * p * p * p * p
	case OutQuint:
		q := p - 1
		return q*q*q*q*q + 1
	case InOutQuint:
		if p < 0.5 {
			return 16 * p * p * p * p * p
		}
		q := 2*p - 2
		return 0.5*q*q*q*q*q + 1
	case InSine:
		return math.Sin((p-1)*math.Pi/2) + 1
	case OutSine:
		return math.Sin(p * math.Pi / 2)
	case InOutSine:
		return 0.5 * (1 - math.Cos(p*math.Pi))
	case InExp:
		if p == 0 {
			return 0
		}
		return math.Pow(2, 10*(p-1))
	case OutExp:
		if p == 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*p)
	case InOutExp:
		if p == 0 || p == 1 {
			return p
		}
		if p < 0.5 {
			return 0.5 * math.Pow(2, 20*p-10)
		}
		return -0.5*math.Pow(2, -20*p+10) + 1
	case InCirc:
		return 1 - math.Sqrt(1-p*p)
	case OutCirc:
		q := p - 1
		return math.Sqrt(1 - q*q)
	case InOutCirc:
		if p < 0.5 {
			return 0.5 * (1 - math.Sqrt(1-4*p*p))
		}
		q := 2*p - 2
		return 0.5 * (math.Sqrt(1-q*q) + 1)
	case InElastic:
		return math.Sin(6.5*math.Pi*p) * math.Pow(2, 10*(p-1))
	case OutElastic:
		return math.Sin(-6.5*math.Pi*(p+1))*math.Pow(2, -10*p) + 1
	case InOutElastic:
		if p < 0.5 {
			return 0.5 * math.Sin(6.5*math.Pi*2*p) * math.Pow(2, 10*(2*p-1))
		}
		return 0.5 * (math.Sin(-6.5*math.Pi*(2*p-1+1))*math.Pow(2, -10*(2*p-1)) + 2)
	case InBack:
		return p * p * (2.70158*p - 1.70158)
	case OutBack:
		q := p - 1
		return q*q*(2.70158*q+1.70158) + 1
	case InOutBack:
		if p < 0.5 {
			q := 2 * p
			return 0.5 * q * q * (3.5949095*q - 2.5949095)
		}
		q := 2*p - 2
		return 0.5 * (q*q*(3.5949095*q+2.5949095) + 2)
	case InBounce:
		return 1 - OutBounce.Ease(1-p)
	case OutBounce:
		switch {
		case p < 4.0/11.0:
			return 121 * p * p / 16
		case p < 8.0/11.0:
			return 363.0/40.0*p*p - 99.0/10.0*p + 17.0/5.0
		case p < 9.0/10.0:
			return 4356.0/361.0*p*p - 35442.0/1805.0*p + 16061.0/1805.0
		default:
			return 54.0/5.0*p*p - 513.0/25.0*p + 268.0/25.0
		}
	case InOutBounce:
		if p < 0.5 {
			return 0.5 * InBounce.Ease(2*p)
		}
		return 0.5*OutBounce.Ease(2*p-1) + 0.5
	default:
		return p
	}
}
