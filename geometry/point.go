package geometry

import "math"

// Point represents a terminal cell coordinate, row-major
type Point struct {
	Y, X int
}

// Size represents cell grid dimensions
type Size struct {
	Height, Width int
}

// Add returns the componentwise sum of two points
func (p Point) Add(q Point) Point {
	return Point{Y: p.Y + q.Y, X: p.X + q.X}
}

// Sub returns the componentwise difference of two points
func (p Point) Sub(q Point) Point {
	return Point{Y: p.Y - q.Y, X: p.X - q.X}
}

// NewSize clamps negative components to zero
func NewSize(height, width int) Size {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	return Size{Height: height, Width: width}
}

// Area returns the cell count of the size
func (s Size) Area() int {
	return s.Height * s.Width
}

// Center returns the offset of the size's center from its origin
func (s Size) Center() Point {
	return Point{Y: s.Height / 2, X: s.Width / 2}
}

// IsEmpty returns true if either dimension is zero
func (s Size) IsEmpty() bool {
	return s.Height <= 0 || s.Width <= 0
}

// Clamp limits v to [lo, hi], either bound may be nil
func Clamp(v int, lo, hi *int) int {
	if lo != nil && v < *lo {
		return *lo
	}
	if hi != nil && v > *hi {
		return *hi
	}
	return v
}

// ClampF limits v to [lo, hi]
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by p in [0, 1]
func Lerp(a, b, p float64) float64 {
	return (1-p)*a + p*b
}

// RoundDown rounds a float toward negative infinity to an int
// Hint arithmetic uses floor so proportional sizes never exceed the parent
func RoundDown(v float64) int {
	return int(math.Floor(v))
}

// LerpInt interpolates integers with floor rounding
func LerpInt(a, b int, p float64) int {
	return RoundDown(Lerp(float64(a), float64(b), p))
}
