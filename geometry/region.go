package geometry

import "sort"

// Region is a set of screen cells held as sorted, mutually exclusive
// horizontal bands. Each band spans rows [y1, y2) and holds a sorted
// list of walls; each contiguous wall pair is the left and right edge
// of one rect in the band.
//
// The band representation keeps repeated union/intersect/subtract from
// fragmenting the way naive rect lists do: a merge of two regions is a
// single scan over both band lists.
type Region struct {
	bands []band
}

// band is a row of mutually exclusive rects spanning rows [y1, y2).
type band struct {
	y1, y2 int
	walls  []int
}

type setOp func(inA, inB bool) bool

var (
	opUnion     setOp = func(a, b bool) bool { return a || b }
	opIntersect setOp = func(a, b bool) bool { return a && b }
	opSubtract  setOp = func(a, b bool) bool { return a && !b }
	opXor       setOp = func(a, b bool) bool { return a != b }
)

// FromRect returns the region covering a single rect
func FromRect(pos Point, size Size) Region {
	if size.Height <= 0 || size.Width <= 0 {
		return Region{}
	}
	return Region{bands: []band{{
		y1:    pos.Y,
		y2:    pos.Y + size.Height,
		walls: []int{pos.X, pos.X + size.Width},
	}}}
}

// IsEmpty reports whether the region contains no cells
func (r Region) IsEmpty() bool {
	return len(r.bands) == 0
}

// Union returns all cells in either region
func (r Region) Union(o Region) Region {
	return merge(r, o, opUnion)
}

// Intersect returns the cells common to both regions
func (r Region) Intersect(o Region) Region {
	return merge(r, o, opIntersect)
}

// Subtract returns the cells of r not in o
func (r Region) Subtract(o Region) Region {
	return merge(r, o, opSubtract)
}

// Xor returns the cells in exactly one of the regions
func (r Region) Xor(o Region) Region {
	return merge(r, o, opXor)
}

// Contains reports whether the point lies in the region
func (r Region) Contains(p Point) bool {
	// Last band starting at or above p.Y
	i := sort.Search(len(r.bands), func(i int) bool {
		return r.bands[i].y1 > p.Y
	})
	if i == 0 {
		return false
	}
	b := r.bands[i-1]
	if b.y2 <= p.Y {
		return false
	}
	j := sort.SearchInts(b.walls, p.X+1)
	return j%2 == 1
}

// Rects returns the disjoint rects that make up the region, top to
// bottom, left to right
func (r Region) Rects() []Rect {
	var rects []Rect
	for _, b := range r.bands {
		for i := 0; i+1 < len(b.walls); i += 2 {
			rects = append(rects, Rect{Top: b.y1, Bottom: b.y2, Left: b.walls[i], Right: b.walls[i+1]})
		}
	}
	return rects
}

// Bounds returns the bounding rect of the region and false if empty
func (r Region) Bounds() (Rect, bool) {
	if len(r.bands) == 0 {
		return Rect{}, false
	}
	left := r.bands[0].walls[0]
	right := r.bands[0].walls[len(r.bands[0].walls)-1]
	for _, b := range r.bands[1:] {
		if b.walls[0] < left {
			left = b.walls[0]
		}
		if w := b.walls[len(b.walls)-1]; w > right {
			right = w
		}
	}
	return Rect{
		Top:    r.bands[0].y1,
		Bottom: r.bands[len(r.bands)-1].y2,
		Left:   left,
		Right:  right,
	}, true
}

// Area returns the number of cells in the region
func (r Region) Area() int {
	total := 0
	for _, b := range r.bands {
		width := 0
		for i := 0; i+1 < len(b.walls); i += 2 {
			width += b.walls[i+1] - b.walls[i]
		}
		total += (b.y2 - b.y1) * width
	}
	return total
}

// Equal reports whether two regions cover the same cells
func (r Region) Equal(o Region) bool {
	if len(r.bands) != len(o.bands) {
		return false
	}
	for i, b := range r.bands {
		ob := o.bands[i]
		if b.y1 != ob.y1 || b.y2 != ob.y2 || len(b.walls) != len(ob.walls) {
			return false
		}
		for j, w := range b.walls {
			if w != ob.walls[j] {
				return false
			}
		}
	}
	return true
}

// mergeWalls merges the walls of two bands under a set operation.
// Walking both sorted wall lists flips the inside state at each wall;
// a wall is emitted whenever the combined state changes.
func mergeWalls(op setOp, a, b []int) []int {
	var walls []int
	i, j := 0, 0
	inA, inB, inside := false, false, false

	for i < len(a) || j < len(b) {
		var threshold int
		switch {
		case i >= len(a):
			threshold = b[j]
		case j >= len(b):
			threshold = a[i]
		case a[i] <= b[j]:
			threshold = a[i]
		default:
			threshold = b[j]
		}

		if i < len(a) && a[i] == threshold {
			inA = !inA
			i++
		}
		if j < len(b) && b[j] == threshold {
			inB = !inB
			j++
		}
		if op(inA, inB) != inside {
			inside = !inside
			walls = append(walls, threshold)
		}
	}
	return walls
}

// merge combines two regions band-by-band under a set operation.
// Both band lists are scanned once; at every row interval where band
// coverage changes, the overlapping walls are merged.
func merge(r, o Region, op setOp) Region {
	var bands []band
	i, j := 0, 0
	scanline := minInt // below any band start

	appendBand := func(y1, y2 int, walls []int) {
		if y1 < y2 && len(walls) > 0 {
			bands = append(bands, band{y1: y1, y2: y2, walls: walls})
		}
	}

	for i < len(r.bands) && j < len(o.bands) {
		a, b := r.bands[i], o.bands[j]
		if a.y1 <= b.y1 {
			if scanline < a.y1 {
				scanline = a.y1
			}
			switch {
			case a.y2 < b.y1:
				// a entirely above b
				appendBand(scanline, a.y2, mergeWalls(op, a.walls, nil))
				scanline = a.y2
				i++
			case a.y2 < b.y2:
				// a overlaps top of b
				if scanline < b.y1 {
					appendBand(scanline, b.y1, mergeWalls(op, a.walls, nil))
				}
				if b.y1 < a.y2 {
					appendBand(b.y1, a.y2, mergeWalls(op, a.walls, b.walls))
				}
				scanline = a.y2
				i++
			default:
				// b nested in a's row span
				if scanline < b.y1 {
					appendBand(scanline, b.y1, mergeWalls(op, a.walls, nil))
				}
				appendBand(b.y1, b.y2, mergeWalls(op, a.walls, b.walls))
				scanline = b.y2
				if b.y2 == a.y2 {
					i++
				}
				j++
			}
		} else {
			if scanline < b.y1 {
				scanline = b.y1
			}
			switch {
			case b.y2 < a.y1:
				appendBand(scanline, b.y2, mergeWalls(op, nil, b.walls))
				scanline = b.y2
				j++
			case b.y2 < a.y2:
				if scanline < a.y1 {
					appendBand(scanline, a.y1, mergeWalls(op, nil, b.walls))
				}
				if a.y1 < b.y2 {
					appendBand(a.y1, b.y2, mergeWalls(op, a.walls, b.walls))
				}
				scanline = b.y2
				j++
			default:
				if scanline < a.y1 {
					appendBand(scanline, a.y1, mergeWalls(op, nil, b.walls))
				}
				appendBand(a.y1, a.y2, mergeWalls(op, a.walls, b.walls))
				scanline = a.y2
				if a.y2 == b.y2 {
					j++
				}
				i++
			}
		}
	}

	for ; i < len(r.bands); i++ {
		a := r.bands[i]
		if scanline < a.y1 {
			scanline = a.y1
		}
		appendBand(scanline, a.y2, mergeWalls(op, a.walls, nil))
	}
	for ; j < len(o.bands); j++ {
		b := o.bands[j]
		if scanline < b.y1 {
			scanline = b.y1
		}
		appendBand(scanline, b.y2, mergeWalls(op, nil, b.walls))
	}

	return Region{bands: coalesce(bands)}
}

// coalesce joins contiguous bands with identical walls
func coalesce(bands []band) []band {
	out := bands[:0]
	for _, b := range bands {
		if len(out) > 0 {
			last := &out[len(out)-1]
			if b.y1 <= last.y2 && wallsEqual(last.walls, b.walls) {
				last.y2 = b.y2
				continue
			}
		}
		out = append(out, b)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func wallsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

const minInt = -int(^uint(0)>>1) - 1
