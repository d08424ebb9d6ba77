package path2d

import "github.com/chewxy/math32"

// lastPoint resolves the point a subsequent drawing operation continues
// from, given segs as the full sequence.
//
// Coordinate-bearing segments answer with their own point. An ArcTo needs
// the point before it, so the walk collects a stack of pending corners
// while moving towards the front and applies them on the way back. A
// ClosePath jumps to the first segment of the subpath it closes; if that
// segment is an ArcTo, the walk continues from there. Every step strictly
// shrinks the prefix being examined, so the loop runs at most len(segs)
// times and uses no recursion.
func lastPoint(segs []Segment) (Point, bool) {
	var (
		pending []ArcTo
		base    Point
		ok      bool
	)

	end := len(segs)
walk:
	for end > 0 {
		switch s := segs[end-1].(type) {
		case ArcTo:
			pending = append(pending, s)
			end--
		case ClosePath:
			start := subpathStart(segs, end-1)
			switch first := segs[start].(type) {
			case ClosePath:
				// Zero-length subpath: nothing to resolve.
				break walk
			case ArcTo:
				end = start + 1
			default:
				base, ok = endpoint(first)
				break walk
			}
		default:
			base, ok = endpoint(s)
			break walk
		}
	}

	// Innermost corner first.
	for i := len(pending) - 1; i >= 0; i-- {
		a := pending[i]
		cp1 := Pt(a.CP1X, a.CP1Y)
		if !ok {
			base, ok = cp1, true
			continue
		}
		base = tangentPoint(base, cp1, Pt(a.CP2X, a.CP2Y), a.Radius)
	}
	return base, ok
}

// subpathStart returns the index of the first segment of the subpath
// closed by the ClosePath at index closeAt: one past the nearest earlier
// ClosePath, or 0.
func subpathStart(segs []Segment, closeAt int) int {
	for i := closeAt - 1; i >= 0; i-- {
		if _, ok := segs[i].(ClosePath); ok {
			return i + 1
		}
	}
	return 0
}

// tangentPoint returns where a circle of the given radius, inscribed in
// the corner cp0-cp1-cp2, touches the edge cp1-cp2. Degenerate corners,
// including corners too sharp or too flat to resolve in float32, return
// cp1.
func tangentPoint(cp0, cp1, cp2 Point, radius float32) Point {
	if cp0 == cp1 || cp1 == cp2 || radius == 0 {
		return cp1
	}
	if cp2.Sub(cp1).Cross(cp0.Sub(cp1)) == 0 {
		return cp1
	}

	a2 := cp0.Sub(cp1).LengthSquared()
	b2 := cp1.Sub(cp2).LengthSquared()
	c2 := cp0.Sub(cp2).LengthSquared()

	// Law of cosines at cp1, then the half-angle tangent length r/tan(x/2).
	cosx := (a2 + b2 - c2) / (2 * math32.Sqrt(a2*b2))
	cosx = max(-1, min(1, cosx))
	sinx := math32.Sqrt(1 - cosx*cosx)
	if sinx == 0 || 1-cosx == 0 {
		return cp1
	}
	d := radius / ((1 - cosx) / sinx)

	pt := cp1.Sub(cp1.Sub(cp2).Normalize().Mul(d))
	if !pt.IsFinite() {
		return cp1
	}
	return pt
}
