package path2d

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

const (
	// DefaultTolerance is the flattening tolerance used when a
	// non-positive one is given.
	DefaultTolerance = 0.1

	boundsTolerance = 1e-3
	maxFlattenDepth = 16
)

// Flatten approximates the outline from Geom by polylines, one per
// subpath. Curves are subdivided until every piece is within tolerance of
// the curve. Closed subpaths end at their start point. Subpaths that
// consist of a single point are dropped.
func (p *Path) Flatten(tolerance float64) [][]vec.Vec2 {
	if !(tolerance > 0) {
		tolerance = DefaultTolerance
	}
	f := flattener{tolSq: tolerance * tolerance}
	for cmd, pts := range p.Geom() {
		switch cmd {
		case path.CmdMoveTo:
			f.flush()
			f.start, f.cur = pts[0], pts[0]
			f.line = append(f.line, pts[0])
		case path.CmdLineTo:
			f.point(pts[0])
		case path.CmdQuadTo:
			f.quad(f.cur, pts[0], pts[1], 0)
		case path.CmdCubeTo:
			f.cubic(f.cur, pts[0], pts[1], pts[2], 0)
		case path.CmdClose:
			if f.cur != f.start {
				f.point(f.start)
			}
			f.flush()
			f.cur, f.reopen = f.start, true
		}
	}
	f.flush()
	return f.lines
}

// Bounds returns the axis-aligned bounding box of the flattened outline.
// ok is false if the path draws nothing.
func (p *Path) Bounds() (r rect.Rect, ok bool) {
	for _, line := range p.Flatten(boundsTolerance) {
		for _, v := range line {
			if !ok {
				r = rect.Rect{LLx: v.X, LLy: v.Y, URx: v.X, URy: v.Y}
				ok = true
				continue
			}
			r.LLx, r.LLy = min(r.LLx, v.X), min(r.LLy, v.Y)
			r.URx, r.URy = max(r.URx, v.X), max(r.URy, v.Y)
		}
	}
	return r, ok
}

// Length returns the length of the outline, measured on polylines
// flattened to tolerance.
func (p *Path) Length(tolerance float64) float64 {
	var total float64
	for _, line := range p.Flatten(tolerance) {
		for i := 1; i < len(line); i++ {
			total += line[i].Sub(line[i-1]).Length()
		}
	}
	return total
}

type flattener struct {
	tolSq float64

	lines      [][]vec.Vec2
	line       []vec.Vec2
	start, cur vec.Vec2
	reopen     bool // a closed subpath continues from its start
}

func (f *flattener) point(v vec.Vec2) {
	if f.reopen {
		f.line = append(f.line, f.start)
		f.reopen = false
	}
	f.line = append(f.line, v)
	f.cur = v
}

func (f *flattener) flush() {
	if len(f.line) > 1 {
		f.lines = append(f.lines, f.line)
	}
	f.line = nil
	f.reopen = false
}

func mid(a, b vec.Vec2) vec.Vec2 {
	return a.Add(b).Mul(0.5)
}

func (f *flattener) quad(p0, p1, p2 vec.Vec2, depth int) {
	// Distance from the control point to the chord midpoint.
	d := p1.Sub(mid(p0, p2))
	if depth >= maxFlattenDepth || d.Dot(d) <= f.tolSq {
		f.point(p2)
		return
	}
	p01, p12 := mid(p0, p1), mid(p1, p2)
	m := mid(p01, p12)
	f.quad(p0, p01, m, depth+1)
	f.quad(m, p12, p2, depth+1)
}

func (f *flattener) cubic(p0, p1, p2, p3 vec.Vec2, depth int) {
	if depth >= maxFlattenDepth || cubicFlatness(p0, p1, p2, p3) <= 16*f.tolSq {
		f.point(p3)
		return
	}
	p01, p12, p23 := mid(p0, p1), mid(p1, p2), mid(p2, p3)
	p012, p123 := mid(p01, p12), mid(p12, p23)
	m := mid(p012, p123)
	f.cubic(p0, p01, p012, m, depth+1)
	f.cubic(m, p123, p23, p3, depth+1)
}

// cubicFlatness bounds sixteen times the squared distance between the
// curve and its chord.
func cubicFlatness(p0, p1, p2, p3 vec.Vec2) float64 {
	ux := 3*p1.X - 2*p0.X - p3.X
	uy := 3*p1.Y - 2*p0.Y - p3.Y
	vx := 3*p2.X - p0.X - 2*p3.X
	vy := 3*p2.Y - p0.Y - 2*p3.Y
	return math.Max(ux*ux, vx*vx) + math.Max(uy*uy, vy*vy)
}
