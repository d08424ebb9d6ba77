package path2d

import (
	"iter"
	"log/slog"
	"strings"
)

// Path is an ordered sequence of segments. Segments are only ever
// appended; nothing is removed or edited in place once pushed.
//
// A Path is not safe for concurrent use.
type Path struct {
	segments []Segment
	logger   *slog.Logger
}

// New creates a new empty path.
func New(opts ...Option) *Path {
	o := buildOptions(opts)
	return &Path{
		segments: make([]Segment, 0, o.capacity),
		logger:   o.logger,
	}
}

// FromPath creates a path holding a copy of other's segments.
func FromPath(other *Path, opts ...Option) *Path {
	o := buildOptions(opts)
	p := &Path{
		segments: make([]Segment, 0, max(o.capacity, len(other.segments))),
		logger:   o.logger,
	}
	p.segments = append(p.segments, other.segments...)
	return p
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	return &Path{
		segments: p.Segments(),
		logger:   p.logger,
	}
}

// Push appends seg unconditionally.
func (p *Path) Push(seg Segment) {
	p.segments = append(p.segments, seg)
}

// Segments returns a copy of the segment sequence.
func (p *Path) Segments() []Segment {
	c := make([]Segment, len(p.segments))
	copy(c, p.segments)
	return c
}

// All iterates over the segments without copying them.
// The path must not be modified during iteration.
func (p *Path) All() iter.Seq2[int, Segment] {
	return func(yield func(int, Segment) bool) {
		for i, s := range p.segments {
			if !yield(i, s) {
				return
			}
		}
	}
}

// At returns the i-th segment.
func (p *Path) At(i int) Segment {
	return p.segments[i]
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segments)
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.segments) == 0
}

// LastPoint returns the point the next drawing operation would continue
// from. ArcTo corners resolve to their exit tangent point and ClosePath to
// the start of the subpath it closes. It reports false when no such point
// exists.
func (p *Path) LastPoint() (Point, bool) {
	return lastPoint(p.segments)
}

// String returns the segments in an SVG-like notation. ArcTo and Ellipse
// use the non-SVG letters R and E.
func (p *Path) String() string {
	var sb strings.Builder
	for i, s := range p.segments {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}

func (p *Path) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return Logger()
}

// allFinite reports whether every value of vs is finite once narrowed to
// float32. Values beyond the float32 range count as infinite.
func allFinite(vs ...float64) bool {
	for _, v := range vs {
		if !isFinite32(float32(v)) {
			return false
		}
	}
	return true
}

func (p *Path) skip(op string) {
	p.log().Debug("path2d: skipped non-finite arguments", "op", op)
}

// MoveTo starts a new subpath at (x, y).
// Non-finite arguments make the call a no-op.
func (p *Path) MoveTo(x, y float64) {
	if !allFinite(x, y) {
		p.skip("moveTo")
		return
	}
	p.Push(MoveTo{X: float32(x), Y: float32(y)})
}

// LineTo adds a straight line to (x, y).
// Non-finite arguments make the call a no-op.
func (p *Path) LineTo(x, y float64) {
	if !allFinite(x, y) {
		p.skip("lineTo")
		return
	}
	p.Push(LineTo{X: float32(x), Y: float32(y)})
}

// QuadraticCurveTo adds a quadratic Bezier curve.
// Non-finite arguments make the call a no-op.
func (p *Path) QuadraticCurveTo(cpx, cpy, x, y float64) {
	if !allFinite(cpx, cpy, x, y) {
		p.skip("quadraticCurveTo")
		return
	}
	p.Push(Quadratic{
		CPX: float32(cpx), CPY: float32(cpy),
		X: float32(x), Y: float32(y),
	})
}

// BezierCurveTo adds a cubic Bezier curve.
// Non-finite arguments make the call a no-op.
func (p *Path) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	if !allFinite(cp1x, cp1y, cp2x, cp2y, x, y) {
		p.skip("bezierCurveTo")
		return
	}
	p.Push(Bezier{
		CP1X: float32(cp1x), CP1Y: float32(cp1y),
		CP2X: float32(cp2x), CP2Y: float32(cp2y),
		X: float32(x), Y: float32(y),
	})
}

// ArcTo rounds the corner at (x1, y1) towards (x2, y2) with radius r.
// Non-finite arguments make the call a no-op; a negative radius returns
// an error wrapping ErrIndexSize.
func (p *Path) ArcTo(x1, y1, x2, y2, r float64) error {
	if !allFinite(x1, y1, x2, y2, r) {
		p.skip("arcTo")
		return nil
	}
	if r < 0 {
		return negativeRadius("arcTo", r)
	}
	p.Push(ArcTo{
		CP1X: float32(x1), CP1Y: float32(y1),
		CP2X: float32(x2), CP2Y: float32(y2),
		Radius: float32(r),
	})
	return nil
}

// Rect adds a closed rectangular subpath and then starts a new subpath at
// (x, y). It always pushes six segments.
// Non-finite arguments make the call a no-op.
func (p *Path) Rect(x, y, w, h float64) {
	if !allFinite(x, y, w, h, x+w, y+h) {
		p.skip("rect")
		return
	}
	p.Push(MoveTo{X: float32(x), Y: float32(y)})
	p.Push(LineTo{X: float32(x + w), Y: float32(y)})
	p.Push(LineTo{X: float32(x + w), Y: float32(y + h)})
	p.Push(LineTo{X: float32(x), Y: float32(y + h)})
	p.Push(ClosePath{})
	p.Push(MoveTo{X: float32(x), Y: float32(y)})
}

// Arc adds a circular arc around (x, y). Angles are in radians.
// Non-finite arguments make the call a no-op; a negative radius returns
// an error wrapping ErrIndexSize.
func (p *Path) Arc(x, y, r, start, end float64, anticlockwise bool) error {
	if !allFinite(x, y, r, start, end) {
		p.skip("arc")
		return nil
	}
	if r < 0 {
		return negativeRadius("arc", r)
	}
	p.Push(Ellipse{
		X:             float32(x),
		Y:             float32(y),
		RadiusX:       float32(r),
		RadiusY:       float32(r),
		StartAngle:    float32(start),
		EndAngle:      float32(end),
		Anticlockwise: anticlockwise,
	})
	return nil
}

// Ellipse adds an elliptical arc around (x, y), rotated by rotation.
// Angles are in radians. Non-finite arguments make the call a no-op; a
// negative radius returns an error wrapping ErrIndexSize.
func (p *Path) Ellipse(x, y, rx, ry, rotation, start, end float64, anticlockwise bool) error {
	if !allFinite(x, y, rx, ry, rotation, start, end) {
		p.skip("ellipse")
		return nil
	}
	if rx < 0 {
		return negativeRadius("ellipse", rx)
	}
	if ry < 0 {
		return negativeRadius("ellipse", ry)
	}
	p.Push(Ellipse{
		X:             float32(x),
		Y:             float32(y),
		RadiusX:       float32(rx),
		RadiusY:       float32(ry),
		Rotation:      float32(rotation),
		StartAngle:    float32(start),
		EndAngle:      float32(end),
		Anticlockwise: anticlockwise,
	})
	return nil
}

// ClosePath marks the end of the current subpath. It is always pushed.
func (p *Path) ClosePath() {
	p.Push(ClosePath{})
}
