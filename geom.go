package path2d

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Geom returns the path as plain move/line/quad/cube/close commands, the
// form renderers consume. ArcTo, Ellipse and SvgArc are replaced by lines
// and cubic Bezier curves, and drawing segments that occur before any
// moveto first open a subpath at their first point, as a 2D canvas does.
//
// The returned iterator reads p lazily; p must not change while it runs.
func (p *Path) Geom() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		o := outliner{yield: yield}
		for _, s := range p.segments {
			if !o.segment(s) {
				return
			}
		}
	}
}

// Outline collects Geom into a path.Data.
func (p *Path) Outline() *path.Data {
	d := &path.Data{}
	for cmd, pts := range p.Geom() {
		switch cmd {
		case path.CmdMoveTo:
			d = d.MoveTo(pts[0])
		case path.CmdLineTo:
			d = d.LineTo(pts[0])
		case path.CmdQuadTo:
			d = d.QuadTo(pts[0], pts[1])
		case path.CmdCubeTo:
			d = d.CubeTo(pts[0], pts[1], pts[2])
		case path.CmdClose:
			d = d.Close()
		}
	}
	return d
}

// outliner tracks the pen while lowering segments to geom commands.
type outliner struct {
	yield func(path.Command, []vec.Vec2) bool

	cur, start vec.Vec2
	open       bool // cur is meaningful
}

func v2(x, y float32) vec.Vec2 {
	return vec.Vec2{X: float64(x), Y: float64(y)}
}

func (o *outliner) moveTo(p vec.Vec2) bool {
	o.cur, o.start, o.open = p, p, true
	return o.yield(path.CmdMoveTo, []vec.Vec2{p})
}

func (o *outliner) lineTo(p vec.Vec2) bool {
	if !o.open {
		return o.moveTo(p)
	}
	o.cur = p
	return o.yield(path.CmdLineTo, []vec.Vec2{p})
}

// ensure opens a subpath at p if there is no current point.
func (o *outliner) ensure(p vec.Vec2) bool {
	if o.open {
		return true
	}
	return o.moveTo(p)
}

func (o *outliner) arc(a ellipseArc) bool {
	return a.cubics(func(c1, c2, p vec.Vec2) bool {
		o.cur = p
		return o.yield(path.CmdCubeTo, []vec.Vec2{c1, c2, p})
	})
}

func (o *outliner) segment(s Segment) bool {
	switch s := s.(type) {
	case MoveTo:
		return o.moveTo(v2(s.X, s.Y))
	case LineTo:
		return o.lineTo(v2(s.X, s.Y))
	case Quadratic:
		cp, p := v2(s.CPX, s.CPY), v2(s.X, s.Y)
		if !o.ensure(cp) {
			return false
		}
		o.cur = p
		return o.yield(path.CmdQuadTo, []vec.Vec2{cp, p})
	case Bezier:
		cp1, cp2, p := v2(s.CP1X, s.CP1Y), v2(s.CP2X, s.CP2Y), v2(s.X, s.Y)
		if !o.ensure(cp1) {
			return false
		}
		o.cur = p
		return o.yield(path.CmdCubeTo, []vec.Vec2{cp1, cp2, p})
	case ArcTo:
		return o.arcTo(s)
	case Ellipse:
		a := ellipseArc{
			center:   v2(s.X, s.Y),
			rx:       float64(s.RadiusX),
			ry:       float64(s.RadiusY),
			rotation: float64(s.Rotation),
			start:    float64(s.StartAngle),
			sweep:    canvasSweep(float64(s.StartAngle), float64(s.EndAngle), s.Anticlockwise),
		}
		if !o.lineTo(a.at(a.start)) {
			return false
		}
		return o.arc(a)
	case SvgArc:
		end := v2(s.X, s.Y)
		if !o.open {
			return o.moveTo(end)
		}
		if o.cur == end {
			return true
		}
		a, ok := svgArc(o.cur, end, float64(s.RadiusX), float64(s.RadiusY), float64(s.Rotation), s.LargeArc, s.Sweep)
		if !ok {
			return o.lineTo(end)
		}
		return o.arc(a)
	case ClosePath:
		if !o.open {
			return true
		}
		o.cur = o.start
		return o.yield(path.CmdClose, nil)
	}
	return true
}

// arcTo draws the corner at cp1: a line to the entry tangent point, then a
// circular arc to the exit tangent point.
func (o *outliner) arcTo(s ArcTo) bool {
	p1, p2 := v2(s.CP1X, s.CP1Y), v2(s.CP2X, s.CP2Y)
	r := float64(s.Radius)
	if !o.ensure(p1) {
		return false
	}
	p0 := o.cur

	d0, d2 := p0.Sub(p1), p2.Sub(p1)
	cross := d0.X*d2.Y - d0.Y*d2.X
	if p0 == p1 || p1 == p2 || r == 0 || cross == 0 {
		return o.lineTo(p1)
	}

	u0 := d0.Mul(1 / d0.Length())
	u2 := d2.Mul(1 / d2.Length())
	// Corner angle at p1, and the tangent length r/tan(angle/2).
	angle := math.Acos(max(-1, min(1, u0.Dot(u2))))
	dist := r / math.Tan(angle/2)
	t0 := p1.Add(u0.Mul(dist))
	t2 := p1.Add(u2.Mul(dist))

	bisector := u0.Add(u2)
	center := p1.Add(bisector.Mul(r / math.Sin(angle/2) / bisector.Length()))

	a0 := math.Atan2(t0.Y-center.Y, t0.X-center.X)
	a2 := math.Atan2(t2.Y-center.Y, t2.X-center.X)
	sweep := a2 - a0
	// The corner arc is always the short way round.
	if sweep > math.Pi {
		sweep -= 2 * math.Pi
	} else if sweep < -math.Pi {
		sweep += 2 * math.Pi
	}

	if !o.lineTo(t0) {
		return false
	}
	return o.arc(ellipseArc{center: center, rx: r, ry: r, start: a0, sweep: sweep})
}
