package path2d

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// ellipseArc is an arc of the ellipse with the given center and radii,
// rotated by rotation radians, running from angle start through sweep.
// Positive sweep goes in the direction of increasing angle.
type ellipseArc struct {
	center   vec.Vec2
	rx, ry   float64
	rotation float64
	start    float64
	sweep    float64
}

// at returns the point of the ellipse at parameter angle theta.
func (a ellipseArc) at(theta float64) vec.Vec2 {
	return a.center.Add(rotateVec(vec.Vec2{X: a.rx * math.Cos(theta), Y: a.ry * math.Sin(theta)}, a.rotation))
}

// tangent returns the derivative of at with respect to theta.
func (a ellipseArc) tangent(theta float64) vec.Vec2 {
	return rotateVec(vec.Vec2{X: -a.rx * math.Sin(theta), Y: a.ry * math.Cos(theta)}, a.rotation)
}

// cubics calls emit with the control points and endpoint of each cubic
// Bezier approximating the arc, using pieces of at most 90 degrees.
func (a ellipseArc) cubics(emit func(c1, c2, p vec.Vec2) bool) bool {
	const maxStep = math.Pi / 2

	if a.sweep == 0 {
		return true
	}
	// Angles arrive rounded to float32; a quarter turn that overshoots by
	// that rounding is still one piece.
	n := max(1, int(math.Ceil(math.Abs(a.sweep)/maxStep-1e-6)))
	step := a.sweep / float64(n)
	// Arm length for one piece, as a multiple of the tangent.
	k := 4.0 / 3.0 * math.Tan(step/4)

	theta0 := a.start
	p0 := a.at(theta0)
	for i := range n {
		theta1 := a.start + float64(i+1)*step
		p1 := a.at(theta1)
		c1 := p0.Add(a.tangent(theta0).Mul(k))
		c2 := p1.Sub(a.tangent(theta1).Mul(k))
		if !emit(c1, c2, p1) {
			return false
		}
		theta0, p0 = theta1, p1
	}
	return true
}

func rotateVec(v vec.Vec2, angle float64) vec.Vec2 {
	if angle == 0 {
		return v
	}
	sin, cos := math.Sincos(angle)
	return vec.Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// canvasSweep turns start and end angles of a canvas arc into a signed
// sweep. A request covering a full turn or more draws exactly one turn.
func canvasSweep(start, end float64, anticlockwise bool) float64 {
	const twoPi = 2 * math.Pi
	if !anticlockwise {
		if end-start >= twoPi {
			return twoPi
		}
		s := math.Mod(end-start, twoPi)
		if s < 0 {
			s += twoPi
		}
		return s
	}
	if start-end >= twoPi {
		return -twoPi
	}
	s := math.Mod(start-end, twoPi)
	if s < 0 {
		s += twoPi
	}
	return -s
}

// svgArc converts an endpoint-parameterised arc from p1 to p2 into center
// form, following the SVG implementation notes (F.6.5, F.6.6). rotation is
// in degrees. ok is false if the arc degenerates to a straight line.
func svgArc(p1, p2 vec.Vec2, rx, ry, rotation float64, large, sweep bool) (a ellipseArc, ok bool) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return ellipseArc{}, false
	}
	phi := rotation * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	dx, dy := (p1.X-p2.X)/2, (p1.Y-p2.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// Scale up radii that cannot reach between the endpoints.
	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	co := math.Sqrt(max(0, num/den))
	if large == sweep {
		co = -co
	}
	cx1 := co * rx * y1 / ry
	cy1 := -co * ry * x1 / rx

	center := vec.Vec2{
		X: cosPhi*cx1 - sinPhi*cy1 + (p1.X+p2.X)/2,
		Y: sinPhi*cx1 + cosPhi*cy1 + (p1.Y+p2.Y)/2,
	}

	ux, uy := (x1-cx1)/rx, (y1-cy1)/ry
	vx, vy := (-x1-cx1)/rx, (-y1-cy1)/ry
	theta := math.Atan2(uy, ux)
	delta := math.Mod(math.Atan2(vy, vx)-theta, 2*math.Pi)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	return ellipseArc{
		center:   center,
		rx:       rx,
		ry:       ry,
		rotation: phi,
		start:    theta,
		sweep:    delta,
	}, true
}
