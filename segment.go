package path2d

import "fmt"

// Kind identifies the variant of a Segment.
type Kind uint8

const (
	KindMoveTo    Kind = iota // Start a new subpath
	KindLineTo                // Straight line
	KindQuadratic             // Quadratic Bezier curve
	KindBezier                // Cubic Bezier curve
	KindArcTo                 // Rounded corner between two control points
	KindEllipse               // Center-based elliptical arc
	KindSvgArc                // Endpoint-based elliptical arc
	KindClosePath             // Close the current subpath
)

var kindNames = [...]string{
	KindMoveTo:    "MoveTo",
	KindLineTo:    "LineTo",
	KindQuadratic: "Quadratic",
	KindBezier:    "Bezier",
	KindArcTo:     "ArcTo",
	KindEllipse:   "Ellipse",
	KindSvgArc:    "SvgArc",
	KindClosePath: "ClosePath",
}

// String returns the string representation of a Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Segment is a single drawing instruction in a path.
// The set of implementations is closed; switch on the concrete type
// or on Kind.
type Segment interface {
	Kind() Kind
	String() string

	// transform maps every coordinate-bearing field through m.
	transform(m Matrix) Segment
}

// MoveTo starts a new subpath at (X, Y).
type MoveTo struct {
	X, Y float32
}

// LineTo draws a straight line to (X, Y).
type LineTo struct {
	X, Y float32
}

// Quadratic draws a quadratic Bezier curve with one control point.
type Quadratic struct {
	CPX, CPY float32
	X, Y     float32
}

// Bezier draws a cubic Bezier curve with two control points.
type Bezier struct {
	CP1X, CP1Y float32
	CP2X, CP2Y float32
	X, Y       float32
}

// ArcTo rounds the corner at (CP1X, CP1Y) between the current point and
// (CP2X, CP2Y). It has no endpoint of its own; see Path.LastPoint.
type ArcTo struct {
	CP1X, CP1Y float32
	CP2X, CP2Y float32
	Radius     float32
}

// Ellipse draws an elliptical arc around the center (X, Y).
// Angles are in radians.
type Ellipse struct {
	X, Y             float32
	RadiusX, RadiusY float32
	Rotation         float32
	StartAngle       float32
	EndAngle         float32
	Anticlockwise    bool
}

// SvgArc draws an elliptical arc ending at (X, Y), parameterised the way
// the SVG "A" command is. Rotation is in degrees.
type SvgArc struct {
	X, Y             float32
	RadiusX, RadiusY float32
	Rotation         float32
	LargeArc         bool
	Sweep            bool
}

// ClosePath closes the current subpath.
type ClosePath struct{}

func (MoveTo) Kind() Kind    { return KindMoveTo }
func (LineTo) Kind() Kind    { return KindLineTo }
func (Quadratic) Kind() Kind { return KindQuadratic }
func (Bezier) Kind() Kind    { return KindBezier }
func (ArcTo) Kind() Kind     { return KindArcTo }
func (Ellipse) Kind() Kind   { return KindEllipse }
func (SvgArc) Kind() Kind    { return KindSvgArc }
func (ClosePath) Kind() Kind { return KindClosePath }

func (s MoveTo) String() string { return fmt.Sprintf("M%g %g", s.X, s.Y) }
func (s LineTo) String() string { return fmt.Sprintf("L%g %g", s.X, s.Y) }

func (s Quadratic) String() string {
	return fmt.Sprintf("Q%g %g %g %g", s.CPX, s.CPY, s.X, s.Y)
}

func (s Bezier) String() string {
	return fmt.Sprintf("C%g %g %g %g %g %g", s.CP1X, s.CP1Y, s.CP2X, s.CP2Y, s.X, s.Y)
}

// String uses "R" for arcTo corners, which have no SVG equivalent.
func (s ArcTo) String() string {
	return fmt.Sprintf("R%g %g %g %g %g", s.CP1X, s.CP1Y, s.CP2X, s.CP2Y, s.Radius)
}

// String uses "E" for center-based arcs, which have no SVG equivalent.
func (s Ellipse) String() string {
	return fmt.Sprintf("E%g %g %g %g %g %g %g %s",
		s.X, s.Y, s.RadiusX, s.RadiusY, s.Rotation, s.StartAngle, s.EndAngle, flag(s.Anticlockwise))
}

func (s SvgArc) String() string {
	return fmt.Sprintf("A%g %g %g %s %s %g %g",
		s.RadiusX, s.RadiusY, s.Rotation, flag(s.LargeArc), flag(s.Sweep), s.X, s.Y)
}

func (ClosePath) String() string { return "Z" }

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (s MoveTo) transform(m Matrix) Segment {
	p := m.TransformPoint(Pt(s.X, s.Y))
	return MoveTo{X: p.X, Y: p.Y}
}

func (s LineTo) transform(m Matrix) Segment {
	p := m.TransformPoint(Pt(s.X, s.Y))
	return LineTo{X: p.X, Y: p.Y}
}

func (s Quadratic) transform(m Matrix) Segment {
	cp := m.TransformPoint(Pt(s.CPX, s.CPY))
	p := m.TransformPoint(Pt(s.X, s.Y))
	return Quadratic{CPX: cp.X, CPY: cp.Y, X: p.X, Y: p.Y}
}

func (s Bezier) transform(m Matrix) Segment {
	cp1 := m.TransformPoint(Pt(s.CP1X, s.CP1Y))
	cp2 := m.TransformPoint(Pt(s.CP2X, s.CP2Y))
	p := m.TransformPoint(Pt(s.X, s.Y))
	return Bezier{CP1X: cp1.X, CP1Y: cp1.Y, CP2X: cp2.X, CP2Y: cp2.Y, X: p.X, Y: p.Y}
}

// The radius is carried over unchanged.
func (s ArcTo) transform(m Matrix) Segment {
	cp1 := m.TransformPoint(Pt(s.CP1X, s.CP1Y))
	cp2 := m.TransformPoint(Pt(s.CP2X, s.CP2Y))
	return ArcTo{CP1X: cp1.X, CP1Y: cp1.Y, CP2X: cp2.X, CP2Y: cp2.Y, Radius: s.Radius}
}

// Only the center moves; radii, rotation and angles are carried over.
// A general affine map does not preserve the arc exactly.
func (s Ellipse) transform(m Matrix) Segment {
	p := m.TransformPoint(Pt(s.X, s.Y))
	s.X, s.Y = p.X, p.Y
	return s
}

// Only the endpoint moves; radii, rotation and flags are carried over.
func (s SvgArc) transform(m Matrix) Segment {
	p := m.TransformPoint(Pt(s.X, s.Y))
	s.X, s.Y = p.X, p.Y
	return s
}

func (s ClosePath) transform(Matrix) Segment { return s }

// endpoint returns the literal point a coordinate-bearing segment leaves
// the pen at. ArcTo and ClosePath report false.
func endpoint(s Segment) (Point, bool) {
	switch s := s.(type) {
	case MoveTo:
		return Pt(s.X, s.Y), true
	case LineTo:
		return Pt(s.X, s.Y), true
	case Quadratic:
		return Pt(s.X, s.Y), true
	case Bezier:
		return Pt(s.X, s.Y), true
	case Ellipse:
		return Pt(s.X, s.Y), true
	case SvgArc:
		return Pt(s.X, s.Y), true
	}
	return Point{}, false
}

// finite reports whether every coordinate-bearing field of s is finite.
func finite(s Segment) bool {
	switch s := s.(type) {
	case Quadratic:
		return Pt(s.CPX, s.CPY).IsFinite() && Pt(s.X, s.Y).IsFinite()
	case Bezier:
		return Pt(s.CP1X, s.CP1Y).IsFinite() && Pt(s.CP2X, s.CP2Y).IsFinite() && Pt(s.X, s.Y).IsFinite()
	case ArcTo:
		return Pt(s.CP1X, s.CP1Y).IsFinite() && Pt(s.CP2X, s.CP2Y).IsFinite()
	case ClosePath:
		return true
	}
	p, ok := endpoint(s)
	return ok && p.IsFinite()
}
