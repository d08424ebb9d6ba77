package path2d

// Builder provides a fluent interface for path construction.
// All methods return the builder for chaining. The first error from a
// radius-checked operation is kept, and later calls are ignored.
type Builder struct {
	path *Path
	err  error
}

// Build starts a new path builder.
func Build(opts ...Option) *Builder {
	return &Builder{path: New(opts...)}
}

// BuildFrom starts a builder on a copy of p.
func BuildFrom(p *Path, opts ...Option) *Builder {
	return &Builder{path: FromPath(p, opts...)}
}

// MoveTo starts a new subpath.
func (b *Builder) MoveTo(x, y float64) *Builder {
	if b.err == nil {
		b.path.MoveTo(x, y)
	}
	return b
}

// LineTo draws a line to a position.
func (b *Builder) LineTo(x, y float64) *Builder {
	if b.err == nil {
		b.path.LineTo(x, y)
	}
	return b
}

// QuadTo draws a quadratic Bezier curve.
func (b *Builder) QuadTo(cx, cy, x, y float64) *Builder {
	if b.err == nil {
		b.path.QuadraticCurveTo(cx, cy, x, y)
	}
	return b
}

// CubicTo draws a cubic Bezier curve.
func (b *Builder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Builder {
	if b.err == nil {
		b.path.BezierCurveTo(c1x, c1y, c2x, c2y, x, y)
	}
	return b
}

// ArcTo rounds a corner.
func (b *Builder) ArcTo(x1, y1, x2, y2, r float64) *Builder {
	if b.err == nil {
		b.err = b.path.ArcTo(x1, y1, x2, y2, r)
	}
	return b
}

// Rect adds a rectangle.
func (b *Builder) Rect(x, y, w, h float64) *Builder {
	if b.err == nil {
		b.path.Rect(x, y, w, h)
	}
	return b
}

// RoundRect adds a rectangle whose corners are rounded with arcTo.
// The radius is clamped to half of the smaller side.
func (b *Builder) RoundRect(x, y, w, h, r float64) *Builder {
	if b.err != nil {
		return b
	}
	r = min(r, min(w, h)/2)
	return b.MoveTo(x+r, y).
		ArcTo(x+w, y, x+w, y+h, r).
		ArcTo(x+w, y+h, x, y+h, r).
		ArcTo(x, y+h, x, y, r).
		ArcTo(x, y, x+w, y, r).
		Close()
}

// Arc adds a circular arc.
func (b *Builder) Arc(x, y, r, start, end float64, anticlockwise bool) *Builder {
	if b.err == nil {
		b.err = b.path.Arc(x, y, r, start, end, anticlockwise)
	}
	return b
}

// Ellipse adds an elliptical arc.
func (b *Builder) Ellipse(x, y, rx, ry, rotation, start, end float64, anticlockwise bool) *Builder {
	if b.err == nil {
		b.err = b.path.Ellipse(x, y, rx, ry, rotation, start, end, anticlockwise)
	}
	return b
}

// Close closes the current subpath.
func (b *Builder) Close() *Builder {
	if b.err == nil {
		b.path.ClosePath()
	}
	return b
}

// Add merges another path under a transform.
func (b *Builder) Add(other *Path, m Matrix) *Builder {
	if b.err == nil {
		b.err = b.path.AddPathMatrix(other, m)
	}
	return b
}

// Err returns the first error recorded by the builder.
func (b *Builder) Err() error {
	return b.err
}

// Path returns the constructed path and the first error, if any.
// On error the path holds everything appended before the failing call.
func (b *Builder) Path() (*Path, error) {
	return b.path, b.err
}
