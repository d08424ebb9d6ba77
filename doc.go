// Package path2d provides a vector path model for 2D drawing.
//
// # Overview
//
// A [Path] is an ordered, append-only sequence of [Segment] values: the
// instructions a canvas-style renderer replays to draw an outline. Paths are
// built with the canvas operations (MoveTo, LineTo, QuadraticCurveTo,
// BezierCurveTo, ArcTo, Rect, Arc, Ellipse, ClosePath), parsed from SVG path
// data with [FromString], copied with [FromPath], and combined with
// [Path.AddPath], which merges another path under an affine [Matrix].
//
// # Quick Start
//
//	p := path2d.New()
//	p.MoveTo(10, 10)
//	p.LineTo(90, 10)
//	if err := p.ArcTo(90, 90, 10, 90, 20); err != nil {
//	    return err // negative radius
//	}
//	p.ClosePath()
//
//	q := path2d.FromString("M0 0 h10 v10 z")
//	_ = p.AddPathMatrix(q, path2d.Translate(100, 0))
//
// # Validation
//
// Every operation that takes numbers ignores the call when any of them is
// NaN, infinite, or outside the float32 range. Segment coordinates are
// stored as float32. Negative radii are errors wrapping [ErrIndexSize] and
// leave the path unchanged.
//
// # Last Point
//
// [Path.LastPoint] reports where the next drawing operation continues. An
// ArcTo corner ends at the point where its rounding circle meets the edge
// towards its second control point; a ClosePath returns to the first
// segment of its subpath. AddPath starts a new subpath there after merging.
//
// # Rendering
//
// path2d does not rasterize. [Path.Geom] and [Path.Outline] lower a path to
// the move/line/quad/cube/close commands of seehuhn.de/go/geom/path for a
// renderer to consume. [Path.Flatten], [Path.Bounds] and [Path.Length]
// measure that outline.
package path2d
