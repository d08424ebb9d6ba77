package path2d

import (
	"math"
	"testing"
)

func TestLastPoint(t *testing.T) {
	corner := ArcTo{CP1X: 10, CP1Y: 0, CP2X: 10, CP2Y: 10, Radius: 5}

	tests := []struct {
		name   string
		segs   []Segment
		want   Point
		wantOK bool
	}{
		{"empty", nil, Point{}, false},
		{"moveTo", []Segment{MoveTo{X: 100, Y: 100}}, Pt(100, 100), true},
		{"lone closePath", []Segment{ClosePath{}}, Point{}, false},
		{"closed moveTo", []Segment{MoveTo{X: 40, Y: 23}, ClosePath{}}, Pt(40, 23), true},
		{
			"close returns to first segment of subpath",
			[]Segment{LineTo{X: 89, Y: 33}, MoveTo{X: 40, Y: 23}, ClosePath{}},
			Pt(89, 33), true,
		},
		{
			"arcTo without predecessor falls back to cp1",
			[]Segment{ArcTo{CP1X: 33, CP1Y: 44, CP2X: 88, CP2Y: 100, Radius: 30}},
			Pt(33, 44), true,
		},
		{"lineTo", []Segment{MoveTo{X: 1, Y: 1}, LineTo{X: 7, Y: 8}}, Pt(7, 8), true},
		{"quadratic endpoint", []Segment{Quadratic{CPX: 1, CPY: 2, X: 3, Y: 4}}, Pt(3, 4), true},
		{"bezier endpoint", []Segment{Bezier{CP1X: 1, CP1Y: 2, CP2X: 3, CP2Y: 4, X: 5, Y: 6}}, Pt(5, 6), true},
		{"ellipse center", []Segment{Ellipse{X: 9, Y: 8, RadiusX: 1, RadiusY: 1}}, Pt(9, 8), true},
		{"svgArc endpoint", []Segment{SvgArc{X: 4, Y: 2, RadiusX: 1, RadiusY: 1}}, Pt(4, 2), true},
		{"arcTo corner", []Segment{MoveTo{X: 0, Y: 0}, corner}, Pt(10, 5), true},
		{
			"arcTo after closed subpath",
			[]Segment{MoveTo{X: 0, Y: 0}, LineTo{X: 5, Y: 5}, ClosePath{}, corner},
			Pt(10, 5), true,
		},
		{
			"close of subpath starting with arcTo without predecessor",
			[]Segment{corner, ClosePath{}},
			Pt(10, 0), true,
		},
		{
			"close of subpath starting with arcTo chains into previous subpath",
			[]Segment{MoveTo{X: 0, Y: 0}, ClosePath{}, corner, LineTo{X: 3, Y: 3}, ClosePath{}},
			Pt(10, 5), true,
		},
		{"double close", []Segment{MoveTo{X: 1, Y: 2}, ClosePath{}, ClosePath{}}, Point{}, false},
		{
			"arcTo degenerate radius",
			[]Segment{MoveTo{X: 0, Y: 0}, ArcTo{CP1X: 10, CP1Y: 0, CP2X: 10, CP2Y: 10}},
			Pt(10, 0), true,
		},
		{
			"two corners",
			[]Segment{
				MoveTo{X: 0, Y: 0},
				corner,
				ArcTo{CP1X: 10, CP1Y: 20, CP2X: 0, CP2Y: 20, Radius: 5},
			},
			Pt(5, 20), true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lastPoint(tt.segs)
			if ok != tt.wantOK {
				t.Fatalf("lastPoint() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !nearPoint(got, tt.want, 1e-4) {
				t.Errorf("lastPoint() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTangentPoint(t *testing.T) {
	tests := []struct {
		name          string
		cp0, cp1, cp2 Point
		r             float32
		want          Point
	}{
		{"right angle", Pt(0, 0), Pt(10, 0), Pt(10, 10), 5, Pt(10, 5)},
		{"cp0 equals cp1", Pt(10, 0), Pt(10, 0), Pt(10, 10), 5, Pt(10, 0)},
		{"cp1 equals cp2", Pt(0, 0), Pt(10, 0), Pt(10, 0), 5, Pt(10, 0)},
		{"zero radius", Pt(0, 0), Pt(10, 0), Pt(10, 10), 0, Pt(10, 0)},
		{"collinear", Pt(0, 0), Pt(10, 0), Pt(20, 0), 5, Pt(10, 0)},
		{"collinear reversed", Pt(0, 0), Pt(10, 0), Pt(5, 0), 5, Pt(10, 0)},
		// 60 degree corner: tangent length r/tan(30deg) = r*sqrt(3).
		{
			"sixty degrees",
			Pt(0, 0), Pt(10, 0), Pt(10-5, float32(5*math.Sqrt(3))), 1,
			Pt(float32(10-math.Sqrt(3)*0.5), float32(math.Sqrt(3)*math.Sqrt(3)/2)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tangentPoint(tt.cp0, tt.cp1, tt.cp2, tt.r)
			if !nearPoint(got, tt.want, 1e-4) {
				t.Errorf("tangentPoint(%v, %v, %v, %v) = %v, want %v", tt.cp0, tt.cp1, tt.cp2, tt.r, got, tt.want)
			}
		})
	}
}

func TestTangentPoint_NearDegenerateStaysFinite(t *testing.T) {
	tests := []struct {
		name          string
		cp0, cp1, cp2 Point
		r             float32
	}{
		{"tiny angle", Pt(0, 0), Pt(100, 0), Pt(0, 0.01), 10},
		{"tiny angle large radius", Pt(0, 0), Pt(100, 0), Pt(0, 0.01), 3e38},
		{"nearly reversed", Pt(0, 0), Pt(100, 0), Pt(200, 0.01), 10},
		{"nearly reversed large radius", Pt(0, 0), Pt(100, 0), Pt(200, 0.01), 3e38},
		{"far control points", Pt(-3e38, 0), Pt(0, 0), Pt(3e38, 1), 1},
		{"subnormal offset", Pt(0, 0), Pt(1, 0), Pt(0, 1e-38), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tangentPoint(tt.cp0, tt.cp1, tt.cp2, tt.r)
			if !got.IsFinite() {
				t.Errorf("tangentPoint(%v, %v, %v, %v) = %v, want a finite point", tt.cp0, tt.cp1, tt.cp2, tt.r, got)
			}
		})
	}
}

func TestLastPoint_LongChains(t *testing.T) {
	const n = 200_000

	segs := make([]Segment, 0, 2*n+1)
	segs = append(segs, MoveTo{X: 0, Y: 0})
	for range n {
		segs = append(segs, ClosePath{}, ArcTo{CP1X: 10, CP1Y: 0, CP2X: 10, CP2Y: 10, Radius: 5})
	}
	segs = append(segs, ClosePath{})

	got, ok := lastPoint(segs)
	if !ok {
		t.Fatal("lastPoint() found no point")
	}
	// The final subpath starts with an arcTo whose predecessor resolves
	// through every earlier subpath.
	if !nearPoint(got, Pt(10, 0), 1e-4) && !nearPoint(got, Pt(10, 5), 1e-4) {
		t.Errorf("lastPoint() = %v", got)
	}
}

func TestPath_LastPoint(t *testing.T) {
	p := New()
	if _, ok := p.LastPoint(); ok {
		t.Error("empty path has a last point")
	}
	p.MoveTo(0, 0)
	if err := p.ArcTo(10, 0, 10, 10, 5); err != nil {
		t.Fatal(err)
	}
	got, ok := p.LastPoint()
	if !ok || !nearPoint(got, Pt(10, 5), 1e-5) {
		t.Errorf("LastPoint() = %v, %v, want (10, 5), true", got, ok)
	}
}

func nearPoint(a, b Point, eps float32) bool {
	return abs32(a.X-b.X) <= eps && abs32(a.Y-b.Y) <= eps
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func BenchmarkLastPoint_ArcChain(b *testing.B) {
	segs := []Segment{MoveTo{X: 0, Y: 0}}
	for i := range 10_000 {
		segs = append(segs, ArcTo{CP1X: float32(i), CP1Y: float32(i % 7), CP2X: float32(i + 1), CP2Y: 3, Radius: 1})
	}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = lastPoint(segs)
	}
}
