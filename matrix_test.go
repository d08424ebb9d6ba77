package path2d

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/math/f32"
	"seehuhn.de/go/geom/matrix"
)

func TestMatrix_TransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(3, 4), Pt(13, -1)},
		{"scale", Scale(2, 3), Pt(3, 4), Pt(6, 12)},
		{"rotate 90deg", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"scale then translate", Translate(1, 1).Multiply(Scale(2, 2)), Pt(3, 4), Pt(7, 9)},
		{"translate then scale", Scale(2, 2).Multiply(Translate(1, 1)), Pt(3, 4), Pt(8, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !nearPoint(got, tt.want, 1e-6) {
				t.Errorf("Matrix%+v.TransformPoint(%v) = %v, want %v", tt.m, tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrix_TransformPointOverflow(t *testing.T) {
	got := Scale(1e30, 1).TransformPoint(Pt(1e30, 1))
	if got.IsFinite() {
		t.Errorf("TransformPoint() = %v, want infinite X", got)
	}
}

func TestMatrix_IsFinite(t *testing.T) {
	if !Identity().IsFinite() {
		t.Error("Identity().IsFinite() = false")
	}
	if (Matrix{A: 1, E: 1, F: math.Inf(1)}).IsFinite() {
		t.Error("IsFinite() = true for infinite F")
	}
	if (Matrix{A: math.NaN()}).IsFinite() {
		t.Error("IsFinite() = true for NaN A")
	}
}

func TestMatrixInit_Defaults(t *testing.T) {
	m, err := MatrixInit{}.Matrix()
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsIdentity() {
		t.Errorf("MatrixInit{}.Matrix() = %+v, want identity", m)
	}
}

func TestMatrixInit_Aliases(t *testing.T) {
	short := MatrixInit{A: Coef(1), B: Coef(2), C: Coef(3), D: Coef(4), E: Coef(5), F: Coef(6)}
	long := MatrixInit{M11: Coef(1), M12: Coef(2), M21: Coef(3), M22: Coef(4), M41: Coef(5), M42: Coef(6)}
	both := MatrixInit{
		A: Coef(1), B: Coef(2), C: Coef(3), D: Coef(4), E: Coef(5), F: Coef(6),
		M11: Coef(1), M12: Coef(2), M21: Coef(3), M22: Coef(4), M41: Coef(5), M42: Coef(6),
	}
	want := Matrix{A: 1, B: 3, C: 5, D: 2, E: 4, F: 6}

	for name, in := range map[string]MatrixInit{"short": short, "long": long, "both": both} {
		t.Run(name, func(t *testing.T) {
			got, err := in.Matrix()
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Errorf("Matrix() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestMatrixInit_Conflicts(t *testing.T) {
	tests := []struct {
		name string
		in   MatrixInit
		ok   bool
	}{
		{"a/m11", MatrixInit{A: Coef(1), M11: Coef(2)}, false},
		{"b/m12", MatrixInit{B: Coef(1), M12: Coef(2)}, false},
		{"c/m21", MatrixInit{C: Coef(1), M21: Coef(2)}, false},
		{"d/m22", MatrixInit{D: Coef(1), M22: Coef(2)}, false},
		{"e/m41", MatrixInit{E: Coef(1), M41: Coef(2)}, false},
		{"f/m42", MatrixInit{F: Coef(1), M42: Coef(2)}, false},
		{"NaN/NaN", MatrixInit{A: Coef(math.NaN()), M11: Coef(math.NaN())}, true},
		{"+0/-0", MatrixInit{E: Coef(0), M41: Coef(math.Copysign(0, -1))}, true},
		{"NaN/1", MatrixInit{A: Coef(math.NaN()), M11: Coef(1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.in.Matrix()
			if tt.ok && err != nil {
				t.Errorf("Matrix() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrType) {
				t.Errorf("Matrix() = %v, want ErrType", err)
			}
		})
	}
}

func TestInitFromMatrix_RoundTrip(t *testing.T) {
	m := Translate(3, 4).Multiply(Rotate(0.3)).Multiply(Scale(2, 5))
	got, err := InitFromMatrix(m).Matrix()
	if err != nil {
		t.Fatal(err)
	}
	if got != m {
		t.Errorf("InitFromMatrix(m).Matrix() = %+v, want %+v", got, m)
	}
}

func TestMatrixFromGeom(t *testing.T) {
	// PDF order: x' = a*x + c*y + e, y' = b*x + d*y + f.
	m := MatrixFromGeom(matrix.Matrix{1, 0, 0.5, 1, 10, 20})
	want := Matrix{A: 1, B: 0.5, C: 10, D: 0, E: 1, F: 20}
	if m != want {
		t.Errorf("MatrixFromGeom() = %+v, want %+v", m, want)
	}
	if got := MatrixFromGeom(matrix.Identity); !got.IsIdentity() {
		t.Errorf("MatrixFromGeom(Identity) = %+v", got)
	}
}

func TestMatrixFromAff3(t *testing.T) {
	m := MatrixFromAff3(f32.Aff3{1, 2, 3, 4, 5, 6})
	want := Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	if m != want {
		t.Errorf("MatrixFromAff3() = %+v, want %+v", m, want)
	}
}
