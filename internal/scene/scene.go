// Package scene reads TOML descriptions of named paths and builds them.
//
// A scene lists paths in order. Each path may start from SVG path data or
// a copy of an earlier path, and then applies a list of operations:
//
//	[[path]]
//	name = "corner"
//	d = "M10 10 L90 10"
//	ops = [
//	    { op = "arcTo", args = [90.0, 90.0, 10.0, 90.0, 20.0] },
//	    { op = "closePath" },
//	]
//
//	[[path]]
//	name = "twice"
//	from = "corner"
//	ops = [ { op = "addPath", path = "corner", matrix = { a = 2.0, d = 2.0, e = 100.0 } } ]
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/path2d"
)

var (
	// ErrUnknownOp is returned for an operation name that is not recognised.
	ErrUnknownOp = errors.New("scene: unknown operation")

	// ErrArgCount is returned when an operation has the wrong number of arguments.
	ErrArgCount = errors.New("scene: wrong number of arguments")

	// ErrUnknownPath is returned when a path refers to a name not defined before it.
	ErrUnknownPath = errors.New("scene: unknown path")

	// ErrDuplicateName is returned when two paths share a name.
	ErrDuplicateName = errors.New("scene: duplicate path name")
)

// Scene is a decoded scene file.
type Scene struct {
	Paths []PathSpec `toml:"path"`
}

// PathSpec describes one named path.
type PathSpec struct {
	Name string `toml:"name"`
	D    string `toml:"d,omitempty"`    // initial SVG path data
	From string `toml:"from,omitempty"` // copy an earlier path instead of parsing D
	Ops  []Op   `toml:"ops,omitempty"`
}

// Op is one path operation. Args holds the numeric arguments in the order
// the corresponding path2d method takes them.
type Op struct {
	Op            string      `toml:"op"`
	Args          []float64   `toml:"args,omitempty"`
	Anticlockwise bool        `toml:"anticlockwise,omitempty"`
	Path          string      `toml:"path,omitempty"`   // addPath source
	Matrix        *MatrixSpec `toml:"matrix,omitempty"` // addPath transform
}

// MatrixSpec mirrors path2d.MatrixInit with TOML keys.
type MatrixSpec struct {
	A   *float64 `toml:"a,omitempty"`
	B   *float64 `toml:"b,omitempty"`
	C   *float64 `toml:"c,omitempty"`
	D   *float64 `toml:"d,omitempty"`
	E   *float64 `toml:"e,omitempty"`
	F   *float64 `toml:"f,omitempty"`
	M11 *float64 `toml:"m11,omitempty"`
	M12 *float64 `toml:"m12,omitempty"`
	M21 *float64 `toml:"m21,omitempty"`
	M22 *float64 `toml:"m22,omitempty"`
	M41 *float64 `toml:"m41,omitempty"`
	M42 *float64 `toml:"m42,omitempty"`
}

// Init converts m to a path2d.MatrixInit. A nil m gives nil.
func (m *MatrixSpec) Init() *path2d.MatrixInit {
	if m == nil {
		return nil
	}
	return &path2d.MatrixInit{
		A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F,
		M11: m.M11, M12: m.M12, M21: m.M21, M22: m.M22, M41: m.M41, M42: m.M42,
	}
}

// Load decodes a scene. Unknown keys are rejected.
func Load(r io.Reader) (*Scene, error) {
	var s Scene
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	return &s, nil
}

// LoadFile decodes the scene stored in the named file.
func LoadFile(name string) (*Scene, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Encode writes s as TOML.
func (s *Scene) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}
