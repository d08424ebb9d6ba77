package scene

import (
	"fmt"

	"github.com/gogpu/path2d"
)

// Named is a built path together with its scene name.
type Named struct {
	Name string
	Path *path2d.Path
}

// opArgs is the argument count of each numeric operation.
var opArgs = map[string]int{
	"moveTo":           2,
	"lineTo":           2,
	"quadraticCurveTo": 4,
	"bezierCurveTo":    6,
	"arcTo":            5,
	"rect":             4,
	"arc":              5,
	"ellipse":          7,
	"closePath":        0,
}

// Build evaluates the scene's paths in file order. A path may refer to
// paths defined before it, and addPath may name the path being built.
func (s *Scene) Build(opts ...path2d.Option) ([]Named, error) {
	built := make([]Named, 0, len(s.Paths))
	byName := make(map[string]*path2d.Path, len(s.Paths))

	for _, spec := range s.Paths {
		if _, dup := byName[spec.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, spec.Name)
		}

		var p *path2d.Path
		switch {
		case spec.From != "":
			src, ok := byName[spec.From]
			if !ok {
				return nil, fmt.Errorf("%w: path %q copies %q", ErrUnknownPath, spec.Name, spec.From)
			}
			p = path2d.FromPath(src, opts...)
		default:
			p = path2d.FromString(spec.D, opts...)
		}
		byName[spec.Name] = p

		for i, op := range spec.Ops {
			if err := apply(p, op, byName); err != nil {
				return nil, fmt.Errorf("scene: path %q op %d (%s): %w", spec.Name, i, op.Op, err)
			}
		}
		built = append(built, Named{Name: spec.Name, Path: p})
	}
	return built, nil
}

func apply(p *path2d.Path, op Op, byName map[string]*path2d.Path) error {
	if op.Op == "addPath" {
		src, ok := byName[op.Path]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPath, op.Path)
		}
		return p.AddPath(src, op.Matrix.Init())
	}

	n, ok := opArgs[op.Op]
	if !ok {
		return ErrUnknownOp
	}
	if len(op.Args) != n {
		return fmt.Errorf("%w: want %d, got %d", ErrArgCount, n, len(op.Args))
	}

	a := op.Args
	switch op.Op {
	case "moveTo":
		p.MoveTo(a[0], a[1])
	case "lineTo":
		p.LineTo(a[0], a[1])
	case "quadraticCurveTo":
		p.QuadraticCurveTo(a[0], a[1], a[2], a[3])
	case "bezierCurveTo":
		p.BezierCurveTo(a[0], a[1], a[2], a[3], a[4], a[5])
	case "arcTo":
		return p.ArcTo(a[0], a[1], a[2], a[3], a[4])
	case "rect":
		p.Rect(a[0], a[1], a[2], a[3])
	case "arc":
		return p.Arc(a[0], a[1], a[2], a[3], a[4], op.Anticlockwise)
	case "ellipse":
		return p.Ellipse(a[0], a[1], a[2], a[3], a[4], a[5], a[6], op.Anticlockwise)
	case "closePath":
		p.ClosePath()
	}
	return nil
}
