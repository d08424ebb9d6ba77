package path2d

import "fmt"

// AddPath appends the segments of other, transformed by the matrix that
// transform describes, and then starts a new subpath at the merged
// segments' last point. A nil transform means the identity.
//
// An empty other is a no-op. A MatrixInit with conflicting members
// returns an error wrapping ErrType. A matrix with a non-finite
// coefficient is silently ignored. other may be p itself.
func (p *Path) AddPath(other *Path, transform *MatrixInit) error {
	if other.IsEmpty() {
		return nil
	}
	m := Identity()
	if transform != nil {
		var err error
		if m, err = transform.Matrix(); err != nil {
			return fmt.Errorf("addPath: %w", err)
		}
	}
	return p.addPath(other, m)
}

// AddPathMatrix is AddPath with an already constructed matrix.
func (p *Path) AddPathMatrix(other *Path, m Matrix) error {
	if other.IsEmpty() {
		return nil
	}
	return p.addPath(other, m)
}

func (p *Path) addPath(other *Path, m Matrix) error {
	if !m.IsFinite() {
		p.log().Debug("path2d: addPath skipped non-finite matrix", "matrix", m)
		return nil
	}

	// Snapshot before touching p: other and p may be the same path.
	c := other.Segments()
	if !m.IsIdentity() {
		for i, s := range c {
			t := s.transform(m)
			if !finite(t) {
				return fmt.Errorf("%w: addPath: segment %d (%v) leaves float32 range", ErrInvalidState, i, s)
			}
			c[i] = t
		}
	}

	last, ok := lastPoint(c)
	p.segments = append(p.segments, c...)
	if ok && last.IsFinite() {
		p.Push(MoveTo{X: last.X, Y: last.Y})
	}
	return nil
}
