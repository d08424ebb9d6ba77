package path2d

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexSize is returned when a radius argument is negative.
	// The path is left unchanged.
	ErrIndexSize = errors.New("path2d: index size error")

	// ErrInvalidState is returned by AddPath when merging would store a
	// coordinate that is not finite. Nothing is merged.
	ErrInvalidState = errors.New("path2d: invalid state")

	// ErrType is returned for a MatrixInit whose aliased members disagree.
	ErrType = errors.New("path2d: type error")

	// ErrSyntax is the error yielded by ParseSegments at the first
	// malformed token.
	ErrSyntax = errors.New("path2d: bad path data")
)

// SyntaxError reports where a path string stopped being parseable.
type SyntaxError struct {
	Offset int // byte offset of the offending token
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %s at offset %d", ErrSyntax, e.Msg, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

func negativeRadius(op string, r float64) error {
	return fmt.Errorf("%w: %s: radius %g is negative", ErrIndexSize, op, r)
}
