package path2d

import (
	"iter"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// cmdArgs is the number of numbers each path-data command takes.
var cmdArgs = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

// FromString creates a path from SVG path data. Segments are collected
// until the first malformed token; everything before it is kept and the
// rest of the string is ignored.
func FromString(d string, opts ...Option) *Path {
	p := New(opts...)
	for seg, err := range ParseSegments(d) {
		if err != nil {
			p.log().Debug("path2d: path string truncated", "segments", p.Len(), "err", err)
			break
		}
		p.Push(seg)
	}
	return p
}

// ParseSegments returns the segments described by the SVG path data d.
// Relative commands are made absolute, H and V become LineTo, S and T get
// their reflected control point, and A becomes SvgArc.
//
// The sequence ends after the last segment, or after yielding a single
// *SyntaxError (with a nil segment) at the first malformed token.
func ParseSegments(d string) iter.Seq2[Segment, error] {
	return func(yield func(Segment, error) bool) {
		sc := pathScanner{buf: []byte(d)}
		sc.run(yield)
	}
}

// pathScanner holds the parser position and pen state. Coordinates are
// tracked in float64 and narrowed when a segment is emitted.
type pathScanner struct {
	buf []byte
	i   int

	curX, curY     float64 // current point
	startX, startY float64 // start of the current subpath
	ctlX, ctlY     float64 // last control point, for S and T
	prev           byte
}

func (sc *pathScanner) fail(msg string) *SyntaxError {
	return &SyntaxError{Offset: sc.i, Msg: msg}
}

func (sc *pathScanner) run(yield func(Segment, error) bool) {
	var f [7]float64
	for {
		sc.skipSeparators()
		if sc.i >= len(sc.buf) {
			return
		}

		cmd := sc.prev
		if sc.prev == 0 || sc.prev == 'z' || sc.prev == 'Z' || !isNumberStart(sc.buf[sc.i]) {
			cmd = sc.buf[sc.i]
			if _, ok := cmdArgs[upper(cmd)]; !ok {
				yield(nil, sc.fail("unknown command '"+string(rune(cmd))+"'"))
				return
			}
			if sc.prev == 0 && upper(cmd) != 'M' {
				yield(nil, sc.fail("path data must start with a moveto"))
				return
			}
			sc.i++
		}

		n := cmdArgs[upper(cmd)]
		for j := range n {
			sc.skipSeparators()
			if upper(cmd) == 'A' && (j == 3 || j == 4) {
				v, ok := sc.flag()
				if !ok {
					yield(nil, sc.fail("arc flags must be 0 or 1 in command '"+string(rune(cmd))+"'"))
					return
				}
				f[j] = v
				continue
			}
			v, ok := sc.number()
			if !ok {
				yield(nil, sc.fail("expected number in command '"+string(rune(cmd))+"'"))
				return
			}
			f[j] = v
		}

		if !allFinite(f[:n]...) {
			yield(nil, sc.fail("number out of range in command '"+string(rune(cmd))+"'"))
			return
		}
		seg := sc.segment(cmd, f)
		if !finite(seg) {
			yield(nil, sc.fail("coordinate out of range in command '"+string(rune(cmd))+"'"))
			return
		}
		if !yield(seg, nil) {
			return
		}

		// A repeated moveto is an implicit lineto.
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
		sc.prev = cmd
	}
}

// segment builds the segment for cmd and advances the pen.
func (sc *pathScanner) segment(cmd byte, f [7]float64) Segment {
	rel := 'a' <= cmd && cmd <= 'z'
	abs := func(x, y float64) (float64, float64) {
		if rel {
			return sc.curX + x, sc.curY + y
		}
		return x, y
	}
	prevUpper := upper(sc.prev)

	var seg Segment
	ctlX, ctlY := math.NaN(), math.NaN()
	switch upper(cmd) {
	case 'M':
		x, y := abs(f[0], f[1])
		sc.startX, sc.startY = x, y
		sc.curX, sc.curY = x, y
		seg = MoveTo{X: float32(x), Y: float32(y)}
	case 'Z':
		sc.curX, sc.curY = sc.startX, sc.startY
		seg = ClosePath{}
	case 'L':
		sc.curX, sc.curY = abs(f[0], f[1])
		seg = LineTo{X: float32(sc.curX), Y: float32(sc.curY)}
	case 'H':
		if rel {
			sc.curX += f[0]
		} else {
			sc.curX = f[0]
		}
		seg = LineTo{X: float32(sc.curX), Y: float32(sc.curY)}
	case 'V':
		if rel {
			sc.curY += f[0]
		} else {
			sc.curY = f[0]
		}
		seg = LineTo{X: float32(sc.curX), Y: float32(sc.curY)}
	case 'C':
		c1x, c1y := abs(f[0], f[1])
		c2x, c2y := abs(f[2], f[3])
		x, y := abs(f[4], f[5])
		seg = bezier(c1x, c1y, c2x, c2y, x, y)
		ctlX, ctlY = c2x, c2y
		sc.curX, sc.curY = x, y
	case 'S':
		c1x, c1y := sc.curX, sc.curY
		if prevUpper == 'C' || prevUpper == 'S' {
			c1x, c1y = 2*sc.curX-sc.ctlX, 2*sc.curY-sc.ctlY
		}
		c2x, c2y := abs(f[0], f[1])
		x, y := abs(f[2], f[3])
		seg = bezier(c1x, c1y, c2x, c2y, x, y)
		ctlX, ctlY = c2x, c2y
		sc.curX, sc.curY = x, y
	case 'Q':
		cx, cy := abs(f[0], f[1])
		x, y := abs(f[2], f[3])
		seg = Quadratic{CPX: float32(cx), CPY: float32(cy), X: float32(x), Y: float32(y)}
		ctlX, ctlY = cx, cy
		sc.curX, sc.curY = x, y
	case 'T':
		cx, cy := sc.curX, sc.curY
		if prevUpper == 'Q' || prevUpper == 'T' {
			cx, cy = 2*sc.curX-sc.ctlX, 2*sc.curY-sc.ctlY
		}
		x, y := abs(f[0], f[1])
		seg = Quadratic{CPX: float32(cx), CPY: float32(cy), X: float32(x), Y: float32(y)}
		ctlX, ctlY = cx, cy
		sc.curX, sc.curY = x, y
	case 'A':
		x, y := abs(f[5], f[6])
		seg = SvgArc{
			X:        float32(x),
			Y:        float32(y),
			RadiusX:  float32(f[0]),
			RadiusY:  float32(f[1]),
			Rotation: float32(f[2]),
			LargeArc: f[3] == 1,
			Sweep:    f[4] == 1,
		}
		sc.curX, sc.curY = x, y
	}
	sc.ctlX, sc.ctlY = ctlX, ctlY
	return seg
}

func bezier(c1x, c1y, c2x, c2y, x, y float64) Bezier {
	return Bezier{
		CP1X: float32(c1x), CP1Y: float32(c1y),
		CP2X: float32(c2x), CP2Y: float32(c2y),
		X: float32(x), Y: float32(y),
	}
}

func (sc *pathScanner) skipSeparators() {
	for sc.i < len(sc.buf) {
		switch sc.buf[sc.i] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			sc.i++
		default:
			return
		}
	}
}

func (sc *pathScanner) number() (float64, bool) {
	if sc.i >= len(sc.buf) {
		return 0, false
	}
	v, n := strconv.ParseFloat(sc.buf[sc.i:])
	if n == 0 {
		return 0, false
	}
	sc.i += n
	return v, true
}

// flag reads a single-character arc flag; "0020" holds two flags and a
// number.
func (sc *pathScanner) flag() (float64, bool) {
	if sc.i >= len(sc.buf) {
		return 0, false
	}
	switch sc.buf[sc.i] {
	case '0':
		sc.i++
		return 0, true
	case '1':
		sc.i++
		return 1, true
	}
	return 0, false
}

func isNumberStart(c byte) bool {
	return '0' <= c && c <= '9' || c == '.' || c == '-' || c == '+'
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
