package folio

import (
	"bytes"
	"math/rand/v2"
	"testing"
)

type opKind uint8

const (
	opClear opKind = iota
	opCircle
	opLine
	opRect
	opText
)

type drawOp struct {
	kind           opKind
	x0, y0, x1, y1 float64
	r              float64
	rect           Rect
	color          Color
	text           string
}

// recordingSurface records draw calls instead of rasterizing them.
type recordingSurface struct {
	w, h float64
	ops  []drawOp
}

func newRecordingSurface(w, h float64) *recordingSurface {
	return &recordingSurface{w: w, h: h}
}

func (s *recordingSurface) Size() (float64, float64) { return s.w, s.h }

func (s *recordingSurface) Clear() {
	s.ops = append(s.ops, drawOp{kind: opClear})
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, c Color) {
	s.ops = append(s.ops, drawOp{kind: opCircle, x0: cx, y0: cy, r: r, color: c})
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	s.ops = append(s.ops, drawOp{kind: opLine, x0: x0, y0: y0, x1: x1, y1: y1, r: width, color: c})
}

func (s *recordingSurface) FillRect(r Rect, c Color) {
	s.ops = append(s.ops, drawOp{kind: opRect, rect: r, color: c})
}

func (s *recordingSurface) DrawText(str string, x, y float64, c Color) {
	s.ops = append(s.ops, drawOp{kind: opText, x0: x, y0: y, color: c, text: str})
}

func (s *recordingSurface) count(kind opKind) int {
	n := 0
	for _, op := range s.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func (s *recordingSurface) reset() {
	s.ops = s.ops[:0]
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// captureLog redirects diagnostics into a buffer for the duration of t.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogOutput(&buf)
	reported := reportedPanics
	reportedPanics = map[string]bool{}
	t.Cleanup(func() {
		SetLogOutput(nil)
		reportedPanics = reported
	})
	return &buf
}

func approx(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
