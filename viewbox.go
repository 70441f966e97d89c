package svgpath

import (
	"fmt"
	"iter"

	"github.com/chewxy/math32"
)

// ViewBox is a rectangle defining the source coordinate frame of a path.
type ViewBox struct {
	MinX, MinY    float32
	Width, Height float32
}

// NewViewBox returns the ViewBox {minX, minY, width, height}.
func NewViewBox(minX, minY, width, height float32) ViewBox {
	return ViewBox{MinX: minX, MinY: minY, Width: width, Height: height}
}

// ParseViewBox parses a viewBox attribute value: four numbers separated by
// whitespace or commas.
func ParseViewBox(s string) (ViewBox, error) {
	toks, err := Tokenize(s)
	if err != nil {
		return ViewBox{}, fmt.Errorf("viewBox %q: %w", s, err)
	}
	if len(toks) != 4 {
		return ViewBox{}, fmt.Errorf("viewBox %q: want 4 numbers, got %d tokens", s, len(toks))
	}
	var v [4]float32
	for i, tok := range toks {
		if tok.Kind != NumberToken {
			return ViewBox{}, fmt.Errorf("viewBox %q: %w", s, &ParseError{Expected: ExpectedNumber, Offset: tok.Offset})
		}
		v[i] = tok.Number
	}
	return NewViewBox(v[0], v[1], v[2], v[3]), nil
}

func (vb ViewBox) scalePoint(p Tuple, w, h float32) Tuple {
	return Tuple{
		(p[0] - vb.MinX) * w / vb.Width,
		(p[1] - vb.MinY) * h / vb.Height,
	}
}

// ScaleCommand maps every coordinate of di from the view box into a frame
// of size w by h.
func (vb ViewBox) ScaleCommand(di DrawingInstruction, w, h float32) DrawingInstruction {
	return di.MapPoints(func(p Tuple) Tuple { return vb.scalePoint(p, w, h) })
}

// ScalePath returns a scaled copy of instructions, using their own
// estimated span as the target frame size.
func (vb ViewBox) ScalePath(instructions []DrawingInstruction) []DrawingInstruction {
	w, h := EstimateDimensions(instructions)
	out := make([]DrawingInstruction, len(instructions))
	for i, di := range instructions {
		out[i] = vb.ScaleCommand(di, w, h)
	}
	return out
}

// ScalePathInPlace is ScalePath overwriting instructions.
func (vb ViewBox) ScalePathInPlace(instructions []DrawingInstruction) {
	w, h := EstimateDimensions(instructions)
	for i, di := range instructions {
		instructions[i] = vb.ScaleCommand(di, w, h)
	}
}

// Scaled yields the instructions of ScalePath lazily. The span is
// estimated once, before the first instruction is yielded.
func (vb ViewBox) Scaled(instructions []DrawingInstruction) iter.Seq[DrawingInstruction] {
	return func(yield func(DrawingInstruction) bool) {
		w, h := EstimateDimensions(instructions)
		for _, di := range instructions {
			if !yield(vb.ScaleCommand(di, w, h)) {
				return
			}
		}
	}
}

// EstimateDimensions returns the width and height spanned by every
// coordinate of instructions, control points included. The span always
// contains the origin.
func EstimateDimensions(instructions []DrawingInstruction) (float32, float32) {
	var minX, minY, maxX, maxY float32
	for _, di := range instructions {
		for _, p := range di.Points() {
			minX = math32.Min(minX, p[0])
			minY = math32.Min(minY, p[1])
			maxX = math32.Max(maxX, p[0])
			maxY = math32.Max(maxY, p[1])
		}
	}
	return maxX - minX, maxY - minY
}
