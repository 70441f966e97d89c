package svgpath

import (
	"strconv"
	"strings"
)

// Tuple is an X,Y coordinate
type Tuple [2]float32

// Add returns the component-wise sum of t and o.
func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{t[0] + o[0], t[1] + o[1]}
}

// Reflect returns the reflection of t through the pivot p.
func (t Tuple) Reflect(p Tuple) Tuple {
	return Tuple{p[0] + (p[0] - t[0]), p[1] + (p[1] - t[1])}
}

// InstructionType tells our path drawing library which function it has
// to call
type InstructionType int

// These are instruction types that we use with our path drawing library
const (
	MoveInstruction InstructionType = iota
	LineInstruction
	CurveInstruction
	CloseInstruction
	SmoothCurveInstruction
	QuadraticInstruction
	SmoothQuadraticInstruction
)

var instructionNames = [...]string{
	MoveInstruction:            "MoveTo",
	LineInstruction:            "LineTo",
	CurveInstruction:           "CurveTo",
	CloseInstruction:           "ClosePath",
	SmoothCurveInstruction:     "SmoothCurveTo",
	QuadraticInstruction:       "QuadraticCurveTo",
	SmoothQuadraticInstruction: "SmoothQuadraticCurveTo",
}

func (k InstructionType) String() string {
	if k < 0 || int(k) >= len(instructionNames) {
		return "InstructionType(" + strconv.Itoa(int(k)) + ")"
	}
	return instructionNames[k]
}

// DrawingInstruction contains enough information that a simple drawing
// library can draw the path it was parsed from. All coordinates are
// absolute.
//
// C1 is the first control point of CurveTo and QuadraticCurveTo, and the
// reflected incoming control point of SmoothCurveTo and
// SmoothQuadraticCurveTo. C2 is the second control point of the two cubic
// kinds. T is the end point of every kind except ClosePath.
type DrawingInstruction struct {
	Kind InstructionType
	C1   Tuple
	C2   Tuple
	T    Tuple
}

// Points returns the coordinates carried by the instruction, in order.
func (di DrawingInstruction) Points() []Tuple {
	switch di.Kind {
	case MoveInstruction, LineInstruction:
		return []Tuple{di.T}
	case CurveInstruction, SmoothCurveInstruction:
		return []Tuple{di.C1, di.C2, di.T}
	case QuadraticInstruction, SmoothQuadraticInstruction:
		return []Tuple{di.C1, di.T}
	}
	return nil
}

// MapPoints returns a copy of di with f applied to every coordinate the
// instruction carries. ClosePath is returned unchanged.
func (di DrawingInstruction) MapPoints(f func(Tuple) Tuple) DrawingInstruction {
	switch di.Kind {
	case MoveInstruction, LineInstruction:
		di.T = f(di.T)
	case CurveInstruction, SmoothCurveInstruction:
		di.C1 = f(di.C1)
		di.C2 = f(di.C2)
		di.T = f(di.T)
	case QuadraticInstruction, SmoothQuadraticInstruction:
		di.C1 = f(di.C1)
		di.T = f(di.T)
	}
	return di
}

// Translate returns di moved by (dx, dy).
func (di DrawingInstruction) Translate(dx, dy float32) DrawingInstruction {
	d := Tuple{dx, dy}
	return di.MapPoints(func(p Tuple) Tuple { return p.Add(d) })
}

// String renders di as a single absolute path-data segment. Smooth kinds
// carry their control point explicitly and are written as C and Q.
func (di DrawingInstruction) String() string {
	var sb strings.Builder
	di.appendTo(&sb)
	return sb.String()
}

func (di DrawingInstruction) appendTo(sb *strings.Builder) {
	switch di.Kind {
	case MoveInstruction:
		sb.WriteByte('M')
	case LineInstruction:
		sb.WriteByte('L')
	case CurveInstruction, SmoothCurveInstruction:
		sb.WriteByte('C')
	case QuadraticInstruction, SmoothQuadraticInstruction:
		sb.WriteByte('Q')
	case CloseInstruction:
		sb.WriteByte('Z')
		return
	}
	for _, p := range di.Points() {
		sb.WriteByte(' ')
		sb.WriteString(formatNumber(p[0]))
		sb.WriteByte(' ')
		sb.WriteString(formatNumber(p[1]))
	}
}

func formatNumber(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// FormatPath renders instructions as path data that parses back into the
// same geometry.
func FormatPath(instructions []DrawingInstruction) string {
	var sb strings.Builder
	for i, di := range instructions {
		if i > 0 {
			sb.WriteByte(' ')
		}
		di.appendTo(&sb)
	}
	return sb.String()
}
