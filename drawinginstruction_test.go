package svgpath

import (
	"testing"

	"github.com/cheekybits/is"
	"github.com/google/go-cmp/cmp"
)

func TestInstructionString(t *testing.T) {
	is := is.New(t)

	is.Equal(DrawingInstruction{Kind: MoveInstruction, T: Tuple{1, -2.5}}.String(), "M 1 -2.5")
	is.Equal(DrawingInstruction{Kind: LineInstruction, T: Tuple{0.1, 3}}.String(), "L 0.1 3")
	is.Equal(DrawingInstruction{Kind: CurveInstruction, C1: Tuple{1, 2}, C2: Tuple{3, 4}, T: Tuple{5, 6}}.String(), "C 1 2 3 4 5 6")
	is.Equal(DrawingInstruction{Kind: SmoothCurveInstruction, C1: Tuple{1, 2}, C2: Tuple{3, 4}, T: Tuple{5, 6}}.String(), "C 1 2 3 4 5 6")
	is.Equal(DrawingInstruction{Kind: QuadraticInstruction, C1: Tuple{1, 2}, T: Tuple{5, 6}}.String(), "Q 1 2 5 6")
	is.Equal(DrawingInstruction{Kind: SmoothQuadraticInstruction, C1: Tuple{1, 2}, T: Tuple{5, 6}}.String(), "Q 1 2 5 6")
	is.Equal(DrawingInstruction{Kind: CloseInstruction}.String(), "Z")
}

func TestInstructionTypeString(t *testing.T) {
	is := is.New(t)

	is.Equal(MoveInstruction.String(), "MoveTo")
	is.Equal(SmoothQuadraticInstruction.String(), "SmoothQuadraticCurveTo")
	is.Equal(InstructionType(42).String(), "InstructionType(42)")
}

func TestPoints(t *testing.T) {
	is := is.New(t)

	di := DrawingInstruction{Kind: SmoothCurveInstruction, C1: Tuple{1, 2}, C2: Tuple{3, 4}, T: Tuple{5, 6}}
	is.Equal(di.Points(), []Tuple{{1, 2}, {3, 4}, {5, 6}})
	is.Equal(len(DrawingInstruction{Kind: CloseInstruction}.Points()), 0)

	// unused fields are left alone
	di = DrawingInstruction{Kind: LineInstruction, C1: Tuple{7, 7}, T: Tuple{1, 1}}
	got := di.MapPoints(func(p Tuple) Tuple { return Tuple{p[0] * 2, p[1] * 2} })
	is.Equal(got, DrawingInstruction{Kind: LineInstruction, C1: Tuple{7, 7}, T: Tuple{2, 2}})
}

func TestFormatPathRoundTrip(t *testing.T) {
	for _, d := range []string{
		"M 0 0 10 10 20 5 Z",
		"m 1 1 c 1 2 3 4 5 6 s 1 1 2 2 q 1 0 2 2 t 3 3 z",
		heart,
		"M 10 80 A 45 25 -45 1 0 215 110 H 3 V 4",
	} {
		first, err := ParsePath(d)
		if err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		second, err := ParsePath(FormatPath(first))
		if err != nil {
			t.Fatalf("%s: reparse of %q: %v", d, FormatPath(first), err)
		}
		if len(first) != len(second) {
			t.Fatalf("%s: %d instructions, reparsed %d", d, len(first), len(second))
		}
		for i := range first {
			if diff := cmp.Diff(first[i].Points(), second[i].Points(), approx); diff != "" {
				t.Errorf("%s: instruction %d differs (-want +got):\n%s", d, i, diff)
			}
		}
	}
}
