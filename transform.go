package svgpath

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
)

// matrix builds the affine transform
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
func matrix(a, b, c, d, e, f float64) mt.Transform {
	t := mt.Identity()
	t[0][0], t[0][1], t[0][2] = a, c, e
	t[1][0], t[1][1], t[1][2] = b, d, f
	return t
}

// ParseTransform parses the value of an SVG transform attribute. The listed
// transforms are composed left to right, so the rightmost one is applied to
// points first.
func ParseTransform(s string) (mt.Transform, error) {
	t := mt.Identity()
	in := strings.Map(normalizeSpace, s)
	l, items := gl.Lex("transform", in)
	// the lexer goroutine sends until the channel is closed
	defer func() {
		for range items {
		}
	}()

	var (
		name     string
		args     []float64
		inArgs   bool
		named    bool // name ended by a separator
		consumed int
	)
	for {
		i := l.NextItem()
		consumed += len(i.Value)
		switch i.Type {
		case gl.ItemError:
			return t, fmt.Errorf("transform %q: %s", s, i.Value)
		case gl.ItemEOS:
			// the lexer stops early on characters it does not know
			if consumed != len(in) {
				return t, fmt.Errorf("transform %q: unexpected input at offset %d", s, consumed)
			}
			if inArgs || name != "" {
				return t, fmt.Errorf("transform %q: unterminated %s", s, name)
			}
			return t, nil
		case gl.ItemLetter, gl.ItemWord:
			if inArgs || named {
				return t, fmt.Errorf("transform %q: unexpected %q after %s", s, i.Value, name)
			}
			// the lexer may split a name into several items
			name += i.Value
		case gl.ItemNumber:
			if !inArgs {
				return t, fmt.Errorf("transform %q: number %s outside arguments", s, i.Value)
			}
			n, err := strconv.ParseFloat(i.Value, 64)
			if err != nil {
				return t, fmt.Errorf("transform %q: %w", s, err)
			}
			args = append(args, n)
		case gl.ItemParan:
			if i.Value == "(" {
				if name == "" || inArgs {
					return t, fmt.Errorf("transform %q: unexpected (", s)
				}
				inArgs, named = true, false
				continue
			}
			if !inArgs {
				return t, fmt.Errorf("transform %q: unexpected )", s)
			}
			m, err := transformFunc(name, args)
			if err != nil {
				return t, fmt.Errorf("transform %q: %w", s, err)
			}
			t.MultiplyWith(m)
			name, args, inArgs, named = "", nil, false, false
		case gl.ItemWSP, gl.ItemComma:
			named = name != "" && !inArgs
		default:
			return t, fmt.Errorf("transform %q: unexpected %q", s, i.Value)
		}
	}
}

// normalizeSpace folds the whitespace the lexer does not know into spaces.
func normalizeSpace(r rune) rune {
	if r == '\r' || r == '\f' {
		return ' '
	}
	return r
}

func transformFunc(name string, args []float64) (mt.Transform, error) {
	arity := func(counts ...int) error {
		for _, c := range counts {
			if len(args) == c {
				return nil
			}
		}
		return fmt.Errorf("%s takes %v arguments, got %d", name, counts, len(args))
	}

	t := mt.Identity()
	switch name {
	case "matrix":
		if err := arity(6); err != nil {
			return t, err
		}
		return matrix(args[0], args[1], args[2], args[3], args[4], args[5]), nil
	case "translate":
		if err := arity(1, 2); err != nil {
			return t, err
		}
		ty := 0.0
		if len(args) == 2 {
			ty = args[1]
		}
		t.Translate(args[0], ty)
	case "scale":
		if err := arity(1, 2); err != nil {
			return t, err
		}
		sy := args[0]
		if len(args) == 2 {
			sy = args[1]
		}
		t.Scale(args[0], sy)
	case "rotate":
		if err := arity(1, 3); err != nil {
			return t, err
		}
		if len(args) == 3 {
			t.Translate(args[1], args[2])
			t.RotateOrigin(radians64(args[0]))
			t.Translate(-args[1], -args[2])
		} else {
			t.RotateOrigin(radians64(args[0]))
		}
	case "skewX":
		if err := arity(1); err != nil {
			return t, err
		}
		t.SkewX(radians64(args[0]))
	case "skewY":
		if err := arity(1); err != nil {
			return t, err
		}
		t.SkewY(radians64(args[0]))
	default:
		return t, fmt.Errorf("unknown transform %q", name)
	}
	return t, nil
}

func radians64(deg float64) float64 {
	return deg * math.Pi / 180
}

// applyTransform returns instructions with t applied to every point.
func applyTransform(instructions []DrawingInstruction, t mt.Transform) []DrawingInstruction {
	out := make([]DrawingInstruction, len(instructions))
	for i, di := range instructions {
		out[i] = di.MapPoints(func(p Tuple) Tuple {
			x, y := t.Apply(float64(p[0]), float64(p[1]))
			return Tuple{float32(x), float32(y)}
		})
	}
	return out
}
