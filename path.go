package svgpath

import (
	"io"
)

// DefaultArcSteps is the number of quadratic segments an elliptical arc is
// flattened into unless WithArcSteps says otherwise.
const DefaultArcSteps = 16

// Option configures a Parser.
type Option func(*Parser)

// WithArcSteps sets how many quadratic segments each elliptical arc is
// flattened into. Values below one are ignored.
func WithArcSteps(n int) Option {
	return func(p *Parser) {
		if n < 1 {
			Logger().Debug("ignoring arc step count", "steps", n, "using", p.steps)
			return
		}
		p.steps = n
	}
}

// Parser turns path data into absolute DrawingInstructions. A Parser is
// single use: Parse consumes its input.
type Parser struct {
	lex     *Tokenizer
	peeked  bool
	tok     Token
	tokErr  error
	steps   int
	current Tuple // pen position
	control Tuple // last control point, for S and T
	start   Tuple // subpath start, for Z
	last    Command

	instructions []DrawingInstruction
}

// NewParser returns a Parser for src.
func NewParser(src string, opts ...Option) *Parser {
	p := &Parser{
		lex:   NewTokenizer(src),
		steps: DefaultArcSteps,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParsePath parses src in one go.
func ParsePath(src string, opts ...Option) ([]DrawingInstruction, error) {
	return NewParser(src, opts...).Parse()
}

// Parse consumes the whole input. On failure no instructions are returned
// and the error is a *ParseError.
func (p *Parser) Parse() ([]DrawingInstruction, error) {
	for {
		tok, err := p.next()
		if err == io.EOF {
			break
		}
		if err != nil || tok.Kind != CommandToken {
			return nil, &ParseError{Expected: ExpectedCommand, Offset: tok.Offset}
		}
		if err := p.parseCommand(tok); err != nil {
			return nil, err
		}
	}
	instructions := p.instructions
	p.instructions = nil
	return instructions, nil
}

func (p *Parser) parseCommand(tok Token) error {
	rel := tok.Relative
	switch tok.Command {
	case MoveTo:
		return p.parseMoveTo(rel)
	case LineTo:
		return p.parseLineTo(rel)
	case HorizontalLineTo:
		return p.parseHLineTo(rel)
	case VerticalLineTo:
		return p.parseVLineTo(rel)
	case CurveTo:
		return p.parseCurveTo(rel)
	case SmoothCurveTo:
		return p.parseSmoothCurveTo(rel)
	case QuadraticCurveTo:
		return p.parseQuadTo(rel)
	case SmoothQuadraticCurveTo:
		return p.parseSmoothQuadTo(rel)
	case EllipticalArc:
		return p.parseArc(rel)
	case ClosePath:
		p.current = p.start
		p.emit(ClosePath, DrawingInstruction{Kind: CloseInstruction})
	}
	return nil
}

func (p *Parser) next() (Token, error) {
	if p.peeked {
		p.peeked = false
		return p.tok, p.tokErr
	}
	return p.lex.Next()
}

func (p *Parser) peek() (Token, error) {
	if !p.peeked {
		p.tok, p.tokErr = p.lex.Next()
		p.peeked = true
	}
	return p.tok, p.tokErr
}

// number consumes a required number.
func (p *Parser) number() (float32, error) {
	tok, err := p.next()
	if err != nil || tok.Kind != NumberToken {
		return 0, &ParseError{Expected: ExpectedNumber, Offset: tok.Offset}
	}
	return tok.Number, nil
}

// numbers fills dst with required numbers.
func (p *Parser) numbers(dst ...*float32) error {
	for _, d := range dst {
		n, err := p.number()
		if err != nil {
			return err
		}
		*d = n
	}
	return nil
}

// tryNumber consumes the next token only if it is a number.
func (p *Parser) tryNumber() (float32, bool) {
	tok, err := p.peek()
	if err != nil || tok.Kind != NumberToken {
		return 0, false
	}
	p.peeked = false
	return tok.Number, true
}

// delta is the offset added to the arguments of a command.
func (p *Parser) delta(relative bool) Tuple {
	if relative {
		return p.current
	}
	return Tuple{}
}

func (p *Parser) emit(cmd Command, di DrawingInstruction) {
	p.instructions = append(p.instructions, di)
	p.last = cmd
}

func (p *Parser) parseMoveTo(rel bool) error {
	var x, y float32
	if err := p.numbers(&x, &y); err != nil {
		return err
	}
	p.current = Tuple{x, y}.Add(p.delta(rel))
	p.start = p.current
	p.emit(MoveTo, DrawingInstruction{Kind: MoveInstruction, T: p.current})

	// further pairs are implicit linetos
	return p.parseLineTo(rel)
}

func (p *Parser) parseLineTo(rel bool) error {
	for {
		x, ok := p.tryNumber()
		if !ok {
			return nil
		}
		y, err := p.number()
		if err != nil {
			return err
		}
		p.current = Tuple{x, y}.Add(p.delta(rel))
		p.emit(LineTo, DrawingInstruction{Kind: LineInstruction, T: p.current})
	}
}

func (p *Parser) parseHLineTo(rel bool) error {
	for {
		x, ok := p.tryNumber()
		if !ok {
			return nil
		}
		p.current[0] = x + p.delta(rel)[0]
		p.emit(HorizontalLineTo, DrawingInstruction{Kind: LineInstruction, T: p.current})
	}
}

func (p *Parser) parseVLineTo(rel bool) error {
	for {
		y, ok := p.tryNumber()
		if !ok {
			return nil
		}
		p.current[1] = y + p.delta(rel)[1]
		p.emit(VerticalLineTo, DrawingInstruction{Kind: LineInstruction, T: p.current})
	}
}

func (p *Parser) parseCurveTo(rel bool) error {
	for {
		d := p.delta(rel)
		x1, ok := p.tryNumber()
		if !ok {
			return nil
		}
		var y1, x2, y2, x, y float32
		if err := p.numbers(&y1, &x2, &y2, &x, &y); err != nil {
			return err
		}
		c2 := Tuple{x2, y2}.Add(d)
		p.current = Tuple{x, y}.Add(d)
		p.control = c2
		p.emit(CurveTo, DrawingInstruction{
			Kind: CurveInstruction,
			C1:   Tuple{x1, y1}.Add(d),
			C2:   c2,
			T:    p.current,
		})
	}
}

func (p *Parser) parseSmoothCurveTo(rel bool) error {
	for {
		d := p.delta(rel)
		x2, ok := p.tryNumber()
		if !ok {
			return nil
		}
		var y2, x, y float32
		if err := p.numbers(&y2, &x, &y); err != nil {
			return err
		}
		c1 := p.current
		if p.last == CurveTo || p.last == SmoothCurveTo {
			c1 = p.control.Reflect(p.current)
		}
		c2 := Tuple{x2, y2}.Add(d)
		p.current = Tuple{x, y}.Add(d)
		p.control = c2
		p.emit(SmoothCurveTo, DrawingInstruction{
			Kind: SmoothCurveInstruction,
			C1:   c1,
			C2:   c2,
			T:    p.current,
		})
	}
}

func (p *Parser) parseQuadTo(rel bool) error {
	for {
		d := p.delta(rel)
		x1, ok := p.tryNumber()
		if !ok {
			return nil
		}
		var y1, x, y float32
		if err := p.numbers(&y1, &x, &y); err != nil {
			return err
		}
		p.control = Tuple{x1, y1}.Add(d)
		p.current = Tuple{x, y}.Add(d)
		p.emit(QuadraticCurveTo, DrawingInstruction{
			Kind: QuadraticInstruction,
			C1:   p.control,
			T:    p.current,
		})
	}
}

func (p *Parser) parseSmoothQuadTo(rel bool) error {
	for {
		d := p.delta(rel)
		x, ok := p.tryNumber()
		if !ok {
			return nil
		}
		y, err := p.number()
		if err != nil {
			return err
		}
		c1 := p.current
		if p.last == QuadraticCurveTo || p.last == SmoothQuadraticCurveTo {
			c1 = p.control.Reflect(p.current)
		}
		p.current = Tuple{x, y}.Add(d)
		p.emit(SmoothQuadraticCurveTo, DrawingInstruction{
			Kind: SmoothQuadraticInstruction,
			C1:   c1,
			T:    p.current,
		})
		// the end point, not c1, is what the next T reflects
		p.control = p.current
	}
}

func (p *Parser) parseArc(rel bool) error {
	for {
		d := p.delta(rel)
		rx, ok := p.tryNumber()
		if !ok {
			return nil
		}
		var ry, rotation, large, sweep, x, y float32
		if err := p.numbers(&ry, &rotation, &large, &sweep, &x, &y); err != nil {
			return err
		}
		from := p.current
		p.current = Tuple{x, y}.Add(d)

		arc, ok := SolveArc(from, p.current, Tuple{rx, ry}, rotation, large != 0, sweep != 0)
		if ok {
			p.instructions = arc.appendFlattened(p.instructions, p.steps)
		} else {
			Logger().Debug("skipping degenerate arc", "from", from, "to", p.current, "rx", rx, "ry", ry)
		}
		p.control = p.current
		p.last = EllipticalArc
	}
}
