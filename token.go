package svgpath

import (
	"errors"
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
)

// ErrInvalidToken is returned by the Tokenizer for input that is neither a
// command letter nor a number.
var ErrInvalidToken = errors.New("invalid token")

// Command is one of the ten path-data command families.
type Command byte

// Command families, named by their absolute letter.
const (
	MoveTo                 Command = 'M'
	LineTo                 Command = 'L'
	HorizontalLineTo       Command = 'H'
	VerticalLineTo         Command = 'V'
	CurveTo                Command = 'C'
	SmoothCurveTo          Command = 'S'
	QuadraticCurveTo       Command = 'Q'
	SmoothQuadraticCurveTo Command = 'T'
	EllipticalArc          Command = 'A'
	ClosePath              Command = 'Z'
)

func (c Command) String() string {
	return string(rune(c))
}

// commandFor maps a letter to its family and relative flag.
func commandFor(c byte) (Command, bool, bool) {
	relative := 'a' <= c && c <= 'z'
	if relative {
		c -= 'a' - 'A'
	}
	switch Command(c) {
	case MoveTo, LineTo, HorizontalLineTo, VerticalLineTo, CurveTo,
		SmoothCurveTo, QuadraticCurveTo, SmoothQuadraticCurveTo, EllipticalArc, ClosePath:
		return Command(c), relative, true
	}
	return 0, false, false
}

// TokenKind tells a command token apart from a number token.
type TokenKind int

const (
	CommandToken TokenKind = iota
	NumberToken
)

// Token is a single lexical item of path data.
type Token struct {
	Kind     TokenKind
	Command  Command
	Relative bool
	Number   float32
	Offset   int
}

func (t Token) String() string {
	if t.Kind == NumberToken {
		return fmt.Sprint(t.Number)
	}
	if t.Relative {
		return string(rune(t.Command) + 'a' - 'A')
	}
	return t.Command.String()
}

// Tokenizer scans path data into command and number tokens.
type Tokenizer struct {
	r *parse.Input
}

// NewTokenizer returns a Tokenizer reading from the beginning of src.
func NewTokenizer(src string) *Tokenizer {
	return &Tokenizer{r: parse.NewInputString(src)}
}

func isSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// Next returns the next token, or io.EOF once the input is exhausted.
func (t *Tokenizer) Next() (Token, error) {
	for isSeparator(t.r.Peek(0)) {
		t.r.Move(1)
	}
	t.r.Skip()
	offset := t.r.Offset()
	if t.r.Err() != nil {
		return Token{Offset: offset}, io.EOF
	}

	c := t.r.Peek(0)
	if cmd, relative, ok := commandFor(c); ok {
		t.r.Move(1)
		t.r.Skip()
		return Token{Kind: CommandToken, Command: cmd, Relative: relative, Offset: offset}, nil
	}

	if t.scanNumber() {
		f, _ := strconv.ParseFloat(t.r.Shift())
		return Token{Kind: NumberToken, Number: float32(f), Offset: offset}, nil
	}

	t.r.Rewind(0)
	return Token{Offset: offset}, fmt.Errorf("%w %q at offset %d", ErrInvalidToken, c, offset)
}

// scanNumber moves over -?(0|[1-9][0-9]*)?(\.[0-9]+)? and reports whether
// at least one digit was consumed.
func (t *Tokenizer) scanNumber() bool {
	if t.r.Peek(0) == '-' {
		t.r.Move(1)
	}
	digits := false
	if c := t.r.Peek(0); c == '0' {
		t.r.Move(1)
		digits = true
	} else if '1' <= c && c <= '9' {
		for isDigit(t.r.Peek(0)) {
			t.r.Move(1)
		}
		digits = true
	}
	if t.r.Peek(0) == '.' && isDigit(t.r.Peek(1)) {
		t.r.Move(1)
		for isDigit(t.r.Peek(0)) {
			t.r.Move(1)
		}
		digits = true
	}
	return digits
}

// Tokenize scans the whole of src.
func Tokenize(src string) ([]Token, error) {
	var toks []Token
	t := NewTokenizer(src)
	for {
		tok, err := t.Next()
		if err == io.EOF {
			return toks, nil
		} else if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}
