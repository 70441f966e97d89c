package svgpath

import (
	"errors"
	"fmt"
)

// Parse failures. A *ParseError unwraps to one of these.
var (
	ErrExpectedCommand = errors.New("expected command")
	ErrExpectedNumber  = errors.New("expected number")
)

// Expected names what the parser was looking for when it failed.
type Expected int

const (
	ExpectedCommand Expected = iota
	ExpectedNumber
)

func (e Expected) String() string {
	if e == ExpectedNumber {
		return "number"
	}
	return "command"
}

// ParseError reports where in the source a parse failed.
type ParseError struct {
	Expected Expected
	// Offset is the byte offset of the offending token, or the length of
	// the source when input ran out.
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s at offset %d", e.Expected, e.Offset)
}

func (e *ParseError) Unwrap() error {
	if e.Expected == ExpectedNumber {
		return ErrExpectedNumber
	}
	return ErrExpectedCommand
}
