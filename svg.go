package svgpath

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// Svg holds the paths of an SVG document, already parsed and mapped into
// the document's user space.
type Svg struct {
	Title string
	// ViewBox of the outermost svg element, if it has one.
	ViewBox  *ViewBox
	Elements []*Element
}

// Element is an SVG path element. Fill and Stroke are inherited from the
// enclosing groups when the element does not set them.
type Element struct {
	ID           string
	D            string
	Fill         string
	Stroke       string
	Transform    mt.Transform
	Instructions []DrawingInstruction
}

// Path returns the element's instructions as a Path.
func (e *Element) Path() *Path {
	instructions := make([]DrawingInstruction, len(e.Instructions))
	copy(instructions, e.Instructions)
	return NewPath(instructions)
}

// frame is the inherited state of an open XML element.
type frame struct {
	transform mt.Transform
	fill      string
	stroke    string
}

// ParseSvg parses an SVG string into an SVG struct
func ParseSvg(str string, opts ...Option) (*Svg, error) {
	return ParseSvgFromReader(strings.NewReader(str), opts...)
}

// ParseSvgFromReader parses an SVG struct from an io.Reader
func ParseSvgFromReader(r io.Reader, opts ...Option) (*Svg, error) {
	var svg Svg
	decoder := xml.NewDecoder(r)
	stack := []frame{{transform: mt.Identity()}}
	titleDepth := -1

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("ParseSvg Error: %w", err)
		}

		switch tok := token.(type) {
		case xml.StartElement:
			f, err := inherit(stack[len(stack)-1], tok)
			if err != nil {
				return nil, fmt.Errorf("ParseSvg Error: <%s>: %w", tok.Name.Local, err)
			}
			stack = append(stack, f)

			switch tok.Name.Local {
			case "svg":
				if v, ok := attr(tok, "viewBox"); ok && svg.ViewBox == nil {
					vb, err := ParseViewBox(v)
					if err != nil {
						return nil, fmt.Errorf("ParseSvg Error: %w", err)
					}
					svg.ViewBox = &vb
				}
			case "title":
				if svg.Title == "" {
					titleDepth = len(stack)
				}
			case "path":
				e, err := newElement(tok, f, opts)
				if err != nil {
					return nil, fmt.Errorf("ParseSvg Error: %w", err)
				}
				svg.Elements = append(svg.Elements, e)
			}

		case xml.CharData:
			if titleDepth == len(stack) {
				svg.Title += string(tok)
			}

		case xml.EndElement:
			if titleDepth == len(stack) {
				svg.Title = strings.TrimSpace(svg.Title)
				titleDepth = -1
			}
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return &svg, nil
}

func inherit(parent frame, tok xml.StartElement) (frame, error) {
	f := parent
	if v, ok := attr(tok, "transform"); ok {
		t, err := ParseTransform(v)
		if err != nil {
			return f, err
		}
		f.transform = mt.MultiplyTransforms(parent.transform, t)
	}
	if v, ok := attr(tok, "fill"); ok {
		f.fill = v
	}
	if v, ok := attr(tok, "stroke"); ok {
		f.stroke = v
	}
	return f, nil
}

func newElement(tok xml.StartElement, f frame, opts []Option) (*Element, error) {
	e := &Element{Fill: f.fill, Stroke: f.stroke, Transform: f.transform}
	e.ID, _ = attr(tok, "id")
	e.D, _ = attr(tok, "d")

	instructions, err := ParsePath(e.D, opts...)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", e.ID, err)
	}
	e.Instructions = applyTransform(instructions, e.Transform)
	Logger().Debug("loaded path element", "id", e.ID, "instructions", len(e.Instructions))
	return e, nil
}

func attr(tok xml.StartElement, name string) (string, bool) {
	for _, a := range tok.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
