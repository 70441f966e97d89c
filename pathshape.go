package svgpath

import (
	"github.com/chewxy/math32"
	mt "github.com/rustyoz/Mtransform"
)

// Path owns a sequence of instructions together with their bounding span.
//
// Every method that changes the instructions re-derives the span, so
// chained Resize/Scale/Fit/Cover calls always work from the current
// geometry. A zero span makes the scaling methods produce Inf or NaN
// coordinates.
type Path struct {
	instructions []DrawingInstruction
	size         Tuple
}

// NewPath takes ownership of instructions.
func NewPath(instructions []DrawingInstruction) *Path {
	p := &Path{}
	p.SetInstructions(instructions)
	return p
}

// ParseShape parses src into a Path.
func ParseShape(src string, opts ...Option) (*Path, error) {
	instructions, err := ParsePath(src, opts...)
	if err != nil {
		return nil, err
	}
	return NewPath(instructions), nil
}

// Instructions returns the current instructions. The slice is owned by p.
func (p *Path) Instructions() []DrawingInstruction {
	return p.instructions
}

// TakeInstructions hands the instructions over to the caller and leaves p
// empty.
func (p *Path) TakeInstructions() []DrawingInstruction {
	instructions := p.instructions
	p.SetInstructions(nil)
	return instructions
}

// SetInstructions replaces the instructions wholesale.
func (p *Path) SetInstructions(instructions []DrawingInstruction) {
	p.instructions = instructions
	p.refresh()
}

// Size returns the width and height spanned by the path, origin included.
func (p *Path) Size() Tuple {
	return p.size
}

func (p *Path) refresh() {
	w, h := EstimateDimensions(p.instructions)
	p.size = Tuple{w, h}
}

// Translate moves every point by (dx, dy).
func (p *Path) Translate(dx, dy float32) {
	for i, di := range p.instructions {
		p.instructions[i] = di.Translate(dx, dy)
	}
	p.refresh()
}

// Resize scales x and y independently so the span becomes width by height.
func (p *Path) Resize(width, height float32) {
	p.scale(width/p.size[0], height/p.size[1])
}

// Scale scales both axes by s.
func (p *Path) Scale(s float32) {
	p.scale(s, s)
}

// Fit scales uniformly so the path fits inside width by height.
func (p *Path) Fit(width, height float32) {
	s := math32.Min(width/p.size[0], height/p.size[1])
	p.scale(s, s)
}

// Cover scales uniformly so the path fills width by height, overflowing
// on one axis if the aspect ratios differ.
func (p *Path) Cover(width, height float32) {
	s := math32.Max(width/p.size[0], height/p.size[1])
	p.scale(s, s)
}

func (p *Path) scale(sx, sy float32) {
	w, h := p.size[0], p.size[1]
	vb := NewViewBox(0, 0, w/sx, h/sy)
	for i, di := range p.instructions {
		p.instructions[i] = vb.ScaleCommand(di, w, h)
	}
	p.refresh()
}

// Transform applies the affine transform t to every point.
func (p *Path) Transform(t mt.Transform) {
	p.instructions = applyTransform(p.instructions, t)
	p.refresh()
}
