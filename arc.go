package svgpath

import (
	"github.com/chewxy/math32"
)

// Arc is an elliptical arc in center parameterization.
type Arc struct {
	Center Tuple
	// Radii are non-negative and already scaled up when the requested
	// radii could not span the chord.
	Radii      Tuple
	StartAngle float32
	DeltaAngle float32
	// Rotation of the ellipse x-axis, in degrees.
	Rotation float32
}

func radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// SolveArc converts an SVG endpoint arc from start to end into its center
// parameterization. It reports false when either radius is zero or the
// endpoints coincide, in which case the arc draws nothing.
func SolveArc(start, end, radii Tuple, rotation float32, largeArc, sweep bool) (Arc, bool) {
	rx := math32.Abs(radii[0])
	ry := math32.Abs(radii[1])
	if rx == 0 || ry == 0 || start == end {
		return Arc{}, false
	}

	phi := radians(rotation)
	cosPhi := math32.Cos(phi)
	sinPhi := math32.Sin(phi)

	// start point in the ellipse frame, relative to the chord midpoint
	dx2 := (start[0] - end[0]) / 2
	dy2 := (start[1] - end[1]) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	x1pSq := x1p * x1p
	y1pSq := y1p * y1p

	if lambda := x1pSq/(rx*rx) + y1pSq/(ry*ry); lambda > 1 {
		s := math32.Sqrt(lambda)
		rx *= s
		ry *= s
	}
	rxSq := rx * rx
	rySq := ry * ry

	sign := float32(1)
	if largeArc == sweep {
		sign = -1
	}
	var coef float32
	if den := rxSq*y1pSq + rySq*x1pSq; den != 0 {
		sq := (rxSq*rySq - rxSq*y1pSq - rySq*x1pSq) / den
		coef = sign * math32.Sqrt(math32.Max(sq, 0))
	}
	cxp := coef * (rx * y1p / ry)
	cyp := coef * -(ry * x1p / rx)

	cx := cosPhi*cxp - sinPhi*cyp + (start[0]+end[0])/2
	cy := sinPhi*cxp + cosPhi*cyp + (start[1]+end[1])/2

	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := (-x1p - cxp) / rx
	vy := (-y1p - cyp) / ry

	startAngle := vectorAngle(1, 0, ux, uy)
	delta := vectorAngle(ux, uy, vx, vy)
	if !sweep && delta > 0 {
		delta -= 2 * math32.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math32.Pi
	}

	return Arc{
		Center:     Tuple{cx, cy},
		Radii:      Tuple{rx, ry},
		StartAngle: startAngle,
		DeltaAngle: delta,
		Rotation:   rotation,
	}, true
}

// vectorAngle returns the signed angle from u to v.
func vectorAngle(ux, uy, vx, vy float32) float32 {
	dot := ux*vx + uy*vy
	l := math32.Sqrt((ux*ux + uy*uy) * (vx*vx + vy*vy))
	if l == 0 {
		return 0
	}
	cos := math32.Max(-1, math32.Min(1, dot/l))
	a := math32.Acos(cos)
	if ux*vy-uy*vx < 0 {
		return -a
	}
	return a
}

// Sample returns the point of the ellipse at the given angle.
func (a Arc) Sample(angle float32) Tuple {
	phi := radians(a.Rotation)
	return a.sample(angle, math32.Cos(phi), math32.Sin(phi))
}

func (a Arc) sample(angle, cosPhi, sinPhi float32) Tuple {
	dx := math32.Cos(angle) * a.Radii[0]
	dy := math32.Sin(angle) * a.Radii[1]
	return Tuple{
		a.Center[0] + dx*cosPhi - dy*sinPhi,
		a.Center[1] + dx*sinPhi + dy*cosPhi,
	}
}

// Flatten approximates the arc with a LineTo to its first point followed by
// steps quadratic segments. Each segment passes through the ellipse at its
// two ends and at its midpoint.
func (a Arc) Flatten(steps int) []DrawingInstruction {
	return a.appendFlattened(make([]DrawingInstruction, 0, steps+1), steps)
}

func (a Arc) appendFlattened(dst []DrawingInstruction, steps int) []DrawingInstruction {
	if steps < 1 {
		return dst
	}
	phi := radians(a.Rotation)
	cosPhi, sinPhi := math32.Cos(phi), math32.Sin(phi)

	n := float32(steps)
	for i := 0; i < steps; i++ {
		a1 := a.StartAngle + a.DeltaAngle*float32(i)/n
		a2 := a.StartAngle + a.DeltaAngle*float32(i+1)/n

		p0 := a.sample(a1, cosPhi, sinPhi)
		p1 := a.sample((a1+a2)*0.5, cosPhi, sinPhi)
		p2 := a.sample(a2, cosPhi, sinPhi)

		if i == 0 {
			dst = append(dst, DrawingInstruction{Kind: LineInstruction, T: p0})
		}
		dst = append(dst, DrawingInstruction{
			Kind: SmoothQuadraticInstruction,
			C1: Tuple{
				2*p1[0] - p0[0]/2 - p2[0]/2,
				2*p1[1] - p0[1]/2 - p2[1]/2,
			},
			T: p2,
		})
	}
	return dst
}
