package geometry2D

import (
	"math"
)

type Point struct {
	X [2]float64
}

func NewPoint(x, y float64) (p Point) {
	p.X[0] = x
	p.X[1] = y
	return
}

func (p Point) DistanceTo(o Point) float64 {
	dx := p.X[0] - o.X[0]
	dy := p.X[1] - o.X[1]
	return math.Sqrt(dx*dx + dy*dy)
}

// Segment is a directed line segment between two points, used for fault
// traces and distance queries against them
type Segment struct {
	A, B Point
}

func NewSegment(x1, y1, x2, y2 float64) (s Segment) {
	s.A = NewPoint(x1, y1)
	s.B = NewPoint(x2, y2)
	return
}

func (s Segment) Length() float64 {
	return s.A.DistanceTo(s.B)
}

// PointAt returns the point at parameter t in [0,1] along the segment
func (s Segment) PointAt(t float64) (p Point) {
	p.X[0] = s.A.X[0] + t*(s.B.X[0]-s.A.X[0])
	p.X[1] = s.A.X[1] + t*(s.B.X[1]-s.A.X[1])
	return
}

// DistanceToPoint returns the perpendicular distance from p to the segment,
// clamped to the nearer endpoint when the projection falls outside [A,B]
func (s Segment) DistanceToPoint(p Point) float64 {
	var (
		dx = s.B.X[0] - s.A.X[0]
		dy = s.B.X[1] - s.A.X[1]
	)
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return p.DistanceTo(s.A)
	}
	t := ((p.X[0]-s.A.X[0])*dx + (p.X[1]-s.A.X[1])*dy) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.DistanceTo(s.PointAt(t))
}

// Circumcenter returns the center of the circle through a, b, c. The second
// return is false for (nearly) collinear input, where no finite center exists
func Circumcenter(a, b, c Point) (cc Point, ok bool) {
	var (
		ax, ay = a.X[0], a.X[1]
		bx, by = b.X[0], b.X[1]
		cx, cy = c.X[0], c.X[1]
	)
	// The denominator is four times the signed triangle area, so collinear
	// input shows up as a vanishing area
	d := 4. * TriangleArea(a, b, c)
	if math.Abs(d) < 1.e-12 {
		return cc, false
	}
	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	cc.X[0] = (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / d
	cc.X[1] = (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / d
	return cc, true
}

// TriangleArea returns the signed area of triangle a, b, c (positive CCW)
func TriangleArea(a, b, c Point) float64 {
	return 0.5 * ((b.X[0]-a.X[0])*(c.X[1]-a.X[1]) - (c.X[0]-a.X[0])*(b.X[1]-a.X[1]))
}
