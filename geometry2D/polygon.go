package geometry2D

import (
	"math"
	"sort"
)

// PolygonArea returns the signed shoelace area of the polygon, positive for
// counter-clockwise vertex order
func PolygonArea(pts []Point) (area float64) {
	n := len(pts)
	if n < 3 {
		return 0
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += pts[i].X[0]*pts[j].X[1] - pts[j].X[0]*pts[i].X[1]
	}
	return 0.5 * area
}

// PolygonCentroid returns the area-weighted centroid. Degenerate polygons
// fall back to the vertex mean
func PolygonCentroid(pts []Point) (c Point) {
	var (
		n    = len(pts)
		area float64
	)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := pts[i].X[0]*pts[j].X[1] - pts[j].X[0]*pts[i].X[1]
		area += cross
		c.X[0] += (pts[i].X[0] + pts[j].X[0]) * cross
		c.X[1] += (pts[i].X[1] + pts[j].X[1]) * cross
	}
	area *= 0.5
	if math.Abs(area) < 1.e-14 {
		c = Point{}
		for _, p := range pts {
			c.X[0] += p.X[0]
			c.X[1] += p.X[1]
		}
		if n > 0 {
			c.X[0] /= float64(n)
			c.X[1] /= float64(n)
		}
		return
	}
	c.X[0] /= 6. * area
	c.X[1] /= 6. * area
	return
}

// SortAroundPoint orders pts counter-clockwise by angle about center,
// yielding a simple polygon for any star-shaped vertex set
func SortAroundPoint(center Point, pts []Point) {
	sort.Slice(pts, func(i, j int) bool {
		ai := math.Atan2(pts[i].X[1]-center.X[1], pts[i].X[0]-center.X[0])
		aj := math.Atan2(pts[j].X[1]-center.X[1], pts[j].X[0]-center.X[0])
		return ai < aj
	})
}

type indexedAngularSort struct {
	angles []float64
	pts    []Point
	idx    []int
}

func (s *indexedAngularSort) Len() int           { return len(s.angles) }
func (s *indexedAngularSort) Less(i, j int) bool { return s.angles[i] < s.angles[j] }
func (s *indexedAngularSort) Swap(i, j int) {
	s.angles[i], s.angles[j] = s.angles[j], s.angles[i]
	s.pts[i], s.pts[j] = s.pts[j], s.pts[i]
	s.idx[i], s.idx[j] = s.idx[j], s.idx[i]
}

// SortIndicesAroundPoint sorts pts counter-clockwise about center and keeps
// the parallel idx slice aligned with them
func SortIndicesAroundPoint(center Point, pts []Point, idx []int) {
	s := &indexedAngularSort{
		angles: make([]float64, len(pts)),
		pts:    pts,
		idx:    idx,
	}
	for i, p := range pts {
		s.angles[i] = math.Atan2(p.X[1]-center.X[1], p.X[0]-center.X[0])
	}
	sort.Sort(s)
}
