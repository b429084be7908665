package refinement

import (
	"math"

	"github.com/OilCoder/reservoir-simulation-sub001/geometry2D"
)

// PointDistributor synthesizes the 2D point set handed to triangulation.
// Stages run in a fixed order so that near-duplicate rejection is
// deterministic: well points, fault trace samples, background lattice,
// well refinement rings, then domain boundary samples
type PointDistributor struct {
	ExtentX, ExtentY float64
	Background       float64
	Wells            []WellPoint
	Faults           []FaultSegment
}

func NewPointDistributor(extentX, extentY, background float64,
	wells []WellPoint, faults []FaultSegment) *PointDistributor {
	return &PointDistributor{
		ExtentX:    extentX,
		ExtentY:    extentY,
		Background: background,
		Wells:      wells,
		Faults:     faults,
	}
}

// Distribute produces the final point set, with every coordinate clamped to
// [0,ExtentX]x[0,ExtentY]. Unclamped points expand the mesh bounding box
// beyond the configured field extent, so the clamp is unconditional
func (pd *PointDistributor) Distribute() (points []geometry2D.Point) {
	domain := geometry2D.NewDomainBox(pd.ExtentX, pd.ExtentY)

	// Stage 1: exact well locations
	for _, w := range pd.Wells {
		points = append(points, geometry2D.NewPoint(w.X, w.Y))
	}

	// Stage 2: max(3, ceil(length/target)) equally spaced samples along each
	// fault trace, endpoints included, so the triangulation has edges to
	// align with the trace
	for _, f := range pd.Faults {
		seg := f.Segment()
		n := int(math.Ceil(seg.Length() / f.TargetSize))
		if n < 3 {
			n = 3
		}
		for i := 0; i < n; i++ {
			points = append(points, seg.PointAt(float64(i)/float64(n-1)))
		}
	}

	// Stage 3: background lattice with near-duplicate rejection against
	// everything added so far
	minSep := 0.5 * pd.Background
	for x := 0.; x <= pd.ExtentX+1.e-9; x += pd.Background {
		for y := 0.; y <= pd.ExtentY+1.e-9; y += pd.Background {
			p := geometry2D.NewPoint(x, y)
			if !tooClose(points, p, minSep) {
				points = append(points, p)
			}
		}
	}

	// Stage 4: refinement rings around wells that need cells finer than the
	// background can supply
	for _, w := range pd.Wells {
		if w.TargetSize >= 0.8*pd.Background {
			continue
		}
		r := 0.6 * w.InfluenceRadius
		for i := 0; i < 8; i++ {
			theta := 2. * math.Pi * float64(i) / 8.
			p := geometry2D.NewPoint(w.X+r*math.Cos(theta), w.Y+r*math.Sin(theta))
			if domain.Contains(p) {
				points = append(points, p)
			}
		}
	}

	// Stage 5: boundary samples at 0.8x background spacing on all four edges
	// so the convex hull of the point set is the full rectangle. The spacing
	// is unconditional; only exact duplicates of earlier points (lattice
	// points on the boundary, shared corners) are skipped
	for _, p := range pd.boundarySamples() {
		if !tooClose(points, p, 1.e-9) {
			points = append(points, p)
		}
	}

	for i := range points {
		points[i] = domain.Clamp(points[i])
	}
	return
}

// boundarySamples walks the four domain edges at 0.8x background spacing,
// never overshooting the corners
func (pd *PointDistributor) boundarySamples() (samples []geometry2D.Point) {
	spacing := 0.8 * pd.Background
	walk := func(extent float64, place func(t float64) geometry2D.Point) {
		n := int(math.Ceil(extent / spacing))
		for i := 0; i <= n; i++ {
			t := float64(i) * spacing
			if t > extent {
				t = extent
			}
			samples = append(samples, place(t))
		}
	}
	walk(pd.ExtentX, func(t float64) geometry2D.Point { return geometry2D.NewPoint(t, 0) })
	walk(pd.ExtentX, func(t float64) geometry2D.Point { return geometry2D.NewPoint(t, pd.ExtentY) })
	walk(pd.ExtentY, func(t float64) geometry2D.Point { return geometry2D.NewPoint(0, t) })
	walk(pd.ExtentY, func(t float64) geometry2D.Point { return geometry2D.NewPoint(pd.ExtentX, t) })
	return
}

func tooClose(points []geometry2D.Point, p geometry2D.Point, minDist float64) bool {
	for _, q := range points {
		if q.DistanceTo(p) < minDist {
			return true
		}
	}
	return false
}
