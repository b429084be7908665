package refinement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OilCoder/reservoir-simulation-sub001/geometry2D"
)

func TestDistributeOrdering(t *testing.T) {
	well := WellPoint{X: 1000., Y: 1000., TargetSize: 20., InfluenceRadius: 500.}
	fault := FaultSegment{X1: 0., Y1: 1500., X2: 3280., Y2: 1500.,
		TargetSize: 25., Buffer: 100., TransmissibilityMultiplier: 0.01}
	pd := NewPointDistributor(3280., 2950., 150., []WellPoint{well}, []FaultSegment{fault})
	points := pd.Distribute()

	// Well points come first, exact
	assert.Equal(t, geometry2D.NewPoint(1000., 1000.), points[0])

	// Fault samples follow: max(3, ceil(length/target)) points with the
	// endpoints included
	n := int(math.Ceil(3280. / 25.))
	require.GreaterOrEqual(t, len(points), 1+n)
	assert.Equal(t, geometry2D.NewPoint(0., 1500.), points[1])
	assert.Equal(t, geometry2D.NewPoint(3280., 1500.), points[n])
	// Equal spacing along the trace
	for i := 2; i <= n; i++ {
		assert.InDelta(t, 3280./float64(n-1), points[i].X[0]-points[i-1].X[0], 1.e-9)
		assert.InDelta(t, 1500., points[i].X[1], 1.e-9)
	}
}

func TestDistributeFaultSampleCount(t *testing.T) {
	// A 100-unit trace with target size 25 gets exactly ceil(100/25) = 4
	// samples, endpoints included
	fault := FaultSegment{X1: 100., Y1: 100., X2: 200., Y2: 100.,
		TargetSize: 25., Buffer: 50., TransmissibilityMultiplier: 0.5}
	pd := NewPointDistributor(1000., 1000., 150., nil, []FaultSegment{fault})
	points := pd.Distribute()
	count := 0
	for _, p := range points {
		if p.X[1] == 100. && p.X[0] >= 100. && p.X[0] <= 200. {
			count++
		}
	}
	assert.Equal(t, 4, count)
}

func TestDistributeFaultSampleFloor(t *testing.T) {
	// A trace shorter than three target sizes still gets 3 samples
	fault := FaultSegment{X1: 100., Y1: 100., X2: 130., Y2: 100.,
		TargetSize: 25., Buffer: 100., TransmissibilityMultiplier: 0.5}
	pd := NewPointDistributor(1000., 1000., 150., nil, []FaultSegment{fault})
	points := pd.Distribute()
	count := 0
	for _, p := range points {
		if p.X[1] == 100. && p.X[0] >= 100. && p.X[0] <= 130. {
			count++
		}
	}
	assert.Equal(t, 3, count)
}

func TestDistributeDomainContainment(t *testing.T) {
	// Well near the corner so its refinement ring would overshoot the domain
	well := WellPoint{X: 100., Y: 100., TargetSize: 20., InfluenceRadius: 500.}
	pd := NewPointDistributor(3280., 2950., 150., []WellPoint{well}, nil)
	points := pd.Distribute()
	for _, p := range points {
		assert.GreaterOrEqual(t, p.X[0], 0.)
		assert.LessOrEqual(t, p.X[0], 3280.)
		assert.GreaterOrEqual(t, p.X[1], 0.)
		assert.LessOrEqual(t, p.X[1], 2950.)
	}
}

func TestDistributeRefinementRing(t *testing.T) {
	well := WellPoint{X: 1640., Y: 1475., TargetSize: 20., InfluenceRadius: 500.}
	pd := NewPointDistributor(3280., 2950., 150., []WellPoint{well}, nil)
	points := pd.Distribute()
	ring := 0
	for _, p := range points {
		d := p.DistanceTo(geometry2D.NewPoint(1640., 1475.))
		if math.Abs(d-300.) < 1.e-6 {
			ring++
		}
	}
	assert.Equal(t, 8, ring)

	// A well coarser than 0.8x background gets no ring
	coarse := WellPoint{X: 1640., Y: 1475., TargetSize: 140., InfluenceRadius: 500.}
	pd = NewPointDistributor(3280., 2950., 150., []WellPoint{coarse}, nil)
	points = pd.Distribute()
	for _, p := range points {
		d := p.DistanceTo(geometry2D.NewPoint(1640., 1475.))
		assert.False(t, math.Abs(d-300.) < 1.e-6)
	}
}

func TestDistributeNearDuplicateRejection(t *testing.T) {
	pd := NewPointDistributor(1000., 1000., 100., nil, nil)
	points := pd.Distribute()
	// No two points closer than the lattice rejection threshold allows for
	// deliberately placed geometry; with no wells or faults the minimum
	// separation is set by the lattice and boundary stages
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			assert.Greater(t, points[i].DistanceTo(points[j]), 1.e-9,
				"points %d and %d coincide", i, j)
		}
	}
}

// Boundary samples stay at 0.8x background spacing even where lattice
// points already sit on the boundary; only exact duplicates are skipped
func TestDistributeBoundarySpacing(t *testing.T) {
	pd := NewPointDistributor(1000., 1000., 100., nil, nil)
	points := pd.Distribute()
	found := 0
	for _, p := range points {
		if p.X[1] == 0. && (p.X[0] == 80. || p.X[0] == 160. || p.X[0] == 240.) {
			found++
		}
	}
	assert.Equal(t, 3, found)
}

// With no wells and no faults the point set reduces to the background
// lattice plus boundary samples, and the count tracks extent^2/background^2
func TestDistributeBackgroundOnly(t *testing.T) {
	pd := NewPointDistributor(3280., 2950., 150., nil, nil)
	points := pd.Distribute()
	expected := 3280. * 2950. / (150. * 150.)
	assert.Greater(t, float64(len(points)), 0.8*expected)
	assert.Less(t, float64(len(points)), 2.5*expected)

	// The four domain corners are always present so the convex hull spans
	// the full rectangle
	corners := []geometry2D.Point{
		geometry2D.NewPoint(0., 0.), geometry2D.NewPoint(3280., 0.),
		geometry2D.NewPoint(0., 2950.), geometry2D.NewPoint(3280., 2950.),
	}
	for _, corner := range corners {
		found := false
		for _, p := range points {
			if p == corner {
				found = true
				break
			}
		}
		assert.True(t, found, "corner %v missing", corner)
	}
}
