package extrusion

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/OilCoder/reservoir-simulation-sub001/types"
)

// ValidationReport carries the outcome of every post-extrusion check.
// Never mutated after Validate returns it
type ValidationReport struct {
	CellCount   int
	CellCountOK bool

	MinVolume  float64
	MaxVolume  float64
	MeanVolume float64
	VolumesOK  bool

	TopCentroidDepth  float64
	BaseCentroidDepth float64
	DepthOK           bool

	StructureOK    bool
	ConnectivityOK bool
}

func (r *ValidationReport) Passed() bool {
	return r.CellCountOK && r.VolumesOK && r.DepthOK && r.StructureOK && r.ConnectivityOK
}

func (r *ValidationReport) String() string {
	status := func(ok bool) string {
		if ok {
			return "pass"
		}
		return "FAIL"
	}
	return fmt.Sprintf(
		"cells: %d [%s]\nvolumes: min %.4g max %.4g mean %.4g [%s]\n"+
			"centroid depth: [%.2f, %.2f] [%s]\nstructure: [%s]\nconnectivity: [%s]",
		r.CellCount, status(r.CellCountOK),
		r.MinVolume, r.MaxVolume, r.MeanVolume, status(r.VolumesOK),
		r.BaseCentroidDepth, r.TopCentroidDepth, status(r.DepthOK),
		status(r.StructureOK), status(r.ConnectivityOK))
}

// Validate runs the full post-extrusion check suite. The report is always
// returned; any failing check additionally yields a ValidationError and the
// mesh must not be handed to a consumer
func Validate(m *LayeredMesh3D, minCells, maxCells int, topTVD, baseTVD,
	thicknessTol float64) (report *ValidationReport, err error) {
	report = &ValidationReport{CellCount: len(m.Cells)}

	report.StructureOK = len(m.Cells) > 0 && len(m.Faces) > 0 && len(m.Nodes) > 0
	if !report.StructureOK {
		return report, &types.ValidationError{Check: "structure",
			Reason: fmt.Sprintf("mesh incomplete: %d cells, %d faces, %d nodes",
				len(m.Cells), len(m.Faces), len(m.Nodes))}
	}

	report.CellCountOK = report.CellCount >= minCells && report.CellCount <= maxCells
	if !report.CellCountOK {
		return report, &types.ValidationError{Check: "cell count",
			Reason: fmt.Sprintf("%d cells outside configured bounds [%d, %d]",
				report.CellCount, minCells, maxCells)}
	}

	volumes := make([]float64, len(m.Cells))
	for i, c := range m.Cells {
		volumes[i] = c.Volume
	}
	report.MinVolume = floats.Min(volumes)
	report.MaxVolume = floats.Max(volumes)
	report.MeanVolume = stat.Mean(volumes, nil)
	report.VolumesOK = report.MinVolume > 0
	if !report.VolumesOK {
		return report, &types.ValidationError{Check: "volume positivity",
			Reason: fmt.Sprintf("minimum cell volume %g is not positive", report.MinVolume)}
	}

	zMin, zMax := m.DepthRange()
	report.BaseCentroidDepth = zMin
	report.TopCentroidDepth = zMax
	report.DepthOK = math.Abs(zMax-(-topTVD)) <= thicknessTol &&
		math.Abs(zMin-(-baseTVD)) <= thicknessTol
	if !report.DepthOK {
		return report, &types.ValidationError{Check: "depth conformance",
			Reason: fmt.Sprintf("centroid depths [%g, %g] deviate from [%g, %g] by more than %g",
				zMin, zMax, -baseTVD, -topTVD, thicknessTol)}
	}

	report.ConnectivityOK = connected(m)
	if !report.ConnectivityOK {
		return report, &types.ValidationError{Check: "connectivity",
			Reason: "cell adjacency graph is not a single connected component"}
	}
	return report, nil
}

// connected builds the cell adjacency matrix from interior faces and checks
// that every cell is reachable from cell 0
func connected(m *LayeredMesh3D) bool {
	n := len(m.Cells)
	adj := sparse.NewDOK(n, n)
	for _, f := range m.Faces {
		if f.Cells[0] == BoundaryCell3D || f.Cells[1] == BoundaryCell3D {
			continue
		}
		adj.Set(f.Cells[0], f.Cells[1], 1)
		adj.Set(f.Cells[1], f.Cells[0], 1)
	}
	csr := adj.ToCSR()

	seen := make([]bool, n)
	stack := []int{0}
	seen[0] = true
	visited := 1
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		csr.DoRowNonZero(c, func(_, j int, _ float64) {
			if !seen[j] {
				seen[j] = true
				visited++
				stack = append(stack, j)
			}
		})
	}
	return visited == n
}
