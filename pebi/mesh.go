package pebi

import (
	"fmt"

	"github.com/OilCoder/reservoir-simulation-sub001/geometry2D"
	"github.com/OilCoder/reservoir-simulation-sub001/types"
)

// BoundaryCell is the sentinel cell index on the outer side of a boundary face
const BoundaryCell = -1

// Cell is one polygonal PEBI cell: the perpendicular-bisector region of its
// generator site, stored as node indices in counter-clockwise order
type Cell struct {
	Nodes    []int
	Area     float64
	Centroid geometry2D.Point
	Site     geometry2D.Point
}

// Face connects two nodes and separates two cells (BoundaryCell on the
// outside). FaultMultiplier is 1 until the fault tagger attenuates it
type Face struct {
	Nodes           [2]int
	Cells           [2]int
	IsFault         bool
	FaultMultiplier float64
}

// Centroid returns the face midpoint, the mean of its two node coordinates
func (f Face) Centroid(nodes []geometry2D.Point) (c geometry2D.Point) {
	a, b := nodes[f.Nodes[0]], nodes[f.Nodes[1]]
	c.X[0] = 0.5 * (a.X[0] + b.X[0])
	c.X[1] = 0.5 * (a.X[1] + b.X[1])
	return
}

type Mesh2D struct {
	Nodes []geometry2D.Point
	Faces []Face
	Cells []Cell
}

// ComputeGeometry fills cell areas and centroids from the node polygons.
// A non-positive area is a hard failure: the mesh is never regularized or
// replaced with a coarser fallback
func (m *Mesh2D) ComputeGeometry() error {
	for i := range m.Cells {
		cell := &m.Cells[i]
		if len(cell.Nodes) < 3 {
			return &types.GeometryError{Stage: "dual mesh",
				Reason: fmt.Sprintf("cell %d has only %d nodes", i, len(cell.Nodes))}
		}
		poly := make([]geometry2D.Point, len(cell.Nodes))
		for j, n := range cell.Nodes {
			poly[j] = m.Nodes[n]
		}
		area := geometry2D.PolygonArea(poly)
		if area <= 0 {
			return &types.GeometryError{Stage: "dual mesh",
				Reason: fmt.Sprintf("cell %d has non-positive area %g", i, area)}
		}
		cell.Area = area
		cell.Centroid = geometry2D.PolygonCentroid(poly)
	}
	return nil
}

// CheckFaceTopology verifies that every interior face references two
// distinct live cells and two distinct nodes
func (m *Mesh2D) CheckFaceTopology() error {
	for i, f := range m.Faces {
		if f.Nodes[0] == f.Nodes[1] {
			return &types.GeometryError{Stage: "dual mesh",
				Reason: fmt.Sprintf("face %d is degenerate (node %d repeated)", i, f.Nodes[0])}
		}
		for _, c := range f.Cells {
			if c != BoundaryCell && (c < 0 || c >= len(m.Cells)) {
				return &types.GeometryError{Stage: "dual mesh",
					Reason: fmt.Sprintf("face %d references cell %d out of range", i, c)}
			}
		}
		if f.Cells[0] != BoundaryCell && f.Cells[0] == f.Cells[1] {
			return &types.GeometryError{Stage: "dual mesh",
				Reason: fmt.Sprintf("face %d references cell %d on both sides", i, f.Cells[0])}
		}
	}
	return nil
}

// TotalArea sums cell areas; for a well-formed mesh it approximates the
// field extent rectangle
func (m *Mesh2D) TotalArea() (area float64) {
	for _, c := range m.Cells {
		area += c.Area
	}
	return
}
