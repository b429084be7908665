package pebi

import (
	"fmt"

	"github.com/pradeep-pyro/triangle"

	"github.com/OilCoder/reservoir-simulation-sub001/geometry2D"
	"github.com/OilCoder/reservoir-simulation-sub001/types"
)

// TriMesh is the raw triangulation returned by the kernel: the generator
// sites (in input order) and triangles as site index triples
type TriMesh struct {
	Points [][2]float64
	Tris   [][3]int32
}

// Kernel is the external triangulation primitive. Implementations must be
// pure: same points in, same triangulation out
type Kernel interface {
	Triangulate(points []geometry2D.Point) (TriMesh, error)
}

// DelaunayKernel triangulates with Shewchuk's Triangle
type DelaunayKernel struct{}

func (DelaunayKernel) Triangulate(points []geometry2D.Point) (tm TriMesh, err error) {
	if len(points) < 3 {
		err = &types.GeometryError{Stage: "triangulation",
			Reason: fmt.Sprintf("need at least 3 points, have %d", len(points))}
		return
	}
	pts := make([][2]float64, len(points))
	for i, p := range points {
		pts[i][0] = p.X[0]
		pts[i][1] = p.X[1]
	}
	// The Triangle library aborts on degenerate (e.g. fully collinear)
	// input; surface that as a kernel error instead of crashing the pipeline
	defer func() {
		if r := recover(); r != nil {
			err = &types.GeometryError{Stage: "triangulation",
				Reason: fmt.Sprintf("kernel failed: %v", r)}
		}
	}()
	tris := triangle.Delaunay(pts)
	if len(tris) == 0 {
		err = &types.GeometryError{Stage: "triangulation",
			Reason: "kernel produced no triangles (degenerate point configuration)"}
		return
	}
	tm = TriMesh{Points: pts, Tris: tris}
	return
}
