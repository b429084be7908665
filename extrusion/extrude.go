package extrusion

import (
	"fmt"
	"math"

	"github.com/OilCoder/reservoir-simulation-sub001/pebi"
	"github.com/OilCoder/reservoir-simulation-sub001/types"
	"github.com/OilCoder/reservoir-simulation-sub001/utils"
)

// ExtrudeLayers replicates the 2D mesh down the depth axis, one layer per
// thickness entry, starting from z=0. Every cell volume is checked
// immediately: a non-positive volume here means an inverted layer
// configuration, and the mesh must never reach a downstream consumer
func ExtrudeLayers(m2d *pebi.Mesh2D, thicknesses []float64) (m *LayeredMesh3D, err error) {
	var (
		n   = len(thicknesses)
		nc  = len(m2d.Cells)
		nn  = len(m2d.Nodes)
	)
	if n == 0 {
		return nil, &types.GeometryError{Stage: "extrusion", Reason: "no layer thicknesses supplied"}
	}
	m = &LayeredMesh3D{
		LayerCount:  n,
		Thicknesses: append([]float64(nil), thicknesses...),
		NumCells2D:  nc,
		NumNodes2D:  nn,
	}

	// Interface depths, z=0 at the top going down
	zs := make([]float64, n+1)
	for k := 0; k < n; k++ {
		zs[k+1] = zs[k] - thicknesses[k]
	}
	m.Nodes = make([][3]float64, (n+1)*nn)
	for k := 0; k <= n; k++ {
		for i, p := range m2d.Nodes {
			m.Nodes[k*nn+i] = [3]float64{p.X[0], p.X[1], zs[k]}
		}
	}

	m.Cells = make([]Cell3D, n*nc)
	for k := 0; k < n; k++ {
		for c, cell2d := range m2d.Cells {
			volume := cell2d.Area * thicknesses[k]
			if volume <= 0 {
				return nil, &types.GeometryError{Stage: "extrusion",
					Reason: fmt.Sprintf("cell (layer %d, cell %d) has non-positive volume %g", k, c, volume)}
			}
			m.Cells[m.CellID(c, k)] = Cell3D{
				Cell2D: c,
				Layer:  k,
				Area:   cell2d.Area,
				Volume: volume,
				Centroid: [3]float64{
					cell2d.Centroid.X[0],
					cell2d.Centroid.X[1],
					0.5 * (zs[k] + zs[k+1]),
				},
			}
		}
	}

	// Lateral faces carry the 2D face fault tags into every layer
	for k := 0; k < n; k++ {
		for fi, f := range m2d.Faces {
			cells := [2]int{BoundaryCell3D, BoundaryCell3D}
			for s, c := range f.Cells {
				if c != pebi.BoundaryCell {
					cells[s] = m.CellID(c, k)
				}
			}
			m.Faces = append(m.Faces, Face3D{
				Face2D:          fi,
				Layer:           k,
				Cells:           cells,
				IsFault:         f.IsFault,
				FaultMultiplier: f.FaultMultiplier,
			})
		}
	}
	// Horizontal faces close each prism at every layer interface
	for k := 0; k <= n; k++ {
		for c := range m2d.Cells {
			above, below := BoundaryCell3D, BoundaryCell3D
			if k > 0 {
				above = m.CellID(c, k-1)
			}
			if k < n {
				below = m.CellID(c, k)
			}
			m.Faces = append(m.Faces, Face3D{
				Face2D:          -1,
				Layer:           k,
				Cells:           [2]int{above, below},
				FaultMultiplier: 1.,
				Horizontal:      true,
			})
		}
	}
	return m, nil
}

// ExtrudeToDepth extrudes the 2D mesh into layerCount uniform layers
// spanning [topTVD, baseTVD] true vertical depth (the negative z axis) and
// positions it there. The extruded position is never assumed correct: the
// depth translation is applied unconditionally, then geometry is recomputed
// and the centroid depth range checked against the structure depths
func ExtrudeToDepth(m2d *pebi.Mesh2D, layerCount int, topTVD, baseTVD,
	thicknessTol float64) (m *LayeredMesh3D, err error) {
	if layerCount <= 0 {
		return nil, &types.GeometryError{Stage: "extrusion",
			Reason: fmt.Sprintf("layer count must be positive, have %d", layerCount)}
	}
	thickness := (baseTVD - topTVD) / float64(layerCount)
	if m, err = ExtrudeLayers(m2d, utils.ConstArray(layerCount, thickness)); err != nil {
		return nil, err
	}

	zTop := m.Nodes[0][2]
	for _, nd := range m.Nodes {
		if nd[2] > zTop {
			zTop = nd[2]
		}
	}
	m.Translate(-topTVD - zTop)
	m.ComputeGeometry()

	zMin, zMax := m.DepthRange()
	if math.Abs(zMax-(-topTVD)) > thicknessTol || math.Abs(zMin-(-baseTVD)) > thicknessTol {
		return nil, &types.ValidationError{Check: "depth conformance",
			Reason: fmt.Sprintf("cell centroid depths span [%g, %g], expected within %g of [%g, %g]",
				zMin, zMax, thicknessTol, -baseTVD, -topTVD)}
	}
	return m, nil
}
