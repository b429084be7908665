package extrusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OilCoder/reservoir-simulation-sub001/geometry2D"
	"github.com/OilCoder/reservoir-simulation-sub001/pebi"
	"github.com/OilCoder/reservoir-simulation-sub001/types"
	"github.com/OilCoder/reservoir-simulation-sub001/utils"
)

// A single unit-square 2D cell with four boundary faces
func squareMesh2D(t *testing.T) *pebi.Mesh2D {
	m := &pebi.Mesh2D{
		Nodes: []geometry2D.Point{
			geometry2D.NewPoint(0, 0), geometry2D.NewPoint(1, 0),
			geometry2D.NewPoint(1, 1), geometry2D.NewPoint(0, 1),
		},
		Cells: []pebi.Cell{
			{Nodes: []int{0, 1, 2, 3}, Site: geometry2D.NewPoint(0.5, 0.5)},
		},
		Faces: []pebi.Face{
			{Nodes: [2]int{0, 1}, Cells: [2]int{0, pebi.BoundaryCell}, FaultMultiplier: 1.},
			{Nodes: [2]int{1, 2}, Cells: [2]int{0, pebi.BoundaryCell}, FaultMultiplier: 1.},
			{Nodes: [2]int{2, 3}, Cells: [2]int{0, pebi.BoundaryCell}, FaultMultiplier: 1.},
			{Nodes: [2]int{3, 0}, Cells: [2]int{0, pebi.BoundaryCell}, FaultMultiplier: 1.},
		},
	}
	require.NoError(t, m.ComputeGeometry())
	return m
}

// Two unit cells side by side sharing one interior face
func twinMesh2D(t *testing.T) *pebi.Mesh2D {
	m := &pebi.Mesh2D{
		Nodes: []geometry2D.Point{
			geometry2D.NewPoint(0, 0), geometry2D.NewPoint(1, 0), geometry2D.NewPoint(2, 0),
			geometry2D.NewPoint(2, 1), geometry2D.NewPoint(1, 1), geometry2D.NewPoint(0, 1),
		},
		Cells: []pebi.Cell{
			{Nodes: []int{0, 1, 4, 5}, Site: geometry2D.NewPoint(0.5, 0.5)},
			{Nodes: []int{1, 2, 3, 4}, Site: geometry2D.NewPoint(1.5, 0.5)},
		},
		Faces: []pebi.Face{
			{Nodes: [2]int{1, 4}, Cells: [2]int{0, 1}, FaultMultiplier: 1., IsFault: true},
			{Nodes: [2]int{0, 1}, Cells: [2]int{0, pebi.BoundaryCell}, FaultMultiplier: 1.},
			{Nodes: [2]int{1, 2}, Cells: [2]int{1, pebi.BoundaryCell}, FaultMultiplier: 1.},
		},
	}
	m.Faces[0].FaultMultiplier = 0.01
	require.NoError(t, m.ComputeGeometry())
	return m
}

func TestExtrudeLayersGeometry(t *testing.T) {
	m2d := squareMesh2D(t)
	m, err := ExtrudeLayers(m2d, []float64{10., 10.})
	require.NoError(t, err)
	assert.Equal(t, 2, m.LayerCount)
	require.Len(t, m.Cells, 2)
	assert.InDelta(t, 10., m.Cells[0].Volume, 1.e-12)
	assert.InDelta(t, 10., m.Cells[1].Volume, 1.e-12)
	assert.InDelta(t, -5., m.Cells[0].Centroid[2], 1.e-12)
	assert.InDelta(t, -15., m.Cells[1].Centroid[2], 1.e-12)
	// Node planes replicate the 2D nodes at each interface depth
	assert.Len(t, m.Nodes, 3*len(m2d.Nodes))
	assert.Equal(t, 0., m.Nodes[0][2])
	assert.Equal(t, -20., m.Nodes[2*m.NumNodes2D][2])
}

func TestExtrudeLayersNegativeThickness(t *testing.T) {
	// An inverted layer configuration must fail before anything downstream
	// can see the mesh, never be clamped
	_, err := ExtrudeLayers(squareMesh2D(t), []float64{10., -10.})
	require.Error(t, err)
	var geomErr *types.GeometryError
	require.ErrorAs(t, err, &geomErr)
	assert.Contains(t, err.Error(), "non-positive volume")
}

func TestExtrudeLayersFaultCarryThrough(t *testing.T) {
	m, err := ExtrudeLayers(twinMesh2D(t), utils.ConstArray(3, 5.))
	require.NoError(t, err)
	var lateralFault int
	for _, f := range m.Faces {
		if f.Horizontal {
			assert.False(t, f.IsFault)
			continue
		}
		if f.IsFault {
			lateralFault++
			assert.Equal(t, 0.01, f.FaultMultiplier)
		}
	}
	// The tagged 2D face appears once per layer
	assert.Equal(t, 3, lateralFault)
}

func TestExtrudeLayersHorizontalFaces(t *testing.T) {
	m, err := ExtrudeLayers(squareMesh2D(t), []float64{10., 10.})
	require.NoError(t, err)
	var horizontal []Face3D
	for _, f := range m.Faces {
		if f.Horizontal {
			horizontal = append(horizontal, f)
		}
	}
	// One per cell per interface: 3 interfaces for 2 layers of 1 cell
	require.Len(t, horizontal, 3)
	assert.Equal(t, [2]int{BoundaryCell3D, 0}, horizontal[0].Cells)
	assert.Equal(t, [2]int{0, 1}, horizontal[1].Cells)
	assert.Equal(t, [2]int{1, BoundaryCell3D}, horizontal[2].Cells)
}

func TestExtrudeToDepthPositionsMesh(t *testing.T) {
	m, err := ExtrudeToDepth(squareMesh2D(t), 4, 100., 140., 50.)
	require.NoError(t, err)
	assert.InDelta(t, 10., m.LayerThickness(), 1.e-12)
	// Translation is unconditional: every node depth lands in [-140, -100]
	for _, nd := range m.Nodes {
		assert.LessOrEqual(t, nd[2], -100.+1.e-9)
		assert.GreaterOrEqual(t, nd[2], -140.-1.e-9)
	}
	zMin, zMax := m.DepthRange()
	assert.InDelta(t, -105., zMax, 1.e-9)
	assert.InDelta(t, -135., zMin, 1.e-9)
	// Volumes survive the translation
	for _, c := range m.Cells {
		assert.InDelta(t, 10., c.Volume, 1.e-9)
	}
}

func TestExtrudeToDepthInvertedRange(t *testing.T) {
	// base above top produces negative thickness, caught as GeometryError
	_, err := ExtrudeToDepth(squareMesh2D(t), 4, 140., 100., 50.)
	require.Error(t, err)
	var geomErr *types.GeometryError
	require.ErrorAs(t, err, &geomErr)
}

func TestExtrudeToDepthBadLayerCount(t *testing.T) {
	_, err := ExtrudeToDepth(squareMesh2D(t), 0, 100., 140., 50.)
	require.Error(t, err)
}
