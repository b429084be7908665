package extrusion

// Cell3D is one prismatic cell: a 2D PEBI cell replicated at one depth layer
type Cell3D struct {
	Cell2D   int // Index of the source cell in the 2D mesh
	Layer    int // 0 is the shallowest layer
	Area     float64
	Volume   float64
	Centroid [3]float64
}

// Face3D is either the lateral extrusion of a 2D face (carrying its fault
// tag) or a horizontal face closing a prism at a layer interface
type Face3D struct {
	Face2D          int // -1 for horizontal faces
	Layer           int
	Cells           [2]int // BoundaryCell3D outside the mesh
	IsFault         bool
	FaultMultiplier float64
	Horizontal      bool
}

const BoundaryCell3D = -1

// LayeredMesh3D is the depth-positioned volume mesh. It owns its node,
// face and cell arrays; nothing aliases the source 2D mesh
type LayeredMesh3D struct {
	Nodes       [][3]float64
	Faces       []Face3D
	Cells       []Cell3D
	LayerCount  int
	Thicknesses []float64
	NumCells2D  int
	NumNodes2D  int
}

// LayerThickness returns the uniform per-layer thickness
func (m *LayeredMesh3D) LayerThickness() float64 {
	if len(m.Thicknesses) == 0 {
		return 0
	}
	return m.Thicknesses[0]
}

// CellID maps a 2D cell index and layer to the 3D cell index
func (m *LayeredMesh3D) CellID(cell2D, layer int) int {
	return layer*m.NumCells2D + cell2D
}

// Translate shifts every node and cell centroid along the depth axis
func (m *LayeredMesh3D) Translate(dz float64) {
	for i := range m.Nodes {
		m.Nodes[i][2] += dz
	}
	for i := range m.Cells {
		m.Cells[i].Centroid[2] += dz
	}
}

// ComputeGeometry refills prism volumes and centroids from the node depths
// and the stored 2D cell areas
func (m *LayeredMesh3D) ComputeGeometry() {
	for i := range m.Cells {
		cell := &m.Cells[i]
		zTop := m.Nodes[cell.Layer*m.NumNodes2D][2]
		zBase := m.Nodes[(cell.Layer+1)*m.NumNodes2D][2]
		cell.Volume = cell.Area * (zTop - zBase)
		cell.Centroid[2] = 0.5 * (zTop + zBase)
	}
}

// DepthRange returns the minimum and maximum cell centroid depth
func (m *LayeredMesh3D) DepthRange() (zMin, zMax float64) {
	if len(m.Cells) == 0 {
		return
	}
	zMin, zMax = m.Cells[0].Centroid[2], m.Cells[0].Centroid[2]
	for _, c := range m.Cells {
		if c.Centroid[2] < zMin {
			zMin = c.Centroid[2]
		}
		if c.Centroid[2] > zMax {
			zMax = c.Centroid[2]
		}
	}
	return
}
