package pebi

import (
	"fmt"

	"github.com/OilCoder/reservoir-simulation-sub001/geometry2D"
	"github.com/OilCoder/reservoir-simulation-sub001/types"
)

// BuildDual constructs the perpendicular-bisector (PEBI) dual of a Delaunay
// triangulation, clipped to the rectangular field [0,extentX]x[0,extentY].
//
// Each generator site becomes one cell. Dual nodes are triangle
// circumcenters (clamped into the domain) plus hull edge midpoints; every
// Delaunay edge contributes one face between the cells of its two sites
// (two circumcenters for interior edges, circumcenter plus midpoint for
// hull edges). Boundary sites additionally contribute their own coordinate
// and a pair of boundary faces along the domain edge, so corner cells are
// closed instead of truncated.
func BuildDual(tm TriMesh, extentX, extentY float64) (m *Mesh2D, err error) {
	var (
		domain = geometry2D.NewDomainBox(extentX, extentY)
		nSites = len(tm.Points)
	)
	m = &Mesh2D{}

	nodeIndex := make(map[string]int)
	addNode := func(p geometry2D.Point) int {
		key := fmt.Sprintf("%.6f,%.6f", p.X[0], p.X[1])
		if id, exists := nodeIndex[key]; exists {
			return id
		}
		id := len(m.Nodes)
		m.Nodes = append(m.Nodes, p)
		nodeIndex[key] = id
		return id
	}

	// Circumcenter node per triangle. A collinear triangle has no finite
	// circumcenter and means the kernel output is unusable
	triNode := make([]int, len(tm.Tris))
	for t, tri := range tm.Tris {
		a := geometry2D.NewPoint(tm.Points[tri[0]][0], tm.Points[tri[0]][1])
		b := geometry2D.NewPoint(tm.Points[tri[1]][0], tm.Points[tri[1]][1])
		c := geometry2D.NewPoint(tm.Points[tri[2]][0], tm.Points[tri[2]][1])
		cc, ok := geometry2D.Circumcenter(a, b, c)
		if !ok {
			return nil, &types.GeometryError{Stage: "dual mesh",
				Reason: fmt.Sprintf("triangle %d is degenerate (collinear vertices)", t)}
		}
		triNode[t] = addNode(domain.Clamp(cc))
	}

	// Sites dropped by the kernel (duplicates) get no cell; compact the rest
	siteUsed := make([]bool, nSites)
	for _, tri := range tm.Tris {
		for _, v := range tri {
			siteUsed[v] = true
		}
	}
	siteToCell := make([]int, nSites)
	for i := range siteToCell {
		siteToCell[i] = -1
	}
	nCells := 0
	for i, used := range siteUsed {
		if used {
			siteToCell[i] = nCells
			nCells++
		}
	}

	// Delaunay edges in deterministic first-seen order
	type edgeKey [2]int32
	edgeIndex := make(map[edgeKey]int)
	var (
		edgeList []edgeKey
		edgeTris [][]int
	)
	for t, tri := range tm.Tris {
		for e := 0; e < 3; e++ {
			v1, v2 := tri[e], tri[(e+1)%3]
			if v1 > v2 {
				v1, v2 = v2, v1
			}
			key := edgeKey{v1, v2}
			if idx, exists := edgeIndex[key]; exists {
				edgeTris[idx] = append(edgeTris[idx], t)
			} else {
				edgeIndex[key] = len(edgeList)
				edgeList = append(edgeList, key)
				edgeTris = append(edgeTris, []int{t})
			}
		}
	}

	sitePoint := func(i int32) geometry2D.Point {
		return geometry2D.NewPoint(tm.Points[i][0], tm.Points[i][1])
	}
	siteNodes := make([][]int, nSites)
	appendNode := func(site int32, node int) {
		for _, n := range siteNodes[site] {
			if n == node {
				return
			}
		}
		siteNodes[site] = append(siteNodes[site], node)
	}
	hullMids := make([][]int, nSites)

	for e, key := range edgeList {
		var n1, n2 int
		switch len(edgeTris[e]) {
		case 2:
			n1 = triNode[edgeTris[e][0]]
			n2 = triNode[edgeTris[e][1]]
		case 1:
			// Hull edge: with boundary sampling the edge lies on the domain
			// rectangle, where the perpendicular bisector meets the boundary
			// exactly at the edge midpoint
			mid := geometry2D.NewSegment(
				tm.Points[key[0]][0], tm.Points[key[0]][1],
				tm.Points[key[1]][0], tm.Points[key[1]][1]).PointAt(0.5)
			n1 = triNode[edgeTris[e][0]]
			n2 = addNode(domain.Clamp(mid))
			hullMids[key[0]] = append(hullMids[key[0]], n2)
			hullMids[key[1]] = append(hullMids[key[1]], n2)
		default:
			return nil, &types.GeometryError{Stage: "dual mesh",
				Reason: fmt.Sprintf("edge (%d,%d) shared by %d triangles", key[0], key[1], len(edgeTris[e]))}
		}
		appendNode(key[0], n1)
		appendNode(key[0], n2)
		appendNode(key[1], n1)
		appendNode(key[1], n2)
		if n1 == n2 {
			continue // Cocircular sites collapse the face to a point
		}
		m.Faces = append(m.Faces, Face{
			Nodes:           [2]int{n1, n2},
			Cells:           [2]int{siteToCell[key[0]], siteToCell[key[1]]},
			FaultMultiplier: 1.,
		})
	}

	// Boundary faces run along the domain edge through each hull site
	for i := 0; i < nSites; i++ {
		if len(hullMids[i]) == 0 {
			continue
		}
		siteNode := addNode(domain.Clamp(sitePoint(int32(i))))
		appendNode(int32(i), siteNode)
		for _, mid := range hullMids[i] {
			if mid == siteNode {
				continue
			}
			m.Faces = append(m.Faces, Face{
				Nodes:           [2]int{mid, siteNode},
				Cells:           [2]int{siteToCell[i], BoundaryCell},
				FaultMultiplier: 1.,
			})
		}
	}

	// Assemble cell polygons: incident nodes ordered counter-clockwise
	m.Cells = make([]Cell, nCells)
	for i := 0; i < nSites; i++ {
		cellID := siteToCell[i]
		if cellID < 0 {
			continue
		}
		nodes := siteNodes[i]
		if len(nodes) < 3 {
			return nil, &types.GeometryError{Stage: "dual mesh",
				Reason: fmt.Sprintf("site %d has only %d dual nodes", i, len(nodes))}
		}
		sortNodesCCW(m.Nodes, nodes)
		m.Cells[cellID] = Cell{
			Nodes: nodes,
			Site:  sitePoint(int32(i)),
		}
	}

	if err = m.ComputeGeometry(); err != nil {
		return nil, err
	}
	if err = m.CheckFaceTopology(); err != nil {
		return nil, err
	}
	return m, nil
}

// sortNodesCCW orders node indices counter-clockwise about the vertex mean.
// PEBI cells are convex, so angular order about any interior point yields
// the cell polygon
func sortNodesCCW(nodes []geometry2D.Point, idx []int) {
	var center geometry2D.Point
	for _, n := range idx {
		center.X[0] += nodes[n].X[0]
		center.X[1] += nodes[n].X[1]
	}
	center.X[0] /= float64(len(idx))
	center.X[1] /= float64(len(idx))
	pts := make([]geometry2D.Point, len(idx))
	order := make([]int, len(idx))
	for i, n := range idx {
		pts[i] = nodes[n]
		order[i] = n
	}
	// Indirect sort: order idx by the angle of its node about the center
	geometry2D.SortIndicesAroundPoint(center, pts, order)
	copy(idx, order)
}
