package geometry2D

type BoundingBox struct {
	XMin [2]float64
	XMax [2]float64
}

// NewDomainBox builds the box for the rectangular field [0,extentX]x[0,extentY]
func NewDomainBox(extentX, extentY float64) (box *BoundingBox) {
	box = new(BoundingBox)
	box.XMax[0] = extentX
	box.XMax[1] = extentY
	return
}

func (bb *BoundingBox) Contains(p Point) bool {
	for i := 0; i < 2; i++ {
		if p.X[i] < bb.XMin[i] || p.X[i] > bb.XMax[i] {
			return false
		}
	}
	return true
}

// Clamp projects p onto the box, leaving interior points unchanged
func (bb *BoundingBox) Clamp(p Point) (pc Point) {
	pc = p
	for i := 0; i < 2; i++ {
		if pc.X[i] < bb.XMin[i] {
			pc.X[i] = bb.XMin[i]
		}
		if pc.X[i] > bb.XMax[i] {
			pc.X[i] = bb.XMax[i]
		}
	}
	return
}

// OnBoundary reports whether p lies on the box perimeter within tol
func (bb *BoundingBox) OnBoundary(p Point, tol float64) bool {
	if !bb.Contains(p) {
		return false
	}
	for i := 0; i < 2; i++ {
		if p.X[i]-bb.XMin[i] < tol || bb.XMax[i]-p.X[i] < tol {
			return true
		}
	}
	return false
}
