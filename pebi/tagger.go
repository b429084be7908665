package pebi

import (
	"github.com/OilCoder/reservoir-simulation-sub001/refinement"
)

// FaultFaceTolerance is the face-to-trace distance inside which a face is
// treated as lying on the fault, matching the coarsest fault buffer in
// practice. It is fixed rather than scaled with local cell size
const FaultFaceTolerance = 50.

// TagFaultFaces marks faces whose centroid lies within FaultFaceTolerance
// of a fault trace and attaches that fault's transmissibility multiplier.
// Faults are processed in order, so a face matched by more than one keeps
// the last fault's multiplier (configured faults are spatially disjoint).
// Tagging the same mesh again with the same fault list is a no-op
func TagFaultFaces(m *Mesh2D, faults []refinement.FaultSegment) (tagged int) {
	for _, fault := range faults {
		seg := fault.Segment()
		for i := range m.Faces {
			face := &m.Faces[i]
			if seg.DistanceToPoint(face.Centroid(m.Nodes)) <= FaultFaceTolerance {
				if !face.IsFault {
					tagged++
				}
				face.IsFault = true
				face.FaultMultiplier = fault.TransmissibilityMultiplier
			}
		}
	}
	return
}
