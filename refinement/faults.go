package refinement

import (
	"fmt"

	"github.com/OilCoder/reservoir-simulation-sub001/geometry2D"
)

type FaultRefinementTier uint8

const (
	Major FaultRefinementTier = iota
	Minor
)

func (t FaultRefinementTier) String() string {
	return [...]string{"major", "minor"}[t]
}

func ParseFaultTier(name string) (t FaultRefinementTier, err error) {
	switch name {
	case "major":
		t = Major
	case "minor":
		t = Minor
	default:
		err = fmt.Errorf("unrecognized fault tier %q", name)
	}
	return
}

// FaultSegment is the line-like constraint derived from one configured
// fault: endpoints, refinement target, and the sealing behavior applied to
// mesh faces that coincide with the trace. Immutable after extraction
type FaultSegment struct {
	X1, Y1, X2, Y2             float64
	TargetSize                 float64
	Buffer                     float64
	Sealing                    bool
	TransmissibilityMultiplier float64 // In (0,1], near 0 for sealing faults
	Tier                       FaultRefinementTier
}

func (f FaultSegment) Segment() geometry2D.Segment {
	return geometry2D.NewSegment(f.X1, f.Y1, f.X2, f.Y2)
}

func (f FaultSegment) Length() float64 {
	return f.Segment().Length()
}
