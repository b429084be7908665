package refinement

import (
	"fmt"
)

// WellRefinementTier classifies a well by how aggressively the mesh is
// refined around it. Critical wells get the smallest cells
type WellRefinementTier uint8

const (
	Critical WellRefinementTier = iota
	Standard
	Marginal
)

func (t WellRefinementTier) String() string {
	return [...]string{"critical", "standard", "marginal"}[t]
}

func ParseWellTier(name string) (t WellRefinementTier, err error) {
	switch name {
	case "critical":
		t = Critical
	case "standard":
		t = Standard
	case "marginal":
		t = Marginal
	default:
		err = fmt.Errorf("unrecognized well tier %q", name)
	}
	return
}

// WellPoint is the point-like refinement constraint derived from one
// configured well. Immutable after extraction
type WellPoint struct {
	X, Y            float64
	TargetSize      float64
	InfluenceRadius float64
	Tier            WellRefinementTier
}
