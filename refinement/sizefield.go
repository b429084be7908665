package refinement

import (
	"math"

	"github.com/OilCoder/reservoir-simulation-sub001/geometry2D"
)

// SizeField maps any point in the field to a target cell size. It is a pure
// evaluator over the immutable well and fault collections: the background
// size everywhere, ramping linearly down to each constraint's target size
// inside its influence radius or buffer. Where constraints overlap the
// smallest candidate wins, so finer resolution always dominates
type SizeField struct {
	Background float64
	Wells      []WellPoint
	Faults     []FaultSegment
}

func NewSizeField(background float64, wells []WellPoint, faults []FaultSegment) *SizeField {
	return &SizeField{
		Background: background,
		Wells:      wells,
		Faults:     faults,
	}
}

func (sf *SizeField) SizeAt(p geometry2D.Point) (size float64) {
	size = sf.Background
	for _, w := range sf.Wells {
		d := p.DistanceTo(geometry2D.NewPoint(w.X, w.Y))
		if d <= w.InfluenceRadius {
			candidate := w.TargetSize + (sf.Background-w.TargetSize)*d/w.InfluenceRadius
			size = math.Min(size, candidate)
		}
	}
	for _, f := range sf.Faults {
		d := f.Segment().DistanceToPoint(p)
		if d <= f.Buffer {
			candidate := f.TargetSize + (sf.Background-f.TargetSize)*d/f.Buffer
			size = math.Min(size, candidate)
		}
	}
	return
}
