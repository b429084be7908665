package refinement

import (
	"fmt"
	"math"

	"github.com/OilCoder/reservoir-simulation-sub001/InputParameters"
	"github.com/OilCoder/reservoir-simulation-sub001/types"
)

// ExtractWells converts well configuration records into typed WellPoints.
// Pure transform; a missing or unknown tier is a ConfigurationError
func ExtractWells(mp *InputParameters.MeshParameters) (wells []WellPoint, err error) {
	wells = make([]WellPoint, 0, len(mp.Wells))
	for _, w := range mp.Wells {
		tier, parseErr := ParseWellTier(w.Tier)
		if parseErr != nil {
			return nil, &types.ConfigurationError{Field: "Wells." + w.Name, Reason: parseErr.Error()}
		}
		sizes, ok := mp.WellTiers[w.Tier]
		if !ok || sizes.CellSize <= 0 || sizes.InfluenceRadius <= 0 {
			return nil, &types.ConfigurationError{Field: "WellTiers." + w.Tier,
				Reason: fmt.Sprintf("well %s references tier %q without CellSize/InfluenceRadius", w.Name, w.Tier)}
		}
		wells = append(wells, WellPoint{
			X:               w.SurfaceX,
			Y:               w.SurfaceY,
			TargetSize:      sizes.CellSize,
			InfluenceRadius: sizes.InfluenceRadius,
			Tier:            tier,
		})
	}
	return
}

// ExtractFaults converts fault configuration records into typed
// FaultSegments. Endpoints follow from the center position, the strike
// angle in degrees clockwise from north, and the trace length:
// center +/- (length/2) * (sin(strike), cos(strike))
func ExtractFaults(mp *InputParameters.MeshParameters) (faults []FaultSegment, err error) {
	faults = make([]FaultSegment, 0, len(mp.Faults))
	for _, f := range mp.Faults {
		tier, parseErr := ParseFaultTier(f.Tier)
		if parseErr != nil {
			return nil, &types.ConfigurationError{Field: "Faults." + f.Name, Reason: parseErr.Error()}
		}
		sizes, ok := mp.FaultTiers[f.Tier]
		if !ok || sizes.CellSize <= 0 || sizes.BufferDistance <= 0 {
			return nil, &types.ConfigurationError{Field: "FaultTiers." + f.Tier,
				Reason: fmt.Sprintf("fault %s references tier %q without CellSize/BufferDistance", f.Name, f.Tier)}
		}
		theta := f.StrikeDeg * math.Pi / 180.
		dx := 0.5 * f.Length * math.Sin(theta)
		dy := 0.5 * f.Length * math.Cos(theta)
		faults = append(faults, FaultSegment{
			X1:                         f.CenterOffsetX - dx,
			Y1:                         f.CenterOffsetY - dy,
			X2:                         f.CenterOffsetX + dx,
			Y2:                         f.CenterOffsetY + dy,
			TargetSize:                 sizes.CellSize,
			Buffer:                     sizes.BufferDistance,
			Sealing:                    f.Sealing,
			TransmissibilityMultiplier: f.TransmissibilityMultiplier,
			Tier:                       tier,
		})
	}
	return
}
