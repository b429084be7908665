package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/OilCoder/reservoir-simulation-sub001/types"
)

// Parameters obtained from the YAML input file
type MeshParameters struct {
	Title              string               `yaml:"Title"`
	FieldExtentX       float64              `yaml:"FieldExtentX"`
	FieldExtentY       float64              `yaml:"FieldExtentY"`
	BackgroundCellSize float64              `yaml:"BackgroundCellSize"`
	Wells              []WellParameters     `yaml:"Wells"`
	WellTiers          map[string]WellTier  `yaml:"WellTiers"` // Keyed by tier name: critical, standard, marginal
	Faults             []FaultParameters    `yaml:"Faults"`
	FaultTiers         map[string]FaultTier `yaml:"FaultTiers"` // Keyed by tier name: major, minor
	LayerCount         int                  `yaml:"LayerCount"`
	TopStructureDepth  float64              `yaml:"TopStructureDepth"`
	BaseStructureDepth float64              `yaml:"BaseStructureDepth"`
	ThicknessTolerance float64              `yaml:"ThicknessTolerance"`
	MinCells           int                  `yaml:"MinCells"`
	MaxCells           int                  `yaml:"MaxCells"`
}

type WellParameters struct {
	Name     string  `yaml:"Name"`
	SurfaceX float64 `yaml:"SurfaceX"`
	SurfaceY float64 `yaml:"SurfaceY"`
	Tier     string  `yaml:"Tier"`
}

type WellTier struct {
	CellSize        float64 `yaml:"CellSize"`
	InfluenceRadius float64 `yaml:"InfluenceRadius"`
}

type FaultParameters struct {
	Name                       string  `yaml:"Name"`
	StrikeDeg                  float64 `yaml:"StrikeDeg"` // Degrees clockwise from north
	Length                     float64 `yaml:"Length"`
	CenterOffsetX              float64 `yaml:"CenterOffsetX"`
	CenterOffsetY              float64 `yaml:"CenterOffsetY"`
	Sealing                    bool    `yaml:"Sealing"`
	TransmissibilityMultiplier float64 `yaml:"TransmissibilityMultiplier"`
	Tier                       string  `yaml:"Tier"`
}

type FaultTier struct {
	CellSize       float64 `yaml:"CellSize"`
	BufferDistance float64 `yaml:"BufferDistance"`
}

func (mp *MeshParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, mp)
}

// Validate checks the parameter set eagerly, before any meshing starts.
// Tier references must resolve and tier entries must carry sizes; nothing
// is defaulted except the documented validation tolerances and cell bounds
func (mp *MeshParameters) Validate() error {
	if mp.FieldExtentX <= 0 || mp.FieldExtentY <= 0 {
		return &types.ConfigurationError{Field: "FieldExtentX/FieldExtentY",
			Reason: fmt.Sprintf("field extent must be positive, have (%g, %g)", mp.FieldExtentX, mp.FieldExtentY)}
	}
	if mp.BackgroundCellSize <= 0 {
		return &types.ConfigurationError{Field: "BackgroundCellSize",
			Reason: fmt.Sprintf("must be positive, have %g", mp.BackgroundCellSize)}
	}
	for _, w := range mp.Wells {
		tier, ok := mp.WellTiers[w.Tier]
		if !ok {
			return &types.ConfigurationError{Field: "Wells." + w.Name,
				Reason: fmt.Sprintf("unrecognized well tier %q", w.Tier)}
		}
		if tier.CellSize <= 0 || tier.InfluenceRadius <= 0 {
			return &types.ConfigurationError{Field: "WellTiers." + w.Tier,
				Reason: "CellSize and InfluenceRadius must both be present and positive"}
		}
	}
	for _, f := range mp.Faults {
		tier, ok := mp.FaultTiers[f.Tier]
		if !ok {
			return &types.ConfigurationError{Field: "Faults." + f.Name,
				Reason: fmt.Sprintf("unrecognized fault tier %q", f.Tier)}
		}
		if tier.CellSize <= 0 || tier.BufferDistance <= 0 {
			return &types.ConfigurationError{Field: "FaultTiers." + f.Tier,
				Reason: "CellSize and BufferDistance must both be present and positive"}
		}
		if f.TransmissibilityMultiplier <= 0 || f.TransmissibilityMultiplier > 1 {
			return &types.ConfigurationError{Field: "Faults." + f.Name,
				Reason: fmt.Sprintf("TransmissibilityMultiplier must be in (0,1], have %g", f.TransmissibilityMultiplier)}
		}
		if f.Length <= 0 {
			return &types.ConfigurationError{Field: "Faults." + f.Name,
				Reason: fmt.Sprintf("Length must be positive, have %g", f.Length)}
		}
	}
	if mp.LayerCount <= 0 {
		return &types.ConfigurationError{Field: "LayerCount",
			Reason: fmt.Sprintf("must be positive, have %d", mp.LayerCount)}
	}
	if mp.TopStructureDepth >= mp.BaseStructureDepth {
		return &types.ConfigurationError{Field: "TopStructureDepth/BaseStructureDepth",
			Reason: fmt.Sprintf("top depth %g must be above base depth %g", mp.TopStructureDepth, mp.BaseStructureDepth)}
	}
	if mp.ThicknessTolerance == 0 {
		mp.ThicknessTolerance = 50.
	}
	if mp.MinCells == 0 {
		mp.MinCells = 200
	}
	if mp.MaxCells == 0 {
		mp.MaxCells = 50000
	}
	return nil
}

func (mp *MeshParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", mp.Title)
	fmt.Printf("%8.2f x %8.2f\t= Field Extent\n", mp.FieldExtentX, mp.FieldExtentY)
	fmt.Printf("%8.2f\t\t= Background Cell Size\n", mp.BackgroundCellSize)
	fmt.Printf("[%d]\t\t\t= Layer Count\n", mp.LayerCount)
	fmt.Printf("%8.2f - %8.2f\t= Structure Depth Range (TVD)\n", mp.TopStructureDepth, mp.BaseStructureDepth)
	for _, w := range mp.Wells {
		fmt.Printf("Well[%s] = (%g, %g) tier %s\n", w.Name, w.SurfaceX, w.SurfaceY, w.Tier)
	}
	for _, f := range mp.Faults {
		fmt.Printf("Fault[%s] = strike %g deg, length %g, sealing %t, multiplier %g\n",
			f.Name, f.StrikeDeg, f.Length, f.Sealing, f.TransmissibilityMultiplier)
	}
	keys := make([]string, 0, len(mp.WellTiers))
	for k := range mp.WellTiers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("WellTiers[%s] = %v\n", key, mp.WellTiers[key])
	}
	keys = keys[:0]
	for k := range mp.FaultTiers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("FaultTiers[%s] = %v\n", key, mp.FaultTiers[key])
	}
}
