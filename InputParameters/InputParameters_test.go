package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OilCoder/reservoir-simulation-sub001/types"
)

var exampleYAML = []byte(`
Title: Test Field
FieldExtentX: 3280.
FieldExtentY: 2950.
BackgroundCellSize: 150.
Wells:
  - Name: PROD-1
    SurfaceX: 1000.
    SurfaceY: 1000.
    Tier: critical
WellTiers:
  critical:
    CellSize: 20.
    InfluenceRadius: 500.
Faults:
  - Name: F-1
    StrikeDeg: 90.
    Length: 3280.
    CenterOffsetX: 1640.
    CenterOffsetY: 1500.
    Sealing: true
    TransmissibilityMultiplier: 0.01
    Tier: major
FaultTiers:
  major:
    CellSize: 25.
    BufferDistance: 100.
LayerCount: 12
TopStructureDepth: 7900.
BaseStructureDepth: 8240.
`)

func TestParse(t *testing.T) {
	var mp MeshParameters
	require.NoError(t, mp.Parse(exampleYAML))
	assert.Equal(t, "Test Field", mp.Title)
	assert.Equal(t, 3280., mp.FieldExtentX)
	assert.Equal(t, 150., mp.BackgroundCellSize)
	require.Len(t, mp.Wells, 1)
	assert.Equal(t, "critical", mp.Wells[0].Tier)
	assert.Equal(t, 20., mp.WellTiers["critical"].CellSize)
	require.Len(t, mp.Faults, 1)
	assert.Equal(t, 0.01, mp.Faults[0].TransmissibilityMultiplier)
	assert.True(t, mp.Faults[0].Sealing)
	assert.Equal(t, 100., mp.FaultTiers["major"].BufferDistance)
	assert.Equal(t, 12, mp.LayerCount)
	mp.Print()
}

func TestValidateDefaults(t *testing.T) {
	var mp MeshParameters
	require.NoError(t, mp.Parse(exampleYAML))
	require.NoError(t, mp.Validate())
	// Only the validation tolerances and cell bounds are defaulted
	assert.Equal(t, 50., mp.ThicknessTolerance)
	assert.Equal(t, 200, mp.MinCells)
	assert.Equal(t, 50000, mp.MaxCells)
}

func TestValidateRejectsUnknownTier(t *testing.T) {
	var mp MeshParameters
	require.NoError(t, mp.Parse(exampleYAML))
	mp.Wells[0].Tier = "ultra"
	err := mp.Validate()
	require.Error(t, err)
	var cfgErr *types.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Error(), "ultra")
}

func TestValidateRejectsMissingTierSizes(t *testing.T) {
	var mp MeshParameters
	require.NoError(t, mp.Parse(exampleYAML))
	mp.WellTiers["critical"] = WellTier{CellSize: 20.} // InfluenceRadius absent
	var cfgErr *types.ConfigurationError
	require.ErrorAs(t, mp.Validate(), &cfgErr)
}

func TestValidateRejectsBadMultiplier(t *testing.T) {
	var mp MeshParameters
	require.NoError(t, mp.Parse(exampleYAML))
	mp.Faults[0].TransmissibilityMultiplier = 0.
	var cfgErr *types.ConfigurationError
	require.ErrorAs(t, mp.Validate(), &cfgErr)

	require.NoError(t, mp.Parse(exampleYAML))
	mp.Faults[0].TransmissibilityMultiplier = 1.5
	require.ErrorAs(t, mp.Validate(), &cfgErr)
}

func TestValidateRejectsInvertedDepths(t *testing.T) {
	var mp MeshParameters
	require.NoError(t, mp.Parse(exampleYAML))
	mp.TopStructureDepth = 8240.
	mp.BaseStructureDepth = 7900.
	var cfgErr *types.ConfigurationError
	require.ErrorAs(t, mp.Validate(), &cfgErr)
}
