package allocation

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/wealthdeck/internal/modules/holdings"
)

type stubHoldingSource struct {
	holdings []holdings.Holding
}

func (s *stubHoldingSource) List() ([]holdings.Holding, error) {
	return s.holdings, nil
}

func testService(hs []holdings.Holding) *Service {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	return NewService(&stubHoldingSource{holdings: hs}, log)
}

func TestSlices_GroupsByAssetType(t *testing.T) {
	svc := testService([]holdings.Holding{
		{Symbol: "AAPL", Type: "stock", TotalValue: 500, TotalCost: 400},
		{Symbol: "MSFT", Type: "stock", TotalValue: 300, TotalCost: 250},
		{Symbol: "BTC", Type: "crypto", TotalValue: 200, TotalCost: 100},
	})

	slices, total, err := svc.Slices(DimensionAssetType)
	require.NoError(t, err)

	assert.InDelta(t, 1000.0, total, 0.001)
	require.Len(t, slices, 2)
	assert.Equal(t, "Stocks", slices[0].Label)
	assert.InDelta(t, 800.0, slices[0].Value, 0.001)
	assert.InDelta(t, 650.0, slices[0].CostBasis, 0.001)
	assert.Equal(t, "Crypto", slices[1].Label)
	assert.InDelta(t, 200.0, slices[1].Value, 0.001)
}

func TestSlices_SectorDimensionUsesUnknownFallback(t *testing.T) {
	svc := testService([]holdings.Holding{
		{Symbol: "AAPL", Type: "stock", Sector: "Technology", TotalValue: 700},
		{Symbol: "XYZ", Type: "stock", TotalValue: 300},
	})

	slices, total, err := svc.Slices(DimensionSector)
	require.NoError(t, err)

	assert.InDelta(t, 1000.0, total, 0.001)
	require.Len(t, slices, 2)
	assert.Equal(t, "Technology", slices[0].Label)
	assert.Equal(t, "Unknown", slices[1].Label)
}

func TestSlices_PlatformDimensionUsesManualFallback(t *testing.T) {
	svc := testService([]holdings.Holding{
		{Symbol: "AAPL", Type: "stock", Platform: "Fidelity", TotalValue: 600},
		{Symbol: "HOME", Type: "home_equity", TotalValue: 400},
	})

	slices, _, err := svc.Slices(DimensionPlatform)
	require.NoError(t, err)

	require.Len(t, slices, 2)
	assert.Equal(t, "Fidelity", slices[0].Label)
	assert.Equal(t, "Manual", slices[1].Label)
}

func TestAggregated_EndToEnd(t *testing.T) {
	svc := testService([]holdings.Holding{
		{Symbol: "AAPL", Type: "stock", TotalValue: 600},
		{Symbol: "BTC", Type: "crypto", TotalValue: 300},
		{Symbol: "BND", Type: "bond", TotalValue: 100},
	})

	slices, total, err := svc.Aggregated(DimensionAssetType)
	require.NoError(t, err)

	assert.InDelta(t, 1000.0, total, 0.001)
	require.Len(t, slices, 3)
	assert.Equal(t, "Stocks", slices[0].Label)
	assert.InDelta(t, 60.0, slices[0].Percentage, 0.01)
}

func TestAggregated_NoHoldings(t *testing.T) {
	svc := testService(nil)

	slices, total, err := svc.Aggregated(DimensionAssetType)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Nil(t, slices)
}

func TestParseDimension(t *testing.T) {
	assert.Equal(t, DimensionAssetType, ParseDimension(""))
	assert.Equal(t, DimensionAssetType, ParseDimension("bogus"))
	assert.Equal(t, DimensionSector, ParseDimension("sector"))
	assert.Equal(t, DimensionPlatform, ParseDimension("platform"))
}
