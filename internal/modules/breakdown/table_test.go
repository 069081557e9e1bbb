package breakdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/wealthdeck/internal/modules/allocation"
)

func sampleSlices() []allocation.AggregatedSlice {
	return []allocation.AggregatedSlice{
		{Label: "Stocks", Value: 6000, CostBasis: 5000, Percentage: 60, Color: "#3B82F6"},
		{Label: "Crypto", Value: 3000, CostBasis: 3500, Percentage: 30, Color: "#F59E0B"},
		{Label: "Bonds", Value: 1000, CostBasis: 1000, Percentage: 10, Color: "#10B981"},
	}
}

func TestBuildTable_Rows(t *testing.T) {
	table := BuildTable(sampleSlices(), -1)

	assert.False(t, table.Empty)
	require.Len(t, table.Rows, 3)

	stocks := table.Rows[0]
	assert.Equal(t, "Stocks", stocks.Label)
	assert.InDelta(t, 1000.0, stocks.GainLoss, 0.001)
	assert.InDelta(t, 20.0, stocks.GainLossPercent, 0.001)
	assert.Equal(t, "up", stocks.Direction)
	assert.Equal(t, "$5,000.00", stocks.CostBasisDisplay)
	assert.Equal(t, "$6,000.00", stocks.CurrentValueDisplay)
	assert.Equal(t, "+$1,000.00", stocks.GainLossDisplay)
	assert.Equal(t, "+20.00%", stocks.GainLossPercentDisplay)
	assert.Equal(t, "60.0%", stocks.PortfolioPercentDisplay)

	crypto := table.Rows[1]
	assert.Equal(t, "down", crypto.Direction)
	assert.Equal(t, "-$500.00", crypto.GainLossDisplay)

	bonds := table.Rows[2]
	assert.Equal(t, "flat", bonds.Direction)
	assert.Equal(t, "+0.00%", bonds.GainLossPercentDisplay)
}

func TestBuildTable_TotalRowSummedFromRows(t *testing.T) {
	table := BuildTable(sampleSlices(), -1)

	total := table.Total
	assert.Equal(t, "Total", total.Label)
	assert.InDelta(t, 9500.0, total.CostBasis, 0.001)
	assert.InDelta(t, 10000.0, total.CurrentValue, 0.001)
	assert.InDelta(t, 500.0, total.GainLoss, 0.001)
	assert.InDelta(t, 100.0, total.PortfolioPercent, 0.001)
	assert.Equal(t, "$10,000.00", total.CurrentValueDisplay)
	assert.Equal(t, "100.0%", total.PortfolioPercentDisplay)
	assert.Equal(t, "up", total.Direction)
}

func TestBuildTable_ZeroCostBasisAvoidsDivideByZero(t *testing.T) {
	slices := []allocation.AggregatedSlice{
		{Label: "Airdrop", Value: 500, CostBasis: 0, Percentage: 100},
	}

	table := BuildTable(slices, -1)
	require.Len(t, table.Rows, 1)
	assert.Zero(t, table.Rows[0].GainLossPercent)
	assert.Zero(t, table.Total.GainLossPercent)
}

func TestBuildTable_FocusMirroring(t *testing.T) {
	table := BuildTable(sampleSlices(), 1)

	assert.False(t, table.Rows[0].Focused)
	assert.True(t, table.Rows[0].Dimmed)
	assert.True(t, table.Rows[1].Focused)
	assert.False(t, table.Rows[1].Dimmed)
	assert.True(t, table.Rows[2].Dimmed)
}

func TestBuildTable_NoFocusNothingDimmed(t *testing.T) {
	table := BuildTable(sampleSlices(), -1)
	for _, row := range table.Rows {
		assert.False(t, row.Focused)
		assert.False(t, row.Dimmed)
	}
}

func TestBuildTable_GroupedRowPassthrough(t *testing.T) {
	slices := []allocation.AggregatedSlice{
		{Label: "Stocks", Value: 900, Percentage: 90},
		{Label: "Other", Value: 100, Percentage: 10, IsGrouped: true, GroupedCount: 3},
	}

	table := BuildTable(slices, -1)
	other := table.Rows[1]
	assert.True(t, other.IsGrouped)
	assert.Equal(t, 3, other.GroupedCount)
}

func TestBuildTable_Empty(t *testing.T) {
	table := BuildTable(nil, -1)
	assert.True(t, table.Empty)
	assert.Equal(t, "No holdings to display yet", table.Message)
	assert.Empty(t, table.Rows)
}
