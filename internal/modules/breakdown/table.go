// Package breakdown renders the tabular allocation breakdown paired with the
// chart: one row per aggregated slice plus an independently summed Total row.
package breakdown

import (
	"github.com/aristath/wealthdeck/internal/modules/allocation"
	"github.com/aristath/wealthdeck/pkg/format"
)

// Row is one formatted table row. Numeric fields are kept alongside the
// formatted strings so API consumers can re-sort without re-parsing.
type Row struct {
	Label            string  `json:"label"`
	Color            string  `json:"color,omitempty"`
	CostBasis        float64 `json:"cost_basis"`
	CurrentValue     float64 `json:"current_value"`
	GainLoss         float64 `json:"gain_loss"`
	GainLossPercent  float64 `json:"gain_loss_percent"`
	PortfolioPercent float64 `json:"portfolio_percent"`

	CostBasisDisplay        string `json:"cost_basis_display"`
	CurrentValueDisplay     string `json:"current_value_display"`
	GainLossDisplay         string `json:"gain_loss_display"`
	GainLossPercentDisplay  string `json:"gain_loss_percent_display"`
	PortfolioPercentDisplay string `json:"portfolio_percent_display"`
	Direction               string `json:"direction"` // up, down, flat

	IsGrouped    bool `json:"is_grouped,omitempty"`
	GroupedCount int  `json:"grouped_count,omitempty"`
	Focused      bool `json:"focused"`
	Dimmed       bool `json:"dimmed"`
}

// Table is the render-ready breakdown: per-category rows plus the Total row.
type Table struct {
	Rows    []Row  `json:"rows"`
	Total   Row    `json:"total"`
	Empty   bool   `json:"empty"`
	Message string `json:"message,omitempty"`
}

const emptyTableMessage = "No holdings to display yet"

// BuildTable converts aggregated slices into the breakdown table. The Total
// row is summed from the rows themselves, not taken from the caller's total,
// so an aggregation bug shows up as a visible mismatch against the chart's
// center label. focusIndex mirrors the chart focus (-1 for none).
func BuildTable(slices []allocation.AggregatedSlice, focusIndex int) Table {
	if len(slices) == 0 {
		return Table{Empty: true, Message: emptyTableMessage}
	}

	rows := make([]Row, len(slices))
	var totalCost, totalValue, totalPercent float64

	for i, s := range slices {
		row := buildRow(s)
		row.Focused = i == focusIndex
		row.Dimmed = focusIndex >= 0 && i != focusIndex
		rows[i] = row

		totalCost += s.CostBasis
		totalValue += s.Value
		totalPercent += s.Percentage
	}

	total := Row{
		Label:            "Total",
		CostBasis:        totalCost,
		CurrentValue:     totalValue,
		GainLoss:         totalValue - totalCost,
		PortfolioPercent: totalPercent,
	}
	if totalCost > 0 {
		total.GainLossPercent = total.GainLoss / totalCost * 100
	}
	formatRow(&total)

	return Table{Rows: rows, Total: total}
}

func buildRow(s allocation.AggregatedSlice) Row {
	row := Row{
		Label:            s.Label,
		Color:            s.Color,
		CostBasis:        s.CostBasis,
		CurrentValue:     s.Value,
		GainLoss:         s.Value - s.CostBasis,
		PortfolioPercent: s.Percentage,
		IsGrouped:        s.IsGrouped,
		GroupedCount:     s.GroupedCount,
	}
	if s.CostBasis > 0 {
		row.GainLossPercent = row.GainLoss / s.CostBasis * 100
	}
	formatRow(&row)
	return row
}

func formatRow(row *Row) {
	row.CostBasisDisplay = format.Currency(row.CostBasis)
	row.CurrentValueDisplay = format.Currency(row.CurrentValue)
	row.GainLossDisplay = format.SignedCurrency(row.GainLoss)
	row.GainLossPercentDisplay = format.SignedPercent(row.GainLossPercent)
	row.PortfolioPercentDisplay = format.Percent(row.PortfolioPercent)

	switch {
	case row.GainLoss > 0:
		row.Direction = "up"
	case row.GainLoss < 0:
		row.Direction = "down"
	default:
		row.Direction = "flat"
	}
}
