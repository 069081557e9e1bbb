// Package allocation turns categorized portfolio values into the aggregated
// dataset that drives the allocation chart and breakdown table.
package allocation

// CategorySlice is one row of allocation input: a category label and the
// monetary value currently attributed to it. CostBasis is optional and only
// used by the breakdown table; the chart ignores it.
type CategorySlice struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	CostBasis float64 `json:"cost_basis,omitempty"`
	Color     string  `json:"color,omitempty"` // explicit override, wins over resolver
}

// AggregatedSlice is a CategorySlice with derived display fields. It is
// recomputed from scratch on every input change and never persisted.
type AggregatedSlice struct {
	Label        string  `json:"label"`
	Value        float64 `json:"value"`
	CostBasis    float64 `json:"cost_basis"`
	Percentage   float64 `json:"percentage"`
	Color        string  `json:"color"`
	IsGrouped    bool    `json:"is_grouped,omitempty"`
	GroupedCount int     `json:"grouped_count,omitempty"`
}

// Dimension selects how holdings are bucketed into categories.
type Dimension string

const (
	DimensionAssetType Dimension = "asset_type"
	DimensionSector    Dimension = "sector"
	DimensionPlatform  Dimension = "platform"
)

// ParseDimension maps a query-string value to a Dimension, defaulting to
// asset type for unknown values.
func ParseDimension(s string) Dimension {
	switch Dimension(s) {
	case DimensionSector:
		return DimensionSector
	case DimensionPlatform:
		return DimensionPlatform
	default:
		return DimensionAssetType
	}
}
