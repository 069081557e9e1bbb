// Package performance computes portfolio totals and day-over-day change
// from stored holdings and daily value snapshots.
package performance

// PortfolioTotal aggregates cost basis and current value across all holdings.
type PortfolioTotal struct {
	CostBasis       float64 `json:"cost_basis"`
	CurrentValue    float64 `json:"current_value"`
	GainLoss        float64 `json:"gain_loss"`
	GainLossPercent float64 `json:"gain_loss_percent"` // 0 when cost basis is 0
	HoldingCount    int     `json:"holding_count"`
}

// Snapshot is one recorded portfolio value, one per calendar day.
// Stored msgpack-encoded in history.db.
type Snapshot struct {
	Date       string  `msgpack:"date" json:"date"` // YYYY-MM-DD
	TotalValue float64 `msgpack:"total_value" json:"total_value"`
	TotalCost  float64 `msgpack:"total_cost" json:"total_cost"`
	RecordedAt int64   `msgpack:"recorded_at" json:"recorded_at"`
}

// Change directions as shown next to the chart's center label.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
	DirectionFlat = "flat"
)

// DayChange is the day-over-day delta between the two most recent snapshots.
type DayChange struct {
	Value     float64 `json:"value"`
	Percent   float64 `json:"percent"`
	Direction string  `json:"direction"`
}

// ReturnStats summarizes daily snapshot-to-snapshot returns.
type ReturnStats struct {
	Days       int     `json:"days"`
	MeanReturn float64 `json:"mean_return_pct"`
	Volatility float64 `json:"volatility_pct"`
}
