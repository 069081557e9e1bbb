// Package holdings provides the persistent store for user holdings.
// Holdings arrive from upstream importers or manual entry; prices and
// currency conversion happen before a holding is written here.
package holdings

// Holding represents one position in the portfolio
type Holding struct {
	ID              string  `json:"id"`
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name"`
	Type            string  `json:"type"` // normalized asset type, see asset_types.go
	Shares          float64 `json:"shares"`
	AvgCost         float64 `json:"avg_cost"`
	CurrentPrice    float64 `json:"current_price"`
	TotalValue      float64 `json:"total_value"`
	TotalCost       float64 `json:"total_cost"`
	GainLoss        float64 `json:"gain_loss"`
	GainLossPercent float64 `json:"gain_loss_percent"`
	Sector          string  `json:"sector,omitempty"`
	Platform        string  `json:"platform,omitempty"`
	UpdatedAt       int64   `json:"updated_at"`
}

// recalculate refreshes the derived fields from shares and prices.
// Derived values are stored denormalized so list queries stay cheap.
func (h *Holding) recalculate() {
	h.TotalValue = h.Shares * h.CurrentPrice
	h.TotalCost = h.Shares * h.AvgCost
	h.GainLoss = h.TotalValue - h.TotalCost
	if h.TotalCost > 0 {
		h.GainLossPercent = h.GainLoss / h.TotalCost * 100
	} else {
		h.GainLossPercent = 0
	}
}
