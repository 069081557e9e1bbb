package charts

import (
	"github.com/rs/zerolog"

	"github.com/aristath/wealthdeck/internal/modules/allocation"
	"github.com/aristath/wealthdeck/internal/modules/performance"
	"github.com/aristath/wealthdeck/pkg/format"
)

// DayChangeView is the formatted day-over-day change for the center label.
type DayChangeView struct {
	Value     float64 `json:"value"`
	Percent   float64 `json:"percent"`
	Display   string  `json:"display"` // "+$123.45 (+1.23%)"
	Direction string  `json:"direction"`
	Arrow     string  `json:"arrow"`
}

// CenterSummary is the text block rendered inside the ring.
type CenterSummary struct {
	TotalValue   float64        `json:"total_value"`
	TotalDisplay string         `json:"total_display"`
	DayChange    *DayChangeView `json:"day_change,omitempty"`
}

// ChartView is the render-ready chart: segments plus center summary, or an
// explicit empty state.
type ChartView struct {
	Segments []Segment     `json:"segments"`
	Center   CenterSummary `json:"center"`
	Empty    bool          `json:"empty"`
	Message  string        `json:"message,omitempty"`
}

const emptyChartMessage = "No holdings to display yet"

// Service assembles chart views from aggregated allocation data.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new charts service
func NewService(log zerolog.Logger) *Service {
	return &Service{log: log.With().Str("service", "charts").Logger()}
}

// BuildChart produces the chart view for the given aggregated slices and
// focus state. A nil/empty slice list or non-positive total renders the empty
// state instead of dividing by zero.
func (s *Service) BuildChart(
	slices []allocation.AggregatedSlice,
	total float64,
	focusIndex int,
	dayChange *performance.DayChange,
) ChartView {
	if len(slices) == 0 || total <= 0 {
		return ChartView{Empty: true, Message: emptyChartMessage}
	}

	view := ChartView{
		Segments: BuildSegments(slices, focusIndex),
		Center: CenterSummary{
			TotalValue:   total,
			TotalDisplay: format.Currency(total),
		},
	}

	if dayChange != nil {
		view.Center.DayChange = &DayChangeView{
			Value:     dayChange.Value,
			Percent:   dayChange.Percent,
			Display:   format.SignedCurrency(dayChange.Value) + " (" + format.SignedPercent(dayChange.Percent) + ")",
			Direction: dayChange.Direction,
			Arrow:     changeArrow(dayChange.Direction),
		}
	}

	return view
}

func changeArrow(direction string) string {
	switch direction {
	case performance.DirectionUp:
		return "▲"
	case performance.DirectionDown:
		return "▼"
	}
	return "–"
}
