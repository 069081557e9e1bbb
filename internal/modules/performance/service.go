package performance

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/aristath/wealthdeck/internal/modules/holdings"
)

// HoldingSource is the narrow view of the holdings store used here.
type HoldingSource interface {
	List() ([]holdings.Holding, error)
}

// Service computes portfolio totals and day-over-day change.
type Service struct {
	source    HoldingSource
	snapshots *SnapshotRepository
	log       zerolog.Logger
}

// NewService creates a new performance service
func NewService(source HoldingSource, snapshots *SnapshotRepository, log zerolog.Logger) *Service {
	return &Service{
		source:    source,
		snapshots: snapshots,
		log:       log.With().Str("service", "performance").Logger(),
	}
}

// Totals sums cost basis and current value across all holdings.
// GainLossPercent is 0 when the cost basis is 0.
func (s *Service) Totals() (PortfolioTotal, error) {
	all, err := s.source.List()
	if err != nil {
		return PortfolioTotal{}, fmt.Errorf("failed to list holdings: %w", err)
	}
	return ComputeTotals(all), nil
}

// ComputeTotals aggregates totals over a holdings list.
func ComputeTotals(all []holdings.Holding) PortfolioTotal {
	costs := make([]float64, len(all))
	values := make([]float64, len(all))
	for i, h := range all {
		costs[i] = h.TotalCost
		values[i] = h.TotalValue
	}

	total := PortfolioTotal{
		CostBasis:    floats.Sum(costs),
		CurrentValue: floats.Sum(values),
		HoldingCount: len(all),
	}
	total.GainLoss = total.CurrentValue - total.CostBasis
	if total.CostBasis > 0 {
		total.GainLossPercent = total.GainLoss / total.CostBasis * 100
	}
	return total
}

// DayChange computes the change between the two most recent snapshots.
// Returns nil when fewer than two snapshots exist or the earlier value is 0;
// the chart then omits the day-change line entirely.
func (s *Service) DayChange() (*DayChange, error) {
	latest, err := s.snapshots.Latest(2)
	if err != nil {
		return nil, err
	}
	if len(latest) < 2 || latest[1].TotalValue <= 0 {
		return nil, nil
	}

	change := DayChange{
		Value:     latest[0].TotalValue - latest[1].TotalValue,
		Percent:   (latest[0].TotalValue - latest[1].TotalValue) / latest[1].TotalValue * 100,
		Direction: DirectionFlat,
	}
	switch {
	case change.Value > 0:
		change.Direction = DirectionUp
	case change.Value < 0:
		change.Direction = DirectionDown
	}
	return &change, nil
}

// RecordSnapshot stores today's portfolio value. Called by the daily
// scheduler job and after holdings mutations.
func (s *Service) RecordSnapshot() error {
	total, err := s.Totals()
	if err != nil {
		return err
	}

	now := time.Now()
	return s.snapshots.Record(Snapshot{
		Date:       now.Format("2006-01-02"),
		TotalValue: total.CurrentValue,
		TotalCost:  total.CostBasis,
		RecordedAt: now.Unix(),
	})
}

// ReturnStats summarizes day-over-day snapshot returns over the last n days.
func (s *Service) ReturnStats(n int) (ReturnStats, error) {
	snapshots, err := s.snapshots.Latest(n)
	if err != nil {
		return ReturnStats{}, err
	}
	if len(snapshots) < 2 {
		return ReturnStats{Days: len(snapshots)}, nil
	}

	// Snapshots come most recent first; returns are computed oldest to newest.
	var returns []float64
	for i := len(snapshots) - 1; i > 0; i-- {
		prev := snapshots[i].TotalValue
		if prev <= 0 {
			continue
		}
		returns = append(returns, (snapshots[i-1].TotalValue-prev)/prev*100)
	}
	if len(returns) == 0 {
		return ReturnStats{Days: len(snapshots)}, nil
	}

	result := ReturnStats{
		Days:       len(snapshots),
		MeanReturn: stat.Mean(returns, nil),
	}
	if len(returns) > 1 {
		result.Volatility = stat.StdDev(returns, nil)
	}
	return result, nil
}
