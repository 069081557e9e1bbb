package allocation

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aristath/wealthdeck/internal/modules/holdings"
)

// HoldingSource is the narrow view of the holdings store used here.
type HoldingSource interface {
	List() ([]holdings.Holding, error)
}

// Service builds the aggregated allocation dataset from stored holdings.
type Service struct {
	source HoldingSource
	log    zerolog.Logger
}

// NewService creates a new allocation service
func NewService(source HoldingSource, log zerolog.Logger) *Service {
	return &Service{
		source: source,
		log:    log.With().Str("service", "allocation").Logger(),
	}
}

// Slices groups current holdings into category slices along the given
// dimension and returns them with the total portfolio value. Slice order
// follows the holdings list (value-descending), which fixes the tie-break
// and fallback-color ordering for the aggregation pass.
func (s *Service) Slices(dimension Dimension) ([]CategorySlice, float64, error) {
	all, err := s.source.List()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list holdings: %w", err)
	}

	var total float64
	byLabel := make(map[string]*CategorySlice)
	var order []string

	for _, h := range all {
		total += h.TotalValue

		label := categoryLabel(h, dimension)
		slice, ok := byLabel[label]
		if !ok {
			slice = &CategorySlice{Label: label}
			byLabel[label] = slice
			order = append(order, label)
		}
		slice.Value += h.TotalValue
		slice.CostBasis += h.TotalCost
	}

	slices := make([]CategorySlice, 0, len(order))
	for _, label := range order {
		slices = append(slices, *byLabel[label])
	}
	return slices, total, nil
}

// Aggregated is the one-call variant used by the HTTP handlers and the
// presentation adapters: holdings in, render-ready slices out.
func (s *Service) Aggregated(dimension Dimension) ([]AggregatedSlice, float64, error) {
	slices, total, err := s.Slices(dimension)
	if err != nil {
		return nil, 0, err
	}
	return Aggregate(slices, total), total, nil
}

// categoryLabel picks the bucket label for a holding along a dimension.
func categoryLabel(h holdings.Holding, dimension Dimension) string {
	switch dimension {
	case DimensionSector:
		if h.Sector == "" {
			return "Unknown"
		}
		return h.Sector
	case DimensionPlatform:
		if h.Platform == "" {
			return "Manual"
		}
		return h.Platform
	default:
		return holdings.AssetTypeDisplayName(h.Type)
	}
}
