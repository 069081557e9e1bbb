package allocation

import "sort"

const (
	// maxSlices is the cardinality threshold above which the tail is folded
	// into the "Other" bucket.
	maxSlices = 6
	// keepTop is how many leading slices survive folding.
	keepTop = 5

	// OtherLabel names the synthetic bucket holding the folded tail.
	OtherLabel = "Other"
)

// Aggregate converts raw category slices into the ordered, percentage-based
// dataset shared by the chart and the breakdown table.
//
// Slices with a non-positive value are dropped. A non-positive total or an
// empty (post-filter) input yields nil, which callers render as the empty
// state. Output is sorted descending by value with input order breaking ties,
// and when more than maxSlices categories remain the lowest-value tail is
// folded into a single "Other" slice appended last. Caller data is never
// mutated.
func Aggregate(slices []CategorySlice, total float64) []AggregatedSlice {
	if total <= 0 || len(slices) == 0 {
		return nil
	}

	resolver := NewColorResolver()

	filtered := make([]AggregatedSlice, 0, len(slices))
	for _, s := range slices {
		if s.Value <= 0 {
			continue
		}
		filtered = append(filtered, AggregatedSlice{
			Label:      s.Label,
			Value:      s.Value,
			CostBasis:  s.CostBasis,
			Percentage: s.Value / total * 100,
			Color:      resolver.Resolve(s.Label, s.Color),
		})
	}

	if len(filtered) == 0 {
		return nil
	}

	// Stable sort keeps equal-value categories in input order, so output is
	// deterministic for identical input.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Value > filtered[j].Value
	})

	if len(filtered) <= maxSlices {
		return filtered
	}

	// Fold entries keepTop..N into the "Other" bucket. The bucket is always
	// appended last regardless of its magnitude: it represents heterogeneous
	// residual mass, not a single comparable category.
	other := AggregatedSlice{
		Label:     OtherLabel,
		Color:     OtherColor,
		IsGrouped: true,
	}
	for _, s := range filtered[keepTop:] {
		other.Value += s.Value
		other.CostBasis += s.CostBasis
		other.GroupedCount++
	}
	other.Percentage = other.Value / total * 100

	result := make([]AggregatedSlice, keepTop, keepTop+1)
	copy(result, filtered[:keepTop])
	return append(result, other)
}
