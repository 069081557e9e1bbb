package allocation

import "strings"

// OtherColor is the reserved neutral color for the synthetic "Other" bucket.
// It is not part of the fallback palette so the bucket never collides with a
// real category.
const OtherColor = "#9CA3AF"

// canonicalColors maps normalized category labels to fixed colors so that
// well-known asset types, account types and sectors always render the same
// regardless of input ordering.
var canonicalColors = map[string]string{
	// Asset types
	"stocks":          "#3B82F6",
	"etfs":            "#6366F1",
	"crypto":          "#F59E0B",
	"bonds":           "#10B981",
	"cash":            "#22C55E",
	"hysa":            "#14B8A6",
	"bank":            "#0EA5E9",
	"home equity":     "#A855F7",
	// Account types
	"roth ira":        "#8B5CF6",
	"traditional ira": "#7C3AED",
	"sep ira":         "#6D28D9",
	"401k":            "#EC4899",
	"529":             "#F472B6",
	"hsa":             "#FB7185",
	// Sectors
	"technology":             "#2563EB",
	"healthcare":             "#059669",
	"financial services":     "#D97706",
	"consumer cyclical":      "#DB2777",
	"consumer defensive":     "#9333EA",
	"energy":                 "#EA580C",
	"industrials":            "#64748B",
	"utilities":              "#0891B2",
	"real estate":            "#65A30D",
	"communication services": "#4F46E5",
	"basic materials":        "#B45309",
	"unknown":                "#94A3B8",
}

// fallbackPalette is cycled through for categories without a canonical color,
// assigned in first-seen order within a single aggregation pass.
var fallbackPalette = []string{
	"#60A5FA",
	"#F97316",
	"#34D399",
	"#E879F9",
	"#FBBF24",
	"#38BDF8",
	"#FB923C",
	"#A78BFA",
	"#4ADE80",
	"#F87171",
}

// ColorResolver assigns colors to category labels. The fallback assignment is
// keyed by first-seen order, so the same input ordering always yields the same
// colors within one pass. A resolver is created per aggregation pass and not
// shared.
type ColorResolver struct {
	assigned map[string]string
	next     int
}

// NewColorResolver creates a resolver with an empty fallback assignment.
func NewColorResolver() *ColorResolver {
	return &ColorResolver{assigned: make(map[string]string)}
}

// Resolve returns the display color for a label. An explicit override always
// wins; otherwise the canonical table is consulted, and unknown labels get the
// next unused color from the cyclic fallback palette. Never fails.
func (r *ColorResolver) Resolve(label, override string) string {
	if override != "" {
		return override
	}

	normalized := strings.ToLower(strings.TrimSpace(label))
	if color, ok := canonicalColors[normalized]; ok {
		return color
	}

	if color, ok := r.assigned[normalized]; ok {
		return color
	}

	color := fallbackPalette[r.next%len(fallbackPalette)]
	r.next++
	r.assigned[normalized] = color
	return color
}
