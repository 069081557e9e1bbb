// Package charts builds the radial allocation chart: segment geometry from
// aggregated slices, plus the chart view served to the dashboard.
package charts

import (
	"math"

	"github.com/aristath/wealthdeck/internal/modules/allocation"
)

// Geometry constants. Radii are in the chart's own coordinate units; the
// frontend scales the viewBox, so only the ratios matter.
const (
	baseInnerRadius = 60.0
	baseOuterRadius = 100.0
	// focusRadiusBoost enlarges both radii of the focused segment so it pops
	// without affecting the angular layout of its neighbours.
	focusRadiusBoost = 8.0
	// labelRadiusOffset places the label anchor beyond the outer edge.
	labelRadiusOffset = 16.0
	// labelMinPercent suppresses inline labels on slivers; they still appear
	// in the legend/table.
	labelMinPercent = 3.0
	// dimmedOpacity is applied to non-focused segments while a focus is active.
	dimmedOpacity = 0.45

	// angleSnap absorbs cumulative floating-point error on the final segment
	// so the ring closes without a seam.
	angleSnap = 0.01
)

// Point is a label anchor position relative to the chart center.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment describes one radial segment, render-ready.
// Angles are degrees 0-360, clockwise from 12 o'clock.
type Segment struct {
	Index        int     `json:"index"`
	Label        string  `json:"label"`
	Value        float64 `json:"value"`
	Percentage   float64 `json:"percentage"`
	Color        string  `json:"color"`
	StartAngle   float64 `json:"start_angle"`
	EndAngle     float64 `json:"end_angle"`
	InnerRadius  float64 `json:"inner_radius"`
	OuterRadius  float64 `json:"outer_radius"`
	LabelAnchor  Point   `json:"label_anchor"`
	ShowLabel    bool    `json:"show_label"`
	LargeArc     bool    `json:"large_arc"`
	Focused      bool    `json:"focused"`
	Opacity      float64 `json:"opacity"`
	IsGrouped    bool    `json:"is_grouped,omitempty"`
	GroupedCount int     `json:"grouped_count,omitempty"`
	Path         string  `json:"path"`
}

// BuildSegments converts aggregated slices into contiguous radial segments.
// focusIndex is the focused segment's index, or -1 for no focus. Segments
// sweep clockwise starting at 12 o'clock; the final end angle is snapped to
// the full cumulative sweep so floating-point error never opens a seam.
func BuildSegments(slices []allocation.AggregatedSlice, focusIndex int) []Segment {
	if len(slices) == 0 {
		return nil
	}

	segments := make([]Segment, len(slices))
	cumulative := 0.0

	for i, s := range slices {
		start := cumulative / 100 * 360
		end := (cumulative + s.Percentage) / 100 * 360
		cumulative += s.Percentage

		seg := Segment{
			Index:        i,
			Label:        s.Label,
			Value:        s.Value,
			Percentage:   s.Percentage,
			Color:        s.Color,
			StartAngle:   start,
			EndAngle:     end,
			InnerRadius:  baseInnerRadius,
			OuterRadius:  baseOuterRadius,
			ShowLabel:    s.Percentage > labelMinPercent,
			LargeArc:     end-start > 180,
			Opacity:      1.0,
			IsGrouped:    s.IsGrouped,
			GroupedCount: s.GroupedCount,
		}

		if i == focusIndex {
			seg.Focused = true
			seg.InnerRadius += focusRadiusBoost
			seg.OuterRadius += focusRadiusBoost
		} else if focusIndex >= 0 {
			seg.Opacity = dimmedOpacity
		}

		segments[i] = seg
	}

	// Snap the final edge to 360 when rounding left it a hair off.
	last := &segments[len(segments)-1]
	if math.Abs(last.EndAngle-360) < angleSnap {
		last.EndAngle = 360
		last.LargeArc = last.EndAngle-last.StartAngle > 180
	}

	for i := range segments {
		seg := &segments[i]
		mid := (seg.StartAngle + seg.EndAngle) / 2
		seg.LabelAnchor = polarPoint(mid, seg.OuterRadius+labelRadiusOffset)
		seg.Path = pathData(*seg)
	}

	return segments
}

// polarPoint converts a clockwise-from-12-o'clock angle (degrees) and radius
// into chart coordinates (y grows downward, matching SVG).
func polarPoint(angleDeg, radius float64) Point {
	rad := angleDeg * math.Pi / 180
	return Point{
		X: radius * math.Sin(rad),
		Y: -radius * math.Cos(rad),
	}
}
