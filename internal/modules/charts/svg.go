package charts

import (
	"fmt"
	"math"
)

// minRenderSweep is the smallest sweep (degrees) a path will draw. Slivers
// below it are widened for rendering only; the segment's stored angles and
// percentage are untouched, so the legend keeps the true value.
const minRenderSweep = 0.5

// fullCircleSweep treats anything this close to 360 as a full ring, which
// needs a two-arc path because a single SVG arc cannot span 360 degrees.
const fullCircleSweep = 360 - 1e-6

// pathData renders a segment as an SVG donut-slice path around the origin.
// Arcs always sweep clockwise through [startAngle, endAngle).
func pathData(seg Segment) string {
	start, end := seg.StartAngle, seg.EndAngle
	sweep := end - start
	if sweep < minRenderSweep {
		end = start + minRenderSweep
		sweep = minRenderSweep
	}

	if sweep >= fullCircleSweep {
		return fullRingPath(seg.InnerRadius, seg.OuterRadius)
	}

	outerStart := polarPoint(start, seg.OuterRadius)
	outerEnd := polarPoint(end, seg.OuterRadius)
	innerEnd := polarPoint(end, seg.InnerRadius)
	innerStart := polarPoint(start, seg.InnerRadius)

	largeArc := 0
	if sweep > 180 {
		largeArc = 1
	}

	// Outer arc clockwise (sweep flag 1), inner arc back counter-clockwise.
	return fmt.Sprintf(
		"M %s A %.3f %.3f 0 %d 1 %s L %s A %.3f %.3f 0 %d 0 %s Z",
		fmtPoint(outerStart),
		seg.OuterRadius, seg.OuterRadius, largeArc, fmtPoint(outerEnd),
		fmtPoint(innerEnd),
		seg.InnerRadius, seg.InnerRadius, largeArc, fmtPoint(innerStart),
	)
}

// fullRingPath draws a complete annulus as two half arcs per edge.
// Used for the degenerate single-slice-at-100% case.
func fullRingPath(inner, outer float64) string {
	top := polarPoint(0, outer)
	bottom := polarPoint(180, outer)
	innerTop := polarPoint(0, inner)
	innerBottom := polarPoint(180, inner)

	return fmt.Sprintf(
		"M %s A %.3f %.3f 0 1 1 %s A %.3f %.3f 0 1 1 %s Z M %s A %.3f %.3f 0 1 0 %s A %.3f %.3f 0 1 0 %s Z",
		fmtPoint(top), outer, outer, fmtPoint(bottom), outer, outer, fmtPoint(top),
		fmtPoint(innerTop), inner, inner, fmtPoint(innerBottom), inner, inner, fmtPoint(innerTop),
	)
}

func fmtPoint(p Point) string {
	return fmt.Sprintf("%.3f %.3f", zeroClean(p.X), zeroClean(p.Y))
}

// zeroClean avoids "-0.000" in emitted paths.
func zeroClean(v float64) float64 {
	if math.Abs(v) < 1e-9 {
		return 0
	}
	return v
}
