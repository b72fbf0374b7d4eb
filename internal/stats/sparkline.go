package stats

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Sparkline rendering defaults.
const (
	sparkColor    = "hsl(18, 72%, 42%)"
	sparkPadTop   = 10.0
	sparkPadWave  = 20.0
	DefaultWidth  = 600
	DefaultHeight = 120
)

type point struct {
	x, y float64
}

// SparklineSVG renders the daily series as a smoothed area+line chart,
// scaled to fill the given pixel box. The curve uses quadratic midpoint
// interpolation between points. An empty series renders a placeholder
// message instead of an empty chart.
func SparklineSVG(data []decimal.Decimal, width, height int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	if len(data) == 0 {
		return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" `+
			`font-family="sans-serif" font-size="13" fill="#888">No data yet</text></svg>`,
			width, height, width, height)
	}

	w := float64(width)
	h := float64(height)

	// Scale against min/max, always including zero in the range.
	maxV, minV := 0.0, 0.0
	for _, d := range data {
		v, _ := d.Float64()
		if v > maxV {
			maxV = v
		}
		if v < minV {
			minV = v
		}
	}
	rng := maxV - minV
	if rng == 0 {
		rng = 1
	}

	denom := float64(len(data) - 1)
	if denom == 0 {
		denom = 1
	}
	points := make([]point, len(data))
	for i, d := range data {
		v, _ := d.Float64()
		points[i] = point{
			x: float64(i) / denom * w,
			y: h - (v-minV)/rng*(h-sparkPadWave) - sparkPadTop,
		}
	}

	line := curvePath(points)

	var area strings.Builder
	fmt.Fprintf(&area, "M %.2f %.2f L %.2f %.2f", points[0].x, h, points[0].x, points[0].y)
	appendCurve(&area, points)
	fmt.Fprintf(&area, " L %.2f %.2f Z", points[len(points)-1].x, h)

	var svg strings.Builder
	fmt.Fprintf(&svg, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height)
	svg.WriteString(`<defs><linearGradient id="spark-fill" x1="0" y1="0" x2="0" y2="1">`)
	fmt.Fprintf(&svg, `<stop offset="0" stop-color="%s" stop-opacity="0.3"/>`, sparkColor)
	fmt.Fprintf(&svg, `<stop offset="1" stop-color="%s" stop-opacity="0"/>`, sparkColor)
	svg.WriteString(`</linearGradient></defs>`)
	fmt.Fprintf(&svg, `<path d="%s" fill="url(#spark-fill)" stroke="none"/>`, area.String())
	fmt.Fprintf(&svg, `<path d="%s" fill="none" stroke="%s" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"/>`,
		line, sparkColor)
	svg.WriteString(`</svg>`)
	return svg.String()
}

func curvePath(points []point) string {
	var b strings.Builder
	fmt.Fprintf(&b, "M %.2f %.2f", points[0].x, points[0].y)
	appendCurve(&b, points)
	return b.String()
}

// appendCurve emits quadratic segments through the midpoints between
// successive samples, mirroring canvas quadraticCurveTo smoothing.
func appendCurve(b *strings.Builder, points []point) {
	for i := 1; i < len(points); i++ {
		prev := points[i-1]
		p := points[i]
		midX := (prev.x + p.x) / 2
		midY := (prev.y + p.y) / 2
		fmt.Fprintf(b, " Q %.2f %.2f %.2f %.2f", prev.x, prev.y, midX, midY)
		fmt.Fprintf(b, " Q %.2f %.2f %.2f %.2f", p.x, p.y, p.x, p.y)
	}
}
