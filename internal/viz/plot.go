// Package viz renders diffusion profiles in the terminal: static
// asciigraph plots for stored runs and a bubbletea live view that steps
// the field sweep by sweep.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/diffsim/internal/grid"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

// Profile renders a single field as an ASCII line plot.
func Profile(f grid.Field, caption string) string {
	return asciigraph.Plot(f,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// ComparePlot overlays the initial and final profiles of a run.
func ComparePlot(initial, final grid.Field, caption string) string {
	return asciigraph.PlotMany([][]float64{initial, final},
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Default),
	)
}

// Scatter draws a parametric x/y trace as an ASCII scatter plot. Points
// early in the trace render as '.', the middle third as 'o', the final
// third as '●'.
func Scatter(xData, yData []float64, width, height int) string {
	if len(xData) == 0 || len(xData) != len(yData) {
		return ""
	}

	xMin, xMax := xData[0], xData[0]
	yMin, yMax := yData[0], yData[0]
	for i := range xData {
		if xData[i] < xMin {
			xMin = xData[i]
		}
		if xData[i] > xMax {
			xMax = xData[i]
		}
		if yData[i] < yMin {
			yMin = yData[i]
		}
		if yData[i] > yMax {
			yMax = yData[i]
		}
	}

	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i := range xData {
		px := int(float64(width-1) * (xData[i] - xMin) / xRange)
		py := int(float64(height-1) * (yData[i] - yMin) / yRange)
		py = height - 1 - py
		if px < 0 || px >= width || py < 0 || py >= height {
			continue
		}
		switch {
		case i < len(xData)/3:
			canvas[py][px] = '.'
		case i < 2*len(xData)/3:
			canvas[py][px] = 'o'
		default:
			canvas[py][px] = '●'
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %.2f ┌%s┐\n", yMax, strings.Repeat("─", width))
	for i := range canvas {
		if i == height/2 {
			fmt.Fprintf(&b, "  %.2f │", (yMax+yMin)/2)
		} else {
			b.WriteString("       │")
		}
		b.WriteString(string(canvas[i]))
		b.WriteString("│\n")
	}
	fmt.Fprintf(&b, "  %.2f └%s┘\n", yMin, strings.Repeat("─", width))
	fmt.Fprintf(&b, "       %.2f%s%.2f\n", xMin, strings.Repeat(" ", max(width-20, 1)), xMax)
	return b.String()
}
