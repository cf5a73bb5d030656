// Package export renders scene snapshots and metric series as SVG.
package export

import (
	"fmt"
	"strings"

	"github.com/imclab/casa/internal/scene"
)

// Panel colors cycle per automaton, matching the live view accents.
var panelColors = []string{"#00ff87", "#5fafff", "#ff5f87", "#ffd75f"}

const (
	panelGap   = 12.0
	background = "#0a0a0a"
)

// SceneSVG draws every automaton grid in the scene as a horizontal strip
// of panels, one filled square per live cell. cellSize is the square edge
// in SVG units.
func SceneSVG(scn *scene.Scene, cellSize float64) string {
	automatons := scn.Automatons()
	if len(automatons) == 0 || cellSize <= 0 {
		return ""
	}

	width := panelGap
	height := 0.0
	for _, a := range automatons {
		side := float64(a.Size()) * cellSize
		width += side + panelGap
		if side+2*panelGap > height {
			height = side + 2*panelGap
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	offsetX := panelGap
	for i, a := range automatons {
		color := panelColors[i%len(panelColors)]
		sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", color))
		d := a.Size()
		for y := 0; y < d; y++ {
			for x := 0; x < d; x++ {
				if a.CellAt(x, y) == 0 {
					continue
				}
				sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, offsetX+float64(x)*cellSize, panelGap+float64(y)*cellSize, cellSize, cellSize))
			}
		}
		sb.WriteString("</g>\n")
		offsetX += float64(d)*cellSize + panelGap
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesSVG plots a metric series, one point per step, as a polyline
// scaled to fit the given canvas.
func SeriesSVG(values []float64, width, height int, stroke string) string {
	if len(values) < 2 || width < 1 || height < 1 {
		return ""
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min
	if span == 0 {
		span = 1
	}
	pad := span * 0.1
	min -= pad
	span += 2 * pad

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, background, stroke))

	stepX := float64(width) / float64(len(values)-1)
	for i, v := range values {
		x := float64(i) * stepX
		y := float64(height) - (v-min)/span*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
