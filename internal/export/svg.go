package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/reactorsim/internal/reactor"
	"github.com/san-kum/reactorsim/internal/stats"
)

var seriesStroke = []string{"#3b82f6", "#ef4444", "#eab308"}

// SVG draws the three concentration series as polylines over a shared range,
// padded by 10% on each axis.
func SVG(tr *reactor.Trajectory, width, height int) (string, error) {
	if tr == nil || tr.Len() < 2 {
		return "", fmt.Errorf("svg: need at least two samples")
	}
	minY, maxY, err := stats.Bounds(tr.Series()...)
	if err != nil {
		return "", err
	}
	minX, maxX := tr.Times[0], tr.Times[tr.Len()-1]

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for s, series := range tr.Series() {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" data-series="C%d" d="M`, seriesStroke[s], s+1))
		for i, v := range series {
			x := (tr.Times[i] - minX) / rangeX * float64(width)
			y := float64(height) - (v-minY)/rangeY*float64(height)

			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String(), nil
}
