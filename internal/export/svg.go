package export

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/san-kum/stepviz/internal/step"
	"github.com/san-kum/stepviz/internal/viz"
)

var ErrUnsupported = errors.New("no SVG rendering for this step kind")

const (
	background = "#0a0a0a"
	graphCols  = 48
	graphRows  = 16
)

// Braille dot-to-bit mapping
var pixelMap = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func header(sb *strings.Builder, width, height float64) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))
}

// CanvasToSVG converts a braille canvas to SVG, one circle per lit dot.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}
	var sb strings.Builder
	header(&sb, float64(canvas.Width)*scale*2, float64(canvas.Height)*scale*4)
	writeDots(&sb, canvas, scale, string(viz.CurrentTheme.Muted))
	sb.WriteString("</svg>")
	return sb.String()
}

func writeDots(sb *strings.Builder, canvas *viz.Canvas, scale float64, color string) {
	dotRadius := scale * 0.4
	sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", color))
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			pattern := int(canvas.Dot(col, row) - 0x2800)
			if pattern <= 0 {
				continue
			}
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius))
					}
				}
			}
		}
	}
	sb.WriteString("</g>\n")
}

func arrayColor(s *step.ArrayStep, i int) string {
	t := viz.CurrentTheme
	switch {
	case s.Found == i:
		return string(t.Done)
	case slices.Contains(s.Swapping, i):
		return string(t.Swap)
	case slices.Contains(s.Comparing, i):
		return string(t.Compare)
	case s.Pivot == i:
		return string(t.Accent)
	case slices.Contains(s.Sorted, i):
		return string(t.Done)
	case len(s.Range) == 2 && (i < s.Range[0] || i > s.Range[1]):
		return string(t.Muted)
	}
	return string(t.Primary)
}

// ArrayToSVG draws s as a bar chart. Negative values hang below a zero line.
func ArrayToSVG(s *step.ArrayStep, width, height int) string {
	var sb strings.Builder
	header(&sb, float64(width), float64(height))
	if len(s.Array) > 0 {
		lo, hi := 0, 0
		for _, v := range s.Array {
			lo, hi = min(lo, v), max(hi, v)
		}
		span := float64(hi - lo)
		if span == 0 {
			span = 1
		}
		pad := 10.0
		plotH := float64(height) - 2*pad
		zero := pad + float64(hi)/span*plotH
		slot := (float64(width) - 2*pad) / float64(len(s.Array))
		barW := slot * 0.8

		for i, v := range s.Array {
			h := float64(absInt(v)) / span * plotH
			y := zero - h
			if v < 0 {
				y = zero
			}
			x := pad + float64(i)*slot + (slot-barW)/2
			sb.WriteString(fmt.Sprintf("<rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" fill=\"%s\"/>\n",
				x, y, barW, max(h, 1), arrayColor(s, i)))
		}
		sb.WriteString(fmt.Sprintf("<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"%s\"/>\n",
			pad, zero, float64(width)-pad, zero, viz.CurrentTheme.Muted))
	}
	sb.WriteString("</svg>")
	return sb.String()
}

// GraphToSVG draws the edges as braille dots and labels each node.
func GraphToSVG(s *step.GraphStep, scale float64) string {
	t := viz.CurrentTheme
	canvas, pts := viz.GraphCanvas(s, graphCols, graphRows)

	var sb strings.Builder
	header(&sb, float64(canvas.Width)*scale*2, float64(canvas.Height)*scale*4)
	writeDots(&sb, canvas, scale, string(t.Muted))
	for i, pt := range pts {
		color := t.Text
		switch {
		case i == s.Current:
			color = t.Accent
		case slices.Contains(s.Frontier, i):
			color = t.Compare
		case slices.Contains(s.Visited, i):
			color = t.Done
		}
		cx, cy := float64(pt[0])*scale, float64(pt[1])*scale
		sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"/>\n", cx, cy, scale*3, background))
		sb.WriteString(fmt.Sprintf("<text x=\"%.1f\" y=\"%.1f\" fill=\"%s\" font-family=\"monospace\" font-size=\"%.0f\" text-anchor=\"middle\" dominant-baseline=\"central\">%d</text>\n",
			cx, cy, color, scale*4, i))
	}
	sb.WriteString("</svg>")
	return sb.String()
}

// StepToSVG renders the kinds that have a natural picture: arrays and graphs.
func StepToSVG(s step.Step) (string, error) {
	switch s := s.(type) {
	case *step.ArrayStep:
		return ArrayToSVG(s, 640, 320), nil
	case *step.GraphStep:
		return GraphToSVG(s, 6), nil
	}
	if s == nil {
		return "", ErrUnsupported
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupported, s.Kind())
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
