package viz

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/stepviz/internal/step"
)

const (
	barHeight   = 8
	chartHeight = 4
	graphWidth  = 36
	graphHeight = 12
)

// Render draws one Step on its own. It needs nothing but the Step, so any
// cursor position can be shown without replaying earlier Steps.
func Render(s step.Step, width int) string {
	switch s := s.(type) {
	case *step.ArrayStep:
		return renderArray(s, width)
	case *step.ListStep:
		return renderList(s)
	case *step.GridStep:
		return renderGrid(s)
	case *step.GraphStep:
		return renderGraph(s)
	case *step.StringStep:
		return renderString(s)
	case *step.BitStep:
		return renderBits(s)
	case *step.HashStep:
		return renderHash(s)
	case nil:
		return styles().subtle.Render("(nothing loaded)")
	default:
		return styles().warning.Render(fmt.Sprintf("cannot draw %T", s))
	}
}

func pad(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return strings.Repeat(" ", w-n) + s
	}
	return s
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}

func field(label, value string) string {
	p := styles()
	return p.subtle.Render(fmt.Sprintf("%-10s", label)) + p.text.Render(value)
}

// arrayStyle picks the most specific role of index i.
func arrayStyle(s *step.ArrayStep, i int, p palette) lipgloss.Style {
	switch {
	case slices.Contains(s.Swapping, i):
		return p.swap
	case slices.Contains(s.Comparing, i):
		return p.compare
	case i == s.Found:
		return p.active
	case i == s.Pivot:
		return p.mark
	case slices.Contains(s.Sorted, i):
		return p.done
	case len(s.Range) == 2 && (i < s.Range[0] || i > s.Range[1]):
		return p.subtle
	}
	return p.text
}

func renderArray(s *step.ArrayStep, width int) string {
	p := styles()
	if len(s.Array) == 0 {
		return p.subtle.Render("[ ]")
	}
	cell := 2
	lo, hi := 0, 0
	for _, v := range s.Array {
		cell = max(cell, len(strconv.Itoa(v))+1)
		lo, hi = min(lo, v), max(hi, v)
	}
	span := max(hi-lo, 1)

	var b strings.Builder
	for row := barHeight; row >= 1; row-- {
		for i, v := range s.Array {
			h := (v-lo)*barHeight/span + 1
			bar := strings.Repeat(" ", cell)
			if h >= row {
				bar = " " + strings.Repeat("█", cell-1)
			}
			b.WriteString(arrayStyle(s, i, p).Render(bar))
		}
		b.WriteByte('\n')
	}
	for i, v := range s.Array {
		b.WriteString(arrayStyle(s, i, p).Render(pad(strconv.Itoa(v), cell)))
	}
	b.WriteByte('\n')
	for i := range s.Array {
		b.WriteString(p.subtle.Render(pad(strconv.Itoa(i), cell)))
	}
	b.WriteByte('\n')

	var marks strings.Builder
	for i := range s.Array {
		m := ""
		switch {
		case i == s.Found:
			m = "✓"
		case i == s.Pivot:
			m = "p"
		case len(s.Range) == 2 && i == s.Range[0] && i == s.Range[1]:
			m = "|"
		case len(s.Range) == 2 && i == s.Range[0]:
			m = "["
		case len(s.Range) == 2 && i == s.Range[1]:
			m = "]"
		}
		marks.WriteString(pad(m, cell))
	}
	if strings.TrimSpace(marks.String()) != "" {
		b.WriteString(p.mark.Render(marks.String()) + "\n")
	}

	if len(s.Aux) > 0 {
		label := s.AuxLabel
		if label == "" {
			label = "aux"
		}
		b.WriteString("\n" + field(label, joinInts(s.Aux)) + "\n")
	}

	if len(s.Array) > 1 && width >= 40 {
		series := make([]float64, len(s.Array))
		for i, v := range s.Array {
			series[i] = float64(v)
		}
		chart := asciigraph.Plot(series,
			asciigraph.Height(chartHeight),
			asciigraph.Width(min(max(len(series)*3, 20), width-12)),
			asciigraph.Caption("values"))
		b.WriteString("\n" + p.subtle.Render(chart) + "\n")
	}
	return b.String()
}

func listLabel(s *step.ListStep, i int) string {
	if i < 0 || i >= len(s.Values) {
		return "nil"
	}
	return fmt.Sprintf("[%d]", s.Values[i])
}

func renderList(s *step.ListStep) string {
	p := styles()
	nodeStyle := func(i int) lipgloss.Style {
		switch {
		case slices.Contains(s.Highlight, i):
			return p.swap
		case i == s.Curr:
			return p.active
		case i == s.Ahead:
			return p.compare
		case i == s.Prev:
			return p.mark
		}
		return p.text
	}

	var b strings.Builder
	b.WriteString(p.subtle.Render("head "))
	seen := make([]bool, len(s.Values))
	for i := s.Head; ; {
		if i < 0 || i >= len(s.Values) {
			b.WriteString(p.subtle.Render("nil"))
			break
		}
		if seen[i] {
			b.WriteString(p.warning.Render("↺ " + listLabel(s, i)))
			break
		}
		seen[i] = true
		b.WriteString(nodeStyle(i).Render(listLabel(s, i)) + p.subtle.Render(" → "))
		if i < len(s.Next) {
			i = s.Next[i]
		} else {
			i = -1
		}
	}
	b.WriteString("\n\n")

	for i := range s.Values {
		next := -1
		if i < len(s.Next) {
			next = s.Next[i]
		}
		var tags []string
		if i == s.Prev {
			tags = append(tags, "prev")
		}
		if i == s.Curr {
			tags = append(tags, "curr")
		}
		if i == s.Ahead {
			tags = append(tags, "next")
		}
		line := fmt.Sprintf("%2d %s → %s", i, nodeStyle(i).Render(pad(listLabel(s, i), 6)), listLabel(s, next))
		if len(tags) > 0 {
			line += "  " + p.mark.Render(strings.Join(tags, ","))
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func renderGrid(s *step.GridStep) string {
	p := styles()
	cell := 3
	for _, row := range s.Grid {
		for _, v := range row {
			cell = max(cell, len(strconv.Itoa(v))+1)
		}
	}
	for _, l := range s.ColLabels {
		cell = max(cell, lipgloss.Width(l)+1)
	}
	rowLabel := 0
	for _, l := range s.RowLabels {
		rowLabel = max(rowLabel, lipgloss.Width(l)+1)
	}

	at := func(r, c int) lipgloss.Style {
		cur := step.Cell{Row: r, Col: c}
		switch {
		case s.Active != nil && *s.Active == cur:
			return p.active
		case slices.Contains(s.Compared, cur):
			return p.compare
		case slices.Contains(s.Path, cur):
			return p.done
		}
		return p.text
	}

	var b strings.Builder
	if len(s.ColLabels) > 0 {
		b.WriteString(strings.Repeat(" ", rowLabel))
		for _, l := range s.ColLabels {
			b.WriteString(p.subtle.Render(pad(l, cell)))
		}
		b.WriteByte('\n')
	}
	for r, row := range s.Grid {
		if rowLabel > 0 {
			l := ""
			if r < len(s.RowLabels) {
				l = s.RowLabels[r]
			}
			b.WriteString(p.subtle.Render(fmt.Sprintf("%-*s", rowLabel, l)))
		}
		for c, v := range row {
			b.WriteString(at(r, c).Render(pad(strconv.Itoa(v), cell)))
		}
		b.WriteByte('\n')
	}
	if s.Result != nil {
		b.WriteString("\n" + field("result", strconv.Itoa(*s.Result)) + "\n")
	}
	if len(s.Solution) > 0 {
		b.WriteString(field("solution", joinInts(s.Solution)) + "\n")
	}
	return b.String()
}

// GraphCanvas draws s's edges on a w x h canvas with the nodes on a circle
// and returns the node positions in dot coordinates.
func GraphCanvas(s *step.GraphStep, w, h int) (*Canvas, [][2]int) {
	c := NewCanvas(w, h)
	pts := circleLayout(s.N, w, h)
	for _, e := range s.Edges {
		if e.From < 0 || e.From >= s.N || e.To < 0 || e.To >= s.N {
			continue
		}
		c.DrawLine(pts[e.From][0], pts[e.From][1], pts[e.To][0], pts[e.To][1])
	}
	return c, pts
}

func renderGraph(s *step.GraphStep) string {
	p := styles()
	var b strings.Builder
	if s.Transposed {
		b.WriteString(p.warning.Render("edges reversed") + "\n")
	}

	if s.N > 0 && s.N <= 64 {
		c, pts := GraphCanvas(s, graphWidth, graphHeight)
		for i, pt := range pts {
			label := strconv.Itoa(i)
			st := p.subtle
			switch {
			case i == s.Current:
				st = p.active
			case slices.Contains(s.Frontier, i):
				st = p.compare
			case slices.Contains(s.Visited, i):
				st = p.done
			}
			c.Label(pt[0]/2, pt[1]/4, st.Render(label), len(label))
		}
		b.WriteString(c.String())
	}

	if s.Active != nil {
		arrow := "—"
		if s.Directed {
			arrow = "→"
		}
		w := ""
		if s.Active.Weight != 0 {
			w = fmt.Sprintf(" (w=%d)", s.Active.Weight)
		}
		b.WriteString(field("edge", p.compare.Render(fmt.Sprintf("%d %s %d%s", s.Active.From, arrow, s.Active.To, w))) + "\n")
	}
	if s.Current >= 0 {
		b.WriteString(field("current", strconv.Itoa(s.Current)) + "\n")
	}
	if len(s.Frontier) > 0 {
		b.WriteString(field("frontier", joinInts(s.Frontier)) + "\n")
	}
	if len(s.Order) > 0 {
		b.WriteString(field("order", joinInts(s.Order)) + "\n")
	}
	if len(s.Distances) > 0 {
		parts := make([]string, len(s.Distances))
		for i, d := range s.Distances {
			parts[i] = fmt.Sprintf("%d:%s", i, "∞")
			if d >= 0 {
				parts[i] = fmt.Sprintf("%d:%d", i, d)
			}
		}
		b.WriteString(field("dist", strings.Join(parts, " ")) + "\n")
	}
	for i, comp := range s.Components {
		b.WriteString(field(fmt.Sprintf("scc %d", i), "{"+joinInts(comp)+"}") + "\n")
	}
	return b.String()
}

func renderString(s *step.StringStep) string {
	p := styles()
	text, pat := []rune(s.Text), []rune(s.Pattern)

	inMatch := func(i int) bool {
		for _, m := range s.Matches {
			if i >= m && i < m+len(pat) {
				return true
			}
		}
		return false
	}
	inHighlight := func(i int) bool {
		for _, h := range s.Highlight {
			if i >= h.Start && i < h.End {
				return true
			}
		}
		return false
	}

	var b strings.Builder
	b.WriteString(p.subtle.Render("text    "))
	for i, r := range text {
		st := p.text
		switch {
		case i == s.I:
			st = p.active
		case inHighlight(i):
			st = p.compare
		case inMatch(i):
			st = p.done
		}
		b.WriteString(st.Render(string(r)))
	}
	b.WriteByte('\n')

	offset := 0
	if s.I >= 0 && s.J >= 0 {
		offset = s.I - s.J
	}
	b.WriteString(p.subtle.Render("pattern ") + strings.Repeat(" ", max(offset, 0)))
	for j, r := range pat {
		st := p.mark
		if j == s.J {
			st = p.active
		}
		b.WriteString(st.Render(string(r)))
	}
	b.WriteByte('\n')

	if len(s.Failure) > 0 {
		b.WriteString("\n" + field("failure", joinInts(s.Failure)) + "\n")
	}
	if len(s.Matches) > 0 {
		b.WriteString(field("matches", joinInts(s.Matches)) + "\n")
	}
	return b.String()
}

func renderBits(s *step.BitStep) string {
	p := styles()
	width := min(max(s.Width, 1), 32)
	row := func(v uint32, base lipgloss.Style) string {
		var b strings.Builder
		for i := width - 1; i >= 0; i-- {
			st := base
			if i == s.Bit {
				st = p.active
			}
			b.WriteString(st.Render(strconv.Itoa(int(v>>i&1))) + " ")
		}
		return b.String()
	}

	var b strings.Builder
	var idx strings.Builder
	for i := width - 1; i >= 0; i-- {
		idx.WriteString(strconv.Itoa(i % 10))
		idx.WriteByte(' ')
	}
	b.WriteString(p.subtle.Render("bit   "+idx.String()) + "\n")
	b.WriteString(p.subtle.Render("value ") + row(s.Value, p.text) + p.subtle.Render(fmt.Sprintf(" = %d", s.Value)) + "\n")
	if s.Mask != 0 {
		b.WriteString(p.subtle.Render("mask  ") + row(s.Mask, p.compare) + p.subtle.Render(fmt.Sprintf(" = %d", s.Mask)) + "\n")
	}
	b.WriteString("\n" + field("result", strconv.Itoa(s.Result)) + "\n")
	return b.String()
}

func renderHash(s *step.HashStep) string {
	p := styles()
	var b strings.Builder

	if len(s.Slots) > 0 {
		cell := 4
		for _, sl := range s.Slots {
			cell = max(cell, len(strconv.Itoa(sl.Key))+2)
		}
		var idx, keys strings.Builder
		for i, sl := range s.Slots {
			idx.WriteString(p.subtle.Render(pad(strconv.Itoa(i), cell)))
			var text string
			st := p.text
			switch sl.State {
			case step.SlotEmpty:
				text, st = "·", p.subtle
			case step.SlotTombstone:
				text, st = "✝", p.warning
			default:
				text = strconv.Itoa(sl.Key)
			}
			if i == s.Probe {
				st = p.compare
				if s.Found {
					st = p.active
				}
			}
			keys.WriteString(st.Render(pad(text, cell)))
		}
		b.WriteString(idx.String() + "\n" + keys.String() + "\n")
		if s.Probe >= 0 && s.Probe < len(s.Slots) {
			b.WriteString(strings.Repeat(" ", s.Probe*cell+cell-1) + p.mark.Render("^") + "\n")
		}
	}

	for i, chain := range s.Chains {
		st := p.subtle
		if i == s.Probe {
			st = p.compare
		}
		line := st.Render(fmt.Sprintf("%2d │", i))
		for _, k := range chain {
			ks := p.text
			if k == s.Key && i == s.Probe && s.Found {
				ks = p.active
			}
			line += " " + ks.Render(strconv.Itoa(k)) + p.subtle.Render(" →")
		}
		b.WriteString(line + p.subtle.Render(" nil") + "\n")
	}

	b.WriteString("\n" + field("key", strconv.Itoa(s.Key)))
	b.WriteString("  " + field("probes", strconv.Itoa(s.Probes)))
	if s.Found {
		b.WriteString("  " + p.done.Render("found"))
	}
	b.WriteByte('\n')
	return b.String()
}

// renderCode lists pseudo-code with the given 1-based line highlighted.
func renderCode(code []string, line int) string {
	p := styles()
	var b strings.Builder
	for i, l := range code {
		text := fmt.Sprintf("%2d  %s", i+1, l)
		if i+1 == line {
			b.WriteString(p.codeHi.Render("▸"+text) + "\n")
		} else {
			b.WriteString(p.code.Render(" "+text) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
