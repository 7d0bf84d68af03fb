package viz

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a braille dot grid with text labels drawn over it. Width and
// Height are in terminal cells; dots address a (2*Width)x(4*Height) plane.
type Canvas struct {
	Width, Height int
	dots          [][]rune
	labels        [][]string
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, dots: make([][]rune, h), labels: make([][]string, h)}
	for i := range c.dots {
		c.dots[i] = make([]rune, w)
		c.labels[i] = make([]string, w)
		for j := range c.dots[i] {
			c.dots[i][j] = brailleBlank
		}
	}
	return c
}

// Set lights the dot at sub-cell coordinates (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.dots[row][col] |= rune(pixelMap[y%4][x%2])
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Dot returns the braille rune at cell (col, row), ignoring labels.
func (c *Canvas) Dot(col, row int) rune {
	if row < 0 || row >= c.Height || col < 0 || col >= c.Width {
		return brailleBlank
	}
	return c.dots[row][col]
}

// Label places pre-rendered text at cell (col, row). The label replaces the
// braille cell it starts on and hides the cells it covers.
func (c *Canvas) Label(col, row int, text string, cells int) {
	if row < 0 || row >= c.Height || col < 0 || col >= c.Width {
		return
	}
	c.labels[row][col] = text
	for i := 1; i < cells && col+i < c.Width; i++ {
		c.labels[row][col+i] = "\x00"
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for r, row := range c.dots {
		for col, ch := range row {
			switch l := c.labels[r][col]; l {
			case "":
				b.WriteRune(ch)
			case "\x00":
			default:
				b.WriteString(l)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// circleLayout spreads n nodes evenly on an ellipse inscribed in the canvas
// and returns their dot coordinates, node 0 at the top.
func circleLayout(n, w, h int) [][2]int {
	cx, cy := float64(w*2)/2, float64(h*4)/2
	rx, ry := cx-4, cy-4
	pts := make([][2]int, n)
	for i := range pts {
		a := 2*math.Pi*float64(i)/float64(max(n, 1)) - math.Pi/2
		pts[i] = [2]int{int(cx + rx*math.Cos(a)), int(cy + ry*math.Sin(a))}
	}
	return pts
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
