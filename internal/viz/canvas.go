package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/reactorsim/internal/reactor"
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

const blank = 0x2800

// Canvas is a grid of Braille cells. Each cell remembers the last series
// that touched it so the plot can be coloured per series.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Owner         [][]int

	pen int
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Owner:  make([][]int, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Owner[i] = make([]int, w)
	}
	c.Clear()
	return c
}

// SetPen selects the series index recorded for subsequent pixels.
func (c *Canvas) SetPen(series int) {
	c.pen = series
}

// Set sets a pixel at (x, y) in sub-pixel coordinates. The canvas size in
// sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Owner[row][col] = c.pen
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Owner[i][j] = -1
		}
	}
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

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render returns the canvas with each cell styled by its owning series.
func (c *Canvas) Render(styles []lipgloss.Style) string {
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			owner := c.Owner[i][j]
			if owner >= 0 && owner < len(styles) {
				b.WriteString(styles[owner].Render(string(r)))
			} else {
				b.WriteRune(r)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// PlotTrajectory draws C1, C2 and C3 against time on a w x h cell canvas.
// All series share the vertical range from stats.Bounds.
func PlotTrajectory(tr *reactor.Trajectory, w, h int) (*Canvas, error) {
	lo, hi, err := bounds(tr)
	if err != nil {
		return nil, err
	}
	t0, t1 := tr.Times[0], tr.Times[tr.Len()-1]

	c := NewCanvas(w, h)
	px := float64(w*2 - 1)
	py := float64(h*4 - 1)

	toX := func(t float64) int {
		if t1 == t0 {
			return 0
		}
		return int(math.Round((t - t0) / (t1 - t0) * px))
	}
	toY := func(v float64) int {
		if hi == lo {
			return int(py / 2)
		}
		return int(math.Round(py - (v-lo)/(hi-lo)*py))
	}

	for s, series := range tr.Series() {
		c.SetPen(s)
		prevX, prevY := toX(tr.Times[0]), toY(series[0])
		c.Set(prevX, prevY)
		for i := 1; i < tr.Len(); i++ {
			x, y := toX(tr.Times[i]), toY(series[i])
			c.DrawLine(prevX, prevY, x, y)
			prevX, prevY = x, y
		}
	}
	return c, nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
