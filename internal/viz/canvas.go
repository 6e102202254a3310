package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
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

type Canvas struct {
	Width, Height int
	Grid          [][]rune
	// Colors holds the pen ("#rrggbb") of the last dot set in each cell;
	// empty means the theme foreground.
	Colors [][]string

	pen    string
	labels map[[2]int]rune
}

func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]string, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]string, w)
	}
	c.Clear()
	return c
}

// SubSize is the canvas size in sub-pixels.
func (c *Canvas) SubSize() (w, h int) { return c.Width * 2, c.Height * 4 }

// SetPen sets the colour used by following Set calls.
func (c *Canvas) SetPen(color string) { c.pen = color }

// Set sets a pixel at (x, y) in sub-pixel coordinates.
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
	c.Colors[row][col] = c.pen
}

// IsSet reports whether the sub-pixel is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = ""
		}
	}
	c.labels = nil
}

// Text writes s over the cells starting at (col, row) in the current pen.
// Labels sit above the dots and do not count as lit pixels.
func (c *Canvas) Text(col, row int, s string) {
	if row < 0 || row >= c.Height {
		return
	}
	if c.labels == nil {
		c.labels = make(map[[2]int]rune)
	}
	for _, r := range s {
		if col >= c.Width {
			return
		}
		if col >= 0 {
			c.labels[[2]int{col, row}] = r
			c.Colors[row][col] = c.pen
		}
		col++
	}
}

func (c *Canvas) cell(row, col int) rune {
	if r, ok := c.labels[[2]int{col, row}]; ok {
		return r
	}
	return c.Grid[row][col]
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

// FillCircle lights every sub-pixel within r of (cx, cy). A radius below one
// still lights the centre.
func (c *Canvas) FillCircle(cx, cy, r int) {
	if r < 1 {
		c.Set(cx, cy)
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(cx+dx, cy+dy)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row := range c.Grid {
		for col := range c.Grid[row] {
			b.WriteRune(c.cell(row, col))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Render colours each cell with its pen, batching runs of equal colour.
func (c *Canvas) Render(fg lipgloss.Color) string {
	var b strings.Builder
	for row := range c.Grid {
		start := 0
		for col := 1; col <= c.Width; col++ {
			if col < c.Width && c.Colors[row][col] == c.Colors[row][start] {
				continue
			}
			color := fg
			if pen := c.Colors[row][start]; pen != "" {
				color = lipgloss.Color(pen)
			}
			run := make([]rune, 0, col-start)
			for i := start; i < col; i++ {
				run = append(run, c.cell(row, i))
			}
			b.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(run)))
			start = col
		}
		if row < c.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
