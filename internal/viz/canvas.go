package viz

import (
	"strings"

	"github.com/mattn/go-runewidth"
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

// Canvas is a braille dot raster with a per-cell color and a text overlay.
// Dot coordinates are sub-pixels: (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]string
	Text          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]string, h),
		Text:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]string, w)
		c.Text[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) DotsWide() int { return c.Width * 2 }
func (c *Canvas) DotsHigh() int { return c.Height * 4 }

// Set lights the dot at (x, y) and tags its cell with color.
func (c *Canvas) Set(x, y int, color string) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][col] = color
}

// Unset clears a dot.
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

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
			c.Text[i][j] = 0
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, color string) {
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
		c.Set(x0, y0, color)
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

// FillEllipse lights every dot inside the axis-aligned ellipse.
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, color string) {
	if rx <= 0 || ry <= 0 {
		c.Set(round(cx), round(cy), color)
		return
	}
	for y := int(cy - ry); y <= int(cy+ry)+1; y++ {
		for x := int(cx - rx); x <= int(cx+rx)+1; x++ {
			nx := (float64(x) - cx) / rx
			ny := (float64(y) - cy) / ry
			if nx*nx+ny*ny <= 1 {
				c.Set(x, y, color)
			}
		}
	}
}

// Ellipse traces the outline with enough segments to close small gaps.
func (c *Canvas) Ellipse(cx, cy, rx, ry float64, color string) {
	n := int(2*(rx+ry)) + 8
	px, py := round(cx+rx), round(cy)
	for i := 1; i <= n; i++ {
		a := float64(i) / float64(n) * 2 * pi
		x, y := round(cx+rx*cos(a)), round(cy+ry*sin(a))
		c.DrawLine(px, py, x, y, color)
		px, py = x, y
	}
}

func (c *Canvas) FillRect(x0, y0, x1, y1 int, color string) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.Set(x, y, color)
		}
	}
}

// FillPolygon uses the even-odd rule, sampling each dot center.
func (c *Canvas) FillPolygon(xs, ys []float64, color string) {
	if len(xs) < 3 || len(xs) != len(ys) {
		return
	}
	minX, maxX, minY, maxY := xs[0], xs[0], ys[0], ys[0]
	for i := range xs {
		minX, maxX = min(minX, xs[i]), max(maxX, xs[i])
		minY, maxY = min(minY, ys[i]), max(maxY, ys[i])
	}
	for y := int(minY); y <= int(maxY)+1; y++ {
		for x := int(minX); x <= int(maxX)+1; x++ {
			if inside(xs, ys, float64(x), float64(y)) {
				c.Set(x, y, color)
			}
		}
	}
	// keep thin shapes visible
	for i := range xs {
		j := (i + 1) % len(xs)
		c.DrawLine(round(xs[i]), round(ys[i]), round(xs[j]), round(ys[j]), color)
	}
}

// PutText writes s into the overlay starting at cell (col, row). Wide runes
// occupy two cells.
func (c *Canvas) PutText(col, row int, s, color string) {
	if row < 0 || row >= c.Height {
		return
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= 0 && col+w <= c.Width {
			c.Text[row][col] = r
			c.Colors[row][col] = color
			for k := 1; k < w; k++ {
				c.Text[row][col+k] = -1
			}
		}
		col += w
	}
}

// Cell returns the rune displayed at (col, row); text wins over dots.
// A zero rune marks the tail of a wide character.
func (c *Canvas) Cell(col, row int) rune {
	switch t := c.Text[row][col]; {
	case t > 0:
		return t
	case t < 0:
		return 0
	}
	return c.Grid[row][col]
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row := range c.Grid {
		for col := range c.Grid[row] {
			if r := c.Cell(col, row); r != 0 {
				b.WriteRune(r)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func inside(xs, ys []float64, x, y float64) bool {
	in := false
	for i, j := 0, len(xs)-1; i < len(xs); j, i = i, i+1 {
		if (ys[i] > y) != (ys[j] > y) &&
			x < (xs[j]-xs[i])*(y-ys[i])/(ys[j]-ys[i])+xs[i] {
			in = !in
		}
	}
	return in
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
