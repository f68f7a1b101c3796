package vectorgrid

import (
	"strconv"
	"strings"
)

// Default grid dimensions, matching the playground's 880x880 window with a
// 40px cell.
const (
	DefaultWidth   = 880
	DefaultHeight  = 880
	DefaultSpacing = 40
)

// Grid maps pixel coordinates to a Cartesian grid centered on the canvas.
// One grid unit equals Spacing pixels. Y grows downward, as on screen.
type Grid struct {
	Width, Height float64
	Spacing       float64
}

// DefaultGrid returns the 880x880, 40px grid.
func DefaultGrid() Grid {
	return Grid{Width: DefaultWidth, Height: DefaultHeight, Spacing: DefaultSpacing}
}

// ToCartesian converts a pixel position to grid units.
func (g Grid) ToCartesian(px, py float64) (fx, fy float64) {
	return ToCartesian(px, py, g.Width, g.Height, g.Spacing)
}

// ToPixel converts grid units back to a pixel position.
func (g Grid) ToPixel(fx, fy float64) (px, py float64) {
	return fx*g.Spacing + g.Width/2, fy*g.Spacing + g.Height/2
}

// Center returns the pixel position of the grid axes, truncated toward zero.
func (g Grid) Center() (cx, cy int) {
	return int(g.Width / 2), int(g.Height / 2)
}

// Origin returns the exact pixel center of the canvas.
func (g Grid) Origin() Vec2 {
	return Vec2{g.Width / 2, g.Height / 2}
}

// Label formats the Cartesian coordinates of pixel position (px, py).
func (g Grid) Label(px, py float64) string {
	return FormatPoint(g.ToCartesian(px, py))
}

// ToCartesian converts pixel (px, py) on a width x height canvas to grid
// units of the given spacing. spacing must be non-zero.
func ToCartesian(px, py, width, height, spacing float64) (fx, fy float64) {
	return (px - width/2) / spacing, (py - height/2) / spacing
}

// FormatPoint renders a coordinate pair as "(x, y)" with each component
// rounded to three decimals. Integral values keep a trailing ".0".
func FormatPoint(fx, fy float64) string {
	b := make([]byte, 0, 24)
	b = append(b, '(')
	b = appendCoord(b, fx)
	b = append(b, ", "...)
	b = appendCoord(b, fy)
	b = append(b, ')')
	return string(b)
}

// appendCoord rounds v to three decimals on its exact binary value, then
// drops trailing zeros down to one.
func appendCoord(b []byte, v float64) []byte {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	if !strings.Contains(s, ".") {
		// Inf or NaN.
		return append(b, s...)
	}
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	if s == "-0.0" {
		s = "0.0"
	}
	return append(b, s...)
}

// GridLine is one line of the grid overlay in pixel space.
type GridLine struct {
	X1, Y1, X2, Y2 float64
	Axis           bool
}

// Lines returns the overlay: light lines every Spacing pixels from the left
// edge up to the center and from the center outward, then the two axes
// through Center.
func (g Grid) Lines() []GridLine {
	step := int(g.Spacing)
	if step <= 0 {
		return nil
	}
	cx, cy := g.Center()
	w, h := int(g.Width), int(g.Height)

	var lines []GridLine
	for _, x := range gridSteps(step, cx, w) {
		lines = append(lines, GridLine{X1: float64(x), Y1: 0, X2: float64(x), Y2: g.Height})
	}
	for _, y := range gridSteps(step, cy, h) {
		lines = append(lines, GridLine{X1: 0, Y1: float64(y), X2: g.Width, Y2: float64(y)})
	}
	lines = append(lines,
		GridLine{X1: float64(cx), Y1: 0, X2: float64(cx), Y2: g.Height, Axis: true},
		GridLine{X1: 0, Y1: float64(cy), X2: g.Width, Y2: float64(cy), Axis: true},
	)
	return lines
}

// gridSteps returns step, 2*step, ... below center, then center+step,
// center+2*step, ... below limit.
func gridSteps(step, center, limit int) []int {
	var out []int
	for v := step; v < center; v += step {
		out = append(out, v)
	}
	for v := center + step; v < limit; v += step {
		out = append(out, v)
	}
	return out
}
