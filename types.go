package vectorgrid

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Color implements color.Color, premultiplying on conversion.
type Color struct {
	R, G, B, A float64
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a8 := clamp01(c.A)
	r = uint32(clamp01(c.R)*a8*0xffff + 0.5)
	g = uint32(clamp01(c.G)*a8*0xffff + 0.5)
	b = uint32(clamp01(c.B)*a8*0xffff + 0.5)
	a = uint32(a8*0xffff + 0.5)
	return
}

// WithAlpha returns c with its alpha multiplied by alpha.
func (c Color) WithAlpha(alpha float64) Color {
	c.A *= alpha
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func rgb8(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// Named colors used by the default palette. Values follow the X11 color names.
var (
	ColorRoyalBlue2  = rgb8(67, 110, 238)
	ColorSteelBlue3  = rgb8(79, 148, 205)
	ColorDarkOrchid3 = rgb8(154, 50, 205)
	ColorLightGray   = rgb8(211, 211, 211)
	ColorBlack       = rgb8(0, 0, 0)
	ColorRed         = rgb8(255, 0, 0)
	ColorWhite       = rgb8(255, 255, 255)
)

// Palette groups the colors the controller and resultant engine draw with.
type Palette struct {
	Node      Color // endpoint nodes
	Line      Color // vector shafts and arrowheads
	Label     Color // endpoint coordinate labels
	Resultant Color // resultant shaft, arrowhead and label
}

// DefaultPalette is the palette used when ControllerConfig.Palette is zero.
var DefaultPalette = Palette{
	Node:      ColorRoyalBlue2,
	Line:      ColorSteelBlue3,
	Label:     ColorRoyalBlue2,
	Resultant: ColorDarkOrchid3,
}

// Vec2 is a 2D vector used for positions and offsets in pixel space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// LineStyle describes how a line or arrowhead is stroked.
type LineStyle struct {
	Color Color
	Width float64
	// Dash alternates on/off segment lengths in pixels. Empty means solid.
	Dash []float64
}

// TextStyle describes how a text item is drawn.
type TextStyle struct {
	Color Color
	Size  float64
}
