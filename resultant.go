package vectorgrid

// Resultant drawing parameters.
const (
	resultantLineWidth  = 1.0
	resultantArrowWidth = 2.0
	resultantLabelSize  = 10.0
	labelOffsetX        = 10.0
	labelOffsetY        = -10.0
)

// Sum returns origin plus the deltas of every finalized vector.
func Sum(origin Vec2, vectors []*Vector) Vec2 {
	sum := origin
	for _, v := range vectors {
		if !v.Finalized() {
			continue
		}
		sum = sum.Add(v.Delta())
	}
	return sum
}

// ResultantEngine draws the sum of all finalized vectors as an arrow from a
// fixed origin. It owns the resultant's line, arrowhead and label.
type ResultantEngine struct {
	surface DrawSurface
	grid    Grid
	origin  Vec2
	color   Color

	line, arrow, label Handle
	endpoint           Vec2
	visible            bool
}

// NewResultantEngine creates an engine drawing on surface from origin. Labels
// are expressed in grid's Cartesian units.
func NewResultantEngine(surface DrawSurface, grid Grid, origin Vec2, c Color) *ResultantEngine {
	return &ResultantEngine{surface: surface, grid: grid, origin: origin, color: c, endpoint: origin}
}

// Origin returns the pixel position the resultant is drawn from.
func (e *ResultantEngine) Origin() Vec2 {
	return e.origin
}

// Endpoint returns the tip of the most recently computed resultant.
func (e *ResultantEngine) Endpoint() Vec2 {
	return e.endpoint
}

// Visible reports whether a resultant is currently drawn.
func (e *ResultantEngine) Visible() bool {
	return e.visible
}

// Handles returns the line, arrowhead and label handles. All are NoHandle
// when nothing is drawn.
func (e *ResultantEngine) Handles() (line, arrow, label Handle) {
	return e.line, e.arrow, e.label
}

// Recompute destroys the previous resultant and, unless vectors is empty,
// draws a new one. Vectors still under construction contribute nothing but
// do count toward "not empty". It returns the tip and whether it is drawn.
func (e *ResultantEngine) Recompute(vectors []*Vector) (Vec2, bool) {
	e.clear()

	sum := Sum(e.origin, vectors)
	e.endpoint = sum
	if len(vectors) == 0 {
		return sum, false
	}

	o := e.origin
	e.line = e.surface.CreateLine(o.X, o.Y, sum.X, sum.Y, LineStyle{Color: e.color, Width: resultantLineWidth})
	e.arrow = e.surface.CreateArrowhead(o.X, o.Y, sum.X, sum.Y, LineStyle{Color: e.color, Width: resultantArrowWidth})
	e.label = e.surface.CreateText(sum.X+labelOffsetX, sum.Y+labelOffsetY, e.grid.Label(sum.X, sum.Y),
		TextStyle{Color: e.color, Size: resultantLabelSize})
	e.visible = true
	return sum, true
}

func (e *ResultantEngine) clear() {
	e.surface.Destroy(e.line)
	e.surface.Destroy(e.arrow)
	e.surface.Destroy(e.label)
	e.line, e.arrow, e.label = NoHandle, NoHandle, NoHandle
	e.visible = false
}
