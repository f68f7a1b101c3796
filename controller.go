package vectorgrid

import "go.uber.org/zap"

// State is the controller's interaction state.
type State uint8

const (
	StateIdle             State = iota // no gesture in progress
	StateConstructing                  // a start node exists, end node pending
	StateDraggingEndpoint              // a node of the selected vector was pressed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConstructing:
		return "constructing"
	case StateDraggingEndpoint:
		return "dragging-endpoint"
	default:
		return "unknown"
	}
}

// Vector drawing parameters.
const (
	vectorLineWidth  = 2.0
	vectorArrowWidth = 2.0
	previewLineWidth = 1.0
	labelSize        = 8.0

	// Offset of the delete affordance from the selected node's center.
	AffordanceOffsetX = 15.0
	AffordanceOffsetY = 15.0
)

// previewDash is the on/off pattern of the line drawn while dragging out a
// new vector.
var previewDash = []float64{4, 2}

// ControllerConfig holds the optional settings for NewController. The zero
// value gives the default 880x880 grid with the resultant drawn from its
// center.
type ControllerConfig struct {
	// Grid converts pixel positions to label coordinates. Zero Spacing means
	// DefaultGrid.
	Grid Grid
	// Origin is where the resultant starts. Nil means the grid center; any
	// non-nil value, (0, 0) included, is used as given.
	Origin *Vec2
	// Palette overrides the drawing colors. A zero Palette means
	// DefaultPalette.
	Palette Palette
	// StickyGrab keeps moving the node pressed at the start of a drag even
	// after the pointer leaves its bounding box. When false, each drag event
	// moves whichever node of the selected vector currently contains the
	// pointer and drops the event if neither does.
	StickyGrab bool
	// Logger receives debug logs for every transition. Nil means no logging.
	Logger *zap.Logger
	// EventSink, when set, receives a VectorEvent for every change.
	EventSink EventSink
}

// Controller is the pointer-event state machine that creates, selects, drags
// and deletes vectors. All methods must be called from a single goroutine,
// each returning before the next event is delivered.
type Controller struct {
	surface   DrawSurface
	button    DeleteAffordance
	store     *VectorStore
	resultant *ResultantEngine
	grid      Grid
	palette   Palette
	sticky    bool
	log       *zap.Logger
	sink      EventSink

	state   State
	grabbed *Node // node pressed at the start of the current gesture
}

// NewController creates a controller drawing on surface. button may be nil
// when no delete control exists.
func NewController(surface DrawSurface, button DeleteAffordance, cfg ControllerConfig) *Controller {
	if button == nil {
		button = nopAffordance{}
	}
	grid := cfg.Grid
	if grid.Spacing == 0 {
		grid = DefaultGrid()
	}
	origin := grid.Origin()
	if cfg.Origin != nil {
		origin = *cfg.Origin
	}
	palette := cfg.Palette
	if palette == (Palette{}) {
		palette = DefaultPalette
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		surface:   surface,
		button:    button,
		store:     NewVectorStore(surface),
		resultant: NewResultantEngine(surface, grid, origin, palette.Resultant),
		grid:      grid,
		palette:   palette,
		sticky:    cfg.StickyGrab,
		log:       log.Named("controller"),
		sink:      cfg.EventSink,
	}
}

// Store returns the controller's vector store.
func (c *Controller) Store() *VectorStore {
	return c.store
}

// Resultant returns the controller's resultant engine.
func (c *Controller) Resultant() *ResultantEngine {
	return c.resultant
}

// Grid returns the grid used for labels.
func (c *Controller) Grid() Grid {
	return c.grid
}

// State returns the current interaction state.
func (c *Controller) State() State {
	return c.state
}

// SetEventSink sets the optional event bridge. Nil disables it.
func (c *Controller) SetEventSink(sink EventSink) {
	c.sink = sink
}

// OnPress handles a pointer press at (x, y). Pressing inside a node selects
// its vector and shows the delete affordance; pressing anywhere else clears
// the selection and starts a new vector there.
func (c *Controller) OnPress(x, y float64) {
	c.discardUnfinished()

	if v, n := c.hitNode(x, y); v != nil {
		c.store.SetSelected(v)
		c.grabbed = n
		c.button.Show(n.X+AffordanceOffsetX, n.Y+AffordanceOffsetY)
		c.state = StateDraggingEndpoint
		c.log.Debug("vector selected", zap.Uint32("vector", v.ID), zap.Float64("x", x), zap.Float64("y", y))
		return
	}

	c.store.SetSelected(nil)
	c.grabbed = nil
	c.button.Hide()

	v := &Vector{ID: nextVectorID(), Start: c.newNode(x, y)}
	c.store.Append(v)
	c.state = StateConstructing
	c.log.Debug("vector started", zap.Uint32("vector", v.ID), zap.Float64("x", x), zap.Float64("y", y))
	c.emit(vectorEvent(EventVectorCreated, v))
}

// OnDrag handles pointer motion while pressed. Without a selection it redraws
// the dashed preview of the vector under construction; with one it moves the
// selected vector's endpoint under the pointer.
func (c *Controller) OnDrag(x, y float64) {
	if sel := c.store.Selected(); sel != nil {
		c.dragSelected(sel, x, y)
		return
	}

	v := c.store.Last()
	if v == nil || v.End != nil {
		return
	}
	start := v.Start.Center()
	c.surface.Destroy(v.Line)
	v.Line = c.surface.CreateLine(start.X, start.Y, x, y, LineStyle{
		Color: c.palette.Line,
		Width: previewLineWidth,
		Dash:  previewDash,
	})
}

// OnRelease handles a pointer release at (x, y). A vector under construction
// is finalized with its end node at the release point. The resultant is
// recomputed after every release.
func (c *Controller) OnRelease(x, y float64) {
	if c.store.Selected() == nil {
		if v := c.store.Last(); v != nil && v.End == nil {
			c.finalize(v, x, y)
		}
	}
	c.grabbed = nil
	c.state = StateIdle
	c.recompute()
}

// OnDelete removes the selected vector with all of its visuals, hides the
// delete affordance and recomputes the resultant. It does nothing when no
// vector is selected.
func (c *Controller) OnDelete() {
	v := c.store.RemoveSelected()
	if v == nil {
		return
	}
	c.grabbed = nil
	c.button.Hide()
	c.state = StateIdle
	c.log.Debug("vector deleted", zap.Uint32("vector", v.ID))
	c.emit(VectorEvent{Type: EventVectorDeleted, VectorID: v.ID})
	c.recompute()
}

// hitNode returns the first vector, in creation order, with a node whose
// bounding box contains (x, y). The start node is tested before the end node.
func (c *Controller) hitNode(x, y float64) (*Vector, *Node) {
	for _, v := range c.store.List() {
		if c.nodeContains(v.Start, x, y) {
			return v, v.Start
		}
		if c.nodeContains(v.End, x, y) {
			return v, v.End
		}
	}
	return nil, nil
}

func (c *Controller) nodeContains(n *Node, x, y float64) bool {
	if n == nil {
		return false
	}
	r, ok := c.surface.NodeBounds(n.Handle)
	if !ok {
		r = n.Bounds()
	}
	return r.Contains(x, y)
}

func (c *Controller) newNode(x, y float64) *Node {
	return &Node{Handle: c.surface.CreateNode(x, y, c.palette.Node), X: x, Y: y}
}

func (c *Controller) dragSelected(v *Vector, x, y float64) {
	if !v.Finalized() {
		return
	}
	var target *Node
	switch {
	case c.sticky && c.grabbed != nil:
		target = c.grabbed
	case c.nodeContains(v.Start, x, y):
		target = v.Start
	case c.nodeContains(v.End, x, y):
		target = v.End
	default:
		return
	}

	target.X, target.Y = x, y
	c.surface.MoveNode(target.Handle, x, y)
	c.refresh(v)
	c.emit(vectorEvent(EventVectorMoved, v))
}

// refresh redraws a finalized vector's line, arrowhead and labels from its
// node positions.
func (c *Controller) refresh(v *Vector) {
	s, e := v.Start.Center(), v.End.Center()
	c.surface.SetLineCoords(v.Line, s.X, s.Y, e.X, e.Y)

	c.surface.Destroy(v.Arrow)
	v.Arrow = c.surface.CreateArrowhead(s.X, s.Y, e.X, e.Y, LineStyle{Color: c.palette.Line, Width: vectorArrowWidth})

	c.surface.SetTextPosition(v.StartLabel, s.X+labelOffsetX, s.Y+labelOffsetY)
	c.surface.SetTextPosition(v.EndLabel, e.X+labelOffsetX, e.Y+labelOffsetY)
	c.surface.SetTextContent(v.StartLabel, c.grid.Label(s.X, s.Y))
	c.surface.SetTextContent(v.EndLabel, c.grid.Label(e.X, e.Y))
}

func (c *Controller) finalize(v *Vector, x, y float64) {
	v.End = c.newNode(x, y)
	s := v.Start.Center()

	c.surface.Destroy(v.Line)
	v.Line = c.surface.CreateLine(s.X, s.Y, x, y, LineStyle{Color: c.palette.Line, Width: vectorLineWidth})
	v.Arrow = c.surface.CreateArrowhead(s.X, s.Y, x, y, LineStyle{Color: c.palette.Line, Width: vectorArrowWidth})
	v.StartLabel = c.newLabel(s.X, s.Y)
	v.EndLabel = c.newLabel(x, y)

	d := v.Delta()
	c.log.Debug("vector finalized",
		zap.Uint32("vector", v.ID),
		zap.Float64("x", x), zap.Float64("y", y),
		zap.Float64("dx", d.X), zap.Float64("dy", d.Y),
	)
	c.emit(vectorEvent(EventVectorFinalized, v))
}

func (c *Controller) newLabel(x, y float64) Handle {
	return c.surface.CreateText(x+labelOffsetX, y+labelOffsetY, c.grid.Label(x, y),
		TextStyle{Color: c.palette.Label, Size: labelSize})
}

// discardUnfinished drops a vector left under construction by a press that
// never saw its release, so at most one vector is ever unfinished.
func (c *Controller) discardUnfinished() {
	v := c.store.Last()
	if v == nil || v.End != nil {
		return
	}
	c.store.remove(v)
	c.log.Debug("unfinished vector discarded", zap.Uint32("vector", v.ID))
	c.emit(VectorEvent{Type: EventVectorDiscarded, VectorID: v.ID})
}

func (c *Controller) recompute() {
	sum, visible := c.resultant.Recompute(c.store.List())
	c.log.Debug("resultant updated",
		zap.Bool("visible", visible),
		zap.Float64("x", sum.X), zap.Float64("y", sum.Y),
		zap.Int("vectors", c.store.Len()),
	)
	c.emit(VectorEvent{Type: EventResultantChanged, Resultant: sum, ResultantVisible: visible})
}

func (c *Controller) emit(ev VectorEvent) {
	if c.sink == nil {
		return
	}
	c.sink.EmitEvent(ev)
}
