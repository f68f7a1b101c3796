package vectorgrid

// Handle identifies an item on a DrawSurface. The zero Handle is never issued
// and stands for "absent".
type Handle uint32

// NoHandle is the absent handle.
const NoHandle Handle = 0

// Valid reports whether h refers to an item (it may since have been
// destroyed).
func (h Handle) Valid() bool { return h != NoHandle }

// NodeRadius is the half-size of an endpoint node's bounding box in pixels.
const NodeRadius = 5.0

// DrawSurface is the retained drawing target the controller and resultant
// engine issue primitives to. Implementations must treat operations on
// NoHandle or on destroyed handles as no-ops.
type DrawSurface interface {
	// CreateNode draws an endpoint node centered at (x, y).
	CreateNode(x, y float64, c Color) Handle
	// MoveNode recenters a node at (x, y).
	MoveNode(h Handle, x, y float64)
	// NodeBounds returns the node's bounding box. ok is false when h is not a
	// live node.
	NodeBounds(h Handle) (r Rect, ok bool)

	CreateLine(x1, y1, x2, y2 float64, style LineStyle) Handle
	SetLineCoords(h Handle, x1, y1, x2, y2 float64)

	// CreateArrowhead draws a two-segment chevron at the (x2, y2) end of the
	// shaft from (x1, y1).
	CreateArrowhead(x1, y1, x2, y2 float64, style LineStyle) Handle

	CreateText(x, y float64, text string, style TextStyle) Handle
	SetTextPosition(h Handle, x, y float64)
	SetTextContent(h Handle, text string)

	// Destroy removes an item. Destroying NoHandle or an already destroyed
	// handle does nothing.
	Destroy(h Handle)
}

// DeleteAffordance is the UI control that deletes the selected vector. The
// controller shows it next to the selected node and hides it otherwise;
// invoking the control should call Controller.OnDelete.
type DeleteAffordance interface {
	Show(x, y float64)
	Hide()
}

// nopAffordance is used when the controller is built without a delete control.
type nopAffordance struct{}

func (nopAffordance) Show(x, y float64) {}
func (nopAffordance) Hide()             {}
