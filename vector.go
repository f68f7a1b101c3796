package vectorgrid

// Node is a draggable vector endpoint drawn on the surface.
type Node struct {
	Handle Handle
	X, Y   float64 // center in pixels
}

// Center returns the node's center.
func (n *Node) Center() Vec2 {
	return Vec2{n.X, n.Y}
}

// Bounds returns the node's hit box: its center +/- NodeRadius.
func (n *Node) Bounds() Rect {
	return Rect{X: n.X - NodeRadius, Y: n.Y - NodeRadius, Width: 2 * NodeRadius, Height: 2 * NodeRadius}
}

// vectorIDCounter is a plain counter (no atomic; events are handled on a
// single goroutine).
var vectorIDCounter uint32

func nextVectorID() uint32 {
	vectorIDCounter++
	return vectorIDCounter
}

// Vector is a user-drawn arrow. Vectors are identified by pointer; ID only
// tags logs and events.
//
// End and the four handles Line, Arrow, StartLabel and EndLabel are either all
// set (finalized) or End, Arrow and the labels are all unset (under
// construction). While under construction Line may hold the dashed preview.
type Vector struct {
	ID    uint32
	Start *Node
	End   *Node

	Line       Handle
	Arrow      Handle
	StartLabel Handle
	EndLabel   Handle
}

// Finalized reports whether the vector has its end node and all visuals.
func (v *Vector) Finalized() bool {
	return v.End != nil &&
		v.Line.Valid() && v.Arrow.Valid() &&
		v.StartLabel.Valid() && v.EndLabel.Valid()
}

// Delta returns End - Start. Vectors under construction have a zero delta.
func (v *Vector) Delta() Vec2 {
	if v.Start == nil || v.End == nil {
		return Vec2{}
	}
	return v.End.Center().Sub(v.Start.Center())
}

// handles returns every handle the vector may own, absent ones included.
func (v *Vector) handles() []Handle {
	hs := []Handle{v.Line, v.Arrow, v.StartLabel, v.EndLabel}
	if v.Start != nil {
		hs = append(hs, v.Start.Handle)
	}
	if v.End != nil {
		hs = append(hs, v.End.Handle)
	}
	return hs
}

// release destroys every visual the vector owns and clears its slots.
func (v *Vector) release(surface DrawSurface) {
	for _, h := range v.handles() {
		surface.Destroy(h)
	}
	v.Line, v.Arrow, v.StartLabel, v.EndLabel = NoHandle, NoHandle, NoHandle, NoHandle
	if v.Start != nil {
		v.Start.Handle = NoHandle
	}
	if v.End != nil {
		v.End.Handle = NoHandle
	}
}
