package vectorgrid

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// fakeAffordance records Show and Hide calls.
type fakeAffordance struct {
	visible bool
	pos     Vec2
	shows   int
	hides   int
}

func (f *fakeAffordance) Show(x, y float64) {
	f.visible = true
	f.pos = Vec2{x, y}
	f.shows++
}

func (f *fakeAffordance) Hide() {
	f.visible = false
	f.hides++
}

// recordingSink collects emitted events.
type recordingSink struct {
	events []VectorEvent
}

func (r *recordingSink) EmitEvent(ev VectorEvent) {
	r.events = append(r.events, ev)
}

func (r *recordingSink) types() []VectorEventType {
	out := make([]VectorEventType, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

func newTestController(cfg ControllerConfig) (*Controller, *MemorySurface, *fakeAffordance) {
	s := NewMemorySurface()
	btn := &fakeAffordance{}
	return NewController(s, btn, cfg), s, btn
}

// drawVector performs a full press/drag/release gesture.
func drawVector(c *Controller, x1, y1, x2, y2 float64) {
	c.OnPress(x1, y1)
	c.OnDrag(x2, y2)
	c.OnRelease(x2, y2)
}

func TestControllerDefaults(t *testing.T) {
	c, _, _ := newTestController(ControllerConfig{})
	if c.Grid() != DefaultGrid() {
		t.Errorf("Grid() = %+v, want default", c.Grid())
	}
	if o := c.Resultant().Origin(); o != (Vec2{440, 440}) {
		t.Errorf("origin = %v, want grid center", o)
	}
	if c.State() != StateIdle {
		t.Errorf("State() = %v, want idle", c.State())
	}
}

func TestControllerOriginAtZero(t *testing.T) {
	c, s, _ := newTestController(ControllerConfig{Origin: &Vec2{}})
	if o := c.Resultant().Origin(); o != (Vec2{}) {
		t.Fatalf("origin = %v, want {0 0}", o)
	}

	drawVector(c, 400, 400, 500, 450)
	if got := c.Resultant().Endpoint(); got != (Vec2{100, 50}) {
		t.Errorf("resultant endpoint = %v, want {100 50}", got)
	}
	line, _, _ := c.Resultant().Handles()
	if diff := cmp.Diff([]Vec2{{0, 0}, {100, 50}}, s.Item(line).Points); diff != "" {
		t.Errorf("resultant line (-want +got):\n%s", diff)
	}
}

func TestControllerNilAffordance(t *testing.T) {
	c := NewController(NewMemorySurface(), nil, ControllerConfig{})
	drawVector(c, 400, 400, 500, 450)
	c.OnPress(400, 400)
	c.OnDelete()
	if c.Store().Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Store().Len())
	}
}

func TestControllerSingleVectorResultant(t *testing.T) {
	c, s, _ := newTestController(ControllerConfig{Origin: &Vec2{440, 440}})
	drawVector(c, 400, 400, 500, 450)

	if c.Store().Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Store().Len())
	}
	v := c.Store().Last()
	if !v.Finalized() {
		t.Fatal("vector not finalized")
	}
	if got := c.Resultant().Endpoint(); got != (Vec2{540, 490}) {
		t.Errorf("resultant endpoint = %v, want {540 490}", got)
	}

	// Line, arrow and labels of the vector.
	if diff := cmp.Diff([]Vec2{{400, 400}, {500, 450}}, s.Item(v.Line).Points); diff != "" {
		t.Errorf("line (-want +got):\n%s", diff)
	}
	if st := s.Item(v.Line).LineStyle; st.Width != 2 || len(st.Dash) != 0 {
		t.Errorf("finalized line style = %+v, want solid width 2", st)
	}
	if got := s.Item(v.StartLabel); got.Text != "(-1.0, -1.0)" || got.Points[0] != (Vec2{410, 390}) {
		t.Errorf("start label = %q at %v", got.Text, got.Points[0])
	}
	if got := s.Item(v.EndLabel); got.Text != "(1.5, 0.25)" || got.Points[0] != (Vec2{510, 440}) {
		t.Errorf("end label = %q at %v", got.Text, got.Points[0])
	}
	if c.State() != StateIdle {
		t.Errorf("State() = %v, want idle", c.State())
	}
}

func TestControllerNoVectorsNoResultant(t *testing.T) {
	c, s, _ := newTestController(ControllerConfig{})

	// Release without a gesture recomputes on an empty list.
	c.OnRelease(100, 100)
	c.OnDrag(100, 100)
	c.OnDelete()

	if c.Resultant().Visible() {
		t.Error("resultant visible with no vectors")
	}
	if s.Len() != 0 {
		t.Errorf("surface has %d items, want 0", s.Len())
	}
}

func TestControllerZeroLengthVector(t *testing.T) {
	c, s, _ := newTestController(ControllerConfig{})
	drawVector(c, 300, 300, 300, 300)

	v := c.Store().Last()
	if v == nil || !v.Finalized() {
		t.Fatal("zero-length vector not finalized")
	}
	for _, p := range s.Item(v.Arrow).Points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Fatalf("arrowhead has NaN point: %v", s.Item(v.Arrow).Points)
		}
	}
	if got := c.Resultant().Endpoint(); got != (Vec2{440, 440}) {
		t.Errorf("resultant endpoint = %v, want origin", got)
	}
}

func TestControllerDragStartNode(t *testing.T) {
	c, s, btn := newTestController(ControllerConfig{})
	drawVector(c, 400, 400, 500, 450)
	v := c.Store().Last()

	c.OnPress(400, 400)
	if c.Store().Selected() != v || c.State() != StateDraggingEndpoint {
		t.Fatalf("press on start node: selected=%v state=%v", c.Store().Selected(), c.State())
	}
	if !btn.visible || btn.pos != (Vec2{415, 415}) {
		t.Errorf("affordance visible=%v at %v, want true at {415 415}", btn.visible, btn.pos)
	}

	// Small steps keep the pointer inside the moving node.
	for _, p := range []Vec2{{402, 401}, {406, 403}, {410, 405}} {
		c.OnDrag(p.X, p.Y)
	}
	c.OnRelease(410, 405)

	if v.Start.Center() != (Vec2{410, 405}) {
		t.Errorf("start = %v, want {410 405}", v.Start.Center())
	}
	if v.End.Center() != (Vec2{500, 450}) {
		t.Errorf("end moved to %v", v.End.Center())
	}
	if diff := cmp.Diff([]Vec2{{410, 405}, {500, 450}}, s.Item(v.Line).Points); diff != "" {
		t.Errorf("line (-want +got):\n%s", diff)
	}
	if tip := s.Item(v.Arrow).Points[0]; tip != (Vec2{500, 450}) {
		t.Errorf("arrow tip = %v", tip)
	}
	if got := s.Item(v.StartLabel); got.Text != "(-0.75, -0.875)" || got.Points[0] != (Vec2{420, 395}) {
		t.Errorf("start label = %q at %v", got.Text, got.Points[0])
	}
	if got := s.Item(v.EndLabel); got.Text != "(1.5, 0.25)" {
		t.Errorf("end label = %q", got.Text)
	}
	if got := c.Resultant().Endpoint(); got != (Vec2{530, 485}) {
		t.Errorf("resultant endpoint = %v, want {530 485}", got)
	}
	// One arrowhead for the vector, one for the resultant.
	if n := s.CountKind(ItemArrowhead); n != 2 {
		t.Errorf("arrowheads = %d, want 2", n)
	}
}

func TestControllerDragOutsideNodesDropped(t *testing.T) {
	c, _, _ := newTestController(ControllerConfig{})
	drawVector(c, 400, 400, 500, 450)
	v := c.Store().Last()

	c.OnPress(500, 450)
	c.OnDrag(600, 600) // outside both nodes
	c.OnRelease(600, 600)

	if v.End.Center() != (Vec2{500, 450}) || v.Start.Center() != (Vec2{400, 400}) {
		t.Errorf("nodes moved: start %v end %v", v.Start.Center(), v.End.Center())
	}
}

func TestControllerStickyGrab(t *testing.T) {
	c, _, _ := newTestController(ControllerConfig{StickyGrab: true})
	drawVector(c, 400, 400, 500, 450)
	v := c.Store().Last()

	c.OnPress(500, 450)
	c.OnDrag(600, 600)
	c.OnRelease(600, 600)

	if v.End.Center() != (Vec2{600, 600}) {
		t.Errorf("end = %v, want {600 600}", v.End.Center())
	}
	if v.Start.Center() != (Vec2{400, 400}) {
		t.Errorf("start moved to %v", v.Start.Center())
	}
}

func TestControllerHitOrder(t *testing.T) {
	c, _, _ := newTestController(ControllerConfig{})
	drawVector(c, 400, 400, 500, 450)
	first := c.Store().Last()
	// The second vector ends inside the first one's end node.
	drawVector(c, 300, 300, 503, 452)

	c.OnPress(501, 451)
	if got := c.Store().Selected(); got != first {
		t.Errorf("overlapping press selected %p, want the first vector %p", got, first)
	}
	c.OnRelease(501, 451)

	if c.Store().Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Store().Len())
	}
}

func TestControllerPreviewLine(t *testing.T) {
	c, s, _ := newTestController(ControllerConfig{})
	c.OnPress(100, 100)
	if c.State() != StateConstructing {
		t.Fatalf("State() = %v, want constructing", c.State())
	}

	c.OnDrag(150, 120)
	c.OnDrag(200, 140)

	v := c.Store().Last()
	if n := s.CountKind(ItemLine); n != 1 {
		t.Fatalf("lines while dragging = %d, want 1 preview", n)
	}
	preview := s.Item(v.Line)
	if diff := cmp.Diff([]Vec2{{100, 100}, {200, 140}}, preview.Points); diff != "" {
		t.Errorf("preview (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{4, 2}, preview.LineStyle.Dash); diff != "" {
		t.Errorf("preview dash (-want +got):\n%s", diff)
	}
	if preview.LineStyle.Width != 1 {
		t.Errorf("preview width = %v, want 1", preview.LineStyle.Width)
	}

	c.OnRelease(200, 140)
	if len(s.Item(v.Line).LineStyle.Dash) != 0 {
		t.Error("finalized line still dashed")
	}
	if n := s.CountKind(ItemLine); n != 2 {
		t.Errorf("lines after release = %d, want vector + resultant", n)
	}
}

func TestControllerPressEmptySpaceDeselects(t *testing.T) {
	c, _, btn := newTestController(ControllerConfig{})
	drawVector(c, 400, 400, 500, 450)
	c.OnPress(400, 400)
	c.OnRelease(400, 400)
	if !btn.visible {
		t.Fatal("affordance hidden after selecting")
	}

	c.OnPress(100, 100)
	if c.Store().Selected() != nil {
		t.Error("selection survived press on empty space")
	}
	if btn.visible {
		t.Error("affordance visible after deselect")
	}
	if c.State() != StateConstructing || c.Store().Len() != 2 {
		t.Errorf("state=%v len=%d, want constructing, 2", c.State(), c.Store().Len())
	}
}

func TestControllerDelete(t *testing.T) {
	c, s, btn := newTestController(ControllerConfig{})
	drawVector(c, 400, 400, 500, 450)
	v := c.Store().Last()
	handles := v.handles()

	c.OnPress(500, 450)
	c.OnRelease(500, 450)
	c.OnDelete()

	if c.Store().Len() != 0 || c.Store().Selected() != nil {
		t.Errorf("Len() = %d selected = %v after delete", c.Store().Len(), c.Store().Selected())
	}
	for _, h := range handles {
		if s.Exists(h) {
			t.Errorf("handle %d survived delete", h)
		}
	}
	if btn.visible {
		t.Error("affordance visible after delete")
	}
	if c.Resultant().Visible() || s.Len() != 0 {
		t.Errorf("resultant visible=%v, surface items=%d after deleting the only vector", c.Resultant().Visible(), s.Len())
	}

	// Delete with nothing selected leaves the store and surface alone.
	drawVector(c, 300, 300, 340, 260)
	liveHandles := func() []Handle {
		var hs []Handle
		s.Items(func(it *Item) { hs = append(hs, it.Handle) })
		return hs
	}
	items, vectors, before := s.Len(), c.Store().Len(), liveHandles()
	hides := btn.hides
	c.OnDelete()
	if s.Len() != items || c.Store().Len() != vectors {
		t.Errorf("surface items %d -> %d, vectors %d -> %d", items, s.Len(), vectors, c.Store().Len())
	}
	if diff := cmp.Diff(before, liveHandles()); diff != "" {
		t.Errorf("live handles changed (-before +after):\n%s", diff)
	}
	if btn.hides != hides {
		t.Error("delete without a selection touched the affordance")
	}
	if got := c.Resultant().Endpoint(); got != (Vec2{480, 400}) {
		t.Errorf("resultant endpoint = %v, want {480 400}", got)
	}
}

func TestControllerDeleteKeepsOthers(t *testing.T) {
	c, _, _ := newTestController(ControllerConfig{})
	drawVector(c, 400, 400, 500, 450)
	drawVector(c, 100, 100, 140, 60)
	first := c.Store().List()[0]

	c.OnPress(140, 60)
	c.OnRelease(140, 60)
	c.OnDelete()

	if c.Store().Len() != 1 || c.Store().List()[0] != first {
		t.Fatalf("remaining = %v, want only the first vector", c.Store().List())
	}
	if got := c.Resultant().Endpoint(); got != (Vec2{540, 490}) {
		t.Errorf("resultant endpoint = %v, want {540 490}", got)
	}
}

func TestControllerDiscardsUnfinished(t *testing.T) {
	sink := &recordingSink{}
	c, s, _ := newTestController(ControllerConfig{EventSink: sink})

	c.OnPress(100, 100)
	c.OnDrag(120, 120)
	stale := c.Store().Last()
	c.OnPress(300, 300) // release never arrived

	if c.Store().Len() != 1 || c.Store().Last() == stale {
		t.Fatalf("store = %v, want only the new vector", c.Store().List())
	}
	if s.CountKind(ItemLine) != 0 || s.CountKind(ItemNode) != 1 {
		t.Errorf("surface lines=%d nodes=%d, want 0, 1", s.CountKind(ItemLine), s.CountKind(ItemNode))
	}
	want := []VectorEventType{EventVectorCreated, EventVectorDiscarded, EventVectorCreated}
	if diff := cmp.Diff(want, sink.types()); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestControllerEvents(t *testing.T) {
	sink := &recordingSink{}
	c, _, _ := newTestController(ControllerConfig{EventSink: sink})

	drawVector(c, 400, 400, 500, 450)
	c.OnPress(500, 450)
	c.OnDrag(502, 451)
	c.OnRelease(502, 451)
	c.OnDelete()

	want := []VectorEventType{
		EventVectorCreated,
		EventVectorFinalized,
		EventResultantChanged,
		EventVectorMoved,
		EventResultantChanged,
		EventVectorDeleted,
		EventResultantChanged,
	}
	if diff := cmp.Diff(want, sink.types()); diff != "" {
		t.Fatalf("events (-want +got):\n%s", diff)
	}

	fin := sink.events[1]
	if fin.Start != (Vec2{400, 400}) || fin.End != (Vec2{500, 450}) {
		t.Errorf("finalized event = %+v", fin)
	}
	if r := sink.events[2]; !r.ResultantVisible || r.Resultant != (Vec2{540, 490}) {
		t.Errorf("resultant event = %+v", r)
	}
	if r := sink.events[6]; r.ResultantVisible {
		t.Errorf("resultant visible after deleting the only vector: %+v", r)
	}

	c.SetEventSink(nil)
	drawVector(c, 10, 10, 20, 20)
	if len(sink.events) != len(want) {
		t.Error("events delivered after SetEventSink(nil)")
	}
}

func TestControllerLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c, _, _ := newTestController(ControllerConfig{Logger: zap.New(core)})

	drawVector(c, 400, 400, 500, 450)

	entries := logs.FilterMessage("vector finalized").All()
	if len(entries) != 1 {
		t.Fatalf("finalized logs = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["dx"] != 100.0 || fields["dy"] != 50.0 {
		t.Errorf("finalized fields = %v", fields)
	}
	if entries[0].LoggerName != "controller" {
		t.Errorf("logger name = %q, want controller", entries[0].LoggerName)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateIdle, "idle"},
		{StateConstructing, "constructing"},
		{StateDraggingEndpoint, "dragging-endpoint"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
