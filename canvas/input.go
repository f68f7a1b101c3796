package canvas

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// PointerHandler receives the left-button gesture events of a Pointer.
// vectorgrid.Controller satisfies it.
type PointerHandler interface {
	OnPress(x, y float64)
	OnDrag(x, y float64)
	OnRelease(x, y float64)
}

// pointerState tracks one press-drag-release gesture.
type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	dragging bool
}

// Pointer turns per-frame mouse state into press, drag, release and hover
// events. Only the left button is tracked. Injected events take priority over
// the real mouse, one per frame.
type Pointer struct {
	handler PointerHandler
	// OnHover is called when the pointer moves with the button up. Optional.
	OnHover func(x, y float64)

	state        pointerState
	dragDeadZone float64
	injectQueue  []queuedPointer
}

// NewPointer creates a pointer delivering to handler.
func NewPointer(handler PointerHandler) *Pointer {
	return &Pointer{handler: handler}
}

// SetDragDeadZone sets the distance in pixels the pointer must travel from the
// press before drag events start. The default 0 reports every movement.
func (p *Pointer) SetDragDeadZone(pixels float64) {
	p.dragDeadZone = pixels
}

// Down reports whether a gesture is in progress.
func (p *Pointer) Down() bool {
	return p.state.down
}

// Position returns the last processed pointer position.
func (p *Pointer) Position() (x, y float64) {
	return p.state.lastX, p.state.lastY
}

// Update reads one event: the next injected event if any are queued,
// otherwise the live mouse.
func (p *Pointer) Update() {
	if p.processInjected() {
		return
	}
	mx, my := ebiten.CursorPosition()
	p.process(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// process runs the gesture state machine for one sample.
func (p *Pointer) process(x, y float64, pressed bool) {
	ps := &p.state

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.dragging = false
		p.handler.OnPress(x, y)

	case !pressed && ps.down:
		ps.down = false
		ps.dragging = false
		ps.lastX, ps.lastY = x, y
		p.handler.OnRelease(x, y)

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		if !ps.dragging {
			dx := x - ps.startX
			dy := y - ps.startY
			if math.Sqrt(dx*dx+dy*dy) > p.dragDeadZone {
				ps.dragging = true
			}
		}
		ps.lastX, ps.lastY = x, y
		if ps.dragging {
			p.handler.OnDrag(x, y)
		}

	default:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		ps.lastX, ps.lastY = x, y
		if p.OnHover != nil {
			p.OnHover(x, y)
		}
	}
}
