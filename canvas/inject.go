package canvas

// queuedPointer is a scripted pointer sample. down reports whether the left
// button is held at (x, y).
type queuedPointer struct {
	x, y float64
	down bool
}

// enqueue appends one sample. Update replays one sample per frame, before and
// instead of the real mouse.
func (p *Pointer) enqueue(x, y float64, down bool) {
	p.injectQueue = append(p.injectQueue, queuedPointer{x: x, y: y, down: down})
}

// InjectPress schedules the button going down at (x, y).
func (p *Pointer) InjectPress(x, y float64) { p.enqueue(x, y, true) }

// InjectMove schedules a held-button move to (x, y). It only drags when a
// press is already scheduled or in progress.
func (p *Pointer) InjectMove(x, y float64) { p.enqueue(x, y, true) }

// InjectRelease schedules the button coming up at (x, y).
func (p *Pointer) InjectRelease(x, y float64) { p.enqueue(x, y, false) }

// InjectClick schedules a press and a release on the same spot, one frame
// each.
func (p *Pointer) InjectClick(x, y float64) {
	p.enqueue(x, y, true)
	p.enqueue(x, y, false)
}

// InjectDrag schedules a gesture from (fromX, fromY) to (toX, toY) spread
// over frames frames. The first frame presses, the last releases and the
// ones between move in equal steps along the segment. frames below 2 is
// treated as 2.
func (p *Pointer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	p.enqueue(fromX, fromY, true)
	for i := 1; i < frames-1; i++ {
		t := float64(i) / float64(frames-1)
		p.enqueue(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t, true)
	}
	p.enqueue(toX, toY, false)
}

// Pending reports how many scripted samples are still waiting.
func (p *Pointer) Pending() int {
	return len(p.injectQueue)
}

// processInjected replays the oldest scripted sample, if any, and reports
// whether it did.
func (p *Pointer) processInjected() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	next := p.injectQueue[0]
	p.injectQueue = p.injectQueue[1:]
	p.process(next.x, next.y, next.down)
	return true
}
