package viewport

type syntheticKind uint8

const (
	syntheticPress syntheticKind = iota
	syntheticMove
	syntheticRelease
)

// syntheticPointerEvent is a single injected pointer event in
// container-relative coordinates, fed through the recognizer exactly like
// live input.
type syntheticPointerEvent struct {
	kind      syntheticKind
	pointerID int
	x, y      float64
}

// InjectPress queues a pointer press for the given pointer id. One injected
// event is consumed per Update call, so sequences play out across frames the
// way live input does.
func (e *Engine) InjectPress(pointerID int, x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{
		kind: syntheticPress, pointerID: pointerID, x: x, y: y,
	})
}

// InjectMove queues a pointer move for the given pointer id.
func (e *Engine) InjectMove(pointerID int, x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{
		kind: syntheticMove, pointerID: pointerID, x: x, y: y,
	})
}

// InjectRelease queues a pointer release for the given pointer id.
func (e *Engine) InjectRelease(pointerID int, x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{
		kind: syntheticRelease, pointerID: pointerID, x: x, y: y,
	})
}

// InjectTap queues a press followed by a release at the same point on
// pointer 0. Consumes two frames.
func (e *Engine) InjectTap(x, y float64) {
	e.InjectPress(0, x, y)
	e.InjectRelease(0, x, y)
}

// InjectDrag queues a full drag on pointer 0: press at (fromX, fromY),
// linearly interpolated moves, release at (toX, toY). The sequence consumes
// `frames` frames; minimum is 2 (press + release).
func (e *Engine) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	e.InjectPress(0, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		// The last move lands exactly on the destination; release position
		// is not part of the gesture.
		t := float64(i) / float64(steps)
		e.InjectMove(0, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	e.InjectRelease(0, toX, toY)
}

// InjectPinch queues a two-pointer pinch: pointers 1 and 2 press at a0/b0,
// move in interpolated steps to a1/b1, then release. Injected events drain
// one per frame, so the two pointers' moves interleave like real touches.
func (e *Engine) InjectPinch(a0, b0, a1, b1 Vec2, frames int) {
	if frames < 4 {
		frames = 4
	}
	e.InjectPress(1, a0.X, a0.Y)
	e.InjectPress(2, b0.X, b0.Y)
	steps := (frames - 4) / 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		e.InjectMove(1, a0.X+(a1.X-a0.X)*t, a0.Y+(a1.Y-a0.Y)*t)
		e.InjectMove(2, b0.X+(b1.X-b0.X)*t, b0.Y+(b1.Y-b0.Y)*t)
	}
	e.InjectMove(1, a1.X, a1.Y)
	e.InjectMove(2, b1.X, b1.Y)
	e.InjectRelease(1, a1.X, a1.Y)
	e.InjectRelease(2, b1.X, b1.Y)
}

// processInjectedInput pops one queued event and feeds it to the recognizer.
// Returns true if an event was consumed; live polled input is skipped that
// frame so injected sequences aren't perturbed.
func (e *Engine) processInjectedInput() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	switch evt.kind {
	case syntheticPress:
		e.recognizer.PointerDown(evt.pointerID, evt.x, evt.y)
	case syntheticMove:
		e.recognizer.PointerMove(evt.pointerID, evt.x, evt.y)
	case syntheticRelease:
		e.recognizer.PointerUp(evt.pointerID)
	}
	return true
}
