package viewport

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// wheelZoomStep is the per-notch zoom factor for mouse-wheel zoom.
const wheelZoomStep = 0.1

// inputAdapter polls Ebitengine mouse, touch, and wheel state each frame and
// feeds the recognizer container-relative pointer events. The mouse is
// pointer 0; touches are mapped to slots 1-9 for the lifetime of each touch.
type inputAdapter struct {
	mouseDown          bool
	mouseLastX, mouseLastY float64

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	touchLast    [maxPointers]Vec2
	prevTouchIDs []ebiten.TouchID
}

// AttachInput enables Ebitengine input polling during Update. Without it the
// engine only sees injected events or events fed to Recognizer directly,
// which is what tests and custom input sources want.
func (e *Engine) AttachInput() {
	e.input = &inputAdapter{}
}

func (in *inputAdapter) poll(e *Engine) {
	in.pollMouse(e)
	in.pollWheel(e)
	in.pollTouches(e)
}

func (in *inputAdapter) pollMouse(e *Engine) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	switch {
	case pressed && !in.mouseDown:
		in.mouseDown = true
		e.recognizer.PointerDown(0, x, y)
	case pressed && in.mouseDown:
		if x != in.mouseLastX || y != in.mouseLastY {
			e.recognizer.PointerMove(0, x, y)
		}
	case !pressed && in.mouseDown:
		in.mouseDown = false
		e.recognizer.PointerUp(0)
	}
	in.mouseLastX, in.mouseLastY = x, y
}

// pollWheel zooms about the cursor on mouse-wheel movement, one clamped step
// per notch. Gated like any other gesture.
func (in *inputAdapter) pollWheel(e *Engine) {
	_, wy := ebiten.Wheel()
	if wy == 0 || !e.opts.EnableZoom || e.gesturesBlocked() {
		return
	}
	mx, my := ebiten.CursorPosition()
	cur := e.state.Get().Scale
	e.ZoomAt(float64(mx), float64(my), cur*(1+wheelZoomStep*wy))
}

func (in *inputAdapter) pollTouches(e *Engine) {
	in.prevTouchIDs = ebiten.AppendTouchIDs(in.prevTouchIDs[:0])

	var activeSlots [maxPointers]bool
	for _, tid := range in.prevTouchIDs {
		slot, fresh := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		x, y := float64(tx), float64(ty)
		if fresh {
			e.recognizer.PointerDown(slot, x, y)
		} else if x != in.touchLast[slot].X || y != in.touchLast[slot].Y {
			e.recognizer.PointerMove(slot, x, y)
		}
		in.touchLast[slot] = Vec2{X: x, Y: y}
	}

	// Release slots whose touch has ended.
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !activeSlots[i] {
			in.touchUsed[i] = false
			in.touchMap[i] = 0
			e.recognizer.PointerUp(i)
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9), allocating one
// for new touches. fresh is true when the slot was just allocated. Returns
// slot -1 when all slots are taken.
func (in *inputAdapter) touchSlot(tid ebiten.TouchID) (slot int, fresh bool) {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i, false
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i, true
		}
	}
	return -1, false
}
