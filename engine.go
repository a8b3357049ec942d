package viewport

// Engine combines the bounds calculator, transform calculator, animator,
// gesture recognizer, and arbiter into one viewport: scripted events resolve
// to target transforms and animate the shared state while gestures are
// blocked; live gestures write deltas directly when they are not.
//
// Everything runs on the caller's frame loop: call Update once per tick and
// Dispose on teardown. Dispose cancels the animator and the arbiter countdown
// so no stale tick can mutate a discarded viewport.
//
// Gestures performed while ShouldBlockGestures is true are silently dropped,
// not queued — the pointer sequence is still tracked so the recognizer stays
// consistent when the block lifts mid-gesture, but no delta reaches the
// state. This matches the long-standing behavior; whether lost gestures
// deserve user feedback is an open product question, so it is preserved here
// rather than changed.
type Engine struct {
	opts       Options
	state      *State
	animator   *Animator
	recognizer *Recognizer
	arbiter    *Arbiter

	containerW, containerH float64
	contentW, contentH     float64
	bounds                 Rect
	boundsOK               bool
	anchors                []Anchor

	input       *inputAdapter
	injectQueue []syntheticPointerEvent

	// OnTap receives taps that were not blocked by a scripted event, in
	// container-relative pixels.
	OnTap func(x, y float64)

	disposed bool
}

// NewEngine creates an Engine with the given options. Zero numeric option
// fields are filled with defaults; boolean toggles are taken as-is.
//
// The engine is not usable for scripted events until both Resize and
// SetContentSize have provided valid geometry; until then events are no-ops
// and may be retried.
func NewEngine(opts Options) *Engine {
	opts = opts.withDefaults()
	e := &Engine{
		opts:       opts,
		state:      NewState(),
		arbiter:    NewArbiter(),
		recognizer: NewRecognizer(opts),
	}
	e.animator = NewAnimator(e.state)

	e.recognizer.Baseline = func() (Vec2, float64) {
		t := e.state.Get()
		return Vec2{X: t.TranslateX, Y: t.TranslateY}, t.Scale
	}
	e.recognizer.OnTap = func(x, y float64) {
		if e.gesturesBlocked() {
			return
		}
		if e.OnTap != nil {
			e.OnTap(x, y)
		}
	}
	e.recognizer.OnPan = func(offset Vec2, scale float64) {
		if e.gesturesBlocked() {
			return
		}
		if e.opts.ConstrainPan {
			offset = e.clampOffset(offset, scale)
		}
		e.state.Set(Transform{Scale: scale, TranslateX: offset.X, TranslateY: offset.Y})
	}
	e.recognizer.OnPinch = func(scale, midX, midY float64) {
		if e.gesturesBlocked() {
			return
		}
		e.ZoomAt(midX, midY, scale)
	}
	return e
}

func (e *Engine) gesturesBlocked() bool {
	return e.disposed || e.arbiter.ShouldBlockGestures()
}

// Resize sets the container size in pixels and recomputes the visible
// content bounds. Call on every container resize.
func (e *Engine) Resize(w, h float64) {
	e.containerW, e.containerH = w, h
	e.refit()
}

// SetContentSize sets the content's intrinsic size and recomputes the
// visible content bounds. Call when content metadata becomes available.
func (e *Engine) SetContentSize(w, h float64) {
	e.contentW, e.contentH = w, h
	e.refit()
}

func (e *Engine) refit() {
	e.bounds, e.boundsOK = FitBounds(e.containerW, e.containerH, e.contentW, e.contentH)
}

// Bounds returns the current visible content bounds. ok is false while the
// geometry is not ready.
func (e *Engine) Bounds() (Rect, bool) {
	return e.bounds, e.boundsOK
}

// SetAnchors replaces the named anchor list used for TargetID resolution.
// The engine reads the slice but never mutates it.
func (e *Engine) SetAnchors(anchors []Anchor) {
	e.anchors = anchors
}

// Transform returns the current view transform.
func (e *Engine) Transform() Transform {
	return e.state.Get()
}

// SetTransform applies a transform directly, bypassing animation, gestures,
// and the arbiter. For external callers that own the viewport outright.
func (e *Engine) SetTransform(t Transform) {
	e.animator.Cancel()
	e.state.Set(t)
}

// OnTransform registers fn to receive every new transform value.
func (e *Engine) OnTransform(fn func(Transform)) Handle {
	return e.state.OnChange(fn)
}

// Arbiter exposes the gesture/event arbiter, for callers that activate
// blocking events outside HandleEvent.
func (e *Engine) Arbiter() *Arbiter {
	return e.arbiter
}

// Recognizer exposes the gesture recognizer, for callers feeding pointer
// events from their own input source.
func (e *Engine) Recognizer() *Recognizer {
	return e.recognizer
}

// Consumed reports whether the current pointer sequence should be withheld
// from ancestor scroll/zoom handling. Always false unless IsolateTouch is
// configured.
func (e *Engine) Consumed() bool {
	return e.opts.IsolateTouch && e.recognizer.Active()
}

// HandleEvent resolves a scripted event into a target transform and drives
// the state toward it, blocking gestures for the event's duration. Starting
// a new event while one is active discards the old one, including its
// auto-release.
//
// While the geometry is not ready this is a no-op (not an error); callers
// may retry on a later frame. An event with neither coordinates nor a
// resolvable TargetID centers on the content.
func (e *Engine) HandleEvent(ev ScriptedEvent) {
	if e.disposed || !e.boundsOK {
		return
	}

	zoom := e.opts.DefaultZoomLevel
	if ev.ZoomLevel != nil {
		zoom = *ev.ZoomLevel
	}
	pctX, pctY := resolveTarget(ev, e.anchors)
	target := TransformFor(pctX, pctY, zoom, e.containerW, e.containerH, e.bounds)

	dur := ev.Duration
	if dur == 0 {
		dur = e.opts.AnimationDuration
	}
	e.arbiter.SetEventActive(ev.Type, ev.ID, true, dur)

	if ev.Smooth {
		e.animator.AnimateTo(target, float32(dur.Seconds()), e.opts.AnimationEasing)
	} else {
		e.animator.SetInstant(target)
	}
}

// ZoomAt applies a user zoom about a container-relative point, clamped to
// [MinScale, MaxScale]. Used by the pinch path and by wheel zoom.
func (e *Engine) ZoomAt(px, py, scale float64) {
	if e.disposed || !e.boundsOK {
		return
	}
	scale = clamp(scale, e.opts.MinScale, e.opts.MaxScale)
	pctX := (px - e.bounds.X) / e.bounds.Width * 100
	pctY := (py - e.bounds.Y) / e.bounds.Height * 100
	e.animator.Cancel()
	e.state.Set(TransformFor(pctX, pctY, scale, e.containerW, e.containerH, e.bounds))
}

// clampOffset restricts a pan offset so the visible area stays within the
// content bounds. If the content is smaller than the view on an axis, the
// content is centered on that axis instead.
func (e *Engine) clampOffset(offset Vec2, scale float64) Vec2 {
	if !e.boundsOK || scale <= 0 {
		return offset
	}
	viewW := e.containerW / scale
	viewH := e.containerH / scale

	// screenX spans [0, containerW] => contentX spans [-tx, viewW-tx].
	minX := viewW - e.bounds.X - e.bounds.Width
	maxX := -e.bounds.X
	if minX > maxX {
		offset.X = viewW/2 - (e.bounds.X + e.bounds.Width/2)
	} else {
		offset.X = clamp(offset.X, minX, maxX)
	}

	minY := viewH - e.bounds.Y - e.bounds.Height
	maxY := -e.bounds.Y
	if minY > maxY {
		offset.Y = viewH/2 - (e.bounds.Y + e.bounds.Height/2)
	} else {
		offset.Y = clamp(offset.Y, minY, maxY)
	}
	return offset
}

// Update advances the engine by dt seconds: injected input, live input (if
// attached), the animator, and the arbiter countdown, in that order.
func (e *Engine) Update(dt float32) {
	if e.disposed {
		return
	}
	consumedInjected := e.processInjectedInput()
	if e.input != nil && !consumedInjected {
		e.input.poll(e)
	}
	e.animator.Update(dt)
	e.arbiter.Update(dt)
}

// Dispose cancels the animator and the arbiter countdown and drops all
// pointers. The engine ignores all calls afterward. Required on teardown:
// a tick that fires after the owning component is gone is a bug, not an
// edge case.
func (e *Engine) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.animator.Cancel()
	e.arbiter.ForceReset()
	e.recognizer.CancelAll()
	e.injectQueue = nil
}
