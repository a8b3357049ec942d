package viewport

import "math"

// gestureState is the tagged variant behind the recognizer. Each concrete
// state carries only the fields that state needs, so leaving a state cannot
// strand stale fields.
type gestureState interface {
	gesture() GestureType
}

type idleState struct{}

// tapCandidateState: one pointer down, sequence not yet classified.
type tapCandidateState struct {
	start      TouchPoint // pointer position at pointer-down
	baseOffset Vec2       // pan offset recorded as the gesture baseline
	exceeded   bool       // movement passed the threshold; no tap on release
}

type panState struct {
	start      TouchPoint
	baseOffset Vec2
}

type pinchState struct {
	initialDist float64
	baseScale   float64
}

func (idleState) gesture() GestureType         { return GestureNone }
func (tapCandidateState) gesture() GestureType { return GestureTap }
func (panState) gesture() GestureType          { return GesturePan }
func (pinchState) gesture() GestureType        { return GesturePinch }

// Recognizer classifies raw multi-pointer input into tap, pan, and pinch,
// emitting deltas through its callbacks. It owns the gesture state
// exclusively; all fields reset when the last pointer lifts.
//
// The recognizer is geometry-free: positions go in and come out as
// container-relative pixels. Converting a pinch midpoint to the shared
// percentage convention is the caller's job (see Engine).
type Recognizer struct {
	// Baseline reports the pan offset and scale the next gesture builds on.
	// Read at pointer-down and at pinch start. When nil, gestures build on
	// the identity transform.
	Baseline func() (offset Vec2, scale float64)

	// OnTap fires once when a single-pointer sequence ends without the
	// movement threshold ever being exceeded.
	OnTap func(x, y float64)
	// OnPan fires on every pan move with the resulting offset and the
	// current scale.
	OnPan func(offset Vec2, scale float64)
	// OnPinch fires on every pinch move with the clamped new scale and the
	// pinch midpoint in container-relative pixels.
	OnPinch func(scale float64, midX, midY float64)

	enablePan  bool
	enableZoom bool
	threshold  float64
	minScale   float64
	maxScale   float64

	state   gestureState
	touches []TouchPoint // active pointers in pointer-down order
}

// NewRecognizer creates a Recognizer configured from opts.
func NewRecognizer(opts Options) *Recognizer {
	opts = opts.withDefaults()
	return &Recognizer{
		enablePan:  opts.EnablePan,
		enableZoom: opts.EnableZoom,
		threshold:  opts.MoveThreshold,
		minScale:   opts.MinScale,
		maxScale:   opts.MaxScale,
		state:      idleState{},
	}
}

// Gesture returns the classification of the current pointer sequence.
func (r *Recognizer) Gesture() GestureType {
	return r.state.gesture()
}

// Active reports whether any pointer sequence is in progress.
func (r *Recognizer) Active() bool {
	_, idle := r.state.(idleState)
	return !idle
}

// TouchCount returns the number of active pointers.
func (r *Recognizer) TouchCount() int {
	return len(r.touches)
}

func (r *Recognizer) baseline() (Vec2, float64) {
	if r.Baseline != nil {
		return r.Baseline()
	}
	return Vec2{}, 1
}

func (r *Recognizer) findTouch(id int) int {
	for i := range r.touches {
		if r.touches[i].ID == id {
			return i
		}
	}
	return -1
}

// pinchGeometry returns the inter-pointer distance and midpoint of the first
// two active pointers.
func (r *Recognizer) pinchGeometry() (dist, midX, midY float64) {
	a, b := r.touches[0], r.touches[1]
	dist = math.Hypot(b.X-a.X, b.Y-a.Y)
	return dist, (a.X + b.X) / 2, (a.Y + b.Y) / 2
}

// PointerDown records a new pointer at container-relative (x, y).
func (r *Recognizer) PointerDown(id int, x, y float64) {
	if i := r.findTouch(id); i >= 0 {
		r.touches[i].X, r.touches[i].Y = x, y
		return
	}
	p := TouchPoint{ID: id, X: x, Y: y}
	r.touches = append(r.touches, p)

	switch st := r.state.(type) {
	case idleState:
		offset, _ := r.baseline()
		r.state = tapCandidateState{start: p, baseOffset: offset}
	case tapCandidateState:
		if len(r.touches) == 2 && r.enableZoom {
			r.startPinch()
		} else if len(r.touches) > 1 {
			// Multi-touch without zoom: keep the candidate but never let
			// it resolve to a tap.
			st.exceeded = true
			r.state = st
		}
	case panState:
		if len(r.touches) == 2 && r.enableZoom {
			r.startPinch()
		}
	case pinchState:
		// Additional pointers beyond two are tracked but ignored.
	}
}

func (r *Recognizer) startPinch() {
	dist, _, _ := r.pinchGeometry()
	_, scale := r.baseline()
	r.state = pinchState{initialDist: dist, baseScale: scale}
}

// PointerMove updates a pointer's position and advances the state machine.
// Moves for unknown pointer IDs are ignored.
func (r *Recognizer) PointerMove(id int, x, y float64) {
	i := r.findTouch(id)
	if i < 0 {
		return
	}
	r.touches[i].X, r.touches[i].Y = x, y

	switch st := r.state.(type) {
	case tapCandidateState:
		if id != st.start.ID {
			return
		}
		if math.Hypot(x-st.start.X, y-st.start.Y) > r.threshold {
			if r.enablePan {
				pan := panState{start: st.start, baseOffset: st.baseOffset}
				r.state = pan
				r.emitPan(pan, x, y)
			} else {
				st.exceeded = true
				r.state = st
			}
		}
	case panState:
		if id != st.start.ID {
			return
		}
		r.emitPan(st, x, y)
	case pinchState:
		if len(r.touches) < 2 || st.initialDist <= 0 {
			return
		}
		dist, midX, midY := r.pinchGeometry()
		newScale := clamp(st.baseScale*(dist/st.initialDist), r.minScale, r.maxScale)
		if r.OnPinch != nil {
			r.OnPinch(newScale, midX, midY)
		}
	}
}

func (r *Recognizer) emitPan(st panState, x, y float64) {
	if r.OnPan == nil {
		return
	}
	_, scale := r.baseline()
	r.OnPan(Vec2{
		X: st.baseOffset.X + (x - st.start.X),
		Y: st.baseOffset.Y + (y - st.start.Y),
	}, scale)
}

// PointerUp removes a pointer. The terminating transitions run here: a tap
// candidate whose movement never exceeded the threshold emits exactly one tap
// when its last pointer lifts; a pinch losing one pointer falls back to a tap
// candidate baselined on the remaining pointer.
func (r *Recognizer) PointerUp(id int) {
	i := r.findTouch(id)
	if i < 0 {
		return
	}
	r.touches = append(r.touches[:i], r.touches[i+1:]...)

	switch st := r.state.(type) {
	case tapCandidateState:
		if len(r.touches) == 0 {
			r.state = idleState{}
			if !st.exceeded && id == st.start.ID && r.OnTap != nil {
				r.OnTap(st.start.X, st.start.Y)
			}
		} else if id == st.start.ID {
			// The candidate pointer left but another remains; re-baseline
			// on it. The sequence can still become a pan, never a tap.
			r.rebaseline()
		}
	case panState:
		if len(r.touches) == 0 {
			r.state = idleState{}
		} else if id == st.start.ID {
			r.rebaseline()
		}
	case pinchState:
		switch {
		case len(r.touches) >= 2:
			// A third pointer left; restart the pinch baseline on the
			// remaining pair so scale doesn't jump.
			r.startPinch()
		case len(r.touches) == 1:
			r.rebaseline()
		default:
			r.state = idleState{}
		}
	}
}

// rebaseline re-enters the tap-candidate state on the first remaining
// pointer. The candidate is marked exceeded: a sequence that has already been
// a pan or pinch must not end in a tap.
func (r *Recognizer) rebaseline() {
	offset, _ := r.baseline()
	r.state = tapCandidateState{start: r.touches[0], baseOffset: offset, exceeded: true}
}

// CancelAll drops all pointers and resets to idle without emitting anything.
// Used when the input source reports a cancelled sequence.
func (r *Recognizer) CancelAll() {
	r.touches = r.touches[:0]
	r.state = idleState{}
}
