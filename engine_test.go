package viewport

import (
	"testing"
	"time"
)

// newTestEngine returns an engine with an 800x600 container and 4:3 content,
// so the visible bounds fill the container exactly.
func newTestEngine(opts Options) *Engine {
	e := NewEngine(opts)
	e.Resize(800, 600)
	e.SetContentSize(1600, 1200)
	return e
}

func TestEngineHandleEvent_Instant(t *testing.T) {
	e := newTestEngine(DefaultOptions())
	e.HandleEvent(ScriptedEvent{
		ID: "ev-1", TargetX: fp(50), TargetY: fp(50), ZoomLevel: fp(2),
	})

	want := Transform{Scale: 2, TranslateX: -200, TranslateY: -150}
	if e.Transform() != want {
		t.Errorf("transform = %+v, want %+v", e.Transform(), want)
	}
	if !e.Arbiter().ShouldBlockGestures() {
		t.Error("gestures not blocked during the event")
	}
}

func TestEngineHandleEvent_Smooth(t *testing.T) {
	e := newTestEngine(DefaultOptions())
	e.HandleEvent(ScriptedEvent{
		ID: "ev-1", TargetX: fp(50), TargetY: fp(50), ZoomLevel: fp(2),
		Smooth: true, Duration: time.Second,
	})

	e.Update(0.5)
	mid := e.Transform()
	if mid.Scale <= 1 || mid.Scale >= 2 {
		t.Errorf("mid-flight scale = %f, want strictly between 1 and 2", mid.Scale)
	}
	if !e.Arbiter().IsEvent("ev-1") {
		t.Error("event not active mid-flight")
	}

	e.Update(0.5)
	if !transformsClose(e.Transform(), Transform{Scale: 2, TranslateX: -200, TranslateY: -150}, tweenEps) {
		t.Errorf("final transform = %+v, want {2 -200 -150}", e.Transform())
	}
	if e.Arbiter().IsActive() {
		t.Error("event still active after its duration elapsed")
	}
}

func TestEngineHandleEvent_DefaultZoom(t *testing.T) {
	e := newTestEngine(DefaultOptions())
	e.HandleEvent(ScriptedEvent{ID: "ev-1", TargetX: fp(50), TargetY: fp(50)})
	if e.Transform().Scale != 2 {
		t.Errorf("scale = %f, want DefaultZoomLevel 2", e.Transform().Scale)
	}
}

func TestEngineHandleEvent_AnchorTarget(t *testing.T) {
	e := newTestEngine(DefaultOptions())
	e.SetAnchors([]Anchor{{ID: "hotspot-1", X: 25, Y: 25}})
	e.HandleEvent(ScriptedEvent{ID: "ev-1", TargetID: "hotspot-1", ZoomLevel: fp(2)})

	// Anchor at 25% of 800x600 bounds = (200,150); translate = 400/2-200, 300/2-150.
	want := Transform{Scale: 2, TranslateX: 0, TranslateY: 0}
	if e.Transform() != want {
		t.Errorf("transform = %+v, want %+v", e.Transform(), want)
	}
}

func TestEngineHandleEvent_NotReadyIsNoOp(t *testing.T) {
	e := NewEngine(DefaultOptions())
	e.Resize(800, 600) // content size never provided
	before := e.Transform()
	e.HandleEvent(ScriptedEvent{ID: "ev-1", ZoomLevel: fp(2)})

	if e.Transform() != before {
		t.Errorf("transform changed while geometry not ready: %+v", e.Transform())
	}
	if e.Arbiter().IsActive() {
		t.Error("arbiter activated while geometry not ready")
	}

	// Retry once geometry arrives.
	e.SetContentSize(1600, 1200)
	e.HandleEvent(ScriptedEvent{ID: "ev-1", ZoomLevel: fp(2)})
	if e.Transform() == before {
		t.Error("retry after geometry became ready had no effect")
	}
}

func TestEngineGesturePan(t *testing.T) {
	e := newTestEngine(DefaultOptions())
	e.InjectPress(0, 400, 300)
	e.InjectMove(0, 450, 330)
	e.InjectRelease(0, 450, 330)
	for i := 0; i < 3; i++ {
		e.Update(1.0 / 60)
	}

	want := Transform{Scale: 1, TranslateX: 50, TranslateY: 30}
	if e.Transform() != want {
		t.Errorf("transform = %+v, want %+v", e.Transform(), want)
	}
}

func TestEngineGestureBlockedDuringEvent(t *testing.T) {
	e := newTestEngine(DefaultOptions())
	var taps int
	e.OnTap = func(x, y float64) { taps++ }

	e.HandleEvent(ScriptedEvent{
		ID: "ev-1", ZoomLevel: fp(2), Duration: 10 * time.Second,
	})
	locked := e.Transform()

	e.InjectPress(0, 400, 300)
	e.InjectMove(0, 500, 300)
	e.InjectRelease(0, 500, 300)
	e.InjectTap(100, 100)
	for i := 0; i < 6; i++ {
		e.Update(1.0 / 60)
	}

	if e.Transform() != locked {
		t.Errorf("blocked gesture moved the transform: %+v, want %+v", e.Transform(), locked)
	}
	if taps != 0 {
		t.Errorf("taps during blocked window = %d, want 0 (dropped, not queued)", taps)
	}
}

func TestEngineTapPassthrough(t *testing.T) {
	e := newTestEngine(DefaultOptions())
	var got []Vec2
	e.OnTap = func(x, y float64) { got = append(got, Vec2{X: x, Y: y}) }

	e.InjectTap(123, 456)
	e.Update(0)
	e.Update(0)

	if len(got) != 1 || got[0] != (Vec2{X: 123, Y: 456}) {
		t.Errorf("taps = %v, want one at (123,456)", got)
	}
}

func TestEnginePinchZoomsAtMidpoint(t *testing.T) {
	e := newTestEngine(DefaultOptions())
	e.InjectPress(1, 300, 300)
	e.InjectPress(2, 500, 300) // distance 200, midpoint (400,300)
	e.InjectMove(1, 200, 300)
	e.InjectMove(2, 600, 300) // distance 400: scale 2
	for i := 0; i < 4; i++ {
		e.Update(0)
	}

	tr := e.Transform()
	if tr.Scale != 2 {
		t.Errorf("scale = %f, want 2", tr.Scale)
	}
	// Midpoint (400,300) is 50%/50% of the bounds: centered at zoom 2.
	if !transformsClose(tr, Transform{Scale: 2, TranslateX: -200, TranslateY: -150}, tweenEps) {
		t.Errorf("transform = %+v, want {2 -200 -150}", tr)
	}
}

func TestEngineZoomAtClamped(t *testing.T) {
	e := newTestEngine(DefaultOptions())
	e.ZoomAt(400, 300, 99)
	if e.Transform().Scale != 4 {
		t.Errorf("scale = %f, want MaxScale 4", e.Transform().Scale)
	}
	e.ZoomAt(400, 300, 0.01)
	if e.Transform().Scale != 0.5 {
		t.Errorf("scale = %f, want MinScale 0.5", e.Transform().Scale)
	}
}

func TestEngineZoomAtCancelsAnimation(t *testing.T) {
	e := newTestEngine(DefaultOptions())
	e.HandleEvent(ScriptedEvent{
		ID: "ev-1", ZoomLevel: fp(2), Smooth: true, Duration: time.Second,
	})
	e.Update(0.25)
	e.Arbiter().SetEventInactive() // unblock, then user zooms
	e.ZoomAt(400, 300, 1.5)
	at := e.Transform()
	e.Update(0.5)
	if e.Transform() != at {
		t.Errorf("superseded animation kept ticking: %+v, want %+v", e.Transform(), at)
	}
}

func TestEngineConstrainPan(t *testing.T) {
	opts := DefaultOptions()
	opts.ConstrainPan = true
	e := newTestEngine(opts)

	// At scale 1 the content exactly fills the view: any pan clamps to 0.
	e.InjectPress(0, 400, 300)
	e.InjectMove(0, 450, 330)
	e.InjectRelease(0, 450, 330)
	for i := 0; i < 3; i++ {
		e.Update(0)
	}

	want := Transform{Scale: 1, TranslateX: 0, TranslateY: 0}
	if e.Transform() != want {
		t.Errorf("transform = %+v, want %+v", e.Transform(), want)
	}
}

func TestEngineSetTransformDirect(t *testing.T) {
	e := newTestEngine(DefaultOptions())
	e.HandleEvent(ScriptedEvent{
		ID: "ev-1", ZoomLevel: fp(2), Smooth: true, Duration: time.Second,
	})
	want := Transform{Scale: 1.25, TranslateX: 10, TranslateY: 20}
	e.SetTransform(want)
	e.Update(0.5) // the superseded animation must not resume
	if e.Transform() != want {
		t.Errorf("transform = %+v, want %+v", e.Transform(), want)
	}
}

func TestEngineOnTransformHandle(t *testing.T) {
	e := newTestEngine(DefaultOptions())
	count := 0
	h := e.OnTransform(func(Transform) { count++ })
	e.SetTransform(Transform{Scale: 2})
	h.Remove()
	e.SetTransform(Transform{Scale: 3})
	if count != 1 {
		t.Errorf("subscriber called %d times, want 1", count)
	}
}

func TestEngineDispose(t *testing.T) {
	e := newTestEngine(DefaultOptions())
	var emissions int
	e.OnTransform(func(Transform) { emissions++ })

	e.HandleEvent(ScriptedEvent{
		ID: "ev-1", ZoomLevel: fp(2), Smooth: true, Duration: time.Second,
	})
	e.Update(0.25)
	before := emissions

	e.Dispose()
	e.Update(0.25)
	e.Update(0.25)
	e.HandleEvent(ScriptedEvent{ID: "ev-2", ZoomLevel: fp(3)})

	if emissions != before {
		t.Errorf("emissions after Dispose = %d, want %d (none)", emissions, before)
	}
	if e.Arbiter().IsActive() {
		t.Error("arbiter slot survived Dispose")
	}
	e.Dispose() // idempotent
}

func TestEngineConsumed(t *testing.T) {
	opts := DefaultOptions()
	opts.IsolateTouch = true
	e := newTestEngine(opts)

	if e.Consumed() {
		t.Error("Consumed() = true with no pointer down")
	}
	e.InjectPress(0, 100, 100)
	e.Update(0)
	if !e.Consumed() {
		t.Error("Consumed() = false during a pointer sequence with IsolateTouch")
	}
	e.InjectRelease(0, 100, 100)
	e.Update(0)
	if e.Consumed() {
		t.Error("Consumed() = true after the sequence ended")
	}

	plain := newTestEngine(DefaultOptions())
	plain.InjectPress(0, 100, 100)
	plain.Update(0)
	if plain.Consumed() {
		t.Error("Consumed() = true without IsolateTouch")
	}
}

func TestEngineEventReplacesEvent(t *testing.T) {
	e := newTestEngine(DefaultOptions())
	e.HandleEvent(ScriptedEvent{
		ID: "ev-1", TargetX: fp(10), TargetY: fp(10), ZoomLevel: fp(2),
		Smooth: true, Duration: time.Second,
	})
	e.Update(0.5)
	e.HandleEvent(ScriptedEvent{
		ID: "ev-2", TargetX: fp(90), TargetY: fp(90), ZoomLevel: fp(3),
		Smooth: true, Duration: time.Second,
	})
	for i := 0; i < 4; i++ {
		e.Update(0.25)
	}

	bounds, _ := e.Bounds()
	want := TransformFor(90, 90, 3, 800, 600, bounds)
	if !transformsClose(e.Transform(), want, tweenEps) {
		t.Errorf("final transform = %+v, want second event's target %+v", e.Transform(), want)
	}
	if !e.Arbiter().IsEvent("ev-2") && e.Arbiter().IsActive() {
		t.Error("active slot is not the replacement event")
	}
}
