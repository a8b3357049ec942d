// Package viewport is the interactive viewport engine behind pan/zoom
// walkthroughs: it turns raw multi-pointer input or scripted pan/zoom
// instructions into a single animated view transform, and arbitrates between
// the two so they cannot corrupt each other.
//
// # Quick start
//
// Create an [Engine], give it geometry, and drive it from your frame loop:
//
//	eng := viewport.NewEngine(viewport.DefaultOptions())
//	eng.Resize(800, 600)
//	eng.SetContentSize(1600, 900)
//	eng.AttachInput() // poll Ebitengine mouse/touch/wheel
//
//	// each frame:
//	eng.Update(1.0 / 60)
//	t := eng.Transform() // translate-then-scale, see Transform.Apply
//
// Scripted pan/zoom comes from your timeline or interaction model:
//
//	zoom := 2.0
//	eng.HandleEvent(viewport.ScriptedEvent{
//		ID: "step-3", TargetID: "hotspot-7",
//		ZoomLevel: &zoom, Smooth: true,
//	})
//
// While a scripted event is active the arbiter blocks live gestures; when it
// ends (auto-release after its duration) gestures drive the transform again.
// Call [Engine.Dispose] on teardown so no stale animation tick or arbiter
// countdown outlives the viewport.
//
// # Coordinate convention
//
// Content is letterboxed into the container ([FitBounds]); targets are
// percentages of those bounds ([AnchorPoint]); the produced [Transform] is
// applied translate-then-scale. Overlay consumers must resolve positions
// through the same helpers to stay aligned with the transformed content.
//
// # Pieces
//
// [FitBounds] and [TransformFor] are the pure geometry. [Animator] drives
// smooth transitions (tweens via [gween]). [Recognizer] classifies pointer
// sequences into tap/pan/pinch. [Arbiter] holds the single active scripted
// event. [State] is the shared transform with subscriber callbacks. [Engine]
// wires them together; each piece is also usable on its own.
//
// [gween]: https://github.com/tanema/gween
package viewport
