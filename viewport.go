package viewport

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Vec2 is a 2D vector used for positions, offsets, and deltas throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Transform is the view transform applied to displayed content: translate
// first, then scale. A container-relative content point maps to the screen as
//
//	screen = (content + translate) * scale
//
// Transform is a plain value; the live shared instance is owned by [State].
type Transform struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// Identity is the transform that displays content unmodified.
var Identity = Transform{Scale: 1}

// Apply maps a container-relative content point through the transform to its
// on-screen position. Overlay consumers use this to stay aligned with the
// transformed content.
func (t Transform) Apply(x, y float64) (sx, sy float64) {
	return (x + t.TranslateX) * t.Scale, (y + t.TranslateY) * t.Scale
}

// TouchPoint is one active pointer's position in container-relative pixels.
// Created on pointer-down, discarded on pointer-up or cancel.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// GestureType identifies the gesture a pointer sequence has been classified as.
type GestureType uint8

const (
	GestureNone  GestureType = iota // no pointers down, or not yet classified
	GestureTap                      // press and release without significant movement
	GesturePan                      // single-pointer drag beyond the movement threshold
	GesturePinch                    // two-pointer scale gesture
)

// Anchor is a named, percentage-positioned reference point (e.g. a hotspot)
// that a scripted event may target by identifier instead of explicit
// coordinates. X and Y are percentages of the visible content bounds, in
// [0, 100].
type Anchor struct {
	ID   string
	X, Y float64
}

// ScriptedEvent is a programmatically triggered pan/zoom instruction sourced
// from an external timeline or interaction model. The engine never mutates it.
//
// TargetX/TargetY and ZoomLevel are optional; nil means absent. Resolution
// order for the target point: explicit coordinates, then TargetID against the
// engine's anchor list, then content center (50, 50). A nil ZoomLevel falls
// back to Options.DefaultZoomLevel.
type ScriptedEvent struct {
	// Type and ID identify the event to the arbiter. Starting a new event
	// replaces the previous one wholesale.
	Type string
	ID   string

	TargetID  string
	TargetX   *float64
	TargetY   *float64
	ZoomLevel *float64

	// Smooth selects animated interpolation; false applies the target
	// transform instantly.
	Smooth bool
	// Duration overrides Options.AnimationDuration when non-zero. It also
	// sets how long gestures stay blocked for this event.
	Duration time.Duration
}

// Options is the engine configuration surface. Construct with
// [DefaultOptions] and override fields as needed; zero numeric fields are
// filled with defaults when passed to [NewEngine].
type Options struct {
	// MinScale and MaxScale bound user-driven zoom (pinch and wheel).
	// Scripted zoom is applied as given.
	MinScale float64
	MaxScale float64

	// EnablePan and EnableZoom toggle the corresponding gesture transitions.
	EnablePan  bool
	EnableZoom bool

	// DefaultZoomLevel is used when a scripted event omits its zoom level.
	DefaultZoomLevel float64

	// AnimationDuration is the default scripted-event animation length.
	AnimationDuration time.Duration
	// AnimationEasing maps linear time progress to perceptual progress.
	// Defaults to ease.InOutCubic.
	AnimationEasing ease.TweenFunc

	// MoveThreshold is the movement in pixels beyond which a tap candidate
	// becomes a pan.
	MoveThreshold float64

	// IsolateTouch marks pointer sequences as consumed so an embedding UI
	// can stop them from reaching ancestor scroll/zoom handling.
	IsolateTouch bool

	// ConstrainPan clamps pan so the view cannot be dragged past the
	// content edges. Off by default to match the unconstrained reference
	// behavior.
	ConstrainPan bool
}

// DefaultOptions returns the standard engine configuration: pan and zoom
// enabled, zoom bounded to [0.5, 4], 2x default scripted zoom, 800ms cubic
// ease-in-out animations, and a 10px movement threshold.
func DefaultOptions() Options {
	return Options{
		MinScale:          0.5,
		MaxScale:          4.0,
		EnablePan:         true,
		EnableZoom:        true,
		DefaultZoomLevel:  2.0,
		AnimationDuration: 800 * time.Millisecond,
		AnimationEasing:   ease.InOutCubic,
		MoveThreshold:     10,
	}
}

// withDefaults fills zero-valued numeric fields. Boolean toggles are taken
// as-is: a zero-value Options disables pan and zoom.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MinScale == 0 {
		o.MinScale = d.MinScale
	}
	if o.MaxScale == 0 {
		o.MaxScale = d.MaxScale
	}
	if o.DefaultZoomLevel == 0 {
		o.DefaultZoomLevel = d.DefaultZoomLevel
	}
	if o.AnimationDuration == 0 {
		o.AnimationDuration = d.AnimationDuration
	}
	if o.AnimationEasing == nil {
		o.AnimationEasing = d.AnimationEasing
	}
	if o.MoveThreshold == 0 {
		o.MoveThreshold = d.MoveThreshold
	}
	return o
}

// clamp restricts v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
