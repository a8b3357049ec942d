package viewport

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptStep represents a single action in an interaction script.
type scriptStep struct {
	Action string `json:"action"`

	// pointer geometry (container-relative pixels)
	Pointer int     `json:"pointer,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`

	// scripted event fields
	ID         string   `json:"id,omitempty"`
	Target     string   `json:"target,omitempty"`
	TargetX    *float64 `json:"targetX,omitempty"`
	TargetY    *float64 `json:"targetY,omitempty"`
	Zoom       *float64 `json:"zoom,omitempty"`
	Smooth     bool     `json:"smooth,omitempty"`
	DurationMS int      `json:"durationMs,omitempty"`
}

// interactionScript is the top-level JSON structure.
type interactionScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences scripted events and injected pointer input across
// frames, for automated interaction testing of an Engine. Call Step once per
// frame before Engine.Update.
//
// Supported actions: "press", "move", "release" (raw pointer events), "tap",
// "drag", "pinch", "event", and "wait".
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON interaction script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script interactionScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse interaction script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse interaction script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed and drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame.
func (r *ScriptRunner) Step(e *Engine) {
	if r.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(e.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		e.InjectPress(st.Pointer, st.X, st.Y)
	case "move":
		e.InjectMove(st.Pointer, st.X, st.Y)
	case "release":
		e.InjectRelease(st.Pointer, st.X, st.Y)
	case "tap":
		e.InjectTap(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		e.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "pinch":
		e.InjectPinch(
			Vec2{X: st.FromX, Y: st.FromY}, Vec2{X: st.ToX, Y: st.ToY},
			Vec2{X: st.FromX + st.X, Y: st.FromY + st.Y}, Vec2{X: st.ToX - st.X, Y: st.ToY - st.Y},
			st.Frames)
	case "event":
		e.HandleEvent(ScriptedEvent{
			Type:      "script",
			ID:        st.ID,
			TargetID:  st.Target,
			TargetX:   st.TargetX,
			TargetY:   st.TargetY,
			ZoomLevel: st.Zoom,
			Smooth:    st.Smooth,
			Duration:  time.Duration(st.DurationMS) * time.Millisecond,
		})
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0 {
		r.done = true
	}
}
