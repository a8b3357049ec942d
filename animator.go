package viewport

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animator drives a State from its current transform toward a target
// transform over time, or applies a target instantly.
//
// The most recently started animation wins: AnimateTo supersedes any
// animation already in flight, starting from the current live transform (not
// the previously intended target). There is no queue. Call Cancel before
// discarding the owning engine — a tick that fires after teardown would
// mutate a dead viewport's state.
type Animator struct {
	state  *State
	tweens [3]*gween.Tween // scale, translateX, translateY
	active bool
}

// NewAnimator creates an Animator writing to the given state.
func NewAnimator(state *State) *Animator {
	return &Animator{state: state}
}

// AnimateTo starts interpolating from the state's current transform to target
// over duration seconds using the easing function. Any in-flight animation is
// discarded first.
func (a *Animator) AnimateTo(target Transform, duration float32, fn ease.TweenFunc) {
	if duration <= 0 {
		a.SetInstant(target)
		return
	}
	cur := a.state.Get()
	a.tweens[0] = gween.New(float32(cur.Scale), float32(target.Scale), duration, fn)
	a.tweens[1] = gween.New(float32(cur.TranslateX), float32(target.TranslateX), duration, fn)
	a.tweens[2] = gween.New(float32(cur.TranslateY), float32(target.TranslateY), duration, fn)
	a.active = true
}

// SetInstant cancels any in-flight animation and applies target immediately.
// No further ticks follow.
func (a *Animator) SetInstant(target Transform) {
	a.Cancel()
	a.state.Set(target)
}

// Cancel stops the in-flight animation, leaving the state at its last emitted
// value. Idempotent. Required on consumer teardown.
func (a *Animator) Cancel() {
	a.active = false
	a.tweens = [3]*gween.Tween{}
}

// Animating reports whether an animation is in flight.
func (a *Animator) Animating() bool {
	return a.active
}

// Update advances the animation by dt seconds and writes the interpolated
// transform to the state. Each component interpolates independently with the
// shared eased progress. When the animation completes it is dropped before
// the final value is emitted, so a failing subscriber cannot leave a finished
// tween live.
func (a *Animator) Update(dt float32) {
	if !a.active {
		return
	}

	scale, doneS := a.tweens[0].Update(dt)
	tx, doneX := a.tweens[1].Update(dt)
	ty, doneY := a.tweens[2].Update(dt)

	if doneS && doneX && doneY {
		a.Cancel()
	}
	a.state.Set(Transform{
		Scale:      float64(scale),
		TranslateX: float64(tx),
		TranslateY: float64(ty),
	})
}
