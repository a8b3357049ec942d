package viewport

import "time"

// Arbiter mediates between scripted events and live user gestures so only one
// drives the viewport at a time. It holds a single mutable slot: at most one
// scripted event is active, and activating a new one replaces the old one
// wholesale — timer included, no queue, no notification to the discarded
// event's owner.
//
// The auto-release timer is a frame-loop countdown advanced by Update, not a
// wall-clock goroutine: the whole engine runs in a single-threaded
// cooperative model and must stay that way. Replace semantics are atomic from
// the caller's perspective; two countdowns can never be pending at once.
type Arbiter struct {
	active        bool
	eventType     string
	eventID       string
	blockGestures bool

	timed     bool
	remaining time.Duration
}

// NewArbiter creates an empty Arbiter.
func NewArbiter() *Arbiter {
	return &Arbiter{}
}

// SetEventActive installs a new active event, discarding any existing slot
// and cancelling its pending auto-release. When autoRelease is positive,
// SetEventInactive fires automatically after that long.
func (a *Arbiter) SetEventActive(eventType, id string, block bool, autoRelease time.Duration) {
	a.timed = false // clear the old countdown before anything else
	a.active = true
	a.eventType = eventType
	a.eventID = id
	a.blockGestures = block
	if autoRelease > 0 {
		a.timed = true
		a.remaining = autoRelease
	}
}

// SetEventInactive clears the slot and cancels any pending auto-release.
// Idempotent.
func (a *Arbiter) SetEventInactive() {
	a.active = false
	a.eventType = ""
	a.eventID = ""
	a.blockGestures = false
	a.timed = false
	a.remaining = 0
}

// ShouldBlockGestures reports whether live gesture deltas must be withheld
// from the viewport state. Advisory: the recognizer's caller checks this
// before applying a delta; the arbiter does not intercept pointer events.
func (a *Arbiter) ShouldBlockGestures() bool {
	return a.active && a.blockGestures
}

// IsActive reports whether any scripted event is active.
func (a *Arbiter) IsActive() bool {
	return a.active
}

// IsEvent reports whether the event with the given id is the active one.
func (a *Arbiter) IsEvent(id string) bool {
	return a.active && a.eventID == id
}

// ActiveEvent returns the active slot's type and id, and whether a slot is
// active at all.
func (a *Arbiter) ActiveEvent() (eventType, id string, ok bool) {
	return a.eventType, a.eventID, a.active
}

// ForceReset is the emergency clear of slot and timer, for recovery after an
// inconsistent state is detected. Also called on engine teardown so a stale
// countdown can never fire against a destroyed viewport.
func (a *Arbiter) ForceReset() {
	a.SetEventInactive()
}

// Update advances the auto-release countdown by dt seconds.
func (a *Arbiter) Update(dt float32) {
	if !a.timed {
		return
	}
	a.remaining -= time.Duration(float64(dt) * float64(time.Second))
	if a.remaining <= 0 {
		a.SetEventInactive()
	}
}
