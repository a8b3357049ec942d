package viewport

// State holds the current view transform: the single source of truth consumed
// by renderers and overlay position logic. It has exactly one writer at any
// instant — the animator during a scripted event, the gesture path during a
// live gesture, or a direct external set — so last-write-wins is well-defined
// without locking.
type State struct {
	current Transform
	subs    []subscriber
	nextID  uint32
}

type subscriber struct {
	id uint32
	fn func(Transform)
}

// NewState creates a State holding the identity transform.
func NewState() *State {
	return &State{current: Identity}
}

// Get returns the current transform.
func (s *State) Get() Transform {
	return s.current
}

// Set stores the new transform and notifies subscribers. The value is stored
// before any subscriber runs, so a failing subscriber observes — but cannot
// prevent — the update.
func (s *State) Set(t Transform) {
	s.current = t
	for _, sub := range s.subs {
		sub.fn(t)
	}
}

// Handle removes a registered transform subscriber.
type Handle struct {
	id    uint32
	state *State
}

// OnChange registers fn to be called with every new transform value.
func (s *State) OnChange(fn func(Transform)) Handle {
	s.nextID++
	s.subs = append(s.subs, subscriber{id: s.nextID, fn: fn})
	return Handle{id: s.nextID, state: s}
}

// Remove unregisters the subscriber. Safe to call more than once.
func (h Handle) Remove() {
	if h.state == nil {
		return
	}
	subs := h.state.subs
	for i := range subs {
		if subs[i].id == h.id {
			copy(subs[i:], subs[i+1:])
			subs[len(subs)-1] = subscriber{}
			h.state.subs = subs[:len(subs)-1]
			return
		}
	}
}
