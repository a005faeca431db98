package internal

// ListenerID uniquely identifies a registered listener. Go functions can't
// be compared for equality, so removal goes through the id.
type ListenerID uint64

// Phase is the propagation phase a listener is invoked in.
type Phase uint8

const (
	PhaseNone Phase = iota
	PhaseCapture
	PhaseTarget
	PhaseBubble
)

// Listener is a callback invoked with the dispatched event.
type Listener func(*Event)

type listenerEntry struct {
	id      ListenerID
	typ     string
	fn      Listener
	capture bool
	once    bool
}

// Event is one dispatched occurrence, native or synthetic. Both kinds go
// through the identical dispatch path.
type Event struct {
	// Type is the event name, e.g. "click". It is what the classifier
	// table keys on.
	Type string

	// Bubbles controls whether the bubble phase runs after the target phase.
	Bubbles bool

	// Cancelable controls whether PreventDefault has any effect.
	Cancelable bool

	// Detail carries custom payload for synthetic events.
	Detail any

	// Target is the node the event was dispatched on; CurrentTarget is the
	// node whose listener is currently running.
	Target        *Target
	CurrentTarget *Target

	// Phase is the propagation phase of the currently running listener.
	Phase Phase

	defaultPrevented   bool
	propagationStopped bool
	immediateStopped   bool
}

// NewEvent creates a non-bubbling, non-cancelable event of the given type.
func NewEvent(typ string) *Event {
	return &Event{Type: typ}
}

// PreventDefault marks the event's default action as cancelled. No effect
// unless the event is cancelable.
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation stops the event from reaching further targets. Remaining
// listeners on the current target still run.
func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

// StopImmediatePropagation stops remaining listeners on the current target
// as well as further targets.
func (e *Event) StopImmediatePropagation() {
	e.propagationStopped = true
	e.immediateStopped = true
}

// Target is a node events are dispatched on. Targets form a tree; the
// dispatch walks ancestors in the capture phase and back up in the bubble
// phase, the way the host environment defines it.
type Target struct {
	rt     *Runtime
	parent *Target

	listeners []listenerEntry
	nextID    ListenerID
}

// NewTarget creates a target under parent. A nil parent makes a root.
func (r *Runtime) NewTarget(parent *Target) *Target {
	return &Target{rt: r, parent: parent, nextID: 1}
}

// Dispatch delivers ev to this target through the runtime's dispatch
// interceptor. The return value is false when a listener cancelled a
// cancelable event.
func (t *Target) Dispatch(ev *Event) bool {
	return t.rt.Dispatch(t, ev)
}

// AddListener registers fn for events of the given type. Capture listeners
// run on the way down, non-capture on the target and on the way up.
// Listeners run in registration order within a phase.
func (t *Target) AddListener(typ string, fn Listener, capture bool) ListenerID {
	return t.addListener(typ, fn, capture, false)
}

// AddListenerOnce registers a listener removed after its first delivery.
func (t *Target) AddListenerOnce(typ string, fn Listener, capture bool) ListenerID {
	return t.addListener(typ, fn, capture, true)
}

func (t *Target) addListener(typ string, fn Listener, capture, once bool) ListenerID {
	if fn == nil {
		return 0
	}

	id := t.nextID
	t.nextID++

	t.listeners = append(t.listeners, listenerEntry{
		id:      id,
		typ:     typ,
		fn:      fn,
		capture: capture,
		once:    once,
	})

	return id
}

// RemoveListener removes a listener by id. Removal during a dispatch does
// not affect the listener list already captured for the in-flight dispatch.
func (t *Target) RemoveListener(id ListenerID) bool {
	for i, entry := range t.listeners {
		if entry.id == id {
			t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// ListenerCount returns the number of listeners registered for a type.
func (t *Target) ListenerCount(typ string) int {
	n := 0
	for _, entry := range t.listeners {
		if entry.typ == typ {
			n++
		}
	}
	return n
}

// matching returns a snapshot of the listeners eligible for typ in the
// given phase, in registration order.
func (t *Target) matching(typ string, phase Phase) []listenerEntry {
	var out []listenerEntry
	for _, entry := range t.listeners {
		if entry.typ != typ {
			continue
		}
		switch phase {
		case PhaseCapture:
			if !entry.capture {
				continue
			}
		case PhaseBubble:
			if entry.capture {
				continue
			}
		}
		out = append(out, entry)
	}
	return out
}

// path returns the ancestor chain from the root down to (excluding) t.
func (t *Target) path() []*Target {
	var ancestors []*Target
	for p := t.parent; p != nil; p = p.parent {
		ancestors = append(ancestors, p)
	}

	// reverse: dispatch walks root first
	for i, j := 0, len(ancestors)-1; i < j; i, j = i+1, j-1 {
		ancestors[i], ancestors[j] = ancestors[j], ancestors[i]
	}

	return ancestors
}
