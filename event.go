package react

import "github.com/gracelungu/react/internal"

// Event is one dispatched occurrence. Synthetic events use the same type
// and the same dispatch path as native ones.
type Event = internal.Event

// Target is a node events are dispatched on.
type Target = internal.Target

// Listener is a callback invoked with the dispatched event.
type Listener = internal.Listener

// ListenerID identifies a registered listener for removal.
type ListenerID = internal.ListenerID

// Phase is the propagation phase a listener runs in.
type Phase = internal.Phase

const (
	PhaseCapture = internal.PhaseCapture
	PhaseTarget  = internal.PhaseTarget
	PhaseBubble  = internal.PhaseBubble
)

// NewEvent creates a non-bubbling, non-cancelable event.
func NewEvent(typ string) *Event {
	return internal.NewEvent(typ)
}

// NewCustomEvent creates a synthetic event carrying a payload in Detail.
func NewCustomEvent(typ string, detail any) *Event {
	e := internal.NewEvent(typ)
	e.Detail = detail
	return e
}
