package invaders

// Event is a semantic game event for the audio collaborator.
type Event string

const (
	EventAlienDestroyed Event = "alien destroyed"
	EventShipDestroyed  Event = "ship destroyed"
)

// EventSink receives fire-and-forget game events.
// Play must not block the simulation tick.
type EventSink interface {
	Play(e Event)
}

// EventSinkFunc adapts a function to an EventSink.
type EventSinkFunc func(e Event)

// Play calls f(e).
func (f EventSinkFunc) Play(e Event) {
	f(e)
}
