package game

// EventKind labels a gameplay side effect signalled out of the sim core.
// Integration code never plays sounds or touches the display directly; it
// emits events and the front end consumes them after each tick.
type EventKind int

const (
	EventShoot EventKind = iota
	EventHit
	EventExplosion
	EventRescue
	EventWarningOn
	EventWarningOff
	EventGameOver
	EventVictory
)

func (k EventKind) String() string {
	switch k {
	case EventShoot:
		return "shoot"
	case EventHit:
		return "hit"
	case EventExplosion:
		return "explosion"
	case EventRescue:
		return "rescue"
	case EventWarningOn:
		return "warning_on"
	case EventWarningOff:
		return "warning_off"
	case EventGameOver:
		return "game_over"
	case EventVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget signal with a world position for spatial audio.
type Event struct {
	Kind EventKind
	Pos  Vec3
}

// EventQueue collects events during one tick. The driver owns one queue;
// the front end drains it after Advance returns.
type EventQueue struct {
	events []Event
}

func (q *EventQueue) Emit(kind EventKind, pos Vec3) {
	q.events = append(q.events, Event{Kind: kind, Pos: pos})
}

// Drain returns all pending events and resets the queue.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Pending returns the queued events without consuming them (test helper).
func (q *EventQueue) Pending() []Event {
	return q.events
}
