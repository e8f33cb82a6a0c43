package core

// Action represents a semantic key, abstracted from physical key codes.
// Frontends map their native keys onto these values.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // Left arrow
	ActionRight         // Right arrow
	ActionUp            // Up arrow
	ActionDown          // Down arrow
	ActionEscape        // Escape - ends the run
	ActionOther         // Any other key
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionEscape:
		return "Escape"
	case ActionOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// EventKind distinguishes the discrete input events a frame can carry.
type EventKind int

const (
	EventQuit    EventKind = iota // window closed or interrupt
	EventKeyDown                  // key went down (including auto-repeat)
	EventKeyUp                    // key was released
)

// Event is a single discrete input event, delivered in arrival order.
type Event struct {
	Kind   EventKind
	Action Action // Ignored for EventQuit
}

// InputFrame is the input for a single frame: the queue of events drained since
// the previous frame plus the instantaneous held-key state.
type InputFrame struct {
	// Actions maps actions to whether their key is held right now.
	Actions map[Action]bool

	// Events lists discrete events in the order they arrived.
	Events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Push appends an event to the frame's queue.
func (f *InputFrame) Push(ev Event) {
	f.Events = append(f.Events, ev)
}

// KeyDown queues a key-down event for the action.
func (f *InputFrame) KeyDown(a Action) {
	f.Push(Event{Kind: EventKeyDown, Action: a})
}

// KeyUp queues a key-up event for the action.
func (f *InputFrame) KeyUp(a Action) {
	f.Push(Event{Kind: EventKeyUp, Action: a})
}

// Quit queues a quit event.
func (f *InputFrame) Quit() {
	f.Push(Event{Kind: EventQuit})
}
