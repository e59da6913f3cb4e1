package core

// Action represents a semantic key action, abstracted from physical key presses.
// Hosts map their own key codes to actions so sessions never see raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move focus up
	ActionDown           // S, Down arrow - move focus down
	ActionLeft           // A, Left arrow - decrease / move left
	ActionRight          // D, Right arrow - increase / move right
	ActionConfirm        // Enter, Space - confirm selection, dismiss dialogs
	ActionBack           // Escape - leave the current screen
	ActionChoice         // Letter or digit; the rune is in Event.Rune
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionChoice:
		return "Choice"
	default:
		return "Unknown"
	}
}

// EventKind distinguishes the discrete input events a host delivers.
type EventKind uint8

const (
	EventKey     EventKind = iota + 1 // key-down mapped to an Action
	EventPointer                      // pointer-down at X, Y (cells)
	EventQuit                         // window close, Ctrl+C, disconnect
)

// Event is one discrete input event.
type Event struct {
	Kind   EventKind
	Action Action
	Rune   rune
	X, Y   int
}

// Key builds a key event.
func Key(a Action) Event {
	return Event{Kind: EventKey, Action: a}
}

// Choice builds a key event for a letter or digit key.
func Choice(r rune) Event {
	return Event{Kind: EventKey, Action: ActionChoice, Rune: r}
}

// Pointer builds a pointer-down event at cell (x, y).
func Pointer(x, y int) Event {
	return Event{Kind: EventPointer, X: x, Y: y}
}

// Quit builds a quit request.
func Quit() Event {
	return Event{Kind: EventQuit}
}

// Batch holds every input event collected during one loop iteration.
// It is complete and final for that iteration.
type Batch []Event

// HasQuit reports whether the batch contains a quit request.
func (b Batch) HasQuit() bool {
	for _, e := range b {
		if e.Kind == EventQuit {
			return true
		}
	}
	return false
}

// Has reports whether the batch contains a key event for the action.
func (b Batch) Has(a Action) bool {
	for _, e := range b {
		if e.Kind == EventKey && e.Action == a {
			return true
		}
	}
	return false
}

// Confirmed reports whether the batch contains a confirm key or any pointer-down.
// Dialogs and cutscenes dismiss on either.
func (b Batch) Confirmed() bool {
	for _, e := range b {
		if e.Kind == EventPointer || (e.Kind == EventKey && e.Action == ActionConfirm) {
			return true
		}
	}
	return false
}

// Pointers returns the pointer-down events in arrival order.
func (b Batch) Pointers() []Event {
	var out []Event
	for _, e := range b {
		if e.Kind == EventPointer {
			out = append(out, e)
		}
	}
	return out
}
