// Package session runs screens as a stack of cooperative state machines.
//
// Every screen (menu, cutscene act, minigame, dialog) is a Session. A host
// drives the Stack one iteration at a time: Step (update with the input
// drained since the previous iteration), Draw, then poll input and yield
// back to its own scheduler. A session suspends itself by returning
// Call(child); it is resumed with the child's Result once the child exits.
package session

import (
	"time"

	"github.com/vovakirdan/party-pascal/internal/core"
)

// Navigation tells the parent what to do after a session terminates.
type Navigation int

const (
	Continue Navigation = iota // proceed to whatever comes next
	Back                       // return to the parent screen
	Menu                       // unwind to the main menu
	Quit                       // end the whole program
)

// String returns a human-readable name for the navigation directive.
func (n Navigation) String() string {
	switch n {
	case Continue:
		return "continue"
	case Back:
		return "back"
	case Menu:
		return "menu"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Result is the value a terminated session hands to its parent.
type Result struct {
	Nav   Navigation
	Score int   // points earned by the session, informational
	Err   error // set when the session failed or panicked
}

// Frame is the input to one update: time since the previous iteration,
// the drained input batch, and the current surface size.
type Frame struct {
	Elapsed time.Duration
	Input   core.Batch
	Width   int
	Height  int
}

// Session is one self-contained screen.
type Session interface {
	// Name identifies the session in logs.
	Name() string
	// Enter runs once before the first update. Asset lookups belong here.
	Enter(env *Env) error
	// Update advances the session by one iteration.
	Update(env *Env, f Frame) Transition
	// Draw renders the session. Layout must come from the screen's
	// current dimensions.
	Draw(s *core.Screen)
}

// Resumer is implemented by sessions that call children and want their results.
// Sessions without it simply keep running when a child exits.
type Resumer interface {
	Resume(env *Env, child Result) Transition
}

// Outroer is implemented by sessions with an exit animation. The stack keeps
// drawing the session, without updating it, for the returned duration.
type Outroer interface {
	Outro() time.Duration
}

// Overlay is implemented by modal sessions that draw over a frozen, dimmed
// copy of the last frame instead of a blank screen.
type Overlay interface {
	Overlay() bool
}

type transitionKind int

const (
	stay transitionKind = iota
	exit
	call
)

// Transition is what a session wants the stack to do after an update.
type Transition struct {
	kind   transitionKind
	result Result
	child  Session
}

// Stay keeps the session running.
func Stay() Transition {
	return Transition{kind: stay}
}

// Exit terminates the session with the given result.
func Exit(r Result) Transition {
	return Transition{kind: exit, result: r}
}

// Done terminates the session with a bare navigation directive.
func Done(nav Navigation) Transition {
	return Exit(Result{Nav: nav})
}

// Call suspends the session until child terminates.
func Call(child Session) Transition {
	return Transition{kind: call, child: child}
}

// IsStay reports whether the transition keeps the session running.
func (t Transition) IsStay() bool { return t.kind == stay }

// IsExit reports whether the transition terminates the session.
func (t Transition) IsExit() bool { return t.kind == exit }

// IsCall reports whether the transition pushes a child session.
func (t Transition) IsCall() bool { return t.kind == call }

// Result returns the exit result of an exit transition.
func (t Transition) Result() Result { return t.result }

// Child returns the session pushed by a call transition.
func (t Transition) Child() Session { return t.child }
