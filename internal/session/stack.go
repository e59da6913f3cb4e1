package session

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/vovakirdan/party-pascal/internal/core"
)

// MaxDepth caps session nesting. The deepest real path is
// menu → cutscene → mode select → campaign → minigame → dialog.
const MaxDepth = 8

// ErrTooDeep is delivered to a session whose Call would exceed MaxDepth.
var ErrTooDeep = errors.New("session: nesting too deep")

type phase int

const (
	phaseEntering phase = iota
	phaseRunning
	phaseExiting
)

type entry struct {
	s         Session
	phase     phase
	result    Result
	outro     time.Duration
	outroLeft time.Duration
	backdrop  *core.Screen
	drawErr   error
}

// Stack runs the active chain of sessions. Only the top session is updated
// and drawn; everything below it is suspended.
type Stack struct {
	env     *Env
	entries []*entry
	last    *core.Screen
	done    bool
	final   Result
}

// NewStack creates a stack with root as its only session. The root is
// entered on the first Step.
func NewStack(env *Env, root Session) *Stack {
	return &Stack{
		env:     env,
		entries: []*entry{{s: root, phase: phaseEntering}},
	}
}

// Done reports whether the stack has terminated.
func (st *Stack) Done() bool {
	return st.done
}

// Result returns the root's result once the stack is done.
func (st *Stack) Result() Result {
	return st.final
}

// Depth returns the number of live sessions.
func (st *Stack) Depth() int {
	return len(st.entries)
}

// Names lists the live sessions from root to top.
func (st *Stack) Names() []string {
	names := make([]string, len(st.entries))
	for i, e := range st.entries {
		names[i] = e.s.Name()
	}
	return names
}

// Top returns the session currently holding control, or nil when done.
func (st *Stack) Top() Session {
	if len(st.entries) == 0 {
		return nil
	}
	return st.entries[len(st.entries)-1].s
}

func (st *Stack) top() *entry {
	return st.entries[len(st.entries)-1]
}

// Step performs the update half of one iteration and reports whether the
// stack has finished. A quit request in the batch ends the stack before any
// session sees the input.
func (st *Stack) Step(f Frame) bool {
	if st.done {
		return true
	}
	if f.Input.HasQuit() {
		st.quit("quit requested")
		return true
	}

	top := st.top()
	if top.drawErr != nil {
		st.apply(Exit(Result{Nav: Back, Err: top.drawErr}))
		return st.done
	}

	switch top.phase {
	case phaseEntering:
		if err := st.enter(top); err != nil {
			st.apply(Exit(Result{Nav: Back, Err: err}))
			break
		}
		st.apply(st.update(top, f))
	case phaseRunning:
		st.apply(st.update(top, f))
	case phaseExiting:
		top.outroLeft -= f.Elapsed
		if top.outroLeft <= 0 {
			st.apply(st.pop())
		}
	}

	st.env.Ledger.Tick(f.Elapsed)
	return st.done
}

// Draw renders the top session. Nothing is drawn once the stack is done.
func (st *Stack) Draw(scr *core.Screen) {
	if st.done || len(st.entries) == 0 {
		return
	}
	scr.Clear()
	top := st.top()
	if top.phase == phaseEntering {
		return
	}
	if top.backdrop != nil {
		scr.CopyFrom(top.backdrop)
	}
	st.draw(top, scr)
	if top.phase == phaseExiting && top.outro > 0 {
		curtain(scr, 1-float64(top.outroLeft)/float64(top.outro))
	}

	if st.last == nil {
		st.last = core.NewScreen(scr.Width(), scr.Height())
	}
	st.last.Resize(scr.Width(), scr.Height())
	st.last.CopyFrom(scr)
}

// apply carries out a transition, resuming parents as children exit until
// some session wants to keep running.
func (st *Stack) apply(tr Transition) {
	for !st.done {
		top := st.top()
		switch tr.kind {
		case stay:
			return

		case call:
			if len(st.entries) >= MaxDepth {
				st.env.Log.Error("session nesting too deep", "parent", top.s.Name(), "child", tr.child.Name())
				tr = st.resume(top, Result{Nav: Back, Err: ErrTooDeep})
				continue
			}
			child := &entry{s: tr.child}
			if ov, ok := tr.child.(Overlay); ok && ov.Overlay() && st.last != nil {
				child.backdrop = core.NewScreen(st.last.Width(), st.last.Height())
				child.backdrop.CopyFrom(st.last)
				child.backdrop.Dim()
			}
			if err := st.enter(child); err != nil {
				tr = st.resume(top, Result{Nav: Back, Err: err})
				continue
			}
			st.entries = append(st.entries, child)
			return

		case exit:
			top.result = tr.result
			if tr.result.Nav == Quit {
				st.quit(top.s.Name() + " requested quit")
				return
			}
			if o, ok := top.s.(Outroer); ok && o.Outro() > 0 {
				top.phase = phaseExiting
				top.outro = o.Outro()
				top.outroLeft = top.outro
				return
			}
			tr = st.pop()
		}
	}
}

// pop removes the top session and returns its parent's reaction.
func (st *Stack) pop() Transition {
	child := st.top()
	st.entries = st.entries[:len(st.entries)-1]
	if child.result.Err != nil {
		st.env.Log.Warn("session failed", "session", child.s.Name(), "error", child.result.Err)
	}
	if len(st.entries) == 0 {
		st.done = true
		st.final = child.result
		return Stay()
	}
	return st.resume(st.top(), child.result)
}

func (st *Stack) quit(reason string) {
	st.env.Log.Info("session stack terminated", "reason", reason, "depth", len(st.entries))
	st.done = true
	st.final = Result{Nav: Quit}
	st.entries = nil
}

func (st *Stack) enter(e *entry) (err error) {
	defer recoverInto(&err, e.s)
	if err := e.s.Enter(st.env); err != nil {
		return fmt.Errorf("session %s: enter: %w", e.s.Name(), err)
	}
	e.phase = phaseRunning
	return nil
}

func (st *Stack) update(e *entry, f Frame) (tr Transition) {
	var err error
	defer func() {
		if err != nil {
			tr = Exit(Result{Nav: Back, Err: err})
		}
	}()
	defer recoverInto(&err, e.s)
	return e.s.Update(st.env, f)
}

func (st *Stack) resume(e *entry, child Result) (tr Transition) {
	r, ok := e.s.(Resumer)
	if !ok {
		return Stay()
	}
	var err error
	defer func() {
		if err != nil {
			tr = Exit(Result{Nav: Back, Err: err})
		}
	}()
	defer recoverInto(&err, e.s)
	return r.Resume(st.env, child)
}

func (st *Stack) draw(e *entry, scr *core.Screen) {
	defer recoverInto(&e.drawErr, e.s)
	e.s.Draw(scr)
}

// recoverInto converts a panic in a session callback into an error.
func recoverInto(err *error, s Session) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("session %s: panic: %v\n%s", s.Name(), r, debug.Stack())
	}
}

// curtain closes rows from the top and bottom edges as progress goes 0 → 1.
func curtain(scr *core.Screen, progress float64) {
	rows := int(core.ClampF(progress, 0, 1) * float64(scr.Height()+1) / 2)
	for i := 0; i < rows; i++ {
		scr.DrawHLine(0, i, scr.Width(), ' ', core.ColorDefault)
		scr.DrawHLine(0, scr.Height()-1-i, scr.Width(), ' ', core.ColorDefault)
	}
}
