package lifecycle

import "github.com/a0l6g0r8a9l2/investHelperBE/internal/model"

// trigger names a transition in the notification state machine.
type trigger string

const (
	triggerStart   trigger = "start"      // new -> in_progress
	triggerDone    trigger = "to_done"    // in_progress -> done
	triggerExpired trigger = "to_expired" // in_progress -> disabled (deadline or cancelled record)
	triggerStop    trigger = "stop"       // new|in_progress -> disabled (explicit cancel)
)

type transition struct {
	sources []model.State
	dest    model.State
}

// transitions is the full transition table. Anything not listed here is
// refused, which is what makes terminal states terminal.
var transitions = map[trigger]transition{
	triggerStart:   {sources: []model.State{model.StateNew}, dest: model.StateInProgress},
	triggerDone:    {sources: []model.State{model.StateInProgress}, dest: model.StateDone},
	triggerExpired: {sources: []model.State{model.StateInProgress}, dest: model.StateDisabled},
	triggerStop:    {sources: []model.State{model.StateNew, model.StateInProgress}, dest: model.StateDisabled},
}

// machine holds the current state and executes table transitions. It is
// not self-synchronizing: the owning lifecycle serializes all access
// under its own mutex.
type machine struct {
	current model.State
}

func newMachine(initial model.State) *machine {
	return &machine{current: initial}
}

func (m *machine) state() model.State {
	return m.current
}

// fire attempts the transition and reports whether it was taken. Firing
// from a terminal state, or from a state the trigger does not list as a
// source, is refused without mutation. Concurrent triggers racing for a
// terminal state resolve to whichever fires first.
func (m *machine) fire(t trigger) bool {
	tr, ok := transitions[t]
	if !ok || m.current.Terminal() {
		return false
	}

	for _, src := range tr.sources {
		if src == m.current {
			m.current = tr.dest
			return true
		}
	}

	return false
}
