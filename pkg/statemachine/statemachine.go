package statemachine

import "context"

// State is a named node of the machine.
type State interface {
	Name() string
}

// Event is a named trigger for transitions.
type Event interface {
	Name() string
}

// Action runs during a transition. Returning an error cancels the transition.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Transition moves the machine from one state to another on an event.
type Transition struct {
	From    State
	To      State
	Event   Event
	Actions []Action // run in order before the state changes
}

// StateMachine is the finite-state machine contract.
type StateMachine interface {
	Current() State
	AddTransition(from, to State, event Event, actions []Action) error
	Fire(ctx context.Context, event Event, data any) error
}

// StringEvent is an Event backed by its name.
type StringEvent string

func (e StringEvent) Name() string { return string(e) }
