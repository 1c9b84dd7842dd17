// Package statemachine implements a small finite-state machine used to drive
// UI state such as the sidebar's expanded and collapsed modes.
//
// States and events are anything with a Name. StringEvent covers the common
// event case:
//
//	type Status string
//
//	func (s Status) Name() string { return string(s) }
//
//	const (
//	    Expanded  = Status("expanded")
//	    Collapsed = Status("collapsed")
//	    Toggle    = statemachine.StringEvent("toggle")
//	)
//
//	sm := statemachine.MustNew(Expanded,
//	    statemachine.WithTransition(Expanded, Collapsed, Toggle),
//	    statemachine.WithTransition(Collapsed, Expanded, Toggle),
//	)
//
//	_ = sm.Fire(ctx, Toggle, nil)
//
// A transition may carry actions, which run in order before the state
// changes. An action returning an error aborts the transition and leaves the
// current state untouched. Registering the same state and event twice keeps
// the later transition.
//
// Fire returns *ErrNoTransitionAvailable when nothing is registered for the
// current state and event; IsNoTransitionAvailableError detects it.
//
// All methods are safe for concurrent use.
package statemachine
