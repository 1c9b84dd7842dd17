package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// SimpleStateMachine is the in-memory StateMachine.
// Transitions are indexed as [from][event].
type SimpleStateMachine struct {
	currentState State
	transitions  map[string]map[string]Transition
	mu           sync.RWMutex
}

func newSimpleStateMachine(initialState State) *SimpleStateMachine {
	return &SimpleStateMachine{
		currentState: initialState,
		transitions:  make(map[string]map[string]Transition),
	}
}

func (sm *SimpleStateMachine) Current() State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.currentState
}

// AddTransition registers from -> to on event, replacing any earlier
// transition for the same state and event.
func (sm *SimpleStateMachine) AddTransition(from, to State, event Event, actions []Action) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	byEvent, ok := sm.transitions[from.Name()]
	if !ok {
		byEvent = make(map[string]Transition)
		sm.transitions[from.Name()] = byEvent
	}
	byEvent[event.Name()] = Transition{
		From:    from,
		To:      to,
		Event:   event,
		Actions: actions,
	}
	return nil
}

func (sm *SimpleStateMachine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	stateName := sm.currentState.Name()
	t, ok := sm.transitions[stateName][event.Name()]
	if !ok {
		return &ErrNoTransitionAvailable{StateName: stateName, EventName: event.Name()}
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, sm.currentState, t.To, event, data); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	sm.currentState = t.To
	return nil
}
