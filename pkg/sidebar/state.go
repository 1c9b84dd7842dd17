package sidebar

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rentdesk/pkg/logger"
	"github.com/dmitrymomot/rentdesk/pkg/statemachine"
)

// Status is the visual state of a sidebar.
type Status string

const (
	StatusExpanded  Status = "expanded"
	StatusCollapsed Status = "collapsed"
)

// Name implements statemachine.State.
func (s Status) Name() string { return string(s) }

func (s Status) String() string { return string(s) }

const (
	eventToggle = statemachine.StringEvent("toggle")
	eventOpen   = statemachine.StringEvent("open")
	eventClose  = statemachine.StringEvent("close")
)

// State is the open/collapsed flag shared by one provider subtree.
// It is safe for concurrent use.
type State struct {
	id         string
	togglePath string
	machine    statemachine.StateMachine
	opts       options
}

// change is filled by the transition action and reported once the machine
// has released its lock.
type change struct {
	from, to Status
	ok       bool
}

func recordChange(_ context.Context, from, to statemachine.State, _ statemachine.Event, data any) error {
	if c, ok := data.(*change); ok {
		c.from, c.to, c.ok = from.(Status), to.(Status), true
	}
	return nil
}

// NewState returns an open sidebar state unless WithInitialOpen(false) is given.
func NewState(opts ...Option) *State {
	o := options{open: true, togglePath: DefaultTogglePath, log: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}

	initial := StatusCollapsed
	if o.open {
		initial = StatusExpanded
	}

	notify := statemachine.WithAction(recordChange)
	machine := statemachine.MustNew(initial,
		statemachine.WithTransition(StatusExpanded, StatusCollapsed, eventToggle, notify),
		statemachine.WithTransition(StatusCollapsed, StatusExpanded, eventToggle, notify),
		statemachine.WithTransition(StatusCollapsed, StatusExpanded, eventOpen, notify),
		statemachine.WithTransition(StatusExpanded, StatusExpanded, eventOpen),
		statemachine.WithTransition(StatusExpanded, StatusCollapsed, eventClose, notify),
		statemachine.WithTransition(StatusCollapsed, StatusCollapsed, eventClose),
	)

	return &State{id: o.id, togglePath: o.togglePath, machine: machine, opts: o}
}

// ID is the mount identifier used as the DOM anchor for patches.
func (s *State) ID() string { return s.id }

// ElementID is the DOM id of the sidebar container.
func (s *State) ElementID() string { return "sidebar-" + s.id }

// Status returns the current visual state.
func (s *State) Status() Status {
	return s.machine.Current().(Status)
}

// IsOpen reports whether the sidebar is expanded.
func (s *State) IsOpen() bool {
	return s.Status() == StatusExpanded
}

// SetOpen sets the flag. Setting the current value is a no-op.
func (s *State) SetOpen(ctx context.Context, open bool) {
	if open {
		s.fire(ctx, eventOpen)
		return
	}
	s.fire(ctx, eventClose)
}

// Toggle flips the flag.
func (s *State) Toggle(ctx context.Context) {
	s.fire(ctx, eventToggle)
}

// Signals returns the client-side representation of s.
func (s *State) Signals() Signals {
	return Signals{ID: s.id, Open: s.IsOpen()}
}

func (s *State) fire(ctx context.Context, event statemachine.Event) {
	var c change
	if err := s.machine.Fire(ctx, event, &c); err != nil {
		// Every status has a transition for every event, so this only
		// fires if the table above is edited incorrectly.
		s.opts.log.ErrorContext(ctx, "sidebar transition failed",
			logger.SidebarID(s.id),
			logger.Event(event.Name()),
			logger.Error(err),
		)
		return
	}
	if !c.ok {
		return
	}

	s.opts.log.DebugContext(ctx, "sidebar state changed",
		logger.SidebarID(s.id),
		logger.Event(event.Name()),
		logger.Transition(c.from.String(), c.to.String()),
	)
	for _, fn := range s.opts.onChange {
		fn(ctx, c.from, c.to)
	}
}
