package sidebar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/rentdesk/handler"
	"github.com/dmitrymomot/rentdesk/pkg/logger"
	"github.com/dmitrymomot/rentdesk/pkg/validator"
)

// SignalsKey is the datastar signal namespace of the sidebar.
const SignalsKey = "sidebar"

// Signals is the client-side copy of a State.
type Signals struct {
	ID   string `json:"id"`
	Open bool   `json:"open"`
}

// maxIDLength bounds client supplied mount IDs.
const maxIDLength = 64

// StateFromSignals rebuilds a state for the duration of one request.
func StateFromSignals(sig Signals, opts ...Option) *State {
	all := make([]Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, WithID(sig.ID), WithInitialOpen(sig.Open))
	return NewState(all...)
}

// ToggleRequest is the signal payload posted by Trigger.
type ToggleRequest struct {
	Sidebar Signals `json:"sidebar"`
}

// Validate checks the posted mount ID. It ends up in a CSS selector, so only
// identifier characters are accepted.
func (r ToggleRequest) Validate() error {
	return validator.Apply(
		validator.Identifier("sidebar.id", r.Sidebar.ID),
		validator.MaxLenString("sidebar.id", r.Sidebar.ID, maxIDLength),
	)
}

// ToggleHandler flips the posted state and patches the re-rendered sidebar
// and its signals back to the page. render builds the sidebar view for the
// rebuilt state; it is rendered inside a Provider for that state.
func ToggleHandler(render func(ctx handler.Context, s *State) templ.Component, opts ...Option) handler.HandlerFunc[handler.Context, ToggleRequest] {
	return func(ctx handler.Context, req ToggleRequest) handler.Response {
		if err := req.Validate(); err != nil {
			return handler.Error(fmt.Errorf("toggle sidebar: %w", err))
		}

		state := StateFromSignals(req.Sidebar, opts...)
		state.Toggle(ctx)

		return handler.TemplWithSignals(
			Provider(state, render(ctx, state)),
			map[string]Signals{SignalsKey: state.Signals()},
			handler.WithTarget("#"+state.ElementID()),
		)
	}
}

// Actions maps action names to menu buttons and dispatches POST requests
// to them.
type Actions struct {
	basePath string
	log      *slog.Logger

	mu      sync.RWMutex
	buttons map[string]*Button
}

// NewActions creates a registry whose handler is mounted at basePath.
func NewActions(basePath string, log *slog.Logger) *Actions {
	if log == nil {
		log = logger.Discard()
	}
	return &Actions{
		basePath: strings.TrimRight(basePath, "/"),
		log:      log,
		buttons:  make(map[string]*Button),
	}
}

// Register binds b to name. Rendering b afterwards posts to the action.
func (a *Actions) Register(name string, b *Button) error {
	if name == "" || b == nil {
		return ErrInvalidAction
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.buttons[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAction, name)
	}
	a.buttons[name] = b
	b.bind(a.Path(name))
	return nil
}

// MustRegister is like Register but panics on error. It returns b.
func (a *Actions) MustRegister(name string, b *Button) *Button {
	if err := a.Register(name, b); err != nil {
		panic(err)
	}
	return b
}

func (a *Actions) Path(name string) string {
	return a.basePath + "/" + url.PathEscape(name)
}

// Activate runs the named button's handler once.
func (a *Actions) Activate(ctx context.Context, name string) error {
	a.mu.RLock()
	b, ok := a.buttons[name]
	a.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}

	a.log.InfoContext(ctx, "sidebar action", logger.Action(name))
	return b.Activate(ctx)
}

// ActionRequest carries the action name from the URL.
type ActionRequest struct {
	Name string `path:"action"`
}

// Handle dispatches one action request.
func (a *Actions) Handle(ctx handler.Context, req ActionRequest) handler.Response {
	if err := a.Activate(ctx, req.Name); err != nil {
		if errors.Is(err, ErrUnknownAction) {
			return handler.Error(errors.Join(handler.ErrNotFound, err))
		}
		return handler.Error(err)
	}
	return handler.Empty()
}

// Handler mounts POST /{action}. Extra options are applied after the path
// binder.
func (a *Actions) Handler(opts ...handler.WrapOption[handler.Context, ActionRequest]) http.Handler {
	all := append([]handler.WrapOption[handler.Context, ActionRequest]{
		handler.WithBinders[handler.Context, ActionRequest](handler.BindPath(chi.URLParam)),
	}, opts...)

	r := chi.NewRouter()
	r.Post("/{action}", handler.Wrap(a.Handle, all...))
	return r
}
