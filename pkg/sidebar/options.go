package sidebar

import (
	"context"
	"log/slog"
)

// DefaultTogglePath is where Trigger posts when no path is configured.
const DefaultTogglePath = "/sidebar/toggle"

// ChangeFunc observes a real state change. It is not called for
// self-transitions such as opening an already open sidebar.
type ChangeFunc func(ctx context.Context, from, to Status)

// Option configures a State.
type Option func(*options)

type options struct {
	open       bool
	id         string
	togglePath string
	log        *slog.Logger
	onChange   []ChangeFunc
}

// WithInitialOpen sets the starting value. Defaults to open.
func WithInitialOpen(open bool) Option {
	return func(o *options) {
		o.open = open
	}
}

// WithID pins the mount ID. Used when rebuilding a state from signals.
func WithID(id string) Option {
	return func(o *options) {
		if id != "" {
			o.id = id
		}
	}
}

// WithOnChange registers fn for every real change. Callbacks run in order
// after the new status is visible and may read the state.
func WithOnChange(fn ChangeFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.onChange = append(o.onChange, fn)
		}
	}
}

// WithLogger sets the logger for transition records. Defaults to a discard
// logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithTogglePath sets the endpoint Trigger posts to. Defaults to
// DefaultTogglePath.
func WithTogglePath(path string) Option {
	return func(o *options) {
		if path != "" {
			o.togglePath = path
		}
	}
}
