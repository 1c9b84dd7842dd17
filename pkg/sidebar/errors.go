package sidebar

import "errors"

var (
	// ErrMissingProvider is returned when a component that needs the shared
	// state renders outside of a Provider, or when a nil handle is given.
	ErrMissingProvider = errors.New("sidebar: rendered outside of a sidebar provider")

	// ErrUnknownAction is returned for an action name nothing was registered under.
	ErrUnknownAction = errors.New("sidebar: unknown action")

	// ErrDuplicateAction is returned when a name is registered twice.
	ErrDuplicateAction = errors.New("sidebar: action already registered")

	// ErrInvalidAction is returned for an empty name or a nil button.
	ErrInvalidAction = errors.New("sidebar: action needs a name and a button")
)
