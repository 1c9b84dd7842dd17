package sidebar

import "context"

type stateKey struct{}

// WithState returns a copy of ctx carrying s.
func WithState(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, stateKey{}, s)
}

// Use returns the state installed by the nearest Provider.
func Use(ctx context.Context) (*State, error) {
	if ctx == nil {
		return nil, ErrMissingProvider
	}
	s, ok := ctx.Value(stateKey{}).(*State)
	if !ok || s == nil {
		return nil, ErrMissingProvider
	}
	return s, nil
}

// MustUse is like Use but panics with ErrMissingProvider.
func MustUse(ctx context.Context) *State {
	s, err := Use(ctx)
	if err != nil {
		panic(err)
	}
	return s
}
