package sidebar

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Provider renders children with state installed in their context. A nil
// state gives every render its own NewState(), so each mount starts from the
// defaults and nothing carries over between renders.
func Provider(state *State, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		st := state
		if st == nil {
			st = NewState()
		}
		ctx = WithState(ctx, st)
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
