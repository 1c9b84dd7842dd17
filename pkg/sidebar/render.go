package sidebar

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Node adapts a gomponents node to a templ component.
func Node(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if n == nil {
			return nil
		}
		return n.Render(w)
	})
}

// Text renders escaped text.
func Text(s string) templ.Component {
	return Node(g.Text(s))
}

// embed renders templ children inside a gomponents tree, passing ctx down so
// they still see the provider state.
func embed(ctx context.Context, children []templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		for _, c := range children {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func section(slot string, class string, children []templ.Component, tag func(...g.Node) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return tag(
			g.Attr("data-sidebar", slot),
			g.Attr("class", class),
			embed(ctx, children),
		).Render(w)
	})
}
