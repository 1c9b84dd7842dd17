package sidebar

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Item is one entry of a Menu.
type Item struct {
	children []templ.Component
}

// Render renders the item as a menu-item wrapper.
func (i Item) Render(ctx context.Context, w io.Writer) error {
	return html.Li(
		g.Attr("data-sidebar", "menu-item"),
		html.Class("relative"),
		embed(ctx, i.children),
	).Render(w)
}

// MenuItem wraps children in one <li data-sidebar="menu-item">.
func MenuItem(children ...templ.Component) Item {
	return Item{children: children}
}

// Menu renders items in order, one menu-item wrapper each.
func Menu(items ...Item) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		nodes := make([]g.Node, 0, len(items))
		for _, item := range items {
			nodes = append(nodes, g.NodeFunc(func(w io.Writer) error {
				return item.Render(ctx, w)
			}))
		}
		return html.Ul(
			g.Attr("data-sidebar", "menu"),
			html.Class("flex flex-col gap-1"),
			g.Group(nodes),
		).Render(w)
	})
}

// ButtonProps configures a MenuButton.
type ButtonProps struct {
	// Href renders the button as a link.
	Href string

	// Active marks the entry of the current page with data-active.
	Active bool

	// Label is the tooltip, useful while the sidebar is collapsed.
	Label string

	// OnActivate runs once per Activate call.
	OnActivate func(ctx context.Context) error
}

// Button is a menu button. It renders markup and dispatches activation; it
// never reads or writes sidebar state.
type Button struct {
	props    ButtonProps
	children []templ.Component

	mu         sync.Mutex
	actionPath string
}

// MenuButton renders a link when props.Href is set, a button otherwise.
// Children are the icon and label.
func MenuButton(props ButtonProps, children ...templ.Component) *Button {
	return &Button{props: props, children: children}
}

// Activate calls OnActivate exactly once. A button without a handler is a
// no-op.
func (b *Button) Activate(ctx context.Context) error {
	if b.props.OnActivate == nil {
		return nil
	}
	if err := b.props.OnActivate(ctx); err != nil {
		return fmt.Errorf("activate menu button: %w", err)
	}
	return nil
}

func (b *Button) bind(actionPath string) {
	b.mu.Lock()
	b.actionPath = actionPath
	b.mu.Unlock()
}

// Render implements templ.Component.
func (b *Button) Render(ctx context.Context, w io.Writer) error {
	b.mu.Lock()
	actionPath := b.actionPath
	b.mu.Unlock()

	attrs := []g.Node{
		g.Attr("data-sidebar", "menu-button"),
		g.If(b.props.Active, g.Attr("data-active", "true")),
		g.If(b.props.Label != "", g.Attr("title", b.props.Label)),
		html.Class("flex w-full items-center gap-2 rounded-md px-2 py-1.5 text-sm hover:bg-slate-100"),
	}

	if b.props.Href != "" {
		return html.A(append(attrs, html.Href(b.props.Href), embed(ctx, b.children))...).Render(w)
	}
	attrs = append(attrs, html.Type("button"))
	if actionPath != "" {
		attrs = append(attrs, g.Attr("data-on:click", fmt.Sprintf("@post('%s')", actionPath)))
	}
	return html.Button(append(attrs, embed(ctx, b.children))...).Render(w)
}
