package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/dmitrymomot/rentdesk/pkg/sidebar"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// Nav is the sidebar model for one page.
type Nav struct {
	AppName string
	Groups  []NavGroup
	// Active is the path of the current page.
	Active string
	// Footer holds extra menu buttons, such as sign out.
	Footer []*sidebar.Button
}

var icons = map[string]string{
	"home":   "⌂",
	"users":  "👥",
	"wrench": "🔧",
}

func navIcon(name string) g.Node {
	glyph, ok := icons[name]
	if !ok {
		glyph = "•"
	}
	return html.Span(g.Attr("aria-hidden", "true"), html.Class("inline-flex w-5 justify-center"), g.Text(glyph))
}

// SidebarView renders the sidebar for nav. It must be rendered inside a
// sidebar provider.
func SidebarView(nav Nav) templ.Component {
	groups := make([]templ.Component, 0, len(nav.Groups))
	for _, grp := range nav.Groups {
		items := make([]sidebar.Item, 0, len(grp.Items))
		for _, it := range grp.Items {
			items = append(items, sidebar.MenuItem(sidebar.MenuButton(
				sidebar.ButtonProps{Href: it.Path, Label: it.Label, Active: isActivePath(it.Path, nav.Active)},
				sidebar.Node(navIcon(it.Icon)),
				labelText(it.Label),
			)))
		}
		groups = append(groups, sidebar.Group(grp.Name, sidebar.Menu(items...)))
	}

	footer := make([]sidebar.Item, 0, len(nav.Footer))
	for _, b := range nav.Footer {
		footer = append(footer, sidebar.MenuItem(b))
	}

	return sidebar.Sidebar(
		sidebar.Header(sidebar.Trigger(), labelText(nav.AppName)),
		sidebar.Content(groups...),
		sidebar.Footer(sidebar.Menu(footer...)),
	)
}

// labelText hides text while the sidebar is collapsed.
func labelText(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "truncate"
		if st, err := sidebar.Use(ctx); err == nil && !st.IsOpen() {
			class = "sr-only"
		}
		return html.Span(html.Class(class), g.Text(s)).Render(w)
	})
}

func document(title string, body ...g.Node) g.Node {
	return html.Doctype(html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(g.Text(title)),
			html.Script(html.Type("module"), html.Src(datastarScript)),
		),
		html.Body(append([]g.Node{html.Class("min-h-screen bg-slate-50 text-slate-900")}, body...)...),
	))
}

// DashboardLayout wraps content with the application shell: the sidebar
// built from nav on the left and the page on the right. It reads the sidebar
// state from the surrounding provider.
func DashboardLayout(title string, nav Nav, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := sidebar.Use(ctx); err != nil {
			return err
		}
		embed := func(c templ.Component) g.Node {
			return g.NodeFunc(func(w io.Writer) error { return c.Render(ctx, w) })
		}
		return document(title+" · "+nav.AppName,
			html.Div(html.Class("flex"),
				embed(SidebarView(nav)),
				html.Main(html.Class("flex-1 p-6"),
					html.H1(html.Class("mb-4 text-2xl font-semibold"), g.Text(title)),
					embed(content),
				),
			),
			html.Div(html.ID("toasts"), html.Class("fixed bottom-4 right-4 flex flex-col gap-2")),
		).Render(w)
	})
}
