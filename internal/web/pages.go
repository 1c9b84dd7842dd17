package web

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/dmitrymomot/rentdesk/handler"
	"github.com/dmitrymomot/rentdesk/pkg/sidebar"
)

// The page bodies below are placeholders. Their data sources live outside
// this module.

func placeholder(slot string, lines ...g.Node) templ.Component {
	return sidebar.Node(html.Section(
		g.Attr("data-page", slot),
		html.Class("rounded-lg border border-dashed border-slate-300 bg-white p-6 text-slate-600"),
		g.Group(lines),
	))
}

func TenantDashboard() templ.Component {
	return placeholder("tenant-dashboard", html.P(g.Text("Your leases, payments and requests will show up here.")))
}

func TenantManagement() templ.Component {
	return placeholder("tenant-management", html.P(g.Text("No tenants to show yet.")))
}

func ContractorManagement() templ.Component {
	return placeholder("contractor-management", html.P(g.Text("No contractors to show yet.")))
}

// ContractorDashboard shows one contractor. An empty id renders the
// "nothing selected" state.
func ContractorDashboard(id string) templ.Component {
	if id == "" {
		return placeholder("contractor-dashboard", html.P(g.Text("No contractor selected.")))
	}
	return placeholder("contractor-dashboard",
		g.Attr("data-contractor-id", id),
		html.P(g.Textf("Contractor %s", id)),
	)
}

// InvitationLoading is the indicator shown while an invitation is accepted.
func InvitationLoading(id string) templ.Component {
	return sidebar.Node(document("Accepting invitation",
		html.Div(
			html.Class("flex min-h-screen flex-col items-center justify-center gap-3"),
			g.Attr("role", "status"),
			g.Attr("aria-busy", "true"),
			g.If(id != "", g.Attr("data-invitation-id", id)),
			html.Div(html.Class("h-8 w-8 animate-spin rounded-full border-4 border-slate-300 border-t-slate-700")),
			html.P(g.Text("Loading invitation…")),
		),
	))
}

func errorPage(p handler.ErrorPage) templ.Component {
	return sidebar.Node(document("Error",
		html.Main(html.Class("mx-auto max-w-lg p-12 text-center"),
			html.H1(html.Class("text-4xl font-bold"), g.Textf("%d", p.Status)),
			html.P(html.Class("mt-2"), g.Text(p.Message)),
			g.If(p.RequestID != "", html.P(html.Class("mt-4 text-xs text-slate-500"), g.Textf("Request %s", p.RequestID))),
			html.A(html.Class("mt-6 inline-block underline"), html.Href(p.RetryURL), g.Text("Try again")),
		),
	))
}

func errorToast(t handler.ErrorToast) templ.Component {
	return sidebar.Node(html.Div(
		html.Class("rounded-md bg-white px-4 py-2 shadow"),
		g.Attr("role", "alert"),
		g.Attr("data-level", t.Level),
		g.Text(t.Message),
	))
}
