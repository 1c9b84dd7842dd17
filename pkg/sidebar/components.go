package sidebar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

const (
	containerClass = "flex h-screen shrink-0 flex-col border-r border-slate-200 bg-white transition-[width] duration-200"
	widthExpanded  = "w-64"
	widthCollapsed = "w-16"
)

// Sidebar renders the container for the provider state and forwards
// children in order.
func Sidebar(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s, err := Use(ctx)
		if err != nil {
			return fmt.Errorf("render sidebar: %w", err)
		}
		node, err := container(ctx, s, children)
		if err != nil {
			return err
		}
		return node.Render(w)
	})
}

// SidebarFor renders a sidebar bound to state without relying on an outer
// Provider.
func SidebarFor(state *State, children ...templ.Component) (templ.Component, error) {
	if state == nil {
		return nil, fmt.Errorf("sidebar for nil state: %w", ErrMissingProvider)
	}
	return Provider(state, Sidebar(children...)), nil
}

func container(ctx context.Context, s *State, children []templ.Component) (g.Node, error) {
	signals, err := json.Marshal(map[string]Signals{SignalsKey: s.Signals()})
	if err != nil {
		return nil, fmt.Errorf("encode sidebar signals: %w", err)
	}

	status := s.Status()
	width := widthExpanded
	if status == StatusCollapsed {
		width = widthCollapsed
	}

	return html.Aside(
		html.ID(s.ElementID()),
		g.Attr("data-sidebar", "sidebar"),
		g.Attr("data-state", status.String()),
		g.Attr("data-signals", string(signals)),
		html.Class(containerClass+" "+width),
		embed(ctx, children),
	), nil
}

// Header is the top section of the sidebar, usually the trigger and brand.
func Header(children ...templ.Component) templ.Component {
	return section("header", "flex items-center gap-2 p-3", children, html.Header)
}

// Content is the scrollable middle section holding the groups.
func Content(children ...templ.Component) templ.Component {
	return section("content", "flex flex-1 flex-col gap-4 overflow-y-auto p-2", children, html.Div)
}

// Footer is pinned to the bottom of the sidebar.
func Footer(children ...templ.Component) templ.Component {
	return section("footer", "mt-auto border-t border-slate-200 p-3", children, html.Footer)
}

// Group is a labelled menu section. The label is hidden while collapsed.
func Group(label string, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		labelClass := "px-2 text-xs font-semibold uppercase text-slate-500"
		if s, err := Use(ctx); err == nil && !s.IsOpen() {
			labelClass += " sr-only"
		}
		return html.Section(
			g.Attr("data-sidebar", "group"),
			html.Class("flex flex-col gap-1"),
			g.If(label != "", html.H3(
				g.Attr("data-sidebar", "group-label"),
				html.Class(labelClass),
				g.Text(label),
			)),
			embed(ctx, children),
		).Render(w)
	})
}

// Trigger renders the toggle control. Clicking it posts the current signals
// to the state's toggle path.
func Trigger() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s, err := Use(ctx)
		if err != nil {
			return fmt.Errorf("render sidebar trigger: %w", err)
		}
		label := "Collapse sidebar"
		if !s.IsOpen() {
			label = "Expand sidebar"
		}
		return html.Button(
			html.Type("button"),
			g.Attr("data-sidebar", "trigger"),
			g.Attr("aria-controls", s.ElementID()),
			g.Attr("aria-expanded", strconv.FormatBool(s.IsOpen())),
			g.Attr("aria-label", label),
			g.Attr("data-on:click", fmt.Sprintf("@post('%s')", s.togglePath)),
			html.Class("inline-flex h-8 w-8 items-center justify-center rounded-md hover:bg-slate-100"),
			g.Text("☰"),
		).Render(w)
	})
}
