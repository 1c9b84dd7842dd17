// Package sidebar is a server-rendered sidebar composition kit.
//
// A Provider installs one *State into the render context. Sidebar, Trigger
// and the section and menu primitives read it while they render, so every
// descendant of a provider sees the same value during one pass.
//
//	state := sidebar.NewState(sidebar.WithInitialOpen(false))
//	page := sidebar.Provider(state,
//	    sidebar.Sidebar(
//	        sidebar.Header(sidebar.Trigger()),
//	        sidebar.Content(
//	            sidebar.Group("Manage",
//	                sidebar.Menu(
//	                    sidebar.MenuItem(sidebar.MenuButton(sidebar.ButtonProps{Href: "/tenants"}, sidebar.Text("Tenants"))),
//	                ),
//	            ),
//	        ),
//	    ),
//	)
//
// State is ephemeral: it lives for one render tree. On the page it is carried
// as a datastar signal under the "sidebar" key, and ToggleHandler rebuilds it
// from those signals for a single request.
//
// Sidebar and Trigger fail with ErrMissingProvider when rendered outside a
// provider. The menu primitives never need one.
package sidebar
