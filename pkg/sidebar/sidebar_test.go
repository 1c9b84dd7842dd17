package sidebar_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rentdesk/pkg/sidebar"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

// capture records the state visible at its position in the tree.
func capture(got **sidebar.State, gotErr *error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, _ io.Writer) error {
		*got, *gotErr = sidebar.Use(ctx)
		return nil
	})
}

func TestProvider_InitialValue(t *testing.T) {
	t.Parallel()

	for _, open := range []bool{true, false} {
		var got *sidebar.State
		var err error
		render(t, sidebar.Provider(sidebar.NewState(sidebar.WithInitialOpen(open)), capture(&got, &err)))

		require.NoError(t, err)
		assert.Equal(t, open, got.IsOpen())
	}
}

func TestProvider_NilStateUsesDefaults(t *testing.T) {
	t.Parallel()

	var got *sidebar.State
	var err error
	render(t, sidebar.Provider(nil, capture(&got, &err)))

	require.NoError(t, err)
	assert.True(t, got.IsOpen())
	assert.NotEmpty(t, got.ID())
}

func TestProvider_NilStateIsFreshPerRender(t *testing.T) {
	t.Parallel()

	var ids []string
	var openAtMount []bool
	mount := templ.ComponentFunc(func(ctx context.Context, _ io.Writer) error {
		s := sidebar.MustUse(ctx)
		ids = append(ids, s.ID())
		openAtMount = append(openAtMount, s.IsOpen())
		s.Toggle(ctx)
		return nil
	})

	shell := sidebar.Provider(nil, mount)
	render(t, shell)
	render(t, shell)

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
	assert.Equal(t, []bool{true, true}, openAtMount)
}

func TestProvider_SharedAcrossChildren(t *testing.T) {
	t.Parallel()

	state := sidebar.NewState()
	var first, second *sidebar.State
	var err1, err2 error
	render(t, sidebar.Provider(state, capture(&first, &err1), capture(&second, &err2)))

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Same(t, state, first)
	assert.Same(t, state, second)
}

func TestProvider_NestedOverrides(t *testing.T) {
	t.Parallel()

	outer := sidebar.NewState(sidebar.WithID("outer"))
	inner := sidebar.NewState(sidebar.WithID("inner"))
	var got *sidebar.State
	var err error
	render(t, sidebar.Provider(outer, sidebar.Provider(inner, capture(&got, &err))))

	require.NoError(t, err)
	assert.Equal(t, "inner", got.ID())
}

func TestUse_WithoutProvider(t *testing.T) {
	t.Parallel()

	s, err := sidebar.Use(context.Background())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, sidebar.ErrMissingProvider)

	assert.PanicsWithError(t, sidebar.ErrMissingProvider.Error(), func() {
		sidebar.MustUse(context.Background())
	})
}

func TestState_Toggle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	type change struct{ from, to sidebar.Status }
	var changes []change
	state := sidebar.NewState(sidebar.WithOnChange(func(_ context.Context, from, to sidebar.Status) {
		changes = append(changes, change{from, to})
	}))

	state.Toggle(ctx)
	assert.False(t, state.IsOpen())
	assert.Equal(t, sidebar.StatusCollapsed, state.Status())

	state.Toggle(ctx)
	assert.True(t, state.IsOpen())

	assert.Equal(t, []change{
		{sidebar.StatusExpanded, sidebar.StatusCollapsed},
		{sidebar.StatusCollapsed, sidebar.StatusExpanded},
	}, changes)
}

func TestState_SetOpenIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var calls int
	state := sidebar.NewState(
		sidebar.WithInitialOpen(false),
		sidebar.WithOnChange(func(context.Context, sidebar.Status, sidebar.Status) { calls++ }),
	)

	state.SetOpen(ctx, true)
	state.SetOpen(ctx, true)
	assert.True(t, state.IsOpen())
	assert.Equal(t, 1, calls)

	state.SetOpen(ctx, false)
	state.SetOpen(ctx, false)
	assert.False(t, state.IsOpen())
	assert.Equal(t, 2, calls)
}

func TestState_ConcurrentToggle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	state := sidebar.NewState()

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			state.Toggle(ctx)
			_ = state.IsOpen()
		}()
	}
	wg.Wait()

	assert.True(t, state.IsOpen())
}

func TestState_Signals(t *testing.T) {
	t.Parallel()

	state := sidebar.NewState(sidebar.WithID("abc"), sidebar.WithInitialOpen(false))
	assert.Equal(t, sidebar.Signals{ID: "abc", Open: false}, state.Signals())
	assert.Equal(t, "sidebar-abc", state.ElementID())

	rebuilt := sidebar.StateFromSignals(sidebar.Signals{ID: "abc", Open: true})
	assert.Equal(t, "abc", rebuilt.ID())
	assert.True(t, rebuilt.IsOpen())
}

func TestSidebar_Render(t *testing.T) {
	t.Parallel()

	t.Run("expanded", func(t *testing.T) {
		t.Parallel()
		state := sidebar.NewState(sidebar.WithID("abc"))
		out := render(t, sidebar.Provider(state, sidebar.Sidebar(sidebar.Text("first"), sidebar.Text("second"))))

		assert.Contains(t, out, `<aside id="sidebar-abc"`)
		assert.Contains(t, out, `data-state="expanded"`)
		assert.Contains(t, out, "w-64")
		assert.NotContains(t, out, "w-16")
		assert.Contains(t, out, "data-signals=")
		assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
	})

	t.Run("collapsed", func(t *testing.T) {
		t.Parallel()
		state := sidebar.NewState(sidebar.WithInitialOpen(false))
		out := render(t, sidebar.Provider(state, sidebar.Sidebar()))

		assert.Contains(t, out, `data-state="collapsed"`)
		assert.Contains(t, out, "w-16")
	})

	t.Run("reflects mutation before render", func(t *testing.T) {
		t.Parallel()
		state := sidebar.NewState()
		state.Toggle(context.Background())
		out := render(t, sidebar.Provider(state, sidebar.Sidebar()))
		assert.Contains(t, out, `data-state="collapsed"`)
	})

	t.Run("outside provider", func(t *testing.T) {
		t.Parallel()
		var b strings.Builder
		err := sidebar.Sidebar().Render(context.Background(), &b)
		assert.ErrorIs(t, err, sidebar.ErrMissingProvider)
		assert.Empty(t, b.String())
	})
}

func TestSidebarFor(t *testing.T) {
	t.Parallel()

	_, err := sidebar.SidebarFor(nil)
	assert.ErrorIs(t, err, sidebar.ErrMissingProvider)

	c, err := sidebar.SidebarFor(sidebar.NewState(sidebar.WithID("direct")), sidebar.Text("x"))
	require.NoError(t, err)
	assert.Contains(t, render(t, c), `id="sidebar-direct"`)
}

func TestSections(t *testing.T) {
	t.Parallel()

	out := render(t, sidebar.Provider(sidebar.NewState(sidebar.WithInitialOpen(false)),
		sidebar.Header(sidebar.Text("h")),
		sidebar.Content(sidebar.Group("Manage", sidebar.Text("g"))),
		sidebar.Footer(sidebar.Text("f")),
	))

	assert.Contains(t, out, `<header data-sidebar="header"`)
	assert.Contains(t, out, `data-sidebar="content"`)
	assert.Contains(t, out, `data-sidebar="group-label"`)
	assert.Contains(t, out, "sr-only")
	assert.Contains(t, out, "Manage")
	assert.Contains(t, out, `<footer data-sidebar="footer"`)
}

func TestTrigger(t *testing.T) {
	t.Parallel()

	state := sidebar.NewState(sidebar.WithID("abc"), sidebar.WithTogglePath("/ui/toggle"))
	out := render(t, sidebar.Provider(state, sidebar.Trigger()))

	assert.Contains(t, out, `data-sidebar="trigger"`)
	assert.Contains(t, out, `aria-controls="sidebar-abc"`)
	assert.Contains(t, out, `aria-expanded="true"`)
	assert.Contains(t, out, "/ui/toggle")

	err := sidebar.Trigger().Render(context.Background(), io.Discard)
	assert.ErrorIs(t, err, sidebar.ErrMissingProvider)
}

func TestMenu_RendersItemsInOrder(t *testing.T) {
	t.Parallel()

	labels := []string{"Tenants", "Contractors", "Invitations"}
	items := make([]sidebar.Item, 0, len(labels))
	for _, l := range labels {
		items = append(items, sidebar.MenuItem(sidebar.Text(l)))
	}

	out := render(t, sidebar.Menu(items...))

	assert.True(t, strings.HasPrefix(out, `<ul data-sidebar="menu"`))
	assert.Equal(t, len(labels), strings.Count(out, `data-sidebar="menu-item"`))
	last := -1
	for _, l := range labels {
		idx := strings.Index(out, l)
		assert.Greater(t, idx, last, l)
		last = idx
	}
}

func TestMenu_Empty(t *testing.T) {
	t.Parallel()
	out := render(t, sidebar.Menu())
	assert.Equal(t, 0, strings.Count(out, "menu-item"))
}

func TestMenuButton_Render(t *testing.T) {
	t.Parallel()

	link := render(t, sidebar.MenuButton(sidebar.ButtonProps{Href: "/tenants", Active: true}, sidebar.Text("Tenants")))
	assert.Contains(t, link, `<a data-sidebar="menu-button"`)
	assert.Contains(t, link, `href="/tenants"`)
	assert.Contains(t, link, `data-active="true"`)

	btn := render(t, sidebar.MenuButton(sidebar.ButtonProps{}, sidebar.Text("Plain")))
	assert.Contains(t, btn, `<button data-sidebar="menu-button"`)
	assert.Contains(t, btn, `type="button"`)
	assert.NotContains(t, btn, "data-active")
}

func TestMenuButton_Activate(t *testing.T) {
	t.Parallel()

	state := sidebar.NewState(sidebar.WithInitialOpen(false))
	ctx := sidebar.WithState(context.Background(), state)

	var calls atomic.Int32
	b := sidebar.MenuButton(sidebar.ButtonProps{OnActivate: func(context.Context) error {
		calls.Add(1)
		return nil
	}})

	require.NoError(t, b.Activate(ctx))
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, state.IsOpen())

	boom := errors.New("boom")
	failing := sidebar.MenuButton(sidebar.ButtonProps{OnActivate: func(context.Context) error { return boom }})
	assert.ErrorIs(t, failing.Activate(ctx), boom)

	assert.NoError(t, sidebar.MenuButton(sidebar.ButtonProps{}).Activate(ctx))
}
