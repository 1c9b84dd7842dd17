package web

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/rentdesk/handler"
	"github.com/dmitrymomot/rentdesk/pkg/environment"
	"github.com/dmitrymomot/rentdesk/pkg/httpserver"
	"github.com/dmitrymomot/rentdesk/pkg/logger"
	"github.com/dmitrymomot/rentdesk/pkg/requestid"
	"github.com/dmitrymomot/rentdesk/pkg/sidebar"
)

// App holds the wiring shared by every route.
type App struct {
	cfg        Config
	log        *slog.Logger
	nav        []NavGroup
	actions    *sidebar.Actions
	signOut    *sidebar.Button
	errHandler handler.ErrorHandler[handler.Context]
}

func New(cfg Config, log *slog.Logger) (*App, error) {
	if log == nil {
		log = logger.Discard()
	}
	nav, err := DefaultNav()
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:        cfg,
		log:        log,
		nav:        nav,
		actions:    sidebar.NewActions(cfg.SidebarActionPath, log),
		errHandler: handler.NewErrorHandler(log, handler.ErrorHandlerConfig{Page: errorPage, Toast: errorToast}),
	}

	// Authentication lives outside this module; sign out only records the
	// request.
	a.signOut = a.actions.MustRegister("sign-out", sidebar.MenuButton(sidebar.ButtonProps{
		Label: "Sign out",
		OnActivate: func(ctx context.Context) error {
			log.InfoContext(ctx, "sign out requested", logger.Component("web"))
			return nil
		},
	}, sidebar.Text("↩"), labelText("Sign out")))

	return a, nil
}

func (a *App) stateOptions() []sidebar.Option {
	return []sidebar.Option{
		sidebar.WithLogger(a.log),
		sidebar.WithTogglePath(a.cfg.SidebarTogglePath),
	}
}

func (a *App) navFor(path string) Nav {
	return Nav{AppName: a.cfg.Name, Groups: a.nav, Active: path, Footer: []*sidebar.Button{a.signOut}}
}

// page renders content in the dashboard layout under a fresh sidebar state.
func (a *App) page(title string, content func(r *http.Request) templ.Component) handler.HandlerFunc[handler.Context, struct{}] {
	return func(ctx handler.Context, _ struct{}) handler.Response {
		r := ctx.Request()
		opts := append(a.stateOptions(), sidebar.WithInitialOpen(a.cfg.SidebarOpen))
		return handler.Templ(sidebar.Provider(sidebar.NewState(opts...),
			DashboardLayout(title, a.navFor(r.URL.Path), content(r)),
		))
	}
}

type idRequest struct {
	ID string `path:"id"`
}

// Routes builds the application router.
func (a *App) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(environment.Parse(a.cfg.Env)),
		middleware.Recoverer,
	)

	withErrors := handler.WithErrorHandler[handler.Context, struct{}](a.errHandler)
	static := func(title string, c func() templ.Component) http.HandlerFunc {
		return handler.Wrap(a.page(title, func(*http.Request) templ.Component { return c() }), withErrors)
	}

	r.Get("/", static("Dashboard", TenantDashboard))
	r.Get("/tenants", static("Tenants", TenantManagement))
	r.Get("/contractors", static("Contractors", ContractorManagement))

	r.Get("/contractors/{id}", handler.Wrap(
		func(ctx handler.Context, req idRequest) handler.Response {
			return a.page("Contractor", func(*http.Request) templ.Component {
				return ContractorDashboard(req.ID)
			})(ctx, struct{}{})
		},
		handler.WithBinders[handler.Context, idRequest](handler.BindPath(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, idRequest](a.errHandler),
	))

	r.Get("/invitations/{id}", handler.Wrap(
		func(_ handler.Context, req idRequest) handler.Response {
			return handler.Templ(InvitationLoading(req.ID))
		},
		handler.WithBinders[handler.Context, idRequest](handler.BindPath(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, idRequest](a.errHandler),
	))

	r.Post(a.cfg.SidebarTogglePath, handler.Wrap(
		sidebar.ToggleHandler(a.toggleView, a.stateOptions()...),
		handler.WithBinders[handler.Context, sidebar.ToggleRequest](handler.BindSignals),
		handler.WithErrorHandler[handler.Context, sidebar.ToggleRequest](a.errHandler),
	))
	r.Mount(a.cfg.SidebarActionPath, a.actions.Handler(
		handler.WithErrorHandler[handler.Context, sidebar.ActionRequest](a.errHandler),
	))

	r.Get("/healthz", httpserver.HealthCheckHandler(a.log))

	return r
}

// toggleView re-renders the sidebar for the page that posted the toggle,
// taking the active path from the Referer.
func (a *App) toggleView(ctx handler.Context, _ *sidebar.State) templ.Component {
	var active string
	if ref, err := url.Parse(ctx.Request().Referer()); err == nil {
		active = ref.Path
	}
	return SidebarView(a.navFor(active))
}
