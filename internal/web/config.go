package web

// Config is the application config read from the environment.
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"RentDesk"`

	// SidebarOpen is the initial sidebar value for a fresh page load.
	SidebarOpen       bool   `env:"SIDEBAR_OPEN" envDefault:"true"`
	SidebarTogglePath string `env:"SIDEBAR_TOGGLE_PATH" envDefault:"/sidebar/toggle"`
	SidebarActionPath string `env:"SIDEBAR_ACTION_PATH" envDefault:"/sidebar/actions"`
}
