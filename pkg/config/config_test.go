package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rentdesk/pkg/config"
)

type sidebarConfig struct {
	Open       bool          `env:"TEST_SIDEBAR_OPEN" envDefault:"true"`
	ActionPath string        `env:"TEST_SIDEBAR_ACTION_PATH" envDefault:"/sidebar/actions"`
	Timeout    time.Duration `env:"TEST_SIDEBAR_TIMEOUT" envDefault:"2s"`
}

type requiredConfig struct {
	Secret string `env:"TEST_REQUIRED_SECRET,required"`
}

type cachedConfig struct {
	Name string `env:"TEST_CACHED_NAME" envDefault:"first"`
}

func TestLoad_FromEnvAndDefaults(t *testing.T) {
	t.Setenv("TEST_SIDEBAR_OPEN", "false")

	var cfg sidebarConfig
	require.NoError(t, config.Load(&cfg))
	assert.False(t, cfg.Open)
	assert.Equal(t, "/sidebar/actions", cfg.ActionPath)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestLoad_MissingRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() {
		var again requiredConfig
		config.MustLoad(&again)
	})
}

func TestLoad_CachedPerType(t *testing.T) {
	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Name)

	t.Setenv("TEST_CACHED_NAME", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name)
}

func TestLoad_NilPointer(t *testing.T) {
	assert.ErrorIs(t, config.Load[sidebarConfig](nil), config.ErrNilPointer)
}
