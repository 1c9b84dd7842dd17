package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rentdesk/pkg/validator"
)

func TestDefaultNav(t *testing.T) {
	t.Parallel()

	groups, err := DefaultNav()
	require.NoError(t, err)
	require.NotEmpty(t, groups)

	var paths []string
	for _, g := range groups {
		for _, it := range g.Items {
			paths = append(paths, it.Path)
		}
	}
	assert.Equal(t, []string{"/", "/tenants", "/contractors"}, paths)
}

func TestParseNav_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ParseNav([]byte("groups: ["))
	assert.ErrorIs(t, err, ErrInvalidNav)

	_, err = ParseNav([]byte("groups:\n  - name: x\n    items:\n      - label: Broken\n        path: relative\n      - label: \"\"\n        path: /ok\n"))
	assert.ErrorIs(t, err, ErrInvalidNav)
	ve := validator.ExtractValidationErrors(err)
	assert.True(t, ve.Has("groups[0].items[0].path"))
	assert.True(t, ve.Has("groups[0].items[1].label"))
	assert.False(t, ve.Has("groups[0].items[0].label"))
}

func TestIsActivePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		item, current string
		want          bool
	}{
		{"/", "/", true},
		{"/", "/tenants", false},
		{"/contractors", "/contractors", true},
		{"/contractors", "/contractors/c-1", true},
		{"/contractors", "/contractors-archive", false},
		{"/tenants", "", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isActivePath(tt.item, tt.current), "%s vs %s", tt.item, tt.current)
	}
}
