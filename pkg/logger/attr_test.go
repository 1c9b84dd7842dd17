package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rentdesk/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestSidebarAttrs(t *testing.T) {
	attr := logger.SidebarID("abc")
	assert.Equal(t, "sidebar_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
	assert.True(t, logger.SidebarID("").Equal(slog.Attr{}))

	tr := logger.Transition("expanded", "collapsed")
	require.Equal(t, slog.KindGroup, tr.Value.Kind())
	g := tr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "expanded", g[0].Value.String())
	assert.Equal(t, "collapsed", g[1].Value.String())

	assert.Equal(t, "sign-out", logger.Action("sign-out").Value.String())
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}
