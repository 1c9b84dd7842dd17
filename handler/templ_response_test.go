package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rentdesk/handler"
)

func TestTempl(t *testing.T) {
	t.Parallel()

	t.Run("plain request gets html", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		err := handler.Templ(text(`<p id="x">hi</p>`)).Render(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, `<p id="x">hi</p>`, w.Body.String())
	})

	t.Run("datastar request gets element patch", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		resp := handler.Templ(text(`<p id="x">hi</p>`), handler.WithTarget("#x"), handler.WithPatchMode(handler.PatchInner))
		require.NoError(t, resp.Render(w, datastarRequest(http.MethodPost, "/")))

		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#x")
		assert.Contains(t, body, `<p id="x">hi</p>`)
	})
}

func TestTemplMulti(t *testing.T) {
	t.Parallel()

	resp := handler.TemplMulti(handler.Patch(text("<a></a>")), handler.Patch(text("<b></b>")))

	w := httptest.NewRecorder()
	require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, "<a></a><b></b>", w.Body.String())

	w = httptest.NewRecorder()
	require.NoError(t, resp.Render(w, datastarRequest(http.MethodPost, "/")))
	assert.Contains(t, w.Body.String(), "<a></a>")
	assert.Contains(t, w.Body.String(), "<b></b>")
}

func TestTemplWithSignals(t *testing.T) {
	t.Parallel()

	signals := map[string]any{"sidebar": map[string]any{"open": false}}
	resp := handler.TemplWithSignals(text("<aside></aside>"), signals)

	w := httptest.NewRecorder()
	require.NoError(t, resp.Render(w, datastarRequest(http.MethodPost, "/")))
	body := w.Body.String()
	assert.Contains(t, body, "datastar-patch-elements")
	assert.Contains(t, body, "datastar-patch-signals")
	assert.Contains(t, body, `{"sidebar":{"open":false}}`)

	w = httptest.NewRecorder()
	require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, "<aside></aside>", w.Body.String())
}
