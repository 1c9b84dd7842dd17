package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rentdesk/handler"
)

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func datastarRequest(method, target string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	r.Header.Set("Accept", handler.DataStarAcceptHeader)
	return r
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  *http.Request
		want bool
	}{
		{"plain", httptest.NewRequest(http.MethodGet, "/", nil), false},
		{"accept header", datastarRequest(http.MethodPost, "/"), true},
		{"query param", httptest.NewRequest(http.MethodGet, "/?datastar=%7B%7D", nil), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, handler.IsDataStar(tt.req))
		})
	}
}

func TestContext_DelegatesToRequest(t *testing.T) {
	t.Parallel()

	type key struct{}
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), key{}, "v"))
	w := httptest.NewRecorder()

	ctx := handler.NewContext(w, r)
	assert.Same(t, r, ctx.Request())
	assert.Equal(t, "v", ctx.Value(key{}))
	assert.NoError(t, ctx.Err())
	assert.Empty(t, w.Header().Get("Content-Type"))
}
