package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/rentdesk/pkg/binder"
)

// BindPath binds `path` tagged fields through extract, usually
// chi.URLParam. Malformed values are reported as ErrBadRequest.
func BindPath(extract func(r *http.Request, name string) string) Bind {
	bind := binder.Path(extract)
	return func(r *http.Request, v any) error {
		if err := bind(r, v); err != nil {
			return errors.Join(ErrBadRequest, err)
		}
		return nil
	}
}
